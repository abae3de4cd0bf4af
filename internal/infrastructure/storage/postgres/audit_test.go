package postgres

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/domain/entity"
)

func TestRecordChange_StagesAuditRow(t *testing.T) {
	u := newTestUoW()

	u.RecordChange(context.Background(), "category", &entity.Category{ID: 1, Name: "Books"}, AuditUpdate)

	assert.Equal(t, 1, u.Pending())
}

func TestAuditTrail_Empty(t *testing.T) {
	u := newTestUoW()
	u.reader = emptyStore{}

	entries, err := u.AuditTrail(context.Background(), "product", 42)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecompressAuditPayload_None(t *testing.T) {
	payload := []byte(`{"id":1}`)

	out, err := DecompressAuditPayload(payload, "none")

	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestDecompressAuditPayload_Zstd(t *testing.T) {
	payload := bytes.Repeat([]byte(`{"name":"Widget"}`), 200)

	compressed := auditEncoder().EncodeAll(payload, nil)
	assert.Less(t, len(compressed), len(payload))

	out, err := DecompressAuditPayload(compressed, "zstd")
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}
