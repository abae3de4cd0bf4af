package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"shopapi/internal/domain/entity"
)

func TestExtractDBColumns_Product(t *testing.T) {
	cols := ExtractDBColumns[*entity.Product]()

	expected := []string{"id", "name", "price", "image_url", "category_id"}
	assert.Equal(t, expected, cols)
}

func TestExtractDBColumns_User(t *testing.T) {
	cols := ExtractDBColumns[*entity.User]()

	for _, want := range []string{"id", "username", "email", "password_hash", "role"} {
		assert.Contains(t, cols, want)
	}
}

func TestStructToMap_Product(t *testing.T) {
	p := &entity.Product{
		ID:         7,
		Name:       "Widget",
		Price:      decimal.RequireFromString("19.99"),
		ImageURL:   "http://img.example/widget.png",
		CategoryID: 3,
	}

	m := StructToMap(p)

	assert.Equal(t, int64(7), m["id"])
	assert.Equal(t, "Widget", m["name"])
	assert.Equal(t, p.Price, m["price"])
	assert.Equal(t, "http://img.example/widget.png", m["image_url"])
	assert.Equal(t, int64(3), m["category_id"])
	assert.Len(t, m, 5)
}
