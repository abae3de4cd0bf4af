package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/klauspost/compress/zstd"

	appctx "shopapi/internal/core/context"
	"shopapi/internal/domain/entity"
)

// AuditAction classifies a recorded change.
type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
)

// Entity snapshots above this size are stored zstd-compressed.
const auditCompressThreshold = 1024

var (
	zstdOnce    sync.Once
	zstdEncoder *zstd.Encoder
)

func auditEncoder() *zstd.Encoder {
	zstdOnce.Do(func() {
		// SpeedDefault is a good trade-off for small JSON payloads.
		zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	})
	return zstdEncoder
}

// RecordChange stages an audit row for the given entity change. The snapshot
// is taken at commit time, after generated ids are assigned, so created
// entities are recorded with their final id. Audit rows are not counted in
// the SaveChanges result.
func (u *UnitOfWork) RecordChange(ctx context.Context, entityType string, item entity.Entity, action AuditAction) {
	actorID := appctx.GetUserID(ctx)
	var actorEmail string
	if user := appctx.GetUser(ctx); user != nil {
		actorEmail = user.Email
	}

	u.stage(func(ctx context.Context, tx pgx.Tx) (int64, error) {
		payload, err := json.Marshal(item)
		if err != nil {
			return 0, fmt.Errorf("marshal audit payload for %s: %w", entityType, err)
		}

		compression := "none"
		if len(payload) > auditCompressThreshold {
			payload = auditEncoder().EncodeAll(payload, nil)
			compression = "zstd"
		}

		query, args, err := sqBuilder().
			Insert("sys_audit").
			Columns("entity_type", "entity_id", "action", "actor_id", "actor_email", "payload", "compression", "created_at").
			Values(entityType, item.EntityID(), string(action), actorID, actorEmail, payload, compression, time.Now().UTC()).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build audit insert: %w", err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("insert audit row: %w", err)
		}
		return 0, nil
	})
}

// AuditEntry is one recorded change read back from sys_audit.
type AuditEntry struct {
	ID          int64     `db:"id"`
	EntityType  string    `db:"entity_type"`
	EntityID    int64     `db:"entity_id"`
	Action      string    `db:"action"`
	ActorID     int64     `db:"actor_id"`
	ActorEmail  string    `db:"actor_email"`
	Payload     []byte    `db:"payload"`
	Compression string    `db:"compression"`
	CreatedAt   time.Time `db:"created_at"`
}

// AuditTrail returns the recorded changes for one entity, newest first, with
// payloads decompressed.
func (u *UnitOfWork) AuditTrail(ctx context.Context, entityType string, entityID int64) ([]*AuditEntry, error) {
	query, args, err := sqBuilder().
		Select("id", "entity_type", "entity_id", "action", "actor_id", "actor_email", "payload", "compression", "created_at").
		From("sys_audit").
		Where(sq.Eq{"entity_type": entityType, "entity_id": entityID}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit select: %w", err)
	}

	var entries []*AuditEntry
	if err := pgxscan.Select(ctx, u.querier(), &entries, query, args...); err != nil {
		return nil, fmt.Errorf("select audit trail: %w", err)
	}

	for _, e := range entries {
		payload, err := DecompressAuditPayload(e.Payload, e.Compression)
		if err != nil {
			return nil, err
		}
		e.Payload = payload
		e.Compression = "none"
	}
	return entries, nil
}

// DecompressAuditPayload restores a stored snapshot to JSON.
func DecompressAuditPayload(payload []byte, compression string) ([]byte, error) {
	if compression != "zstd" {
		return payload, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(payload, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress audit payload: %w", err)
	}
	return out, nil
}
