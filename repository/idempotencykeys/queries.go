package idempotencykeys

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kprajapati/tracker/model"
)

// Queries executes idempotency record SQL. The table carries a unique
// index on (key, method, path, actor_id); that constraint, not any
// in-process check, is what makes Absent -> InFlight atomic under
// concurrent duplicates.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const insertRecord = `
INSERT INTO idempotency_keys (id, key, method, path, actor_id, request_hash, response_status, response_body, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, NULL, NULL, now(), $7)
`

func (q *Queries) Insert(ctx context.Context, params InsertParams) error {
	_, err := q.db.Exec(ctx, insertRecord,
		uuid.NewString(),
		params.Identity.Key,
		params.Identity.Method,
		params.Identity.Path,
		params.Identity.ActorID,
		params.RequestHash,
		params.ExpiresAt,
	)
	return err
}

const findRecord = `
SELECT key, method, path, actor_id, request_hash, response_status, response_body, created_at, expires_at
FROM idempotency_keys
WHERE key = $1 AND method = $2 AND path = $3 AND actor_id = $4
`

func (q *Queries) Find(ctx context.Context, identity Identity) (*model.IdempotencyRecord, error) {
	row := q.db.QueryRow(ctx, findRecord, identity.Key, identity.Method, identity.Path, identity.ActorID)
	var record model.IdempotencyRecord
	err := row.Scan(
		&record.Key, &record.Method, &record.Path, &record.ActorID,
		&record.RequestHash, &record.ResponseStatus, &record.ResponseBody,
		&record.CreatedAt, &record.ExpiresAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

const saveResponse = `
UPDATE idempotency_keys
SET response_status = $5, response_body = $6
WHERE key = $1 AND method = $2 AND path = $3 AND actor_id = $4
`

func (q *Queries) SaveResponse(ctx context.Context, identity Identity, status int32, body json.RawMessage) error {
	_, err := q.db.Exec(ctx, saveResponse,
		identity.Key, identity.Method, identity.Path, identity.ActorID,
		status, body,
	)
	return err
}

const deleteRecord = `
DELETE FROM idempotency_keys
WHERE key = $1 AND method = $2 AND path = $3 AND actor_id = $4
`

func (q *Queries) Delete(ctx context.Context, identity Identity) error {
	_, err := q.db.Exec(ctx, deleteRecord, identity.Key, identity.Method, identity.Path, identity.ActorID)
	return err
}

const purgeExpired = `
DELETE FROM idempotency_keys
WHERE key = $1 AND method = $2 AND path = $3 AND actor_id = $4 AND expires_at <= $5
`

// PurgeExpired removes an expired record for one identity, freeing the
// unique slot before a fresh insert.
func (q *Queries) PurgeExpired(ctx context.Context, identity Identity, now time.Time) error {
	_, err := q.db.Exec(ctx, purgeExpired, identity.Key, identity.Method, identity.Path, identity.ActorID, now)
	return err
}

const purgeAllExpired = `
DELETE FROM idempotency_keys WHERE expires_at <= $1
`

// PurgeAllExpired removes every record past its retention window.
func (q *Queries) PurgeAllExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := q.db.Exec(ctx, purgeAllExpired, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
