package idempotencykeys

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kprajapati/tracker/model"
)

// DBTX is the subset of pgx used by this package; satisfied by both
// *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Identity is the four-tuple that defines "the same logical operation"
// for deduplication.
type Identity struct {
	Key     string
	Method  string
	Path    string
	ActorID string
}

type InsertParams struct {
	Identity    Identity
	RequestHash string
	ExpiresAt   time.Time
}

// Querier is the durable idempotency record store. Insert surfaces the
// store's unique-violation error unchanged so the caller can classify a
// lost check-then-create race. Find returns nil without error when no
// record matches.
type Querier interface {
	Insert(ctx context.Context, params InsertParams) error
	Find(ctx context.Context, identity Identity) (*model.IdempotencyRecord, error)
	SaveResponse(ctx context.Context, identity Identity, status int32, body json.RawMessage) error
	Delete(ctx context.Context, identity Identity) error
	PurgeExpired(ctx context.Context, identity Identity, now time.Time) error
	PurgeAllExpired(ctx context.Context, now time.Time) (int64, error)
}
