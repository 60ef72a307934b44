package auditlogs

import (
	"context"

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

type CreateParams struct {
	ID           string
	Action       model.AuditAction
	UserID       string
	ResourceType string
	ResourceID   string
	Details      string
}

// Querier is the append-only audit trail contract.
type Querier interface {
	Create(ctx context.Context, params CreateParams) (model.AuditLog, error)
	ListAll(ctx context.Context) ([]model.AuditLog, error)
}
