package organizations

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
	ID       string
	Name     string
	ParentID *string
}

// Querier is the organization data access contract. FindByID returns nil
// without error when no row matches.
type Querier interface {
	Create(ctx context.Context, params CreateParams) (model.Organization, error)
	FindByID(ctx context.Context, id string) (*model.Organization, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindChildren(ctx context.Context, parentID string) ([]model.Organization, error)
	ListAll(ctx context.Context) ([]model.Organization, error)
}
