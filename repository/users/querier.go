package users

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
	ID             string
	Email          string
	Name           string
	PasswordHash   string
	Role           model.Role
	OrganizationID string
}

type ListParams struct {
	OrgIDs []string
	Search string
	Page   int32
	Limit  int32
}

// Querier is the user data access contract. Find methods return nil
// without error when no row matches.
type Querier interface {
	Create(ctx context.Context, params CreateParams) (model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByOrgIDs(ctx context.Context, params ListParams) ([]model.User, int64, error)
}
