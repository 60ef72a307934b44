package tasks

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
	Title          string
	Description    string
	Status         model.TaskStatus
	Category       string
	Position       int32
	AssigneeID     string
	Priority       *string
	DueDate        *string
	CreatedByID    string
	OrganizationID string
}

// UpdateParams carries a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Title          *string
	Description    *string
	Status         *model.TaskStatus
	Category       *string
	Position       *int32
	AssigneeID     *string
	Priority       *string
	DueDate        *string
	OrganizationID *string
}

type ListParams struct {
	OrgIDs     []string
	Status     string
	Category   string
	AssigneeID string
	Priority   string
	Search     string
	Page       int32
	Limit      int32
	Sort       model.TaskSort
}

// Querier is the task data access contract. Task reads are not memoized:
// the filterable list surface is unbounded and tasks change too often for
// a staleness window to pay for itself.
type Querier interface {
	Create(ctx context.Context, params CreateParams) (model.Task, error)
	FindByID(ctx context.Context, id string) (*model.Task, error)
	Update(ctx context.Context, id string, params UpdateParams) (*model.Task, error)
	Delete(ctx context.Context, id string) error
	ListByOrgIDs(ctx context.Context, params ListParams) ([]model.Task, int64, error)
}
