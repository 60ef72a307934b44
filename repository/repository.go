package repository

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kprajapati/tracker/repository/auditlogs"
	"github.com/kprajapati/tracker/repository/idempotencykeys"
	"github.com/kprajapati/tracker/repository/organizations"
	"github.com/kprajapati/tracker/repository/tasks"
	"github.com/kprajapati/tracker/repository/users"
)

// Repository combines all domain-specific queriers. Organization and user
// access goes through the cache-aware stores; tasks, audit logs and
// idempotency records hit the database directly.
type Repository struct {
	Organizations organizations.Querier
	Users         users.Querier
	Tasks         tasks.Querier
	AuditLogs     auditlogs.Querier
	Idempotency   idempotencykeys.Querier
}

// NewRepository creates a Repository with all domain queriers. cacheTTL
// bounds the staleness window of the org/user read caches.
func NewRepository(db *pgxpool.Pool, cacheTTL time.Duration) *Repository {
	return &Repository{
		Organizations: organizations.NewStore(organizations.New(db), cacheTTL),
		Users:         users.NewStore(users.New(db), cacheTTL),
		Tasks:         tasks.New(db),
		AuditLogs:     auditlogs.New(db),
		Idempotency:   idempotencykeys.New(db),
	}
}
