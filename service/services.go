package service

import (
	"log/slog"
	"time"

	"github.com/kprajapati/tracker/business/audit"
	"github.com/kprajapati/tracker/business/authz"
	"github.com/kprajapati/tracker/business/organization"
	"github.com/kprajapati/tracker/business/task"
	"github.com/kprajapati/tracker/business/user"
	"github.com/kprajapati/tracker/clock"
	"github.com/kprajapati/tracker/middleware/idempotency"
	"github.com/kprajapati/tracker/repository"
)

// Services holds all business services plus the idempotency engine the
// transport layer wraps around every mutating handler.
type Services struct {
	Task          task.Business
	Organization  organization.Business
	User          user.Business
	Audit         audit.Business
	Authorization *authz.Resolver
	Idempotency   *idempotency.Engine
}

// Options tune the wiring; zero values fall back to defaults.
type Options struct {
	Clock                clock.Clock
	IdempotencyRetention time.Duration // 0 means the engine default
	Logger               *slog.Logger
}

// NewServices wires the business layer over a repository.
func NewServices(repo *repository.Repository, opts Options) Services {
	clk := opts.Clock
	if clk == nil {
		clk = clock.Wall()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	resolver := authz.NewResolver(repo.Organizations)
	auditBusiness := audit.NewAuditBusiness(repo.AuditLogs)

	return Services{
		Task:          task.NewTaskBusiness(repo.Tasks, repo.Users, resolver, auditBusiness, clk),
		Organization:  organization.NewOrganizationBusiness(repo.Organizations),
		User:          user.NewUserBusiness(repo.Users, resolver),
		Audit:         auditBusiness,
		Authorization: resolver,
		Idempotency: idempotency.NewEngine(
			repo.Idempotency, clk, opts.IdempotencyRetention, logger,
		),
	}
}
