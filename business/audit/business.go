// Package audit records and serves the audit trail of task mutations.
package audit

import (
	"context"

	"github.com/google/uuid"

	"github.com/kprajapati/tracker/errs"
	"github.com/kprajapati/tracker/model"
	"github.com/kprajapati/tracker/repository/auditlogs"
)

type LogParams struct {
	Action       model.AuditAction
	UserID       string
	ResourceType string
	ResourceID   string
	Details      string
}

type Business interface {
	Log(ctx context.Context, params LogParams) error
	List(ctx context.Context, actor model.Actor) ([]model.AuditLog, error)
}

type business struct {
	auditLogs auditlogs.Querier
}

func NewAuditBusiness(auditLogs auditlogs.Querier) Business {
	return &business{auditLogs: auditLogs}
}

// Log appends one entry to the trail.
func (b *business) Log(ctx context.Context, params LogParams) error {
	_, err := b.auditLogs.Create(ctx, auditlogs.CreateParams{
		ID:           uuid.NewString(),
		Action:       params.Action,
		UserID:       params.UserID,
		ResourceType: params.ResourceType,
		ResourceID:   params.ResourceID,
		Details:      params.Details,
	})
	if err != nil {
		return errs.Wrap(errs.Unavailable, "failed to write audit log", err)
	}
	return nil
}

// List returns the full trail, newest first. Requires the view_audit_log
// permission (Admin and above).
func (b *business) List(ctx context.Context, actor model.Actor) ([]model.AuditLog, error) {
	if !model.HasPermission(actor.Role, model.PermissionViewAuditLog) {
		return nil, errs.New(errs.PermissionDenied, "not allowed to view the audit log")
	}
	entries, err := b.auditLogs.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.Unavailable, "failed to list audit logs", err)
	}
	return entries, nil
}
