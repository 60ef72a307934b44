package task

import (
	"context"
	"fmt"

	"github.com/kprajapati/tracker/errs"
	"github.com/kprajapati/tracker/model"
)

// DeleteTask removes a task within the actor's scope. Only Admins and
// above may delete.
func (b *business) DeleteTask(ctx context.Context, actor model.Actor, id string) error {
	existing, err := b.tasks.FindByID(ctx, id)
	if err != nil {
		return errs.Wrap(errs.Unavailable, "failed to load task", err)
	}
	if existing == nil {
		return errs.New(errs.NotFound, "task not found")
	}

	orgIDs, err := b.resolver.AccessibleOrganizations(ctx, actor)
	if err != nil {
		return errs.Wrap(errs.Unavailable, "failed to resolve organization scope", err)
	}
	if !contains(orgIDs, existing.OrganizationID) {
		return errs.New(errs.PermissionDenied, "not allowed to access this task")
	}
	if !model.HasPermission(actor.Role, model.PermissionDeleteTask) {
		return errs.New(errs.PermissionDenied, "not allowed to delete this task")
	}

	if err := b.tasks.Delete(ctx, existing.ID); err != nil {
		return errs.Wrap(errs.Unavailable, "failed to delete task", err)
	}

	return b.audits.Log(ctx, auditEntry(model.AuditActionDeleteTask, actor.ID, existing.ID,
		fmt.Sprintf("Deleted task: %s", existing.Title)))
}
