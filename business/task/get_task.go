package task

import (
	"context"

	"github.com/kprajapati/tracker/errs"
	"github.com/kprajapati/tracker/model"
)

// GetTask returns one task if it lies within the actor's scope.
func (b *business) GetTask(ctx context.Context, actor model.Actor, id string) (model.Task, error) {
	found, err := b.tasks.FindByID(ctx, id)
	if err != nil {
		return model.Task{}, errs.Wrap(errs.Unavailable, "failed to load task", err)
	}
	if found == nil {
		return model.Task{}, errs.New(errs.NotFound, "task not found")
	}

	allowed, err := b.resolver.CanAccessOrganization(ctx, actor, found.OrganizationID)
	if err != nil {
		return model.Task{}, errs.Wrap(errs.Unavailable, "failed to resolve organization scope", err)
	}
	if !allowed {
		return model.Task{}, errs.New(errs.PermissionDenied, "not allowed to access this task")
	}
	return *found, nil
}
