package task

import (
	"context"
	"fmt"

	"github.com/kprajapati/tracker/errs"
	"github.com/kprajapati/tracker/model"
	"github.com/kprajapati/tracker/repository/tasks"
)

// UpdateTask applies a partial update. Viewers may only update tasks they
// created themselves; reassigning moves the task into the new assignee's
// organization, which must also be in scope. A past due date on a not-done
// task forces the overdue status.
func (b *business) UpdateTask(ctx context.Context, actor model.Actor, id string, params UpdateTaskParams) (model.Task, error) {
	existing, err := b.tasks.FindByID(ctx, id)
	if err != nil {
		return model.Task{}, errs.Wrap(errs.Unavailable, "failed to load task", err)
	}
	if existing == nil {
		return model.Task{}, errs.New(errs.NotFound, "task not found")
	}

	orgIDs, err := b.resolver.AccessibleOrganizations(ctx, actor)
	if err != nil {
		return model.Task{}, errs.Wrap(errs.Unavailable, "failed to resolve organization scope", err)
	}
	if !contains(orgIDs, existing.OrganizationID) {
		return model.Task{}, errs.New(errs.PermissionDenied, "not allowed to access this task")
	}
	if !actor.Role.AtLeast(model.RoleAdmin) && existing.CreatedByID != actor.ID {
		return model.Task{}, errs.New(errs.PermissionDenied, "not allowed to update this task")
	}

	update := tasks.UpdateParams{
		Title:       params.Title,
		Description: params.Description,
		Status:      params.Status,
		Category:    params.Category,
		Position:    params.Position,
		Priority:    params.Priority,
		DueDate:     params.DueDate,
	}

	if params.AssigneeID != nil {
		assignee, err := b.users.FindByID(ctx, *params.AssigneeID)
		if err != nil {
			return model.Task{}, errs.Wrap(errs.Unavailable, "failed to load assignee", err)
		}
		if assignee == nil {
			return model.Task{}, errs.New(errs.InvalidArgument, "assignee not found")
		}
		if !contains(orgIDs, assignee.OrganizationID) {
			return model.Task{}, errs.New(errs.PermissionDenied, "assignee not in an accessible organization")
		}
		update.AssigneeID = &assignee.ID
		update.OrganizationID = &assignee.OrganizationID
	}

	nextStatus := existing.Status
	if params.Status != nil {
		nextStatus = *params.Status
	}
	nextDueDate := existing.DueDate
	if params.DueDate != nil {
		nextDueDate = params.DueDate
	}
	if nextDueDate != nil && b.isPastDue(*nextDueDate) && nextStatus != model.TaskStatusDone {
		overdue := model.TaskStatusOverdue
		update.Status = &overdue
	}

	saved, err := b.tasks.Update(ctx, existing.ID, update)
	if err != nil {
		return model.Task{}, errs.Wrap(errs.Unavailable, "failed to update task", err)
	}
	if saved == nil {
		return model.Task{}, errs.New(errs.NotFound, "task not found")
	}

	if err := b.audits.Log(ctx, auditEntry(model.AuditActionUpdateTask, actor.ID, saved.ID,
		fmt.Sprintf("Updated task: %s", saved.Title))); err != nil {
		return model.Task{}, err
	}
	return *saved, nil
}
