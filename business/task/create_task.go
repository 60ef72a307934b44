package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kprajapati/tracker/errs"
	"github.com/kprajapati/tracker/model"
	"github.com/kprajapati/tracker/repository/tasks"
)

// CreateTask creates a task in the assignee's organization. The assignee
// defaults to the actor and must belong to an organization within the
// actor's scope. A past due date on a not-done task lands as overdue.
func (b *business) CreateTask(ctx context.Context, actor model.Actor, params CreateTaskParams) (model.Task, error) {
	if !model.HasPermission(actor.Role, model.PermissionCreateTask) {
		return model.Task{}, errs.New(errs.PermissionDenied, "not allowed to create tasks")
	}

	orgIDs, err := b.resolver.AccessibleOrganizations(ctx, actor)
	if err != nil {
		return model.Task{}, errs.Wrap(errs.Unavailable, "failed to resolve organization scope", err)
	}

	assigneeID := params.AssigneeID
	if assigneeID == "" {
		assigneeID = actor.ID
	}
	assignee, err := b.users.FindByID(ctx, assigneeID)
	if err != nil {
		return model.Task{}, errs.Wrap(errs.Unavailable, "failed to load assignee", err)
	}
	if assignee == nil {
		return model.Task{}, errs.New(errs.InvalidArgument, "assignee not found")
	}
	if !contains(orgIDs, assignee.OrganizationID) {
		return model.Task{}, errs.New(errs.PermissionDenied, "assignee not in an accessible organization")
	}

	status := params.Status
	if status == "" {
		status = model.TaskStatusTodo
	}
	if params.DueDate != nil && b.isPastDue(*params.DueDate) && status != model.TaskStatusDone {
		status = model.TaskStatusOverdue
	}

	created, err := b.tasks.Create(ctx, tasks.CreateParams{
		ID:             uuid.NewString(),
		Title:          params.Title,
		Description:    params.Description,
		Status:         status,
		Category:       params.Category,
		Position:       0,
		AssigneeID:     assignee.ID,
		Priority:       params.Priority,
		DueDate:        params.DueDate,
		CreatedByID:    actor.ID,
		OrganizationID: assignee.OrganizationID,
	})
	if err != nil {
		return model.Task{}, errs.Wrap(errs.Unavailable, "failed to create task", err)
	}

	if err := b.audits.Log(ctx, auditEntry(model.AuditActionCreateTask, actor.ID, created.ID,
		fmt.Sprintf("Created task: %s", created.Title))); err != nil {
		return model.Task{}, err
	}
	return created, nil
}
