package task

import (
	"context"

	"github.com/kprajapati/tracker/errs"
	"github.com/kprajapati/tracker/model"
	"github.com/kprajapati/tracker/repository/tasks"
)

// ListTasks returns one page of tasks within the actor's scope. Tasks
// whose due date has passed are promoted to overdue on the way out, so
// listings self-heal without a scheduler.
func (b *business) ListTasks(ctx context.Context, actor model.Actor, params ListTasksParams) (ListTasksResult, error) {
	orgIDs, err := b.resolver.AccessibleOrganizations(ctx, actor)
	if err != nil {
		return ListTasksResult{}, errs.Wrap(errs.Unavailable, "failed to resolve organization scope", err)
	}

	items, total, err := b.tasks.ListByOrgIDs(ctx, tasks.ListParams{
		OrgIDs:     orgIDs,
		Status:     params.Status,
		Category:   params.Category,
		AssigneeID: params.AssigneeID,
		Priority:   params.Priority,
		Search:     params.Search,
		Page:       params.Page,
		Limit:      params.Limit,
		Sort:       params.Sort,
	})
	if err != nil {
		return ListTasksResult{}, errs.Wrap(errs.Unavailable, "failed to list tasks", err)
	}

	for i := range items {
		item := &items[i]
		if item.DueDate == nil || item.Status == model.TaskStatusDone || item.Status == model.TaskStatusOverdue {
			continue
		}
		if !b.isPastDue(*item.DueDate) {
			continue
		}
		overdue := model.TaskStatusOverdue
		if _, err := b.tasks.Update(ctx, item.ID, tasks.UpdateParams{Status: &overdue}); err != nil {
			return ListTasksResult{}, errs.Wrap(errs.Unavailable, "failed to mark task overdue", err)
		}
		item.Status = model.TaskStatusOverdue
	}

	return ListTasksResult{
		Items: items,
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	}, nil
}
