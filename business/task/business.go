// Package task implements task operations scoped by the authorization
// resolver. Every read and write is bounded to the actor's accessible
// organizations; an empty scope yields empty results, never an error.
package task

import (
	"context"

	"github.com/kprajapati/tracker/business/audit"
	"github.com/kprajapati/tracker/business/authz"
	"github.com/kprajapati/tracker/clock"
	"github.com/kprajapati/tracker/model"
	"github.com/kprajapati/tracker/repository/tasks"
	"github.com/kprajapati/tracker/repository/users"
)

type CreateTaskParams struct {
	Title       string
	Description string
	Status      model.TaskStatus
	Category    string
	AssigneeID  string
	Priority    *string
	DueDate     *string
}

// UpdateTaskParams carries a partial update; nil fields are unchanged.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *model.TaskStatus
	Category    *string
	Position    *int32
	AssigneeID  *string
	Priority    *string
	DueDate     *string
}

type ListTasksParams struct {
	Status     string
	Category   string
	AssigneeID string
	Priority   string
	Search     string
	Page       int32
	Limit      int32
	Sort       model.TaskSort
}

type ListTasksResult struct {
	Items []model.Task
	Total int64
	Page  int32
	Limit int32
}

type Business interface {
	ListTasks(ctx context.Context, actor model.Actor, params ListTasksParams) (ListTasksResult, error)
	GetTask(ctx context.Context, actor model.Actor, id string) (model.Task, error)
	CreateTask(ctx context.Context, actor model.Actor, params CreateTaskParams) (model.Task, error)
	UpdateTask(ctx context.Context, actor model.Actor, id string, params UpdateTaskParams) (model.Task, error)
	DeleteTask(ctx context.Context, actor model.Actor, id string) error
}

type business struct {
	tasks    tasks.Querier
	users    users.Querier
	resolver *authz.Resolver
	audits   audit.Business
	clock    clock.Clock
}

func NewTaskBusiness(
	taskRepo tasks.Querier,
	userRepo users.Querier,
	resolver *authz.Resolver,
	audits audit.Business,
	clk clock.Clock,
) Business {
	return &business{
		tasks:    taskRepo,
		users:    userRepo,
		resolver: resolver,
		audits:   audits,
		clock:    clk,
	}
}

// isPastDue compares the date portion of a due date against today.
func (b *business) isPastDue(dueDate string) bool {
	if len(dueDate) > 10 {
		dueDate = dueDate[:10]
	}
	today := b.clock.Now().UTC().Format("2006-01-02")
	return dueDate < today
}

func auditEntry(action model.AuditAction, userID, taskID, details string) audit.LogParams {
	return audit.LogParams{
		Action:       action,
		UserID:       userID,
		ResourceType: "task",
		ResourceID:   taskID,
		Details:      details,
	}
}

func contains(orgIDs []string, orgID string) bool {
	for _, id := range orgIDs {
		if id == orgID {
			return true
		}
	}
	return false
}
