package model

import "time"

type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         TaskStatus `json:"status"`
	Category       string     `json:"category"`
	Position       int32      `json:"position"`
	AssigneeID     string     `json:"assignee_id"`
	Priority       *string    `json:"priority,omitempty"`
	DueDate        *string    `json:"due_date,omitempty"`
	CreatedByID    string     `json:"created_by_id"`
	OrganizationID string     `json:"organization_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusOverdue    TaskStatus = "overdue"
)

// TaskSort selects the ordering of task listings.
type TaskSort string

const (
	TaskSortNone         TaskSort = "none"
	TaskSortOverdueFirst TaskSort = "overdue_first"
	TaskSortDueSoon      TaskSort = "due_soon"
)
