package model

import "time"

// AuditAction names a recorded mutation.
type AuditAction string

const (
	AuditActionCreateTask AuditAction = "create_task"
	AuditActionUpdateTask AuditAction = "update_task"
	AuditActionDeleteTask AuditAction = "delete_task"
)

// AuditLog is one entry in the append-only audit trail.
type AuditLog struct {
	ID           string      `json:"id"`
	Action       AuditAction `json:"action"`
	UserID       string      `json:"user_id"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id"`
	Details      string      `json:"details"`
	CreatedAt    time.Time   `json:"created_at"`

	// Joined from users on read; empty when the user has been removed.
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}
