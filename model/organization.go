package model

import "time"

// Organization is a node in the tenant forest. ParentID is nil for root
// organizations; children reference their parent's id. Observed depth is
// two levels, but nothing here assumes a hard limit.
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  *string   `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
