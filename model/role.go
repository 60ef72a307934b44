package model

// Role is the ranked role of a user inside their organization.
// Owner > Admin > Viewer; a higher rank inherits every capability
// of the ranks below it.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
)

var roleRanks = map[Role]int{
	RoleViewer: 1,
	RoleAdmin:  2,
	RoleOwner:  3,
}

// Rank returns the numeric position of the role in the hierarchy.
// Unknown roles rank below Viewer.
func (r Role) Rank() int {
	return roleRanks[r]
}

// AtLeast reports whether r ranks equal to or above required.
func (r Role) AtLeast(required Role) bool {
	return r.Rank() >= required.Rank()
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}
