package model

// Permission names a single capability a role grants.
type Permission string

const (
	PermissionCreateTask   Permission = "create_task"
	PermissionReadTask     Permission = "read_task"
	PermissionUpdateTask   Permission = "update_task"
	PermissionDeleteTask   Permission = "delete_task"
	PermissionViewAuditLog Permission = "view_audit_log"
	PermissionManageUsers  Permission = "manage_users"
)

// rolePermissions maps each role to its directly assigned permissions.
// Inheritance is already flattened: every role lists the full set it holds.
var rolePermissions = map[Role][]Permission{
	RoleViewer: {
		PermissionReadTask,
	},
	RoleAdmin: {
		PermissionReadTask,
		PermissionCreateTask,
		PermissionUpdateTask,
		PermissionDeleteTask,
		PermissionViewAuditLog,
	},
	RoleOwner: {
		PermissionReadTask,
		PermissionCreateTask,
		PermissionUpdateTask,
		PermissionDeleteTask,
		PermissionViewAuditLog,
		PermissionManageUsers,
	},
}

// PermissionsForRole returns the permissions held by role.
func PermissionsForRole(role Role) []Permission {
	return rolePermissions[role]
}

// HasPermission reports whether role grants permission.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
