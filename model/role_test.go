package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kprajapati/tracker/model"
)

func TestRoleAtLeast(t *testing.T) {
	testCases := []struct {
		role    model.Role
		minimum model.Role
		want    bool
	}{
		{model.RoleViewer, model.RoleViewer, true},
		{model.RoleViewer, model.RoleAdmin, false},
		{model.RoleViewer, model.RoleOwner, false},
		{model.RoleAdmin, model.RoleViewer, true},
		{model.RoleAdmin, model.RoleAdmin, true},
		{model.RoleAdmin, model.RoleOwner, false},
		{model.RoleOwner, model.RoleViewer, true},
		{model.RoleOwner, model.RoleOwner, true},
		{model.Role("unknown"), model.RoleViewer, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.role.AtLeast(tc.minimum), "%s at least %s", tc.role, tc.minimum)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, model.RoleViewer.Valid())
	assert.True(t, model.RoleAdmin.Valid())
	assert.True(t, model.RoleOwner.Valid())
	assert.False(t, model.Role("superuser").Valid())
	assert.False(t, model.Role("").Valid())
}

func TestHasPermission(t *testing.T) {
	assert.True(t, model.HasPermission(model.RoleViewer, model.PermissionReadTask))
	assert.False(t, model.HasPermission(model.RoleViewer, model.PermissionCreateTask))
	assert.True(t, model.HasPermission(model.RoleAdmin, model.PermissionDeleteTask))
	assert.False(t, model.HasPermission(model.RoleAdmin, model.PermissionManageUsers))
	assert.True(t, model.HasPermission(model.RoleOwner, model.PermissionManageUsers))
	assert.False(t, model.HasPermission(model.Role("unknown"), model.PermissionReadTask))
}

func TestPermissionsForRoleGrowWithRank(t *testing.T) {
	viewer := model.PermissionsForRole(model.RoleViewer)
	admin := model.PermissionsForRole(model.RoleAdmin)
	owner := model.PermissionsForRole(model.RoleOwner)
	assert.Less(t, len(viewer), len(admin))
	assert.Less(t, len(admin), len(owner))
	for _, p := range viewer {
		assert.Contains(t, admin, p)
	}
	for _, p := range admin {
		assert.Contains(t, owner, p)
	}
}
