package task_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kprajapati/tracker/errs"
	"github.com/kprajapati/tracker/model"
)

func TestGetTask(t *testing.T) {
	f := newFixture(t)
	actor := viewerActor()
	existing := &model.Task{ID: "t1", Title: "Quarterly report", OrganizationID: "org-a"}

	f.tasks.EXPECT().FindByID(gomock.Any(), "t1").Return(existing, nil)

	got, err := f.biz.GetTask(context.Background(), actor, "t1")
	require.NoError(t, err)
	assert.Equal(t, *existing, got)
}

func TestGetTaskOwnerChildOrg(t *testing.T) {
	f := newFixture(t)
	actor := ownerActor()
	existing := &model.Task{ID: "t1", OrganizationID: "org-a-1"}
	parentID := "org-a"

	f.tasks.EXPECT().FindByID(gomock.Any(), "t1").Return(existing, nil)
	f.orgs.EXPECT().FindByID(gomock.Any(), "org-a-1").
		Return(&model.Organization{ID: "org-a-1", ParentID: &parentID}, nil)

	_, err := f.biz.GetTask(context.Background(), actor, "t1")
	require.NoError(t, err)
}

func TestGetTaskOutOfScopeDenied(t *testing.T) {
	f := newFixture(t)
	actor := viewerActor()
	existing := &model.Task{ID: "t1", OrganizationID: "org-z"}

	f.tasks.EXPECT().FindByID(gomock.Any(), "t1").Return(existing, nil)

	_, err := f.biz.GetTask(context.Background(), actor, "t1")
	require.Error(t, err)
	assert.Equal(t, errs.PermissionDenied, errs.CodeOf(err))
}

func TestGetTaskNotFound(t *testing.T) {
	f := newFixture(t)

	f.tasks.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)

	_, err := f.biz.GetTask(context.Background(), viewerActor(), "missing")
	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.CodeOf(err))
}
