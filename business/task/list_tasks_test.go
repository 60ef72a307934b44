package task_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kprajapati/tracker/business/task"
	"github.com/kprajapati/tracker/errs"
	"github.com/kprajapati/tracker/model"
	"github.com/kprajapati/tracker/repository/tasks"
)

func TestListTasksScopesToAccessibleOrgs(t *testing.T) {
	f := newFixture(t)
	actor := viewerActor()

	f.orgs.EXPECT().ExistsByID(gomock.Any(), "org-a").Return(true, nil)
	f.tasks.EXPECT().ListByOrgIDs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params tasks.ListParams) ([]model.Task, int64, error) {
			assert.Equal(t, []string{"org-a"}, params.OrgIDs)
			return []model.Task{{ID: "t1", Status: model.TaskStatusTodo}}, 1, nil
		})

	result, err := f.biz.ListTasks(context.Background(), actor, task.ListTasksParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, int32(1), result.Page)
	assert.Equal(t, int32(20), result.Limit)
}

func TestListTasksOwnerIncludesChildren(t *testing.T) {
	f := newFixture(t)
	actor := ownerActor()

	f.orgs.EXPECT().ExistsByID(gomock.Any(), "org-a").Return(true, nil)
	f.orgs.EXPECT().FindChildren(gomock.Any(), "org-a").
		Return([]model.Organization{{ID: "org-a-1"}, {ID: "org-a-2"}}, nil)
	f.tasks.EXPECT().ListByOrgIDs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params tasks.ListParams) ([]model.Task, int64, error) {
			assert.Equal(t, []string{"org-a", "org-a-1", "org-a-2"}, params.OrgIDs)
			return nil, 0, nil
		})

	_, err := f.biz.ListTasks(context.Background(), actor, task.ListTasksParams{Page: 1, Limit: 20})
	require.NoError(t, err)
}

func TestListTasksEmptyScopeYieldsEmptyPage(t *testing.T) {
	f := newFixture(t)
	actor := viewerActor()

	f.orgs.EXPECT().ExistsByID(gomock.Any(), "org-a").Return(false, nil)
	f.tasks.EXPECT().ListByOrgIDs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params tasks.ListParams) ([]model.Task, int64, error) {
			assert.Empty(t, params.OrgIDs)
			return nil, 0, nil
		})

	result, err := f.biz.ListTasks(context.Background(), actor, task.ListTasksParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(0), result.Total)
}

func TestListTasksPromotesPastDueToOverdue(t *testing.T) {
	f := newFixture(t)
	actor := viewerActor()

	items := []model.Task{
		{ID: "t-past", Status: model.TaskStatusTodo, DueDate: strPtr("2024-03-10")},
		{ID: "t-future", Status: model.TaskStatusTodo, DueDate: strPtr("2024-03-20")},
		{ID: "t-done", Status: model.TaskStatusDone, DueDate: strPtr("2024-03-10")},
		{ID: "t-none", Status: model.TaskStatusInProgress},
	}

	f.orgs.EXPECT().ExistsByID(gomock.Any(), "org-a").Return(true, nil)
	f.tasks.EXPECT().ListByOrgIDs(gomock.Any(), gomock.Any()).Return(items, int64(4), nil)
	// Only the past-due, not-done task is written back.
	f.tasks.EXPECT().Update(gomock.Any(), "t-past", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params tasks.UpdateParams) (*model.Task, error) {
			require.NotNil(t, params.Status)
			assert.Equal(t, model.TaskStatusOverdue, *params.Status)
			return &model.Task{ID: "t-past", Status: model.TaskStatusOverdue}, nil
		})

	result, err := f.biz.ListTasks(context.Background(), actor, task.ListTasksParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusOverdue, result.Items[0].Status)
	assert.Equal(t, model.TaskStatusTodo, result.Items[1].Status)
	assert.Equal(t, model.TaskStatusDone, result.Items[2].Status)
	assert.Equal(t, model.TaskStatusInProgress, result.Items[3].Status)
}

func TestListTasksStoreFailure(t *testing.T) {
	f := newFixture(t)
	actor := viewerActor()

	f.orgs.EXPECT().ExistsByID(gomock.Any(), "org-a").Return(true, nil)
	f.tasks.EXPECT().ListByOrgIDs(gomock.Any(), gomock.Any()).
		Return(nil, int64(0), errors.New("connection reset"))

	_, err := f.biz.ListTasks(context.Background(), actor, task.ListTasksParams{Page: 1, Limit: 20})
	require.Error(t, err)
	assert.Equal(t, errs.Unavailable, errs.CodeOf(err))
}
