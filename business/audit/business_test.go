package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kprajapati/tracker/business/audit"
	"github.com/kprajapati/tracker/errs"
	"github.com/kprajapati/tracker/mocks/repository/auditlogs_repo"
	"github.com/kprajapati/tracker/model"
	"github.com/kprajapati/tracker/repository/auditlogs"
)

func newBusiness(t *testing.T) (audit.Business, *auditlogs_repo.MockQuerier) {
	ctrl := gomock.NewController(t)
	logs := auditlogs_repo.NewMockQuerier(ctrl)
	return audit.NewAuditBusiness(logs), logs
}

func TestLog(t *testing.T) {
	biz, logs := newBusiness(t)

	logs.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params auditlogs.CreateParams) (model.AuditLog, error) {
			assert.NotEmpty(t, params.ID)
			assert.Equal(t, model.AuditActionCreateTask, params.Action)
			assert.Equal(t, "u1", params.UserID)
			assert.Equal(t, "task", params.ResourceType)
			assert.Equal(t, "t1", params.ResourceID)
			return model.AuditLog{ID: params.ID}, nil
		})

	err := biz.Log(context.Background(), audit.LogParams{
		Action:       model.AuditActionCreateTask,
		UserID:       "u1",
		ResourceType: "task",
		ResourceID:   "t1",
		Details:      "Created task: x",
	})
	require.NoError(t, err)
}

func TestLogStoreFailure(t *testing.T) {
	biz, logs := newBusiness(t)

	logs.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(model.AuditLog{}, errors.New("connection reset"))

	err := biz.Log(context.Background(), audit.LogParams{Action: model.AuditActionCreateTask})
	require.Error(t, err)
	assert.Equal(t, errs.Unavailable, errs.CodeOf(err))
}

func TestList(t *testing.T) {
	biz, logs := newBusiness(t)
	actor := model.Actor{ID: "u1", Role: model.RoleAdmin, OrganizationID: "org-a"}

	logs.EXPECT().ListAll(gomock.Any()).
		Return([]model.AuditLog{{ID: "a1"}, {ID: "a2"}}, nil)

	entries, err := biz.List(context.Background(), actor)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestListViewerDenied(t *testing.T) {
	biz, _ := newBusiness(t)
	actor := model.Actor{ID: "u1", Role: model.RoleViewer, OrganizationID: "org-a"}

	_, err := biz.List(context.Background(), actor)
	require.Error(t, err)
	assert.Equal(t, errs.PermissionDenied, errs.CodeOf(err))
}
