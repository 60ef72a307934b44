package task_test

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/kprajapati/tracker/business/authz"
	"github.com/kprajapati/tracker/business/task"
	"github.com/kprajapati/tracker/clock"
	"github.com/kprajapati/tracker/mocks/business/audit_business"
	"github.com/kprajapati/tracker/mocks/repository/organizations_repo"
	"github.com/kprajapati/tracker/mocks/repository/tasks_repo"
	"github.com/kprajapati/tracker/mocks/repository/users_repo"
	"github.com/kprajapati/tracker/model"
)

// testNow anchors the manual clock; "2024-03-10" is past due against it
// and "2024-03-20" is not.
var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	tasks  *tasks_repo.MockQuerier
	users  *users_repo.MockQuerier
	orgs   *organizations_repo.MockQuerier
	audits *audit_business.MockBusiness
	clk    *clock.Manual
	biz    task.Business
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		tasks:  tasks_repo.NewMockQuerier(ctrl),
		users:  users_repo.NewMockQuerier(ctrl),
		orgs:   organizations_repo.NewMockQuerier(ctrl),
		audits: audit_business.NewMockBusiness(ctrl),
		clk:    clock.NewManual(testNow),
	}
	f.biz = task.NewTaskBusiness(f.tasks, f.users, authz.NewResolver(f.orgs), f.audits, f.clk)
	return f
}

func adminActor() model.Actor {
	return model.Actor{ID: "user-admin", Role: model.RoleAdmin, OrganizationID: "org-a"}
}

func viewerActor() model.Actor {
	return model.Actor{ID: "user-viewer", Role: model.RoleViewer, OrganizationID: "org-a"}
}

func ownerActor() model.Actor {
	return model.Actor{ID: "user-owner", Role: model.RoleOwner, OrganizationID: "org-a"}
}

func strPtr(s string) *string { return &s }
