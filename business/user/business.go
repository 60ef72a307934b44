// Package user implements account operations scoped by organization.
package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kprajapati/tracker/business/authz"
	"github.com/kprajapati/tracker/errs"
	"github.com/kprajapati/tracker/model"
	"github.com/kprajapati/tracker/repository/users"
)

type CreateParams struct {
	Email          string
	Name           string
	PasswordHash   string
	Role           model.Role
	OrganizationID string
}

type ListParams struct {
	Search string
	Page   int32
	Limit  int32
}

type ListResult struct {
	Items []model.User
	Total int64
	Page  int32
	Limit int32
}

type Business interface {
	Create(ctx context.Context, params CreateParams) (model.User, error)
	Get(ctx context.Context, actor model.Actor, id string) (model.User, error)
	List(ctx context.Context, actor model.Actor, params ListParams) (ListResult, error)
}

type business struct {
	users    users.Querier
	resolver *authz.Resolver
}

func NewUserBusiness(userRepo users.Querier, resolver *authz.Resolver) Business {
	return &business{users: userRepo, resolver: resolver}
}

// Create registers an account. The email must be unused; the unique index
// closes the probe-then-insert race.
func (b *business) Create(ctx context.Context, params CreateParams) (model.User, error) {
	if !params.Role.Valid() {
		return model.User{}, errs.New(errs.InvalidArgument, "unknown role")
	}
	taken, err := b.users.ExistsByEmail(ctx, params.Email)
	if err != nil {
		return model.User{}, errs.Wrap(errs.Unavailable, "failed to check email", err)
	}
	if taken {
		return model.User{}, errs.New(errs.Conflict, "email is already registered")
	}

	created, err := b.users.Create(ctx, users.CreateParams{
		ID:             uuid.NewString(),
		Email:          params.Email,
		Name:           params.Name,
		PasswordHash:   params.PasswordHash,
		Role:           params.Role,
		OrganizationID: params.OrganizationID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.New(errs.Conflict, "email is already registered")
		}
		return model.User{}, errs.Wrap(errs.Unavailable, "failed to create user", err)
	}
	return created, nil
}

// Get returns one user if their organization lies within the actor's scope.
func (b *business) Get(ctx context.Context, actor model.Actor, id string) (model.User, error) {
	found, err := b.users.FindByID(ctx, id)
	if err != nil {
		return model.User{}, errs.Wrap(errs.Unavailable, "failed to load user", err)
	}
	if found == nil {
		return model.User{}, errs.New(errs.NotFound, "user not found")
	}
	allowed, err := b.resolver.CanAccessOrganization(ctx, actor, found.OrganizationID)
	if err != nil {
		return model.User{}, errs.Wrap(errs.Unavailable, "failed to resolve organization scope", err)
	}
	if !allowed {
		return model.User{}, errs.New(errs.PermissionDenied, "not allowed to access this user")
	}
	return *found, nil
}

// List returns one page of users within the actor's scope. Requires the
// manage_users permission (Owner only).
func (b *business) List(ctx context.Context, actor model.Actor, params ListParams) (ListResult, error) {
	if !model.HasPermission(actor.Role, model.PermissionManageUsers) {
		return ListResult{}, errs.New(errs.PermissionDenied, "not allowed to manage users")
	}
	orgIDs, err := b.resolver.AccessibleOrganizations(ctx, actor)
	if err != nil {
		return ListResult{}, errs.Wrap(errs.Unavailable, "failed to resolve organization scope", err)
	}
	items, total, err := b.users.ListByOrgIDs(ctx, users.ListParams{
		OrgIDs: orgIDs,
		Search: params.Search,
		Page:   params.Page,
		Limit:  params.Limit,
	})
	if err != nil {
		return ListResult{}, errs.Wrap(errs.Unavailable, "failed to list users", err)
	}
	return ListResult{Items: items, Total: total, Page: params.Page, Limit: params.Limit}, nil
}
