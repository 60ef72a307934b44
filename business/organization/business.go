// Package organization implements organization operations.
package organization

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kprajapati/tracker/errs"
	"github.com/kprajapati/tracker/model"
	"github.com/kprajapati/tracker/repository/organizations"
)

type CreateParams struct {
	Name     string
	ParentID *string
}

type Business interface {
	Create(ctx context.Context, params CreateParams) (model.Organization, error)
	List(ctx context.Context) ([]model.Organization, error)
}

type business struct {
	orgs organizations.Querier
}

func NewOrganizationBusiness(orgs organizations.Querier) Business {
	return &business{orgs: orgs}
}

// Create adds an organization, optionally under a parent. The parent must
// exist; the foreign key enforces it even when the existence probe reads
// a stale cache entry.
func (b *business) Create(ctx context.Context, params CreateParams) (model.Organization, error) {
	if params.Name == "" {
		return model.Organization{}, errs.New(errs.InvalidArgument, "organization name is required")
	}
	if params.ParentID != nil {
		exists, err := b.orgs.ExistsByID(ctx, *params.ParentID)
		if err != nil {
			return model.Organization{}, errs.Wrap(errs.Unavailable, "failed to check parent organization", err)
		}
		if !exists {
			return model.Organization{}, errs.New(errs.NotFound, "parent organization not found")
		}
	}

	created, err := b.orgs.Create(ctx, organizations.CreateParams{
		ID:       uuid.NewString(),
		Name:     params.Name,
		ParentID: params.ParentID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return model.Organization{}, errs.New(errs.NotFound, "parent organization not found")
		}
		return model.Organization{}, errs.Wrap(errs.Unavailable, "failed to create organization", err)
	}
	return created, nil
}

// List returns all organizations ordered by name.
func (b *business) List(ctx context.Context) ([]model.Organization, error) {
	orgs, err := b.orgs.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.Unavailable, "failed to list organizations", err)
	}
	return orgs, nil
}
