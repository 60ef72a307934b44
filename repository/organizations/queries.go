package organizations

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/kprajapati/tracker/model"
)

// Queries executes organization SQL without any caching.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const createOrganization = `
INSERT INTO organizations (id, name, parent_id, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
RETURNING id, name, parent_id, created_at, updated_at
`

func (q *Queries) Create(ctx context.Context, params CreateParams) (model.Organization, error) {
	row := q.db.QueryRow(ctx, createOrganization, params.ID, params.Name, params.ParentID)
	var org model.Organization
	err := row.Scan(&org.ID, &org.Name, &org.ParentID, &org.CreatedAt, &org.UpdatedAt)
	return org, err
}

const findOrganizationByID = `
SELECT id, name, parent_id, created_at, updated_at
FROM organizations
WHERE id = $1
`

func (q *Queries) FindByID(ctx context.Context, id string) (*model.Organization, error) {
	row := q.db.QueryRow(ctx, findOrganizationByID, id)
	var org model.Organization
	err := row.Scan(&org.ID, &org.Name, &org.ParentID, &org.CreatedAt, &org.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

const organizationExists = `
SELECT EXISTS(SELECT 1 FROM organizations WHERE id = $1)
`

func (q *Queries) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, organizationExists, id).Scan(&exists)
	return exists, err
}

const findOrganizationChildren = `
SELECT id, name, parent_id, created_at, updated_at
FROM organizations
WHERE parent_id = $1
ORDER BY name
`

func (q *Queries) FindChildren(ctx context.Context, parentID string) ([]model.Organization, error) {
	rows, err := q.db.Query(ctx, findOrganizationChildren, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrganizations(rows)
}

const listOrganizations = `
SELECT id, name, parent_id, created_at, updated_at
FROM organizations
ORDER BY name
`

func (q *Queries) ListAll(ctx context.Context) ([]model.Organization, error) {
	rows, err := q.db.Query(ctx, listOrganizations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrganizations(rows)
}

func scanOrganizations(rows pgx.Rows) ([]model.Organization, error) {
	var orgs []model.Organization
	for rows.Next() {
		var org model.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.ParentID, &org.CreatedAt, &org.UpdatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}
