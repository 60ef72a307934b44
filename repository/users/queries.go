package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/kprajapati/tracker/model"
)

// Queries executes user SQL without any caching.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const userColumns = `id, email, name, password_hash, role, organization_id, created_at, updated_at`

const createUser = `
INSERT INTO users (id, email, name, password_hash, role, organization_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
RETURNING ` + userColumns

func (q *Queries) Create(ctx context.Context, params CreateParams) (model.User, error) {
	row := q.db.QueryRow(ctx, createUser,
		params.ID,
		params.Email,
		params.Name,
		params.PasswordHash,
		string(params.Role),
		params.OrganizationID,
	)
	return scanUser(row)
}

const findUserByID = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
`

func (q *Queries) FindByID(ctx context.Context, id string) (*model.User, error) {
	user, err := scanUser(q.db.QueryRow(ctx, findUserByID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

const findUserByEmail = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1
`

func (q *Queries) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := scanUser(q.db.QueryRow(ctx, findUserByEmail, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

const userExistsByEmail = `
SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)
`

func (q *Queries) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, userExistsByEmail, email).Scan(&exists)
	return exists, err
}

const listUsersByOrgIDs = `
SELECT ` + userColumns + `
FROM users
WHERE organization_id = ANY($1)
  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%')
ORDER BY name ASC
LIMIT $3 OFFSET $4
`

const countUsersByOrgIDs = `
SELECT count(*)
FROM users
WHERE organization_id = ANY($1)
  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%')
`

func (q *Queries) ListByOrgIDs(ctx context.Context, params ListParams) ([]model.User, int64, error) {
	if len(params.OrgIDs) == 0 {
		return nil, 0, nil
	}
	offset := (params.Page - 1) * params.Limit

	rows, err := q.db.Query(ctx, listUsersByOrgIDs, params.OrgIDs, params.Search, params.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(
			&user.ID, &user.Email, &user.Name, &user.PasswordHash,
			&user.Role, &user.OrganizationID, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.db.QueryRow(ctx, countUsersByOrgIDs, params.OrgIDs, params.Search).Scan(&total); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash,
		&user.Role, &user.OrganizationID, &user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}
