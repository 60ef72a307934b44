package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/kprajapati/tracker/model"
)

// Queries executes task SQL.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const taskColumns = `id, title, description, status, category, position, assignee_id, priority, due_date, created_by_id, organization_id, created_at, updated_at`

const createTask = `
INSERT INTO tasks (id, title, description, status, category, position, assignee_id, priority, due_date, created_by_id, organization_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
RETURNING ` + taskColumns

func (q *Queries) Create(ctx context.Context, params CreateParams) (model.Task, error) {
	row := q.db.QueryRow(ctx, createTask,
		params.ID,
		params.Title,
		params.Description,
		string(params.Status),
		params.Category,
		params.Position,
		params.AssigneeID,
		params.Priority,
		params.DueDate,
		params.CreatedByID,
		params.OrganizationID,
	)
	return scanTask(row)
}

const findTaskByID = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = $1
`

func (q *Queries) FindByID(ctx context.Context, id string) (*model.Task, error) {
	task, err := scanTask(q.db.QueryRow(ctx, findTaskByID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (q *Queries) Update(ctx context.Context, id string, params UpdateParams) (*model.Task, error) {
	sets := make([]string, 0, 10)
	args := make([]any, 0, 11)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Title != nil {
		add("title", *params.Title)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.Status != nil {
		add("status", string(*params.Status))
	}
	if params.Category != nil {
		add("category", *params.Category)
	}
	if params.Position != nil {
		add("position", *params.Position)
	}
	if params.AssigneeID != nil {
		add("assignee_id", *params.AssigneeID)
	}
	if params.Priority != nil {
		add("priority", *params.Priority)
	}
	if params.DueDate != nil {
		add("due_date", *params.DueDate)
	}
	if params.OrganizationID != nil {
		add("organization_id", *params.OrganizationID)
	}
	if len(sets) == 0 {
		return q.FindByID(ctx, id)
	}

	args = append(args, id)
	sql := fmt.Sprintf(
		"UPDATE tasks SET %s, updated_at = now() WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), taskColumns,
	)
	task, err := scanTask(q.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

const deleteTask = `
DELETE FROM tasks WHERE id = $1
`

func (q *Queries) Delete(ctx context.Context, id string) error {
	_, err := q.db.Exec(ctx, deleteTask, id)
	return err
}

func (q *Queries) ListByOrgIDs(ctx context.Context, params ListParams) ([]model.Task, int64, error) {
	if len(params.OrgIDs) == 0 {
		return nil, 0, nil
	}

	where := []string{"organization_id = ANY($1)"}
	args := []any{params.OrgIDs}
	filter := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		where = append(where, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	filter("status", params.Status)
	filter("category", params.Category)
	filter("assignee_id", params.AssigneeID)
	filter("priority", params.Priority)
	if params.Search != "" {
		args = append(args, params.Search)
		where = append(where, fmt.Sprintf(
			"(title ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')",
			len(args), len(args),
		))
	}
	whereClause := strings.Join(where, " AND ")

	countSQL := fmt.Sprintf("SELECT count(*) FROM tasks WHERE %s", whereClause)

	offset := (params.Page - 1) * params.Limit
	args = append(args, params.Limit, offset)
	listSQL := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE %s %s LIMIT $%d OFFSET $%d",
		taskColumns, whereClause, orderBy(params.Sort), len(args)-1, len(args),
	)

	rows, err := q.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.Task
	for rows.Next() {
		task, err := scanTaskRows(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, task)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.db.QueryRow(ctx, countSQL, args[:len(args)-2]...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func orderBy(sort model.TaskSort) string {
	switch sort {
	case model.TaskSortOverdueFirst:
		return `ORDER BY (status = 'overdue') DESC, (due_date IS NULL) ASC, due_date ASC, created_at DESC`
	case model.TaskSortDueSoon:
		return `ORDER BY (due_date IS NULL) ASC, due_date ASC, created_at DESC`
	default:
		return `ORDER BY position ASC, created_at DESC`
	}
}

func scanTask(row pgx.Row) (model.Task, error) {
	var task model.Task
	err := row.Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.Category,
		&task.Position, &task.AssigneeID, &task.Priority, &task.DueDate,
		&task.CreatedByID, &task.OrganizationID, &task.CreatedAt, &task.UpdatedAt,
	)
	return task, err
}

func scanTaskRows(rows pgx.Rows) (model.Task, error) {
	var task model.Task
	err := rows.Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.Category,
		&task.Position, &task.AssigneeID, &task.Priority, &task.DueDate,
		&task.CreatedByID, &task.OrganizationID, &task.CreatedAt, &task.UpdatedAt,
	)
	return task, err
}
