package auditlogs

import (
	"context"

	"github.com/kprajapati/tracker/model"
)

// Queries executes audit log SQL.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const createAuditLog = `
INSERT INTO audit_logs (id, action, user_id, resource_type, resource_id, details, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
RETURNING id, action, user_id, resource_type, resource_id, details, created_at
`

func (q *Queries) Create(ctx context.Context, params CreateParams) (model.AuditLog, error) {
	row := q.db.QueryRow(ctx, createAuditLog,
		params.ID,
		string(params.Action),
		params.UserID,
		params.ResourceType,
		params.ResourceID,
		params.Details,
	)
	var entry model.AuditLog
	err := row.Scan(
		&entry.ID, &entry.Action, &entry.UserID, &entry.ResourceType,
		&entry.ResourceID, &entry.Details, &entry.CreatedAt,
	)
	return entry, err
}

const listAuditLogs = `
SELECT a.id, a.action, a.user_id, a.resource_type, a.resource_id, a.details, a.created_at,
       COALESCE(u.name, ''), COALESCE(u.email, '')
FROM audit_logs a
LEFT JOIN users u ON u.id = a.user_id
ORDER BY a.created_at DESC
`

func (q *Queries) ListAll(ctx context.Context) ([]model.AuditLog, error) {
	rows, err := q.db.Query(ctx, listAuditLogs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.AuditLog
	for rows.Next() {
		var entry model.AuditLog
		if err := rows.Scan(
			&entry.ID, &entry.Action, &entry.UserID, &entry.ResourceType,
			&entry.ResourceID, &entry.Details, &entry.CreatedAt,
			&entry.UserName, &entry.UserEmail,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
