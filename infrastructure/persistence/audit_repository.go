package persistence

import (
	"context"
	"database/sql"
	"time"

	"yt-companion/domain/model"
)

// AuditRepository appends to the immutable event log. Rows are never
// updated or deleted.
type AuditRepository struct{ db *sql.DB }

func NewAuditRepository(db *sql.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Append(ctx context.Context, action, details string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO logs (action, details, timestamp) VALUES ($1,$2,$3)`,
		action, details, time.Now().UTC())
	return err
}

func (r *AuditRepository) Recent(ctx context.Context, limit int) ([]model.AuditEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, action, details, timestamp FROM logs ORDER BY timestamp DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.AuditEvent
	for rows.Next() {
		var e model.AuditEvent
		if err := rows.Scan(&e.ID, &e.Action, &e.Details, &e.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
