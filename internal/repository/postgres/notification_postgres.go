package postgres

import (
	"context"
	"database/sql"

	"doctrack/internal/model"
	"doctrack/internal/repository"
)

// NotificationPostgres stores notifications in the notifications table.
type NotificationPostgres struct {
	db *sql.DB
}

func NewNotificationPostgres(db *sql.DB) *NotificationPostgres {
	return &NotificationPostgres{db: db}
}

var _ repository.NotificationRepository = (*NotificationPostgres)(nil)

func (r *NotificationPostgres) Add(ctx context.Context, n *model.Notification) error {
	const q = `
		INSERT INTO notifications (id, title, message, display_time, read, doc_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	var docID sql.NullString
	if n.DocID != "" {
		docID = sql.NullString{String: n.DocID, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, q, n.ID, n.Title, n.Message, n.Timestamp, n.Read, docID, n.CreatedAt)
	return err
}

func (r *NotificationPostgres) List(ctx context.Context) ([]model.Notification, error) {
	const q = `
		SELECT id, title, message, display_time, read, doc_id, created_at
		FROM notifications
		ORDER BY seq DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Notification, 0)
	for rows.Next() {
		var (
			n     model.Notification
			docID sql.NullString
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Timestamp, &n.Read, &docID, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.DocID = docID.String
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *NotificationPostgres) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notifications`)
	return err
}
