package notificationrepo

import (
	"context"
	"database/sql"

	"librarycirc/model"
)

type Repo interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	const q = `
		SELECT notification_type, message
		FROM notifications
		WHERE user_id = $1
		ORDER BY notification_id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.Type, &n.Message); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
