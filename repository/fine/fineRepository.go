package finerepo

import (
	"context"
	"database/sql"

	"librarycirc/model"
)

type Repo interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Fine, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]model.Fine, error) {
	const q = `
		SELECT f.amount, f.status
		FROM fines f
		WHERE f.loan_id IN (SELECT loan_id FROM loans WHERE user_id = $1)
		ORDER BY f.fine_id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Fine{}
	for rows.Next() {
		var f model.Fine
		if err := rows.Scan(&f.Amount, &f.Status); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
