package auth

import (
	"context"
	"database/sql"

	"librarycirc/model"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByUsername(ctx context.Context, username string) (*model.User, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO users(first_name, last_name, user_name, phone_number, email, password_hash)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING user_id, created_at`,
		u.FirstName, u.LastName, u.Username, u.PhoneNumber, u.Email, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *repo) ByUsername(ctx context.Context, username string) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, `
        SELECT user_id, first_name, last_name, user_name, COALESCE(phone_number,''), email, password_hash, created_at
        FROM users
        WHERE user_name = $1`,
		username,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.PhoneNumber, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}
