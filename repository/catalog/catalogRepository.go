package catalogrepo

import (
	"context"
	"database/sql"
)

// Repo holds the per-statement pieces of a donation. Lookups and inserts run
// against the donation's transaction so the whole dedup-or-create sequence
// commits (or rolls back) as one unit.
type Repo interface {
	FindAuthor(ctx context.Context, tx *sql.Tx, firstName, lastName string) (int64, error)
	InsertAuthor(ctx context.Context, tx *sql.Tx, firstName, lastName string) (int64, error)

	FindGenre(ctx context.Context, tx *sql.Tx, name string) (int64, error)
	InsertGenre(ctx context.Context, tx *sql.Tx, name string) (int64, error)

	FindPublisher(ctx context.Context, tx *sql.Tx, name string) (int64, error)
	InsertPublisher(ctx context.Context, tx *sql.Tx, name string) (int64, error)

	InsertBook(ctx context.Context, tx *sql.Tx, title string, authorID, genreID, publisherID int64, copies int) (int64, error)
}

type repo struct{}

func New() Repo { return &repo{} }

func (r *repo) FindAuthor(ctx context.Context, tx *sql.Tx, firstName, lastName string) (int64, error) {
	const q = `
		SELECT author_id FROM authors
		WHERE first_name = $1 AND last_name = $2`
	var id int64
	err := tx.QueryRowContext(ctx, q, firstName, lastName).Scan(&id)
	return id, err
}

func (r *repo) InsertAuthor(ctx context.Context, tx *sql.Tx, firstName, lastName string) (int64, error) {
	const q = `
		INSERT INTO authors (first_name, last_name)
		VALUES ($1,$2)
		RETURNING author_id`
	var id int64
	err := tx.QueryRowContext(ctx, q, firstName, lastName).Scan(&id)
	return id, err
}

func (r *repo) FindGenre(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	const q = `SELECT genre_id FROM genres WHERE genre_name = $1`
	var id int64
	err := tx.QueryRowContext(ctx, q, name).Scan(&id)
	return id, err
}

func (r *repo) InsertGenre(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	const q = `INSERT INTO genres (genre_name) VALUES ($1) RETURNING genre_id`
	var id int64
	err := tx.QueryRowContext(ctx, q, name).Scan(&id)
	return id, err
}

func (r *repo) FindPublisher(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	const q = `SELECT publisher_id FROM publishers WHERE publisher_name = $1`
	var id int64
	err := tx.QueryRowContext(ctx, q, name).Scan(&id)
	return id, err
}

func (r *repo) InsertPublisher(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	const q = `INSERT INTO publishers (publisher_name) VALUES ($1) RETURNING publisher_id`
	var id int64
	err := tx.QueryRowContext(ctx, q, name).Scan(&id)
	return id, err
}

func (r *repo) InsertBook(ctx context.Context, tx *sql.Tx, title string, authorID, genreID, publisherID int64, copies int) (int64, error) {
	const q = `
		INSERT INTO books (title, author_id, genre_id, publisher_id, available_copies)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING book_id`
	var id int64
	err := tx.QueryRowContext(ctx, q, title, authorID, genreID, publisherID, copies).Scan(&id)
	return id, err
}
