package reviewrepo

import (
	"context"
	"database/sql"

	"librarycirc/model"
)

// Candidate is an unrated book together with its rating aggregate.
// HasRatings is false when nobody has rated the book yet.
type Candidate struct {
	BookID          int64
	Title           string
	AuthorFirstName string
	AuthorLastName  string
	GenreName       string
	AvgRating       float64
	HasRatings      bool
}

type Repo interface {
	ListUnrated(ctx context.Context, userID int64) ([]model.UnratedBook, error)
	InsertRating(ctx context.Context, userID, bookID int64, rating int, review string) error
	ListAll(ctx context.Context) ([]model.ReviewRow, error)
	Candidates(ctx context.Context, userID int64) ([]Candidate, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) ListUnrated(ctx context.Context, userID int64) ([]model.UnratedBook, error) {
	const q = `
		SELECT b.book_id, b.title
		FROM books b
		WHERE NOT EXISTS (
			SELECT 1 FROM ratings r
			WHERE r.book_id = b.book_id AND r.user_id = $1
		)
		ORDER BY b.book_id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.UnratedBook
	for rows.Next() {
		var b model.UnratedBook
		if err := rows.Scan(&b.BookID, &b.Title); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) InsertRating(ctx context.Context, userID, bookID int64, rating int, review string) error {
	const q = `
		INSERT INTO ratings (user_id, book_id, rating, review)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, q, userID, bookID, rating, review)
	return err
}

func (r *repo) ListAll(ctx context.Context) ([]model.ReviewRow, error) {
	const q = `
		SELECT reviewer, book_title, rating, COALESCE(review, '')
		FROM all_reviews`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ReviewRow
	for rows.Next() {
		var v model.ReviewRow
		if err := rows.Scan(&v.Reviewer, &v.BookTitle, &v.Rating, &v.Review); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *repo) Candidates(ctx context.Context, userID int64) ([]Candidate, error) {
	const q = `
		SELECT b.book_id, b.title, a.first_name, a.last_name, g.genre_name,
		       AVG(r.rating)::FLOAT8
		FROM books b
		JOIN authors a ON a.author_id = b.author_id
		JOIN genres g ON g.genre_id = b.genre_id
		LEFT JOIN ratings r ON r.book_id = b.book_id
		WHERE NOT EXISTS (
			SELECT 1 FROM ratings mine
			WHERE mine.book_id = b.book_id AND mine.user_id = $1
		)
		GROUP BY b.book_id, b.title, a.first_name, a.last_name, g.genre_name
		ORDER BY b.book_id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		var c Candidate
		var avg sql.NullFloat64
		if err := rows.Scan(&c.BookID, &c.Title, &c.AuthorFirstName, &c.AuthorLastName, &c.GenreName, &avg); err != nil {
			return nil, err
		}
		c.AvgRating = avg.Float64
		c.HasRatings = avg.Valid
		out = append(out, c)
	}
	return out, rows.Err()
}
