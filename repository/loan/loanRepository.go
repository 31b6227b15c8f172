package loanrepo

import (
	"context"
	"database/sql"
	"time"

	"librarycirc/model"
)

type Repo interface {
	// Listing
	ListAvailable(ctx context.Context) ([]model.AvailableBook, error)
	ListOpen(ctx context.Context, userID int64) ([]model.OpenLoan, error)

	// Issue
	BookExists(ctx context.Context, bookID int64) (bool, error)
	InsertLoan(ctx context.Context, tx *sql.Tx, userID, bookID int64) (int64, error)
	TakeCopy(ctx context.Context, tx *sql.Tx, bookID int64) (bool, error)

	// Return
	GetLoanForUpdate(ctx context.Context, tx *sql.Tx, loanID int64) (bookID int64, returnDate *time.Time, err error)
	MarkReturned(ctx context.Context, tx *sql.Tx, loanID int64) error
	PutCopyBack(ctx context.Context, tx *sql.Tx, bookID int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) ListAvailable(ctx context.Context) ([]model.AvailableBook, error) {
	const q = `
		SELECT book_id, title, available_copies
		FROM books
		WHERE available_copies > 0
		ORDER BY book_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AvailableBook
	for rows.Next() {
		var b model.AvailableBook
		if err := rows.Scan(&b.BookID, &b.Title, &b.AvailableCopies); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) ListOpen(ctx context.Context, userID int64) ([]model.OpenLoan, error) {
	const q = `
		SELECT l.loan_id, b.title, l.loan_date
		FROM loans l
		JOIN books b ON b.book_id = l.book_id
		WHERE l.user_id = $1 AND l.return_date IS NULL
		ORDER BY l.loan_id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.OpenLoan
	for rows.Next() {
		var l model.OpenLoan
		if err := rows.Scan(&l.LoanID, &l.Title, &l.LoanDate); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *repo) BookExists(ctx context.Context, bookID int64) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM books WHERE book_id = $1)`
	var ok bool
	err := r.db.QueryRowContext(ctx, q, bookID).Scan(&ok)
	return ok, err
}

func (r *repo) InsertLoan(ctx context.Context, tx *sql.Tx, userID, bookID int64) (int64, error) {
	const q = `
		INSERT INTO loans (user_id, book_id, loan_date)
		VALUES ($1, $2, CURRENT_DATE)
		RETURNING loan_id`
	var id int64
	err := tx.QueryRowContext(ctx, q, userID, bookID).Scan(&id)
	return id, err
}

// TakeCopy decrements the shelf count only while it is positive. A false
// result means the last copy was gone by commit time.
func (r *repo) TakeCopy(ctx context.Context, tx *sql.Tx, bookID int64) (bool, error) {
	const q = `
		UPDATE books
		SET available_copies = available_copies - 1
		WHERE book_id = $1
		AND available_copies > 0`
	res, err := tx.ExecContext(ctx, q, bookID)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return aff > 0, nil
}

func (r *repo) GetLoanForUpdate(ctx context.Context, tx *sql.Tx, loanID int64) (int64, *time.Time, error) {
	const q = `
		SELECT book_id, return_date
		FROM loans
		WHERE loan_id = $1
		FOR UPDATE`
	var bookID int64
	var returned *time.Time
	err := tx.QueryRowContext(ctx, q, loanID).Scan(&bookID, &returned)
	return bookID, returned, err
}

func (r *repo) MarkReturned(ctx context.Context, tx *sql.Tx, loanID int64) error {
	const q = `
		UPDATE loans
		SET return_date = CURRENT_DATE
		WHERE loan_id = $1`
	_, err := tx.ExecContext(ctx, q, loanID)
	return err
}

func (r *repo) PutCopyBack(ctx context.Context, tx *sql.Tx, bookID int64) error {
	const q = `
		UPDATE books
		SET available_copies = available_copies + 1
		WHERE book_id = $1`
	_, err := tx.ExecContext(ctx, q, bookID)
	return err
}
