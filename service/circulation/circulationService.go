package circulation

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"librarycirc/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrBookNotFound    ErrCode = "BOOK_NOT_FOUND"
	ErrOutOfStock      ErrCode = "OUT_OF_STOCK"
	ErrLoanNotFound    ErrCode = "LOAN_NOT_FOUND"
	ErrAlreadyReturned ErrCode = "ALREADY_RETURNED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo interface {
	ListAvailable(ctx context.Context) ([]model.AvailableBook, error)
	ListOpen(ctx context.Context, userID int64) ([]model.OpenLoan, error)

	BookExists(ctx context.Context, bookID int64) (bool, error)
	InsertLoan(ctx context.Context, tx *sql.Tx, userID, bookID int64) (int64, error)
	TakeCopy(ctx context.Context, tx *sql.Tx, bookID int64) (bool, error)

	GetLoanForUpdate(ctx context.Context, tx *sql.Tx, loanID int64) (bookID int64, returnDate *time.Time, err error)
	MarkReturned(ctx context.Context, tx *sql.Tx, loanID int64) error
	PutCopyBack(ctx context.Context, tx *sql.Tx, bookID int64) error
}

type Service interface {
	// ListAvailable: books with at least one copy on the shelf.
	ListAvailable(ctx context.Context) ([]model.AvailableBook, error)

	// Issue: open a loan for the user and take one copy off the shelf.
	Issue(ctx context.Context, userID, bookID int64) (int64, error)

	// Return: close an open loan and put the copy back.
	Return(ctx context.Context, loanID int64) error

	// OpenLoans: the user's not-yet-returned loans.
	OpenLoans(ctx context.Context, userID int64) ([]model.OpenLoan, error)
}

// ----- Service implementation -----

type service struct {
	db *sql.DB
	r  Repo
}

func New(db *sql.DB, r Repo) Service { return &service{db: db, r: r} }

func (s *service) ListAvailable(ctx context.Context) ([]model.AvailableBook, error) {
	return s.r.ListAvailable(ctx)
}

// Issue inserts the loan and decrements the shelf count in one transaction.
// The decrement re-checks the count at commit time, so a stale listing can
// never drive it negative.
func (s *service) Issue(ctx context.Context, userID, bookID int64) (loanID int64, err error) {
	exists, err := s.r.BookExists(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, makeErr(ErrBookNotFound)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	loanID, err = s.r.InsertLoan(ctx, tx, userID, bookID)
	if err != nil {
		return 0, err
	}

	var ok bool
	ok, err = s.r.TakeCopy(ctx, tx, bookID)
	if err != nil {
		return 0, err
	}
	if !ok {
		err = makeErr(ErrOutOfStock)
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return loanID, nil
}

// Return closes the loan and puts the copy back. Returned is terminal: a
// loan that already has a return date is rejected, so the shelf count is
// incremented at most once per loan.
func (s *service) Return(ctx context.Context, loanID int64) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	bookID, returnDate, err := s.r.GetLoanForUpdate(ctx, tx, loanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = makeErr(ErrLoanNotFound)
		}
		return err
	}
	if returnDate != nil {
		err = makeErr(ErrAlreadyReturned)
		return err
	}

	if err = s.r.MarkReturned(ctx, tx, loanID); err != nil {
		return err
	}
	if err = s.r.PutCopyBack(ctx, tx, bookID); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) OpenLoans(ctx context.Context, userID int64) ([]model.OpenLoan, error) {
	return s.r.ListOpen(ctx, userID)
}
