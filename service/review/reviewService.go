package review

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"librarycirc/model"
)

type ErrCode string

const (
	ErrInvalidScore    ErrCode = "INVALID_SCORE"
	ErrDuplicateRating ErrCode = "DUPLICATE_RATING"
	ErrBookNotFound    ErrCode = "BOOK_NOT_FOUND"
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
	ListUnrated(ctx context.Context, userID int64) ([]model.UnratedBook, error)
	InsertRating(ctx context.Context, userID, bookID int64, rating int, review string) error
	ListAll(ctx context.Context) ([]model.ReviewRow, error)
}

type Service interface {
	// UnratedBooks: books the user has not reviewed yet.
	UnratedBooks(ctx context.Context, userID int64) ([]model.UnratedBook, error)

	// Submit: one rating per (user, book), score 1..5.
	Submit(ctx context.Context, userID, bookID int64, score int, reviewText string) error

	// BrowseAll: the full all_reviews projection.
	BrowseAll(ctx context.Context) ([]model.ReviewRow, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) UnratedBooks(ctx context.Context, userID int64) ([]model.UnratedBook, error) {
	return s.r.ListUnrated(ctx, userID)
}

func (s *service) Submit(ctx context.Context, userID, bookID int64, score int, reviewText string) error {
	if score < 1 || score > 5 {
		return makeErr(ErrInvalidScore)
	}
	if err := s.r.InsertRating(ctx, userID, bookID, score, reviewText); err != nil {
		if derr := mapConstraintErr(err); derr != nil {
			return derr
		}
		return err
	}
	return nil
}

// mapConstraintErr turns the unique-pair and foreign-key violations raised at
// commit time into the codes controllers render. The existing rating row is
// untouched when the insert is rejected.
func mapConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return makeErr(ErrDuplicateRating)
	case pgerrcode.ForeignKeyViolation:
		return makeErr(ErrBookNotFound)
	}
	return nil
}

func (s *service) BrowseAll(ctx context.Context) ([]model.ReviewRow, error) {
	return s.r.ListAll(ctx)
}
