// service/review/review_service_test.go
package review_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"librarycirc/model"
	"librarycirc/service/review"
)

type repoMock struct {
	listUnratedFn  func(ctx context.Context, userID int64) ([]model.UnratedBook, error)
	insertRatingFn func(ctx context.Context, userID, bookID int64, rating int, text string) error
	listAllFn      func(ctx context.Context) ([]model.ReviewRow, error)
}

func (m *repoMock) ListUnrated(ctx context.Context, userID int64) ([]model.UnratedBook, error) {
	return m.listUnratedFn(ctx, userID)
}
func (m *repoMock) InsertRating(ctx context.Context, userID, bookID int64, rating int, text string) error {
	return m.insertRatingFn(ctx, userID, bookID, rating, text)
}
func (m *repoMock) ListAll(ctx context.Context) ([]model.ReviewRow, error) {
	return m.listAllFn(ctx)
}

func TestSubmit_InvalidScore(t *testing.T) {
	s := review.New(&repoMock{})
	for _, score := range []int{0, -1, 6} {
		err := s.Submit(context.Background(), 1, 2, score, "")
		if review.Code(err) != review.ErrInvalidScore {
			t.Fatalf("score %d: got %v, want INVALID_SCORE", score, err)
		}
	}
}

func TestSubmit_Success(t *testing.T) {
	m := &repoMock{
		insertRatingFn: func(ctx context.Context, userID, bookID int64, rating int, text string) error {
			if userID != 1 || bookID != 2 || rating != 5 || text != "Great" {
				return errors.New("bad args")
			}
			return nil
		},
	}
	if err := review.New(m).Submit(context.Background(), 1, 2, 5, "Great"); err != nil {
		t.Fatalf("submit: %v", err)
	}
}

func TestSubmit_DuplicateRating(t *testing.T) {
	m := &repoMock{
		insertRatingFn: func(ctx context.Context, userID, bookID int64, rating int, text string) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "ratings_user_book_key"}
		},
	}
	err := review.New(m).Submit(context.Background(), 1, 2, 4, "again")
	if review.Code(err) != review.ErrDuplicateRating {
		t.Fatalf("got %v, want DUPLICATE_RATING", err)
	}
}

func TestSubmit_UnknownBook(t *testing.T) {
	m := &repoMock{
		insertRatingFn: func(ctx context.Context, userID, bookID int64, rating int, text string) error {
			return &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
		},
	}
	err := review.New(m).Submit(context.Background(), 1, 9999, 4, "")
	if review.Code(err) != review.ErrBookNotFound {
		t.Fatalf("got %v, want BOOK_NOT_FOUND", err)
	}
}

func TestBrowseAll(t *testing.T) {
	rows := []model.ReviewRow{{Reviewer: "alice", BookTitle: "Dune", Rating: 5, Review: "Great"}}
	m := &repoMock{
		listAllFn: func(ctx context.Context) ([]model.ReviewRow, error) { return rows, nil },
	}
	got, err := review.New(m).BrowseAll(context.Background())
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if len(got) != 1 || got[0] != rows[0] {
		t.Fatalf("unexpected rows: %+v", got)
	}
}
