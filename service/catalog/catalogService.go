package catalog

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// A donated book starts with a single copy on the shelf.
const donationCopies = 1

type ErrCode string

const (
	ErrBadInput        ErrCode = "BAD_INPUT"
	ErrMalformedAuthor ErrCode = "MALFORMED_AUTHOR"
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
	FindAuthor(ctx context.Context, tx *sql.Tx, firstName, lastName string) (int64, error)
	InsertAuthor(ctx context.Context, tx *sql.Tx, firstName, lastName string) (int64, error)

	FindGenre(ctx context.Context, tx *sql.Tx, name string) (int64, error)
	InsertGenre(ctx context.Context, tx *sql.Tx, name string) (int64, error)

	FindPublisher(ctx context.Context, tx *sql.Tx, name string) (int64, error)
	InsertPublisher(ctx context.Context, tx *sql.Tx, name string) (int64, error)

	InsertBook(ctx context.Context, tx *sql.Tx, title string, authorID, genreID, publisherID int64, copies int) (int64, error)
}

type Service interface {
	// Donate resolves author/genre/publisher by natural key (creating the
	// missing ones) and inserts the book, all in one transaction. Names are
	// expected already normalized by the caller.
	Donate(ctx context.Context, title, authorName, genreName, publisherName string) (int64, error)

	ResolveOrCreateAuthor(ctx context.Context, firstName, lastName string) (int64, error)
	ResolveOrCreateGenre(ctx context.Context, name string) (int64, error)
	ResolveOrCreatePublisher(ctx context.Context, name string) (int64, error)
}

type service struct {
	db *sql.DB
	r  Repo
}

func New(db *sql.DB, r Repo) Service { return &service{db: db, r: r} }

// SplitAuthorName splits a display name into the natural key used by the
// authors table: first token and last token. Middle names are ignored.
func SplitAuthorName(name string) (first, last string, err error) {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return "", "", makeErr(ErrMalformedAuthor)
	}
	return parts[0], parts[len(parts)-1], nil
}

func (s *service) Donate(ctx context.Context, title, authorName, genreName, publisherName string) (bookID int64, err error) {
	if title == "" || authorName == "" || genreName == "" || publisherName == "" {
		return 0, makeErr(ErrBadInput)
	}
	first, last, err := SplitAuthorName(authorName)
	if err != nil {
		return 0, err
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

	authorID, err := s.resolveAuthor(ctx, tx, first, last)
	if err != nil {
		return 0, err
	}
	genreID, err := s.resolveGenre(ctx, tx, genreName)
	if err != nil {
		return 0, err
	}
	publisherID, err := s.resolvePublisher(ctx, tx, publisherName)
	if err != nil {
		return 0, err
	}

	bookID, err = s.r.InsertBook(ctx, tx, title, authorID, genreID, publisherID, donationCopies)
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return bookID, nil
}

func (s *service) ResolveOrCreateAuthor(ctx context.Context, firstName, lastName string) (id int64, err error) {
	if firstName == "" || lastName == "" {
		return 0, makeErr(ErrBadInput)
	}
	return s.inTx(ctx, func(tx *sql.Tx) (int64, error) {
		return s.resolveAuthor(ctx, tx, firstName, lastName)
	})
}

func (s *service) ResolveOrCreateGenre(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, makeErr(ErrBadInput)
	}
	return s.inTx(ctx, func(tx *sql.Tx) (int64, error) {
		return s.resolveGenre(ctx, tx, name)
	})
}

func (s *service) ResolveOrCreatePublisher(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, makeErr(ErrBadInput)
	}
	return s.inTx(ctx, func(tx *sql.Tx) (int64, error) {
		return s.resolvePublisher(ctx, tx, name)
	})
}

func (s *service) inTx(ctx context.Context, fn func(tx *sql.Tx) (int64, error)) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if id, err = fn(tx); err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *service) resolveAuthor(ctx context.Context, tx *sql.Tx, first, last string) (int64, error) {
	id, err := s.r.FindAuthor(ctx, tx, first, last)
	if errors.Is(err, sql.ErrNoRows) {
		return s.r.InsertAuthor(ctx, tx, first, last)
	}
	return id, err
}

func (s *service) resolveGenre(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	id, err := s.r.FindGenre(ctx, tx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return s.r.InsertGenre(ctx, tx, name)
	}
	return id, err
}

func (s *service) resolvePublisher(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	id, err := s.r.FindPublisher(ctx, tx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return s.r.InsertPublisher(ctx, tx, name)
	}
	return id, err
}
