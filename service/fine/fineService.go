package fine

import (
	"context"

	"librarycirc/model"
)

type Repo interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Fine, error)
}

type Service interface {
	// ListFines: outstanding and settled fines tied to the user's loans.
	// A user with no fines gets an empty list, not an error.
	ListFines(ctx context.Context, userID int64) ([]model.Fine, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) ListFines(ctx context.Context, userID int64) ([]model.Fine, error) {
	fines, err := s.r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if fines == nil {
		fines = []model.Fine{}
	}
	return fines, nil
}
