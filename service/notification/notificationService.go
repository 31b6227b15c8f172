package notification

import (
	"context"

	"librarycirc/model"
)

type Repo interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)
}

type Service interface {
	// List: the user's pending notifications. Read only.
	List(ctx context.Context, userID int64) ([]model.Notification, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, userID int64) ([]model.Notification, error) {
	return s.r.ListByUser(ctx, userID)
}
