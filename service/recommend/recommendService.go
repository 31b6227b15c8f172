package recommend

import (
	"context"
	"sort"

	reviewrepo "librarycirc/repository/review"

	"librarycirc/model"
)

type Repo interface {
	Candidates(ctx context.Context, userID int64) ([]reviewrepo.Candidate, error)
}

type Service interface {
	// Recommend ranks books the user has not rated by mean rating, highest
	// first, ties broken by book id. Books nobody has rated are left out.
	Recommend(ctx context.Context, userID int64) ([]model.Recommendation, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Recommend(ctx context.Context, userID int64) ([]model.Recommendation, error) {
	candidates, err := s.r.Candidates(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		if !c.HasRatings {
			continue
		}
		out = append(out, model.Recommendation{
			BookID:          c.BookID,
			Title:           c.Title,
			AuthorFirstName: c.AuthorFirstName,
			AuthorLastName:  c.AuthorLastName,
			GenreName:       c.GenreName,
			AvgRating:       c.AvgRating,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRating != out[j].AvgRating {
			return out[i].AvgRating > out[j].AvgRating
		}
		return out[i].BookID < out[j].BookID
	})
	return out, nil
}
