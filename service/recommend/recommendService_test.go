package recommend_test

import (
	"context"
	"testing"

	reviewrepo "librarycirc/repository/review"
	"librarycirc/service/recommend"
)

type repoMock struct {
	candidates []reviewrepo.Candidate
}

func (m *repoMock) Candidates(ctx context.Context, userID int64) ([]reviewrepo.Candidate, error) {
	return m.candidates, nil
}

func TestRecommend_RanksByAvgRating(t *testing.T) {
	m := &repoMock{candidates: []reviewrepo.Candidate{
		{BookID: 1, Title: "Y", AvgRating: 3.0, HasRatings: true},
		{BookID: 2, Title: "X", AvgRating: 4.5, HasRatings: true},
	}}
	out, err := recommend.New(m).Recommend(context.Background(), 7)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(out) != 2 || out[0].Title != "X" || out[1].Title != "Y" {
		t.Fatalf("wrong order: %+v", out)
	}
}

func TestRecommend_ExcludesUnratedBooks(t *testing.T) {
	m := &repoMock{candidates: []reviewrepo.Candidate{
		{BookID: 1, Title: "rated", AvgRating: 2.0, HasRatings: true},
		{BookID: 2, Title: "never rated", HasRatings: false},
	}}
	out, err := recommend.New(m).Recommend(context.Background(), 7)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(out) != 1 || out[0].BookID != 1 {
		t.Fatalf("expected only the rated book: %+v", out)
	}
}

func TestRecommend_TieBreaksOnBookID(t *testing.T) {
	m := &repoMock{candidates: []reviewrepo.Candidate{
		{BookID: 9, Title: "b", AvgRating: 4.0, HasRatings: true},
		{BookID: 3, Title: "a", AvgRating: 4.0, HasRatings: true},
	}}
	out, err := recommend.New(m).Recommend(context.Background(), 7)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if out[0].BookID != 3 || out[1].BookID != 9 {
		t.Fatalf("tie not broken by id: %+v", out)
	}
}

func TestRecommend_Empty(t *testing.T) {
	out, err := recommend.New(&repoMock{}).Recommend(context.Background(), 7)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no recommendations, got %+v", out)
	}
}
