package fine_test

import (
	"context"
	"testing"

	"librarycirc/model"
	"librarycirc/service/fine"
)

type repoMock struct {
	fines []model.Fine
}

func (m *repoMock) ListByUser(ctx context.Context, userID int64) ([]model.Fine, error) {
	return m.fines, nil
}

func TestListFines_NoFinesIsEmptyNotError(t *testing.T) {
	out, err := fine.New(&repoMock{fines: nil}).ListFines(context.Background(), 1)
	if err != nil {
		t.Fatalf("list fines: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("want empty slice, got %#v", out)
	}
}

func TestListFines_PassThrough(t *testing.T) {
	fines := []model.Fine{{Amount: 12.50, Status: model.FinePending}}
	out, err := fine.New(&repoMock{fines: fines}).ListFines(context.Background(), 1)
	if err != nil {
		t.Fatalf("list fines: %v", err)
	}
	if len(out) != 1 || out[0] != fines[0] {
		t.Fatalf("unexpected fines: %+v", out)
	}
}
