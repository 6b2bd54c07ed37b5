package expenses

import (
	"context"
	"errors"
	"testing"
	"time"

	"spenttribe/internal/common"
)

type fakeRepo struct {
	rows    []Expense
	listRng *MonthRange
	listErr error

	deleteErr error
	deletedID string
}

func (f *fakeRepo) Create(ctx context.Context, e *Expense) (*Expense, error) {
	e.ID = "generated-id"
	f.rows = append(f.rows, *e)
	return e, nil
}

func (f *fakeRepo) List(ctx context.Context, rng *MonthRange) ([]Expense, error) {
	f.listRng = rng
	if f.listErr != nil {
		return nil, f.listErr
	}
	if rng == nil {
		return f.rows, nil
	}
	out := []Expense{}
	for _, e := range f.rows {
		if rng.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Expense, error) {
	for _, e := range f.rows {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id, userID string) error {
	f.deletedID = id
	return f.deleteErr
}

func (f *fakeRepo) SetReceiptKey(ctx context.Context, id, userID, key string) error {
	return nil
}

func TestService_CreateThenList(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo)

	created, err := s.Create(context.Background(), "u-1", 12.5, "groceries", "Food", NewDate(2024, time.February, 29))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected store-generated id")
	}

	// the new row shows up on the very next unfiltered list
	got, err := s.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestService_List_MonthFilterBoundaries(t *testing.T) {
	repo := &fakeRepo{rows: []Expense{
		{ID: "feb-29", UserID: "u-1", Amount: 1, Category: "Food", Date: NewDate(2024, time.February, 29)},
		{ID: "mar-01", UserID: "u-1", Amount: 2, Category: "Food", Date: NewDate(2024, time.March, 1)},
		{ID: "jan-31", UserID: "u-2", Amount: 3, Category: "Rent", Date: NewDate(2024, time.January, 31)},
	}}
	s := NewService(repo)

	got, err := s.List(context.Background(), "2024-02")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "feb-29" {
		t.Fatalf("month filter returned wrong rows: %+v", got)
	}
	if repo.listRng == nil {
		t.Fatalf("expected a range to be passed to the repository")
	}
}

func TestService_List_InvalidMonth(t *testing.T) {
	s := NewService(&fakeRepo{})

	_, err := s.List(context.Background(), "2024-2")
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want common.ErrorValidation, got %v", err)
	}
}

func TestService_Delete_PassesThroughNotFound(t *testing.T) {
	repo := &fakeRepo{deleteErr: common.ErrorNotFound}
	s := NewService(repo)

	err := s.Delete(context.Background(), "e-1", "intruder")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
	if repo.deletedID != "e-1" {
		t.Fatalf("expected delete to reach the repository")
	}
}
