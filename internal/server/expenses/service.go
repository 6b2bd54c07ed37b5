package expenses

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create logs an expense owned by userID and returns the created row.
func (s *Service) Create(ctx context.Context, userID string, amount float64, description, category string, date Date) (*Expense, error) {

	e := &Expense{
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
	}

	e, err := s.repo.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("error creating expense: %w", err)
	}

	return e, nil
}

// List returns the shared household feed, newest first. When month is
// non-empty it must be "YYYY-MM" and limits the feed to that calendar month.
// The feed is deliberately not scoped to the requesting user: every member
// sees every expense.
func (s *Service) List(ctx context.Context, month string) ([]Expense, error) {

	var rng *MonthRange
	if month != "" {
		var err error
		rng, err = ParseMonth(month)
		if err != nil {
			return nil, err
		}
	}

	return s.repo.List(ctx, rng)
}

// Delete removes the expense when it is owned by userID. A missing row and
// a row owned by another member are indistinguishable to the caller.
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
