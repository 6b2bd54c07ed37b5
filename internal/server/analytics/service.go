// Package analytics folds the household's expenses for one calendar month
// into grouped spending totals.
package analytics

import (
	"context"
	"sort"

	"spenttribe/internal/server/expenses"
)

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type UserTotal struct {
	Username string  `json:"username"`
	Total    float64 `json:"total"`
}

// Report is the monthly breakdown. Both slices are sorted by total,
// descending, and are empty (not nil) when the month has no expenses.
type Report struct {
	ByCategory []CategoryTotal `json:"byCategory"`
	ByUser     []UserTotal     `json:"byUser"`
}

// UnknownUser labels expenses whose owning username could not be resolved.
const UnknownUser = "Unknown"

type Service struct {
	repo expenses.Repository
}

func NewService(repo expenses.Repository) *Service {
	return &Service{repo: repo}
}

// Monthly aggregates all members' expenses for the given "YYYY-MM" month
// into per-category and per-user sums. Categories and users without
// expenses that month are omitted rather than zero-filled.
func (s *Service) Monthly(ctx context.Context, month string) (*Report, error) {

	rng, err := expenses.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.List(ctx, rng)
	if err != nil {
		return nil, err
	}

	categoryTotals := map[string]float64{}
	userTotals := map[string]float64{}

	for _, e := range rows {
		categoryTotals[e.Category] += e.Amount

		username := e.Username
		if username == "" {
			username = UnknownUser
		}
		userTotals[username] += e.Amount
	}

	report := &Report{
		ByCategory: make([]CategoryTotal, 0, len(categoryTotals)),
		ByUser:     make([]UserTotal, 0, len(userTotals)),
	}

	for category, total := range categoryTotals {
		report.ByCategory = append(report.ByCategory, CategoryTotal{Category: category, Total: total})
	}
	for username, total := range userTotals {
		report.ByUser = append(report.ByUser, UserTotal{Username: username, Total: total})
	}

	sort.SliceStable(report.ByCategory, func(i, j int) bool {
		return report.ByCategory[i].Total > report.ByCategory[j].Total
	})
	sort.SliceStable(report.ByUser, func(i, j int) bool {
		return report.ByUser[i].Total > report.ByUser[j].Total
	})

	return report, nil
}
