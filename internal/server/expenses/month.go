package expenses

import (
	"fmt"
	"time"

	"spenttribe/internal/common"
)

// MonthRange is the half-open date range [Start, End) covering one calendar
// month. Both the expense listing filter and the monthly analytics use the
// same range computation.
type MonthRange struct {
	Start time.Time
	End   time.Time
}

// ParseMonth converts a "YYYY-MM" string into the range from the first day
// of that month (inclusive) to the first day of the following month
// (exclusive). December rolls over into January of the next year.
func ParseMonth(month string) (*MonthRange, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("%w: month must be in YYYY-MM format", common.ErrorValidation)
	}

	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return &MonthRange{Start: start, End: start.AddDate(0, 1, 0)}, nil
}

// Contains reports whether d falls inside the range.
func (r *MonthRange) Contains(d Date) bool {
	return !d.Before(r.Start) && d.Before(r.End)
}
