package pricing

import (
	"time"

	"moto-rental-backend/internal/domain"
)

// Engine computes rental values. It is pure: no I/O, no mutation of the
// rental. The base cost and early penalty use the daily rate snapshotted
// on the rental; only the penalty rate is re-resolved from the catalog
// by plan duration.
type Engine struct {
	catalog *Catalog
}

func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// ComputeValue returns the total cost in cents for returning the rental
// on returnDate. Comparison is at calendar-date granularity: both dates
// are truncated to UTC midnight first, so time of day never shifts the
// day count.
func (e *Engine) ComputeValue(rental *domain.Rental, returnDate time.Time) (int64, error) {
	if rental.ExpectedReturnDate.IsZero() {
		return 0, domain.ErrMissingExpectedReturnDate
	}

	plan, err := e.catalog.Resolve(rental.PlanDays)
	if err != nil {
		return 0, err
	}

	baseCost := rental.DailyRateCents * int64(rental.PlanDays)

	expected := TruncateToDay(rental.ExpectedReturnDate)
	actual := TruncateToDay(returnDate)

	switch {
	case actual.Before(expected):
		unusedDays := wholeDaysBetween(actual, expected)
		penalty := unusedDays * rental.DailyRateCents * plan.EarlyReturnPenaltyBps / 10000
		return baseCost + penalty, nil
	case actual.After(expected):
		extraDays := wholeDaysBetween(expected, actual)
		return baseCost + extraDays*plan.LateReturnFeeCents, nil
	default:
		return baseCost, nil
	}
}

// TruncateToDay drops the time-of-day component, yielding UTC midnight
// of the same calendar date.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// wholeDaysBetween counts whole days from a to b; both must already be
// truncated to midnight and a must not be after b.
func wholeDaysBetween(a, b time.Time) int64 {
	return int64(b.Sub(a) / (24 * time.Hour))
}
