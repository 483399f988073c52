package pricing

import (
	"fmt"

	"moto-rental-backend/internal/domain"
)

// All money values are integer cents and penalty rates are basis points,
// so every computation below is exact integer arithmetic.

// LateReturnDailyFeeCents is charged per extra day regardless of plan.
const LateReturnDailyFeeCents int64 = 5000

// Plan is one rental plan: a fixed duration with its daily rate and
// early-return penalty policy.
type Plan struct {
	Days                  int32 `json:"days"`
	DailyRateCents        int64 `json:"daily_rate_cents"`
	EarlyReturnPenaltyBps int64 `json:"early_return_penalty_bps"`
	LateReturnFeeCents    int64 `json:"late_return_fee_cents"`
}

// BaseCostCents is the plan price before any adjustment.
func (p Plan) BaseCostCents() int64 {
	return p.DailyRateCents * int64(p.Days)
}

// Catalog is an immutable lookup of rental plans by duration. Build one
// with DefaultCatalog (or NewCatalog in tests) and inject it; it is
// never global mutable state.
type Catalog struct {
	plans map[int32]Plan
	order []int32
}

// NewCatalog builds a catalog from the given plans, preserving order
// for All.
func NewCatalog(plans ...Plan) *Catalog {
	c := &Catalog{plans: make(map[int32]Plan, len(plans))}
	for _, p := range plans {
		if _, dup := c.plans[p.Days]; !dup {
			c.order = append(c.order, p.Days)
		}
		c.plans[p.Days] = p
	}
	return c
}

// DefaultCatalog returns the deployed plan table.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Plan{Days: 7, DailyRateCents: 3000, EarlyReturnPenaltyBps: 2000, LateReturnFeeCents: LateReturnDailyFeeCents},
		Plan{Days: 15, DailyRateCents: 2800, EarlyReturnPenaltyBps: 4000, LateReturnFeeCents: LateReturnDailyFeeCents},
		Plan{Days: 30, DailyRateCents: 2200, EarlyReturnPenaltyBps: 0, LateReturnFeeCents: LateReturnDailyFeeCents},
		Plan{Days: 45, DailyRateCents: 2000, EarlyReturnPenaltyBps: 0, LateReturnFeeCents: LateReturnDailyFeeCents},
		Plan{Days: 50, DailyRateCents: 1800, EarlyReturnPenaltyBps: 0, LateReturnFeeCents: LateReturnDailyFeeCents},
	)
}

// Resolve returns the plan for the given duration, or ErrInvalidPlan
// carrying the allowed durations for user-facing messages.
func (c *Catalog) Resolve(days int32) (Plan, error) {
	p, ok := c.plans[days]
	if !ok {
		return Plan{}, fmt.Errorf("%w: available plans are %v days", domain.ErrInvalidPlan, c.order)
	}
	return p, nil
}

// All returns every plan in catalog order.
func (c *Catalog) All() []Plan {
	out := make([]Plan, 0, len(c.order))
	for _, d := range c.order {
		out = append(out, c.plans[d])
	}
	return out
}
