package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive  RentalStatus = "ACTIVE"
	RentalStatusSettled RentalStatus = "SETTLED"
)

// Rental is one rental contract. DailyRateCents is snapshotted from the
// plan catalog at creation time; later catalog changes never alter an
// existing rental. TotalCostCents holds the base estimate until the
// return date is informed, then the settled value.
type Rental struct {
	RentID             string       `json:"rent_id"`
	MotoID             int32        `json:"moto_id"`
	DriverID           string       `json:"driver_id"`
	StartDate          time.Time    `json:"start_date"`
	ExpectedReturnDate time.Time    `json:"expected_return_date"`
	ActualReturnDate   *time.Time   `json:"actual_return_date,omitempty"`
	PlanDays           int32        `json:"plan_days"`
	DailyRateCents     int64        `json:"daily_rate_cents"`
	TotalCostCents     int64        `json:"total_cost_cents"`
	Status             RentalStatus `json:"status"`
	CreatedOn          time.Time    `json:"created_on"`
	UpdatedOn          time.Time    `json:"updated_on"`
}

// Settled reports whether the return date has been informed.
func (r *Rental) Settled() bool {
	return r.ActualReturnDate != nil
}
