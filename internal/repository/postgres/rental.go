package postgres

import (
	"context"
	"database/sql"
	"time"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/logger"
	"moto-rental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Add(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (rent_id, moto_id, driver_id, start_date, expected_return_date, plan_days, daily_rate_cents, total_cost_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	logger.DatabaseCall("INSERT", "rentals", "rentID", rt.RentID)
	now := time.Now().UTC()
	rt.CreatedOn = now
	rt.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query,
		rt.RentID, rt.MotoID, rt.DriverID, rt.StartDate, rt.ExpectedReturnDate,
		rt.PlanDays, rt.DailyRateCents, rt.TotalCostCents, rt.Status, rt.CreatedOn, rt.UpdatedOn)
	logger.DatabaseResult("INSERT", 1, err, "rentID", rt.RentID)
	return err
}

func (r *rentalRepository) FindByIdentifier(ctx context.Context, rentID string) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT rent_id, moto_id, driver_id, start_date, expected_return_date, actual_return_date, plan_days, daily_rate_cents, total_cost_cents, status, created_on, updated_on
	          FROM rentals WHERE rent_id = $1`
	err := r.db.QueryRowContext(ctx, query, rentID).Scan(
		&rt.RentID, &rt.MotoID, &rt.DriverID, &rt.StartDate, &rt.ExpectedReturnDate,
		&rt.ActualReturnDate, &rt.PlanDays, &rt.DailyRateCents, &rt.TotalCostCents,
		&rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// Settle is conditional on actual_return_date still being NULL so that
// two concurrent settles can never both commit.
func (r *rentalRepository) Settle(ctx context.Context, rt *domain.Rental) (bool, error) {
	query := `UPDATE rentals SET actual_return_date=$1, total_cost_cents=$2, status=$3, updated_on=$4
	          WHERE rent_id=$5 AND actual_return_date IS NULL`
	logger.DatabaseCall("UPDATE", "rentals", "rentID", rt.RentID)
	res, err := r.db.ExecContext(ctx, query,
		rt.ActualReturnDate, rt.TotalCostCents, rt.Status, time.Now().UTC(), rt.RentID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "rentID", rt.RentID)
		return false, err
	}
	affected, err := res.RowsAffected()
	logger.DatabaseResult("UPDATE", affected, err, "rentID", rt.RentID)
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
