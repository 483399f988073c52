package jobs

import (
	"context"
	"time"

	"moto-rental-backend/internal/logger"
)

// FlagOverdueRentals reports active rentals past their expected return date.
// The rentals themselves are not mutated; the final charge is computed at
// settlement time, so this job only surfaces them for the operations team.
func (jr *JobRunner) FlagOverdueRentals() {
	jr.runWithRecovery("FlagOverdueRentals", func() {
		ctx := context.Background()

		query := `
			SELECT rent_id, driver_id, moto_id, expected_return_date
			FROM rentals
			WHERE actual_return_date IS NULL
			  AND expected_return_date < $1
		`

		today := time.Now().UTC().Format("2006-01-02")
		rows, err := jr.db.QueryContext(ctx, query, today)
		if err != nil {
			logger.Error("Failed to query overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				rentID         string
				driverID       string
				motoID         int32
				expectedReturn time.Time
			)
			if err := rows.Scan(&rentID, &driverID, &motoID, &expectedReturn); err != nil {
				logger.Error("Failed to scan overdue rental", "error", err)
				continue
			}
			logger.Warn("Rental overdue",
				"rent_id", rentID,
				"driver_id", driverID,
				"moto_id", motoID,
				"expected_return_date", expectedReturn.Format("2006-01-02"))
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rentals", "error", err)
			return
		}

		logger.Info("Flagged overdue rentals", "count", count)
	})
}

// SendReturnReminders reports active rentals whose expected return date is
// tomorrow so drivers can be reminded before the late fee kicks in.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()

		query := `
			SELECT rent_id, driver_id, moto_id, expected_return_date
			FROM rentals
			WHERE actual_return_date IS NULL
			  AND expected_return_date = $1
		`

		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
		rows, err := jr.db.QueryContext(ctx, query, tomorrow)
		if err != nil {
			logger.Error("Failed to query rentals due tomorrow", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				rentID         string
				driverID       string
				motoID         int32
				expectedReturn time.Time
			)
			if err := rows.Scan(&rentID, &driverID, &motoID, &expectedReturn); err != nil {
				logger.Error("Failed to scan rental due tomorrow", "error", err)
				continue
			}
			logger.Info("Return reminder",
				"rent_id", rentID,
				"driver_id", driverID,
				"moto_id", motoID,
				"expected_return_date", expectedReturn.Format("2006-01-02"))
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating rentals due tomorrow", "error", err)
			return
		}

		logger.Info("Sent return reminders", "count", count)
	})
}
