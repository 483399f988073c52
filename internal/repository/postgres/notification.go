package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/logger"
	"moto-rental-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.MotoNotification) error {
	query := `INSERT INTO moto_notifications (id, moto_identifier, year, model, license_plate, message, notified_at, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	logger.DatabaseCall("INSERT", "moto_notifications", "motoIdentifier", n.MotoIdentifier)
	n.CreatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, n.ID, n.MotoIdentifier, n.Year, n.Model, n.LicensePlate, n.Message, n.NotifiedAt, n.CreatedOn)
	logger.DatabaseResult("INSERT", 1, err, "notificationID", n.ID)
	return err
}

func (r *notificationRepository) List(ctx context.Context, limit, offset int32) ([]domain.MotoNotification, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM moto_notifications`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, moto_identifier, year, model, license_plate, message, notified_at, created_on
	          FROM moto_notifications ORDER BY notified_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []domain.MotoNotification
	for rows.Next() {
		var n domain.MotoNotification
		if err := rows.Scan(&n.ID, &n.MotoIdentifier, &n.Year, &n.Model, &n.LicensePlate, &n.Message, &n.NotifiedAt, &n.CreatedOn); err != nil {
			return nil, 0, err
		}
		notes = append(notes, n)
	}
	return notes, count, rows.Err()
}

func (r *notificationRepository) DeleteOlderThan(ctx context.Context, days int32) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM moto_notifications WHERE created_on < NOW() - INTERVAL '%d days'`, days)
	logger.DatabaseCall("DELETE", "moto_notifications", "olderThanDays", days)
	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err)
		return 0, err
	}
	affected, err := res.RowsAffected()
	logger.DatabaseResult("DELETE", affected, err)
	return affected, err
}
