package postgres

import (
	"database/sql"

	"moto-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

// Store bundles all repositories over one database handle.
type Store struct {
	db *sql.DB
	repository.DriverRepository
	repository.MotoRepository
	repository.RentalRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		DriverRepository:       NewDriverRepository(db),
		MotoRepository:         NewMotoRepository(db),
		RentalRepository:       NewRentalRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// DB exposes the underlying handle for jobs that run raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}
