package service

import (
	"context"
	"time"

	"moto-rental-backend/internal/domain"
)

type RentalService interface {
	// CreateRental validates eligibility, prices the contract from the
	// plan catalog and persists it. The contract becomes effective the
	// next calendar day.
	CreateRental(ctx context.Context, driverID, motoIdentifier string, planDays int32) (*domain.Rental, error)
	// SimulateReturnValue computes what the rental would cost if the
	// motorcycle were returned on the given date. Read-only.
	SimulateReturnValue(ctx context.Context, rentID string, returnDate time.Time) (int64, error)
	// SettleRental records the actual return date and finalizes the
	// total cost. Settlement happens at most once.
	SettleRental(ctx context.Context, rentID string, actualReturnDate time.Time) (*domain.Rental, error)
	// GetFinalValue returns the settled total cost without recomputing.
	GetFinalValue(ctx context.Context, rentID string) (int64, error)
	GetRental(ctx context.Context, rentID string) (*domain.Rental, error)
}

type MotoService interface {
	RegisterMoto(ctx context.Context, moto *domain.Moto) (*domain.Moto, error)
	ListMotos(ctx context.Context) ([]domain.Moto, error)
	GetMotoByIdentifier(ctx context.Context, identifier string) (*domain.Moto, error)
	ChangeLicensePlate(ctx context.Context, identifier, plate string) error
	DeleteMoto(ctx context.Context, identifier string) error
}

type DriverService interface {
	RegisterDriver(ctx context.Context, driver *domain.DeliveryDriver) (*domain.DeliveryDriver, error)
	UpdateCNHImage(ctx context.Context, driverID, base64Image string) error
	GetDriverByID(ctx context.Context, driverID string) (*domain.DeliveryDriver, error)
}

type NotificationService interface {
	RecordMotoRegistered(ctx context.Context, event *domain.MotoRegisteredEvent) error
	ListNotifications(ctx context.Context, page, pageSize int32) ([]domain.MotoNotification, int32, error)
}
