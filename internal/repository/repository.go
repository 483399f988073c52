package repository

import (
	"context"

	"moto-rental-backend/internal/domain"
)

// Lookups return (nil, nil) when no row matches; callers translate the
// absence into their own domain error kind.

type DriverRepository interface {
	Create(ctx context.Context, driver *domain.DeliveryDriver) error
	FindByIdentifier(ctx context.Context, id string) (*domain.DeliveryDriver, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*domain.DeliveryDriver, error)
	FindByCNH(ctx context.Context, cnh string) (*domain.DeliveryDriver, error)
	UpdateCNHImage(ctx context.Context, id string, image string) error
}

type MotoRepository interface {
	Create(ctx context.Context, moto *domain.Moto) error
	FindAll(ctx context.Context) ([]domain.Moto, error)
	FindByIdentifier(ctx context.Context, identifier string) (*domain.Moto, error)
	FindByLicensePlate(ctx context.Context, plate string) (*domain.Moto, error)
	UpdateLicensePlate(ctx context.Context, identifier, plate string) error
	Remove(ctx context.Context, identifier string) error
}

type RentalRepository interface {
	Add(ctx context.Context, rental *domain.Rental) error
	FindByIdentifier(ctx context.Context, rentID string) (*domain.Rental, error)
	// Settle commits the one-shot settlement transition. It updates the
	// row only while actual_return_date is still NULL and reports
	// whether this call won the transition, so concurrent settles can
	// never both commit.
	Settle(ctx context.Context, rental *domain.Rental) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.MotoNotification) error
	List(ctx context.Context, limit, offset int32) ([]domain.MotoNotification, int32, error)
	DeleteOlderThan(ctx context.Context, days int32) (int64, error)
}
