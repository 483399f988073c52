package service

import (
	"context"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/pricing"
	"moto-rental-backend/internal/repository"
)

// EligibilityGate decides whether a driver/moto/plan combination may
// form a rental. Checks run in a fixed order with the I/O-free plan
// check first, so an invalid plan never costs a repository lookup.
type EligibilityGate struct {
	catalog    *pricing.Catalog
	driverRepo repository.DriverRepository
	motoRepo   repository.MotoRepository
}

func NewEligibilityGate(catalog *pricing.Catalog, driverRepo repository.DriverRepository, motoRepo repository.MotoRepository) *EligibilityGate {
	return &EligibilityGate{
		catalog:    catalog,
		driverRepo: driverRepo,
		motoRepo:   motoRepo,
	}
}

// Validate returns the resolved driver, moto and plan on success, or
// the first failing check's domain error.
func (g *EligibilityGate) Validate(ctx context.Context, driverID, motoIdentifier string, planDays int32) (*domain.DeliveryDriver, *domain.Moto, pricing.Plan, error) {
	plan, err := g.catalog.Resolve(planDays)
	if err != nil {
		return nil, nil, pricing.Plan{}, err
	}

	driver, err := g.driverRepo.FindByIdentifier(ctx, driverID)
	if err != nil {
		return nil, nil, pricing.Plan{}, err
	}
	if driver == nil {
		return nil, nil, pricing.Plan{}, domain.ErrDriverNotFound
	}

	if !driver.CanRentMoto() {
		return nil, nil, pricing.Plan{}, domain.ErrIneligibleLicense
	}

	moto, err := g.motoRepo.FindByIdentifier(ctx, motoIdentifier)
	if err != nil {
		return nil, nil, pricing.Plan{}, err
	}
	if moto == nil {
		return nil, nil, pricing.Plan{}, domain.ErrMotoNotFound
	}

	return driver, moto, plan, nil
}
