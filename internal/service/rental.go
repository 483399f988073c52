package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/logger"
	"moto-rental-backend/internal/pricing"
	"moto-rental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	gate       *EligibilityGate
	engine     *pricing.Engine
	catalog    *pricing.Catalog
	now        func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	gate *EligibilityGate,
	engine *pricing.Engine,
	catalog *pricing.Catalog,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		gate:       gate,
		engine:     engine,
		catalog:    catalog,
		now:        time.Now,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, driverID, motoIdentifier string, planDays int32) (*domain.Rental, error) {
	driver, moto, plan, err := s.gate.Validate(ctx, driverID, motoIdentifier, planDays)
	if err != nil {
		return nil, err
	}

	// The contract becomes effective the next calendar day.
	startDate := pricing.TruncateToDay(s.now()).AddDate(0, 0, 1)
	rental := &domain.Rental{
		RentID:             uuid.NewString(),
		MotoID:             moto.ID,
		DriverID:           driver.ID,
		StartDate:          startDate,
		ExpectedReturnDate: startDate.AddDate(0, 0, int(plan.Days)),
		PlanDays:           plan.Days,
		DailyRateCents:     plan.DailyRateCents,
		TotalCostCents:     plan.BaseCostCents(),
		Status:             domain.RentalStatusActive,
	}

	if err := s.rentalRepo.Add(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental created",
		"rentID", rental.RentID, "driverID", driver.ID, "motoID", moto.ID,
		"planDays", plan.Days, "totalCostCents", rental.TotalCostCents)
	return rental, nil
}

func (s *rentalService) SimulateReturnValue(ctx context.Context, rentID string, returnDate time.Time) (int64, error) {
	rental, err := s.load(ctx, rentID)
	if err != nil {
		return 0, err
	}
	if pricing.TruncateToDay(returnDate).Before(pricing.TruncateToDay(rental.StartDate)) {
		return 0, domain.ErrReturnBeforeStart
	}
	return s.engine.ComputeValue(rental, returnDate)
}

func (s *rentalService) SettleRental(ctx context.Context, rentID string, actualReturnDate time.Time) (*domain.Rental, error) {
	rental, err := s.load(ctx, rentID)
	if err != nil {
		return nil, err
	}
	if rental.Settled() {
		return nil, domain.ErrAlreadySettled
	}

	total, err := s.engine.ComputeValue(rental, actualReturnDate)
	if err != nil {
		return nil, err
	}

	returned := pricing.TruncateToDay(actualReturnDate)
	rental.ActualReturnDate = &returned
	rental.TotalCostCents = total
	rental.Status = domain.RentalStatusSettled

	// The repository commits the transition only while the stored row is
	// still unsettled; a lost race surfaces as ErrAlreadySettled.
	won, err := s.rentalRepo.Settle(ctx, rental)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, domain.ErrAlreadySettled
	}

	logger.Info("Rental settled",
		"rentID", rental.RentID, "actualReturnDate", returned.Format("2006-01-02"),
		"totalCostCents", total)
	return rental, nil
}

func (s *rentalService) GetFinalValue(ctx context.Context, rentID string) (int64, error) {
	rental, err := s.load(ctx, rentID)
	if err != nil {
		return 0, err
	}
	if !rental.Settled() {
		return 0, domain.ErrNotYetSettled
	}
	return rental.TotalCostCents, nil
}

func (s *rentalService) GetRental(ctx context.Context, rentID string) (*domain.Rental, error) {
	return s.load(ctx, rentID)
}

func (s *rentalService) load(ctx context.Context, rentID string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.FindByIdentifier(ctx, rentID)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, domain.ErrRentalNotFound
	}
	return rental, nil
}
