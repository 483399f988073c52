package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/pricing"
)

func newRentalFixture() (*MockRentalRepo, *MockDriverRepo, *MockMotoRepo, *rentalService) {
	rentalRepo := new(MockRentalRepo)
	driverRepo := new(MockDriverRepo)
	motoRepo := new(MockMotoRepo)

	catalog := pricing.DefaultCatalog()
	gate := NewEligibilityGate(catalog, driverRepo, motoRepo)
	engine := pricing.NewEngine(catalog)

	svc := NewRentalService(rentalRepo, gate, engine, catalog).(*rentalService)
	svc.now = func() time.Time {
		return time.Date(2024, time.March, 1, 14, 30, 0, 0, time.UTC)
	}
	return rentalRepo, driverRepo, motoRepo, svc
}

func eligibleDriver() *domain.DeliveryDriver {
	return &domain.DeliveryDriver{
		ID:      "driver-1",
		Name:    "Joao",
		CNPJ:    "12345678000190",
		CNH:     "12345678901",
		CNHType: domain.CNHTypeA,
	}
}

func TestRentalService_CreateRental(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rentalRepo, driverRepo, motoRepo, svc := newRentalFixture()
		driverRepo.On("FindByIdentifier", ctx, "driver-1").Return(eligibleDriver(), nil)
		motoRepo.On("FindByIdentifier", ctx, "moto-1").Return(&domain.Moto{ID: 7, Identifier: "moto-1"}, nil)
		rentalRepo.On("Add", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		rental, err := svc.CreateRental(ctx, "driver-1", "moto-1", 7)
		assert.NoError(t, err)
		assert.NotEmpty(t, rental.RentID)
		assert.Equal(t, int32(7), rental.MotoID)
		assert.Equal(t, "driver-1", rental.DriverID)
		// Contract starts the day after creation.
		assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), rental.StartDate)
		assert.Equal(t, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), rental.ExpectedReturnDate)
		assert.Equal(t, int32(7), rental.PlanDays)
		assert.Equal(t, int64(3000), rental.DailyRateCents)
		assert.Equal(t, int64(21000), rental.TotalCostCents)
		assert.Equal(t, domain.RentalStatusActive, rental.Status)
	})

	t.Run("Invalid Plan Costs No Lookup", func(t *testing.T) {
		_, driverRepo, motoRepo, svc := newRentalFixture()

		rental, err := svc.CreateRental(ctx, "driver-1", "moto-1", 10)
		assert.ErrorIs(t, err, domain.ErrInvalidPlan)
		assert.Nil(t, rental)
		driverRepo.AssertNotCalled(t, "FindByIdentifier", mock.Anything, mock.Anything)
		motoRepo.AssertNotCalled(t, "FindByIdentifier", mock.Anything, mock.Anything)
	})

	t.Run("Driver Not Found", func(t *testing.T) {
		_, driverRepo, _, svc := newRentalFixture()
		driverRepo.On("FindByIdentifier", ctx, "ghost").Return(nil, nil)

		_, err := svc.CreateRental(ctx, "ghost", "moto-1", 7)
		assert.ErrorIs(t, err, domain.ErrDriverNotFound)
	})

	t.Run("Category B License Rejected", func(t *testing.T) {
		_, driverRepo, motoRepo, svc := newRentalFixture()
		driver := eligibleDriver()
		driver.CNHType = domain.CNHTypeB
		driverRepo.On("FindByIdentifier", ctx, "driver-1").Return(driver, nil)

		_, err := svc.CreateRental(ctx, "driver-1", "moto-1", 7)
		assert.ErrorIs(t, err, domain.ErrIneligibleLicense)
		motoRepo.AssertNotCalled(t, "FindByIdentifier", mock.Anything, mock.Anything)
	})

	t.Run("A Plus B License Accepted", func(t *testing.T) {
		rentalRepo, driverRepo, motoRepo, svc := newRentalFixture()
		driver := eligibleDriver()
		driver.CNHType = domain.CNHTypeAB
		driverRepo.On("FindByIdentifier", ctx, "driver-1").Return(driver, nil)
		motoRepo.On("FindByIdentifier", ctx, "moto-1").Return(&domain.Moto{ID: 7, Identifier: "moto-1"}, nil)
		rentalRepo.On("Add", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		_, err := svc.CreateRental(ctx, "driver-1", "moto-1", 7)
		assert.NoError(t, err)
	})

	t.Run("Moto Not Found", func(t *testing.T) {
		_, driverRepo, motoRepo, svc := newRentalFixture()
		driverRepo.On("FindByIdentifier", ctx, "driver-1").Return(eligibleDriver(), nil)
		motoRepo.On("FindByIdentifier", ctx, "ghost").Return(nil, nil)

		_, err := svc.CreateRental(ctx, "driver-1", "ghost", 7)
		assert.ErrorIs(t, err, domain.ErrMotoNotFound)
	})
}

func storedRental(planDays int32, rateCents int64) *domain.Rental {
	start := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	return &domain.Rental{
		RentID:             "rent-1",
		MotoID:             7,
		DriverID:           "driver-1",
		StartDate:          start,
		ExpectedReturnDate: start.AddDate(0, 0, int(planDays)),
		PlanDays:           planDays,
		DailyRateCents:     rateCents,
		TotalCostCents:     rateCents * int64(planDays),
		Status:             domain.RentalStatusActive,
	}
}

func TestRentalService_SimulateReturnValue(t *testing.T) {
	ctx := context.Background()

	t.Run("Early Return Adds Penalty", func(t *testing.T) {
		rentalRepo, _, _, svc := newRentalFixture()
		rentalRepo.On("FindByIdentifier", ctx, "rent-1").Return(storedRental(7, 3000), nil)

		total, err := svc.SimulateReturnValue(ctx, "rent-1", time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC))
		assert.NoError(t, err)
		assert.Equal(t, int64(22200), total)
	})

	t.Run("Return Before Start Rejected", func(t *testing.T) {
		rentalRepo, _, _, svc := newRentalFixture()
		rentalRepo.On("FindByIdentifier", ctx, "rent-1").Return(storedRental(7, 3000), nil)

		_, err := svc.SimulateReturnValue(ctx, "rent-1", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, domain.ErrReturnBeforeStart)
	})

	t.Run("Rental Not Found", func(t *testing.T) {
		rentalRepo, _, _, svc := newRentalFixture()
		rentalRepo.On("FindByIdentifier", ctx, "ghost").Return(nil, nil)

		_, err := svc.SimulateReturnValue(ctx, "ghost", time.Now())
		assert.ErrorIs(t, err, domain.ErrRentalNotFound)
	})
}

func TestRentalService_SettleRental(t *testing.T) {
	ctx := context.Background()
	lateReturn := time.Date(2024, time.March, 12, 18, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		rentalRepo, _, _, svc := newRentalFixture()
		rentalRepo.On("FindByIdentifier", ctx, "rent-1").Return(storedRental(7, 3000), nil)
		rentalRepo.On("Settle", ctx, mock.AnythingOfType("*domain.Rental")).Return(true, nil)

		rental, err := svc.SettleRental(ctx, "rent-1", lateReturn)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusSettled, rental.Status)
		// 3 days late: 21000 + 3 * 5000
		assert.Equal(t, int64(36000), rental.TotalCostCents)
		assert.Equal(t, time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC), *rental.ActualReturnDate)
	})

	t.Run("Second Settle Rejected", func(t *testing.T) {
		rentalRepo, _, _, svc := newRentalFixture()
		settled := storedRental(7, 3000)
		returned := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
		settled.ActualReturnDate = &returned
		settled.TotalCostCents = 36000
		settled.Status = domain.RentalStatusSettled
		rentalRepo.On("FindByIdentifier", ctx, "rent-1").Return(settled, nil)

		rental, err := svc.SettleRental(ctx, "rent-1", lateReturn)
		assert.ErrorIs(t, err, domain.ErrAlreadySettled)
		assert.Nil(t, rental)
		rentalRepo.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything)
		// The stored value survives the rejected attempt.
		assert.Equal(t, int64(36000), settled.TotalCostCents)
	})

	t.Run("Lost Race Surfaces As Already Settled", func(t *testing.T) {
		rentalRepo, _, _, svc := newRentalFixture()
		rentalRepo.On("FindByIdentifier", ctx, "rent-1").Return(storedRental(7, 3000), nil)
		rentalRepo.On("Settle", ctx, mock.AnythingOfType("*domain.Rental")).Return(false, nil)

		_, err := svc.SettleRental(ctx, "rent-1", lateReturn)
		assert.ErrorIs(t, err, domain.ErrAlreadySettled)
	})
}

func TestRentalService_GetFinalValue(t *testing.T) {
	ctx := context.Background()

	t.Run("Unsettled Rental Rejected", func(t *testing.T) {
		rentalRepo, _, _, svc := newRentalFixture()
		rentalRepo.On("FindByIdentifier", ctx, "rent-1").Return(storedRental(7, 3000), nil)

		_, err := svc.GetFinalValue(ctx, "rent-1")
		assert.ErrorIs(t, err, domain.ErrNotYetSettled)
	})

	t.Run("Returns Stored Value", func(t *testing.T) {
		rentalRepo, _, _, svc := newRentalFixture()
		settled := storedRental(7, 3000)
		returned := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
		settled.ActualReturnDate = &returned
		settled.TotalCostCents = 22200
		settled.Status = domain.RentalStatusSettled
		rentalRepo.On("FindByIdentifier", ctx, "rent-1").Return(settled, nil)

		total, err := svc.GetFinalValue(ctx, "rent-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(22200), total)
	})
}
