package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"moto-rental-backend/internal/domain"
)

func validDriver() *domain.DeliveryDriver {
	return &domain.DeliveryDriver{
		Name:      "Joao",
		CNPJ:      "12345678000190",
		BirthDate: "1990-05-01",
		CNH:       "12345678901",
		CNHType:   domain.CNHTypeA,
	}
}

func TestDriverService_RegisterDriver(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		driverRepo := new(MockDriverRepo)
		svc := NewDriverService(driverRepo)

		driver := validDriver()
		driverRepo.On("FindByCNPJ", ctx, driver.CNPJ).Return(nil, nil)
		driverRepo.On("FindByCNH", ctx, driver.CNH).Return(nil, nil)
		driverRepo.On("Create", ctx, driver).Return(nil)

		created, err := svc.RegisterDriver(ctx, driver)
		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("Validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*domain.DeliveryDriver)
		}{
			{"Missing Name", func(d *domain.DeliveryDriver) { d.Name = "" }},
			{"Short CNPJ", func(d *domain.DeliveryDriver) { d.CNPJ = "123" }},
			{"Non Numeric CNPJ", func(d *domain.DeliveryDriver) { d.CNPJ = "1234567800019X" }},
			{"Short CNH", func(d *domain.DeliveryDriver) { d.CNH = "123" }},
			{"Unknown CNH Type", func(d *domain.DeliveryDriver) { d.CNHType = "C" }},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				driverRepo := new(MockDriverRepo)
				svc := NewDriverService(driverRepo)

				driver := validDriver()
				tc.mutate(driver)

				_, err := svc.RegisterDriver(ctx, driver)
				assert.ErrorIs(t, err, domain.ErrInvalidDriver)
				driverRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Duplicate CNPJ", func(t *testing.T) {
		driverRepo := new(MockDriverRepo)
		svc := NewDriverService(driverRepo)

		driver := validDriver()
		driverRepo.On("FindByCNPJ", ctx, driver.CNPJ).Return(&domain.DeliveryDriver{ID: "other"}, nil)

		_, err := svc.RegisterDriver(ctx, driver)
		assert.ErrorIs(t, err, domain.ErrDuplicateCNPJ)
	})

	t.Run("Duplicate CNH", func(t *testing.T) {
		driverRepo := new(MockDriverRepo)
		svc := NewDriverService(driverRepo)

		driver := validDriver()
		driverRepo.On("FindByCNPJ", ctx, driver.CNPJ).Return(nil, nil)
		driverRepo.On("FindByCNH", ctx, driver.CNH).Return(&domain.DeliveryDriver{ID: "other"}, nil)

		_, err := svc.RegisterDriver(ctx, driver)
		assert.ErrorIs(t, err, domain.ErrDuplicateCNH)
	})

	t.Run("Category B Is Registrable", func(t *testing.T) {
		// A category B driver can register; the eligibility gate rejects
		// them only when they try to rent.
		driverRepo := new(MockDriverRepo)
		svc := NewDriverService(driverRepo)

		driver := validDriver()
		driver.CNHType = domain.CNHTypeB
		driverRepo.On("FindByCNPJ", ctx, driver.CNPJ).Return(nil, nil)
		driverRepo.On("FindByCNH", ctx, driver.CNH).Return(nil, nil)
		driverRepo.On("Create", ctx, driver).Return(nil)

		_, err := svc.RegisterDriver(ctx, driver)
		assert.NoError(t, err)
	})
}

func TestDriverService_UpdateCNHImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		driverRepo := new(MockDriverRepo)
		svc := NewDriverService(driverRepo)

		driverRepo.On("FindByIdentifier", ctx, "driver-1").Return(validDriver(), nil)
		driverRepo.On("UpdateCNHImage", ctx, "driver-1", "base64data").Return(nil)

		assert.NoError(t, svc.UpdateCNHImage(ctx, "driver-1", "base64data"))
	})

	t.Run("Driver Not Found", func(t *testing.T) {
		driverRepo := new(MockDriverRepo)
		svc := NewDriverService(driverRepo)

		driverRepo.On("FindByIdentifier", ctx, "ghost").Return(nil, nil)

		err := svc.UpdateCNHImage(ctx, "ghost", "base64data")
		assert.ErrorIs(t, err, domain.ErrDriverNotFound)
	})
}
