package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/repository"
)

type driverService struct {
	driverRepo repository.DriverRepository
}

func NewDriverService(driverRepo repository.DriverRepository) DriverService {
	return &driverService{driverRepo: driverRepo}
}

func (s *driverService) RegisterDriver(ctx context.Context, driver *domain.DeliveryDriver) (*domain.DeliveryDriver, error) {
	if err := validateDriver(driver); err != nil {
		return nil, err
	}

	if existing, err := s.driverRepo.FindByCNPJ(ctx, driver.CNPJ); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicateCNPJ
	}

	if existing, err := s.driverRepo.FindByCNH(ctx, driver.CNH); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicateCNH
	}

	if driver.ID == "" {
		driver.ID = uuid.NewString()
	}
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *driverService) UpdateCNHImage(ctx context.Context, driverID, base64Image string) error {
	driver, err := s.driverRepo.FindByIdentifier(ctx, driverID)
	if err != nil {
		return err
	}
	if driver == nil {
		return domain.ErrDriverNotFound
	}
	return s.driverRepo.UpdateCNHImage(ctx, driverID, base64Image)
}

func (s *driverService) GetDriverByID(ctx context.Context, driverID string) (*domain.DeliveryDriver, error) {
	driver, err := s.driverRepo.FindByIdentifier(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, domain.ErrDriverNotFound
	}
	return driver, nil
}

// Format checks only. Digit-verification of CNPJ/CNH numbers is a
// registration concern outside the rental core.
func validateDriver(d *domain.DeliveryDriver) error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidDriver)
	}
	if !allDigits(d.CNPJ) || len(d.CNPJ) != 14 {
		return fmt.Errorf("%w: CNPJ must be 14 digits", domain.ErrInvalidDriver)
	}
	if !allDigits(d.CNH) || len(d.CNH) != 11 {
		return fmt.Errorf("%w: CNH must be 11 digits", domain.ErrInvalidDriver)
	}
	switch d.CNHType {
	case domain.CNHTypeA, domain.CNHTypeB, domain.CNHTypeAB:
		return nil
	default:
		return fmt.Errorf("%w: CNH type must be one of %s, %s or %s", domain.ErrInvalidDriver, domain.CNHTypeA, domain.CNHTypeB, domain.CNHTypeAB)
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
