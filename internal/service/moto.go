package service

import (
	"context"
	"fmt"
	"time"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/logger"
	"moto-rental-backend/internal/messaging"
	"moto-rental-backend/internal/repository"
)

// NotifyYear is the model year whose registrations are announced on the
// broker.
const NotifyYear int32 = 2024

type motoService struct {
	motoRepo  repository.MotoRepository
	publisher messaging.Publisher
	channel   string
}

func NewMotoService(motoRepo repository.MotoRepository, publisher messaging.Publisher, channel string) MotoService {
	return &motoService{
		motoRepo:  motoRepo,
		publisher: publisher,
		channel:   channel,
	}
}

func (s *motoService) RegisterMoto(ctx context.Context, moto *domain.Moto) (*domain.Moto, error) {
	existing, err := s.motoRepo.FindByLicensePlate(ctx, moto.LicensePlate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateLicensePlate
	}

	if err := s.motoRepo.Create(ctx, moto); err != nil {
		return nil, err
	}

	// Publish after the insert commits: a broker failure is logged and
	// never rolls back or fails the registration.
	if moto.Year == NotifyYear && s.publisher != nil {
		event := &domain.MotoRegisteredEvent{
			Identifier:   moto.Identifier,
			Year:         moto.Year,
			Model:        moto.Model,
			LicensePlate: moto.LicensePlate,
			NotifiedAt:   time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, s.channel, event); err != nil {
			logger.Error("Failed to publish moto registered event",
				"identifier", moto.Identifier, "error", err)
		}
	}

	return moto, nil
}

func (s *motoService) ListMotos(ctx context.Context) ([]domain.Moto, error) {
	return s.motoRepo.FindAll(ctx)
}

func (s *motoService) GetMotoByIdentifier(ctx context.Context, identifier string) (*domain.Moto, error) {
	moto, err := s.motoRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if moto == nil {
		return nil, domain.ErrMotoNotFound
	}
	return moto, nil
}

func (s *motoService) ChangeLicensePlate(ctx context.Context, identifier, plate string) error {
	moto, err := s.motoRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return err
	}
	if moto == nil {
		return domain.ErrMotoNotFound
	}

	samePlate, err := s.motoRepo.FindByLicensePlate(ctx, plate)
	if err != nil {
		return err
	}
	if samePlate != nil && samePlate.Identifier != identifier {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateLicensePlate, plate)
	}

	return s.motoRepo.UpdateLicensePlate(ctx, identifier, plate)
}

func (s *motoService) DeleteMoto(ctx context.Context, identifier string) error {
	moto, err := s.motoRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return err
	}
	if moto == nil {
		return domain.ErrMotoNotFound
	}
	return s.motoRepo.Remove(ctx, identifier)
}
