package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

// RecordMotoRegistered stores a notification row for a registration
// event received from the broker.
func (s *notificationService) RecordMotoRegistered(ctx context.Context, event *domain.MotoRegisteredEvent) error {
	note := &domain.MotoNotification{
		ID:             uuid.NewString(),
		MotoIdentifier: event.Identifier,
		Year:           event.Year,
		Model:          event.Model,
		LicensePlate:   event.LicensePlate,
		Message:        fmt.Sprintf("Motorcycle from %d registered: %s - %s", event.Year, event.Model, event.LicensePlate),
		NotifiedAt:     event.NotifiedAt,
	}
	return s.noteRepo.Create(ctx, note)
}

func (s *notificationService) ListNotifications(ctx context.Context, page, pageSize int32) ([]domain.MotoNotification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.noteRepo.List(ctx, pageSize, (page-1)*pageSize)
}
