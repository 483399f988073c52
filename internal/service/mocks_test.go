package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moto-rental-backend/internal/domain"
)

// MockDriverRepo
type MockDriverRepo struct {
	mock.Mock
}

func (m *MockDriverRepo) Create(ctx context.Context, driver *domain.DeliveryDriver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}
func (m *MockDriverRepo) FindByIdentifier(ctx context.Context, id string) (*domain.DeliveryDriver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryDriver), args.Error(1)
}
func (m *MockDriverRepo) FindByCNPJ(ctx context.Context, cnpj string) (*domain.DeliveryDriver, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryDriver), args.Error(1)
}
func (m *MockDriverRepo) FindByCNH(ctx context.Context, cnh string) (*domain.DeliveryDriver, error) {
	args := m.Called(ctx, cnh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryDriver), args.Error(1)
}
func (m *MockDriverRepo) UpdateCNHImage(ctx context.Context, id string, image string) error {
	args := m.Called(ctx, id, image)
	return args.Error(0)
}

// MockMotoRepo
type MockMotoRepo struct {
	mock.Mock
}

func (m *MockMotoRepo) Create(ctx context.Context, moto *domain.Moto) error {
	args := m.Called(ctx, moto)
	return args.Error(0)
}
func (m *MockMotoRepo) FindAll(ctx context.Context) ([]domain.Moto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Moto), args.Error(1)
}
func (m *MockMotoRepo) FindByIdentifier(ctx context.Context, identifier string) (*domain.Moto, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Moto), args.Error(1)
}
func (m *MockMotoRepo) FindByLicensePlate(ctx context.Context, plate string) (*domain.Moto, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Moto), args.Error(1)
}
func (m *MockMotoRepo) UpdateLicensePlate(ctx context.Context, identifier, plate string) error {
	args := m.Called(ctx, identifier, plate)
	return args.Error(0)
}
func (m *MockMotoRepo) Remove(ctx context.Context, identifier string) error {
	args := m.Called(ctx, identifier)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Add(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) FindByIdentifier(ctx context.Context, rentID string) (*domain.Rental, error) {
	args := m.Called(ctx, rentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Settle(ctx context.Context, rental *domain.Rental) (bool, error) {
	args := m.Called(ctx, rental)
	return args.Bool(0), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.MotoNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, limit, offset int32) ([]domain.MotoNotification, int32, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.MotoNotification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) DeleteOlderThan(ctx context.Context, days int32) (int64, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(int64), args.Error(1)
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, channel string, message any) error {
	args := m.Called(ctx, channel, message)
	return args.Error(0)
}
func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
