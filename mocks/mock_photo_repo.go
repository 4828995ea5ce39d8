package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fahs/internal/domain"
)

// MockPhotoRepo is a mock implementation of port.PhotoRepository.
type MockPhotoRepo struct {
	mock.Mock
}

func (m *MockPhotoRepo) Stage(ctx context.Context, photo *domain.StagedPhoto) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepo) GetBySlot(ctx context.Context, sessionID uuid.UUID, slot domain.ImageSlot) (*domain.StagedPhoto, error) {
	args := m.Called(ctx, sessionID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StagedPhoto), args.Error(1)
}

func (m *MockPhotoRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.StagedPhoto, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StagedPhoto), args.Error(1)
}

func (m *MockPhotoRepo) Remove(ctx context.Context, sessionID uuid.UUID, slot domain.ImageSlot) error {
	args := m.Called(ctx, sessionID, slot)
	return args.Error(0)
}
