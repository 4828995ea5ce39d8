package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fahs/internal/domain"
)

// MockSessionRepo is a mock implementation of port.SessionRepository.
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, session *domain.WizardSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WizardSession), args.Error(1)
}

func (m *MockSessionRepo) UpdateStep(ctx context.Context, id uuid.UUID, step int) error {
	args := m.Called(ctx, id, step)
	return args.Error(0)
}

func (m *MockSessionRepo) UpdateDetails(ctx context.Context, id uuid.UUID, restaurantName, commercialRegister string) error {
	args := m.Called(ctx, id, restaurantName, commercialRegister)
	return args.Error(0)
}

func (m *MockSessionRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.SessionStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockSessionRepo) StoreResult(ctx context.Context, id uuid.UUID, inspectionID string, payload []byte) error {
	args := m.Called(ctx, id, inspectionID, payload)
	return args.Error(0)
}
