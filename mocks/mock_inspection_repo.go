package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fahs/internal/domain"
)

// MockInspectionRepo is a mock implementation of port.InspectionRepository.
type MockInspectionRepo struct {
	mock.Mock
}

func (m *MockInspectionRepo) Create(ctx context.Context, inspection *domain.Inspection) error {
	args := m.Called(ctx, inspection)
	return args.Error(0)
}

func (m *MockInspectionRepo) GetByID(ctx context.Context, inspectionID string) (*domain.Inspection, error) {
	args := m.Called(ctx, inspectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inspection), args.Error(1)
}
