package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fahs/internal/domain"
	"fahs/internal/render"
)

// MockResultService is a mock implementation of service.ResultService.
type MockResultService struct {
	mock.Mock
}

func (m *MockResultService) GetResult(ctx context.Context, sessionID uuid.UUID) (*domain.InspectionResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InspectionResult), args.Error(1)
}

func (m *MockResultService) RawPayload(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockResultService) Scorecard(ctx context.Context, sessionID uuid.UUID) (*render.Scorecard, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*render.Scorecard), args.Error(1)
}

func (m *MockResultService) ReportURL(ctx context.Context, sessionID uuid.UUID) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockResultService) Share(ctx context.Context, sessionID uuid.UUID, toEmail string) error {
	args := m.Called(ctx, sessionID, toEmail)
	return args.Error(0)
}

func (m *MockResultService) GetInspection(ctx context.Context, inspectionID string) (*domain.InspectionResult, error) {
	args := m.Called(ctx, inspectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InspectionResult), args.Error(1)
}
