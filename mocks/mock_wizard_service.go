package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fahs/internal/domain"
	"fahs/internal/service"
	"fahs/internal/wizard"
)

// MockWizardService is a mock implementation of service.WizardService.
type MockWizardService struct {
	mock.Mock
}

func (m *MockWizardService) StartSession(ctx context.Context) (*service.StartSessionOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StartSessionOutput), args.Error(1)
}

func (m *MockWizardService) GetSession(ctx context.Context, id uuid.UUID) (*service.SessionView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionView), args.Error(1)
}

func (m *MockWizardService) UpdateDetails(ctx context.Context, id uuid.UUID, restaurantName, commercialRegister string) (*domain.WizardSession, error) {
	args := m.Called(ctx, id, restaurantName, commercialRegister)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WizardSession), args.Error(1)
}

func (m *MockWizardService) StagePhoto(ctx context.Context, input service.PhotoUploadInput) (*domain.StagedPhoto, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StagedPhoto), args.Error(1)
}

func (m *MockWizardService) PhotoPreviewURL(ctx context.Context, id uuid.UUID, slot domain.ImageSlot) (string, error) {
	args := m.Called(ctx, id, slot)
	return args.String(0), args.Error(1)
}

func (m *MockWizardService) RemovePhoto(ctx context.Context, id uuid.UUID, slot domain.ImageSlot) error {
	args := m.Called(ctx, id, slot)
	return args.Error(0)
}

func (m *MockWizardService) Advance(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WizardSession), args.Error(1)
}

func (m *MockWizardService) Submit(ctx context.Context, id uuid.UUID) (*domain.InspectionResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InspectionResult), args.Error(1)
}

func (m *MockWizardService) Variant() wizard.Variant {
	args := m.Called()
	return args.Get(0).(wizard.Variant)
}
