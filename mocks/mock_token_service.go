package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fahs/internal/service"
)

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(sessionID uuid.UUID) (*service.SessionToken, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionToken), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionClaims), args.Error(1)
}
