package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendReportLink(ctx context.Context, toEmail, restaurantName, inspectionID, reportURL string) error {
	args := m.Called(ctx, toEmail, restaurantName, inspectionID, reportURL)
	return args.Error(0)
}
