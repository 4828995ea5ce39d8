package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fahs/internal/port"
)

// MockAnalysisClient is a mock implementation of port.AnalysisClient.
type MockAnalysisClient struct {
	mock.Mock
}

func (m *MockAnalysisClient) Analyze(ctx context.Context, submission port.Submission) (*port.AnalysisOutcome, error) {
	args := m.Called(ctx, submission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.AnalysisOutcome), args.Error(1)
}
