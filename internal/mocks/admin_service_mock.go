package mocks

import (
	"context"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockAdminGenerator is a mock implementation of the AdminGenerator interface.
type MockAdminGenerator struct {
	mock.Mock
}

func (m *MockAdminGenerator) IssueToken(ctx context.Context, req models.AdminTokenRequest) (*models.AdminTokenResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.AdminTokenResponse)
	return resp, args.Error(1)
}
