package mocks

import (
	"fmt"

	"github.com/Bhavuk-Devex/AVO/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	IssueSignInTokenFunc    func(userID uint, role domain.Role, businessID *uint) (string, error)
	IssueElevationTokenFunc func(userID uint, role domain.Role, businessID *uint) (string, error)
	ValidateTokenFunc       func(token string) (*domain.TokenClaims, error)
}

func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// IssueSignInToken returns "signin-<id>-<role>" unless overridden
func (m *MockTokenService) IssueSignInToken(userID uint, role domain.Role, businessID *uint) (string, error) {
	if m.IssueSignInTokenFunc != nil {
		return m.IssueSignInTokenFunc(userID, role, businessID)
	}
	return fmt.Sprintf("signin-%d-%s", userID, role), nil
}

// IssueElevationToken returns "elevated-<id>-<role>" unless overridden
func (m *MockTokenService) IssueElevationToken(userID uint, role domain.Role, businessID *uint) (string, error) {
	if m.IssueElevationTokenFunc != nil {
		return m.IssueElevationTokenFunc(userID, role, businessID)
	}
	return fmt.Sprintf("elevated-%d-%s", userID, role), nil
}

func (m *MockTokenService) ValidateToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

var _ domain.TokenService = (*MockTokenService)(nil)
