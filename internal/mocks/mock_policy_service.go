package mocks

import "github.com/Bhavuk-Devex/AVO/domain"

// MockPolicyService implements domain.PolicyService interface for testing
type MockPolicyService struct {
	AuthorizeFunc   func(actor domain.Actor, resource domain.Resource, action domain.Action) error
	GetPoliciesFunc func() ([][]string, error)
}

// NewMockPolicyService creates a new MockPolicyService with default behaviors
func NewMockPolicyService() *MockPolicyService {
	return &MockPolicyService{}
}

// Authorize allows everything unless overridden
func (m *MockPolicyService) Authorize(actor domain.Actor, resource domain.Resource, action domain.Action) error {
	if m.AuthorizeFunc != nil {
		return m.AuthorizeFunc(actor, resource, action)
	}
	return nil
}

// GetPolicies returns all current policies
func (m *MockPolicyService) GetPolicies() ([][]string, error) {
	if m.GetPoliciesFunc != nil {
		return m.GetPoliciesFunc()
	}
	return [][]string{}, nil
}

// Compile-time interface compliance verification
var _ domain.PolicyService = (*MockPolicyService)(nil)
