package mocks

import (
	"context"

	"github.com/Bhavuk-Devex/AVO/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	GenerateFunc     func() (string, error)
	DeliverFunc      func(ctx context.Context, user *domain.User, code string)
	IssueAndSendFunc func(ctx context.Context, email string) error
	VerifyFunc       func(ctx context.Context, email, code string) (*domain.User, error)
}

func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Generate returns a fixed code unless overridden
func (m *MockOTPService) Generate() (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "123456", nil
}

func (m *MockOTPService) Deliver(ctx context.Context, user *domain.User, code string) {
	if m.DeliverFunc != nil {
		m.DeliverFunc(ctx, user, code)
	}
}

func (m *MockOTPService) IssueAndSend(ctx context.Context, email string) error {
	if m.IssueAndSendFunc != nil {
		return m.IssueAndSendFunc(ctx, email)
	}
	return nil
}

func (m *MockOTPService) Verify(ctx context.Context, email, code string) (*domain.User, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code)
	}
	return nil, domain.ErrOTPInvalid
}

var _ domain.OTPService = (*MockOTPService)(nil)
