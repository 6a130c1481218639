package mocks

import (
	"context"

	"github.com/Bhavuk-Devex/AVO/domain"
)

// MockAccountService implements domain.AccountService interface for testing
type MockAccountService struct {
	SignUpFunc                  func(ctx context.Context, in domain.SignUpInput) (uint, error)
	ResendOTPFunc               func(ctx context.Context, email string) error
	ForgotPasswordFunc          func(ctx context.Context, email string) error
	VerifyOTPFunc               func(ctx context.Context, email, otp string) error
	VerifyForgotPasswordOTPFunc func(ctx context.Context, email, otp string) error
	ResetPasswordFunc           func(ctx context.Context, email, newPassword string) error
	SignInFunc                  func(ctx context.Context, email, password string) (*domain.SignInResult, error)
}

func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

func (m *MockAccountService) SignUp(ctx context.Context, in domain.SignUpInput) (uint, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, in)
	}
	return 1, nil
}

func (m *MockAccountService) ResendOTP(ctx context.Context, email string) error {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email)
	}
	return nil
}

func (m *MockAccountService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return nil
}

func (m *MockAccountService) VerifyOTP(ctx context.Context, email, otp string) error {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, otp)
	}
	return nil
}

func (m *MockAccountService) VerifyForgotPasswordOTP(ctx context.Context, email, otp string) error {
	if m.VerifyForgotPasswordOTPFunc != nil {
		return m.VerifyForgotPasswordOTPFunc(ctx, email, otp)
	}
	return nil
}

func (m *MockAccountService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, newPassword)
	}
	return nil
}

func (m *MockAccountService) SignIn(ctx context.Context, email, password string) (*domain.SignInResult, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

var _ domain.AccountService = (*MockAccountService)(nil)
