package mocks

import (
	"context"

	"github.com/Bhavuk-Devex/AVO/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc                 func(ctx context.Context, user *domain.User) error
	FindByEmailFunc            func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc               func(ctx context.Context, id uint) (*domain.User, error)
	SetOTPFunc                 func(ctx context.Context, email string, otp *string) error
	MarkVerifiedFunc           func(ctx context.Context, email string) error
	UpdatePasswordFunc         func(ctx context.Context, email, passwordHash string) error
	SetAuthTokenFunc           func(ctx context.Context, userID uint, token string) error
	UpdateProfileFunc          func(ctx context.Context, user *domain.User) error
	FindEmployeeInBusinessFunc func(ctx context.Context, employeeID, businessID uint) (*domain.User, error)
	DeleteEmployeeFunc         func(ctx context.Context, employeeID, businessID uint) error
	ListEmployeesFunc          func(ctx context.Context, businessID uint) ([]domain.EmployeeSummary, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) SetOTP(ctx context.Context, email string, otp *string) error {
	if m.SetOTPFunc != nil {
		return m.SetOTPFunc(ctx, email, otp)
	}
	return nil
}

func (m *MockUserRepository) MarkVerified(ctx context.Context, email string) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, email)
	}
	return nil
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, email, passwordHash)
	}
	return nil
}

func (m *MockUserRepository) SetAuthToken(ctx context.Context, userID uint, token string) error {
	if m.SetAuthTokenFunc != nil {
		return m.SetAuthTokenFunc(ctx, userID, token)
	}
	return nil
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindEmployeeInBusiness(ctx context.Context, employeeID, businessID uint) (*domain.User, error) {
	if m.FindEmployeeInBusinessFunc != nil {
		return m.FindEmployeeInBusinessFunc(ctx, employeeID, businessID)
	}
	// Default behavior: not found
	return nil, domain.ErrEmployeeNotInBusiness
}

func (m *MockUserRepository) DeleteEmployee(ctx context.Context, employeeID, businessID uint) error {
	if m.DeleteEmployeeFunc != nil {
		return m.DeleteEmployeeFunc(ctx, employeeID, businessID)
	}
	return nil
}

func (m *MockUserRepository) ListEmployees(ctx context.Context, businessID uint) ([]domain.EmployeeSummary, error) {
	if m.ListEmployeesFunc != nil {
		return m.ListEmployeesFunc(ctx, businessID)
	}
	return []domain.EmployeeSummary{}, nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
