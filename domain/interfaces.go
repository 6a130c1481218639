package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	// SetOTP overwrites the pending code; nil clears it
	SetOTP(ctx context.Context, email string, otp *string) error
	MarkVerified(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	SetAuthToken(ctx context.Context, userID uint, token string) error
	UpdateProfile(ctx context.Context, user *User) error
	FindEmployeeInBusiness(ctx context.Context, employeeID, businessID uint) (*User, error)
	DeleteEmployee(ctx context.Context, employeeID, businessID uint) error
	ListEmployees(ctx context.Context, businessID uint) ([]EmployeeSummary, error)
}

// BusinessRepository defines business data access operations
type BusinessRepository interface {
	// CreateForOwner inserts the business and promotes its owner in one transaction
	CreateForOwner(ctx context.Context, business *Business) error
	FindByID(ctx context.Context, id uint) (*Business, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*Business, error)
	Update(ctx context.Context, business *Business) error
}

// AccountService defines the account lifecycle
type AccountService interface {
	SignUp(ctx context.Context, in SignUpInput) (uint, error)
	ResendOTP(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	VerifyForgotPasswordOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
}

// BusinessService defines business and employee management
type BusinessService interface {
	RegisterOrUpdateBusiness(ctx context.Context, actor Actor, in BusinessInput) (*BusinessResult, error)
	GetBusiness(ctx context.Context, actor Actor) (*Business, error)
	AddEmployee(ctx context.Context, actor Actor, in EmployeeInput) (uint, error)
	UpdateEmployee(ctx context.Context, actor Actor, in EmployeeUpdate) error
	DeleteEmployee(ctx context.Context, actor Actor, employeeID uint) error
	ListEmployeesByBusiness(ctx context.Context, actor Actor, businessID uint) ([]EmployeeSummary, error)
}

// OTPService defines OTP operations
type OTPService interface {
	Generate() (string, error)
	// Deliver sends code to the user; delivery failures are logged, never returned
	Deliver(ctx context.Context, user *User, code string)
	IssueAndSend(ctx context.Context, email string) error
	Verify(ctx context.Context, email, code string) (*User, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	IssueSignInToken(userID uint, role Role, businessID *uint) (string, error)
	IssueElevationToken(userID uint, role Role, businessID *uint) (string, error)
	ValidateToken(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	SendSMS(ctx context.Context, to, message string) error
}

// PolicyService decides every role and ownership question.
// It returns ErrAccessDenied when the role holds no grant for the action
// and ErrOutOfScope when the grant's scope does not cover the resource.
type PolicyService interface {
	Authorize(actor Actor, resource Resource, action Action) error
	GetPolicies() ([][]string, error)
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	GetFilteredPolicy(fieldIndex int, fieldValues ...string) ([][]string, error)
}

// RateLimitStore counts hits inside a fixed window
type RateLimitStore interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}
