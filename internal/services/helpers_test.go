package services

import (
	"context"
	"testing"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/infrastructure/auth"
	"github.com/Bhavuk-Devex/AVO/internal/logging"
	"github.com/Bhavuk-Devex/AVO/internal/mocks"
)

// accountDeps groups the collaborators of an AccountService under test
type accountDeps struct {
	userRepo    *mocks.MockUserRepository
	passwordSvc *mocks.MockPasswordService
	tokenSvc    *mocks.MockTokenService
	otpSvc      *mocks.MockOTPService
	audit       *mocks.MockAuditLogger
}

func newAccountDeps() *accountDeps {
	return &accountDeps{
		userRepo:    mocks.NewMockUserRepository(),
		passwordSvc: mocks.NewMockPasswordService(),
		tokenSvc:    mocks.NewMockTokenService(),
		otpSvc:      mocks.NewMockOTPService(),
		audit:       mocks.NewMockAuditLogger(),
	}
}

// createAccountServiceForTest creates an AccountService with mock dependencies
func createAccountServiceForTest(t *testing.T, deps *accountDeps) domain.AccountService {
	t.Helper()
	return NewAccountService(deps.userRepo, deps.passwordSvc, deps.tokenSvc, deps.otpSvc, deps.audit, nil, logging.Nop())
}

// businessDeps groups the collaborators of a BusinessService under test
type businessDeps struct {
	userRepo     *mocks.MockUserRepository
	businessRepo *mocks.MockBusinessRepository
	passwordSvc  *mocks.MockPasswordService
	tokenSvc     *mocks.MockTokenService
	audit        *mocks.MockAuditLogger
}

func newBusinessDeps() *businessDeps {
	return &businessDeps{
		userRepo:     mocks.NewMockUserRepository(),
		businessRepo: mocks.NewMockBusinessRepository(),
		passwordSvc:  mocks.NewMockPasswordService(),
		tokenSvc:     mocks.NewMockTokenService(),
		audit:        mocks.NewMockAuditLogger(),
	}
}

// createBusinessServiceForTest wires a BusinessService to mocks and the real
// seeded policy model
func createBusinessServiceForTest(t *testing.T, deps *businessDeps) domain.BusinessService {
	t.Helper()
	return NewBusinessService(deps.userRepo, deps.businessRepo, deps.passwordSvc, deps.tokenSvc, createPolicyServiceForTest(t), deps.audit, logging.Nop())
}

func createPolicyServiceForTest(t *testing.T) domain.PolicyService {
	t.Helper()
	enforcer, err := auth.NewEnforcer()
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}
	return NewPolicyService(enforcer, nil)
}

// createVerifiedUser creates a verified plain user for testing
func createVerifiedUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:           1,
		Name:         "Alice",
		Email:        "a@x.io",
		PasswordHash: "hashed_pw1",
		Address:      domain.DefaultAddress,
		Role:         domain.RoleUser,
		IsVerified:   true,
	}
}

// createAdminUser creates a business_admin owning businessID
func createAdminUser(t *testing.T, id, businessID uint) *domain.User {
	t.Helper()
	user := createVerifiedUser(t)
	user.ID = id
	user.Email = "admin@x.io"
	user.Role = domain.RoleBusinessAdmin
	user.BusinessID = &businessID
	return user
}

// createEmployeeUser creates an employee of businessID
func createEmployeeUser(t *testing.T, id, businessID uint) *domain.User {
	t.Helper()
	user := createVerifiedUser(t)
	user.ID = id
	user.Name = "Bob"
	user.Email = "b@x.io"
	user.Role = domain.RoleEmployee
	user.BusinessID = &businessID
	return user
}

// usersByID returns a FindByID func serving the given users
func usersByID(users ...*domain.User) func(ctx context.Context, id uint) (*domain.User, error) {
	return func(ctx context.Context, id uint) (*domain.User, error) {
		for _, u := range users {
			if u.ID == id {
				clone := *u
				return &clone, nil
			}
		}
		return nil, domain.ErrUserNotFound
	}
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

func createVerifiedUserWithID(t *testing.T, id uint) *domain.User {
	t.Helper()
	user := createVerifiedUser(t)
	user.ID = id
	return user
}
