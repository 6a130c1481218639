package services

import (
	"context"
	"errors"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/logging"
	"github.com/Bhavuk-Devex/AVO/internal/metrics"
)

// AccountServiceImpl implements domain.AccountService.
// It drives the account through signup, verification, sign-in and password reset.
type AccountServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	audit       domain.AuditLogger
	metrics     *metrics.Metrics
	logger      *logging.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	audit domain.AuditLogger,
	m *metrics.Metrics,
	logger *logging.Logger,
) domain.AccountService {
	return &AccountServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		audit:       audit,
		metrics:     m,
		logger:      logger,
	}
}

// SignUp creates an unverified user and sends the verification code
func (s *AccountServiceImpl) SignUp(ctx context.Context, in domain.SignUpInput) (uint, error) {
	id, err := s.signUp(ctx, in)
	s.metrics.Transition("signup", err)
	if err != nil {
		s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserSignUpEvent, 0).WithEmail(in.Email).WithError(err))
		return 0, err
	}
	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserSignUpEvent, id).WithEmail(in.Email))
	return id, nil
}

func (s *AccountServiceImpl) signUp(ctx context.Context, in domain.SignUpInput) (uint, error) {
	if err := validateForm(in, domain.ErrSignUpFieldsRequired); err != nil {
		return 0, err
	}

	if err := s.ensureEmailFree(ctx, in.Email); err != nil {
		return 0, err
	}

	hash, err := s.passwordSvc.Hash(in.Password)
	if err != nil {
		return 0, domain.Internal(err, "failed to hash password")
	}

	code, err := s.otpSvc.Generate()
	if err != nil {
		return 0, domain.Internal(err, "failed to generate otp")
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Number:       present(in.Number),
		Address:      valueOr(in.Address, domain.DefaultAddress),
		ProfilePhoto: present(in.ProfilePhoto),
		Role:         domain.RoleUser,
		OTP:          &code,
		IsVerified:   false,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return 0, classify(err, "failed to create user")
	}

	s.otpSvc.Deliver(ctx, user, code)
	return user.ID, nil
}

func (s *AccountServiceImpl) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.ErrEmailExists
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return classify(err, "failed to check email")
	}
}

// ResendOTP replaces the pending code and sends it again
func (s *AccountServiceImpl) ResendOTP(ctx context.Context, email string) error {
	return s.reissue(ctx, "resend_otp", email)
}

// ForgotPassword sends a fresh code to start the reset flow
func (s *AccountServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	return s.reissue(ctx, "forgot_password", email)
}

func (s *AccountServiceImpl) reissue(ctx context.Context, transition, email string) error {
	if email == "" {
		return domain.ErrEmailRequired
	}
	err := s.otpSvc.IssueAndSend(ctx, email)
	s.metrics.Transition(transition, err)

	event := domain.NewAuditEvent(domain.OTPIssuedEvent, 0).WithEmail(email).WithMetadata("flow", transition)
	if err != nil {
		event.WithError(err)
	}
	s.audit.LogEvent(ctx, event)
	return err
}

// VerifyOTP marks the account verified and consumes the code
func (s *AccountServiceImpl) VerifyOTP(ctx context.Context, email, otp string) error {
	if email == "" || otp == "" {
		return domain.ErrEmailAndOTPRequired
	}

	user, err := s.verifyCode(ctx, "verify_otp", email, otp)
	if err != nil {
		return err
	}

	err = s.userRepo.MarkVerified(ctx, email)
	s.metrics.Transition("verify_otp", err)
	if err != nil {
		return classify(err, "failed to verify user")
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.OTPVerifiedEvent, user.ID).WithEmail(email))
	return nil
}

// VerifyForgotPasswordOTP consumes a code issued by ForgotPassword
func (s *AccountServiceImpl) VerifyForgotPasswordOTP(ctx context.Context, email, otp string) error {
	if email == "" || otp == "" {
		return domain.ErrEmailAndOTPRequired
	}

	user, err := s.verifyCode(ctx, "verify_reset_otp", email, otp)
	if err != nil {
		return err
	}

	err = s.userRepo.SetOTP(ctx, email, nil)
	s.metrics.Transition("verify_reset_otp", err)
	if err != nil {
		return classify(err, "failed to clear otp")
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.OTPVerifiedEvent, user.ID).
		WithEmail(email).
		WithMetadata("flow", "forgot_password"))
	return nil
}

func (s *AccountServiceImpl) verifyCode(ctx context.Context, transition, email, otp string) (*domain.User, error) {
	user, err := s.otpSvc.Verify(ctx, email, otp)
	if err != nil {
		s.metrics.Transition(transition, err)
		if errors.Is(err, domain.ErrOTPInvalid) {
			s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.OTPFailureEvent, 0).WithEmail(email).WithError(err))
		}
		return nil, err
	}
	return user, nil
}

// ResetPassword stores a new password hash. It does not check that a reset
// code was verified first.
func (s *AccountServiceImpl) ResetPassword(ctx context.Context, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return domain.ErrEmailAndNewPasswordNeeded
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return classify(err, "failed to load user")
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return domain.Internal(err, "failed to hash password")
	}

	err = s.userRepo.UpdatePassword(ctx, email, hash)
	s.metrics.Transition("reset_password", err)
	if err != nil {
		return classify(err, "failed to update password")
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.PasswordResetEvent, user.ID).WithEmail(email))
	return nil
}

// SignIn checks the credentials of a verified account and issues a sign-in token
func (s *AccountServiceImpl) SignIn(ctx context.Context, email, password string) (*domain.SignInResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrEmailAndPasswordRequired
	}

	result, userID, err := s.signIn(ctx, email, password)
	s.metrics.Transition("signin", err)
	if err != nil {
		s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserLoginFailureEvent, userID).WithEmail(email).WithError(err))
		return nil, err
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserLoginEvent, userID).WithEmail(email))
	return result, nil
}

func (s *AccountServiceImpl) signIn(ctx context.Context, email, password string) (*domain.SignInResult, uint, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, 0, classify(err, "failed to load user")
	}

	if !user.IsVerified {
		return nil, user.ID, domain.ErrUserNotVerified
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, user.ID, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.IssueSignInToken(user.ID, user.Role, user.BusinessID)
	if err != nil {
		return nil, user.ID, domain.Internal(err, "failed to issue token")
	}

	if err := s.userRepo.SetAuthToken(ctx, user.ID, token); err != nil {
		return nil, user.ID, classify(err, "failed to store token")
	}

	return &domain.SignInResult{AuthToken: token, User: user.Profile()}, user.ID, nil
}
