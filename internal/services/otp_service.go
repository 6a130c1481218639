package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/logging"
)

const (
	otpEmailSubject = "Your OTP Code"
	otpMin          = 100000
	otpSpan         = 900000
)

// OTPServiceImpl implements domain.OTPService. Codes live on the user row
// and never expire.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	userRepo        domain.UserRepository
	logger          *logging.Logger
	smsCopy         bool
}

// NewOTPService creates a new OTP service. With smsCopy the code is also
// texted to users that have a number.
func NewOTPService(notificationSvc domain.NotificationService, userRepo domain.UserRepository, logger *logging.Logger, smsCopy bool) domain.OTPService {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		userRepo:        userRepo,
		logger:          logger,
		smsCopy:         smsCopy,
	}
}

// Generate returns a six digit code uniform over 100000-999999
func (s *OTPServiceImpl) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+otpMin), nil
}

// Deliver implements domain.OTPService
func (s *OTPServiceImpl) Deliver(ctx context.Context, user *domain.User, code string) {
	body := fmt.Sprintf("Your OTP code is: %s", code)
	ctx = s.logger.WithField(ctx, "email", user.Email)

	if err := s.notificationSvc.SendEmail(ctx, user.Email, otpEmailSubject, body); err != nil {
		s.logger.Error(ctx, "failed to send otp email", err)
	}

	if s.smsCopy && user.Number != nil && *user.Number != "" {
		if err := s.notificationSvc.SendSMS(ctx, *user.Number, body); err != nil {
			s.logger.Error(ctx, "failed to send otp sms", err)
		}
	}
}

// IssueAndSend overwrites the user's pending code and delivers the new one
func (s *OTPServiceImpl) IssueAndSend(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return classify(err, "failed to load user")
	}

	code, err := s.Generate()
	if err != nil {
		return domain.Internal(err, "failed to generate otp")
	}
	if err := s.userRepo.SetOTP(ctx, email, &code); err != nil {
		return classify(err, "failed to store otp")
	}

	s.Deliver(ctx, user, code)
	return nil
}

// Verify compares code with the stored one; the caller consumes it
func (s *OTPServiceImpl) Verify(ctx context.Context, email, code string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, classify(err, "failed to load user")
	}
	if user.OTP == nil || *user.OTP != code {
		return nil, domain.ErrOTPInvalid
	}
	return user, nil
}
