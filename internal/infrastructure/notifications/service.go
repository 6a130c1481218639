package notifications

import (
	"context"
	"errors"

	"github.com/Bhavuk-Devex/AVO/domain"
)

// ErrSMSDisabled is returned when no SMS channel is configured
var ErrSMSDisabled = errors.New("sms channel disabled")

type emailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

// Service routes notifications to the email and SMS channels
type Service struct {
	email emailSender
	sms   smsSender
}

// NewService combines the channels; sms may be nil
func NewService(email *SMTPMailer, sms *TwilioSender) domain.NotificationService {
	s := &Service{email: email}
	if sms != nil {
		s.sms = sms
	}
	return s
}

// SendEmail implements domain.NotificationService
func (s *Service) SendEmail(ctx context.Context, to, subject, body string) error {
	return s.email.SendEmail(ctx, to, subject, body)
}

// SendSMS implements domain.NotificationService
func (s *Service) SendSMS(ctx context.Context, to, message string) error {
	if s.sms == nil {
		return ErrSMSDisabled
	}
	return s.sms.SendSMS(ctx, to, message)
}
