package notifications

import (
	"context"
	"fmt"

	"github.com/Bhavuk-Devex/AVO/internal/logging"
	"github.com/wneessen/go-mail"
)

// SMTPConfig holds the outgoing mail server settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer delivers plain-text email over SMTP
type SMTPMailer struct {
	cfg    SMTPConfig
	logger *logging.Logger
	send   func(ctx context.Context, msg *mail.Msg) error
}

// NewSMTPMailer creates a mailer. Without a host it only logs.
func NewSMTPMailer(cfg SMTPConfig, logger *logging.Logger) *SMTPMailer {
	m := &SMTPMailer{cfg: cfg, logger: logger}
	m.send = m.dialAndSend
	return m
}

// SendEmail sends a plain-text message to a single recipient
func (s *SMTPMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	if s.cfg.Host == "" {
		s.logger.InfoFields(ctx, "smtp not configured, email dropped", map[string]any{"to": to, "subject": subject})
		return nil
	}

	msg, err := s.buildMessage(to, subject, body)
	if err != nil {
		return err
	}
	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *SMTPMailer) buildMessage(to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", s.cfg.From, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

func (s *SMTPMailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}
