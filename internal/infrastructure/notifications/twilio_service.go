package notifications

import (
	"context"
	"fmt"

	"github.com/Bhavuk-Devex/AVO/internal/logging"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender delivers SMS through the Twilio REST API
type TwilioSender struct {
	client     *twilio.RestClient
	fromNumber string
	logger     *logging.Logger
}

// NewTwilioSender creates an SMS sender. Without a from number it only logs.
func NewTwilioSender(accountSID, authToken, fromNumber string, logger *logging.Logger) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSender{
		client:     client,
		fromNumber: fromNumber,
		logger:     logger,
	}
}

// SendSMS sends message to the given number
func (t *TwilioSender) SendSMS(ctx context.Context, to, message string) error {
	if t.fromNumber == "" {
		t.logger.InfoFields(ctx, "sms delivery not configured, message dropped", map[string]any{"to": to})
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
