package services

import (
	"context"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/logging"
)

// AuditLoggerImpl writes audit events onto the structured logger
type AuditLoggerImpl struct {
	logger *logging.Logger
}

func NewAuditLogger(logger *logging.Logger) domain.AuditLogger {
	return &AuditLoggerImpl{logger: logger}
}

// LogEvent implements domain.AuditLogger
func (a *AuditLoggerImpl) LogEvent(ctx context.Context, event *domain.AuditEvent) {
	fields := map[string]any{
		"audit":      true,
		"event_type": string(event.EventType),
		"user_id":    event.UserID,
		"success":    event.Success,
		"event_time": event.Timestamp,
	}
	if event.Email != "" {
		fields["email"] = event.Email
	}
	if event.BusinessID != nil {
		fields["business_id"] = *event.BusinessID
	}
	if event.ErrorMsg != "" {
		fields["error_msg"] = event.ErrorMsg
	}
	for k, v := range event.Metadata {
		fields["meta_"+k] = v
	}
	a.logger.InfoFields(ctx, "audit event", fields)
}
