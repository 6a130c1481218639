package domain

import (
	"context"
	"time"
)

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Account lifecycle events
	UserSignUpEvent       AuditEventType = "USER_SIGNED_UP"
	OTPIssuedEvent        AuditEventType = "OTP_ISSUED"
	OTPVerifiedEvent      AuditEventType = "OTP_VERIFIED"
	OTPFailureEvent       AuditEventType = "OTP_VERIFICATION_FAILED"
	PasswordResetEvent    AuditEventType = "PASSWORD_RESET"
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent AuditEventType = "USER_LOGIN_FAILED"

	// Business events
	BusinessRegisteredEvent AuditEventType = "BUSINESS_REGISTERED"
	BusinessUpdatedEvent    AuditEventType = "BUSINESS_UPDATED"
	EmployeeAddedEvent      AuditEventType = "EMPLOYEE_ADDED"
	EmployeeUpdatedEvent    AuditEventType = "EMPLOYEE_UPDATED"
	EmployeeDeletedEvent    AuditEventType = "EMPLOYEE_DELETED"

	// Authorization events
	AccessDeniedEvent AuditEventType = "ACCESS_DENIED"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType  AuditEventType         `json:"event_type"`
	UserID     uint                   `json:"user_id"`
	Email      string                 `json:"email,omitempty"`
	BusinessID *uint                  `json:"business_id,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	ErrorMsg   string                 `json:"error_msg,omitempty"`
	Success    bool                   `json:"success"`
}

// AuditLogger records audit events
type AuditLogger interface {
	LogEvent(ctx context.Context, event *AuditEvent)
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, userID uint) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Metadata:  make(map[string]interface{}),
		Success:   true,
	}
}

// WithError marks the event failed
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}

func (e *AuditEvent) WithBusiness(businessID uint) *AuditEvent {
	e.BusinessID = &businessID
	return e
}

// WithMetadata adds metadata to the event
func (e *AuditEvent) WithMetadata(key string, value interface{}) *AuditEvent {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}
