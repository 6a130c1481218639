package domain

import (
	"errors"
	"fmt"
)

// Kind classifies failures so transports can map them to status codes
type Kind string

const (
	KindBadRequest   Kind = "BAD_REQUEST"
	KindConflict     Kind = "CONFLICT"
	KindNotFound     Kind = "NOT_FOUND"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
	KindInvalidCode  Kind = "INVALID_CODE"
	KindRateLimited  Kind = "RATE_LIMITED"
	KindInternal     Kind = "INTERNAL"
)

// Error is a classified failure carrying a client-facing message
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewError creates a classified error
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Internal wraps an infrastructure failure
func Internal(err error, message string) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, Internal when it is unclassified
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// InternalMessage is the only message clients see for an Internal error
const InternalMessage = "Internal Server Error"

// MessageOf returns the client-facing message of err
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) && de.Kind != KindInternal {
		return de.Message
	}
	return InternalMessage
}

// Validation errors
var (
	ErrSignUpFieldsRequired      = NewError(KindBadRequest, "Name, email, and password are required.")
	ErrInvalidEmail              = NewError(KindBadRequest, "Invalid email format.")
	ErrEmailRequired             = NewError(KindBadRequest, "Email is required.")
	ErrEmailAndOTPRequired       = NewError(KindBadRequest, "Email and OTP are required.")
	ErrEmailAndPasswordRequired  = NewError(KindBadRequest, "Email and password are required.")
	ErrEmailAndNewPasswordNeeded = NewError(KindBadRequest, "Email and new password are required.")
	ErrBusinessNameRequired      = NewError(KindBadRequest, "Business name is required.")
	ErrEmployeeFieldsRequired    = NewError(KindBadRequest, "Name, email, and password are required.")
	ErrEmployeeIDRequired        = NewError(KindBadRequest, "Employee ID is required.")
	ErrBusinessIDRequired        = NewError(KindBadRequest, "Business ID is required.")
	ErrEmailImmutable            = NewError(KindBadRequest, "Email cannot be updated.")
	ErrInvalidBody               = NewError(KindBadRequest, "Invalid request body.")
)

// Account errors
var (
	ErrUserNotFound       = NewError(KindNotFound, "User not found.")
	ErrEmailExists        = NewError(KindConflict, "Email already exists.")
	ErrOTPInvalid         = NewError(KindInvalidCode, "Invalid OTP.")
	ErrUserNotVerified    = NewError(KindForbidden, "Account not verified. Please verify your email.")
	ErrInvalidCredentials = NewError(KindUnauthorized, "Invalid credentials.")
)

// Token errors
var (
	ErrTokenMissing   = NewError(KindUnauthorized, "Access denied. No token provided.")
	ErrTokenInvalid   = NewError(KindUnauthorized, "Invalid token.")
	ErrTokenExpired   = NewError(KindUnauthorized, "Token has expired.")
	ErrTokenMalformed = NewError(KindUnauthorized, "Malformed token.")
)

// Business and employee errors
var (
	ErrAlreadyBusinessAdmin    = NewError(KindConflict, "User is already a business admin.")
	ErrBusinessNotFound        = NewError(KindNotFound, "Business not found or unauthorized.")
	ErrBusinessUpdateForbidden = NewError(KindForbidden, "Unauthorized: Only business admins can update business details.")
	ErrNotBusinessAdmin        = NewError(KindForbidden, "Unauthorized: Only business admins can add employees.")
	ErrDeleteNotBusinessAdmin  = NewError(KindForbidden, "Unauthorized: Only business admins can delete employees.")
	ErrNoBusiness              = NewError(KindForbidden, "Business not found. Please register a business first.")
	ErrEmployeeEmailInUse      = NewError(KindConflict, "Email already in use.")
	ErrEmployeeNotFound        = NewError(KindNotFound, "Employee not found.")
	ErrEmployeeNotInBusiness   = NewError(KindNotFound, "Employee not found or does not belong to your business.")
	ErrEmployeeOtherBusiness   = NewError(KindForbidden, "Unauthorized: You can only update employees in your business.")
	ErrEmployeeNotSelf         = NewError(KindForbidden, "Unauthorized: Employees can only update their own profile.")
	ErrEmployeePasswordChange  = NewError(KindForbidden, "Employees cannot update their password.")
	ErrBusinessAccessDenied    = NewError(KindForbidden, "Unauthorized: You don't have access to this business.")
)

// Authorization errors
var (
	ErrAccessDenied      = NewError(KindForbidden, "Unauthorized: Access denied.")
	ErrOutOfScope        = NewError(KindForbidden, "Unauthorized: Resource is outside your scope.")
	ErrBusinessAdminOnly = NewError(KindForbidden, "Access denied. Business admin role required.")
	ErrTooManyRequests   = NewError(KindRateLimited, "Too many requests. Please try again later.")
)
