package services

import (
	"errors"

	"github.com/Bhavuk-Devex/AVO/domain"
)

// classify keeps domain errors as they are and wraps everything else as Internal
func classify(err error, message string) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return domain.Internal(err, message)
}

// translatePolicy maps a policy denial to the message callers expect
func translatePolicy(err, noGrant, outOfScope error) error {
	switch {
	case errors.Is(err, domain.ErrAccessDenied):
		return noGrant
	case errors.Is(err, domain.ErrOutOfScope):
		return outOfScope
	default:
		return err
	}
}

// present returns v when it points at a non-empty string
func present(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	s := *v
	return &s
}

func valueOr(v *string, fallback string) string {
	if p := present(v); p != nil {
		return *p
	}
	return fallback
}
