// Package common defines shared constants and sentinel errors used across
// client and server layers of Tuchka. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrVersionConflict = errors.New("version conflict")

	// Uniqueness violations. Both specific errors match ErrDuplicate.
	ErrDuplicate         = errors.New("already exists")
	ErrDuplicateUsername = fmt.Errorf("user %w", ErrDuplicate)
	ErrDuplicateEmail    = fmt.Errorf("email %w", ErrDuplicate)

	// Service-level errors.
	ErrorInternal       = errors.New("internal error")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrPasswordMismatch = errors.New("the new password and confirm new password do not match")
	ErrCredentialPolicy = errors.New("credential policy violation")

	// Auth errors (invalid, malformed, expired or already consumed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// PolicyError reports every reason a credential operation was rejected by the
// credential store. It matches ErrCredentialPolicy.
type PolicyError struct {
	Reasons []string
}

// NewPolicyError returns a *PolicyError for the given reasons.
func NewPolicyError(reasons ...string) *PolicyError {
	return &PolicyError{Reasons: reasons}
}

func (e *PolicyError) Error() string {
	return strings.Join(e.Reasons, ", ")
}

func (e *PolicyError) Is(target error) bool {
	return target == ErrCredentialPolicy
}
