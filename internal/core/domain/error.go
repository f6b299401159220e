package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")

	// * Lifecycle errors.
	ErrIllegalTransition     = errors.New("status transition is not allowed")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrMissingWinPrice       = errors.New("win price is not set")
	ErrPayloadMismatch       = errors.New("payload does not match requested status")

	// * Accounting errors.
	ErrInvalidAmount = errors.New("invalid amount")
)

// MissingFieldsError names the fields a transition still needs. It matches
// ErrMissingRequiredFields under errors.Is so callers can branch on the kind
// without losing the field list.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingRequiredFields
}
