package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the quote and comparison domain.
var (
	// ErrInvalidReferenceKey is returned when a port, destination, cabin type
	// or travel month key does not resolve to a catalog entry.
	ErrInvalidReferenceKey = errors.New("invalid reference key")

	// ErrInvalidQuoteRequest is returned when trip length or passenger counts
	// violate the minimum constraints.
	ErrInvalidQuoteRequest = errors.New("invalid quote request")

	// ErrInvalidRequest is returned for malformed comparison requests.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrOfferingNotFound is returned when a compared offering id is unknown.
	ErrOfferingNotFound = errors.New("offering not found")

	// ErrTooManyOfferings is returned when more offerings are selected than
	// can be compared side by side.
	ErrTooManyOfferings = errors.New("too many offerings selected")

	// ErrInvalidCatalog is returned when the reference catalog fails to load.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Reference fields reported by ReferenceKeyError.
const (
	FieldDeparturePort = "departure_port"
	FieldDestination   = "destination"
	FieldCabinType     = "cabin_type"
	FieldTravelMonth   = "travel_month"
)

// ReferenceKeyError identifies which reference field failed to resolve.
type ReferenceKeyError struct {
	Field string
	Key   string
}

// NewReferenceKeyError creates a ReferenceKeyError for the given field and key.
func NewReferenceKeyError(field, key string) *ReferenceKeyError {
	return &ReferenceKeyError{Field: field, Key: key}
}

func (e *ReferenceKeyError) Error() string {
	return fmt.Sprintf("%s: unknown key %q", e.Field, e.Key)
}

// Unwrap allows errors.Is(err, ErrInvalidReferenceKey).
func (e *ReferenceKeyError) Unwrap() error {
	return ErrInvalidReferenceKey
}

// ValidationError represents a field-level validation failure of a quote request.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap allows errors.Is(err, ErrInvalidQuoteRequest).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidQuoteRequest
}

// WrapInvalidRequest wraps ErrInvalidRequest with a formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// WrapInvalidCatalog wraps ErrInvalidCatalog with a formatted message.
func WrapInvalidCatalog(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, fmt.Sprintf(format, args...))
}

// IsInvalidReferenceKey reports whether err is an unknown reference key error.
func IsInvalidReferenceKey(err error) bool {
	return errors.Is(err, ErrInvalidReferenceKey)
}

// IsInvalidQuoteRequest reports whether err is a quote request validation error.
func IsInvalidQuoteRequest(err error) bool {
	return errors.Is(err, ErrInvalidQuoteRequest)
}

// IsInvalidRequest reports whether err is a malformed comparison request.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsOfferingNotFound reports whether err is an unknown offering error.
func IsOfferingNotFound(err error) bool {
	return errors.Is(err, ErrOfferingNotFound)
}
