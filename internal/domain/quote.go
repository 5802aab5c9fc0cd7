package domain

import (
	"math"
	"strings"
)

// Supported trip length range offered by the quote form. Lengths outside this
// range are still priced.
const (
	MinSupportedNights = 2
	MaxSupportedNights = 15
)

// QuoteRequest defines the trip parameters for a price estimate.
type QuoteRequest struct {
	DeparturePortKey string `json:"departurePortKey"`
	DestinationKey   string `json:"destinationKey"`
	TripLengthNights int    `json:"tripLengthNights"`
	AdultCount       int    `json:"adultCount"`
	ChildCount       int    `json:"childCount"`
	CabinTypeKey     string `json:"cabinTypeKey"`
	TravelMonthKey   string `json:"travelMonthKey"`
	IsLocalResident  bool   `json:"isLocalResident"`
}

// TotalPassengers returns adults plus children.
func (r QuoteRequest) TotalPassengers() int {
	return r.AdultCount + r.ChildCount
}

// Normalized returns a copy with reference keys trimmed and lowercased.
func (r QuoteRequest) Normalized() QuoteRequest {
	r.DeparturePortKey = NormalizeKey(r.DeparturePortKey)
	r.DestinationKey = NormalizeKey(r.DestinationKey)
	r.CabinTypeKey = NormalizeKey(r.CabinTypeKey)
	r.TravelMonthKey = NormalizeKey(r.TravelMonthKey)
	return r
}

// Validate checks the numeric constraints of the request.
// It returns a *ValidationError wrapping ErrInvalidQuoteRequest on failure.
// Reference keys are resolved by the estimator, not here.
func (r QuoteRequest) Validate() error {
	if r.TripLengthNights <= 0 {
		return NewValidationError("trip_length_nights", "must be greater than 0")
	}
	if r.AdultCount < 1 {
		return NewValidationError("adult_count", "at least one adult is required")
	}
	if r.ChildCount < 0 {
		return NewValidationError("child_count", "must not be negative")
	}
	if r.ChildCount > math.MaxInt-r.AdultCount {
		return NewValidationError("child_count", "party size is too large")
	}
	return nil
}

// InSupportedRange reports whether the trip length falls inside the range the
// quote form offers.
func (r QuoteRequest) InSupportedRange() bool {
	return r.TripLengthNights >= MinSupportedNights && r.TripLengthNights <= MaxSupportedNights
}

// NormalizeKey trims and lowercases a reference key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
