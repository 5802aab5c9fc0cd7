// Package http provides the HTTP handler layer for the cruise quote API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"math"
	"regexp"
	"strings"

	"github.com/cruise-quote/cruise-quote-service/internal/domain"
)

// QuoteRequest represents the request body for a price estimate.
type QuoteRequest struct {
	// DeparturePort is the departure port key (e.g., "cape-liberty")
	DeparturePort string `json:"departure_port" example:"cape-liberty"`

	// Destination is the destination key (e.g., "caribbean")
	Destination string `json:"destination" example:"caribbean"`

	// TripLengthNights is the number of nights at sea (the form offers 2-15)
	TripLengthNights int `json:"trip_length_nights" example:"7"`

	// AdultCount is the number of adults (at least 1)
	AdultCount int `json:"adult_count" example:"2"`

	// ChildCount is the number of children
	ChildCount int `json:"child_count" example:"0"`

	// CabinType is the cabin type key (e.g., "balcony"); ignored by the all-cabins quote
	CabinType string `json:"cabin_type,omitempty" example:"balcony"`

	// TravelMonth is the travel month key in YYYY-MM format
	TravelMonth string `json:"travel_month" example:"2027-07"`

	// IsLocalResident applies the local resident discount
	IsLocalResident bool `json:"is_local_resident" example:"true"`
}

// OfferingSearchRequest represents the query parameters of an offering search.
type OfferingSearchRequest struct {
	// Destination keeps offerings whose destination contains this text
	Destination string

	// DurationNights keeps offerings with exactly this many nights
	DurationNights *int

	// MaxPrice filters out offerings priced above this amount
	MaxPrice *float64

	// RecommendedOnly keeps only agency-recommended offerings
	RecommendedOnly bool

	// SortBy is one of: featured, price, rating, duration, departure
	SortBy string
}

// CompareRequest represents the request body for an offering comparison.
type CompareRequest struct {
	// IDs are the offering ids to compare, in display order (at most 3)
	IDs []string `json:"ids" example:"1,2,5"`
}

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Valid sort options.
var validSortOptions = map[string]bool{
	string(domain.SortByFeatured):  true,
	string(domain.SortByPrice):     true,
	string(domain.SortByRating):    true,
	string(domain.SortByDuration):  true,
	string(domain.SortByDeparture): true,
	"":                             true, // Empty is valid (defaults to featured)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates a single-cabin quote request.
// Unknown keys are reported later by the estimator.
func (r *QuoteRequest) Validate() error {
	return r.validate(true)
}

// ValidateAllCabins validates a quote request priced across every cabin, so
// cabin_type may be omitted.
func (r *QuoteRequest) ValidateAllCabins() error {
	return r.validate(false)
}

func (r *QuoteRequest) validate(requireCabin bool) error {
	errs := &ValidationErrors{}

	requireKey(errs, domain.FieldDeparturePort, r.DeparturePort)
	requireKey(errs, domain.FieldDestination, r.Destination)
	if requireCabin {
		requireKey(errs, domain.FieldCabinType, r.CabinType)
	}
	r.validateTravelMonth(errs)
	r.validateParty(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func requireKey(errs *ValidationErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, field+" is required")
	}
}

func (r *QuoteRequest) validateTravelMonth(errs *ValidationErrors) {
	month := strings.TrimSpace(r.TravelMonth)
	if month == "" {
		errs.Add(domain.FieldTravelMonth, "travel_month is required")
		return
	}
	if !monthPattern.MatchString(month) {
		errs.Add(domain.FieldTravelMonth, "travel_month must be in YYYY-MM format")
	}
}

func (r *QuoteRequest) validateParty(errs *ValidationErrors) {
	if r.TripLengthNights <= 0 {
		errs.Add("trip_length_nights", "trip_length_nights must be greater than 0")
	}
	if r.AdultCount < 1 {
		errs.Add("adult_count", "at least one adult is required")
	}
	if r.ChildCount < 0 {
		errs.Add("child_count", "child_count must not be negative")
	} else if r.AdultCount >= 1 && r.ChildCount > math.MaxInt-r.AdultCount {
		errs.Add("child_count", "party size is too large")
	}
}

// Validate validates the search parameters.
func (r *OfferingSearchRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.DurationNights != nil && *r.DurationNights <= 0 {
		errs.Add("duration", "duration must be greater than 0")
	}
	if r.MaxPrice != nil && *r.MaxPrice < 0 {
		errs.Add("max_price", "max_price must be a positive number")
	}
	if !validSortOptions[strings.ToLower(strings.TrimSpace(r.SortBy))] {
		errs.Add("sort_by", "sort_by must be one of: featured, price, rating, duration, departure")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks that at least one offering id was sent.
// Limits and duplicates are handled by the comparer.
func (r *CompareRequest) Validate() error {
	for _, id := range r.IDs {
		if strings.TrimSpace(id) != "" {
			return nil
		}
	}

	errs := &ValidationErrors{}
	errs.Add("ids", "at least one offering id is required")
	return errs
}
