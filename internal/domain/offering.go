package domain

import "strings"

// Offering is a featured sailing shown in the comparison tool.
type Offering struct {
	ID             string   `json:"id" yaml:"id"`
	CruiseLine     string   `json:"cruiseLine" yaml:"cruise_line"`
	ShipName       string   `json:"shipName" yaml:"ship_name"`
	Destination    string   `json:"destination" yaml:"destination"`
	DurationNights int      `json:"durationNights" yaml:"duration_nights"`
	DepartureDate  string   `json:"departureDate" yaml:"departure_date"`
	DeparturePort  string   `json:"departurePort" yaml:"departure_port"`
	Price          float64  `json:"price" yaml:"price"`
	CabinType      string   `json:"cabinType" yaml:"cabin_type"`
	Rating         float64  `json:"rating" yaml:"rating"`
	Reviews        int      `json:"reviews" yaml:"reviews"`
	Features       []string `json:"features" yaml:"features"`
	Pros           []string `json:"pros" yaml:"pros"`
	Cons           []string `json:"cons" yaml:"cons"`
	Capacity       int      `json:"capacity" yaml:"capacity"`
	YearBuilt      int      `json:"yearBuilt" yaml:"year_built"`
	Tonnage        int      `json:"tonnage" yaml:"tonnage"`
	BestFor        string   `json:"bestFor" yaml:"best_for"`

	// Recommended marks sailings the agency recommends to local travelers
	Recommended bool `json:"recommended" yaml:"recommended"`
}

// SortOption defines the available orderings of offerings.
type SortOption string

// Available sort options.
const (
	// SortByFeatured keeps catalog order (default)
	SortByFeatured SortOption = "featured"

	// SortByPrice sorts by price ascending (cheapest first)
	SortByPrice SortOption = "price"

	// SortByRating sorts by rating descending (best rated first)
	SortByRating SortOption = "rating"

	// SortByDuration sorts by nights ascending (shortest first)
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by departure date ascending (earliest first)
	SortByDeparture SortOption = "departure"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByFeatured, SortByPrice, SortByRating, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByFeatured if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(strings.ToLower(strings.TrimSpace(s)))
	if option.IsValid() {
		return option
	}
	return SortByFeatured
}

// OfferingFilter defines optional predicates over offerings.
type OfferingFilter struct {
	// Destination keeps offerings whose destination contains this text (case-insensitive)
	Destination string `json:"destination,omitempty"`

	// DurationNights keeps offerings with exactly this many nights
	DurationNights *int `json:"durationNights,omitempty"`

	// MaxPrice filters out offerings priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// RecommendedOnly keeps only agency-recommended offerings
	RecommendedOnly bool `json:"recommendedOnly,omitempty"`
}

// IsEmpty reports whether the filter has no active predicate.
func (f *OfferingFilter) IsEmpty() bool {
	if f == nil {
		return true
	}
	return strings.TrimSpace(f.Destination) == "" &&
		f.DurationNights == nil &&
		f.MaxPrice == nil &&
		!f.RecommendedOnly
}

// Matches checks if an offering matches all the filter criteria.
func (f *OfferingFilter) Matches(o Offering) bool {
	if f == nil {
		return true
	}

	if dest := strings.TrimSpace(f.Destination); dest != "" &&
		!strings.Contains(strings.ToLower(o.Destination), strings.ToLower(dest)) {
		return false
	}

	if f.DurationNights != nil && o.DurationNights != *f.DurationNights {
		return false
	}

	if f.MaxPrice != nil && o.Price > *f.MaxPrice {
		return false
	}

	if f.RecommendedOnly && !o.Recommended {
		return false
	}

	return true
}
