// Package domain contains the core business entities and rules for cruise quoting.
// The types here carry no framework dependency and form the foundation that the
// catalog, use cases and adapters build on.
package domain

//go:generate mockgen -source=catalog.go -destination=../../test/mock/catalog.go -package=mock

// DeparturePort is a home port the agency sells departures from.
type DeparturePort struct {
	// Key is the stable identifier used in requests (e.g., "cape-liberty")
	Key string `json:"key" yaml:"key"`

	// DisplayName is the human-readable port name
	DisplayName string `json:"displayName" yaml:"display_name"`

	// DistanceDescription describes travel time from the agency's service area
	DistanceDescription string `json:"distanceDescription" yaml:"distance_description"`

	// DiscountRate is the fraction taken off the base fare (0.0 - 1.0)
	DiscountRate float64 `json:"discountRate" yaml:"discount_rate"`
}

// Destination is a cruise region with its nightly pricing and season multipliers.
type Destination struct {
	Key                        string  `json:"key" yaml:"key"`
	DisplayName                string  `json:"displayName" yaml:"display_name"`
	BasePricePerNightPerPerson float64 `json:"basePricePerNightPerPerson" yaml:"base_price_per_night_per_person"`
	TypicalDuration            string  `json:"typicalDuration" yaml:"typical_duration"`
	PeakSeasonMultiplier       float64 `json:"peakSeasonMultiplier" yaml:"peak_season_multiplier"`
	OffPeakSeasonMultiplier    float64 `json:"offPeakSeasonMultiplier" yaml:"off_peak_season_multiplier"`
}

// SeasonMultiplier returns the multiplier for a peak or off-peak sailing.
func (d Destination) SeasonMultiplier(peak bool) float64 {
	if peak {
		return d.PeakSeasonMultiplier
	}
	return d.OffPeakSeasonMultiplier
}

// BaselineCabinKey is the cabin whose multiplier is exactly 1.0.
const BaselineCabinKey = "interior"

// CabinType is a class of stateroom and its price multiplier over interior.
type CabinType struct {
	Key             string  `json:"key" yaml:"key"`
	DisplayName     string  `json:"displayName" yaml:"display_name"`
	PriceMultiplier float64 `json:"priceMultiplier" yaml:"price_multiplier"`
}

// TravelMonth is one month of the planning horizon.
type TravelMonth struct {
	// Key is the year-month identifier (YYYY-MM)
	Key string `json:"key"`

	// DisplayLabel is the human-readable label (e.g., "June 2027")
	DisplayLabel string `json:"displayLabel"`

	// IsPeakSeason marks higher-demand months
	IsPeakSeason bool `json:"isPeakSeason"`
}

// ReferenceCatalog serves the static reference tables used to price a quote.
// Implementations must be safe for concurrent reads.
type ReferenceCatalog interface {
	// Port returns the departure port with the given key.
	Port(key string) (DeparturePort, bool)

	// Destination returns the destination with the given key.
	Destination(key string) (Destination, bool)

	// Cabin returns the cabin type with the given key.
	Cabin(key string) (CabinType, bool)

	// Month returns the travel month with the given key.
	Month(key string) (TravelMonth, bool)

	// Ports returns all departure ports in catalog order.
	Ports() []DeparturePort

	// Destinations returns all destinations in catalog order.
	Destinations() []Destination

	// Cabins returns all cabin types in catalog order.
	Cabins() []CabinType

	// Months returns the travel-month horizon in chronological order.
	Months() []TravelMonth
}

// OfferingSource serves the in-memory list of featured cruise offerings.
type OfferingSource interface {
	// Offerings returns all offerings in catalog order.
	Offerings() []Offering

	// Offering returns the offering with the given id.
	Offering(id string) (Offering, bool)
}
