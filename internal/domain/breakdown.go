package domain

// Default pricing rates. Changing these values needs product sign-off.
const (
	DefaultTaxRate              = 0.18
	DefaultGroupDiscountRate    = 0.10
	DefaultGroupMinPassengers   = 4
	DefaultResidentDiscountRate = 0.05
)

// Rates holds the flat rates applied after the base fare is computed.
type Rates struct {
	// TaxRate covers port taxes and government fees, applied to the subtotal
	TaxRate float64 `json:"taxRate"`

	// GroupDiscountRate applies when the party reaches GroupMinPassengers
	GroupDiscountRate float64 `json:"groupDiscountRate"`

	// GroupMinPassengers is the party size that unlocks the group discount
	GroupMinPassengers int `json:"groupMinPassengers"`

	// ResidentDiscountRate applies when the purchaser is a local resident
	ResidentDiscountRate float64 `json:"residentDiscountRate"`
}

// DefaultRates returns the standard published rates.
func DefaultRates() Rates {
	return Rates{
		TaxRate:              DefaultTaxRate,
		GroupDiscountRate:    DefaultGroupDiscountRate,
		GroupMinPassengers:   DefaultGroupMinPassengers,
		ResidentDiscountRate: DefaultResidentDiscountRate,
	}
}

// PriceBreakdown is the itemized result of a single estimate.
//
// The identities below hold for every breakdown produced by the estimator:
//
//	Subtotal     = BaseFare - PortDiscountAmount - GroupDiscountAmount - ResidentDiscountAmount
//	Total        = Subtotal + TaxesAndFees
//	PricePerPerson = Total / TotalPassengers
//	TotalSavings = PortDiscountAmount + GroupDiscountAmount + ResidentDiscountAmount
//
// Values are not clamped; negative amounts are left for the presentation layer.
type PriceBreakdown struct {
	// BaseFare already includes SeasonalAdjustment and CabinUpgradeCost
	BaseFare               float64 `json:"baseFare"`
	SeasonalAdjustment     float64 `json:"seasonalAdjustment"`
	CabinUpgradeCost       float64 `json:"cabinUpgradeCost"`
	PortDiscountAmount     float64 `json:"portDiscountAmount"`
	GroupDiscountAmount    float64 `json:"groupDiscountAmount"`
	ResidentDiscountAmount float64 `json:"residentDiscountAmount"`
	Subtotal               float64 `json:"subtotal"`
	TaxesAndFees           float64 `json:"taxesAndFees"`
	Total                  float64 `json:"total"`
	PricePerPerson         float64 `json:"pricePerPerson"`
	TotalSavings           float64 `json:"totalSavings"`

	TotalPassengers  int `json:"totalPassengers"`
	TripLengthNights int `json:"tripLengthNights"`
}

// PricePerNight returns the total spread across the trip's nights.
func (b PriceBreakdown) PricePerNight() float64 {
	if b.TripLengthNights <= 0 {
		return 0
	}
	return b.Total / float64(b.TripLengthNights)
}

// HasDiscounts reports whether any discount applied.
func (b PriceBreakdown) HasDiscounts() bool {
	return b.TotalSavings != 0
}

// CabinQuote pairs a cabin type with the breakdown for that cabin.
type CabinQuote struct {
	Cabin     CabinType      `json:"cabin"`
	Breakdown PriceBreakdown `json:"breakdown"`
}
