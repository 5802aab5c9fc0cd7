package http

import (
	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/money"
)

// AmountDTO carries a computed amount both raw and formatted for display.
// Display is clamped at zero and rounded to whole dollars.
type AmountDTO struct {
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

// QuoteResponseDTO is the data transfer object for a single estimate.
type QuoteResponseDTO struct {
	Request   QuoteSummaryDTO `json:"request"`
	Breakdown BreakdownDTO    `json:"breakdown"`
}

// QuoteSummaryDTO echoes the normalized request the estimate was made for.
type QuoteSummaryDTO struct {
	DeparturePort    string `json:"departure_port"`
	Destination      string `json:"destination"`
	TripLengthNights int    `json:"trip_length_nights"`
	AdultCount       int    `json:"adult_count"`
	ChildCount       int    `json:"child_count"`
	TotalPassengers  int    `json:"total_passengers"`
	CabinType        string `json:"cabin_type,omitempty"`
	TravelMonth      string `json:"travel_month"`
	IsLocalResident  bool   `json:"is_local_resident"`
	InSupportedRange bool   `json:"in_supported_range"`
}

// BreakdownDTO is the itemized price breakdown.
type BreakdownDTO struct {
	BaseFare           AmountDTO `json:"base_fare"`
	SeasonalAdjustment AmountDTO `json:"seasonal_adjustment"`
	CabinUpgradeCost   AmountDTO `json:"cabin_upgrade_cost"`
	PortDiscount       AmountDTO `json:"port_discount"`
	GroupDiscount      AmountDTO `json:"group_discount"`
	ResidentDiscount   AmountDTO `json:"resident_discount"`
	Subtotal           AmountDTO `json:"subtotal"`
	TaxesAndFees       AmountDTO `json:"taxes_and_fees"`
	Total              AmountDTO `json:"total"`
	PricePerPerson     AmountDTO `json:"price_per_person"`
	PricePerNight      AmountDTO `json:"price_per_night"`
	TotalSavings       AmountDTO `json:"total_savings"`
}

// CabinQuotesResponseDTO is the same trip priced across every cabin type.
type CabinQuotesResponseDTO struct {
	Request QuoteSummaryDTO `json:"request"`
	Cabins  []CabinQuoteDTO `json:"cabins"`
}

// CabinQuoteDTO is one cabin's estimate.
type CabinQuoteDTO struct {
	Cabin     CabinDTO     `json:"cabin"`
	Breakdown BreakdownDTO `json:"breakdown"`
}

// CatalogResponseDTO lists the reference tables the quote form offers.
type CatalogResponseDTO struct {
	Ports           []PortDTO        `json:"departure_ports"`
	Destinations    []DestinationDTO `json:"destinations"`
	Cabins          []CabinDTO       `json:"cabin_types"`
	Months          []MonthDTO       `json:"travel_months"`
	Rates           RatesDTO         `json:"rates"`
	SupportedNights NightsRangeDTO   `json:"supported_nights"`
}

// PortDTO represents a departure port.
type PortDTO struct {
	Key                 string  `json:"key"`
	DisplayName         string  `json:"display_name"`
	DistanceDescription string  `json:"distance_description"`
	DiscountRate        float64 `json:"discount_rate"`
}

// DestinationDTO represents a destination.
type DestinationDTO struct {
	Key                        string  `json:"key"`
	DisplayName                string  `json:"display_name"`
	BasePricePerNightPerPerson float64 `json:"base_price_per_night_per_person"`
	TypicalDuration            string  `json:"typical_duration"`
	PeakSeasonMultiplier       float64 `json:"peak_season_multiplier"`
	OffPeakSeasonMultiplier    float64 `json:"off_peak_season_multiplier"`
}

// CabinDTO represents a cabin type.
type CabinDTO struct {
	Key             string  `json:"key"`
	DisplayName     string  `json:"display_name"`
	PriceMultiplier float64 `json:"price_multiplier"`
}

// MonthDTO represents a travel month.
type MonthDTO struct {
	Key          string `json:"key"`
	DisplayLabel string `json:"display_label"`
	IsPeakSeason bool   `json:"is_peak_season"`
}

// RatesDTO lists the flat rates applied after the base fare.
type RatesDTO struct {
	TaxRate              float64 `json:"tax_rate"`
	GroupDiscountRate    float64 `json:"group_discount_rate"`
	GroupMinPassengers   int     `json:"group_min_passengers"`
	ResidentDiscountRate float64 `json:"resident_discount_rate"`
}

// NightsRangeDTO is the trip length range the quote form offers.
type NightsRangeDTO struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// OfferingListResponseDTO is the result of an offering search.
type OfferingListResponseDTO struct {
	TotalResults int           `json:"total_results"`
	SortBy       string        `json:"sort_by"`
	Offerings    []OfferingDTO `json:"offerings"`
}

// OfferingDTO represents a featured cruise offering.
type OfferingDTO struct {
	ID             string    `json:"id"`
	CruiseLine     string    `json:"cruise_line"`
	ShipName       string    `json:"ship_name"`
	Destination    string    `json:"destination"`
	DurationNights int       `json:"duration_nights"`
	DepartureDate  string    `json:"departure_date"`
	DeparturePort  string    `json:"departure_port"`
	Price          AmountDTO `json:"price"`
	CabinType      string    `json:"cabin_type"`
	Rating         float64   `json:"rating"`
	Reviews        int       `json:"reviews"`
	Features       []string  `json:"features"`
	Pros           []string  `json:"pros"`
	Cons           []string  `json:"cons"`
	Capacity       int       `json:"capacity"`
	YearBuilt      int       `json:"year_built"`
	Tonnage        int       `json:"tonnage"`
	BestFor        string    `json:"best_for"`
	Recommended    bool      `json:"recommended"`
}

// ComparisonResponseDTO is a row-aligned side-by-side comparison.
type ComparisonResponseDTO struct {
	Offerings   []OfferingDTO      `json:"offerings"`
	Rows        []ComparisonRowDTO `json:"rows"`
	PriceSpread PriceSpreadDTO     `json:"price_spread"`
	CheapestID  string             `json:"cheapest_id"`
}

// ComparisonRowDTO is one labelled attribute, one value per offering.
type ComparisonRowDTO struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// PriceSpreadDTO summarizes the price range of the selection.
type PriceSpreadDTO struct {
	Min        AmountDTO `json:"min"`
	Max        AmountDTO `json:"max"`
	Difference AmountDTO `json:"difference"`
}

// ToAmountDTO pairs amount with its display form.
func ToAmountDTO(amount float64) AmountDTO {
	return AmountDTO{
		Amount:  amount,
		Display: money.Format(amount),
	}
}

// ToQuoteResponseDTO converts an estimate to a QuoteResponseDTO.
func ToQuoteResponseDTO(req domain.QuoteRequest, b domain.PriceBreakdown) *QuoteResponseDTO {
	return &QuoteResponseDTO{
		Request:   ToQuoteSummaryDTO(req),
		Breakdown: ToBreakdownDTO(b),
	}
}

// ToQuoteSummaryDTO converts a request to its normalized summary.
func ToQuoteSummaryDTO(req domain.QuoteRequest) QuoteSummaryDTO {
	req = req.Normalized()
	return QuoteSummaryDTO{
		DeparturePort:    req.DeparturePortKey,
		Destination:      req.DestinationKey,
		TripLengthNights: req.TripLengthNights,
		AdultCount:       req.AdultCount,
		ChildCount:       req.ChildCount,
		TotalPassengers:  req.TotalPassengers(),
		CabinType:        req.CabinTypeKey,
		TravelMonth:      req.TravelMonthKey,
		IsLocalResident:  req.IsLocalResident,
		InSupportedRange: req.InSupportedRange(),
	}
}

// ToBreakdownDTO converts a domain PriceBreakdown to a BreakdownDTO.
func ToBreakdownDTO(b domain.PriceBreakdown) BreakdownDTO {
	return BreakdownDTO{
		BaseFare:           ToAmountDTO(b.BaseFare),
		SeasonalAdjustment: ToAmountDTO(b.SeasonalAdjustment),
		CabinUpgradeCost:   ToAmountDTO(b.CabinUpgradeCost),
		PortDiscount:       ToAmountDTO(b.PortDiscountAmount),
		GroupDiscount:      ToAmountDTO(b.GroupDiscountAmount),
		ResidentDiscount:   ToAmountDTO(b.ResidentDiscountAmount),
		Subtotal:           ToAmountDTO(b.Subtotal),
		TaxesAndFees:       ToAmountDTO(b.TaxesAndFees),
		Total:              ToAmountDTO(b.Total),
		PricePerPerson:     ToAmountDTO(b.PricePerPerson),
		PricePerNight:      ToAmountDTO(b.PricePerNight()),
		TotalSavings:       ToAmountDTO(b.TotalSavings),
	}
}

// ToCabinQuotesResponseDTO converts an all-cabins estimate.
func ToCabinQuotesResponseDTO(req domain.QuoteRequest, quotes []domain.CabinQuote) *CabinQuotesResponseDTO {
	summary := ToQuoteSummaryDTO(req)
	summary.CabinType = ""

	dto := &CabinQuotesResponseDTO{
		Request: summary,
		Cabins:  make([]CabinQuoteDTO, len(quotes)),
	}
	for i, q := range quotes {
		dto.Cabins[i] = CabinQuoteDTO{
			Cabin:     toCabinDTO(q.Cabin),
			Breakdown: ToBreakdownDTO(q.Breakdown),
		}
	}
	return dto
}

// ToCatalogResponseDTO converts the reference tables and rates.
func ToCatalogResponseDTO(catalog domain.ReferenceCatalog, rates domain.Rates) *CatalogResponseDTO {
	ports := catalog.Ports()
	destinations := catalog.Destinations()
	cabins := catalog.Cabins()
	months := catalog.Months()

	dto := &CatalogResponseDTO{
		Ports:        make([]PortDTO, len(ports)),
		Destinations: make([]DestinationDTO, len(destinations)),
		Cabins:       make([]CabinDTO, len(cabins)),
		Months:       make([]MonthDTO, len(months)),
		Rates: RatesDTO{
			TaxRate:              rates.TaxRate,
			GroupDiscountRate:    rates.GroupDiscountRate,
			GroupMinPassengers:   rates.GroupMinPassengers,
			ResidentDiscountRate: rates.ResidentDiscountRate,
		},
		SupportedNights: NightsRangeDTO{
			Min: domain.MinSupportedNights,
			Max: domain.MaxSupportedNights,
		},
	}

	for i, p := range ports {
		dto.Ports[i] = PortDTO{
			Key:                 p.Key,
			DisplayName:         p.DisplayName,
			DistanceDescription: p.DistanceDescription,
			DiscountRate:        p.DiscountRate,
		}
	}
	for i, d := range destinations {
		dto.Destinations[i] = DestinationDTO{
			Key:                        d.Key,
			DisplayName:                d.DisplayName,
			BasePricePerNightPerPerson: d.BasePricePerNightPerPerson,
			TypicalDuration:            d.TypicalDuration,
			PeakSeasonMultiplier:       d.PeakSeasonMultiplier,
			OffPeakSeasonMultiplier:    d.OffPeakSeasonMultiplier,
		}
	}
	for i, c := range cabins {
		dto.Cabins[i] = toCabinDTO(c)
	}
	for i, m := range months {
		dto.Months[i] = MonthDTO{
			Key:          m.Key,
			DisplayLabel: m.DisplayLabel,
			IsPeakSeason: m.IsPeakSeason,
		}
	}

	return dto
}

func toCabinDTO(c domain.CabinType) CabinDTO {
	return CabinDTO{
		Key:             c.Key,
		DisplayName:     c.DisplayName,
		PriceMultiplier: c.PriceMultiplier,
	}
}

// ToOfferingListResponseDTO converts search results.
func ToOfferingListResponseDTO(offerings []domain.Offering, sortBy domain.SortOption) *OfferingListResponseDTO {
	dto := &OfferingListResponseDTO{
		TotalResults: len(offerings),
		SortBy:       string(sortBy),
		Offerings:    make([]OfferingDTO, len(offerings)),
	}
	for i := range offerings {
		dto.Offerings[i] = ToOfferingDTO(&offerings[i])
	}
	return dto
}

// ToOfferingDTO converts a domain Offering to an OfferingDTO.
func ToOfferingDTO(o *domain.Offering) OfferingDTO {
	return OfferingDTO{
		ID:             o.ID,
		CruiseLine:     o.CruiseLine,
		ShipName:       o.ShipName,
		Destination:    o.Destination,
		DurationNights: o.DurationNights,
		DepartureDate:  o.DepartureDate,
		DeparturePort:  o.DeparturePort,
		Price:          ToAmountDTO(o.Price),
		CabinType:      o.CabinType,
		Rating:         o.Rating,
		Reviews:        o.Reviews,
		Features:       nonNil(o.Features),
		Pros:           nonNil(o.Pros),
		Cons:           nonNil(o.Cons),
		Capacity:       o.Capacity,
		YearBuilt:      o.YearBuilt,
		Tonnage:        o.Tonnage,
		BestFor:        o.BestFor,
		Recommended:    o.Recommended,
	}
}

// ToComparisonResponseDTO converts a domain Comparison.
func ToComparisonResponseDTO(c *domain.Comparison) *ComparisonResponseDTO {
	if c == nil {
		return nil
	}

	dto := &ComparisonResponseDTO{
		Offerings: make([]OfferingDTO, len(c.Offerings)),
		Rows:      make([]ComparisonRowDTO, len(c.Rows)),
		PriceSpread: PriceSpreadDTO{
			Min:        ToAmountDTO(c.PriceSpread.Min),
			Max:        ToAmountDTO(c.PriceSpread.Max),
			Difference: ToAmountDTO(c.PriceSpread.Difference),
		},
		CheapestID: c.Cheapest(),
	}
	for i := range c.Offerings {
		dto.Offerings[i] = ToOfferingDTO(&c.Offerings[i])
	}
	for i, r := range c.Rows {
		dto.Rows[i] = ComparisonRowDTO{Label: r.Label, Values: r.Values}
	}
	return dto
}

// nonNil keeps empty lists as [] rather than null in JSON.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
