package usecase

import (
	"sort"

	"github.com/cruise-quote/cruise-quote-service/internal/domain"
)

// Estimator defines the price estimation operations.
type Estimator interface {
	// Estimate prices a single request. It fails with an error wrapping
	// domain.ErrInvalidQuoteRequest or domain.ErrInvalidReferenceKey and
	// never returns a partial breakdown.
	Estimate(req domain.QuoteRequest) (domain.PriceBreakdown, error)

	// EstimateAllCabins prices the request once per cabin type, ignoring the
	// request's cabin key, ordered by cabin multiplier ascending.
	EstimateAllCabins(req domain.QuoteRequest) ([]domain.CabinQuote, error)
}

// estimator holds only read-only state and is safe for concurrent use.
type estimator struct {
	catalog domain.ReferenceCatalog
	rates   domain.Rates
}

// NewEstimator creates an Estimator over the given catalog.
// If rates is nil, the published default rates are used.
func NewEstimator(catalog domain.ReferenceCatalog, rates *domain.Rates) Estimator {
	r := domain.DefaultRates()
	if rates != nil {
		r = *rates
	}

	return &estimator{
		catalog: catalog,
		rates:   r,
	}
}

// resolved holds the catalog entries a request refers to.
type resolved struct {
	port        domain.DeparturePort
	destination domain.Destination
	cabin       domain.CabinType
	month       domain.TravelMonth
}

// Estimate implements Estimator.Estimate.
func (e *estimator) Estimate(req domain.QuoteRequest) (domain.PriceBreakdown, error) {
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		return domain.PriceBreakdown{}, err
	}

	ref, err := e.resolve(req, true)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}

	return e.price(req, ref), nil
}

// EstimateAllCabins implements Estimator.EstimateAllCabins.
func (e *estimator) EstimateAllCabins(req domain.QuoteRequest) ([]domain.CabinQuote, error) {
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ref, err := e.resolve(req, false)
	if err != nil {
		return nil, err
	}

	cabins := e.catalog.Cabins()
	sort.SliceStable(cabins, func(i, j int) bool {
		return cabins[i].PriceMultiplier < cabins[j].PriceMultiplier
	})

	quotes := make([]domain.CabinQuote, 0, len(cabins))
	for _, cabin := range cabins {
		ref.cabin = cabin
		quotes = append(quotes, domain.CabinQuote{
			Cabin:     cabin,
			Breakdown: e.price(req, ref),
		})
	}
	return quotes, nil
}

// resolve looks up every reference key in port, destination, cabin, month
// order and reports the first one that is unknown.
func (e *estimator) resolve(req domain.QuoteRequest, withCabin bool) (resolved, error) {
	var ref resolved
	var ok bool

	if ref.port, ok = e.catalog.Port(req.DeparturePortKey); !ok {
		return resolved{}, domain.NewReferenceKeyError(domain.FieldDeparturePort, req.DeparturePortKey)
	}
	if ref.destination, ok = e.catalog.Destination(req.DestinationKey); !ok {
		return resolved{}, domain.NewReferenceKeyError(domain.FieldDestination, req.DestinationKey)
	}
	if withCabin {
		if ref.cabin, ok = e.catalog.Cabin(req.CabinTypeKey); !ok {
			return resolved{}, domain.NewReferenceKeyError(domain.FieldCabinType, req.CabinTypeKey)
		}
	}
	if ref.month, ok = e.catalog.Month(req.TravelMonthKey); !ok {
		return resolved{}, domain.NewReferenceKeyError(domain.FieldTravelMonth, req.TravelMonthKey)
	}
	return ref, nil
}

// price applies the adjustments in their fixed order. Each discount is taken
// from the running subtotal left by the previous one. Nothing is clamped.
func (e *estimator) price(req domain.QuoteRequest, ref resolved) domain.PriceBreakdown {
	seasonMultiplier := ref.destination.SeasonMultiplier(ref.month.IsPeakSeason)
	passengers := req.TotalPassengers()

	rawBase := ref.destination.BasePricePerNightPerPerson * float64(req.TripLengthNights) * float64(passengers)
	seasonal := rawBase * (seasonMultiplier - 1)
	cabinUpgrade := rawBase * (ref.cabin.PriceMultiplier - 1)
	baseFare := rawBase + seasonal + cabinUpgrade

	portDiscount := baseFare * ref.port.DiscountRate

	var groupDiscount float64
	if passengers >= e.rates.GroupMinPassengers {
		groupDiscount = (baseFare - portDiscount) * e.rates.GroupDiscountRate
	}

	var residentDiscount float64
	if req.IsLocalResident {
		residentDiscount = (baseFare - portDiscount - groupDiscount) * e.rates.ResidentDiscountRate
	}

	subtotal := baseFare - portDiscount - groupDiscount - residentDiscount
	taxes := subtotal * e.rates.TaxRate
	total := subtotal + taxes

	return domain.PriceBreakdown{
		BaseFare:               baseFare,
		SeasonalAdjustment:     seasonal,
		CabinUpgradeCost:       cabinUpgrade,
		PortDiscountAmount:     portDiscount,
		GroupDiscountAmount:    groupDiscount,
		ResidentDiscountAmount: residentDiscount,
		Subtotal:               subtotal,
		TaxesAndFees:           taxes,
		Total:                  total,
		PricePerPerson:         total / float64(passengers),
		TotalSavings:           portDiscount + groupDiscount + residentDiscount,
		TotalPassengers:        passengers,
		TripLengthNights:       req.TripLengthNights,
	}
}

// Ensure estimator implements Estimator at compile time.
var _ Estimator = (*estimator)(nil)
