package http

import (
	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/usecase"
)

// ToDomainQuoteRequest converts a QuoteRequest to domain.QuoteRequest.
// Keys are normalized by the estimator.
func ToDomainQuoteRequest(req *QuoteRequest) domain.QuoteRequest {
	return domain.QuoteRequest{
		DeparturePortKey: req.DeparturePort,
		DestinationKey:   req.Destination,
		TripLengthNights: req.TripLengthNights,
		AdultCount:       req.AdultCount,
		ChildCount:       req.ChildCount,
		CabinTypeKey:     req.CabinType,
		TravelMonthKey:   req.TravelMonth,
		IsLocalResident:  req.IsLocalResident,
	}
}

// ToDomainOfferingFilter converts search parameters to domain.OfferingFilter.
// Returns nil when no predicate is set.
func ToDomainOfferingFilter(req *OfferingSearchRequest) *domain.OfferingFilter {
	filter := &domain.OfferingFilter{
		Destination:     req.Destination,
		DurationNights:  req.DurationNights,
		MaxPrice:        req.MaxPrice,
		RecommendedOnly: req.RecommendedOnly,
	}
	if filter.IsEmpty() {
		return nil
	}
	return filter
}

// ToSearchOptions converts search parameters to usecase.SearchOptions.
func ToSearchOptions(req *OfferingSearchRequest) usecase.SearchOptions {
	return usecase.SearchOptions{
		Filter: ToDomainOfferingFilter(req),
		SortBy: domain.ParseSortOption(req.SortBy),
	}
}
