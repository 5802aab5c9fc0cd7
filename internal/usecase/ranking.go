package usecase

import (
	"sort"

	"github.com/cruise-quote/cruise-quote-service/internal/domain"
)

// SortOfferings sorts offerings according to the specified sort option.
// Uses stable sorting so equal values keep catalog order.
//
// Sort options:
//   - SortByFeatured (default): catalog order
//   - SortByPrice: ascending by price (cheapest first)
//   - SortByRating: descending by rating (best rated first)
//   - SortByDuration: ascending by nights (shortest first)
//   - SortByDeparture: ascending by departure date (earliest first)
//
// Empty or invalid sortBy falls back to SortByFeatured. The input slice is
// not mutated.
func SortOfferings(offerings []domain.Offering, sortBy domain.SortOption) []domain.Offering {
	result := make([]domain.Offering, len(offerings))
	copy(result, offerings)

	if len(result) <= 1 {
		return result
	}

	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case domain.SortByRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DurationNights < result[j].DurationNights
		})
	case domain.SortByDeparture:
		// ISO dates (YYYY-MM-DD) order lexically.
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DepartureDate < result[j].DepartureDate
		})
	}

	return result
}
