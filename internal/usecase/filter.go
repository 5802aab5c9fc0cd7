package usecase

import (
	"github.com/cruise-quote/cruise-quote-service/internal/domain"
)

// ApplyOfferingFilter applies the given filter to a list of offerings.
// It returns a new slice containing only offerings that match all criteria.
//
// Behavior:
//   - Returns a copy of the input if filter is nil or empty
//   - Nil/blank filter values are skipped (no filtering on that criterion)
//   - Catalog order is preserved
//   - Does NOT mutate the original offerings slice
func ApplyOfferingFilter(offerings []domain.Offering, filter *domain.OfferingFilter) []domain.Offering {
	result := make([]domain.Offering, 0, len(offerings))
	for _, o := range offerings {
		if filter.Matches(o) {
			result = append(result, o)
		}
	}
	return result
}
