// Package usecase contains the business logic for cruise quoting: the price
// estimator and the offering search and comparison tool.
package usecase

import "github.com/cruise-quote/cruise-quote-service/internal/domain"

// SearchOptions contains optional parameters for an offering search.
type SearchOptions struct {
	// Filter contains optional filtering criteria to apply to offerings
	Filter *domain.OfferingFilter

	// SortBy specifies how to sort the results (default: featured)
	SortBy domain.SortOption
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filter: nil,
		SortBy: domain.SortByFeatured,
	}
}
