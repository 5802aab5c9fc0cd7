package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/money"
)

// Comparison row labels, in display order.
const (
	RowPrice         = "Price"
	RowDestination   = "Destination"
	RowDuration      = "Duration"
	RowDeparturePort = "Departure Port"
	RowDepartureDate = "Departure Date"
	RowGuestRating   = "Guest Rating"
	RowShipDetails   = "Ship Details"
	RowTopFeatures   = "Top Features"
	RowPros          = "Pros"
	RowCons          = "Cons"
	RowBestFor       = "Best For"
)

// maxListedFeatures caps the Top Features row.
const maxListedFeatures = 4

// comparisonRows builds each row's value for one offering.
var comparisonRows = []struct {
	label string
	value func(domain.Offering) string
}{
	{RowPrice, func(o domain.Offering) string { return money.Format(o.Price) }},
	{RowDestination, func(o domain.Offering) string { return o.Destination }},
	{RowDuration, func(o domain.Offering) string { return strconv.Itoa(o.DurationNights) + " nights" }},
	{RowDeparturePort, func(o domain.Offering) string { return o.DeparturePort }},
	{RowDepartureDate, func(o domain.Offering) string { return o.DepartureDate }},
	{RowGuestRating, func(o domain.Offering) string {
		return fmt.Sprintf("%.1f (%s reviews)", o.Rating, money.Count(o.Reviews))
	}},
	{RowShipDetails, func(o domain.Offering) string {
		return fmt.Sprintf("Capacity: %s, Built: %d, Size: %s tons",
			money.Count(o.Capacity), o.YearBuilt, money.Count(o.Tonnage))
	}},
	{RowTopFeatures, func(o domain.Offering) string {
		features := o.Features
		if len(features) > maxListedFeatures {
			features = features[:maxListedFeatures]
		}
		return strings.Join(features, ", ")
	}},
	{RowPros, func(o domain.Offering) string { return strings.Join(o.Pros, ", ") }},
	{RowCons, func(o domain.Offering) string { return strings.Join(o.Cons, ", ") }},
	{RowBestFor, func(o domain.Offering) string { return o.BestFor }},
}

// OfferingComparer defines the offering search and comparison operations.
type OfferingComparer interface {
	// Search returns the offerings matching opts.Filter, ordered by opts.SortBy.
	Search(opts SearchOptions) []domain.Offering

	// Compare builds a side-by-side view of up to domain.MaxComparedOfferings
	// offerings. Duplicate ids collapse to their first occurrence.
	Compare(ids []string) (*domain.Comparison, error)
}

type offeringComparer struct {
	source domain.OfferingSource
}

// NewOfferingComparer creates an OfferingComparer over the given source.
func NewOfferingComparer(source domain.OfferingSource) OfferingComparer {
	return &offeringComparer{source: source}
}

// Search implements OfferingComparer.Search.
func (c *offeringComparer) Search(opts SearchOptions) []domain.Offering {
	filtered := ApplyOfferingFilter(c.source.Offerings(), opts.Filter)
	return SortOfferings(filtered, opts.SortBy)
}

// Compare implements OfferingComparer.Compare.
func (c *offeringComparer) Compare(ids []string) (*domain.Comparison, error) {
	selected := dedupeIDs(ids)

	switch {
	case len(selected) == 0:
		return nil, domain.WrapInvalidRequest("at least one offering id is required")
	case len(selected) > domain.MaxComparedOfferings:
		return nil, fmt.Errorf("%w: %d selected, at most %d can be compared",
			domain.ErrTooManyOfferings, len(selected), domain.MaxComparedOfferings)
	}

	offerings := make([]domain.Offering, 0, len(selected))
	for _, id := range selected {
		o, ok := c.source.Offering(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrOfferingNotFound, id)
		}
		offerings = append(offerings, o)
	}

	return &domain.Comparison{
		Offerings:   offerings,
		Rows:        buildRows(offerings),
		PriceSpread: domain.NewPriceSpread(offerings),
	}, nil
}

// dedupeIDs trims ids, drops blanks and keeps the first occurrence of each.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func buildRows(offerings []domain.Offering) []domain.ComparisonRow {
	rows := make([]domain.ComparisonRow, len(comparisonRows))
	for i, r := range comparisonRows {
		values := make([]string, len(offerings))
		for j, o := range offerings {
			values[j] = r.value(o)
		}
		rows[i] = domain.ComparisonRow{Label: r.label, Values: values}
	}
	return rows
}

// Ensure offeringComparer implements OfferingComparer at compile time.
var _ OfferingComparer = (*offeringComparer)(nil)
