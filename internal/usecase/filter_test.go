package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruise-quote/cruise-quote-service/internal/domain"
)

// createTestOffering creates an offering for testing with the given parameters.
func createTestOffering(id, destination string, nights int, price, rating float64, departure string, recommended bool) domain.Offering {
	return domain.Offering{
		ID:             id,
		CruiseLine:     "Test Line",
		ShipName:       "Ship " + id,
		Destination:    destination,
		DurationNights: nights,
		DepartureDate:  departure,
		DeparturePort:  "Cape Liberty, Bayonne NJ",
		Price:          price,
		CabinType:      "Balcony",
		Rating:         rating,
		Reviews:        1000,
		Features:       []string{"Pool"},
		Recommended:    recommended,
	}
}

// sampleOfferings mirrors the shape of the featured sailings.
func sampleOfferings() []domain.Offering {
	return []domain.Offering{
		createTestOffering("1", "7-Night Eastern Caribbean", 7, 1299, 4.6, "2027-03-15", true),
		createTestOffering("2", "8-Night Caribbean", 8, 899, 4.3, "2027-03-14", false),
		createTestOffering("3", "7-Night Bermuda", 7, 1199, 4.5, "2027-05-10", true),
		createTestOffering("4", "7-Night Bermuda", 7, 1599, 4.7, "2027-05-17", true),
		createTestOffering("5", "10-Night Southern Caribbean", 10, 1799, 4.4, "2027-04-05", false),
	}
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func ids(offerings []domain.Offering) []string {
	out := make([]string, len(offerings))
	for i, o := range offerings {
		out[i] = o.ID
	}
	return out
}

func TestApplyOfferingFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter *domain.OfferingFilter
		want   []string
	}{
		{name: "nil filter keeps all", filter: nil, want: []string{"1", "2", "3", "4", "5"}},
		{name: "empty filter keeps all", filter: &domain.OfferingFilter{}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "destination substring", filter: &domain.OfferingFilter{Destination: "caribbean"}, want: []string{"1", "2", "5"}},
		{name: "exact duration", filter: &domain.OfferingFilter{DurationNights: intPtr(7)}, want: []string{"1", "3", "4"}},
		{name: "max price inclusive", filter: &domain.OfferingFilter{MaxPrice: floatPtr(1199)}, want: []string{"2", "3"}},
		{name: "recommended only", filter: &domain.OfferingFilter{RecommendedOnly: true}, want: []string{"1", "3", "4"}},
		{
			name: "combined",
			filter: &domain.OfferingFilter{
				Destination:     "Bermuda",
				MaxPrice:        floatPtr(1500),
				RecommendedOnly: true,
			},
			want: []string{"3"},
		},
		{name: "no matches", filter: &domain.OfferingFilter{Destination: "Alaska"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyOfferingFilter(sampleOfferings(), tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyOfferingFilter_EmptyList(t *testing.T) {
	got := ApplyOfferingFilter(nil, &domain.OfferingFilter{RecommendedOnly: true})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApplyOfferingFilter_DoesNotMutateOriginal(t *testing.T) {
	original := sampleOfferings()
	before := ids(original)

	filtered := ApplyOfferingFilter(original, &domain.OfferingFilter{Destination: "Bermuda"})
	filtered[0].Price = 1

	assert.Equal(t, before, ids(original))
	assert.Equal(t, 1199.0, original[2].Price)
}
