package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cruise-quote/cruise-quote-service/internal/domain"
)

func TestSortOfferings(t *testing.T) {
	tests := []struct {
		name   string
		sortBy domain.SortOption
		want   []string
	}{
		{name: "featured keeps catalog order", sortBy: domain.SortByFeatured, want: []string{"1", "2", "3", "4", "5"}},
		{name: "empty keeps catalog order", sortBy: "", want: []string{"1", "2", "3", "4", "5"}},
		{name: "invalid keeps catalog order", sortBy: "cheapest", want: []string{"1", "2", "3", "4", "5"}},
		{name: "price ascending", sortBy: domain.SortByPrice, want: []string{"2", "3", "1", "4", "5"}},
		{name: "rating descending", sortBy: domain.SortByRating, want: []string{"4", "1", "3", "5", "2"}},
		{name: "duration ascending and stable", sortBy: domain.SortByDuration, want: []string{"1", "3", "4", "2", "5"}},
		{name: "departure ascending", sortBy: domain.SortByDeparture, want: []string{"2", "1", "5", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SortOfferings(sampleOfferings(), tt.sortBy)))
		})
	}
}

func TestSortOfferings_StableOnTies(t *testing.T) {
	offerings := []domain.Offering{
		createTestOffering("a", "x", 7, 500, 4.5, "2027-01-01", false),
		createTestOffering("b", "x", 7, 500, 4.5, "2027-01-01", false),
		createTestOffering("c", "x", 7, 400, 4.5, "2027-01-01", false),
	}

	assert.Equal(t, []string{"c", "a", "b"}, ids(SortOfferings(offerings, domain.SortByPrice)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(SortOfferings(offerings, domain.SortByRating)))
}

func TestSortOfferings_DoesNotMutateInput(t *testing.T) {
	original := sampleOfferings()

	_ = SortOfferings(original, domain.SortByPrice)

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(original))
}

func TestSortOfferings_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, SortOfferings(nil, domain.SortByPrice))

	single := sampleOfferings()[:1]
	assert.Equal(t, []string{"1"}, ids(SortOfferings(single, domain.SortByRating)))
}
