package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/test/mock"
)

func TestOfferingComparer_Search(t *testing.T) {
	c := newTestCatalog(t)
	comparer := NewOfferingComparer(c)

	t.Run("default options return catalog order", func(t *testing.T) {
		got := comparer.Search(DefaultSearchOptions())
		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(got))
	})

	t.Run("filter and sort", func(t *testing.T) {
		got := comparer.Search(SearchOptions{
			Filter: &domain.OfferingFilter{Destination: "Caribbean"},
			SortBy: domain.SortByPrice,
		})
		assert.Equal(t, []string{"2", "1", "5"}, ids(got))
	})

	t.Run("recommended under budget", func(t *testing.T) {
		got := comparer.Search(SearchOptions{
			Filter: &domain.OfferingFilter{RecommendedOnly: true, MaxPrice: floatPtr(1300)},
			SortBy: domain.SortByRating,
		})
		assert.Equal(t, []string{"1", "3"}, ids(got))
	})
}

func TestOfferingComparer_Compare(t *testing.T) {
	comparer := NewOfferingComparer(newTestCatalog(t))

	got, err := comparer.Compare([]string{"1", "2", "5"})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "5"}, ids(got.Offerings))
	assert.Equal(t, domain.PriceSpread{Min: 899, Max: 1799, Difference: 900}, got.PriceSpread)
	assert.Equal(t, "2", got.Cheapest())

	labels := make([]string, len(got.Rows))
	for i, row := range got.Rows {
		labels[i] = row.Label
		assert.Len(t, row.Values, 3, row.Label)
	}
	assert.Equal(t, []string{
		RowPrice, RowDestination, RowDuration, RowDeparturePort, RowDepartureDate,
		RowGuestRating, RowShipDetails, RowTopFeatures, RowPros, RowCons, RowBestFor,
	}, labels)

	rows := make(map[string][]string, len(got.Rows))
	for _, row := range got.Rows {
		rows[row.Label] = row.Values
	}
	assert.Equal(t, []string{"$1,299", "$899", "$1,799"}, rows[RowPrice])
	assert.Equal(t, "7 nights", rows[RowDuration][0])
	assert.Equal(t, "4.6 (3,847 reviews)", rows[RowGuestRating][0])
	assert.Equal(t, "Capacity: 6,680, Built: 2018, Size: 228,081 tons", rows[RowShipDetails][0])
	assert.Equal(t, "Water Slides, Broadway Shows, Ice Skating, 20+ Dining Options", rows[RowTopFeatures][0])
	assert.Equal(t, "Families & First-timers", rows[RowBestFor][0])
}

func TestOfferingComparer_CompareDuplicatesCollapse(t *testing.T) {
	comparer := NewOfferingComparer(newTestCatalog(t))

	got, err := comparer.Compare([]string{"3", "1", "3", " 1 ", "4"})
	require.NoError(t, err)

	assert.Equal(t, []string{"3", "1", "4"}, ids(got.Offerings))
}

func TestOfferingComparer_CompareSingle(t *testing.T) {
	comparer := NewOfferingComparer(newTestCatalog(t))

	got, err := comparer.Compare([]string{"4"})
	require.NoError(t, err)

	assert.Equal(t, domain.PriceSpread{Min: 1599, Max: 1599}, got.PriceSpread)
}

func TestOfferingComparer_CompareErrors(t *testing.T) {
	comparer := NewOfferingComparer(newTestCatalog(t))

	tests := []struct {
		name    string
		ids     []string
		wantErr error
	}{
		{name: "nil ids", ids: nil, wantErr: domain.ErrInvalidRequest},
		{name: "only blanks", ids: []string{"", "  "}, wantErr: domain.ErrInvalidRequest},
		{name: "too many", ids: []string{"1", "2", "3", "4"}, wantErr: domain.ErrTooManyOfferings},
		{name: "unknown id", ids: []string{"1", "99"}, wantErr: domain.ErrOfferingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := comparer.Compare(tt.ids)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOfferingComparer_WithMockSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockOfferingSource(ctrl)

	a := createTestOffering("a", "Alaska", 7, 2000, 4.9, "2027-06-01", true)
	source.EXPECT().Offering("a").Return(a, true)
	source.EXPECT().Offering("b").Return(domain.Offering{}, false)

	comparer := NewOfferingComparer(source)
	_, err := comparer.Compare([]string{"a", "b"})

	require.Error(t, err)
	assert.True(t, domain.IsOfferingNotFound(err))
	assert.Contains(t, err.Error(), `"b"`)
}

func TestOfferingComparer_TooManyChecksBeforeLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockOfferingSource(ctrl)

	comparer := NewOfferingComparer(source)
	_, err := comparer.Compare([]string{"a", "b", "c", "d"})

	assert.ErrorIs(t, err, domain.ErrTooManyOfferings)
}
