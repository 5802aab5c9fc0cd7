package http

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruise-quote/cruise-quote-service/internal/domain"
)

func TestQuoteRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(r *QuoteRequest)
		wantFields []string
	}{
		{name: "valid request", modify: func(r *QuoteRequest) {}},
		{name: "children allowed", modify: func(r *QuoteRequest) { r.ChildCount = 3 }},
		{name: "nights outside form range accepted", modify: func(r *QuoteRequest) { r.TripLengthNights = 21 }},
		{name: "padded month accepted", modify: func(r *QuoteRequest) { r.TravelMonth = " 2027-07 " }},
		{
			name:       "missing port",
			modify:     func(r *QuoteRequest) { r.DeparturePort = "  " },
			wantFields: []string{"departure_port"},
		},
		{
			name:       "missing cabin",
			modify:     func(r *QuoteRequest) { r.CabinType = "" },
			wantFields: []string{"cabin_type"},
		},
		{
			name:       "month wrong format",
			modify:     func(r *QuoteRequest) { r.TravelMonth = "July 2027" },
			wantFields: []string{"travel_month"},
		},
		{
			name:       "zero nights",
			modify:     func(r *QuoteRequest) { r.TripLengthNights = 0 },
			wantFields: []string{"trip_length_nights"},
		},
		{
			name: "party size overflows",
			modify: func(r *QuoteRequest) {
				r.AdultCount = math.MaxInt
				r.ChildCount = 1
			},
			wantFields: []string{"child_count"},
		},
		{
			name: "no adults and negative children",
			modify: func(r *QuoteRequest) {
				r.AdultCount = 0
				r.ChildCount = -1
			},
			wantFields: []string{"adult_count", "child_count"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validQuoteBody()
			tt.modify(&req)

			err := req.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var errs *ValidationErrors
			require.ErrorAs(t, err, &errs)
			details := errs.ToMap()
			assert.Len(t, details, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, details, field)
			}
		})
	}
}

func TestQuoteRequest_ValidateAllCabins(t *testing.T) {
	req := validQuoteBody()
	req.CabinType = ""

	assert.NoError(t, req.ValidateAllCabins())
	assert.Error(t, req.Validate())
}

func TestOfferingSearchRequest_Validate(t *testing.T) {
	zero := 0
	seven := 7
	negative := -5.0
	budget := 1000.0

	tests := []struct {
		name      string
		req       OfferingSearchRequest
		wantField string
	}{
		{name: "empty search", req: OfferingSearchRequest{}},
		{name: "all filters", req: OfferingSearchRequest{Destination: "bahamas", DurationNights: &seven, MaxPrice: &budget, RecommendedOnly: true, SortBy: "rating"}},
		{name: "sort is case-insensitive", req: OfferingSearchRequest{SortBy: " Departure "}},
		{name: "zero duration", req: OfferingSearchRequest{DurationNights: &zero}, wantField: "duration"},
		{name: "negative price", req: OfferingSearchRequest{MaxPrice: &negative}, wantField: "max_price"},
		{name: "unknown sort", req: OfferingSearchRequest{SortBy: "best_value"}, wantField: "sort_by"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var errs *ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.wantField)
		})
	}
}

func TestCompareRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CompareRequest{IDs: []string{"1"}}).Validate())
	assert.NoError(t, (&CompareRequest{IDs: []string{"", "3"}}).Validate())
	assert.Error(t, (&CompareRequest{}).Validate())
	assert.Error(t, (&CompareRequest{IDs: []string{"", "  "}}).Validate())
}

func TestToDomainQuoteRequest(t *testing.T) {
	req := validQuoteBody()
	req.ChildCount = 1

	got := ToDomainQuoteRequest(&req)

	assert.Equal(t, domain.QuoteRequest{
		DeparturePortKey: "cape-liberty",
		DestinationKey:   "caribbean",
		TripLengthNights: 7,
		AdultCount:       2,
		ChildCount:       1,
		CabinTypeKey:     "balcony",
		TravelMonthKey:   "2027-07",
		IsLocalResident:  true,
	}, got)
}

func TestToSearchOptions(t *testing.T) {
	price := 1500.0

	opts := ToSearchOptions(&OfferingSearchRequest{MaxPrice: &price, SortBy: "rating"})
	require.NotNil(t, opts.Filter)
	assert.Equal(t, &price, opts.Filter.MaxPrice)
	assert.Equal(t, domain.SortByRating, opts.SortBy)

	empty := ToSearchOptions(&OfferingSearchRequest{Destination: " "})
	assert.Nil(t, empty.Filter, "blank filters collapse to nil")
	assert.Equal(t, domain.SortByFeatured, empty.SortBy)
}

func TestValidationErrorsError(t *testing.T) {
	errs := &ValidationErrors{}
	errs.Add("adult_count", "at least one adult is required")
	errs.Add("travel_month", "travel_month is required")

	// Error() returns the first error's message
	assert.Equal(t, "at least one adult is required", errs.Error())
	assert.True(t, errs.HasErrors())

	emptyErrs := &ValidationErrors{}
	assert.Equal(t, "validation failed", emptyErrs.Error())
	assert.False(t, emptyErrs.HasErrors())
}

func TestToAmountDTO(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 4223.2554, want: "$4,223"},
		{amount: 1394.5, want: "$1,395"},
		{amount: 0, want: "$0"},
		{amount: -37.2, want: "$0"},
	}

	for _, tt := range tests {
		got := ToAmountDTO(tt.amount)
		assert.Equal(t, tt.want, got.Display)
		assert.Equal(t, tt.amount, got.Amount)
	}
}
