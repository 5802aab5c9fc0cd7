package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quotehttp "github.com/cruise-quote/cruise-quote-service/internal/adapter/http"
	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/timeutil"
)

// execute runs the CLI with the horizon pinned to October 2026.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(timeutil.NewFixedClock(time.Date(2026, 10, 17, 16, 0, 0, 0, time.UTC)))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

var referenceTrip = []string{
	"-p", "cape-liberty", "-d", "caribbean", "-c", "balcony", "-m", "2027-07", "--resident",
}

func TestEstimate_JSON(t *testing.T) {
	out, err := execute(t, append([]string{"estimate", "--json"}, referenceTrip...)...)
	require.NoError(t, err)

	got := decode[quotehttp.QuoteResponseDTO](t, out)
	assert.Equal(t, "$4,095", got.Breakdown.BaseFare.Display)
	assert.Equal(t, "$4,223", got.Breakdown.Total.Display)
	assert.Equal(t, "$603", got.Breakdown.PricePerNight.Display)
	assert.InDelta(t, 4223.2554, got.Breakdown.Total.Amount, 1e-6)
	assert.Equal(t, "balcony", got.Request.CabinType)
	assert.True(t, got.Request.InSupportedRange)
}

func TestEstimate_Table(t *testing.T) {
	out, err := execute(t, append([]string{"estimate"}, referenceTrip...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "July 2027 (peak)")
	assert.Contains(t, out, "Resident discount")
	assert.Contains(t, out, "$4,223")
	assert.Contains(t, out, "You save")
	assert.NotContains(t, out, "Group discount", "group discount needs four guests")
	assert.NotContains(t, out, "\x1b[", "piped output carries no escape codes")
}

func TestEstimate_DefaultsMonthToHorizonStart(t *testing.T) {
	out, err := execute(t, "estimate", "--json", "-p", "manhattan", "-d", "bahamas", "-c", "interior")
	require.NoError(t, err)

	got := decode[quotehttp.QuoteResponseDTO](t, out)
	assert.Equal(t, "2026-10", got.Request.TravelMonth)
	assert.Equal(t, 2, got.Request.AdultCount)
	assert.Equal(t, 7, got.Request.TripLengthNights)
}

func TestEstimate_OutsideFormRange(t *testing.T) {
	out, err := execute(t, "estimate", "-p", "brooklyn", "-d", "alaska", "-c", "suite", "-n", "21")
	require.NoError(t, err)

	assert.Contains(t, out, "outside the 2-15 night range")
}

func TestEstimate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantIs   error
		contains string
	}{
		{
			name:     "unknown port lists valid keys",
			args:     []string{"estimate", "-p", "miami", "-d", "caribbean", "-c", "balcony"},
			wantIs:   domain.ErrInvalidReferenceKey,
			contains: "valid: cape-liberty, manhattan, brooklyn, baltimore",
		},
		{
			name:     "month outside horizon lists range",
			args:     []string{"estimate", "-p", "cape-liberty", "-d", "caribbean", "-c", "balcony", "-m", "2028-01"},
			wantIs:   domain.ErrInvalidReferenceKey,
			contains: "2026-10 to 2027-09",
		},
		{
			name:   "no adults",
			args:   []string{"estimate", "-p", "cape-liberty", "-d", "caribbean", "-c", "balcony", "--adults", "0"},
			wantIs: domain.ErrInvalidQuoteRequest,
		},
		{
			name:     "missing cabin flag",
			args:     []string{"estimate", "-p", "cape-liberty", "-d", "caribbean"},
			contains: `"cabin"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestCabins(t *testing.T) {
	out, err := execute(t, "cabins", "--json", "-p", "cape-liberty", "-d", "caribbean", "-m", "2027-07", "--resident")
	require.NoError(t, err)

	got := decode[quotehttp.CabinQuotesResponseDTO](t, out)
	require.Len(t, got.Cabins, 4)
	assert.Empty(t, got.Request.CabinType)

	keys := make([]string, len(got.Cabins))
	for i, c := range got.Cabins {
		keys[i] = c.Cabin.Key
	}
	assert.Equal(t, []string{"interior", "oceanview", "balcony", "suite"}, keys)
	assert.Equal(t, "$4,223", got.Cabins[2].Breakdown.Total.Display)

	table, err := execute(t, "cabins", "-p", "cape-liberty", "-d", "caribbean", "-m", "2027-07")
	require.NoError(t, err)
	assert.Contains(t, table, "Multiplier")
	assert.Contains(t, table, "Ocean View")
}

func TestCatalog(t *testing.T) {
	out, err := execute(t, "catalog")
	require.NoError(t, err)
	for _, want := range []string{"Departure ports", "cape-liberty", "caribbean", "suite", "2026-10", "Taxes & fees 18%"} {
		assert.Contains(t, out, want)
	}

	out, err = execute(t, "catalog", "--json")
	require.NoError(t, err)
	got := decode[quotehttp.CatalogResponseDTO](t, out)
	require.Len(t, got.Months, 12)
	assert.Equal(t, "2026-10", got.Months[0].Key)
	assert.Equal(t, "2027-09", got.Months[11].Key)
	assert.Equal(t, domain.DefaultTaxRate, got.Rates.TaxRate)
}

func TestCatalog_MissingFile(t *testing.T) {
	_, err := execute(t, "catalog", "--catalog", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestSearch(t *testing.T) {
	out, err := execute(t, "search", "--json", "--destination", "caribbean", "--sort", "price")
	require.NoError(t, err)

	got := decode[quotehttp.OfferingListResponseDTO](t, out)
	assert.Equal(t, "price", got.SortBy)
	require.Equal(t, 3, got.TotalResults)
	assert.Equal(t, "2", got.Offerings[0].ID)
	assert.Equal(t, "1", got.Offerings[1].ID)
	assert.Equal(t, "5", got.Offerings[2].ID)
}

func TestSearch_Filters(t *testing.T) {
	out, err := execute(t, "search", "--json", "--duration", "7", "--max-price", "1300", "--recommended")
	require.NoError(t, err)

	got := decode[quotehttp.OfferingListResponseDTO](t, out)
	ids := make([]string, len(got.Offerings))
	for i, o := range got.Offerings {
		ids[i] = o.ID
	}
	assert.Equal(t, []string{"1", "3"}, ids)

	out, err = execute(t, "search", "--max-price", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "No sailings match")
}

func TestSearch_InvalidFlags(t *testing.T) {
	_, err := execute(t, "search", "--sort", "best_value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sort_by")

	_, err = execute(t, "search", "--duration", "0")
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "--json", "1", "3", "1")
	require.NoError(t, err)

	got := decode[quotehttp.ComparisonResponseDTO](t, out)
	require.Len(t, got.Offerings, 2, "duplicate ids collapse")
	assert.Equal(t, "3", got.CheapestID)
	assert.Equal(t, "$100", got.PriceSpread.Difference.Display)
	require.NotEmpty(t, got.Rows)
	assert.Equal(t, "Price", got.Rows[0].Label)
	assert.Equal(t, []string{"$1,299", "$1,199"}, got.Rows[0].Values)

	table, err := execute(t, "compare", "2", "4")
	require.NoError(t, err)
	assert.Contains(t, table, "#2 Carnival Magic")
	assert.Contains(t, table, "Guest Rating")
	assert.Contains(t, table, "Cheapest is #2")
}

func TestCompare_Errors(t *testing.T) {
	_, err := execute(t, "compare", "1", "2", "3", "4")
	assert.ErrorIs(t, err, domain.ErrTooManyOfferings)

	_, err = execute(t, "compare", "99")
	assert.ErrorIs(t, err, domain.ErrOfferingNotFound)

	_, err = execute(t, "compare")
	assert.Error(t, err, "at least one id is required")
}

func TestPercent(t *testing.T) {
	tests := map[float64]string{
		0.18:  "18%",
		0.10:  "10%",
		0.075: "7.5%",
		0:     "0%",
	}
	for rate, want := range tests {
		assert.Equal(t, want, percent(rate))
	}
}
