// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/cruise-quote/cruise-quote-service/internal/catalog"
	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/timeutil"
)

// Fixed test horizon: the clock reads 2026-10-17 noon in New York, so the
// travel months run from 2026-10 to 2027-09.
const (
	FirstMonth   = "2026-10"
	LastMonth    = "2027-09"
	PeakMonth    = "2027-07"
	OffPeakMonth = "2027-01"
)

// FixedNow is the instant the test clock is pinned to.
var FixedNow = time.Date(2026, 10, 17, 16, 0, 0, 0, time.UTC)

// TestDataPath returns the absolute path of a file under test/testdata.
func TestDataPath(t *testing.T, filename string) string {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "test", "testdata", filename)
}

// LoadTestData loads a file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestData(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(TestDataPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// Clock returns a clock pinned to FixedNow.
func Clock() *timeutil.FixedClock {
	return timeutil.NewFixedClock(FixedNow)
}

// Catalog builds the embedded catalog on the fixed test horizon.
func Catalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Default(catalog.Options{Clock: Clock()})
	if err != nil {
		t.Fatalf("Failed to build embedded catalog: %v", err)
	}
	return c
}

// CatalogFromFile builds a catalog from a testdata file on the fixed horizon.
func CatalogFromFile(t *testing.T, filename string) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Load(TestDataPath(t, filename), catalog.Options{Clock: Clock()})
	if err != nil {
		t.Fatalf("Failed to load catalog %s: %v", filename, err)
	}
	return c
}

// ReferenceQuote returns the worked example: Caribbean from Cape Liberty,
// 7 nights, 2 adults, balcony, peak month, local resident.
// It prices at $4,223 total.
func ReferenceQuote() domain.QuoteRequest {
	return domain.QuoteRequest{
		DeparturePortKey: "cape-liberty",
		DestinationKey:   "caribbean",
		TripLengthNights: 7,
		AdultCount:       2,
		CabinTypeKey:     "balcony",
		TravelMonthKey:   PeakMonth,
		IsLocalResident:  true,
	}
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
// Convenience function for filter tests.
func FloatPtr(f float64) *float64 {
	return &f
}

// IntPtr returns a pointer to an int.
// Convenience function for filter tests.
func IntPtr(i int) *int {
	return &i
}
