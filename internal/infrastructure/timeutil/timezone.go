package timeutil

import (
	"fmt"
	"sync"
	"time"

	// Embed the tz database so zone lookups work in minimal containers.
	_ "time/tzdata"
)

// locationCache stores cached timezone locations for performance.
var locationCache sync.Map

// Common timezone names.
const (
	UTC = "UTC"

	// AgencyTimezone is where the agency and its local customers are.
	AgencyTimezone = "America/New_York"
)

// MonthKeyLayout is the layout of travel month keys (YYYY-MM).
const MonthKeyLayout = "2006-01"

// MonthLabelLayout is the layout of travel month labels ("June 2027").
const MonthLabelLayout = "January 2006"

// GetLocation returns a cached timezone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
// Use this for known-good timezone names (e.g., constants).
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// NowIn returns the clock's current time in the specified timezone.
func NowIn(clock Clock, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return clock.Now().In(loc), nil
}

// StartOfMonth returns midnight on the first day of t's month, in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthsFrom returns n consecutive month starts beginning with t's month.
func MonthsFrom(t time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}

	start := StartOfMonth(t)
	months := make([]time.Time, n)
	for i := range months {
		months[i] = start.AddDate(0, i, 0)
	}
	return months
}

// MonthKey formats t as a travel month key (YYYY-MM).
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// MonthLabel formats t as a travel month label ("June 2027").
func MonthLabel(t time.Time) string {
	return t.Format(MonthLabelLayout)
}

// ClearLocationCache clears the cached timezone locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
