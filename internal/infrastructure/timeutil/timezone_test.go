package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation_AgencyTimezone(t *testing.T) {
	ClearLocationCache()

	loc, err := GetLocation(AgencyTimezone)
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestGetLocation_Invalid(t *testing.T) {
	ClearLocationCache()

	loc, err := GetLocation("Invalid/Timezone")
	assert.Error(t, err)
	assert.Nil(t, loc)
	assert.Contains(t, err.Error(), "failed to load timezone")
}

func TestGetLocation_Caching(t *testing.T) {
	ClearLocationCache()

	loc1, err := GetLocation(AgencyTimezone)
	require.NoError(t, err)
	loc2, err := GetLocation(AgencyTimezone)
	require.NoError(t, err)

	assert.Same(t, loc1, loc2)
}

func TestGetLocation_ConcurrentAccess(t *testing.T) {
	ClearLocationCache()

	var wg sync.WaitGroup
	names := []string{UTC, AgencyTimezone, "Europe/London"}

	for i := 0; i < 10; i++ {
		for _, name := range names {
			wg.Add(1)
			go func(n string) {
				defer wg.Done()
				loc, err := GetLocation(n)
				assert.NoError(t, err)
				assert.NotNil(t, loc)
			}(name)
		}
	}
	wg.Wait()
}

func TestMustGetLocation_Invalid(t *testing.T) {
	assert.Panics(t, func() {
		MustGetLocation("Invalid/Timezone")
	})
}

func TestNowIn_CrossesMonthBoundary(t *testing.T) {
	// 02:00 UTC on Nov 1 is still Oct 31 in New York.
	clock := NewFixedClock(time.Date(2026, 11, 1, 2, 0, 0, 0, time.UTC))

	now, err := NowIn(clock, AgencyTimezone)
	require.NoError(t, err)

	assert.Equal(t, time.October, now.Month())
	assert.Equal(t, 31, now.Day())
}

func TestNowIn_InvalidTimezone(t *testing.T) {
	_, err := NowIn(NewRealClock(), "Invalid/Timezone")
	assert.Error(t, err)
}

func TestStartOfMonth_PreservesLocation(t *testing.T) {
	loc := MustGetLocation(AgencyTimezone)
	input := time.Date(2026, 10, 17, 15, 45, 0, 0, loc)

	got := StartOfMonth(input)

	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestMonthsFrom(t *testing.T) {
	start := time.Date(2026, 10, 31, 12, 0, 0, 0, time.UTC)

	months := MonthsFrom(start, 12)

	require.Len(t, months, 12)
	assert.Equal(t, "2026-10", MonthKey(months[0]))
	assert.Equal(t, "2026-11", MonthKey(months[1]))
	assert.Equal(t, "2027-02", MonthKey(months[4]), "month end must not skip February")
	assert.Equal(t, "2027-09", MonthKey(months[11]))
}

func TestMonthsFrom_NonPositive(t *testing.T) {
	assert.Nil(t, MonthsFrom(time.Now(), 0))
	assert.Nil(t, MonthsFrom(time.Now(), -1))
}

func TestMonthKeyAndLabel(t *testing.T) {
	m := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2027-06", MonthKey(m))
	assert.Equal(t, "June 2027", MonthLabel(m))
}
