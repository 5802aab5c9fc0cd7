package usecase

import (
	"strconv"
	"testing"

	"github.com/cruise-quote/cruise-quote-service/internal/domain"
)

// BenchmarkApplyOfferingFilter benchmarks filtering with various filter combinations.
func BenchmarkApplyOfferingFilter(b *testing.B) {
	offerings := make([]domain.Offering, 100)
	for i := range offerings {
		offerings[i] = createTestOffering(strconv.Itoa(i), "7-Night Caribbean", 5+i%6, float64(800+i*10), 4.0+float64(i%10)/10, "2027-03-01", i%2 == 0)
	}

	b.Run("no_filter", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ApplyOfferingFilter(offerings, nil)
		}
	})

	b.Run("combined_filter", func(b *testing.B) {
		filter := &domain.OfferingFilter{
			Destination:     "caribbean",
			DurationNights:  intPtr(7),
			MaxPrice:        floatPtr(1500),
			RecommendedOnly: true,
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyOfferingFilter(offerings, filter)
		}
	})
}

// BenchmarkEstimate benchmarks a single quote.
func BenchmarkEstimate(b *testing.B) {
	est := NewEstimator(newTestCatalog(b), nil)
	req := caribbeanRequest()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := est.Estimate(req); err != nil {
			b.Fatal(err)
		}
	}
}
