package integration

import (
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	httpAdapter "github.com/cruise-quote/cruise-quote-service/internal/adapter/http"
	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/test/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestConcurrent_QuotesAreIndependent fires the same and different quotes
// concurrently against one server and checks every response matches the
// sequential result.
func TestConcurrent_QuotesAreIndependent(t *testing.T) {
	ts := newDefaultServer(t)

	cabins := []string{"interior", "oceanview", "balcony", "suite"}
	want := make(map[string]httpAdapter.BreakdownDTO, len(cabins))
	for _, cabin := range cabins {
		req := testutil.ReferenceQuote()
		req.CabinTypeKey = cabin
		resp := ts.QuoteRequest(QuoteBody(req))
		require.Equal(t, http.StatusOK, resp.Code)

		var got httpAdapter.QuoteResponseDTO
		require.NoError(t, resp.Decode(&got))
		want[cabin] = got.Breakdown
	}

	numRequests := 40
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	// Act - Fire concurrent requests
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			req := testutil.ReferenceQuote()
			req.CabinTypeKey = cabins[idx%len(cabins)]
			results[idx] = ts.QuoteRequest(QuoteBody(req))
		}(i)
	}

	wg.Wait()

	// Assert - every response equals the sequential one for its cabin
	for i, resp := range results {
		require.Equal(t, http.StatusOK, resp.Code, "request %d should succeed", i)

		var got httpAdapter.QuoteResponseDTO
		require.NoError(t, resp.Decode(&got))
		assert.Equal(t, want[cabins[i%len(cabins)]], got.Breakdown, "request %d", i)
	}
}

// TestConcurrent_MixedEndpoints hits every endpoint at once, including
// failing requests, and checks each gets its own status and request id.
func TestConcurrent_MixedEndpoints(t *testing.T) {
	ts := newDefaultServer(t)

	unknown := testutil.ReferenceQuote()
	unknown.DestinationKey = "atlantis"

	calls := []struct {
		name   string
		status int
		do     func() Response
	}{
		{"quote", http.StatusOK, func() Response { return ts.QuoteRequest(QuoteBody(testutil.ReferenceQuote())) }},
		{"unknown destination", http.StatusBadRequest, func() Response { return ts.QuoteRequest(QuoteBody(unknown)) }},
		{"cabins", http.StatusOK, func() Response { return ts.CabinsRequest(QuoteBody(testutil.ReferenceQuote())) }},
		{"catalog", http.StatusOK, ts.CatalogRequest},
		{"search", http.StatusOK, func() Response { return ts.SearchRequest(url.Values{"sort_by": {"price"}}) }},
		{"compare", http.StatusOK, func() Response { return ts.CompareRequest("1", "4") }},
		{"compare unknown", http.StatusNotFound, func() Response { return ts.CompareRequest("77") }},
		{"health", http.StatusOK, ts.HealthRequest},
	}

	rounds := 10
	var wg sync.WaitGroup
	results := make([][]Response, rounds)

	for r := 0; r < rounds; r++ {
		results[r] = make([]Response, len(calls))
		for i := range calls {
			wg.Add(1)
			go func(r, i int) {
				defer wg.Done()
				results[r][i] = calls[i].do()
			}(r, i)
		}
	}

	wg.Wait()

	seen := make(map[string]struct{})
	for r := range results {
		for i, call := range calls {
			resp := results[r][i]
			assert.Equal(t, call.status, resp.Code, "round %d %s", r, call.name)

			id := resp.Headers.Get("X-Request-ID")
			require.NotEmpty(t, id)
			_, dup := seen[id]
			assert.False(t, dup, "request id %s reused", id)
			seen[id] = struct{}{}
		}
	}
}

// TestConcurrent_SharedEstimator calls one estimator from many goroutines
// directly, without the HTTP layer.
func TestConcurrent_SharedEstimator(t *testing.T) {
	ts := newDefaultServer(t)

	numWorkers := 16
	perWorker := 50

	var wg sync.WaitGroup
	totals := make(chan float64, numWorkers*perWorker)

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				b, err := ts.Estimator.Estimate(testutil.ReferenceQuote())
				if err != nil {
					t.Error(err)
					return
				}
				totals <- b.Total
			}
		}()
	}

	wg.Wait()
	close(totals)

	count := 0
	for total := range totals {
		assert.InDelta(t, 4223.2554, total, tolerance)
		count++
	}
	assert.Equal(t, numWorkers*perWorker, count)

	_, err := ts.Estimator.Estimate(domain.QuoteRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidQuoteRequest)
}
