// Package integration provides helpers and integration tests for the cruise
// quote service. Integration tests wire the real catalog, use cases, HTTP
// handlers and middleware together and drive them over HTTP.
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/cruise-quote/cruise-quote-service/internal/adapter/http"
	"github.com/cruise-quote/cruise-quote-service/internal/adapter/http/middleware"
	"github.com/cruise-quote/cruise-quote-service/internal/adapter/http/response"
	"github.com/cruise-quote/cruise-quote-service/internal/catalog"
	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/usecase"
)

// TestServer wraps an Echo instance wired the same way cmd/server wires it.
type TestServer struct {
	Echo      *echo.Echo
	Catalog   *catalog.Catalog
	Rates     domain.Rates
	Estimator usecase.Estimator
	Comparer  usecase.OfferingComparer
}

// NewTestServer creates a test server over the given catalog and rates.
// Logs go to logOut; pass nil to discard them.
func NewTestServer(cat *catalog.Catalog, rates domain.Rates, logOut io.Writer) *TestServer {
	if logOut == nil {
		logOut = io.Discard
	}

	estimator := usecase.NewEstimator(cat, &rates)
	comparer := usecase.NewOfferingComparer(cat)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, zerolog.New(logOut), middleware.DefaultRecoveryConfig())
	httpAdapter.RegisterRoutes(e,
		httpAdapter.NewQuoteHandler(estimator, cat, rates),
		httpAdapter.NewOfferingHandler(comparer),
	)

	return &TestServer{
		Echo:      e,
		Catalog:   cat,
		Rates:     rates,
		Estimator: estimator,
		Comparer:  comparer,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
// A string Body is sent verbatim; anything else is JSON-encoded.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch body := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(body))
	default:
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// QuoteRequest posts body to the single-cabin estimate endpoint.
func (ts *TestServer) QuoteRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/quotes",
		Body:   body,
	})
}

// CabinsRequest posts body to the all-cabins estimate endpoint.
func (ts *TestServer) CabinsRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/quotes/cabins",
		Body:   body,
	})
}

// CatalogRequest fetches the reference tables.
func (ts *TestServer) CatalogRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/catalog",
	})
}

// SearchRequest searches offerings with the given query.
func (ts *TestServer) SearchRequest(query url.Values) Response {
	path := "/api/v1/offerings"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// CompareRequest compares the given offering ids.
func (ts *TestServer) CompareRequest(ids ...string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/offerings/compare",
		Body:   httpAdapter.CompareRequest{IDs: ids},
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// ParseError parses the response body as an error envelope.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var errResp response.ErrorDetail
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return &errResp, nil
}

// QuoteBody builds an HTTP quote request from a domain request.
func QuoteBody(req domain.QuoteRequest) httpAdapter.QuoteRequest {
	return httpAdapter.QuoteRequest{
		DeparturePort:    req.DeparturePortKey,
		Destination:      req.DestinationKey,
		TripLengthNights: req.TripLengthNights,
		AdultCount:       req.AdultCount,
		ChildCount:       req.ChildCount,
		CabinType:        req.CabinTypeKey,
		TravelMonth:      req.TravelMonthKey,
		IsLocalResident:  req.IsLocalResident,
	}
}
