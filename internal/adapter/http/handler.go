package http

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cruise-quote/cruise-quote-service/internal/adapter/http/response"
	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/usecase"
)

// QuoteHandler handles HTTP requests for quote and catalog endpoints.
type QuoteHandler struct {
	estimator usecase.Estimator
	catalog   domain.ReferenceCatalog
	rates     domain.Rates
}

// NewQuoteHandler creates a new QuoteHandler. The catalog and rates are only
// listed by GetCatalog; pricing goes through the estimator.
func NewQuoteHandler(estimator usecase.Estimator, catalog domain.ReferenceCatalog, rates domain.Rates) *QuoteHandler {
	return &QuoteHandler{
		estimator: estimator,
		catalog:   catalog,
		rates:     rates,
	}
}

// EstimateQuote handles POST /api/v1/quotes
//
// @Summary Estimate a cruise price
// @Description Prices a trip and returns the itemized breakdown
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Trip parameters"
// @Success 200 {object} QuoteResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error or unknown key"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/quotes [post]
func (h *QuoteHandler) EstimateQuote(c echo.Context) error {
	var req QuoteRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleError(c, err)
	}

	quote := ToDomainQuoteRequest(&req)
	breakdown, err := h.estimator.Estimate(quote)
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, ToQuoteResponseDTO(quote, breakdown))
}

// EstimateAllCabins handles POST /api/v1/quotes/cabins
//
// @Summary Estimate a cruise price for every cabin type
// @Description Prices the same trip once per cabin type, cheapest cabin first. cabin_type is ignored.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Trip parameters"
// @Success 200 {object} CabinQuotesResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error or unknown key"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /api/v1/quotes/cabins [post]
func (h *QuoteHandler) EstimateAllCabins(c echo.Context) error {
	var req QuoteRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.ValidateAllCabins(); err != nil {
		return handleError(c, err)
	}

	quote := ToDomainQuoteRequest(&req)
	quotes, err := h.estimator.EstimateAllCabins(quote)
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, ToCabinQuotesResponseDTO(quote, quotes))
}

// GetCatalog handles GET /api/v1/catalog
//
// @Summary List reference data
// @Description Departure ports, destinations, cabin types, the travel-month horizon and the pricing rates
// @Tags quotes
// @Produce json
// @Success 200 {object} CatalogResponseDTO
// @Router /api/v1/catalog [get]
func (h *QuoteHandler) GetCatalog(c echo.Context) error {
	return response.OK(c, ToCatalogResponseDTO(h.catalog, h.rates))
}

// Health handles GET /health
func (h *QuoteHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// OfferingHandler handles HTTP requests for the offering comparison tool.
type OfferingHandler struct {
	comparer usecase.OfferingComparer
}

// NewOfferingHandler creates a new OfferingHandler with the given comparer.
func NewOfferingHandler(comparer usecase.OfferingComparer) *OfferingHandler {
	return &OfferingHandler{
		comparer: comparer,
	}
}

// SearchOfferings handles GET /api/v1/offerings
//
// @Summary Search featured offerings
// @Description Filters and sorts the featured cruise offerings
// @Tags offerings
// @Produce json
// @Param destination query string false "Destination contains (case-insensitive)"
// @Param duration query int false "Exact number of nights"
// @Param max_price query number false "Maximum price"
// @Param recommended query bool false "Recommended offerings only"
// @Param sort_by query string false "featured, price, rating, duration or departure"
// @Success 200 {object} OfferingListResponseDTO
// @Failure 400 {object} response.ErrorDetail "Invalid query"
// @Router /api/v1/offerings [get]
func (h *OfferingHandler) SearchOfferings(c echo.Context) error {
	req, err := bindOfferingSearch(c)
	if err != nil {
		var bindErr *echo.BindingError
		if errors.As(err, &bindErr) {
			return response.InvalidQuery(c, map[string]string{bindErr.Field: "invalid value"})
		}
		return response.InvalidQuery(c, nil)
	}

	if err := req.Validate(); err != nil {
		return handleError(c, err)
	}

	opts := ToSearchOptions(req)
	offerings := h.comparer.Search(opts)

	return response.OK(c, ToOfferingListResponseDTO(offerings, opts.SortBy))
}

// CompareOfferings handles POST /api/v1/offerings/compare
//
// @Summary Compare offerings side by side
// @Description Builds a row-aligned comparison of up to three offerings. Duplicate ids are collapsed.
// @Tags offerings
// @Accept json
// @Produce json
// @Param request body CompareRequest true "Offering ids"
// @Success 200 {object} ComparisonResponseDTO
// @Failure 400 {object} response.ErrorDetail "No ids or too many ids"
// @Failure 404 {object} response.ErrorDetail "Unknown offering id"
// @Router /api/v1/offerings/compare [post]
func (h *OfferingHandler) CompareOfferings(c echo.Context) error {
	var req CompareRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleError(c, err)
	}

	comparison, err := h.comparer.Compare(req.IDs)
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, ToComparisonResponseDTO(comparison))
}

// bindOfferingSearch reads the search query. Optional numeric filters stay
// nil when their parameter is absent.
func bindOfferingSearch(c echo.Context) (*OfferingSearchRequest, error) {
	var (
		req      OfferingSearchRequest
		duration int
		maxPrice float64
	)

	err := echo.QueryParamsBinder(c).
		String("destination", &req.Destination).
		Int("duration", &duration).
		Float64("max_price", &maxPrice).
		Bool("recommended", &req.RecommendedOnly).
		String("sort_by", &req.SortBy).
		BindError()
	if err != nil {
		return nil, err
	}

	if c.QueryParam("duration") != "" {
		req.DurationNights = &duration
	}
	if c.QueryParam("max_price") != "" {
		req.MaxPrice = &maxPrice
	}
	return &req, nil
}

// handleError maps validation and domain errors to HTTP responses.
func handleError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	var keyErr *domain.ReferenceKeyError
	if errors.As(err, &keyErr) {
		return response.ValidationError(c, map[string]string{
			keyErr.Field: fmt.Sprintf("unknown %s %q", keyErr.Field, keyErr.Key),
		})
	}

	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	}

	switch {
	case errors.Is(err, domain.ErrTooManyOfferings), errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationError(c, map[string]string{"ids": err.Error()})
	case errors.Is(err, domain.ErrOfferingNotFound):
		return response.NotFound(c, err.Error())
	}

	zerolog.Ctx(c.Request().Context()).Error().Err(err).Str("route", c.Path()).Msg("Unhandled error")
	return response.InternalServerError(c)
}
