package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all cruise quote API routes.
// The middleware, if any, applies to the versioned API group only.
func RegisterRoutes(e *echo.Echo, quotes *QuoteHandler, offerings *OfferingHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix)
	e.GET("/health", quotes.Health)

	api := e.Group("/api/v1", middleware...)
	api.GET("/catalog", quotes.GetCatalog)

	q := api.Group("/quotes")
	q.POST("", quotes.EstimateQuote)
	q.POST("/cabins", quotes.EstimateAllCabins)

	o := api.Group("/offerings")
	o.GET("", offerings.SearchOfferings)
	o.POST("/compare", offerings.CompareOfferings)
}
