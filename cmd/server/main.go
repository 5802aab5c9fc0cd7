// Package main is the entry point for the cruise quote service.
//
//	@title						Cruise Quote API
//	@version					1.0.0
//	@description				Estimates cruise prices for the agency's home ports and compares featured sailings side by side.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/cruise-quote/cruise-quote-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/cruise-quote/cruise-quote-service/docs"

	// Application layers
	quotehttp "github.com/cruise-quote/cruise-quote-service/internal/adapter/http"
	"github.com/cruise-quote/cruise-quote-service/internal/adapter/http/middleware"
	"github.com/cruise-quote/cruise-quote-service/internal/catalog"
	"github.com/cruise-quote/cruise-quote-service/internal/config"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/logger"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/retry"
	"github.com/cruise-quote/cruise-quote-service/internal/usecase"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLog := setupLogger(cfg)

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	e, err := newServer(context.Background(), cfg, appLog)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to initialize server")
	}

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, cfg, appLog)
}

// setupLogger builds the service logger and installs it as the process
// logger.
func setupLogger(cfg *config.Config) *logger.Logger {
	l := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: logger.DefaultConfig().ServiceName,
	})
	l.Install()
	return l
}

// newServer loads the catalog, wires the use cases and returns a configured
// Echo instance with middleware and routes registered.
func newServer(ctx context.Context, cfg *config.Config, appLog *logger.Logger) (*echo.Echo, error) {
	catalogLog := appLog.WithComponent("catalog")

	readCfg := retry.FileReadConfig.
		WithMaxAttempts(cfg.Catalog.LoadAttempts).
		WithInitialDelay(cfg.Catalog.LoadBackoff).
		WithOnRetry(func(attempt int, err error, wait time.Duration) {
			catalogLog.Warn().
				Err(err).
				Int("attempt", attempt).
				Dur("wait", wait).
				Msg("Catalog read failed, retrying")
		})

	cat, err := catalog.LoadWithRetry(ctx, cfg.Catalog.Path, catalog.Options{Timezone: cfg.Catalog.Timezone}, readCfg)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	months := cat.Months()
	catalogLog.Info().
		Str("source", catalogSource(cfg.Catalog.Path)).
		Int("ports", len(cat.Ports())).
		Int("destinations", len(cat.Destinations())).
		Int("offerings", len(cat.Offerings())).
		Str("first_month", months[0].Key).
		Str("last_month", months[len(months)-1].Key).
		Msg("Catalog loaded")

	rates := cfg.Pricing.Rates()
	estimator := usecase.NewEstimator(cat, &rates)
	comparer := usecase.NewOfferingComparer(cat)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	httpLog := appLog.WithComponent("http").Logger
	middleware.Setup(e, httpLog, middleware.RecoveryConfig{
		DisablePrintStack: cfg.IsProduction(),
	})

	quotehttp.RegisterRoutes(e,
		quotehttp.NewQuoteHandler(estimator, cat, rates),
		quotehttp.NewOfferingHandler(comparer),
	)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, cfg *config.Config, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	appLog.Info().Str("signal", sig.String()).Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}

	appLog.Info().Msg("Server stopped")
}
