package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruise-quote/cruise-quote-service/internal/config"
	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Env: "test"},
		Catalog: config.CatalogConfig{Timezone: "America/New_York", LoadAttempts: 1},
		Pricing: config.PricingConfig{
			TaxRate:              domain.DefaultTaxRate,
			GroupDiscountRate:    domain.DefaultGroupDiscountRate,
			GroupMinPassengers:   domain.DefaultGroupMinPassengers,
			ResidentDiscountRate: domain.DefaultResidentDiscountRate,
		},
	}
}

func TestNewServer_ServesRoutes(t *testing.T) {
	e, err := newServer(context.Background(), testConfig(), logger.Nop())
	require.NoError(t, err)

	for _, path := range []string{"/health", "/api/v1/catalog", "/api/v1/offerings", "/swagger/index.html"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestNewServer_CatalogFileErrors(t *testing.T) {
	cfg := testConfig()
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := newServer(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("ports: [\n"), 0o600))
	cfg.Catalog.Path = bad

	_, err = newServer(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestNewServer_RetriesCatalogRead(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("..", "..", "test", "testdata", "harbor_catalog.yaml"))
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "catalog.yaml")
	cfg.Catalog.LoadAttempts = 6
	cfg.Catalog.LoadBackoff = 20 * time.Millisecond

	// The file shows up after the first read has failed.
	go func() {
		time.Sleep(30 * time.Millisecond)
		_ = os.WriteFile(cfg.Catalog.Path, src, 0o600)
	}()

	var buf bytes.Buffer
	appLog := logger.NewWithOutput(logger.Config{Level: "warn", Format: "json", ServiceName: "test"}, &buf)

	e, err := newServer(context.Background(), cfg, appLog)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Contains(t, buf.String(), "Catalog read failed, retrying")
	assert.Contains(t, buf.String(), `"component":"catalog"`)
}

func TestNewServer_CancelledStartup(t *testing.T) {
	cfg := testConfig()
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "never.yaml")
	cfg.Catalog.LoadAttempts = 10
	cfg.Catalog.LoadBackoff = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := newServer(ctx, cfg, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestCatalogSource(t *testing.T) {
	assert.Equal(t, "embedded", catalogSource(""))
	assert.Equal(t, "/etc/cruise/catalog.yaml", catalogSource("/etc/cruise/catalog.yaml"))
}
