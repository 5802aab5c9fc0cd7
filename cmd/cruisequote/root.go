package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cruise-quote/cruise-quote-service/internal/catalog"
	"github.com/cruise-quote/cruise-quote-service/internal/config"
	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/logger"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/timeutil"
	"github.com/cruise-quote/cruise-quote-service/internal/usecase"
)

// app carries the global flags and the use cases built from them.
type app struct {
	catalogPath string
	timezone    string
	jsonOutput  bool
	verbose     bool

	// clock pins the travel-month horizon in tests; nil uses the system clock
	clock timeutil.Clock

	catalog   *catalog.Catalog
	rates     domain.Rates
	estimator usecase.Estimator
	comparer  usecase.OfferingComparer
}

// newRootCmd builds the command tree. Every subcommand loads the catalog in
// PersistentPreRunE, so flags and environment are read once per invocation.
func newRootCmd(clock timeutil.Clock) *cobra.Command {
	a := &app{clock: clock}

	rootCmd := &cobra.Command{
		Use:   "cruisequote",
		Short: "Estimate cruise prices and compare featured sailings",
		Long: `cruisequote prices a cruise from the agency's home ports and lists the
featured sailings side by side.

Rates and the catalog come from the same environment as the HTTP service
(CATALOG_PATH, CATALOG_TIMEZONE, PRICING_*), and can be overridden with flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "Catalog YAML file (default: CATALOG_PATH or the embedded catalog)")
	rootCmd.PersistentFlags().StringVar(&a.timezone, "timezone", "", "Time zone the travel-month horizon starts in (default: CATALOG_TIMEZONE)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Print JSON instead of tables")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(
		a.newEstimateCmd(),
		a.newCabinsCmd(),
		a.newCatalogCmd(),
		a.newSearchCmd(),
		a.newCompareCmd(),
	)

	return rootCmd
}

// setup installs the CLI logger, loads configuration and wires the use cases.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logger.NewCLI(cmd.ErrOrStderr(), a.verbose).Install()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := cfg.Catalog.Path
	if cmd.Flags().Changed("catalog") {
		path = a.catalogPath
	}
	tz := cfg.Catalog.Timezone
	if cmd.Flags().Changed("timezone") {
		tz = a.timezone
	}

	cat, err := catalog.Load(path, catalog.Options{Clock: a.clock, Timezone: tz})
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	log.Debug().
		Str("source", catalogSource(path)).
		Str("timezone", tz).
		Int("offerings", len(cat.Offerings())).
		Msg("Catalog loaded")

	a.catalog = cat
	a.rates = cfg.Pricing.Rates()
	a.estimator = usecase.NewEstimator(cat, &a.rates)
	a.comparer = usecase.NewOfferingComparer(cat)
	return nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
