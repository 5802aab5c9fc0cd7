package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	quotehttp "github.com/cruise-quote/cruise-quote-service/internal/adapter/http"
	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/money"
)

func (a *app) newSearchCmd() *cobra.Command {
	var (
		req      quotehttp.OfferingSearchRequest
		duration int
		maxPrice float64
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter and sort the featured sailings",
		Example: `  cruisequote search --destination caribbean --sort price
  cruisequote search --duration 7 --max-price 1300 --recommended`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("duration") {
				req.DurationNights = &duration
			}
			if cmd.Flags().Changed("max-price") {
				req.MaxPrice = &maxPrice
			}
			if err := req.Validate(); err != nil {
				return err
			}

			opts := quotehttp.ToSearchOptions(&req)
			offerings := a.comparer.Search(opts)

			out := cmd.OutOrStdout()
			if a.jsonOutput {
				return writeJSON(out, quotehttp.ToOfferingListResponseDTO(offerings, opts.SortBy))
			}
			return renderOfferings(out, offerings, opts.SortBy)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&req.Destination, "destination", "d", "", "Destination contains (case-insensitive)")
	flags.IntVar(&duration, "duration", 0, "Exact number of nights")
	flags.Float64Var(&maxPrice, "max-price", 0, "Maximum price")
	flags.BoolVar(&req.RecommendedOnly, "recommended", false, "Recommended sailings only")
	flags.StringVarP(&req.SortBy, "sort", "s", string(domain.SortByFeatured), "featured, price, rating, duration or departure")

	return cmd
}

func (a *app) newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "compare ID...",
		Short:   "Compare up to three featured sailings side by side",
		Example: `  cruisequote compare 1 3 5`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comparison, err := a.comparer.Compare(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput {
				return writeJSON(out, quotehttp.ToComparisonResponseDTO(comparison))
			}
			return renderComparison(out, comparison)
		},
	}
}

func renderOfferings(w io.Writer, offerings []domain.Offering, sortBy domain.SortOption) error {
	st := newStyles(w)

	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("%s (sorted by %s)", plural(len(offerings), "sailing"), sortBy)))
	if len(offerings) == 0 {
		fmt.Fprintln(w, st.muted.Render("No sailings match these filters."))
		return nil
	}

	rows := make([][]string, 0, len(offerings))
	for _, o := range offerings {
		recommended := ""
		if o.Recommended {
			recommended = "yes"
		}
		rows = append(rows, []string{
			o.ID,
			o.ShipName,
			o.CruiseLine,
			o.Destination,
			strconv.Itoa(o.DurationNights),
			o.DepartureDate,
			o.DeparturePort,
			money.Format(o.Price),
			fmt.Sprintf("%.1f", o.Rating),
			recommended,
		})
	}
	headers := []string{"ID", "Ship", "Line", "Itinerary", "Nights", "Departs", "From", "Price", "Rating", "Recommended"}
	fmt.Fprintln(w, st.table(headers, rows, -1).Render())
	return nil
}

func renderComparison(w io.Writer, c *domain.Comparison) error {
	st := newStyles(w)

	headers := make([]string, 0, len(c.Offerings)+1)
	headers = append(headers, "")
	for _, o := range c.Offerings {
		headers = append(headers, fmt.Sprintf("#%s %s", o.ID, o.ShipName))
	}

	rows := make([][]string, 0, len(c.Rows))
	for _, r := range c.Rows {
		rows = append(rows, append([]string{r.Label}, r.Values...))
	}

	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("Comparing %s", plural(len(c.Offerings), "sailing"))))
	fmt.Fprintln(w, st.table(headers, rows, -1).Render())

	if len(c.Offerings) > 1 {
		fmt.Fprintln(w, st.highlight.Render(fmt.Sprintf("Price spread %s to %s, a difference of %s. Cheapest is #%s.",
			money.Format(c.PriceSpread.Min),
			money.Format(c.PriceSpread.Max),
			money.Format(c.PriceSpread.Difference),
			c.Cheapest(),
		)))
	}
	return nil
}
