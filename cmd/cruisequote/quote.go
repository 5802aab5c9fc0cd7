package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	quotehttp "github.com/cruise-quote/cruise-quote-service/internal/adapter/http"
	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/money"
)

// quoteFlags holds the trip parameters shared by estimate and cabins.
type quoteFlags struct {
	port        string
	destination string
	cabin       string
	month       string
	nights      int
	adults      int
	children    int
	resident    bool
}

func (f *quoteFlags) register(cmd *cobra.Command, withCabin bool) {
	flags := cmd.Flags()
	flags.StringVarP(&f.port, "port", "p", "", "Departure port key (e.g. cape-liberty)")
	flags.StringVarP(&f.destination, "destination", "d", "", "Destination key (e.g. caribbean)")
	flags.StringVarP(&f.month, "month", "m", "", "Travel month as YYYY-MM (default: the current month)")
	flags.IntVarP(&f.nights, "nights", "n", 7, "Trip length in nights")
	flags.IntVar(&f.adults, "adults", 2, "Number of adults")
	flags.IntVar(&f.children, "children", 0, "Number of children")
	flags.BoolVar(&f.resident, "resident", false, "Purchaser is a local resident")

	_ = cmd.MarkFlagRequired("port")
	_ = cmd.MarkFlagRequired("destination")

	if withCabin {
		flags.StringVarP(&f.cabin, "cabin", "c", "", "Cabin type key (e.g. balcony)")
		_ = cmd.MarkFlagRequired("cabin")
	}
}

// request builds the domain request, defaulting the month to the start of
// the catalog horizon.
func (f *quoteFlags) request(a *app) domain.QuoteRequest {
	month := f.month
	if strings.TrimSpace(month) == "" {
		if months := a.catalog.Months(); len(months) > 0 {
			month = months[0].Key
		}
	}
	return domain.QuoteRequest{
		DeparturePortKey: f.port,
		DestinationKey:   f.destination,
		TripLengthNights: f.nights,
		AdultCount:       f.adults,
		ChildCount:       f.children,
		CabinTypeKey:     f.cabin,
		TravelMonthKey:   month,
		IsLocalResident:  f.resident,
	}
}

func (a *app) newEstimateCmd() *cobra.Command {
	var flags quoteFlags

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the price of a cruise",
		Example: `  cruisequote estimate -p cape-liberty -d caribbean -c balcony -m 2027-07 --resident
  cruisequote estimate -p baltimore -d bermuda -c suite --adults 2 --children 2 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := flags.request(a)
			breakdown, err := a.estimator.Estimate(req)
			if err != nil {
				return a.explain(err)
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput {
				return writeJSON(out, quotehttp.ToQuoteResponseDTO(req, breakdown))
			}
			return a.renderEstimate(out, req, breakdown)
		},
	}
	flags.register(cmd, true)
	return cmd
}

func (a *app) newCabinsCmd() *cobra.Command {
	var flags quoteFlags

	cmd := &cobra.Command{
		Use:     "cabins",
		Short:   "Price the same trip in every cabin type",
		Example: `  cruisequote cabins -p manhattan -d bahamas -n 4 --adults 3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := flags.request(a)
			quotes, err := a.estimator.EstimateAllCabins(req)
			if err != nil {
				return a.explain(err)
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput {
				return writeJSON(out, quotehttp.ToCabinQuotesResponseDTO(req, quotes))
			}
			return a.renderCabins(out, req, quotes)
		},
	}
	flags.register(cmd, false)
	return cmd
}

// explain appends the valid keys to an unknown-key error.
func (a *app) explain(err error) error {
	var keyErr *domain.ReferenceKeyError
	if !errors.As(err, &keyErr) {
		return err
	}

	var keys []string
	switch keyErr.Field {
	case domain.FieldDeparturePort:
		for _, p := range a.catalog.Ports() {
			keys = append(keys, p.Key)
		}
	case domain.FieldDestination:
		for _, d := range a.catalog.Destinations() {
			keys = append(keys, d.Key)
		}
	case domain.FieldCabinType:
		for _, c := range a.catalog.Cabins() {
			keys = append(keys, c.Key)
		}
	case domain.FieldTravelMonth:
		months := a.catalog.Months()
		if len(months) > 0 {
			keys = append(keys, months[0].Key+" to "+months[len(months)-1].Key)
		}
	}
	if len(keys) == 0 {
		return err
	}
	return fmt.Errorf("%w (valid: %s)", err, strings.Join(keys, ", "))
}

func (a *app) renderEstimate(w io.Writer, req domain.QuoteRequest, b domain.PriceBreakdown) error {
	st := newStyles(w)

	fmt.Fprintln(w, st.title.Render(a.tripTitle(req, true)))

	rows := [][]string{
		{"Base fare", money.Format(b.BaseFare)},
		{"  Seasonal adjustment", signed(b.SeasonalAdjustment)},
		{"  Cabin upgrade", signed(b.CabinUpgradeCost)},
	}
	for _, d := range []struct {
		label  string
		amount float64
	}{
		{"Port discount", b.PortDiscountAmount},
		{"Group discount", b.GroupDiscountAmount},
		{"Resident discount", b.ResidentDiscountAmount},
	} {
		if d.amount != 0 {
			rows = append(rows, []string{d.label, "-" + money.Format(d.amount)})
		}
	}
	rows = append(rows,
		[]string{"Subtotal", money.Format(b.Subtotal)},
		[]string{"Taxes & fees", money.Format(b.TaxesAndFees)},
		[]string{"Total", money.Format(b.Total)},
		[]string{"Per person", money.Format(b.PricePerPerson)},
		[]string{"Per night", money.Format(b.PricePerNight())},
	)

	fmt.Fprintln(w, st.table(nil, rows, len(rows)-3).Render())

	if b.HasDiscounts() {
		fmt.Fprintln(w, st.highlight.Render("You save "+money.Format(b.TotalSavings)))
	}
	if !req.InSupportedRange() {
		fmt.Fprintln(w, st.muted.Render(rangeNote(req.TripLengthNights)))
	}
	return nil
}

func (a *app) renderCabins(w io.Writer, req domain.QuoteRequest, quotes []domain.CabinQuote) error {
	st := newStyles(w)

	fmt.Fprintln(w, st.title.Render(a.tripTitle(req, false)))

	rows := make([][]string, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, []string{
			q.Cabin.DisplayName,
			fmt.Sprintf("%.2fx", q.Cabin.PriceMultiplier),
			money.Format(q.Breakdown.Total),
			money.Format(q.Breakdown.PricePerPerson),
			money.Format(q.Breakdown.PricePerNight()),
		})
	}
	fmt.Fprintln(w, st.table([]string{"Cabin", "Multiplier", "Total", "Per person", "Per night"}, rows, -1).Render())

	if !req.InSupportedRange() {
		fmt.Fprintln(w, st.muted.Render(rangeNote(req.TripLengthNights)))
	}
	return nil
}

// tripTitle summarizes a resolved request using display names.
func (a *app) tripTitle(req domain.QuoteRequest, withCabin bool) string {
	req = req.Normalized()
	port, _ := a.catalog.Port(req.DeparturePortKey)
	dest, _ := a.catalog.Destination(req.DestinationKey)
	month, _ := a.catalog.Month(req.TravelMonthKey)

	parts := []string{
		fmt.Sprintf("%s from %s", dest.DisplayName, port.DisplayName),
		fmt.Sprintf("%d nights", req.TripLengthNights),
		party(req.AdultCount, req.ChildCount),
	}
	if withCabin {
		cabin, _ := a.catalog.Cabin(req.CabinTypeKey)
		parts = append(parts, cabin.DisplayName)
	}
	season := "off-peak"
	if month.IsPeakSeason {
		season = "peak"
	}
	parts = append(parts, fmt.Sprintf("%s (%s)", month.DisplayLabel, season))
	if req.IsLocalResident {
		parts = append(parts, "resident")
	}
	return strings.Join(parts, " | ")
}

func party(adults, children int) string {
	s := plural(adults, "adult")
	if children > 0 {
		s += ", " + plural(children, "child")
	}
	return s
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	if noun == "child" {
		return fmt.Sprintf("%d children", n)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// signed renders an adjustment that is already part of the base fare.
func signed(amount float64) string {
	if amount < 0 {
		return "-" + money.Format(-amount)
	}
	return "+" + money.Format(amount)
}

func rangeNote(nights int) string {
	return fmt.Sprintf("Note: %d nights is outside the %d-%d night range shown on the quote form.",
		nights, domain.MinSupportedNights, domain.MaxSupportedNights)
}
