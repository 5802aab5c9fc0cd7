package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	quotehttp "github.com/cruise-quote/cruise-quote-service/internal/adapter/http"
	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/money"
)

func (a *app) newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List ports, destinations, cabins, travel months and rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if a.jsonOutput {
				return writeJSON(out, quotehttp.ToCatalogResponseDTO(a.catalog, a.rates))
			}
			return a.renderCatalog(out)
		},
	}
}

func (a *app) renderCatalog(w io.Writer) error {
	st := newStyles(w)

	var ports [][]string
	for _, p := range a.catalog.Ports() {
		ports = append(ports, []string{p.Key, p.DisplayName, p.DistanceDescription, percent(p.DiscountRate)})
	}
	fmt.Fprintln(w, st.title.Render("Departure ports"))
	fmt.Fprintln(w, st.table([]string{"Key", "Port", "Distance", "Discount"}, ports, -1).Render())

	var destinations [][]string
	for _, d := range a.catalog.Destinations() {
		destinations = append(destinations, []string{
			d.Key,
			d.DisplayName,
			money.Format(d.BasePricePerNightPerPerson),
			fmt.Sprintf("%.2fx", d.PeakSeasonMultiplier),
			fmt.Sprintf("%.2fx", d.OffPeakSeasonMultiplier),
			d.TypicalDuration,
		})
	}
	fmt.Fprintln(w, st.title.Render("Destinations"))
	fmt.Fprintln(w, st.table([]string{"Key", "Destination", "Per night", "Peak", "Off-peak", "Typical"}, destinations, -1).Render())

	var cabins [][]string
	for _, c := range a.catalog.Cabins() {
		cabins = append(cabins, []string{c.Key, c.DisplayName, fmt.Sprintf("%.2fx", c.PriceMultiplier)})
	}
	fmt.Fprintln(w, st.title.Render("Cabin types"))
	fmt.Fprintln(w, st.table([]string{"Key", "Cabin", "Multiplier"}, cabins, -1).Render())

	var months [][]string
	for _, m := range a.catalog.Months() {
		season := "off-peak"
		if m.IsPeakSeason {
			season = "peak"
		}
		months = append(months, []string{m.Key, m.DisplayLabel, season})
	}
	fmt.Fprintln(w, st.title.Render("Travel months"))
	fmt.Fprintln(w, st.table([]string{"Key", "Month", "Season"}, months, -1).Render())

	fmt.Fprintln(w, st.muted.Render(fmt.Sprintf(
		"Taxes & fees %s. Group discount %s from %d guests. Resident discount %s. Quote form offers %d-%d nights.",
		percent(a.rates.TaxRate),
		percent(a.rates.GroupDiscountRate),
		a.rates.GroupMinPassengers,
		percent(a.rates.ResidentDiscountRate),
		domain.MinSupportedNights,
		domain.MaxSupportedNights,
	)))
	return nil
}

// percent renders a rate to one decimal place at most, e.g. "18%" or "7.5%".
func percent(rate float64) string {
	return strconv.FormatFloat(math.Round(rate*1000)/10, 'f', -1, 64) + "%"
}
