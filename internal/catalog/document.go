package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cruise-quote/cruise-quote-service/internal/domain"
)

// DefaultHorizonMonths is used when the document does not set horizon_months.
const DefaultHorizonMonths = 12

// Document is the YAML shape of a reference catalog.
type Document struct {
	HorizonMonths int                    `yaml:"horizon_months"`
	PeakMonths    []int                  `yaml:"peak_months"`
	Ports         []domain.DeparturePort `yaml:"ports"`
	Destinations  []domain.Destination   `yaml:"destinations"`
	Cabins        []domain.CabinType     `yaml:"cabins"`
	Offerings     []domain.Offering      `yaml:"offerings"`
}

// Parse decodes a catalog document. Unknown fields are rejected so typos in
// hand-edited catalogs surface at startup.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.WrapInvalidCatalog("document is empty")
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	doc.normalize()
	return &doc, nil
}

func (d *Document) normalize() {
	if d.HorizonMonths == 0 {
		d.HorizonMonths = DefaultHorizonMonths
	}
	for i := range d.Ports {
		d.Ports[i].Key = domain.NormalizeKey(d.Ports[i].Key)
	}
	for i := range d.Destinations {
		d.Destinations[i].Key = domain.NormalizeKey(d.Destinations[i].Key)
	}
	for i := range d.Cabins {
		d.Cabins[i].Key = domain.NormalizeKey(d.Cabins[i].Key)
	}
}

// Validate checks the document against the pricing table invariants.
// It reports the first violation found.
func (d *Document) Validate() error {
	if d.HorizonMonths < 1 {
		return domain.WrapInvalidCatalog("horizon_months must be at least 1, got %d", d.HorizonMonths)
	}

	if err := validatePorts(d.Ports); err != nil {
		return err
	}
	if err := validateDestinations(d.Destinations); err != nil {
		return err
	}
	if err := validateCabins(d.Cabins); err != nil {
		return err
	}
	if err := validatePeakMonths(d.PeakMonths); err != nil {
		return err
	}
	return validateOfferings(d.Offerings)
}

func validatePorts(ports []domain.DeparturePort) error {
	if len(ports) == 0 {
		return domain.WrapInvalidCatalog("no departure ports defined")
	}

	seen := make(map[string]struct{}, len(ports))
	for _, p := range ports {
		if err := checkKey("port", p.Key, seen); err != nil {
			return err
		}
		if !finite(p.DiscountRate) || p.DiscountRate < 0 || p.DiscountRate > 1 {
			return domain.WrapInvalidCatalog("port %q: discount_rate %v outside [0, 1]", p.Key, p.DiscountRate)
		}
	}
	return nil
}

func validateDestinations(destinations []domain.Destination) error {
	if len(destinations) == 0 {
		return domain.WrapInvalidCatalog("no destinations defined")
	}

	seen := make(map[string]struct{}, len(destinations))
	for _, d := range destinations {
		if err := checkKey("destination", d.Key, seen); err != nil {
			return err
		}
		if !finite(d.BasePricePerNightPerPerson) || d.BasePricePerNightPerPerson < 0 {
			return domain.WrapInvalidCatalog("destination %q: base price must be a non-negative number", d.Key)
		}
		if !finite(d.PeakSeasonMultiplier) || !finite(d.OffPeakSeasonMultiplier) ||
			d.PeakSeasonMultiplier <= 0 || d.OffPeakSeasonMultiplier <= 0 {
			return domain.WrapInvalidCatalog("destination %q: season multipliers must be positive", d.Key)
		}
	}
	return nil
}

func validateCabins(cabins []domain.CabinType) error {
	if len(cabins) == 0 {
		return domain.WrapInvalidCatalog("no cabin types defined")
	}

	seen := make(map[string]struct{}, len(cabins))
	baseline := false
	for _, c := range cabins {
		if err := checkKey("cabin", c.Key, seen); err != nil {
			return err
		}
		if !finite(c.PriceMultiplier) || c.PriceMultiplier < 1 {
			return domain.WrapInvalidCatalog("cabin %q: price_multiplier %v must be at least 1", c.Key, c.PriceMultiplier)
		}
		if c.Key == domain.BaselineCabinKey {
			if c.PriceMultiplier != 1 {
				return domain.WrapInvalidCatalog("cabin %q must have price_multiplier 1", c.Key)
			}
			baseline = true
		}
	}
	if !baseline {
		return domain.WrapInvalidCatalog("baseline cabin %q is missing", domain.BaselineCabinKey)
	}
	return nil
}

func validatePeakMonths(months []int) error {
	seen := make(map[int]struct{}, len(months))
	for _, m := range months {
		if m < 1 || m > 12 {
			return domain.WrapInvalidCatalog("peak month %d outside 1-12", m)
		}
		if _, dup := seen[m]; dup {
			return domain.WrapInvalidCatalog("peak month %d listed twice", m)
		}
		seen[m] = struct{}{}
	}
	return nil
}

func validateOfferings(offerings []domain.Offering) error {
	seen := make(map[string]struct{}, len(offerings))
	for _, o := range offerings {
		if err := checkKey("offering", o.ID, seen); err != nil {
			return err
		}
		if !finite(o.Price) || o.Price < 0 {
			return domain.WrapInvalidCatalog("offering %q: price must be a non-negative number", o.ID)
		}
		if !finite(o.Rating) {
			return domain.WrapInvalidCatalog("offering %q: rating must be a number", o.ID)
		}
		if o.DurationNights < 1 {
			return domain.WrapInvalidCatalog("offering %q: duration_nights must be positive", o.ID)
		}
		if _, err := time.Parse(time.DateOnly, o.DepartureDate); o.DepartureDate != "" && err != nil {
			return domain.WrapInvalidCatalog("offering %q: departure_date %q is not YYYY-MM-DD", o.ID, o.DepartureDate)
		}
	}
	return nil
}

// finite rejects NaN and the infinities, which pass or fail range checks
// silently and break currency rounding downstream.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkKey(kind, key string, seen map[string]struct{}) error {
	if key == "" {
		return domain.WrapInvalidCatalog("%s with empty key", kind)
	}
	if _, dup := seen[key]; dup {
		return domain.WrapInvalidCatalog("duplicate %s key %q", kind, key)
	}
	seen[key] = struct{}{}
	return nil
}
