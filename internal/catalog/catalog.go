// Package catalog loads the static reference tables (ports, destinations,
// cabins, peak months, featured offerings) and serves read-only lookups.
//
// A Catalog is built once at startup and never mutated, so it is safe for
// concurrent use without locking.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/cruise-quote/cruise-quote-service/internal/domain"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/retry"
	"github.com/cruise-quote/cruise-quote-service/internal/infrastructure/timeutil"
)

//go:embed catalog.yaml
var embeddedDocument []byte

// Options controls how the travel-month horizon is derived.
type Options struct {
	// Clock supplies the current time. Defaults to the system clock.
	Clock timeutil.Clock

	// Timezone is where "the current month" is evaluated.
	// Defaults to timeutil.AgencyTimezone.
	Timezone string
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = timeutil.NewRealClock()
	}
	if o.Timezone == "" {
		o.Timezone = timeutil.AgencyTimezone
	}
	return o
}

// Catalog is an immutable, indexed view of a validated Document.
type Catalog struct {
	ports        []domain.DeparturePort
	destinations []domain.Destination
	cabins       []domain.CabinType
	months       []domain.TravelMonth
	offerings    []domain.Offering
	peakMonths   []time.Month

	portIndex        map[string]int
	destinationIndex map[string]int
	cabinIndex       map[string]int
	monthIndex       map[string]int
	offeringIndex    map[string]int
}

// Default builds the catalog from the embedded document.
func Default(opts Options) (*Catalog, error) {
	return FromBytes(embeddedDocument, opts)
}

// Load builds the catalog from the file at path, or from the embedded
// document when path is empty.
func Load(path string, opts Options) (*Catalog, error) {
	return LoadWithRetry(context.Background(), path, opts, retry.Config{MaxAttempts: 1})
}

// LoadWithRetry is Load with the file read retried per cfg, for catalogs on
// volumes that may mount after the process starts. Only the read is retried;
// a document that fails to parse or validate is returned at once.
func LoadWithRetry(ctx context.Context, path string, opts Options, cfg retry.Config) (*Catalog, error) {
	if path == "" {
		return Default(opts)
	}

	data, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		return os.ReadFile(path)
	}, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrInvalidCatalog, path, err)
	}
	return FromBytes(data, opts)
}

// FromBytes parses, validates and indexes a YAML catalog document.
func FromBytes(data []byte, opts Options) (*Catalog, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return New(doc, opts)
}

// New validates doc and builds the catalog, deriving the travel months from
// the clock's current month in the configured time zone.
func New(doc *Document, opts Options) (*Catalog, error) {
	if doc == nil {
		return nil, domain.WrapInvalidCatalog("document is nil")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	opts = opts.withDefaults()
	now, err := timeutil.NowIn(opts.Clock, opts.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	c := &Catalog{
		ports:        slices.Clone(doc.Ports),
		destinations: slices.Clone(doc.Destinations),
		cabins:       slices.Clone(doc.Cabins),
		offerings:    make([]domain.Offering, len(doc.Offerings)),
	}
	for i, o := range doc.Offerings {
		c.offerings[i] = cloneOffering(o)
	}
	for _, m := range doc.PeakMonths {
		c.peakMonths = append(c.peakMonths, time.Month(m))
	}
	c.months = c.buildMonths(now, doc.HorizonMonths)

	c.portIndex = indexBy(c.ports, func(p domain.DeparturePort) string { return p.Key })
	c.destinationIndex = indexBy(c.destinations, func(d domain.Destination) string { return d.Key })
	c.cabinIndex = indexBy(c.cabins, func(ct domain.CabinType) string { return ct.Key })
	c.monthIndex = indexBy(c.months, func(m domain.TravelMonth) string { return m.Key })
	c.offeringIndex = indexBy(c.offerings, func(o domain.Offering) string { return o.ID })

	return c, nil
}

func (c *Catalog) buildMonths(now time.Time, horizon int) []domain.TravelMonth {
	starts := timeutil.MonthsFrom(now, horizon)
	months := make([]domain.TravelMonth, len(starts))
	for i, start := range starts {
		months[i] = domain.TravelMonth{
			Key:          timeutil.MonthKey(start),
			DisplayLabel: timeutil.MonthLabel(start),
			IsPeakSeason: c.IsPeakMonth(start.Month()),
		}
	}
	return months
}

// IsPeakMonth reports whether the calendar month is priced as peak season.
func (c *Catalog) IsPeakMonth(m time.Month) bool {
	return slices.Contains(c.peakMonths, m)
}

// PeakMonths returns the peak calendar months in catalog order.
func (c *Catalog) PeakMonths() []time.Month {
	return slices.Clone(c.peakMonths)
}

// Port returns the departure port with the given key.
func (c *Catalog) Port(key string) (domain.DeparturePort, bool) {
	return lookup(c.ports, c.portIndex, key)
}

// Destination returns the destination with the given key.
func (c *Catalog) Destination(key string) (domain.Destination, bool) {
	return lookup(c.destinations, c.destinationIndex, key)
}

// Cabin returns the cabin type with the given key.
func (c *Catalog) Cabin(key string) (domain.CabinType, bool) {
	return lookup(c.cabins, c.cabinIndex, key)
}

// Month returns the travel month with the given key.
func (c *Catalog) Month(key string) (domain.TravelMonth, bool) {
	return lookup(c.months, c.monthIndex, key)
}

// Ports returns all departure ports in catalog order.
func (c *Catalog) Ports() []domain.DeparturePort {
	return slices.Clone(c.ports)
}

// Destinations returns all destinations in catalog order.
func (c *Catalog) Destinations() []domain.Destination {
	return slices.Clone(c.destinations)
}

// Cabins returns all cabin types in catalog order.
func (c *Catalog) Cabins() []domain.CabinType {
	return slices.Clone(c.cabins)
}

// Months returns the travel-month horizon in chronological order.
func (c *Catalog) Months() []domain.TravelMonth {
	return slices.Clone(c.months)
}

// Offerings returns deep copies of all offerings in catalog order.
func (c *Catalog) Offerings() []domain.Offering {
	out := make([]domain.Offering, len(c.offerings))
	for i, o := range c.offerings {
		out[i] = cloneOffering(o)
	}
	return out
}

// Offering returns the offering with the given id.
func (c *Catalog) Offering(id string) (domain.Offering, bool) {
	o, ok := lookup(c.offerings, c.offeringIndex, id)
	if !ok {
		return domain.Offering{}, false
	}
	return cloneOffering(o), true
}

func lookup[T any](items []T, index map[string]int, key string) (T, bool) {
	i, ok := index[key]
	if !ok {
		var zero T
		return zero, false
	}
	return items[i], true
}

func indexBy[T any](items []T, key func(T) string) map[string]int {
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[key(item)] = i
	}
	return index
}

func cloneOffering(o domain.Offering) domain.Offering {
	o.Features = slices.Clone(o.Features)
	o.Pros = slices.Clone(o.Pros)
	o.Cons = slices.Clone(o.Cons)
	return o
}

var (
	_ domain.ReferenceCatalog = (*Catalog)(nil)
	_ domain.OfferingSource   = (*Catalog)(nil)
)
