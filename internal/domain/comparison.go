package domain

// MaxComparedOfferings is how many offerings fit side by side.
const MaxComparedOfferings = 3

// Comparison is a row-aligned side-by-side view of selected offerings.
type Comparison struct {
	// Offerings are the selected offerings in selection order
	Offerings []Offering `json:"offerings"`

	// Rows hold one value per offering, in the same order as Offerings
	Rows []ComparisonRow `json:"rows"`

	// PriceSpread summarizes the price range of the selection
	PriceSpread PriceSpread `json:"priceSpread"`
}

// ComparisonRow is one labelled attribute across all compared offerings.
type ComparisonRow struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// PriceSpread is the min/max price of a selection and their difference.
type PriceSpread struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Difference float64 `json:"difference"`
}

// NewPriceSpread computes the spread of the given offerings' prices.
// An empty selection yields a zero spread.
func NewPriceSpread(offerings []Offering) PriceSpread {
	if len(offerings) == 0 {
		return PriceSpread{}
	}

	spread := PriceSpread{Min: offerings[0].Price, Max: offerings[0].Price}
	for _, o := range offerings[1:] {
		if o.Price < spread.Min {
			spread.Min = o.Price
		}
		if o.Price > spread.Max {
			spread.Max = o.Price
		}
	}
	spread.Difference = spread.Max - spread.Min
	return spread
}

// Cheapest returns the id of the lowest-priced offering, first wins on ties.
func (c *Comparison) Cheapest() string {
	if c == nil || len(c.Offerings) == 0 {
		return ""
	}
	best := c.Offerings[0]
	for _, o := range c.Offerings[1:] {
		if o.Price < best.Price {
			best = o
		}
	}
	return best.ID
}
