package model

import "sort"

// CurrencyUSD is the only currency label valuations are reported in.
const CurrencyUSD = "USD"

// RatioSet holds the multipliers applied to book cost for one model year.
type RatioSet struct {
	Market  float64
	Auction float64
}

// Classification is one equipment category from the book data.
// Values are built once at load time and never mutated afterwards.
type Classification struct {
	ID       int
	BookCost float64
	// RatiosByYear is keyed by model year. A year may be absent.
	RatiosByYear map[int]RatioSet
	// Hierarchy is the optional category/make/model value from the source,
	// usually an object. It is carried through untouched, whatever its JSON
	// type, and never used in valuation.
	Hierarchy any
}

// Ratio returns the ratio set for year, if the schedule has one.
func (c Classification) Ratio(year int) (RatioSet, bool) {
	r, ok := c.RatiosByYear[year]
	return r, ok
}

// Years returns the scheduled model years in ascending order.
func (c Classification) Years() []int {
	years := make([]int, 0, len(c.RatiosByYear))
	for y := range c.RatiosByYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ValuationResult is the computed estimate for one classification and model year.
type ValuationResult struct {
	ClassificationID int
	ModelYear        int
	MarketValue      int64
	AuctionValue     int64
	Currency         string
}
