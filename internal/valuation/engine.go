package valuation

import (
	"equipment-valuation/internal/model"

	"github.com/shopspring/decimal"
)

// Supported model years, inclusive.
const (
	MinModelYear = 2006
	MaxModelYear = 2020
)

// Store is the lookup the engine needs from the book data.
type Store interface {
	Get(classificationID int) (model.Classification, bool)
}

// Engine values classifications read from a Store.
type Engine struct {
	store Store
}

// New returns an engine over store.
func New(store Store) *Engine { return &Engine{store: store} }

// Compute values one classification for one model year.
// Failures are always *Error with one of the Kind values.
func (e *Engine) Compute(classificationID, modelYear int) (*model.ValuationResult, error) {
	if modelYear < MinModelYear || modelYear > MaxModelYear {
		return nil, yearOutOfRange()
	}

	c, ok := e.store.Get(classificationID)
	if !ok {
		return nil, unknownClassification(classificationID)
	}

	ratios, ok := c.Ratio(modelYear)
	if !ok {
		return nil, missingRatio(classificationID, modelYear)
	}

	return &model.ValuationResult{
		ClassificationID: classificationID,
		ModelYear:        modelYear,
		MarketValue:      ApplyRatio(c.BookCost, ratios.Market),
		AuctionValue:     ApplyRatio(c.BookCost, ratios.Auction),
		Currency:         model.CurrencyUSD,
	}, nil
}

// ApplyRatio returns cost*ratio rounded to the nearest integer, ties to even.
// The product is the plain float64 product; only an exact .5 float is a tie.
func ApplyRatio(cost, ratio float64) int64 {
	return decimal.NewFromFloat(cost * ratio).RoundBank(0).IntPart()
}
