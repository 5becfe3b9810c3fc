package models

import "equipment-valuation/internal/model"

// ValuationResponse is the success body of GET /v1/valuations/:classification_id
type ValuationResponse struct {
	ClassificationID int    `json:"classification_id"`
	ModelYear        int    `json:"model_year"`
	MarketValue      int64  `json:"market_value"`
	AuctionValue     int64  `json:"auction_value"`
	Currency         string `json:"currency"`
}

func NewValuationResponse(r *model.ValuationResult) ValuationResponse {
	return ValuationResponse{
		ClassificationID: r.ClassificationID,
		ModelYear:        r.ModelYear,
		MarketValue:      r.MarketValue,
		AuctionValue:     r.AuctionValue,
		Currency:         r.Currency,
	}
}

// ClassificationResponse describes one stored classification.
// Classification echoes the source hierarchy value verbatim.
type ClassificationResponse struct {
	ClassificationID int     `json:"classification_id"`
	BookCost         float64 `json:"book_cost"`
	Years            []int   `json:"years"`
	Classification   any     `json:"classification,omitempty"`
}

func NewClassificationResponse(c model.Classification) ClassificationResponse {
	return ClassificationResponse{
		ClassificationID: c.ID,
		BookCost:         c.BookCost,
		Years:            c.Years(),
		Classification:   c.Hierarchy,
	}
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status          string `json:"status"`
	Classifications int    `json:"classifications"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
