package models

// ValuationURI binds the path of GET /v1/valuations/:classification_id
type ValuationURI struct {
	ClassificationID int `uri:"classification_id"`
}

// ValuationQuery binds the query string of GET /v1/valuations/:classification_id
type ValuationQuery struct {
	Year *int `form:"year" binding:"required"` // model year, 2006-2020 inclusive
}

// ClassificationURI binds the path of GET /v1/classifications/:classification_id
type ClassificationURI struct {
	ClassificationID int `uri:"classification_id"`
}
