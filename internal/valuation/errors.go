package valuation

import (
	"errors"
	"fmt"
)

// Kind identifies which expected valuation failure occurred.
// Keep these values stable; the HTTP layer maps them to status codes.
type Kind string

const (
	// KindYearOutOfRange: model year outside MinModelYear..MaxModelYear.
	KindYearOutOfRange Kind = "YEAR_OUT_OF_RANGE"
	// KindUnknownClassification: no classification with the requested id.
	KindUnknownClassification Kind = "UNKNOWN_CLASSIFICATION"
	// KindMissingRatio: the classification has no ratios for the model year.
	KindMissingRatio Kind = "MISSING_RATIO"
)

// Error is returned by Engine.Compute for every user-facing failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is match any *Error of the same kind, so callers can compare
// against the sentinels below without caring about the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrYearOutOfRange        = &Error{Kind: KindYearOutOfRange, Message: "model year out of range"}
	ErrUnknownClassification = &Error{Kind: KindUnknownClassification, Message: "unknown classification"}
	ErrMissingRatio          = &Error{Kind: KindMissingRatio, Message: "missing ratio"}
)

// KindOf returns the kind of a valuation error, or "" if err is not one.
func KindOf(err error) Kind {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}

func yearOutOfRange() *Error {
	return &Error{
		Kind:    KindYearOutOfRange,
		Message: fmt.Sprintf("Model Year must be between %d and %d (inclusive).", MinModelYear, MaxModelYear),
	}
}

func unknownClassification(classificationID int) *Error {
	return &Error{
		Kind:    KindUnknownClassification,
		Message: fmt.Sprintf("Unknown classification_id=%d.", classificationID),
	}
}

func missingRatio(classificationID, modelYear int) *Error {
	return &Error{
		Kind: KindMissingRatio,
		Message: fmt.Sprintf("No ratios found for classification_id=%d and model_year=%d.",
			classificationID, modelYear),
	}
}
