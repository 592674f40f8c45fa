package pricing

import "errors"

var (
	// ErrInvalidTier is returned for a tier outside Low, Nice, Escape
	ErrInvalidTier = errors.New("invalid privilege tier")

	// ErrInvalidDuration is returned for a duration outside 2weeks, 1month, forever
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidPriceCombination is returned for a valid tier and duration that are not sold together
	ErrInvalidPriceCombination = errors.New("invalid price combination")
)
