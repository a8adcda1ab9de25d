package rates

import "errors"

var (
	ErrNoFallbackBase = errors.New("a table for USD is required")
	ErrStatus         = errors.New("exchange rate provider returned an unexpected status")
	ErrEmptyTable     = errors.New("exchange rate provider returned no rates")
)
