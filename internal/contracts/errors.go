package contracts

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a caller error detected before any provider call
var ErrInvalidInput = errors.New("invalid input")

// Resource names used in feature and sub-fetch failures
const (
	ResourceQuotes   = "quotes"
	ResourceMovers   = "movers"
	ResourceScreener = "screener"
	ResourceInsider  = "insider"
	ResourceFilings  = "filings"
	ResourceNews     = "news"
)

// FeatureError reports that a required sub-resource failed, so the feature has no result
type FeatureError struct {
	Feature  string
	Resource string
	Cause    error
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("%s: required %s unavailable: %v", e.Feature, e.Resource, e.Cause)
}

func (e *FeatureError) Unwrap() error {
	return e.Cause
}

// SubFetchFailure records an optional fetch that degraded to "no signal"
type SubFetchFailure struct {
	Symbol   string `json:"symbol"`
	Resource string `json:"resource"`
	Error    string `json:"error"`
}

// InvalidInput wraps ErrInvalidInput with detail
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
