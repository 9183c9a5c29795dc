package dto

import (
	"errors"
	"fmt"
)

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// InvalidTickerError is returned when a requested ticker is not in the
// known NSE listing set. It is the only pipeline error surfaced to callers.
type InvalidTickerError struct {
	Ticker string
}

func (e *InvalidTickerError) Error() string {
	return fmt.Sprintf("invalid stock ticker: %s", e.Ticker)
}

// AsInvalidTicker unwraps err into an InvalidTickerError if possible.
func AsInvalidTicker(err error) (*InvalidTickerError, bool) {
	var ite *InvalidTickerError
	if errors.As(err, &ite) {
		return ite, true
	}
	return nil, false
}
