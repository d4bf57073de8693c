package schedule

import "errors"

// Sentinel validation errors. Callers match with errors.Is; the wrapped
// message carries the offending values.
var (
	ErrInvalidRange  = errors.New("invalid date range")
	ErrInvalidPages  = errors.New("invalid page count")
	ErrOutOfRange    = errors.New("date outside plan range")
	ErrInvalidStatus = errors.New("invalid day status")
)
