package daterange

import "errors"

var (
	// ErrInvalidGranularity is returned for any granularity outside day, week and month.
	ErrInvalidGranularity = errors.New("invalid granularity")
	// ErrNullRange is returned when a range is required but none was given.
	ErrNullRange = errors.New("range is required")
	// ErrInvertedRange is returned when a range ends before it starts.
	ErrInvertedRange = errors.New("range end is before start")
	// ErrStepOutOfRange is returned when a step would leave the representable calendar.
	ErrStepOutOfRange = errors.New("step is out of range")
)
