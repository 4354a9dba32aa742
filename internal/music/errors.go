package music

import "errors"

var (
	// ErrUndefinedInterval is returned when an interval is requested against a rest
	ErrUndefinedInterval = errors.New("interval undefined against a rest")

	// ErrInvalidPitch is returned when a note name cannot be parsed
	ErrInvalidPitch = errors.New("invalid pitch")

	// ErrUnknownInterval is returned for interval names outside the supported table
	ErrUnknownInterval = errors.New("unknown interval")
)
