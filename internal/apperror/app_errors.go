package apperror

import "errors"

var (
	ErrInterrupted    = errors.New("interrupted by user")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrUnknownHeading = errors.New("unknown heading")
)
