package homes

import "errors"

var (
	// ErrInvalidArgument is returned for a missing date, start after end, or a malformed home.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when no home has the requested identity.
	ErrNotFound = errors.New("home not found")
)
