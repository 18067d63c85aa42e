package leagues

import "errors"

var (
	// ErrInvalidArgument is returned when a required identifier is missing or malformed.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidWeek is returned for negative week numbers.
	ErrInvalidWeek = errors.New("invalid week")
	// ErrRosterNotFound is returned when the league has no roster with the requested id.
	ErrRosterNotFound = errors.New("roster not found")
)
