package league

import (
	"errors"
	"fmt"
	"strings"
)

// Sport identifies a supported fantasy sport.
type Sport string

const (
	SportNFL Sport = "nfl"
	SportNBA Sport = "nba"
)

// ErrUnsupportedSport is returned when a sport outside the supported set is requested.
var ErrUnsupportedSport = errors.New("unsupported sport")

// ParseSport validates raw against the supported sports (case-insensitive).
func ParseSport(raw string) (Sport, error) {
	switch s := Sport(strings.ToLower(strings.TrimSpace(raw))); s {
	case SportNFL, SportNBA:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSport, raw)
	}
}
