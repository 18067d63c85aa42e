package lineup

import "strings"

var benchSlots = map[string]struct{}{
	"BN":    {},
	"BENCH": {},
	"IR":    {},
	"RES":   {},
	"TAXI":  {},
}

// IsBenchSlot reports whether slot is a structural bench/reserve marker rather than a starting slot.
func IsBenchSlot(slot string) bool {
	_, ok := benchSlots[strings.ToUpper(slot)]
	return ok
}

// IsEligible reports whether a player holding positions may fill slot.
// Matching on slot is case-insensitive. Unrecognized slot codes accept every player.
func IsEligible(slot string, positions []string) bool {
	s := strings.ToUpper(slot)
	if IsBenchSlot(s) {
		return false
	}

	switch s {
	case "QB", "RB", "WR", "TE", "K":
		return hasAny(positions, s)
	case "DEF", "DST":
		return hasAny(positions, "DEF", "DST")
	case "FLEX":
		return hasAny(positions, "RB", "WR", "TE")
	case "WRRB_FLEX", "RBWR_FLEX":
		return hasAny(positions, "RB", "WR")
	case "REC_FLEX", "WRTE_FLEX":
		return hasAny(positions, "WR", "TE")
	case "SUPER_FLEX", "SFLEX":
		return hasAny(positions, "QB", "RB", "WR", "TE")
	default:
		return true
	}
}

func hasAny(positions []string, want ...string) bool {
	for _, p := range positions {
		for _, w := range want {
			if p == w {
				return true
			}
		}
	}
	return false
}
