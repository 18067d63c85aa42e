package players

import "strings"

// UnknownPlayerName is used when a roster references an id the dictionary does not know.
const UnknownPlayerName = "Unknown Player"

// Record is one entry of the upstream player dictionary. Every field is optional upstream;
// absent values decode to their zero value.
type Record struct {
	PlayerID         string   `json:"player_id"`
	FullName         string   `json:"full_name,omitempty"`
	FirstName        string   `json:"first_name,omitempty"`
	LastName         string   `json:"last_name,omitempty"`
	Position         string   `json:"position,omitempty"`
	Team             string   `json:"team,omitempty"`
	Sport            string   `json:"sport,omitempty"`
	FantasyPositions []string `json:"fantasy_positions,omitempty"`
	InjuryStatus     string   `json:"injury_status,omitempty"`
	Active           bool     `json:"active,omitempty"`
}

// Dictionary maps provider player ids to records. A lookup miss means absence, not an error.
type Dictionary map[string]Record

// Player is the normalized, platform-agnostic player shape.
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position,omitempty"`
	Team         string `json:"team,omitempty"`
	InjuryStatus string `json:"injuryStatus,omitempty"`
}

// Name resolves a display name: full name, then "first last", then UnknownPlayerName.
func (r Record) Name() string {
	return firstNonEmpty(
		strings.TrimSpace(r.FullName),
		joinNonEmpty(r.FirstName, r.LastName),
		UnknownPlayerName,
	)
}

// FantasyPositionSet returns the positions the player may fill in a lineup.
// Explicit fantasy positions win; otherwise the primary position; otherwise none.
func (r Record) FantasyPositionSet() []string {
	explicit := make([]string, 0, len(r.FantasyPositions))
	for _, pos := range r.FantasyPositions {
		if pos != "" {
			explicit = append(explicit, pos)
		}
	}
	if len(explicit) > 0 {
		return explicit
	}
	if r.Position != "" {
		return []string{r.Position}
	}
	return nil
}

// Resolve builds a normalized player for id. Ids missing from dict yield a placeholder
// that keeps the id and leaves every optional field empty.
func Resolve(id string, dict Dictionary) Player {
	rec, ok := dict[id]
	if !ok {
		return Player{ID: id, Name: UnknownPlayerName}
	}
	return Player{
		ID:           id,
		Name:         rec.Name(),
		Position:     rec.Position,
		Team:         rec.Team,
		InjuryStatus: rec.InjuryStatus,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
