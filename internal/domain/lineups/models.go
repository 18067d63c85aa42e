package lineups

// EmptyPickName marks a starting slot no remaining candidate could fill.
const EmptyPickName = "(no eligible player found)"

// Pick is one resolved starting slot. PlayerID is empty when the slot could not be filled.
type Pick struct {
	Slot           string  `json:"slot"`
	PlayerID       string  `json:"playerId"`
	Name           string  `json:"name"`
	Position       string  `json:"position,omitempty"`
	Team           string  `json:"team,omitempty"`
	InjuryStatus   string  `json:"injuryStatus,omitempty"`
	BaselinePoints float64 `json:"baselinePoints"`
}

// IsEmpty reports whether the pick represents an unfilled slot.
func (p Pick) IsEmpty() bool {
	return p.PlayerID == ""
}

// BenchEntry is a roster player left out of the suggested starters.
type BenchEntry struct {
	PlayerID       string  `json:"playerId"`
	Name           string  `json:"name"`
	Position       string  `json:"position,omitempty"`
	Team           string  `json:"team,omitempty"`
	InjuryStatus   string  `json:"injuryStatus,omitempty"`
	BaselinePoints float64 `json:"baselinePoints"`
}

// Result is the output of one lineup assignment run.
type Result struct {
	Picks []Pick       `json:"picks"`
	Bench []BenchEntry `json:"bench"`
}

// EmptyPicks counts the unfilled starting slots.
func (r Result) EmptyPicks() int {
	n := 0
	for _, p := range r.Picks {
		if p.IsEmpty() {
			n++
		}
	}
	return n
}

// BaselineSource is the externally observed tag describing where baseline points came from.
type BaselineSource string

const (
	// SourcePreviousWeek covers both recognized matchup shapes.
	SourcePreviousWeek BaselineSource = "previous_week"
	// SourceNone means no baseline data was found; every candidate scores zero.
	SourceNone BaselineSource = "none"
)

// BaselineDetail distinguishes the matchup shape behind SourcePreviousWeek.
type BaselineDetail string

const (
	DetailPlayersPoints  BaselineDetail = "players_points"
	DetailStartersPoints BaselineDetail = "starters_points"
)

// StartSitResponse is the suggested lineup for one roster and week.
type StartSitResponse struct {
	LeagueID       string         `json:"leagueId"`
	RosterID       int            `json:"rosterId"`
	Week           int            `json:"week"`
	BaselineWeek   int            `json:"baselineWeek,omitempty"`
	BaselineSource BaselineSource `json:"baselineSource"`
	BaselineDetail BaselineDetail `json:"baselineDetail,omitempty"`
	Picks          []Pick         `json:"picks"`
	Bench          []BenchEntry   `json:"bench"`
}
