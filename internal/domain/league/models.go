package league

import "github.com/preston-bernstein/sleeper-league-service/internal/domain/players"

// PlatformSleeper tags leagues normalized from Sleeper data.
const PlatformSleeper = "sleeper"

// DefaultLeagueName is used when the upstream league carries no name.
const DefaultLeagueName = "Sleeper League"

// Record is a team's win/loss/tie record.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// Team is the normalized team shape. Record and points are nil when the upstream roster
// carried no settings at all, which is distinct from a zeroed record.
type Team struct {
	ID            string           `json:"id"`
	RosterID      int              `json:"rosterId"`
	OwnerID       string           `json:"ownerId,omitempty"`
	Name          string           `json:"name"`
	Record        *Record          `json:"record,omitempty"`
	PointsFor     *float64         `json:"pointsFor,omitempty"`
	PointsAgainst *float64         `json:"pointsAgainst,omitempty"`
	Starters      []players.Player `json:"starters"`
	Bench         []players.Player `json:"bench"`
}

// League is the normalized, platform-agnostic league shape.
type League struct {
	Platform        string   `json:"platform"`
	Sport           string   `json:"sport"`
	Season          string   `json:"season"`
	LeagueID        string   `json:"leagueId"`
	Name            string   `json:"name"`
	RosterPositions []string `json:"rosterPositions"`
	Teams           []Team   `json:"teams"`
}
