package sleeper

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

const providerName = "sleeper"

// League is the subset of an upstream league record the service reads.
type League struct {
	LeagueID        flexString  `json:"league_id"`
	Name            flexString  `json:"name"`
	Sport           flexString  `json:"sport"`
	Season          flexString  `json:"season"`
	Status          flexString  `json:"status"`
	TotalRosters    flexNumber  `json:"total_rosters"`
	RosterPositions flexStrings `json:"roster_positions"`
}

// Roster is one team's roster. Settings is nil unless upstream sent a settings object.
type Roster struct {
	RosterID flexNumber      `json:"roster_id"`
	OwnerID  flexString      `json:"owner_id"`
	Players  flexStrings     `json:"players"`
	Starters flexStrings     `json:"starters"`
	Settings *RosterSettings `json:"-"`
}

func (r *Roster) UnmarshalJSON(data []byte) error {
	type plain Roster
	var v struct {
		plain
		Settings json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Roster(v.plain)
	// false, 0, "" and arrays count as absent.
	if raw := bytes.TrimSpace(v.Settings); len(raw) > 0 && raw[0] == '{' {
		var settings RosterSettings
		if err := json.Unmarshal(raw, &settings); err != nil {
			return err
		}
		r.Settings = &settings
	}
	return nil
}

// RosterSettings carries the season record and points.
type RosterSettings struct {
	Wins        flexNumber `json:"wins"`
	Losses      flexNumber `json:"losses"`
	Ties        flexNumber `json:"ties"`
	Fpts        flexNumber `json:"fpts"`
	FptsAgainst flexNumber `json:"fpts_against"`
}

func (r *RosterSettings) UnmarshalJSON(data []byte) error {
	type plain RosterSettings
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		*r = RosterSettings{}
		return nil
	}
	*r = RosterSettings(v)
	return nil
}

// User is a league member.
type User struct {
	UserID      flexString   `json:"user_id"`
	Username    flexString   `json:"username"`
	DisplayName flexString   `json:"display_name"`
	Metadata    userMetadata `json:"metadata"`
}

type userMetadata struct {
	TeamName flexString `json:"team_name"`
}

func (m *userMetadata) UnmarshalJSON(data []byte) error {
	type plain userMetadata
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		*m = userMetadata{}
		return nil
	}
	*m = userMetadata(v)
	return nil
}

// Matchup is one roster's scoring for a week.
type Matchup struct {
	RosterID       flexNumber  `json:"roster_id"`
	MatchupID      flexNumber  `json:"matchup_id"`
	Points         flexNumber  `json:"points"`
	Starters       flexStrings `json:"starters"`
	StartersPoints flexNumbers `json:"starters_points"`
	PlayersPoints  flexPoints  `json:"players_points"`
}

// State is the upstream's current season/week marker for a sport.
type State struct {
	Week       flexNumber `json:"week"`
	Season     flexString `json:"season"`
	SeasonType flexString `json:"season_type"`
}

// flexString accepts strings and numbers; null or any other shape decodes to "".
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = ""
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			*s = ""
			return nil
		}
		*s = flexString(v)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*s = flexString(data)
	default:
		*s = ""
	}
	return nil
}

func (s flexString) String() string { return string(s) }

// flexNumber accepts numbers and numeric strings. Null or unparsable input leaves it unset.
type flexNumber struct {
	value float64
	set   bool
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	*n = flexNumber{}
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if raw == "" || raw == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	*n = flexNumber{value: v, set: true}
	return nil
}

// Float returns the value, or 0 when unset.
func (n flexNumber) Float() float64 { return n.value }

// Int truncates the value to an int, or 0 when unset.
func (n flexNumber) Int() int { return int(n.value) }

// Set reports whether upstream supplied a usable number.
func (n flexNumber) Set() bool { return n.set }

func (n flexNumber) ptr() *float64 {
	if !n.set {
		return nil
	}
	v := n.value
	return &v
}

// flexStrings accepts an array of strings or numbers. Non-array input decodes to nil;
// unusable elements become "".
type flexStrings []string

func (s *flexStrings) UnmarshalJSON(data []byte) error {
	var items []flexString
	if err := json.Unmarshal(data, &items); err != nil {
		*s = nil
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = string(item)
	}
	*s = out
	return nil
}

// flexNumbers accepts an array of numbers. Non-array input decodes to nil.
type flexNumbers []flexNumber

func (s *flexNumbers) UnmarshalJSON(data []byte) error {
	var items []flexNumber
	if err := json.Unmarshal(data, &items); err != nil {
		*s = nil
		return nil
	}
	*s = items
	return nil
}

// flexPoints accepts an object of id to number. Non-object input decodes to nil.
type flexPoints map[string]flexNumber

func (p *flexPoints) UnmarshalJSON(data []byte) error {
	var items map[string]flexNumber
	if err := json.Unmarshal(data, &items); err != nil {
		*p = nil
		return nil
	}
	*p = items
	return nil
}
