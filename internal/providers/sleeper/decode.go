package sleeper

import (
	"encoding/json"
	"fmt"
)

// DecodeLeague decodes a league payload. A null payload decodes to the zero League.
func DecodeLeague(raw json.RawMessage) (League, error) {
	var league League
	if err := decode(raw, &league); err != nil {
		return League{}, fmt.Errorf("decode league: %w", err)
	}
	return league, nil
}

// DecodeRosters decodes a roster list. Null decodes to an empty list.
func DecodeRosters(raw json.RawMessage) ([]Roster, error) {
	var rosters []Roster
	if err := decode(raw, &rosters); err != nil {
		return nil, fmt.Errorf("decode rosters: %w", err)
	}
	return rosters, nil
}

// DecodeUsers decodes a league member list. Null decodes to an empty list.
func DecodeUsers(raw json.RawMessage) ([]User, error) {
	var users []User
	if err := decode(raw, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// DecodeMatchups decodes a week's matchups. Null decodes to an empty list.
func DecodeMatchups(raw json.RawMessage) ([]Matchup, error) {
	var matchups []Matchup
	if err := decode(raw, &matchups); err != nil {
		return nil, fmt.Errorf("decode matchups: %w", err)
	}
	return matchups, nil
}

// DecodeState decodes the sport state payload.
func DecodeState(raw json.RawMessage) (State, error) {
	var state State
	if err := decode(raw, &state); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	return state, nil
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}
