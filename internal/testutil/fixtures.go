package testutil

import (
	"github.com/preston-bernstein/sleeper-league-service/internal/domain/players"
)

// SampleRecord returns a dictionary record with a full name and a single fantasy position.
func SampleRecord(id, name, position string) players.Record {
	return players.Record{
		PlayerID:         id,
		FullName:         name,
		Position:         position,
		Team:             "TST",
		FantasyPositions: []string{position},
	}
}

// SampleDictionary returns a small NFL dictionary covering the common slot positions.
func SampleDictionary() players.Dictionary {
	return players.Dictionary{
		"qb1":  SampleRecord("qb1", "Quinn Baker", "QB"),
		"rb1":  SampleRecord("rb1", "Reese Bell", "RB"),
		"wr1":  SampleRecord("wr1", "Wade Rhodes", "WR"),
		"te1":  SampleRecord("te1", "Ty Ellis", "TE"),
		"k1":   SampleRecord("k1", "Kit Abbott", "K"),
		"def1": SampleRecord("def1", "Test Defense", "DEF"),
	}
}
