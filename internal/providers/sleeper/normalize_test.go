package sleeper

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/preston-bernstein/sleeper-league-service/internal/domain/league"
	"github.com/preston-bernstein/sleeper-league-service/internal/domain/players"
)

func mustDecodeRosters(t *testing.T, raw string) []Roster {
	t.Helper()
	rosters, err := DecodeRosters(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("decode rosters: %v", err)
	}
	return rosters
}

func mustDecodeUsers(t *testing.T, raw string) []User {
	t.Helper()
	users, err := DecodeUsers(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("decode users: %v", err)
	}
	return users
}

func playerIDs(list []players.Player) []string {
	ids := make([]string, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	return ids
}

func testDict() players.Dictionary {
	return players.Dictionary{
		"a": {PlayerID: "a", FullName: "Alpha Back", Position: "RB", Team: "DAL"},
		"b": {PlayerID: "b", FirstName: "Bravo", LastName: "Wide", Position: "WR", Team: "NYJ", InjuryStatus: "Out"},
		"c": {PlayerID: "c", FullName: "Charlie Tight", Position: "TE", Team: "KC"},
	}
}

func TestNormalizeLeagueSplitsStartersAndBench(t *testing.T) {
	rosters := mustDecodeRosters(t, `[{"roster_id":1,"owner_id":"u1","players":["a","b","c"],"starters":["a","c"],"settings":{"wins":3}}]`)

	out := NormalizeLeague(League{}, rosters, nil, testDict())

	team := out.Teams[0]
	if got := playerIDs(team.Starters); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("expected starters [a c], got %v", got)
	}
	if got := playerIDs(team.Bench); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("expected bench [b], got %v", got)
	}
	if team.Bench[0].Name != "Bravo Wide" || team.Bench[0].InjuryStatus != "Out" {
		t.Fatalf("expected resolved bench player, got %+v", team.Bench[0])
	}
}

func TestNormalizeLeagueUsesPlaceholderForUnknownPlayers(t *testing.T) {
	rosters := mustDecodeRosters(t, `[{"roster_id":2,"players":["ghost"],"starters":[]}]`)

	out := NormalizeLeague(League{}, rosters, nil, testDict())

	ghost := out.Teams[0].Bench[0]
	if ghost != (players.Player{ID: "ghost", Name: players.UnknownPlayerName}) {
		t.Fatalf("expected placeholder player, got %+v", ghost)
	}
	data, err := json.Marshal(ghost)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"id":"ghost","name":"Unknown Player"}` {
		t.Fatalf("expected optional fields omitted, got %s", data)
	}
}

func TestNormalizeLeagueOmitsRecordWithoutSettings(t *testing.T) {
	rosters := mustDecodeRosters(t, `[
		{"roster_id":1,"players":[]},
		{"roster_id":2,"players":[],"settings":null},
		{"roster_id":3,"players":[],"settings":{}},
		{"roster_id":4,"players":[],"settings":{"wins":"7","losses":2,"fpts":1234.5,"fpts_against":null}}
	]`)

	out := NormalizeLeague(League{}, rosters, nil, nil)

	for _, team := range out.Teams[:2] {
		if team.Record != nil || team.PointsFor != nil || team.PointsAgainst != nil {
			t.Fatalf("roster %d: expected record and points absent, got %+v", team.RosterID, team)
		}
		data, _ := json.Marshal(team)
		if strings.Contains(string(data), "record") || strings.Contains(string(data), "points") {
			t.Fatalf("roster %d: expected keys omitted, got %s", team.RosterID, data)
		}
	}

	empty := out.Teams[2]
	if empty.Record == nil || *empty.Record != (league.Record{}) {
		t.Fatalf("expected zeroed record for empty settings, got %+v", empty.Record)
	}
	if empty.PointsFor != nil || empty.PointsAgainst != nil {
		t.Fatalf("expected points absent when fpts missing")
	}

	full := out.Teams[3]
	if *full.Record != (league.Record{Wins: 7, Losses: 2, Ties: 0}) {
		t.Fatalf("unexpected record %+v", full.Record)
	}
	if full.PointsFor == nil || *full.PointsFor != 1234.5 {
		t.Fatalf("expected pointsFor 1234.5, got %v", full.PointsFor)
	}
	if full.PointsAgainst != nil {
		t.Fatalf("expected null fpts_against to stay absent")
	}
}

func TestNormalizeLeagueResolvesTeamNames(t *testing.T) {
	users := mustDecodeUsers(t, `[
		{"user_id":"u1","username":"user1","display_name":"Display One","metadata":{"team_name":"The Ones"}},
		{"user_id":"u2","username":"user2","display_name":"Display Two","metadata":{}},
		{"user_id":"u3","username":"user3","display_name":"","metadata":null},
		{"user_id":"u4","metadata":"garbage"}
	]`)
	rosters := mustDecodeRosters(t, `[
		{"roster_id":1,"owner_id":"u1"},
		{"roster_id":2,"owner_id":"u2"},
		{"roster_id":3,"owner_id":"u3"},
		{"roster_id":4,"owner_id":"u4"},
		{"roster_id":5,"owner_id":null},
		{"roster_id":6,"owner_id":"unknown"}
	]`)

	out := NormalizeLeague(League{}, rosters, users, nil)

	want := []string{"The Ones", "Display Two", "user3", "Roster 4", "Roster 5", "Roster 6"}
	for i, name := range want {
		if out.Teams[i].Name != name {
			t.Fatalf("team %d: expected %q, got %q", i, name, out.Teams[i].Name)
		}
	}
	if out.Teams[0].OwnerID != "u1" || out.Teams[4].OwnerID != "" {
		t.Fatalf("unexpected owner ids %q %q", out.Teams[0].OwnerID, out.Teams[4].OwnerID)
	}
	if out.Teams[1].ID != "2" || out.Teams[1].RosterID != 2 {
		t.Fatalf("unexpected ids %+v", out.Teams[1])
	}
}

func TestNormalizeLeagueAccountsForEveryRosterPlayer(t *testing.T) {
	rosters := mustDecodeRosters(t, `[{"roster_id":1,"players":["a","b","a","","c","d"],"starters":["c","","x","c"]}]`)

	team := NormalizeLeague(League{}, rosters, nil, testDict()).Teams[0]

	if got := playerIDs(team.Starters); !reflect.DeepEqual(got, []string{"c", "x"}) {
		t.Fatalf("unexpected starters %v", got)
	}
	if got := playerIDs(team.Bench); !reflect.DeepEqual(got, []string{"a", "b", "d"}) {
		t.Fatalf("unexpected bench %v", got)
	}
}

func TestNormalizeLeaguePassesLeagueFieldsThrough(t *testing.T) {
	lg, err := DecodeLeague(json.RawMessage(`{"league_id":998877,"name":"Dynasty","sport":"nfl","season":2024,"roster_positions":["QB","RB","BN"]}`))
	if err != nil {
		t.Fatalf("decode league: %v", err)
	}

	out := NormalizeLeague(lg, nil, nil, nil)

	if out.Platform != league.PlatformSleeper || out.LeagueID != "998877" || out.Season != "2024" || out.Sport != "nfl" || out.Name != "Dynasty" {
		t.Fatalf("unexpected league fields %+v", out)
	}
	if !reflect.DeepEqual(out.RosterPositions, []string{"QB", "RB", "BN"}) {
		t.Fatalf("unexpected roster positions %v", out.RosterPositions)
	}
	if out.Teams == nil || len(out.Teams) != 0 {
		t.Fatalf("expected empty teams slice")
	}

	bare := NormalizeLeague(League{}, nil, nil, nil)
	if bare.Name != league.DefaultLeagueName || bare.Season != "" || bare.Sport != "" || bare.RosterPositions == nil {
		t.Fatalf("unexpected defaults %+v", bare)
	}
}

func TestNormalizeLeagueTreatsNonObjectSettingsAsAbsent(t *testing.T) {
	rosters := mustDecodeRosters(t, `[
		{"roster_id":1,"players":[],"settings":false},
		{"roster_id":2,"players":[],"settings":0},
		{"roster_id":3,"players":[],"settings":""},
		{"roster_id":4,"players":[],"settings":[]}
	]`)

	out := NormalizeLeague(League{}, rosters, nil, nil)

	for _, team := range out.Teams {
		if team.Record != nil || team.PointsFor != nil || team.PointsAgainst != nil {
			t.Fatalf("roster %d: expected record and points absent, got %+v", team.RosterID, team)
		}
	}
}
