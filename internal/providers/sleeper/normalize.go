package sleeper

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/sleeper-league-service/internal/domain/league"
	"github.com/preston-bernstein/sleeper-league-service/internal/domain/players"
)

// NormalizeLeague maps upstream league, roster, and user records into the normalized league shape.
// It performs no validation: sport and season pass through as given.
func NormalizeLeague(lg League, rosters []Roster, users []User, dict players.Dictionary) league.League {
	usersByID := make(map[string]User, len(users))
	for _, u := range users {
		if id := u.UserID.String(); id != "" {
			if _, dup := usersByID[id]; !dup {
				usersByID[id] = u
			}
		}
	}

	teams := make([]league.Team, 0, len(rosters))
	for _, r := range rosters {
		teams = append(teams, normalizeTeam(r, usersByID, dict))
	}

	positions := []string(lg.RosterPositions)
	if positions == nil {
		positions = []string{}
	}

	return league.League{
		Platform:        league.PlatformSleeper,
		Sport:           lg.Sport.String(),
		Season:          lg.Season.String(),
		LeagueID:        lg.LeagueID.String(),
		Name:            firstNonEmpty(lg.Name.String(), league.DefaultLeagueName),
		RosterPositions: positions,
		Teams:           teams,
	}
}

func normalizeTeam(r Roster, usersByID map[string]User, dict players.Dictionary) league.Team {
	rosterID := r.RosterID.Int()
	ownerID := r.OwnerID.String()

	starterIDs := distinctIDs(r.Starters)
	starterSet := make(map[string]struct{}, len(starterIDs))
	for _, id := range starterIDs {
		starterSet[id] = struct{}{}
	}
	var benchIDs []string
	for _, id := range distinctIDs(r.Players) {
		if _, starting := starterSet[id]; !starting {
			benchIDs = append(benchIDs, id)
		}
	}

	team := league.Team{
		ID:       strconv.Itoa(rosterID),
		RosterID: rosterID,
		OwnerID:  ownerID,
		Name:     teamName(rosterID, usersByID[ownerID]),
		Starters: resolvePlayers(starterIDs, dict),
		Bench:    resolvePlayers(benchIDs, dict),
	}

	if s := r.Settings; s != nil {
		team.Record = &league.Record{
			Wins:   s.Wins.Int(),
			Losses: s.Losses.Int(),
			Ties:   s.Ties.Int(),
		}
		team.PointsFor = s.Fpts.ptr()
		team.PointsAgainst = s.FptsAgainst.ptr()
	}
	return team
}

// teamName resolves, in order: owner team name, owner display name, owner username, "Roster N".
func teamName(rosterID int, owner User) string {
	return firstNonEmpty(
		strings.TrimSpace(owner.Metadata.TeamName.String()),
		strings.TrimSpace(owner.DisplayName.String()),
		strings.TrimSpace(owner.Username.String()),
		"Roster "+strconv.Itoa(rosterID),
	)
}

// distinctIDs drops blank ids and keeps the first occurrence of repeats.
func distinctIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func resolvePlayers(ids []string, dict players.Dictionary) []players.Player {
	out := make([]players.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, players.Resolve(id, dict))
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
