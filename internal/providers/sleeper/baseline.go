package sleeper

import "github.com/preston-bernstein/sleeper-league-service/internal/domain/lineups"

// BaselineScores derives per-player points for rosterID from a week's matchups.
// A direct players_points map wins; otherwise starters and starters_points are paired by index.
// ok is false when the roster has no usable scoring data.
func BaselineScores(matchups []Matchup, rosterID int) (scores map[string]float64, detail lineups.BaselineDetail, ok bool) {
	for _, m := range matchups {
		if !m.RosterID.Set() || m.RosterID.Int() != rosterID {
			continue
		}

		if len(m.PlayersPoints) > 0 {
			scores = make(map[string]float64, len(m.PlayersPoints))
			for id, pts := range m.PlayersPoints {
				if id != "" && pts.Set() {
					scores[id] = pts.Float()
				}
			}
			if len(scores) > 0 {
				return scores, lineups.DetailPlayersPoints, true
			}
		}

		if len(m.Starters) > 0 && len(m.StartersPoints) > 0 {
			scores = make(map[string]float64, len(m.Starters))
			for i, id := range m.Starters {
				if i >= len(m.StartersPoints) {
					break
				}
				if id != "" && m.StartersPoints[i].Set() {
					scores[id] = m.StartersPoints[i].Float()
				}
			}
			if len(scores) > 0 {
				return scores, lineups.DetailStartersPoints, true
			}
		}
		return nil, "", false
	}
	return nil, "", false
}
