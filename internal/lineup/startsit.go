package lineup

import (
	"sort"
	"strings"

	"github.com/preston-bernstein/sleeper-league-service/internal/domain/lineups"
	"github.com/preston-bernstein/sleeper-league-service/internal/domain/players"
)

type candidate struct {
	player    players.Player
	positions []string
	baseline  float64
}

// BuildStartSit assigns roster players to the starting slots of a lineup template.
//
// Candidates are ranked by baseline points, highest first, keeping roster order on ties.
// Each non-bench slot, in template order, takes the first unused candidate eligible for it;
// slots nobody can fill yield an empty pick. Remaining candidates form the bench in ranked order.
// Missing dictionary entries and missing baseline scores degrade to placeholders and zero.
func BuildStartSit(slots []string, rosterPlayerIDs []string, dict players.Dictionary, baseline map[string]float64) lineups.Result {
	candidates := buildCandidates(rosterPlayerIDs, dict, baseline)

	used := make([]bool, len(candidates))
	picks := make([]lineups.Pick, 0, len(slots))
	for _, slot := range slots {
		if IsBenchSlot(slot) {
			continue
		}
		idx := -1
		for i, c := range candidates {
			if !used[i] && IsEligible(slot, c.positions) {
				idx = i
				break
			}
		}
		if idx < 0 {
			picks = append(picks, lineups.Pick{Slot: slot, Name: lineups.EmptyPickName})
			continue
		}
		used[idx] = true
		c := candidates[idx]
		picks = append(picks, lineups.Pick{
			Slot:           slot,
			PlayerID:       c.player.ID,
			Name:           c.player.Name,
			Position:       c.player.Position,
			Team:           c.player.Team,
			InjuryStatus:   c.player.InjuryStatus,
			BaselinePoints: c.baseline,
		})
	}

	bench := make([]lineups.BenchEntry, 0, len(candidates))
	for i, c := range candidates {
		if used[i] {
			continue
		}
		bench = append(bench, lineups.BenchEntry{
			PlayerID:       c.player.ID,
			Name:           c.player.Name,
			Position:       c.player.Position,
			Team:           c.player.Team,
			InjuryStatus:   c.player.InjuryStatus,
			BaselinePoints: c.baseline,
		})
	}

	return lineups.Result{Picks: picks, Bench: bench}
}

// buildCandidates drops blank and repeated ids, then ranks by baseline with a stable sort.
func buildCandidates(ids []string, dict players.Dictionary, baseline map[string]float64) []candidate {
	seen := make(map[string]struct{}, len(ids))
	out := make([]candidate, 0, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		var positions []string
		if rec, ok := dict[id]; ok {
			positions = rec.FantasyPositionSet()
		}
		out = append(out, candidate{
			player:    players.Resolve(id, dict),
			positions: positions,
			baseline:  baseline[id],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].baseline > out[j].baseline
	})
	return out
}
