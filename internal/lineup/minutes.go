package lineup

import (
	"github.com/stitts-dev/franchise-sim/internal/models"
)

type minutesRule struct {
	perPlayer int
	total     int
}

var minutesRules = map[models.Sport]minutesRule{
	models.SportBasketball: {perPlayer: 48, total: 240},
	models.SportSoccer:     {perPlayer: 90, total: 990},
}

// GetMaxAllowedMinutes is the most a player may be given without breaking the
// per-player cap or the team total.
func (e *Engine) GetMaxAllowedMinutes(l Lineup, playerID string) int {
	rule, ok := minutesRules[e.sport]
	if !ok {
		return 0
	}
	others := 0
	for id, m := range l.Minutes {
		if id != playerID {
			others += m
		}
	}
	limit := rule.total - others
	if limit > rule.perPlayer {
		limit = rule.perPlayer
	}
	if limit < 0 {
		limit = 0
	}
	return limit
}

// TotalMinutes sums the allocation across all players.
func TotalMinutes(l Lineup) int {
	total := 0
	for _, m := range l.Minutes {
		total += m
	}
	return total
}

// SetMinutes sets a starter's or bench player's minutes, clamped to
// [0, GetMaxAllowedMinutes].
func (e *Engine) SetMinutes(l Lineup, playerID string, minutes int) (Lineup, error) {
	if _, ok := minutesRules[e.sport]; !ok {
		return l, ErrUnsupported
	}
	cur := e.normalize(l)
	if kind, _ := cur.Locate(playerID); kind != KindStarter && kind != KindBench {
		return l, ErrNotInLineup
	}

	if limit := e.GetMaxAllowedMinutes(cur, playerID); minutes > limit {
		minutes = limit
	}
	if minutes < 0 {
		minutes = 0
	}

	next := cur.Clone()
	if minutes == 0 {
		delete(next.Minutes, playerID)
	} else {
		next.Minutes[playerID] = minutes
	}
	return next, nil
}

// defaultMinutes reallocates minutes from the auto-fill template for the current
// starters and bench.
func (e *Engine) defaultMinutes(l Lineup, roster models.Roster) map[string]int {
	out := map[string]int{}
	idx := roster.Index()

	rank := func(ids []string) []candidate {
		cands := []candidate{}
		for _, id := range ids {
			if p, ok := idx[id]; ok {
				eff := e.degrade(p)
				cands = append(cands, candidate{player: p, effective: eff, overall: e.rater.Overall(eff)})
			}
		}
		return rankByOverall(sortByID(cands))
	}

	switch e.sport {
	case models.SportBasketball:
		for i, c := range rank(l.Starters) {
			if i < len(basketballStarterMinutes) {
				out[c.player.ID] = basketballStarterMinutes[i]
			}
		}
		for i, c := range rank(l.Bench) {
			if i < len(basketballBenchMinutes) {
				out[c.player.ID] = basketballBenchMinutes[i]
			}
		}
	case models.SportSoccer:
		for _, id := range l.Starters {
			if id != "" {
				out[id] = soccerStarterMinutes
			}
		}
	}
	return out
}
