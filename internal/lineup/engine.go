package lineup

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/ratings"
	"github.com/stitts-dev/franchise-sim/pkg/logger"
)

// FitnessFunc returns a copy of the player with attributes reduced for tiredness.
type FitnessFunc func(models.Player) models.Player

// Engine runs lineup operations for one sport.
type Engine struct {
	sport   models.Sport
	rater   ratings.Rater
	degrade FitnessFunc
	logger  *logrus.Entry
}

// NewEngine builds an engine. A nil rater or fitness function selects the defaults
// from the ratings package.
func NewEngine(sport models.Sport, rater ratings.Rater, degrade FitnessFunc) (*Engine, error) {
	if _, ok := formationsBySport[sport]; !ok {
		return nil, fmt.Errorf("unsupported sport %q", sport)
	}
	if rater == nil {
		rater = ratings.ForSport(sport)
	}
	if degrade == nil {
		degrade = ratings.ApplyFitnessDegradation
	}
	return &Engine{
		sport:   sport,
		rater:   rater,
		degrade: degrade,
		logger:  logger.WithService("lineup-engine").WithField("sport", string(sport)),
	}, nil
}

func (e *Engine) Sport() models.Sport {
	return e.sport
}

// NewLineup returns an empty lineup. An empty formation name selects the sport default.
func (e *Engine) NewLineup(formation string) (Lineup, error) {
	if formation == "" {
		formation = defaultFormation[e.sport]
	}
	if _, ok := FormationSlots(e.sport, formation); !ok {
		return Lineup{}, ErrUnknownFormation
	}
	l := Lineup{
		Sport:     e.sport,
		Formation: formation,
		Starters:  make([]string, starterSlots[e.sport]),
		Bench:     []string{},
		Minutes:   map[string]int{},
	}
	if e.sport == models.SportBaseball {
		l.Positions = map[string]string{}
		l.Bullpen = make([]string, len(BullpenRoles))
	}
	return l, nil
}

// normalize fills in anything a decoded or zero-value lineup may be missing.
func (e *Engine) normalize(l Lineup) Lineup {
	next := l.Clone()
	next.Sport = e.sport
	if _, ok := FormationSlots(e.sport, next.Formation); !ok {
		next.Formation = defaultFormation[e.sport]
	}
	if n := starterSlots[e.sport]; len(next.Starters) != n {
		starters := make([]string, n)
		copy(starters, next.Starters)
		next.Starters = starters
	}
	if next.Minutes == nil {
		next.Minutes = map[string]int{}
	}
	if e.sport == models.SportBaseball {
		if next.Positions == nil {
			next.Positions = map[string]string{}
		}
		if len(next.Bullpen) != len(BullpenRoles) {
			bullpen := make([]string, len(BullpenRoles))
			copy(bullpen, next.Bullpen)
			next.Bullpen = bullpen
		}
	}
	return next
}

// candidate is a healthy player together with its fitness-degraded copy.
type candidate struct {
	player    models.Player
	effective models.Player
	overall   int
}

// candidates returns every healthy player ordered by id, which is also the tie-break
// order for all greedy picks.
func (e *Engine) candidates(roster models.Roster) []candidate {
	out := make([]candidate, 0, len(roster))
	for _, p := range roster {
		if p.IsInjured() {
			continue
		}
		eff := e.degrade(p)
		out = append(out, candidate{player: p, effective: eff, overall: e.rater.Overall(eff)})
	}
	return sortByID(out)
}

func sortByID(cands []candidate) []candidate {
	sort.Slice(cands, func(i, j int) bool { return cands[i].player.ID < cands[j].player.ID })
	return cands
}

// rankByOverall orders candidates by effective overall, best first.
func rankByOverall(cands []candidate) []candidate {
	ranked := append([]candidate(nil), cands...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].overall > ranked[j].overall })
	return ranked
}

// bestAt picks the unused candidate rating highest at position. The first candidate
// wins ties.
func (e *Engine) bestAt(cands []candidate, used map[string]bool, position string, eligible func(candidate) bool) (candidate, bool) {
	var best candidate
	bestRating, found := -1, false
	for _, c := range cands {
		if used[c.player.ID] || (eligible != nil && !eligible(c)) {
			continue
		}
		if r := e.rater.PositionOverall(c.effective, position); r > bestRating {
			best, bestRating, found = c, r, true
		}
	}
	return best, found
}

func unused(cands []candidate, used map[string]bool) []candidate {
	out := []candidate{}
	for _, c := range cands {
		if !used[c.player.ID] {
			out = append(out, c)
		}
	}
	return out
}

func ids(cands []candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.player.ID
	}
	return out
}

// ApplyOptimalLineup rebuilds the lineup from scratch with the greedy best-fit rules of
// the engine's sport, keeping the current formation.
func (e *Engine) ApplyOptimalLineup(l Lineup, roster models.Roster) (Lineup, error) {
	cands := e.candidates(roster)
	if len(cands) == 0 {
		return l, ErrNoEligiblePlayers
	}

	next, err := e.NewLineup(e.normalize(l).Formation)
	if err != nil {
		return l, err
	}

	switch e.sport {
	case models.SportBasketball:
		next = e.optimalBasketball(next, cands)
	case models.SportSoccer:
		next = e.optimalSoccer(next, cands)
	case models.SportBaseball:
		next = e.optimalBaseball(next, cands)
	}

	e.logger.WithFields(logrus.Fields{
		"formation":  next.Formation,
		"candidates": len(cands),
		"bench":      len(next.Bench),
	}).Debug("Applied optimal lineup")

	return next, nil
}

// fillBench puts the best remaining candidates on the bench. Everyone else stays a
// reserve.
func fillBench(l *Lineup, remaining []candidate) []candidate {
	ranked := rankByOverall(remaining)
	n := len(ranked)
	if n > BenchCapacity {
		n = BenchCapacity
	}
	l.Bench = ids(ranked[:n])
	return ranked[:n]
}
