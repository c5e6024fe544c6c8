// Package ratings provides the default composite and positional rating functions the
// lineup engine consumes. Match engines may supply their own Rater.
package ratings

import (
	"math"
	"sort"

	"github.com/stitts-dev/franchise-sim/internal/models"
)

// Rater turns an attribute map into sport-specific ratings.
type Rater interface {
	Overall(p models.Player) int
	PositionOverall(p models.Player, position string) int
}

type weights map[string]float64

// SportRater rates players from per-position attribute weights.
type SportRater struct {
	sport     models.Sport
	positions map[string]weights
	aliases   map[string]string
}

// ForSport returns the default rater for a sport.
func ForSport(sport models.Sport) *SportRater {
	switch sport {
	case models.SportBasketball:
		return &SportRater{sport: sport, positions: basketballWeights}
	case models.SportSoccer:
		return &SportRater{sport: sport, positions: soccerWeights, aliases: soccerAliases}
	case models.SportBaseball:
		return &SportRater{sport: sport, positions: baseballWeights, aliases: baseballAliases}
	}
	return nil
}

func (r *SportRater) Sport() models.Sport {
	return r.sport
}

func (r *SportRater) resolve(position string) (weights, bool) {
	if alias, ok := r.aliases[position]; ok {
		position = alias
	}
	w, ok := r.positions[position]
	return w, ok
}

// Positions lists the canonical positions this rater knows, sorted.
func (r *SportRater) Positions() []string {
	out := make([]string, 0, len(r.positions))
	for pos := range r.positions {
		out = append(out, pos)
	}
	sort.Strings(out)
	return out
}

// PositionOverall rates p at position. Unknown positions fall back to the player's
// overall rating.
func (r *SportRater) PositionOverall(p models.Player, position string) int {
	w, ok := r.resolve(position)
	if !ok {
		return r.Overall(p)
	}
	return weighted(p.Attributes, w)
}

// Overall rates p at its listed position, or at its best position when the listed one
// is not recognised.
func (r *SportRater) Overall(p models.Player) int {
	if w, ok := r.resolve(p.Position); ok {
		return weighted(p.Attributes, w)
	}
	return weighted(p.Attributes, r.positions[r.BestPosition(p)])
}

// BestPosition is the canonical position p rates highest at. Ties go to the position
// that sorts first.
func (r *SportRater) BestPosition(p models.Player) string {
	best, bestRating := "", -1
	for _, pos := range r.Positions() {
		if v := weighted(p.Attributes, r.positions[pos]); v > bestRating {
			best, bestRating = pos, v
		}
	}
	return best
}

func weighted(attrs models.Attributes, w weights) int {
	names := make([]string, 0, len(w))
	for name := range w {
		names = append(names, name)
	}
	sort.Strings(names)

	total, sum := 0.0, 0.0
	for _, name := range names {
		total += w[name] * float64(attrs.Get(name))
		sum += w[name]
	}
	if sum == 0 {
		return models.NeutralAttribute
	}
	return int(math.Round(total / sum))
}
