package ratings

import (
	"math"

	"github.com/stitts-dev/franchise-sim/internal/models"
)

// FitnessMultiplier scales physical attributes: 1.0 at full fitness, 0.5 when exhausted.
func FitnessMultiplier(matchFitness float64) float64 {
	f := math.Max(0, math.Min(100, matchFitness))
	return 0.5 + f/200
}

// ApplyFitnessDegradation returns a copy of p with physical attributes scaled by its
// match fitness. The input is not modified.
func ApplyFitnessDegradation(p models.Player) models.Player {
	out := p.Clone()
	mult := FitnessMultiplier(p.MatchFitness)
	for name, v := range out.Attributes {
		if models.IsPhysical(name) {
			out.Attributes[name] = models.ClampAttribute(int(math.Round(float64(v) * mult)))
		}
	}
	return out
}
