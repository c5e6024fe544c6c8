package lineup

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/ratings"
)

// stubRater reads ratings straight from the attribute map: "overall" for the composite
// and "pos_<POS>" for a position, falling back to overall.
type stubRater struct{}

func (stubRater) Overall(p models.Player) int {
	return p.Attributes.Get("overall")
}

func (stubRater) PositionOverall(p models.Player, position string) int {
	if v, ok := p.Attributes["pos_"+position]; ok {
		return v
	}
	return p.Attributes.Get("overall")
}

// stubDegrade scales the composite by the fitness multiplier.
func stubDegrade(p models.Player) models.Player {
	out := p.Clone()
	out.Attributes["overall"] = int(math.Round(float64(p.Attributes.Get("overall")) * ratings.FitnessMultiplier(p.MatchFitness)))
	return out
}

func newStubEngine(t *testing.T, sport models.Sport) *Engine {
	t.Helper()
	e, err := NewEngine(sport, stubRater{}, stubDegrade)
	require.NoError(t, err)
	return e
}

func stubPlayer(id, position string, overall, heightCm int) models.Player {
	return models.Player{
		ID:           id,
		Name:         "Player " + id,
		Position:     position,
		HeightCm:     heightCm,
		Attributes:   models.Attributes{"overall": overall},
		MatchFitness: 100,
	}
}

func injure(p models.Player) models.Player {
	p.Injury = &models.Injury{Type: "hamstring", WeeksRemaining: 3}
	return p
}

// assertPartition checks that no player holds more than one place.
func assertPartition(t *testing.T, l Lineup) {
	t.Helper()
	seen := map[string]bool{}
	for _, id := range l.PlacedIDs() {
		require.False(t, seen[id], "player %s placed twice: %+v", id, l)
		seen[id] = true
	}
	require.LessOrEqual(t, len(l.Bench), BenchCapacity)
}

func numberedRoster(prefix string, n int, position string, topOverall int) models.Roster {
	roster := make(models.Roster, 0, n)
	for i := 0; i < n; i++ {
		roster = append(roster, stubPlayer(fmt.Sprintf("%s%02d", prefix, i+1), position, topOverall-i, 180+i))
	}
	return roster
}
