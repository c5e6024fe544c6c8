package ratings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/franchise-sim/internal/models"
)

func uniformPlayer(value int, position string) models.Player {
	attrs := make(models.Attributes)
	for _, name := range models.AttributeNames() {
		attrs[name] = value
	}
	return models.Player{ID: "p1", Position: position, Attributes: attrs, MatchFitness: 100}
}

func TestFitnessMultiplier(t *testing.T) {
	assert.InDelta(t, 1.0, FitnessMultiplier(100), 1e-9)
	assert.InDelta(t, 0.75, FitnessMultiplier(50), 1e-9)
	assert.InDelta(t, 0.5, FitnessMultiplier(0), 1e-9)
	assert.InDelta(t, 0.5, FitnessMultiplier(-20), 1e-9)
	assert.InDelta(t, 1.0, FitnessMultiplier(140), 1e-9)
}

func TestApplyFitnessDegradation(t *testing.T) {
	p := models.Player{
		ID:           "p1",
		MatchFitness: 50,
		Attributes: models.Attributes{
			"top_speed":    80, // physical
			"awareness":    80, // mental
			"technique":    80, // technical
			"leg_strength": 1,
		},
	}

	degraded := ApplyFitnessDegradation(p)

	assert.Equal(t, 60, degraded.Attributes["top_speed"])
	assert.Equal(t, 80, degraded.Attributes["awareness"])
	assert.Equal(t, 80, degraded.Attributes["technique"])
	assert.Equal(t, 1, degraded.Attributes["leg_strength"], "never drops below the attribute floor")

	// Input untouched
	assert.Equal(t, 80, p.Attributes["top_speed"])
}

func TestSportRater_UniformAttributes(t *testing.T) {
	for _, sport := range []models.Sport{models.SportBasketball, models.SportSoccer, models.SportBaseball} {
		r := ForSport(sport)
		require.NotNil(t, r)
		p := uniformPlayer(64, "")
		for _, pos := range r.Positions() {
			assert.Equal(t, 64, r.PositionOverall(p, pos), "%s %s", sport, pos)
		}
		assert.Equal(t, 64, r.Overall(p))
	}
	assert.Nil(t, ForSport("cricket"))
}

func TestSportRater_Aliases(t *testing.T) {
	r := ForSport(models.SportBaseball)
	p := uniformPlayer(40, "SP")
	p.Attributes["arm_strength"] = 90
	p.Attributes["throw_accuracy"] = 90

	assert.Equal(t, r.PositionOverall(p, "P"), r.PositionOverall(p, "SP"))
	assert.Equal(t, r.PositionOverall(p, "P"), r.Overall(p))
	assert.Greater(t, r.PositionOverall(p, "P"), r.PositionOverall(p, "DH"))
}

func TestSportRater_MissingAttributesAreNeutral(t *testing.T) {
	r := ForSport(models.SportSoccer)
	p := models.Player{ID: "empty", Position: "ST"}
	assert.Equal(t, models.NeutralAttribute, r.Overall(p))
	assert.Equal(t, models.NeutralAttribute, r.PositionOverall(p, "unknown"))
}

func TestSportRater_BestPosition(t *testing.T) {
	r := ForSport(models.SportBaseball)
	p := uniformPlayer(40, "")
	p.Attributes["arm_strength"] = 90
	p.Attributes["throw_accuracy"] = 90

	assert.Equal(t, "P", r.BestPosition(p))
	assert.Equal(t, r.PositionOverall(p, "P"), r.Overall(p), "unlisted position rates at the best one")

	// Uniform attributes tie everywhere; the first sorted position wins.
	assert.Equal(t, "1B", r.BestPosition(uniformPlayer(50, "")))
}
