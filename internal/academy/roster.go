package academy

import (
	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/ratings"
)

// ErrProspectNotPromoted is returned when converting a prospect that never left the academy.
var ErrProspectNotPromoted = models.Rejection("prospect has not been promoted")

// ToRosterPlayer turns a promoted prospect into a senior player at full fitness. The
// listed position is the prospect's best one for the sport.
func ToRosterPlayer(p models.AcademyProspect, sport models.Sport) (models.Player, error) {
	if p.Status != models.ProspectPromoted {
		return models.Player{}, ErrProspectNotPromoted
	}

	player := models.Player{
		ID:           p.ID,
		Name:         p.Name,
		Sport:        sport,
		Age:          p.Age,
		HeightCm:     p.HeightCm,
		WeightKg:     p.WeightKg,
		Nationality:  p.Nationality,
		Attributes:   p.Attributes.Clone(),
		MatchFitness: 100,
	}
	if rater := ratings.ForSport(sport); rater != nil {
		player.Position = rater.BestPosition(player)
	}
	return player, nil
}
