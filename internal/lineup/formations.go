package lineup

import (
	"sort"

	"github.com/stitts-dev/franchise-sim/internal/models"
)

// Basketball slots run guard-most to big-most; auto-fill relies on that order when it
// places starters by height.
var basketballFormations = map[string][]string{
	"standard":    {"PG", "SG", "SF", "PF", "C"},
	"small_ball":  {"PG", "SG", "SG", "SF", "PF"},
	"twin_towers": {"PG", "SF", "PF", "C", "C"},
}

var soccerFormations = map[string][]string{
	"4-4-2":   {"GK", "RB", "CB", "CB", "LB", "RM", "CM", "CM", "LM", "ST", "ST"},
	"4-3-3":   {"GK", "RB", "CB", "CB", "LB", "CM", "CDM", "CM", "RW", "ST", "LW"},
	"3-5-2":   {"GK", "CB", "CB", "CB", "RWB", "CM", "CDM", "CM", "LWB", "ST", "ST"},
	"4-2-3-1": {"GK", "RB", "CB", "CB", "LB", "CDM", "CDM", "RW", "CAM", "LW", "ST"},
}

// baseballDefense is also the greedy fill order after the starting pitcher.
var baseballDefense = []string{"C", "1B", "2B", "SS", "3B", "LF", "CF", "RF", "DH"}

var baseballFormations = map[string][]string{
	"standard": baseballDefense,
}

const PitcherPosition = "P"

var formationsBySport = map[models.Sport]map[string][]string{
	models.SportBasketball: basketballFormations,
	models.SportSoccer:     soccerFormations,
	models.SportBaseball:   baseballFormations,
}

var defaultFormation = map[models.Sport]string{
	models.SportBasketball: "standard",
	models.SportSoccer:     "4-4-2",
	models.SportBaseball:   "standard",
}

// starterSlots is the length of Lineup.Starters per sport.
var starterSlots = map[models.Sport]int{
	models.SportBasketball: 5,
	models.SportSoccer:     11,
	models.SportBaseball:   9,
}

// Formations lists the formation names available for a sport, sorted.
func Formations(sport models.Sport) []string {
	out := []string{}
	for name := range formationsBySport[sport] {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FormationSlots returns the position label of each slot, or false for an unknown
// formation.
func FormationSlots(sport models.Sport, formation string) ([]string, bool) {
	slots, ok := formationsBySport[sport][formation]
	if !ok {
		return nil, false
	}
	return append([]string(nil), slots...), true
}

func isDefensivePosition(pos string) bool {
	for _, p := range baseballDefense {
		if p == pos {
			return true
		}
	}
	return false
}
