package lineup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/franchise-sim/internal/models"
)

func TestInjuredPlayersAreNeverPlaced(t *testing.T) {
	rosters := map[models.Sport]models.Roster{
		models.SportBasketball: basketballRoster(),
		models.SportSoccer:     soccerRoster(),
		models.SportBaseball:   baseballRoster(),
	}

	for sport, roster := range rosters {
		t.Run(string(sport), func(t *testing.T) {
			e := newStubEngine(t, sport)
			hurt := stubPlayer("hurt", "P", 99, 200)
			hurt.Attributes["pos_P"] = 99
			hurt.Attributes["pos_GK"] = 99
			roster := append(append(models.Roster{}, roster...), injure(hurt))

			l, err := e.ApplyOptimalLineup(Lineup{}, roster)
			require.NoError(t, err)
			assert.NotContains(t, l.PlacedIDs(), "hurt")

			if len(l.Bench) == BenchCapacity {
				l, err = e.RemoveFromBench(l, l.Bench[0])
				require.NoError(t, err)
			}
			before := l.Clone()

			_, err = e.SetStarter(l, roster, 0, "hurt")
			assert.ErrorIs(t, err, ErrInjuredPlayer)
			_, err = e.AddToBench(l, roster, "hurt")
			assert.ErrorIs(t, err, ErrInjuredPlayer)
			_, err = e.MoveToBench(l, roster, "hurt")
			assert.ErrorIs(t, err, ErrInjuredPlayer)
			_, err = e.SetFullLineup(l, roster, Assignment{Starters: append([]string{"hurt"}, l.Starters[1:]...)})
			assert.ErrorIs(t, err, ErrInjuredPlayer)
			_, err = e.Swap(l, roster, SlotRef{Kind: KindBench, Index: 0}, SlotRef{Kind: KindReserve, PlayerID: "hurt"})
			assert.ErrorIs(t, err, ErrInjuredPlayer)

			if sport == models.SportBaseball {
				_, err = e.SetBullpenRole(l, roster, RoleCloser, "hurt")
				assert.ErrorIs(t, err, ErrInjuredPlayer)
				_, err = e.SetStartingPitcher(l, roster, "hurt")
				assert.ErrorIs(t, err, ErrInjuredPlayer)
			}

			assert.Equal(t, before, l)

			injured := e.Injured(l, roster)
			require.Len(t, injured, 1)
			assert.Equal(t, "hurt", injured[0].ID)
			for _, lp := range e.Reserves(l, roster) {
				assert.NotEqual(t, "hurt", lp.ID)
			}
		})
	}
}

func TestInjuryAfterSelectionInvalidatesLineup(t *testing.T) {
	e := newStubEngine(t, models.SportSoccer)
	roster := soccerRoster()
	l := soccerLineup(t, e, roster)
	require.True(t, e.IsValidLineup(l, roster))

	for i := range roster {
		if roster[i].ID == "gk" {
			roster[i] = injure(roster[i])
		}
	}

	assert.False(t, e.IsValidLineup(l, roster))
	for _, lp := range e.Starters(l, roster) {
		assert.NotEqual(t, "gk", lp.ID)
	}
	injured := e.Injured(l, roster)
	require.Len(t, injured, 1)
	assert.Equal(t, "gk", injured[0].ID)

	// a swap would put the keeper on the bench, so it is refused
	_, err := e.Swap(l, roster, SlotRef{Kind: KindStarter, Index: 0}, SlotRef{Kind: KindBench, PlayerID: "s11"})
	assert.ErrorIs(t, err, ErrInjuredPlayer)

	// replacing the keeper outright drops the keeper to the reserves instead
	replaced, err := e.SetStarter(l, roster, 0, "s11")
	require.NoError(t, err)
	assert.Equal(t, "s11", replaced.Starters[0])
	assert.NotContains(t, replaced.PlacedIDs(), "gk")
	assert.Equal(t, 90, replaced.Minutes["s11"])
	assert.True(t, e.IsValidLineup(replaced, roster))
}

func TestPrune(t *testing.T) {
	e := newStubEngine(t, models.SportBaseball)
	roster := baseballRoster()
	l := baseballLineup(t, e, roster)

	smaller := models.Roster{}
	for _, p := range roster {
		if p.ID != "sp1" && p.ID != "f_C" && p.ID != "util" {
			smaller = append(smaller, p)
		}
	}

	pruned := Prune(l, smaller)
	assert.Equal(t, "", pruned.StartingPitcher)
	assert.Equal(t, "", pruned.Starters[8])
	assert.NotContains(t, pruned.Bench, "util")
	assert.NotContains(t, pruned.Positions, "f_C")
	assert.Equal(t, "sp1", l.StartingPitcher, "input untouched")
}

func TestLineupRoundTripsThroughJSON(t *testing.T) {
	e := newStubEngine(t, models.SportBaseball)
	roster := baseballRoster()
	l := baseballLineup(t, e, roster)

	data, err := json.Marshal(l)
	require.NoError(t, err)
	var decoded Lineup
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, l.Starters, decoded.Starters)
	assert.Equal(t, l.Bullpen, decoded.Bullpen)
	assert.Equal(t, l.Positions, decoded.Positions)
	assert.True(t, e.IsValidLineup(decoded, roster))
}
