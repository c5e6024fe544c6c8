package lineup

import (
	"sort"
)

var (
	basketballStarterMinutes = []int{36, 34, 32, 30, 28}
	basketballBenchMinutes   = []int{28, 28, 24}
)

const soccerStarterMinutes = 90

// optimalBasketball takes the five best players and seats them by height, shortest in
// the guard-most slot.
func (e *Engine) optimalBasketball(l Lineup, cands []candidate) Lineup {
	ranked := rankByOverall(cands)
	n := len(l.Starters)
	if len(ranked) < n {
		n = len(ranked)
	}
	top := ranked[:n]

	byHeight := append([]candidate(nil), top...)
	sort.SliceStable(byHeight, func(i, j int) bool {
		if byHeight[i].player.HeightCm != byHeight[j].player.HeightCm {
			return byHeight[i].player.HeightCm < byHeight[j].player.HeightCm
		}
		return byHeight[i].player.ID < byHeight[j].player.ID
	})
	for i, c := range byHeight {
		l.Starters[i] = c.player.ID
	}

	bench := fillBench(&l, ranked[n:])

	for rank, c := range top {
		l.Minutes[c.player.ID] = basketballStarterMinutes[rank]
	}
	for rank, c := range bench {
		if rank >= len(basketballBenchMinutes) {
			break
		}
		l.Minutes[c.player.ID] = basketballBenchMinutes[rank]
	}
	return l
}

// optimalSoccer fills slots 0..10 in order with the best remaining player for each
// slot's position.
func (e *Engine) optimalSoccer(l Lineup, cands []candidate) Lineup {
	slots, _ := FormationSlots(e.sport, l.Formation)
	used := map[string]bool{}
	for i, pos := range slots {
		c, ok := e.bestAt(cands, used, pos, nil)
		if !ok {
			break
		}
		l.Starters[i] = c.player.ID
		l.Minutes[c.player.ID] = soccerStarterMinutes
		used[c.player.ID] = true
	}
	fillBench(&l, unused(cands, used))
	return l
}

// optimalBaseball picks the starting pitcher first, then the defensive positions in
// fixed order, then the bullpen from the pitchers left over. The batting order is the
// nine fielders by effective overall.
func (e *Engine) optimalBaseball(l Lineup, cands []candidate) Lineup {
	used := map[string]bool{}
	isPitcher := func(c candidate) bool { return c.player.IsPitcher() }
	notPitcher := func(c candidate) bool { return !c.player.IsPitcher() }

	pitcherPool := isPitcher
	if _, ok := e.bestAt(cands, used, PitcherPosition, isPitcher); !ok {
		pitcherPool = nil
	}
	if c, ok := e.bestAt(cands, used, PitcherPosition, pitcherPool); ok {
		l.StartingPitcher = c.player.ID
		l.Positions[c.player.ID] = PitcherPosition
		used[c.player.ID] = true
	}

	fielders := []candidate{}
	for _, pos := range baseballDefense {
		c, ok := e.bestAt(cands, used, pos, notPitcher)
		if !ok {
			// out of position players, fall back to spare pitchers
			c, ok = e.bestAt(cands, used, pos, nil)
		}
		if !ok {
			break
		}
		l.Positions[c.player.ID] = pos
		used[c.player.ID] = true
		fielders = append(fielders, c)
	}

	for i := range BullpenRoles {
		c, ok := e.bestAt(cands, used, PitcherPosition, isPitcher)
		if !ok {
			break
		}
		l.Bullpen[i] = c.player.ID
		used[c.player.ID] = true
	}

	for i, c := range rankByOverall(sortByID(fielders)) {
		l.Starters[i] = c.player.ID
	}

	fillBench(&l, unused(cands, used))
	return l
}
