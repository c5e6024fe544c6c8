package lineup

import (
	"github.com/stitts-dev/franchise-sim/internal/models"
)

func (e *Engine) bullpenSlot(l Lineup, role BullpenRole) (int, error) {
	if e.sport != models.SportBaseball {
		return -1, ErrUnsupported
	}
	i, ok := BullpenIndex(role)
	if !ok || i >= len(l.Bullpen) {
		return -1, ErrSlotOutOfRange
	}
	return i, nil
}

// SetBullpenRole gives a pitcher a relief role. A player who already has a role, bats
// or starts trades places with the current holder. A bench player or reserve takes
// the role outright and the previous holder drops to the reserves.
func (e *Engine) SetBullpenRole(l Lineup, roster models.Roster, role BullpenRole, playerID string) (Lineup, error) {
	cur := e.normalize(l)
	slot, err := e.bullpenSlot(cur, role)
	if err != nil {
		return l, err
	}
	if err := placeable(roster, playerID); err != nil {
		return l, err
	}

	kind, idx := cur.Locate(playerID)
	if kind == KindBullpen && idx == slot {
		return l, ErrAlreadyPlaced
	}

	holder := cur.Bullpen[slot]
	target := SlotRef{Kind: KindBullpen, Index: slot}
	if holder != "" && kind != KindReserve && kind != KindBench && placeable(roster, holder) == nil {
		return e.swap(l, cur, roster, target, SlotRef{Kind: kind, Index: idx, PlayerID: playerID})
	}

	next := cur.Clone()
	if holder != "" {
		next.toReserve(holder)
	}
	next.vacate(playerID)
	delete(next.Positions, playerID)
	next.Bullpen[slot] = playerID
	return next, nil
}

// ClearBullpenRole empties a relief role; its pitcher drops to the reserves.
func (e *Engine) ClearBullpenRole(l Lineup, role BullpenRole) (Lineup, error) {
	cur := e.normalize(l)
	slot, err := e.bullpenSlot(cur, role)
	if err != nil {
		return l, err
	}
	if cur.Bullpen[slot] == "" {
		return l, ErrEmptySlot
	}
	next := cur.Clone()
	next.toReserve(cur.Bullpen[slot])
	return next, nil
}

// SetStartingPitcher names the starting pitcher. A reliever or batter trades places
// with the current starter; anyone else replaces the starter, who drops to the
// reserves.
func (e *Engine) SetStartingPitcher(l Lineup, roster models.Roster, playerID string) (Lineup, error) {
	if e.sport != models.SportBaseball {
		return l, ErrUnsupported
	}
	cur := e.normalize(l)
	if err := placeable(roster, playerID); err != nil {
		return l, err
	}

	kind, idx := cur.Locate(playerID)
	if kind == KindPitcher {
		return l, ErrAlreadyPlaced
	}

	current := cur.StartingPitcher
	if current != "" && (kind == KindBullpen || kind == KindStarter) && placeable(roster, current) == nil {
		from := SlotRef{Kind: kind, Index: idx, PlayerID: playerID}
		return e.swap(l, cur, roster, SlotRef{Kind: KindPitcher}, from)
	}

	next := cur.Clone()
	if current != "" {
		next.toReserve(current)
	}
	next.vacate(playerID)
	next.StartingPitcher = playerID
	next.Positions[playerID] = PitcherPosition
	return next, nil
}
