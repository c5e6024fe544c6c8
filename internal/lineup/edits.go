package lineup

import (
	"github.com/stitts-dev/franchise-sim/internal/models"
)

// swapPairs lists the slot kinds that may trade occupants, in either order.
var swapPairs = map[[2]SlotKind]bool{
	{KindStarter, KindStarter}: true,
	{KindStarter, KindBench}:   true,
	{KindBench, KindReserve}:   true,
	{KindBullpen, KindBullpen}: true,
	{KindBullpen, KindStarter}: true,
	{KindBullpen, KindPitcher}: true,
	{KindPitcher, KindStarter}: true,
}

func canSwap(a, b SlotKind) bool {
	return swapPairs[[2]SlotKind{a, b}] || swapPairs[[2]SlotKind{b, a}]
}

func findPlayer(roster models.Roster, playerID string) (models.Player, bool) {
	for _, p := range roster {
		if p.ID == playerID {
			return p, true
		}
	}
	return models.Player{}, false
}

// placeable rejects players that are unknown or injured.
func placeable(roster models.Roster, playerID string) error {
	p, ok := findPlayer(roster, playerID)
	if !ok {
		return ErrUnknownPlayer
	}
	if p.IsInjured() {
		return ErrInjuredPlayer
	}
	return nil
}

func checkSlot(l Lineup, slot int) error {
	if slot < 0 || slot >= len(l.Starters) {
		return ErrSlotOutOfRange
	}
	return nil
}

// openDefensivePosition is the first fielding position no batter currently holds.
func openDefensivePosition(l Lineup) string {
	held := map[string]bool{}
	for _, id := range l.Starters {
		if id != "" {
			held[l.Positions[id]] = true
		}
	}
	for _, pos := range baseballDefense {
		if !held[pos] {
			return pos
		}
	}
	return ""
}

// rolePosition is the defensive position that belongs to a place rather than a player.
func (e *Engine) rolePosition(l Lineup, kind SlotKind, playerID string) string {
	if e.sport != models.SportBaseball {
		return ""
	}
	switch kind {
	case KindStarter:
		return l.Positions[playerID]
	case KindPitcher:
		return PitcherPosition
	}
	return ""
}

// occupant resolves a ref to the player sitting there.
func (e *Engine) occupant(l Lineup, roster models.Roster, ref SlotRef) (string, error) {
	baseball := e.sport == models.SportBaseball
	switch ref.Kind {
	case KindStarter:
		if err := checkSlot(l, ref.Index); err != nil {
			return "", err
		}
		if l.Starters[ref.Index] == "" {
			return "", ErrEmptySlot
		}
		return l.Starters[ref.Index], nil
	case KindPitcher:
		if !baseball {
			return "", ErrIncompatibleSwap
		}
		if l.StartingPitcher == "" {
			return "", ErrEmptySlot
		}
		return l.StartingPitcher, nil
	case KindBullpen:
		if !baseball {
			return "", ErrIncompatibleSwap
		}
		if ref.Index < 0 || ref.Index >= len(l.Bullpen) {
			return "", ErrSlotOutOfRange
		}
		if l.Bullpen[ref.Index] == "" {
			return "", ErrEmptySlot
		}
		return l.Bullpen[ref.Index], nil
	case KindBench:
		id := ref.PlayerID
		if id == "" && ref.Index >= 0 && ref.Index < len(l.Bench) {
			id = l.Bench[ref.Index]
		}
		if kind, _ := l.Locate(id); id == "" || kind != KindBench {
			return "", ErrNotOnBench
		}
		return id, nil
	case KindReserve:
		if _, ok := findPlayer(roster, ref.PlayerID); !ok {
			return "", ErrUnknownPlayer
		}
		if kind, _ := l.Locate(ref.PlayerID); kind != KindReserve {
			return "", ErrAlreadyPlaced
		}
		return ref.PlayerID, nil
	}
	return "", ErrIncompatibleSwap
}

// put seats incoming where outgoing used to be.
func put(l *Lineup, ref SlotRef, outgoing, incoming string) {
	switch ref.Kind {
	case KindStarter:
		l.Starters[ref.Index] = incoming
	case KindPitcher:
		l.StartingPitcher = incoming
	case KindBullpen:
		l.Bullpen[ref.Index] = incoming
	case KindBench:
		for i, id := range l.Bench {
			if id == outgoing {
				l.Bench[i] = incoming
			}
		}
	}
}

// Swap exchanges the occupants of two places. The defensive position, bullpen role or
// minutes of each place go with the place to its new occupant. Two batting slots swap
// order only; fielders keep their positions.
func (e *Engine) Swap(l Lineup, roster models.Roster, a, b SlotRef) (Lineup, error) {
	return e.swap(l, e.normalize(l), roster, a, b)
}

func (e *Engine) swap(orig, cur Lineup, roster models.Roster, a, b SlotRef) (Lineup, error) {
	if !canSwap(a.Kind, b.Kind) {
		return orig, ErrIncompatibleSwap
	}
	occA, err := e.occupant(cur, roster, a)
	if err != nil {
		return orig, err
	}
	occB, err := e.occupant(cur, roster, b)
	if err != nil {
		return orig, err
	}
	if occA == occB {
		return orig, ErrSameSlot
	}
	if a.Kind == KindStarter && b.Kind == KindStarter {
		return e.swapStarters(orig, cur, a.Index, b.Index)
	}

	// whoever leaves the reserve list must be fit to play
	if b.Kind != KindReserve {
		if err := placeable(roster, occA); err != nil {
			return orig, err
		}
	}
	if a.Kind != KindReserve {
		if err := placeable(roster, occB); err != nil {
			return orig, err
		}
	}

	posA, posB := e.rolePosition(cur, a.Kind, occA), e.rolePosition(cur, b.Kind, occB)
	minA, hasMinA := cur.Minutes[occA]
	minB, hasMinB := cur.Minutes[occB]

	next := cur.Clone()
	put(&next, a, occA, occB)
	put(&next, b, occB, occA)

	delete(next.Positions, occA)
	delete(next.Positions, occB)
	if posA != "" {
		next.Positions[occB] = posA
	}
	if posB != "" {
		next.Positions[occA] = posB
	}

	delete(next.Minutes, occA)
	delete(next.Minutes, occB)
	if hasMinA && a.Kind != KindReserve {
		next.Minutes[occB] = minA
	}
	if hasMinB && b.Kind != KindReserve {
		next.Minutes[occA] = minB
	}

	return next, nil
}

// SwapStarters exchanges two starter slots. Either slot may be empty, not both.
func (e *Engine) SwapStarters(l Lineup, a, b int) (Lineup, error) {
	return e.swapStarters(l, e.normalize(l), a, b)
}

func (e *Engine) swapStarters(orig, cur Lineup, a, b int) (Lineup, error) {
	if checkSlot(cur, a) != nil || checkSlot(cur, b) != nil {
		return orig, ErrSlotOutOfRange
	}
	if a == b {
		return orig, ErrSameSlot
	}
	if cur.Starters[a] == "" && cur.Starters[b] == "" {
		return orig, ErrEmptySlot
	}
	next := cur.Clone()
	next.Starters[a], next.Starters[b] = next.Starters[b], next.Starters[a]
	return next, nil
}

// SwapBattingOrder exchanges two batting slots. Defensive positions stay with the
// players.
func (e *Engine) SwapBattingOrder(l Lineup, a, b int) (Lineup, error) {
	if e.sport != models.SportBaseball {
		return l, ErrUnsupported
	}
	return e.SwapStarters(l, a, b)
}

// SetStarter seats a player in a starter slot. A player already placed elsewhere
// trades places with the slot's occupant. A reserve, or anyone replacing an injured
// occupant, takes the slot outright and the displaced player drops to the reserves.
func (e *Engine) SetStarter(l Lineup, roster models.Roster, slot int, playerID string) (Lineup, error) {
	cur := e.normalize(l)
	if err := checkSlot(cur, slot); err != nil {
		return l, err
	}
	if err := placeable(roster, playerID); err != nil {
		return l, err
	}

	kind, idx := cur.Locate(playerID)
	if kind == KindStarter && idx == slot {
		return l, ErrAlreadyPlaced
	}

	displaced := cur.Starters[slot]
	if displaced != "" && kind != KindReserve && placeable(roster, displaced) == nil {
		from := SlotRef{Kind: kind, Index: idx, PlayerID: playerID}
		return e.swap(l, cur, roster, SlotRef{Kind: KindStarter, Index: slot}, from)
	}

	next := cur.Clone()

	pos := ""
	if e.sport == models.SportBaseball {
		switch {
		case displaced != "":
			pos = cur.Positions[displaced]
		case kind == KindStarter:
			pos = cur.Positions[playerID]
		default:
			pos = openDefensivePosition(cur)
		}
	}

	minutes, hasMinutes := cur.Minutes[playerID]
	if displaced != "" {
		minutes, hasMinutes = cur.Minutes[displaced]
		next.toReserve(displaced)
	}

	next.vacate(playerID)
	delete(next.Positions, playerID)
	delete(next.Minutes, playerID)
	next.Starters[slot] = playerID
	if hasMinutes {
		next.Minutes[playerID] = minutes
	}
	if pos != "" {
		next.Positions[playerID] = pos
	}
	return next, nil
}

// MoveToBench takes a player from anywhere in the lineup, or from the reserves, and
// adds it to the end of the bench. The place it leaves stays empty.
func (e *Engine) MoveToBench(l Lineup, roster models.Roster, playerID string) (Lineup, error) {
	cur := e.normalize(l)
	if err := placeable(roster, playerID); err != nil {
		return l, err
	}
	if kind, _ := cur.Locate(playerID); kind == KindBench {
		return l, ErrAlreadyOnBench
	}
	if len(cur.Bench) >= BenchCapacity {
		return l, ErrBenchFull
	}

	next := cur.Clone()
	next.vacate(playerID)
	delete(next.Positions, playerID)
	next.Bench = append(next.Bench, playerID)
	return next, nil
}

// AddToBench promotes a reserve to the bench.
func (e *Engine) AddToBench(l Lineup, roster models.Roster, playerID string) (Lineup, error) {
	if err := placeable(roster, playerID); err != nil {
		return l, err
	}
	switch kind, _ := l.Locate(playerID); kind {
	case KindReserve:
		return e.MoveToBench(l, roster, playerID)
	case KindBench:
		return l, ErrAlreadyOnBench
	default:
		return l, ErrAlreadyPlaced
	}
}

// RemoveFromBench sends a bench player back to the reserves.
func (e *Engine) RemoveFromBench(l Lineup, playerID string) (Lineup, error) {
	cur := e.normalize(l)
	if kind, _ := cur.Locate(playerID); kind != KindBench {
		return l, ErrNotOnBench
	}
	next := cur.Clone()
	next.toReserve(playerID)
	return next, nil
}

// SetFullLineup replaces every starter at once. Starters that are left out drop to
// the reserves and minutes are reallocated from the default template.
func (e *Engine) SetFullLineup(l Lineup, roster models.Roster, a Assignment) (Lineup, error) {
	cur := e.normalize(l)
	if len(a.Starters) != len(cur.Starters) {
		return l, ErrWrongSize
	}

	chosen := map[string]bool{}
	for _, id := range a.Starters {
		if id == "" {
			return l, ErrEmptySlot
		}
		if chosen[id] {
			return l, ErrDuplicatePlayer
		}
		if err := placeable(roster, id); err != nil {
			return l, err
		}
		chosen[id] = true
	}

	baseball := e.sport == models.SportBaseball
	if baseball {
		if a.StartingPitcher == "" {
			return l, ErrEmptySlot
		}
		if chosen[a.StartingPitcher] {
			return l, ErrDuplicatePlayer
		}
		if err := placeable(roster, a.StartingPitcher); err != nil {
			return l, err
		}
		for _, id := range a.Starters {
			if !isDefensivePosition(a.Positions[id]) {
				return l, ErrUnknownPosition
			}
		}
		chosen[a.StartingPitcher] = true
	}

	next := cur.Clone()
	for _, id := range cur.Starters {
		if id != "" && !chosen[id] {
			next.toReserve(id)
		}
	}
	if cur.StartingPitcher != "" && !chosen[cur.StartingPitcher] {
		next.toReserve(cur.StartingPitcher)
	}
	for id := range chosen {
		next.vacate(id)
		delete(next.Positions, id)
	}

	next.Starters = append([]string(nil), a.Starters...)
	if baseball {
		next.StartingPitcher = a.StartingPitcher
		next.Positions[a.StartingPitcher] = PitcherPosition
		for _, id := range a.Starters {
			next.Positions[id] = a.Positions[id]
		}
	} else {
		next.Minutes = e.defaultMinutes(next, roster)
	}
	return next, nil
}
