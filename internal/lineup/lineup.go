// Package lineup assigns roster players to starter slots, bench, bullpen and reserves
// for basketball, soccer and baseball.
//
// Every operation takes a Lineup by value and returns the next one. A rejected
// operation returns its input unchanged together with an error wrapping
// models.ErrRejected, so callers never observe a half-applied edit.
package lineup

import (
	"github.com/stitts-dev/franchise-sim/internal/models"
)

// BenchCapacity is the number of match-available substitutes.
const BenchCapacity = 9

var (
	ErrUnknownPlayer     = models.Rejection("player is not on the roster")
	ErrInjuredPlayer     = models.Rejection("injured players cannot be placed")
	ErrSlotOutOfRange    = models.Rejection("slot index is out of range")
	ErrBenchFull         = models.Rejection("bench is full")
	ErrAlreadyOnBench    = models.Rejection("player is already on the bench")
	ErrNotOnBench        = models.Rejection("player is not on the bench")
	ErrAlreadyPlaced     = models.Rejection("player already has a place in the lineup")
	ErrNotInLineup       = models.Rejection("player is not in the lineup")
	ErrIncompatibleSwap  = models.Rejection("these slots cannot be swapped")
	ErrEmptySlot         = models.Rejection("slot is empty")
	ErrSameSlot          = models.Rejection("source and target are the same")
	ErrDuplicatePlayer   = models.Rejection("player appears more than once")
	ErrWrongSize         = models.Rejection("wrong number of players for this sport")
	ErrUnknownFormation  = models.Rejection("unknown formation")
	ErrUnknownPosition   = models.Rejection("unknown defensive position")
	ErrUnsupported       = models.Rejection("operation is not available for this sport")
	ErrNoEligiblePlayers = models.Rejection("no healthy players on the roster")
)

// SlotKind names where a player sits in a lineup.
type SlotKind string

const (
	KindStarter SlotKind = "starter" // basketball/soccer slot, baseball batting order
	KindBench   SlotKind = "bench"
	KindReserve SlotKind = "reserve"
	KindPitcher SlotKind = "pitcher"
	KindBullpen SlotKind = "bullpen"
)

// SlotRef addresses one occupied place. Starter and bullpen refs use Index; bench and
// reserve refs use PlayerID.
type SlotRef struct {
	Kind     SlotKind `json:"kind" binding:"required"`
	Index    int      `json:"index"`
	PlayerID string   `json:"player_id,omitempty"`
}

type BullpenRole string

const (
	RoleCloser BullpenRole = "closer"
	RoleLong1  BullpenRole = "long_1"
	RoleLong2  BullpenRole = "long_2"
	RoleShort1 BullpenRole = "short_1"
	RoleShort2 BullpenRole = "short_2"
)

// BullpenRoles is the fill order of the bullpen; a role's index is its slot.
var BullpenRoles = []BullpenRole{RoleCloser, RoleLong1, RoleLong2, RoleShort1, RoleShort2}

// BullpenIndex resolves a role name to its slot.
func BullpenIndex(role BullpenRole) (int, bool) {
	for i, r := range BullpenRoles {
		if r == role {
			return i, true
		}
	}
	return -1, false
}

// Lineup is the canonical assignment state for one club. Empty slots hold "".
//
// Starters is indexed by slot: 5 basketball slots, 11 soccer slots (slot 0 is the
// goalkeeper) or the 9-man baseball batting order. Positions holds each baseball
// player's defensive position; the starting pitcher maps to "P".
type Lineup struct {
	Sport           models.Sport      `json:"sport"`
	Formation       string            `json:"formation"`
	Starters        []string          `json:"starters"`
	Bench           []string          `json:"bench"`
	Minutes         map[string]int    `json:"minutes,omitempty"`
	Positions       map[string]string `json:"positions,omitempty"`
	StartingPitcher string            `json:"starting_pitcher,omitempty"`
	Bullpen         []string          `json:"bullpen,omitempty"`
}

// Assignment is a complete manual lineup for SetFullLineup.
type Assignment struct {
	Starters        []string          `json:"starters"`
	Positions       map[string]string `json:"positions,omitempty"`
	StartingPitcher string            `json:"starting_pitcher,omitempty"`
}

// Clone deep-copies every slice and map.
func (l Lineup) Clone() Lineup {
	out := l
	out.Starters = append([]string(nil), l.Starters...)
	out.Bench = append([]string{}, l.Bench...)
	out.Bullpen = append([]string(nil), l.Bullpen...)
	if l.Minutes != nil {
		out.Minutes = make(map[string]int, len(l.Minutes))
		for k, v := range l.Minutes {
			out.Minutes[k] = v
		}
	}
	if l.Positions != nil {
		out.Positions = make(map[string]string, len(l.Positions))
		for k, v := range l.Positions {
			out.Positions[k] = v
		}
	}
	return out
}

// Locate reports where a player sits. Players not placed anywhere are reserves.
func (l Lineup) Locate(playerID string) (SlotKind, int) {
	if playerID == "" {
		return KindReserve, -1
	}
	if l.StartingPitcher == playerID {
		return KindPitcher, 0
	}
	for i, id := range l.Starters {
		if id == playerID {
			return KindStarter, i
		}
	}
	for i, id := range l.Bullpen {
		if id == playerID {
			return KindBullpen, i
		}
	}
	for i, id := range l.Bench {
		if id == playerID {
			return KindBench, i
		}
	}
	return KindReserve, -1
}

// PlacedIDs lists every player with a place, in starters, pitcher, bullpen, bench order.
func (l Lineup) PlacedIDs() []string {
	out := []string{}
	add := func(ids ...string) {
		for _, id := range ids {
			if id != "" {
				out = append(out, id)
			}
		}
	}
	add(l.Starters...)
	add(l.StartingPitcher)
	add(l.Bullpen...)
	add(l.Bench...)
	return out
}

// vacate removes a player from wherever it sits. Minutes and positions are left to
// the caller.
func (l *Lineup) vacate(playerID string) {
	kind, idx := l.Locate(playerID)
	switch kind {
	case KindStarter:
		l.Starters[idx] = ""
	case KindPitcher:
		l.StartingPitcher = ""
	case KindBullpen:
		l.Bullpen[idx] = ""
	case KindBench:
		l.Bench = append(l.Bench[:idx:idx], l.Bench[idx+1:]...)
	}
}

// toReserve vacates a player and drops everything tied to its old place.
func (l *Lineup) toReserve(playerID string) {
	l.vacate(playerID)
	delete(l.Minutes, playerID)
	delete(l.Positions, playerID)
}

// Prune drops players that are no longer on the roster.
func Prune(l Lineup, roster models.Roster) Lineup {
	idx := roster.Index()
	next := l.Clone()
	for _, id := range l.PlacedIDs() {
		if _, ok := idx[id]; !ok {
			next.toReserve(id)
		}
	}
	for id := range next.Minutes {
		if _, ok := idx[id]; !ok {
			delete(next.Minutes, id)
		}
	}
	for id := range next.Positions {
		if _, ok := idx[id]; !ok {
			delete(next.Positions, id)
		}
	}
	return next
}
