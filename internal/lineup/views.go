package lineup

import (
	"gonum.org/v1/gonum/stat"

	"github.com/stitts-dev/franchise-sim/internal/models"
)

type PlayerStatus string

const (
	StatusStarter PlayerStatus = "starter"
	StatusPitcher PlayerStatus = "pitcher"
	StatusBullpen PlayerStatus = "bullpen"
	StatusBench   PlayerStatus = "bench"
	StatusReserve PlayerStatus = "reserve"
	StatusInjured PlayerStatus = "injured"
)

// LineupPlayer is a read-only projection of a roster player onto a lineup. It is
// rebuilt on every read and owns no state.
type LineupPlayer struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Position     string       `json:"position"`
	Overall      int          `json:"overall"`
	IsStarter    bool         `json:"is_starter"`
	IsInjured    bool         `json:"is_injured"`
	MatchFitness float64      `json:"match_fitness"`
	Status       PlayerStatus `json:"status"`

	// basketball and soccer
	TargetMinutes int    `json:"target_minutes,omitempty"`
	SlotIndex     *int   `json:"slot_index,omitempty"`
	SlotPosition  string `json:"slot_position,omitempty"`

	// baseball
	BattingOrderPosition int         `json:"batting_order_position,omitempty"`
	BaseballPosition     string      `json:"baseball_position,omitempty"`
	IsPitcher            bool        `json:"is_pitcher,omitempty"`
	BullpenRole          BullpenRole `json:"bullpen_role,omitempty"`
}

func (e *Engine) project(l Lineup, p models.Player) LineupPlayer {
	lp := LineupPlayer{
		ID:           p.ID,
		Name:         p.Name,
		Position:     p.Position,
		Overall:      e.rater.Overall(p),
		IsInjured:    p.IsInjured(),
		MatchFitness: p.MatchFitness,
		Status:       StatusReserve,
	}
	baseball := e.sport == models.SportBaseball
	if baseball {
		lp.IsPitcher = p.IsPitcher()
	}

	kind, idx := l.Locate(p.ID)
	switch kind {
	case KindStarter:
		lp.Status = StatusStarter
		lp.IsStarter = true
		if baseball {
			lp.BattingOrderPosition = idx + 1
		} else {
			slot := idx
			lp.SlotIndex = &slot
			if slots, ok := FormationSlots(e.sport, l.Formation); ok && idx < len(slots) {
				lp.SlotPosition = slots[idx]
			}
		}
	case KindPitcher:
		lp.Status = StatusPitcher
		lp.IsStarter = true
	case KindBullpen:
		lp.Status = StatusBullpen
		lp.BullpenRole = BullpenRoles[idx]
	case KindBench:
		lp.Status = StatusBench
	}

	if baseball {
		lp.BaseballPosition = l.Positions[p.ID]
	} else {
		lp.TargetMinutes = l.Minutes[p.ID]
	}

	// an injury outranks any place the player still holds
	if lp.IsInjured {
		lp.Status = StatusInjured
	}
	return lp
}

// Players projects the whole roster in roster order.
func (e *Engine) Players(l Lineup, roster models.Roster) []LineupPlayer {
	cur := e.normalize(l)
	out := make([]LineupPlayer, 0, len(roster))
	for _, p := range roster {
		out = append(out, e.project(cur, p))
	}
	return out
}

func (e *Engine) withStatus(l Lineup, roster models.Roster, statuses ...PlayerStatus) []LineupPlayer {
	out := []LineupPlayer{}
	for _, lp := range e.Players(l, roster) {
		for _, s := range statuses {
			if lp.Status == s {
				out = append(out, lp)
				break
			}
		}
	}
	return out
}

// Starters returns healthy starters in slot or batting order, followed by the
// starting pitcher.
func (e *Engine) Starters(l Lineup, roster models.Roster) []LineupPlayer {
	out := e.ordered(l, roster, l.Starters, StatusStarter)
	return append(out, e.ordered(l, roster, []string{l.StartingPitcher}, StatusPitcher)...)
}

func (e *Engine) ordered(l Lineup, roster models.Roster, order []string, status PlayerStatus) []LineupPlayer {
	byID := map[string]LineupPlayer{}
	for _, lp := range e.withStatus(l, roster, status) {
		byID[lp.ID] = lp
	}
	out := []LineupPlayer{}
	for _, id := range order {
		if lp, ok := byID[id]; ok {
			out = append(out, lp)
		}
	}
	return out
}

// Bench returns healthy bench players in bench order.
func (e *Engine) Bench(l Lineup, roster models.Roster) []LineupPlayer {
	return e.ordered(l, roster, l.Bench, StatusBench)
}

// Bullpen returns healthy relievers in role order.
func (e *Engine) Bullpen(l Lineup, roster models.Roster) []LineupPlayer {
	return e.ordered(l, roster, l.Bullpen, StatusBullpen)
}

func (e *Engine) Reserves(l Lineup, roster models.Roster) []LineupPlayer {
	return e.withStatus(l, roster, StatusReserve)
}

func (e *Engine) Injured(l Lineup, roster models.Roster) []LineupPlayer {
	return e.withStatus(l, roster, StatusInjured)
}

// IsValidLineup reports whether the lineup can take the field. Lineups with an injured
// or unknown starter are never valid.
func (e *Engine) IsValidLineup(l Lineup, roster models.Roster) bool {
	if len(l.Starters) != starterSlots[e.sport] {
		return false
	}
	idx := roster.Index()
	fit := func(id string) bool {
		p, ok := idx[id]
		return ok && !p.IsInjured()
	}

	seen := map[string]bool{}
	for _, id := range l.Starters {
		if id == "" || seen[id] || !fit(id) {
			return false
		}
		seen[id] = true
	}

	if e.sport != models.SportBaseball {
		return true
	}

	if l.StartingPitcher == "" || seen[l.StartingPitcher] || !fit(l.StartingPitcher) {
		return false
	}
	if l.Positions[l.StartingPitcher] != PitcherPosition {
		return false
	}
	held := map[string]int{}
	for _, id := range l.Starters {
		held[l.Positions[id]]++
	}
	for _, pos := range baseballDefense {
		if held[pos] != 1 {
			return false
		}
	}
	return len(held) == len(baseballDefense)
}

// SlotRating is one filled slot's effective rating at the slot's position.
type SlotRating struct {
	Slot     int    `json:"slot"`
	Position string `json:"position"`
	PlayerID string `json:"player_id"`
	Rating   int    `json:"rating"`
}

type FormationRatings struct {
	Formation string       `json:"formation"`
	Slots     []SlotRating `json:"slots"`
	Total     int          `json:"total"`
	Average   float64      `json:"average"`
}

// GetFormationRatings rates every filled slot on fitness-adjusted attributes. Baseball
// slots are the starting pitcher followed by the batting order at each batter's
// defensive position.
func (e *Engine) GetFormationRatings(l Lineup, roster models.Roster) FormationRatings {
	cur := e.normalize(l)
	idx := roster.Index()
	out := FormationRatings{Formation: cur.Formation, Slots: []SlotRating{}}

	rate := func(slot int, position, id string) {
		p, ok := idx[id]
		if id == "" || !ok {
			return
		}
		r := e.rater.PositionOverall(e.degrade(p), position)
		out.Slots = append(out.Slots, SlotRating{Slot: slot, Position: position, PlayerID: id, Rating: r})
		out.Total += r
	}

	if e.sport == models.SportBaseball {
		rate(0, PitcherPosition, cur.StartingPitcher)
		for i, id := range cur.Starters {
			rate(i+1, cur.Positions[id], id)
		}
	} else {
		slots, _ := FormationSlots(e.sport, cur.Formation)
		for i, id := range cur.Starters {
			if i < len(slots) {
				rate(i, slots[i], id)
			}
		}
	}

	if len(out.Slots) > 0 {
		values := make([]float64, len(out.Slots))
		for i, s := range out.Slots {
			values[i] = float64(s.Rating)
		}
		out.Average = stat.Mean(values, nil)
	}
	return out
}

// ChangeFormation switches formation. Starters keep their slot indices and take on
// the new slot positions.
func (e *Engine) ChangeFormation(l Lineup, formation string) (Lineup, error) {
	if _, ok := FormationSlots(e.sport, formation); !ok {
		return l, ErrUnknownFormation
	}
	next := e.normalize(l)
	next.Formation = formation
	return next, nil
}
