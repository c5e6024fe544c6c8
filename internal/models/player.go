package models

// Injury marks a player unavailable until WeeksRemaining reaches zero.
type Injury struct {
	Type           string `json:"type"`
	WeeksRemaining int    `json:"weeks_remaining"`
}

// Player is a roster record. The lineup engine reads it and never mutates it.
type Player struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Sport        Sport      `json:"sport"`
	Position     string     `json:"position"`
	Age          int        `json:"age"`
	HeightCm     int        `json:"height_cm"`
	WeightKg     int        `json:"weight_kg"`
	Nationality  string     `json:"nationality,omitempty"`
	Attributes   Attributes `json:"attributes"`
	MatchFitness float64    `json:"match_fitness"` // 0-100
	Injury       *Injury    `json:"injury,omitempty"`
}

func (p Player) IsInjured() bool {
	return p.Injury != nil && p.Injury.WeeksRemaining > 0
}

// IsPitcher reports whether the player's listed position is a pitching one.
func (p Player) IsPitcher() bool {
	switch p.Position {
	case "P", "SP", "RP":
		return true
	}
	return false
}

// Clone returns a deep copy so callers can transform attributes safely.
func (p Player) Clone() Player {
	out := p
	out.Attributes = p.Attributes.Clone()
	if p.Injury != nil {
		injury := *p.Injury
		out.Injury = &injury
	}
	return out
}

// Roster is the full set of players a club owns.
type Roster []Player

// Index maps player id to player.
func (r Roster) Index() map[string]Player {
	idx := make(map[string]Player, len(r))
	for _, p := range r {
		idx[p.ID] = p
	}
	return idx
}
