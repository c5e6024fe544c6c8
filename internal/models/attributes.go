package models

import "sort"

// Category groups attributes under one potential ceiling.
type Category string

const (
	CategoryPhysical  Category = "physical"
	CategoryMental    Category = "mental"
	CategoryTechnical Category = "technical"
)

// NeutralAttribute is returned for attributes a player does not carry.
const NeutralAttribute = 30

const (
	MinAttribute = 1
	MaxAttribute = 99
)

var attributeCategories = map[string]Category{
	"grip_strength": CategoryPhysical,
	"arm_strength":  CategoryPhysical,
	"back_strength": CategoryPhysical,
	"leg_strength":  CategoryPhysical,
	"agility":       CategoryPhysical,
	"acceleration":  CategoryPhysical,
	"top_speed":     CategoryPhysical,
	"jumping":       CategoryPhysical,
	"reactions":     CategoryPhysical,
	"stamina":       CategoryPhysical,
	"balance":       CategoryPhysical,
	"flexibility":   CategoryPhysical,

	"awareness":     CategoryMental,
	"creativity":    CategoryMental,
	"determination": CategoryMental,
	"bravery":       CategoryMental,
	"leadership":    CategoryMental,
	"composure":     CategoryMental,
	"patience":      CategoryMental,
	"teamwork":      CategoryMental,

	"hand_eye_coordination": CategoryTechnical,
	"throw_accuracy":        CategoryTechnical,
	"form_technique":        CategoryTechnical,
	"finesse":               CategoryTechnical,
	"deception":             CategoryTechnical,
	"technique":             CategoryTechnical,
	"footwork":              CategoryTechnical,
	"ball_control":          CategoryTechnical,
}

var attributeNames = func() []string {
	names := make([]string, 0, len(attributeCategories))
	for name := range attributeCategories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// AttributeNames lists every attribute in a stable (alphabetical) order.
func AttributeNames() []string {
	out := make([]string, len(attributeNames))
	copy(out, attributeNames)
	return out
}

// IsPhysical reports whether an attribute degrades with match fitness.
func IsPhysical(name string) bool {
	return attributeCategories[name] == CategoryPhysical
}

// Attributes maps attribute name to a 1-99 value.
type Attributes map[string]int

// Get returns the value or NeutralAttribute when missing.
func (a Attributes) Get(name string) int {
	if v, ok := a[name]; ok {
		return v
	}
	return NeutralAttribute
}

func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// ClampAttribute bounds v to [MinAttribute, MaxAttribute].
func ClampAttribute(v int) int {
	if v < MinAttribute {
		return MinAttribute
	}
	if v > MaxAttribute {
		return MaxAttribute
	}
	return v
}

// Potentials are the hidden per-category ceilings of a youth player.
type Potentials struct {
	Physical  int `json:"physical"`
	Mental    int `json:"mental"`
	Technical int `json:"technical"`
}

func (p Potentials) Values() []float64 {
	return []float64{float64(p.Physical), float64(p.Mental), float64(p.Technical)}
}
