package models

type ReportStatus string

const (
	ReportAvailable     ReportStatus = "available"
	ReportScouting      ReportStatus = "scouting"
	ReportSignedByRival ReportStatus = "signed_by_rival"
	ReportSigned        ReportStatus = "signed"
)

// IsTerminal reports whether no further scouting transitions are allowed.
func (s ReportStatus) IsTerminal() bool {
	return s == ReportSignedByRival || s == ReportSigned
}

// AttributeRange is the visible uncertainty interval for one attribute.
type AttributeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r AttributeRange) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

func (r AttributeRange) Width() int {
	return r.Max - r.Min
}

// ScoutingReport is a prospect under evaluation. ActualAttributes and Potentials are
// hidden ground truth; clients only ever see Public().
type ScoutingReport struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"name"`
	Age               int                       `json:"age"`
	HeightCm          int                       `json:"height_cm"`
	WeightKg          int                       `json:"weight_kg"`
	Nationality       string                    `json:"nationality"`
	ActualAttributes  Attributes                `json:"actual_attributes"`
	Potentials        Potentials                `json:"potentials"`
	AttributeRanges   map[string]AttributeRange `json:"attribute_ranges"`
	WeeksScouted      int                       `json:"weeks_scouted"`
	ScoutingStartWeek int                       `json:"scouting_start_week"`
	LastUpdatedWeek   int                       `json:"last_updated_week"`
	ContinueScouting  bool                      `json:"continue_scouting"`
	Status            ReportStatus              `json:"status"`
}

// Clone deep-copies the report so transitions never alias the caller's maps.
func (r ScoutingReport) Clone() ScoutingReport {
	out := r
	out.ActualAttributes = r.ActualAttributes.Clone()
	if r.AttributeRanges != nil {
		out.AttributeRanges = make(map[string]AttributeRange, len(r.AttributeRanges))
		for k, v := range r.AttributeRanges {
			out.AttributeRanges[k] = v
		}
	}
	return out
}

// PublicReport is what the UI is allowed to see.
type PublicReport struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"name"`
	Age               int                       `json:"age"`
	HeightCm          int                       `json:"height_cm"`
	WeightKg          int                       `json:"weight_kg"`
	Nationality       string                    `json:"nationality"`
	AttributeRanges   map[string]AttributeRange `json:"attribute_ranges"`
	WeeksScouted      int                       `json:"weeks_scouted"`
	ScoutingStartWeek int                       `json:"scouting_start_week"`
	LastUpdatedWeek   int                       `json:"last_updated_week"`
	ContinueScouting  bool                      `json:"continue_scouting"`
	Status            ReportStatus              `json:"status"`
}

func (r ScoutingReport) Public() PublicReport {
	c := r.Clone()
	return PublicReport{
		ID:                c.ID,
		Name:              c.Name,
		Age:               c.Age,
		HeightCm:          c.HeightCm,
		WeightKg:          c.WeightKg,
		Nationality:       c.Nationality,
		AttributeRanges:   c.AttributeRanges,
		WeeksScouted:      c.WeeksScouted,
		ScoutingStartWeek: c.ScoutingStartWeek,
		LastUpdatedWeek:   c.LastUpdatedWeek,
		ContinueScouting:  c.ContinueScouting,
		Status:            c.Status,
	}
}
