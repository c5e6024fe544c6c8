package main

import (
	"github.com/stitts-dev/franchise-sim/internal/models"
)

// reportDoc is the YAML form of a scouting report. Hidden values are only written
// when revealed, and advance needs them to resolve a cycle.
type reportDoc struct {
	ID                string              `yaml:"id"`
	Name              string              `yaml:"name"`
	Age               int                 `yaml:"age"`
	HeightCm          int                 `yaml:"height_cm"`
	WeightKg          int                 `yaml:"weight_kg"`
	Nationality       string              `yaml:"nationality"`
	Status            models.ReportStatus `yaml:"status"`
	WeeksScouted      int                 `yaml:"weeks_scouted"`
	ScoutingStartWeek int                 `yaml:"scouting_start_week"`
	LastUpdatedWeek   int                 `yaml:"last_updated_week"`
	ContinueScouting  bool                `yaml:"continue_scouting"`
	AttributeRanges   map[string]rangeDoc `yaml:"attribute_ranges"`
	ActualAttributes  map[string]int      `yaml:"actual_attributes,omitempty"`
	Potentials        *potentialsDoc      `yaml:"potentials,omitempty"`
}

type rangeDoc struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type potentialsDoc struct {
	Physical  int `yaml:"physical"`
	Mental    int `yaml:"mental"`
	Technical int `yaml:"technical"`
}

func toDoc(r models.ScoutingReport, reveal bool) reportDoc {
	doc := reportDoc{
		ID:                r.ID,
		Name:              r.Name,
		Age:               r.Age,
		HeightCm:          r.HeightCm,
		WeightKg:          r.WeightKg,
		Nationality:       r.Nationality,
		Status:            r.Status,
		WeeksScouted:      r.WeeksScouted,
		ScoutingStartWeek: r.ScoutingStartWeek,
		LastUpdatedWeek:   r.LastUpdatedWeek,
		ContinueScouting:  r.ContinueScouting,
		AttributeRanges:   make(map[string]rangeDoc, len(r.AttributeRanges)),
	}
	for name, ar := range r.AttributeRanges {
		doc.AttributeRanges[name] = rangeDoc{Min: ar.Min, Max: ar.Max}
	}
	if reveal {
		doc.ActualAttributes = r.ActualAttributes.Clone()
		doc.Potentials = &potentialsDoc{
			Physical:  r.Potentials.Physical,
			Mental:    r.Potentials.Mental,
			Technical: r.Potentials.Technical,
		}
	}
	return doc
}

func (d reportDoc) report() models.ScoutingReport {
	r := models.ScoutingReport{
		ID:                d.ID,
		Name:              d.Name,
		Age:               d.Age,
		HeightCm:          d.HeightCm,
		WeightKg:          d.WeightKg,
		Nationality:       d.Nationality,
		Status:            d.Status,
		WeeksScouted:      d.WeeksScouted,
		ScoutingStartWeek: d.ScoutingStartWeek,
		LastUpdatedWeek:   d.LastUpdatedWeek,
		ContinueScouting:  d.ContinueScouting,
		ActualAttributes:  models.Attributes(d.ActualAttributes).Clone(),
		AttributeRanges:   make(map[string]models.AttributeRange, len(d.AttributeRanges)),
	}
	for name, ar := range d.AttributeRanges {
		r.AttributeRanges[name] = models.AttributeRange{Min: ar.Min, Max: ar.Max}
	}
	if d.Potentials != nil {
		r.Potentials = models.Potentials{
			Physical:  d.Potentials.Physical,
			Mental:    d.Potentials.Mental,
			Technical: d.Potentials.Technical,
		}
	}
	return r
}

type capacityDoc struct {
	AcademyBudget     int64   `yaml:"academy_budget"`
	ScoutingBudget    int64   `yaml:"scouting_budget"`
	AcademySlots      int     `yaml:"academy_slots"`
	ReportsPerCycle   int     `yaml:"reports_per_cycle"`
	QualityMultiplier float64 `yaml:"quality_multiplier"`
}

type advanceDoc struct {
	Week     int         `yaml:"week"`
	Advanced []string    `yaml:"advanced"`
	Lost     []string    `yaml:"lost_to_rivals"`
	Skipped  []string    `yaml:"skipped"`
	Reports  []reportDoc `yaml:"reports"`
}
