// Package scouting generates youth prospects and advances their scouting reports.
//
// A report starts each 4-week cycle as available with a wide attribute range. While the
// club keeps scouting it, every completed cycle either loses the prospect to a rival or
// narrows the ranges, down to the most precise width after 12 weeks.
package scouting

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/random"
)

const (
	MinProspectAge     = 14
	MaxProspectAge     = 17
	ScoutingCycleWeeks = 4
	MaxWeeksScouted    = 12

	BaseRivalChance          = 0.10
	HighPotentialRivalChance = 0.20
	HighPotentialThreshold   = 80.0

	MinPotential = 60
	MaxPotential = 95

	youthAttributeMin = 15
	youthAttributeMax = 45

	meanHeightInches   = 70.0
	heightStdDevInches = 4.0
	minHeightInches    = 60.0
	maxHeightInches    = 80.0
	weightVarianceLbs  = 15
)

// Seed offsets for each draw taken while generating one report.
const (
	seedAge         = 1
	seedHeight      = 2 // Box-Muller also consumes seedHeight+1
	seedWeight      = 4
	seedNationality = 5
	seedFirstName   = 6
	seedLastName    = 7
	seedAttributes  = 100
	seedPotentials  = 200

	reportSeedStride = 1000
)

var (
	ErrTerminalReport  = models.Rejection("report is signed and can no longer be scouted")
	ErrNotScouting     = models.Rejection("report is not being scouted")
	ErrFullyScouted    = models.Rejection("report is already fully scouted")
	ErrCycleIncomplete = models.Rejection("scouting cycle has not finished")
)

// Engine generates and advances reports from a seeded generator.
type Engine struct {
	gen *random.Generator
}

func NewEngine(gen *random.Generator) *Engine {
	if gen == nil {
		gen = random.Default
	}
	return &Engine{gen: gen}
}

var defaultEngine = NewEngine(random.Default)

// GenerateScoutingReport creates a fresh, unscouted prospect.
func (e *Engine) GenerateScoutingReport(id string, week int, qualityMultiplier float64, seed int64) models.ScoutingReport {
	heightIn := e.gen.Normal(meanHeightInches, heightStdDevInches, seed+seedHeight)
	heightIn = math.Max(minHeightInches, math.Min(maxHeightInches, heightIn))

	weightLbs := 120 + 4.0*(heightIn-minHeightInches) +
		float64(e.gen.Int(-weightVarianceLbs, weightVarianceLbs, seed+seedWeight))

	actual := e.generateAttributes(qualityMultiplier, seed)

	name := fmt.Sprintf("%s %s",
		random.Pick(e.gen, firstNames, seed+seedFirstName),
		random.Pick(e.gen, lastNames, seed+seedLastName),
	)

	return models.ScoutingReport{
		ID:               id,
		Name:             name,
		Age:              e.gen.Int(MinProspectAge, MaxProspectAge, seed+seedAge),
		HeightCm:         int(math.Round(heightIn * 2.54)),
		WeightKg:         int(math.Round(weightLbs * 0.4536)),
		Nationality:      random.Pick(e.gen, nationalities, seed+seedNationality),
		ActualAttributes: actual,
		Potentials: models.Potentials{
			Physical:  e.gen.Int(MinPotential, MaxPotential, seed+seedPotentials),
			Mental:    e.gen.Int(MinPotential, MaxPotential, seed+seedPotentials+1),
			Technical: e.gen.Int(MinPotential, MaxPotential, seed+seedPotentials+2),
		},
		AttributeRanges:   GenerateAttributeRanges(actual, 0),
		WeeksScouted:      0,
		ScoutingStartWeek: week,
		LastUpdatedWeek:   week,
		ContinueScouting:  false,
		Status:            models.ReportAvailable,
	}
}

// attributeBand scales the youth baseline 15-45 by the quality multiplier.
func attributeBand(qualityMultiplier float64) (int, int) {
	if qualityMultiplier <= 0 {
		qualityMultiplier = 1
	}
	lo := models.ClampAttribute(int(math.Round(youthAttributeMin * qualityMultiplier)))
	hi := models.ClampAttribute(int(math.Round(youthAttributeMax * qualityMultiplier)))
	return lo, hi
}

func (e *Engine) generateAttributes(qualityMultiplier float64, seed int64) models.Attributes {
	lo, hi := attributeBand(qualityMultiplier)
	attrs := make(models.Attributes)
	for i, name := range models.AttributeNames() {
		attrs[name] = e.gen.Int(lo, hi, seed+seedAttributes+int64(i))
	}
	return attrs
}

// GenerateScoutingReports creates count reports for the cycle starting at week.
func (e *Engine) GenerateScoutingReports(week, count int, qualityMultiplier float64, seed int64) []models.ScoutingReport {
	if count <= 0 {
		return []models.ScoutingReport{}
	}
	reports := make([]models.ScoutingReport, 0, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("prospect-%d-%d", week, i+1)
		reports = append(reports, e.GenerateScoutingReport(id, week, qualityMultiplier, seed+int64(i)*reportSeedStride))
	}
	return reports
}

// RivalChance is the probability of losing the prospect during one scouting cycle.
func RivalChance(p models.Potentials) float64 {
	if stat.Mean(p.Values(), nil) > HighPotentialThreshold {
		return HighPotentialRivalChance
	}
	return BaseRivalChance
}

// AdvanceScoutingReport resolves one completed scouting cycle. The returned report is a
// new value; on rejection it equals the input.
func (e *Engine) AdvanceScoutingReport(report models.ScoutingReport, week int, seed int64) (models.ScoutingReport, error) {
	switch {
	case report.Status.IsTerminal():
		return report, ErrTerminalReport
	case !report.ContinueScouting:
		return report, ErrNotScouting
	case report.WeeksScouted >= MaxWeeksScouted:
		return report, ErrFullyScouted
	case week < report.LastUpdatedWeek+ScoutingCycleWeeks:
		return report, ErrCycleIncomplete
	}

	next := report.Clone()
	next.LastUpdatedWeek = week

	if e.gen.Float(seed) < RivalChance(report.Potentials) {
		next.Status = models.ReportSignedByRival
		next.ContinueScouting = false
		return next, nil
	}

	next.WeeksScouted += ScoutingCycleWeeks
	next.AttributeRanges = GenerateAttributeRanges(next.ActualAttributes, next.WeeksScouted)
	next.Status = models.ReportScouting

	if next.WeeksScouted >= MaxWeeksScouted {
		next.WeeksScouted = MaxWeeksScouted
		next.Status = models.ReportAvailable
		next.ContinueScouting = false
	}

	return next, nil
}

// RequestContinueScouting keeps the report in the scouting pool for the next cycle.
func RequestContinueScouting(report models.ScoutingReport) (models.ScoutingReport, error) {
	if report.Status.IsTerminal() {
		return report, ErrTerminalReport
	}
	if report.WeeksScouted >= MaxWeeksScouted {
		return report, ErrFullyScouted
	}
	next := report.Clone()
	next.ContinueScouting = true
	next.Status = models.ReportScouting
	return next, nil
}

// StopScouting returns the report to available; it keeps its current ranges.
func StopScouting(report models.ScoutingReport) (models.ScoutingReport, error) {
	if report.Status.IsTerminal() {
		return report, ErrTerminalReport
	}
	next := report.Clone()
	next.ContinueScouting = false
	next.Status = models.ReportAvailable
	return next, nil
}

// AttributeValue reads a hidden attribute, defaulting to the neutral value.
func AttributeValue(report models.ScoutingReport, attribute string) int {
	return report.ActualAttributes.Get(attribute)
}

// SelectWeighted picks one report with probability proportional to an attribute's
// actual value. Candidates are laid out lightest first (ties by input order) so the
// pick is reproducible for a given seed. Returns -1 for an empty slice.
func (e *Engine) SelectWeighted(reports []models.ScoutingReport, attribute string, seed int64) int {
	order := make([]int, len(reports))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return AttributeValue(reports[order[a]], attribute) < AttributeValue(reports[order[b]], attribute)
	})

	weights := make([]float64, len(order))
	for i, idx := range order {
		weights[i] = float64(AttributeValue(reports[idx], attribute))
	}

	picked := e.gen.WeightedIndex(weights, seed)
	if picked < 0 {
		return -1
	}
	return order[picked]
}

// GenerateScoutingReport uses the legacy generator.
func GenerateScoutingReport(id string, week int, qualityMultiplier float64, seed int64) models.ScoutingReport {
	return defaultEngine.GenerateScoutingReport(id, week, qualityMultiplier, seed)
}

// GenerateScoutingReports uses the legacy generator.
func GenerateScoutingReports(week, count int, qualityMultiplier float64, seed int64) []models.ScoutingReport {
	return defaultEngine.GenerateScoutingReports(week, count, qualityMultiplier, seed)
}

// AdvanceScoutingReport uses the legacy generator.
func AdvanceScoutingReport(report models.ScoutingReport, week int, seed int64) (models.ScoutingReport, error) {
	return defaultEngine.AdvanceScoutingReport(report, week, seed)
}
