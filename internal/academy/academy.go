// Package academy tracks signed youth prospects from signing to promotion or release.
package academy

import (
	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/scouting"
)

// ProspectWeeklyCost is the fixed upkeep of one academy place (100,000 a year).
const ProspectWeeklyCost = 1923

// MaxProspectAge is the age at which an active prospect must be promoted or released.
const MaxProspectAge = scouting.MaxProspectAge

var (
	ErrReportNotSignable = models.Rejection("report is no longer available to sign")
	ErrProspectNotActive = models.Rejection("prospect is not active")
)

// SignProspectToAcademy builds a prospect from a report. The report itself is not
// touched; removing it from the scouting pool is the caller's job. Capacity is not
// checked here, see CanSignProspect.
func SignProspectToAcademy(report models.ScoutingReport, week int) (models.AcademyProspect, error) {
	if report.Status.IsTerminal() {
		return models.AcademyProspect{}, ErrReportNotSignable
	}

	return models.AcademyProspect{
		ID:             report.ID,
		Name:           report.Name,
		Age:            report.Age,
		HeightCm:       report.HeightCm,
		WeightKg:       report.WeightKg,
		Nationality:    report.Nationality,
		Attributes:     report.ActualAttributes.Clone(),
		Potentials:     report.Potentials,
		SignedWeek:     week,
		YearsInAcademy: 0,
		WeeklyCost:     ProspectWeeklyCost,
		Status:         models.ProspectActive,
	}, nil
}

// ActiveCount counts prospects holding an academy slot.
func ActiveCount(prospects []models.AcademyProspect) int {
	n := 0
	for _, p := range prospects {
		if p.IsActive() {
			n++
		}
	}
	return n
}

func CanSignProspect(prospects []models.AcademyProspect, capacity int) bool {
	return ActiveCount(prospects) < capacity
}

func transition(p models.AcademyProspect, to models.ProspectStatus) (models.AcademyProspect, error) {
	if !p.IsActive() {
		return p, ErrProspectNotActive
	}
	next := p
	next.Attributes = p.Attributes.Clone()
	next.Status = to
	return next, nil
}

// PromoteProspect moves an active prospect to the senior roster.
func PromoteProspect(p models.AcademyProspect) (models.AcademyProspect, error) {
	return transition(p, models.ProspectPromoted)
}

// ReleaseProspect lets an active prospect go.
func ReleaseProspect(p models.AcademyProspect) (models.AcademyProspect, error) {
	return transition(p, models.ProspectReleased)
}

// AdvanceProspectAge ages an active prospect by one season.
func AdvanceProspectAge(p models.AcademyProspect) (models.AcademyProspect, error) {
	if !p.IsActive() {
		return p, ErrProspectNotActive
	}
	next := p
	next.Attributes = p.Attributes.Clone()
	next.Age++
	next.YearsInAcademy++
	return next, nil
}

// AdvanceAges ages every active prospect and leaves the rest as they are.
func AdvanceAges(prospects []models.AcademyProspect) []models.AcademyProspect {
	out := make([]models.AcademyProspect, 0, len(prospects))
	for _, p := range prospects {
		if next, err := AdvanceProspectAge(p); err == nil {
			p = next
		}
		out = append(out, p)
	}
	return out
}

// GetProspectsNeedingAction returns active prospects at or over the maximum age.
func GetProspectsNeedingAction(prospects []models.AcademyProspect) []models.AcademyProspect {
	out := []models.AcademyProspect{}
	for _, p := range prospects {
		if p.IsActive() && p.Age >= MaxProspectAge {
			out = append(out, p)
		}
	}
	return out
}

// GetAcademyInfo is recomputed from the active prospects on every call.
func GetAcademyInfo(prospects []models.AcademyProspect, academyBudget int64) models.AcademyInfo {
	total := scouting.CalculateAcademyCapacity(academyBudget)
	info := models.AcademyInfo{TotalSlots: total}
	for _, p := range prospects {
		if !p.IsActive() {
			continue
		}
		info.UsedSlots++
		info.WeeklyMaintenanceCost += p.WeeklyCost
	}
	info.AvailableSlots = total - info.UsedSlots
	if info.AvailableSlots < 0 {
		info.AvailableSlots = 0
	}
	return info
}
