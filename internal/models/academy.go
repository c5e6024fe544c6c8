package models

type ProspectStatus string

const (
	ProspectActive   ProspectStatus = "active"
	ProspectPromoted ProspectStatus = "promoted"
	ProspectReleased ProspectStatus = "released"
)

// AcademyProspect is a signed youth player. Attributes and Potentials are fixed copies
// of the report's hidden values at sign time.
type AcademyProspect struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Age            int            `json:"age"`
	HeightCm       int            `json:"height_cm"`
	WeightKg       int            `json:"weight_kg"`
	Nationality    string         `json:"nationality"`
	Attributes     Attributes     `json:"attributes"`
	Potentials     Potentials     `json:"potentials"`
	SignedWeek     int            `json:"signed_week"`
	YearsInAcademy int            `json:"years_in_academy"`
	WeeklyCost     int            `json:"weekly_cost"`
	Status         ProspectStatus `json:"status"`
}

func (p AcademyProspect) IsActive() bool {
	return p.Status == ProspectActive
}

// AcademyInfo is a derived view, never stored.
type AcademyInfo struct {
	TotalSlots            int `json:"total_slots"`
	UsedSlots             int `json:"used_slots"`
	AvailableSlots        int `json:"available_slots"`
	WeeklyMaintenanceCost int `json:"weekly_maintenance_cost"`
}
