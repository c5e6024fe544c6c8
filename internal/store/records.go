package store

import (
	"time"

	"gorm.io/datatypes"

	"github.com/stitts-dev/franchise-sim/internal/models"
)

// Club is a managed franchise. Seed is the base for every generated draw the club
// makes, so a club replays identically from its creation parameters.
type Club struct {
	ID             string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name           string       `gorm:"not null" json:"name"`
	Sport          models.Sport `gorm:"type:varchar(16);not null;index" json:"sport"`
	AcademyBudget  int64        `gorm:"not null;default:0" json:"academy_budget"`
	ScoutingBudget int64        `gorm:"not null;default:0" json:"scouting_budget"`
	CurrentWeek    int          `gorm:"not null;default:0" json:"current_week"`
	Seed           int64        `gorm:"not null" json:"seed"`
	Formation      string       `gorm:"type:varchar(32)" json:"formation"`
	CycleWeek      int          `gorm:"not null;default:0" json:"cycle_week"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (Club) TableName() string {
	return "clubs"
}

// ScoutingReportRecord stores a report, hidden attributes included, as a JSON payload.
type ScoutingReportRecord struct {
	ClubID    string         `gorm:"primaryKey;type:varchar(36)"`
	ID        string         `gorm:"primaryKey;type:varchar(64)"`
	Status    string         `gorm:"type:varchar(20);not null;index"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ScoutingReportRecord) TableName() string {
	return "scouting_reports"
}

type AcademyProspectRecord struct {
	ClubID    string         `gorm:"primaryKey;type:varchar(36)"`
	ID        string         `gorm:"primaryKey;type:varchar(64)"`
	Status    string         `gorm:"type:varchar(20);not null;index"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AcademyProspectRecord) TableName() string {
	return "academy_prospects"
}

type RosterPlayerRecord struct {
	ClubID    string         `gorm:"primaryKey;type:varchar(36)"`
	ID        string         `gorm:"primaryKey;type:varchar(64)"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RosterPlayerRecord) TableName() string {
	return "roster_players"
}

// LineupRecord holds the single current lineup of a club.
type LineupRecord struct {
	ClubID    string         `gorm:"primaryKey;type:varchar(36)"`
	Sport     models.Sport   `gorm:"type:varchar(16);not null"`
	Payload   datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (LineupRecord) TableName() string {
	return "lineups"
}

// AllModels lists every table in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Club{},
		&ScoutingReportRecord{},
		&AcademyProspectRecord{},
		&RosterPlayerRecord{},
		&LineupRecord{},
	}
}
