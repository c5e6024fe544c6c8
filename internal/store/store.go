// Package store persists clubs and their scouting, academy, roster and lineup state.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stitts-dev/franchise-sim/internal/lineup"
	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/pkg/database"
)

var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

func New(db *database.DB) *Store {
	return &Store{db: db.DB}
}

// Migrate creates or updates every table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// DropAll removes every table, newest first.
func (s *Store) DropAll() error {
	tables := AllModels()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := s.db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	return nil
}

// Transaction runs fn against a store bound to one database transaction.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func encode(v interface{}) (datatypes.JSON, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return datatypes.JSON(data), nil
}

func decode(payload datatypes.JSON, v interface{}) error {
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return nil
}

// upsertKeepCreated updates the listed columns on a (club_id, id) conflict so the
// original created_at survives.
func upsertKeepCreated(columns ...string) clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "club_id"}, {Name: "id"}},
		DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
	}
}

// Clubs

func (s *Store) CreateClub(ctx context.Context, club *Club) error {
	if err := s.db.WithContext(ctx).Create(club).Error; err != nil {
		return fmt.Errorf("failed to create club: %w", err)
	}
	return nil
}

func (s *Store) GetClub(ctx context.Context, id string) (*Club, error) {
	var club Club
	if err := s.db.WithContext(ctx).First(&club, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &club, nil
}

func (s *Store) ListClubs(ctx context.Context) ([]Club, error) {
	clubs := []Club{}
	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&clubs).Error; err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	return clubs, nil
}

func (s *Store) UpdateClub(ctx context.Context, club *Club) error {
	if err := s.db.WithContext(ctx).Save(club).Error; err != nil {
		return fmt.Errorf("failed to update club: %w", err)
	}
	return nil
}

// Scouting reports

func (s *Store) ListReports(ctx context.Context, clubID string) ([]models.ScoutingReport, error) {
	var records []ScoutingReportRecord
	if err := s.db.WithContext(ctx).Where("club_id = ?", clubID).Order("created_at, id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list scouting reports: %w", err)
	}
	reports := make([]models.ScoutingReport, 0, len(records))
	for _, rec := range records {
		var r models.ScoutingReport
		if err := decode(rec.Payload, &r); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func (s *Store) GetReport(ctx context.Context, clubID, id string) (models.ScoutingReport, error) {
	var rec ScoutingReportRecord
	var r models.ScoutingReport
	if err := s.db.WithContext(ctx).First(&rec, "club_id = ? AND id = ?", clubID, id).Error; err != nil {
		return r, notFound(err)
	}
	return r, decode(rec.Payload, &r)
}

func (s *Store) SaveReport(ctx context.Context, clubID string, r models.ScoutingReport) error {
	payload, err := encode(r)
	if err != nil {
		return err
	}
	rec := ScoutingReportRecord{ClubID: clubID, ID: r.ID, Status: string(r.Status), Payload: payload}
	if err := s.db.WithContext(ctx).Clauses(upsertKeepCreated("status", "payload")).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to save scouting report: %w", err)
	}
	return nil
}

func (s *Store) DeleteReport(ctx context.Context, clubID, id string) error {
	res := s.db.WithContext(ctx).Where("club_id = ? AND id = ?", clubID, id).Delete(&ScoutingReportRecord{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete scouting report: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceReports swaps a club's whole scouting pool in one transaction.
func (s *Store) ReplaceReports(ctx context.Context, clubID string, reports []models.ScoutingReport) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.db.Where("club_id = ?", clubID).Delete(&ScoutingReportRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear scouting reports: %w", err)
		}
		for _, r := range reports {
			if err := tx.SaveReport(ctx, clubID, r); err != nil {
				return err
			}
		}
		return nil
	})
}

// Academy prospects

func (s *Store) ListProspects(ctx context.Context, clubID string) ([]models.AcademyProspect, error) {
	var records []AcademyProspectRecord
	if err := s.db.WithContext(ctx).Where("club_id = ?", clubID).Order("created_at, id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list academy prospects: %w", err)
	}
	prospects := make([]models.AcademyProspect, 0, len(records))
	for _, rec := range records {
		var p models.AcademyProspect
		if err := decode(rec.Payload, &p); err != nil {
			return nil, err
		}
		prospects = append(prospects, p)
	}
	return prospects, nil
}

func (s *Store) GetProspect(ctx context.Context, clubID, id string) (models.AcademyProspect, error) {
	var rec AcademyProspectRecord
	var p models.AcademyProspect
	if err := s.db.WithContext(ctx).First(&rec, "club_id = ? AND id = ?", clubID, id).Error; err != nil {
		return p, notFound(err)
	}
	return p, decode(rec.Payload, &p)
}

// CreateProspect inserts a new academy record and fails if the id is already taken.
func (s *Store) CreateProspect(ctx context.Context, clubID string, p models.AcademyProspect) error {
	payload, err := encode(p)
	if err != nil {
		return err
	}
	rec := AcademyProspectRecord{ClubID: clubID, ID: p.ID, Status: string(p.Status), Payload: payload}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to create academy prospect: %w", err)
	}
	return nil
}

func (s *Store) SaveProspect(ctx context.Context, clubID string, p models.AcademyProspect) error {
	payload, err := encode(p)
	if err != nil {
		return err
	}
	rec := AcademyProspectRecord{ClubID: clubID, ID: p.ID, Status: string(p.Status), Payload: payload}
	if err := s.db.WithContext(ctx).Clauses(upsertKeepCreated("status", "payload")).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to save academy prospect: %w", err)
	}
	return nil
}

// Roster

func (s *Store) ListRoster(ctx context.Context, clubID string) (models.Roster, error) {
	var records []RosterPlayerRecord
	if err := s.db.WithContext(ctx).Where("club_id = ?", clubID).Order("created_at, id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	roster := make(models.Roster, 0, len(records))
	for _, rec := range records {
		var p models.Player
		if err := decode(rec.Payload, &p); err != nil {
			return nil, err
		}
		roster = append(roster, p)
	}
	return roster, nil
}

func (s *Store) SaveRosterPlayer(ctx context.Context, clubID string, p models.Player) error {
	payload, err := encode(p)
	if err != nil {
		return err
	}
	rec := RosterPlayerRecord{ClubID: clubID, ID: p.ID, Payload: payload}
	if err := s.db.WithContext(ctx).Clauses(upsertKeepCreated("payload")).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to save roster player: %w", err)
	}
	return nil
}

func (s *Store) DeleteRosterPlayer(ctx context.Context, clubID, id string) error {
	res := s.db.WithContext(ctx).Where("club_id = ? AND id = ?", clubID, id).Delete(&RosterPlayerRecord{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete roster player: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Lineups

func (s *Store) GetLineup(ctx context.Context, clubID string) (lineup.Lineup, error) {
	var rec LineupRecord
	var l lineup.Lineup
	if err := s.db.WithContext(ctx).First(&rec, "club_id = ?", clubID).Error; err != nil {
		return l, notFound(err)
	}
	return l, decode(rec.Payload, &l)
}

func (s *Store) SaveLineup(ctx context.Context, clubID string, l lineup.Lineup) error {
	payload, err := encode(l)
	if err != nil {
		return err
	}
	rec := LineupRecord{ClubID: clubID, Sport: l.Sport, Payload: payload}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "club_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"sport", "payload", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save lineup: %w", err)
	}
	return nil
}
