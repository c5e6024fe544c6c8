package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/franchise-sim/internal/academy"
	"github.com/stitts-dev/franchise-sim/internal/lineup"
	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/scouting"
	"github.com/stitts-dev/franchise-sim/internal/store"
	"github.com/stitts-dev/franchise-sim/internal/websocket"
)

const (
	WeeksPerSeason = 52

	// A club's draws are spread over disjoint seed ranges per week.
	weekSeedStride    = 100_000
	cycleSeedOffset   = 0
	advanceSeedOffset = 50_000
)

var (
	ErrAcademyFull     = models.Rejection("academy has no free slots")
	ErrCycleThisWeek   = models.Rejection("a scouting cycle already started this week")
	ErrSportMismatch   = models.Rejection("player plays a different sport than the club")
	ErrDuplicateRoster = models.Rejection("player is already on the roster")
	ErrAlreadySigned   = models.Rejection("prospect is already in the academy")
)

type CreateClubRequest struct {
	Name           string `json:"name" binding:"required"`
	Sport          string `json:"sport" binding:"required"`
	AcademyBudget  int64  `json:"academy_budget"`
	ScoutingBudget int64  `json:"scouting_budget"`
	Formation      string `json:"formation"`
	Seed           *int64 `json:"seed,omitempty"`
}

// WeekSummary describes what one week advance changed.
type WeekSummary struct {
	ClubID          string   `json:"club_id"`
	Week            int      `json:"week"`
	CycleCompleted  bool     `json:"cycle_completed"`
	ReportsAdvanced []string `json:"reports_advanced"`
	LostToRivals    []string `json:"lost_to_rivals"`
	NewReports      []string `json:"new_reports"`
	SeasonRolled    bool     `json:"season_rolled"`
	ProspectsAged   int      `json:"prospects_aged"`
	NeedingAction   []string `json:"needing_action"`
}

type ClubService struct {
	*base
	scouts *scouting.Engine
	logger *logrus.Entry
}

func newClubService(b *base, scouts *scouting.Engine, log *logrus.Entry) *ClubService {
	return &ClubService{base: b, scouts: scouts, logger: log}
}

func cycleSeed(club *store.Club, week int) int64 {
	return club.Seed + int64(week)*weekSeedStride + cycleSeedOffset
}

func advanceSeed(club *store.Club, week, i int) int64 {
	return club.Seed + int64(week)*weekSeedStride + advanceSeedOffset + int64(i)
}

// CreateClub stores a new club and generates its first scouting pool.
func (s *ClubService) CreateClub(ctx context.Context, req CreateClubRequest) (*store.Club, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name is required")
	}
	sport, err := models.ParseSport(req.Sport)
	if err != nil {
		return nil, invalid("%v", err)
	}
	if req.AcademyBudget < 0 || req.ScoutingBudget < 0 {
		return nil, invalid("budgets cannot be negative")
	}

	engine, err := lineup.NewEngine(sport, nil, nil)
	if err != nil {
		return nil, invalid("%v", err)
	}
	empty, err := engine.NewLineup(req.Formation)
	if err != nil {
		return nil, invalid("unknown formation %q for %s", req.Formation, sport)
	}

	id := uuid.New()
	seed := int64(id.ID())
	if req.Seed != nil {
		seed = *req.Seed
	}

	club := &store.Club{
		ID:             id.String(),
		Name:           name,
		Sport:          sport,
		AcademyBudget:  req.AcademyBudget,
		ScoutingBudget: req.ScoutingBudget,
		Seed:           seed,
		Formation:      empty.Formation,
		CycleWeek:      0,
	}
	reports := s.generateCycle(club, 0)

	err = s.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.CreateClub(ctx, club); err != nil {
			return err
		}
		if err := tx.SaveLineup(ctx, club.ID, empty); err != nil {
			return err
		}
		return tx.ReplaceReports(ctx, club.ID, reports)
	})
	if err != nil {
		return nil, err
	}

	clubEntry(s.logger, club.ID, sport).WithFields(logrus.Fields{
		"seed":    seed,
		"reports": len(reports),
	}).Info("Created club")
	return club, nil
}

func (s *ClubService) GetClub(ctx context.Context, clubID string) (*store.Club, error) {
	return s.getClub(ctx, clubID)
}

func (s *ClubService) ListClubs(ctx context.Context) ([]store.Club, error) {
	return s.store.ListClubs(ctx)
}

func (s *ClubService) generateCycle(club *store.Club, week int) []models.ScoutingReport {
	count := scouting.CalculateReportsPerCycle(club.ScoutingBudget)
	quality := scouting.QualityMultiplier(club.ScoutingBudget)
	return s.scouts.GenerateScoutingReports(week, count, quality, cycleSeed(club, week))
}

// carryOver keeps reports still being scouted, and scouted reports for one full
// cycle after their last update. Untouched, stale and signed reports are dropped.
func carryOver(reports []models.ScoutingReport, week int) []models.ScoutingReport {
	kept := []models.ScoutingReport{}
	for _, r := range reports {
		switch {
		case r.Status.IsTerminal():
		case r.ContinueScouting:
			kept = append(kept, r)
		case r.WeeksScouted > 0 && r.LastUpdatedWeek+scouting.ScoutingCycleWeeks >= week:
			kept = append(kept, r)
		}
	}
	return kept
}

// startCycle replaces the pool with carried-over reports plus a fresh batch. Report
// ids and seeds derive from the week, so a week gets at most one cycle. Callers hold
// the club lock.
func (s *ClubService) startCycle(ctx context.Context, tx *store.Store, club *store.Club, current []models.ScoutingReport) ([]models.ScoutingReport, error) {
	week := club.CurrentWeek
	if club.CycleWeek == week {
		return nil, ErrCycleThisWeek
	}
	fresh := s.generateCycle(club, week)
	pool := append(carryOver(current, week), fresh...)
	if err := tx.ReplaceReports(ctx, club.ID, pool); err != nil {
		return nil, err
	}
	club.CycleWeek = week
	if err := tx.UpdateClub(ctx, club); err != nil {
		return nil, err
	}
	return fresh, nil
}

// StartScoutingCycle begins a new pool in the current week.
func (s *ClubService) StartScoutingCycle(ctx context.Context, clubID string) ([]models.PublicReport, error) {
	unlock := s.locks.lock(clubID)
	defer unlock()

	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	current, err := s.store.ListReports(ctx, clubID)
	if err != nil {
		return nil, err
	}

	var fresh []models.ScoutingReport
	err = s.store.Transaction(ctx, func(tx *store.Store) error {
		fresh, err = s.startCycle(ctx, tx, club, current)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.broadcast(clubID, websocket.EventScoutingUpdate, map[string]int{"new_reports": len(fresh)})
	return s.ListReports(ctx, clubID)
}

// AdvanceWeek moves the club one week forward. Each completed 4-week cycle resolves
// the scouting pool and opens a new one; each completed season ages the academy.
func (s *ClubService) AdvanceWeek(ctx context.Context, clubID string) (*WeekSummary, error) {
	unlock := s.locks.lock(clubID)
	defer unlock()

	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	club.CurrentWeek++
	week := club.CurrentWeek
	summary := &WeekSummary{
		ClubID:          clubID,
		Week:            week,
		ReportsAdvanced: []string{},
		LostToRivals:    []string{},
		NewReports:      []string{},
		NeedingAction:   []string{},
	}
	log := clubEntry(s.logger, clubID, club.Sport).WithField("week", week)

	err = s.store.Transaction(ctx, func(tx *store.Store) error {
		if week%scouting.ScoutingCycleWeeks == 0 {
			if err := s.resolveCycle(ctx, tx, club, summary); err != nil {
				return err
			}
		}
		if week%WeeksPerSeason == 0 {
			if err := s.rollSeason(ctx, tx, club, summary); err != nil {
				return err
			}
		}
		return tx.UpdateClub(ctx, club)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to advance week: %w", err)
	}

	if summary.SeasonRolled {
		s.cacheDelete(ctx, log, AcademyCacheKey(clubID))
	}
	log.WithFields(logrus.Fields{
		"advanced":    len(summary.ReportsAdvanced),
		"lost":        len(summary.LostToRivals),
		"new_reports": len(summary.NewReports),
		"aged":        summary.ProspectsAged,
	}).Info("Advanced week")

	s.broadcast(clubID, websocket.EventWeekAdvanced, summary)
	return summary, nil
}

func (s *ClubService) resolveCycle(ctx context.Context, tx *store.Store, club *store.Club, summary *WeekSummary) error {
	reports, err := tx.ListReports(ctx, club.ID)
	if err != nil {
		return err
	}

	resolved := make([]models.ScoutingReport, 0, len(reports))
	for i, r := range reports {
		if r.ContinueScouting {
			next, err := s.scouts.AdvanceScoutingReport(r, club.CurrentWeek, advanceSeed(club, club.CurrentWeek, i))
			switch {
			case err == nil && next.Status == models.ReportSignedByRival:
				summary.LostToRivals = append(summary.LostToRivals, r.ID)
			case err == nil:
				summary.ReportsAdvanced = append(summary.ReportsAdvanced, r.ID)
			case !models.IsRejected(err):
				return err
			}
			r = next
		}
		resolved = append(resolved, r)
	}

	fresh, err := s.startCycle(ctx, tx, club, resolved)
	if err != nil {
		return err
	}
	summary.CycleCompleted = true
	for _, r := range fresh {
		summary.NewReports = append(summary.NewReports, r.ID)
	}
	return nil
}

func (s *ClubService) rollSeason(ctx context.Context, tx *store.Store, club *store.Club, summary *WeekSummary) error {
	prospects, err := tx.ListProspects(ctx, club.ID)
	if err != nil {
		return err
	}
	aged := academy.AdvanceAges(prospects)
	for i, p := range aged {
		if p.Age == prospects[i].Age {
			continue
		}
		if err := tx.SaveProspect(ctx, club.ID, p); err != nil {
			return err
		}
		summary.ProspectsAged++
	}
	for _, p := range academy.GetProspectsNeedingAction(aged) {
		summary.NeedingAction = append(summary.NeedingAction, p.ID)
	}
	summary.SeasonRolled = true
	return nil
}

// ListReports returns the scouting pool without hidden values.
func (s *ClubService) ListReports(ctx context.Context, clubID string) ([]models.PublicReport, error) {
	if _, err := s.getClub(ctx, clubID); err != nil {
		return nil, err
	}
	reports, err := s.store.ListReports(ctx, clubID)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, r.Public())
	}
	return out, nil
}

func (s *ClubService) updateReport(ctx context.Context, clubID, reportID string, op func(models.ScoutingReport) (models.ScoutingReport, error)) (*models.PublicReport, error) {
	unlock := s.locks.lock(clubID)
	defer unlock()

	report, err := s.store.GetReport(ctx, clubID, reportID)
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", reportID, err)
	}
	next, err := op(report)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveReport(ctx, clubID, next); err != nil {
		return nil, err
	}
	s.broadcast(clubID, websocket.EventScoutingUpdate, next.Public())
	public := next.Public()
	return &public, nil
}

func (s *ClubService) ContinueScouting(ctx context.Context, clubID, reportID string) (*models.PublicReport, error) {
	return s.updateReport(ctx, clubID, reportID, scouting.RequestContinueScouting)
}

func (s *ClubService) StopScouting(ctx context.Context, clubID, reportID string) (*models.PublicReport, error) {
	return s.updateReport(ctx, clubID, reportID, scouting.StopScouting)
}

// SignProspect moves a report into the academy if a slot is free.
func (s *ClubService) SignProspect(ctx context.Context, clubID, reportID string) (*models.AcademyProspect, error) {
	unlock := s.locks.lock(clubID)
	defer unlock()

	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	report, err := s.store.GetReport(ctx, clubID, reportID)
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", reportID, err)
	}
	prospects, err := s.store.ListProspects(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if !academy.CanSignProspect(prospects, scouting.CalculateAcademyCapacity(club.AcademyBudget)) {
		return nil, ErrAcademyFull
	}

	prospect, err := academy.SignProspectToAcademy(report, club.CurrentWeek)
	if err != nil {
		return nil, err
	}
	err = s.store.Transaction(ctx, func(tx *store.Store) error {
		_, err := tx.GetProspect(ctx, clubID, prospect.ID)
		switch {
		case err == nil:
			return ErrAlreadySigned
		case !errors.Is(err, store.ErrNotFound):
			return err
		}
		if err := tx.CreateProspect(ctx, clubID, prospect); err != nil {
			return err
		}
		return tx.DeleteReport(ctx, clubID, reportID)
	})
	if err != nil {
		return nil, err
	}

	log := clubEntry(s.logger, clubID, club.Sport)
	log.WithField("prospect_id", prospect.ID).Info("Signed prospect to academy")
	s.cacheDelete(ctx, log, AcademyCacheKey(clubID))
	s.broadcast(clubID, websocket.EventAcademyUpdate, prospect)
	return &prospect, nil
}

// PromoteProspect graduates a prospect onto the senior roster.
func (s *ClubService) PromoteProspect(ctx context.Context, clubID, prospectID string) (*models.Player, error) {
	unlock := s.locks.lock(clubID)
	defer unlock()

	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	prospect, err := s.store.GetProspect(ctx, clubID, prospectID)
	if err != nil {
		return nil, fmt.Errorf("prospect %s: %w", prospectID, err)
	}
	promoted, err := academy.PromoteProspect(prospect)
	if err != nil {
		return nil, err
	}
	player, err := academy.ToRosterPlayer(promoted, club.Sport)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.SaveProspect(ctx, clubID, promoted); err != nil {
			return err
		}
		return tx.SaveRosterPlayer(ctx, clubID, player)
	})
	if err != nil {
		return nil, err
	}

	log := clubEntry(s.logger, clubID, club.Sport)
	log.WithFields(logrus.Fields{
		"prospect_id": prospectID,
		"position":    player.Position,
	}).Info("Promoted prospect to roster")
	s.cacheDelete(ctx, log, AcademyCacheKey(clubID), LineupCacheKey(clubID))
	s.broadcast(clubID, websocket.EventAcademyUpdate, promoted)
	return &player, nil
}

func (s *ClubService) ReleaseProspect(ctx context.Context, clubID, prospectID string) (*models.AcademyProspect, error) {
	unlock := s.locks.lock(clubID)
	defer unlock()

	prospect, err := s.store.GetProspect(ctx, clubID, prospectID)
	if err != nil {
		return nil, fmt.Errorf("prospect %s: %w", prospectID, err)
	}
	released, err := academy.ReleaseProspect(prospect)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveProspect(ctx, clubID, released); err != nil {
		return nil, err
	}

	s.cacheDelete(ctx, s.logger.WithField("club_id", clubID), AcademyCacheKey(clubID))
	s.broadcast(clubID, websocket.EventAcademyUpdate, released)
	return &released, nil
}

// AcademyView is the academy page: slot usage plus every prospect.
type AcademyView struct {
	Info      models.AcademyInfo       `json:"info"`
	Prospects []models.AcademyProspect `json:"prospects"`
}

func (s *ClubService) AcademyInfo(ctx context.Context, clubID string) (*AcademyView, error) {
	log := s.logger.WithField("club_id", clubID)
	var view AcademyView
	if s.cacheGet(ctx, log, AcademyCacheKey(clubID), &view) {
		return &view, nil
	}

	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	prospects, err := s.store.ListProspects(ctx, clubID)
	if err != nil {
		return nil, err
	}
	view = AcademyView{
		Info:      academy.GetAcademyInfo(prospects, club.AcademyBudget),
		Prospects: prospects,
	}
	s.cacheSet(ctx, log, AcademyCacheKey(clubID), view)
	return &view, nil
}

func (s *ClubService) ProspectsNeedingAction(ctx context.Context, clubID string) ([]models.AcademyProspect, error) {
	if _, err := s.getClub(ctx, clubID); err != nil {
		return nil, err
	}
	prospects, err := s.store.ListProspects(ctx, clubID)
	if err != nil {
		return nil, err
	}
	return academy.GetProspectsNeedingAction(prospects), nil
}

func (s *ClubService) ListRoster(ctx context.Context, clubID string) (models.Roster, error) {
	if _, err := s.getClub(ctx, clubID); err != nil {
		return nil, err
	}
	return s.store.ListRoster(ctx, clubID)
}

// AddRosterPlayer signs an outside player straight onto the roster.
func (s *ClubService) AddRosterPlayer(ctx context.Context, clubID string, player models.Player) (*models.Player, error) {
	unlock := s.locks.lock(clubID)
	defer unlock()

	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(player.Name) == "" {
		return nil, invalid("name is required")
	}
	if player.Sport == "" {
		player.Sport = club.Sport
	}
	if player.Sport != club.Sport {
		return nil, ErrSportMismatch
	}
	if player.MatchFitness < 0 || player.MatchFitness > 100 {
		return nil, invalid("match_fitness must be between 0 and 100")
	}

	roster, err := s.store.ListRoster(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if player.ID == "" {
		player.ID = uuid.New().String()
	} else if _, exists := roster.Index()[player.ID]; exists {
		return nil, ErrDuplicateRoster
	}
	if player.Attributes == nil {
		player.Attributes = models.Attributes{}
	}

	if err := s.store.SaveRosterPlayer(ctx, clubID, player); err != nil {
		return nil, err
	}
	s.cacheDelete(ctx, s.logger.WithField("club_id", clubID), LineupCacheKey(clubID))
	return &player, nil
}
