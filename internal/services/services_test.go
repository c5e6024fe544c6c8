package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stitts-dev/franchise-sim/internal/lineup"
	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/random"
	"github.com/stitts-dev/franchise-sim/internal/scouting"
	"github.com/stitts-dev/franchise-sim/internal/store"
	"github.com/stitts-dev/franchise-sim/internal/websocket"
	"github.com/stitts-dev/franchise-sim/pkg/database"
	"github.com/stitts-dev/franchise-sim/pkg/logger"
)

type recordedEvent struct {
	clubID    string
	eventType string
}

type recordingHub struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (h *recordingHub) BroadcastToClub(clubID, eventType string, _ interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, recordedEvent{clubID, eventType})
}

func (h *recordingHub) count(eventType string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, e := range h.events {
		if e.eventType == eventType {
			n++
		}
	}
	return n
}

type ServicesTestSuite struct {
	suite.Suite
	db       *database.DB
	store    *store.Store
	redis    *miniredis.Miniredis
	hub      *recordingHub
	services *Services
	ctx      context.Context
}

func (s *ServicesTestSuite) SetupSuite() {
	db, err := database.NewInMemory()
	s.Require().NoError(err)
	s.db = db
	s.store = store.New(db)
	s.Require().NoError(s.store.Migrate())
	s.ctx = context.Background()
}

func (s *ServicesTestSuite) TearDownSuite() {
	s.db.Close()
}

func (s *ServicesTestSuite) SetupTest() {
	for _, table := range []string{"lineups", "roster_players", "academy_prospects", "scouting_reports", "clubs"} {
		s.db.Exec("DELETE FROM " + table)
	}

	s.redis = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.redis.Addr(), MaxRetries: -1})
	log := logger.NewDiscardLogger().WithField("service", "services-test")

	s.hub = &recordingHub{}
	s.services = New(Dependencies{
		Store:    s.store,
		Cache:    NewCacheService(client, 5, log),
		Hub:      s.hub,
		Random:   random.Default,
		CacheTTL: time.Minute,
		Logger:   log,
	})
}

func (s *ServicesTestSuite) createClub(sport models.Sport, academyBudget, scoutingBudget int64) *store.Club {
	seed := int64(1000)
	club, err := s.services.Clubs.CreateClub(s.ctx, CreateClubRequest{
		Name:           "Riverside " + string(sport),
		Sport:          string(sport),
		AcademyBudget:  academyBudget,
		ScoutingBudget: scoutingBudget,
		Seed:           &seed,
	})
	s.Require().NoError(err)
	return club
}

func uniformPlayer(id, name string, sport models.Sport, value int) models.Player {
	attrs := models.Attributes{}
	for _, a := range models.AttributeNames() {
		attrs[a] = value
	}
	return models.Player{ID: id, Name: name, Sport: sport, Position: "SF", Attributes: attrs, MatchFitness: 100}
}

func (s *ServicesTestSuite) addRoster(club *store.Club, n int) {
	for i := 0; i < n; i++ {
		p := uniformPlayer(fmt.Sprintf("p%02d", i+1), fmt.Sprintf("Player %02d", i+1), club.Sport, 50+i)
		_, err := s.services.Clubs.AddRosterPlayer(s.ctx, club.ID, p)
		s.Require().NoError(err)
	}
}

func (s *ServicesTestSuite) TestCreateClubValidation() {
	cases := map[string]CreateClubRequest{
		"missing name":      {Name: " ", Sport: "soccer"},
		"unknown sport":     {Name: "Club", Sport: "cricket"},
		"negative budget":   {Name: "Club", Sport: "soccer", AcademyBudget: -1},
		"unknown formation": {Name: "Club", Sport: "soccer", Formation: "9-0-1"},
	}
	for name, req := range cases {
		s.Run(name, func() {
			_, err := s.services.Clubs.CreateClub(s.ctx, req)
			s.ErrorIs(err, ErrValidation)
		})
	}
}

func (s *ServicesTestSuite) TestCreateClubOpensFirstCycle() {
	club := s.createClub(models.SportSoccer, 0, 200_000)
	s.Equal("4-4-2", club.Formation)

	reports, err := s.services.Clubs.ListReports(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Require().Len(reports, scouting.CalculateReportsPerCycle(200_000))
	s.Equal("prospect-0-1", reports[0].ID)

	view, err := s.services.Lineups.GetLineup(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Equal("4-4-2", view.Lineup.Formation)
	s.False(view.Valid)
}

func (s *ServicesTestSuite) TestGetClubNotFound() {
	_, err := s.services.Clubs.GetClub(s.ctx, "missing")
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *ServicesTestSuite) TestSecondCycleInSameWeekIsRejected() {
	club := s.createClub(models.SportSoccer, 0, 0)
	_, err := s.services.Clubs.StartScoutingCycle(s.ctx, club.ID)
	s.ErrorIs(err, ErrCycleThisWeek)
	s.True(models.IsRejected(err))
}

func (s *ServicesTestSuite) TestAdvanceWeekResolvesCycle() {
	club := s.createClub(models.SportSoccer, 0, 100_000)

	_, err := s.services.Clubs.ContinueScouting(s.ctx, club.ID, "prospect-0-1")
	s.Require().NoError(err)

	var summary *WeekSummary
	for i := 0; i < scouting.ScoutingCycleWeeks; i++ {
		summary, err = s.services.Clubs.AdvanceWeek(s.ctx, club.ID)
		s.Require().NoError(err)
		if i < scouting.ScoutingCycleWeeks-1 {
			s.False(summary.CycleCompleted)
		}
	}

	s.Equal(4, summary.Week)
	s.True(summary.CycleCompleted)
	s.Equal([]string{"prospect-4-1", "prospect-4-2", "prospect-4-3"}, summary.NewReports)
	s.Equal(1, len(summary.ReportsAdvanced)+len(summary.LostToRivals))

	reports, err := s.services.Clubs.ListReports(s.ctx, club.ID)
	s.Require().NoError(err)
	ids := map[string]models.PublicReport{}
	for _, r := range reports {
		ids[r.ID] = r
	}
	s.NotContains(ids, "prospect-0-2", "untouched reports are dropped at the cycle boundary")
	if len(summary.ReportsAdvanced) == 1 {
		s.Require().Contains(ids, "prospect-0-1")
		s.Equal(4, ids["prospect-0-1"].WeeksScouted)
		s.Equal(14, ids["prospect-0-1"].AttributeRanges["agility"].Width())
	} else {
		s.NotContains(ids, "prospect-0-1")
	}

	got, err := s.services.Clubs.GetClub(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Equal(4, got.CurrentWeek)
	s.Equal(4, got.CycleWeek)
	s.Equal(4, s.hub.count(websocket.EventWeekAdvanced))
}

func (s *ServicesTestSuite) TestAdvanceWeekIsDeterministic() {
	a := s.createClub(models.SportSoccer, 0, 300_000)
	b := s.createClub(models.SportSoccer, 0, 300_000)

	for _, club := range []*store.Club{a, b} {
		for _, id := range []string{"prospect-0-1", "prospect-0-2", "prospect-0-3"} {
			_, err := s.services.Clubs.ContinueScouting(s.ctx, club.ID, id)
			s.Require().NoError(err)
		}
	}

	var summaries [2]*WeekSummary
	for week := 1; week <= 8; week++ {
		for i, club := range []*store.Club{a, b} {
			summary, err := s.services.Clubs.AdvanceWeek(s.ctx, club.ID)
			s.Require().NoError(err)
			summaries[i] = summary
		}
	}
	s.Equal(summaries[0].LostToRivals, summaries[1].LostToRivals)
	s.Equal(summaries[0].ReportsAdvanced, summaries[1].ReportsAdvanced)

	ra, err := s.services.Clubs.ListReports(s.ctx, a.ID)
	s.Require().NoError(err)
	rb, err := s.services.Clubs.ListReports(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal(ra, rb)
}

func (s *ServicesTestSuite) TestScoutingRequestsOnMissingReport() {
	club := s.createClub(models.SportSoccer, 0, 0)
	_, err := s.services.Clubs.StopScouting(s.ctx, club.ID, "prospect-9-9")
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *ServicesTestSuite) TestSignProspectUntilAcademyIsFull() {
	club := s.createClub(models.SportSoccer, 0, 200_000)
	capacity := scouting.CalculateAcademyCapacity(0)

	for i := 1; i <= capacity; i++ {
		p, err := s.services.Clubs.SignProspect(s.ctx, club.ID, fmt.Sprintf("prospect-0-%d", i))
		s.Require().NoError(err)
		s.Equal(models.ProspectActive, p.Status)
	}

	_, err := s.services.Clubs.SignProspect(s.ctx, club.ID, "prospect-0-4")
	s.ErrorIs(err, ErrAcademyFull)

	reports, err := s.services.Clubs.ListReports(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Require().Len(reports, 1)
	s.Equal("prospect-0-4", reports[0].ID)

	view, err := s.services.Clubs.AcademyInfo(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Equal(models.AcademyInfo{
		TotalSlots:            capacity,
		UsedSlots:             capacity,
		AvailableSlots:        0,
		WeeklyMaintenanceCost: capacity * 1923,
	}, view.Info)
}

func (s *ServicesTestSuite) TestAcademySnapshotIsCachedAndInvalidated() {
	club := s.createClub(models.SportSoccer, 0, 0)
	key := AcademyCacheKey(club.ID)

	_, err := s.services.Clubs.AcademyInfo(s.ctx, club.ID)
	s.Require().NoError(err)
	s.True(s.redis.Exists(key))

	_, err = s.services.Clubs.SignProspect(s.ctx, club.ID, "prospect-0-1")
	s.Require().NoError(err)
	s.False(s.redis.Exists(key))

	view, err := s.services.Clubs.AcademyInfo(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Equal(1, view.Info.UsedSlots)
}

func (s *ServicesTestSuite) TestPromoteAndRelease() {
	club := s.createClub(models.SportBaseball, 0, 100_000)

	_, err := s.services.Clubs.SignProspect(s.ctx, club.ID, "prospect-0-1")
	s.Require().NoError(err)
	_, err = s.services.Clubs.SignProspect(s.ctx, club.ID, "prospect-0-2")
	s.Require().NoError(err)

	player, err := s.services.Clubs.PromoteProspect(s.ctx, club.ID, "prospect-0-1")
	s.Require().NoError(err)
	s.Equal(models.SportBaseball, player.Sport)
	s.NotEmpty(player.Position)
	s.Equal(100.0, player.MatchFitness)

	_, err = s.services.Clubs.PromoteProspect(s.ctx, club.ID, "prospect-0-1")
	s.True(models.IsRejected(err))

	released, err := s.services.Clubs.ReleaseProspect(s.ctx, club.ID, "prospect-0-2")
	s.Require().NoError(err)
	s.Equal(models.ProspectReleased, released.Status)

	_, err = s.services.Clubs.PromoteProspect(s.ctx, club.ID, "prospect-0-2")
	s.True(models.IsRejected(err))

	roster, err := s.services.Clubs.ListRoster(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Require().Len(roster, 1)
	s.Equal("prospect-0-1", roster[0].ID)

	view, err := s.services.Clubs.AcademyInfo(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Equal(0, view.Info.UsedSlots)
	s.Len(view.Prospects, 2)
}

func (s *ServicesTestSuite) TestSeasonRollAgesProspects() {
	club := s.createClub(models.SportSoccer, 0, 0)
	signed, err := s.services.Clubs.SignProspect(s.ctx, club.ID, "prospect-0-1")
	s.Require().NoError(err)

	var summary *WeekSummary
	for week := 1; week <= WeeksPerSeason; week++ {
		summary, err = s.services.Clubs.AdvanceWeek(s.ctx, club.ID)
		s.Require().NoError(err)
	}
	s.True(summary.SeasonRolled)
	s.Equal(1, summary.ProspectsAged)

	view, err := s.services.Clubs.AcademyInfo(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Require().Len(view.Prospects, 1)
	s.Equal(signed.Age+1, view.Prospects[0].Age)
	s.Equal(1, view.Prospects[0].YearsInAcademy)

	needing, err := s.services.Clubs.ProspectsNeedingAction(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Equal(view.Prospects[0].Age >= scouting.MaxProspectAge, len(needing) == 1)
}

func (s *ServicesTestSuite) TestAddRosterPlayerRules() {
	club := s.createClub(models.SportBasketball, 0, 0)

	p := uniformPlayer("p1", "Dana Brooks", models.SportBasketball, 60)
	_, err := s.services.Clubs.AddRosterPlayer(s.ctx, club.ID, p)
	s.Require().NoError(err)

	_, err = s.services.Clubs.AddRosterPlayer(s.ctx, club.ID, p)
	s.ErrorIs(err, ErrDuplicateRoster)

	soccer := uniformPlayer("p2", "Iker Sol", models.SportSoccer, 60)
	_, err = s.services.Clubs.AddRosterPlayer(s.ctx, club.ID, soccer)
	s.ErrorIs(err, ErrSportMismatch)

	generated, err := s.services.Clubs.AddRosterPlayer(s.ctx, club.ID, models.Player{Name: "New Signing", MatchFitness: 90})
	s.Require().NoError(err)
	s.NotEmpty(generated.ID)
	s.Equal(models.SportBasketball, generated.Sport)

	_, err = s.services.Clubs.AddRosterPlayer(s.ctx, club.ID, models.Player{Name: "Bad Fitness", MatchFitness: 140})
	s.ErrorIs(err, ErrValidation)
}

func (s *ServicesTestSuite) TestSearchPlayers() {
	club := s.createClub(models.SportBasketball, 0, 0)
	for _, p := range []models.Player{
		uniformPlayer("p1", "Marcus Bell", models.SportBasketball, 60),
		uniformPlayer("p2", "Mark Bellamy", models.SportBasketball, 60),
		uniformPlayer("p3", "Tom Ruiz", models.SportBasketball, 60),
	} {
		_, err := s.services.Clubs.AddRosterPlayer(s.ctx, club.ID, p)
		s.Require().NoError(err)
	}

	results, err := s.services.Clubs.SearchPlayers(s.ctx, club.ID, "bell")
	s.Require().NoError(err)

	var roster []string
	for _, r := range results {
		if r.Kind == SearchRoster {
			roster = append(roster, r.ID)
		}
	}
	s.Equal([]string{"p1", "p2"}, roster)

	_, err = s.services.Clubs.SearchPlayers(s.ctx, club.ID, "  ")
	s.ErrorIs(err, ErrValidation)
}

func (s *ServicesTestSuite) TestApplyOptimalLineup() {
	club := s.createClub(models.SportBasketball, 0, 0)
	s.addRoster(club, 8)

	view, err := s.services.Lineups.ApplyOptimalLineup(s.ctx, club.ID)
	s.Require().NoError(err)
	s.True(view.Valid)
	s.Len(view.Starters, 5)
	s.Len(view.Bench, 3)
	s.Equal(240, view.TotalMinutes)
	s.ElementsMatch([]string{"p04", "p05", "p06", "p07", "p08"}, view.Lineup.Starters)

	s.Equal(1, s.hub.count(websocket.EventLineupUpdated))
	s.True(s.redis.Exists(LineupCacheKey(club.ID)))

	cached, err := s.services.Lineups.GetLineup(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Equal(view.Lineup.Starters, cached.Lineup.Starters)
}

func (s *ServicesTestSuite) TestRejectedLineupChangeKeepsStoredLineup() {
	club := s.createClub(models.SportBasketball, 0, 0)
	s.addRoster(club, 8)

	before, err := s.services.Lineups.ApplyOptimalLineup(s.ctx, club.ID)
	s.Require().NoError(err)

	_, err = s.services.Lineups.MoveToBench(s.ctx, club.ID, "nobody")
	s.ErrorIs(err, lineup.ErrUnknownPlayer)

	_, err = s.services.Lineups.ChangeFormation(s.ctx, club.ID, "zone")
	s.ErrorIs(err, lineup.ErrUnknownFormation)

	stored, err := s.store.GetLineup(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Equal(before.Lineup.Starters, stored.Starters)
	s.Equal(before.Lineup.Bench, stored.Bench)
	s.Equal(1, s.hub.count(websocket.EventLineupUpdated))
}

func (s *ServicesTestSuite) TestLineupEdits() {
	club := s.createClub(models.SportBasketball, 0, 0)
	s.addRoster(club, 8)

	_, err := s.services.Lineups.ApplyOptimalLineup(s.ctx, club.ID)
	s.Require().NoError(err)

	view, err := s.services.Lineups.MoveToBench(s.ctx, club.ID, "p08")
	s.Require().NoError(err)
	s.False(view.Valid)
	s.Contains(view.Lineup.Bench, "p08")

	view, err = s.services.Lineups.SetStarter(s.ctx, club.ID, 0, "p01")
	s.Require().NoError(err)
	s.Equal("p01", view.Lineup.Starters[0])

	view, err = s.services.Lineups.SetMinutes(s.ctx, club.ID, "p01", 20)
	s.Require().NoError(err)
	s.Equal(20, view.Lineup.Minutes["p01"])

	view, err = s.services.Lineups.ChangeFormation(s.ctx, club.ID, "small_ball")
	s.Require().NoError(err)
	s.Equal("small_ball", view.Lineup.Formation)

	got, err := s.services.Clubs.GetClub(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Equal("small_ball", got.Formation)
}

func (s *ServicesTestSuite) TestLineupDropsDepartedPlayers() {
	club := s.createClub(models.SportBasketball, 0, 0)
	s.addRoster(club, 8)

	_, err := s.services.Lineups.ApplyOptimalLineup(s.ctx, club.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.store.DeleteRosterPlayer(s.ctx, club.ID, "p08"))
	s.redis.FlushAll()

	view, err := s.services.Lineups.GetLineup(s.ctx, club.ID)
	s.Require().NoError(err)
	s.NotContains(view.Lineup.Starters, "p08")
	s.False(view.Valid)
}

func (s *ServicesTestSuite) TestConcurrentAdvanceIsSerialized() {
	club := s.createClub(models.SportSoccer, 0, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.services.Clubs.AdvanceWeek(s.ctx, club.ID)
			s.NoError(err)
		}()
	}
	wg.Wait()

	got, err := s.services.Clubs.GetClub(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Equal(8, got.CurrentWeek)
}

func (s *ServicesTestSuite) TestWeekSchedulerAdvancesEveryClub() {
	first := s.createClub(models.SportBasketball, 0, 0)
	second := s.createClub(models.SportBaseball, 0, 0)
	log := logger.NewDiscardLogger().WithField("service", "scheduler-test")

	idle := NewWeekScheduler(s.services.Clubs, 0, log)
	s.Error(idle.Start())

	scheduler := NewWeekScheduler(s.services.Clubs, time.Hour, log)
	s.Require().NoError(scheduler.Start())
	s.Error(scheduler.Start())
	scheduler.AdvanceAll()
	scheduler.Stop()

	for _, id := range []string{first.ID, second.ID} {
		got, err := s.services.Clubs.GetClub(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(1, got.CurrentWeek)
	}
	s.Equal(2, s.hub.count(websocket.EventWeekAdvanced))
}

func (s *ServicesTestSuite) TestEmptiedPoolCannotReopenWeek() {
	club := s.createClub(models.SportSoccer, 0, 0)

	for _, id := range []string{"prospect-0-1", "prospect-0-2"} {
		_, err := s.services.Clubs.SignProspect(s.ctx, club.ID, id)
		s.Require().NoError(err)
	}
	_, err := s.services.Clubs.PromoteProspect(s.ctx, club.ID, "prospect-0-1")
	s.Require().NoError(err)

	reports, err := s.services.Clubs.ListReports(s.ctx, club.ID)
	s.Require().NoError(err)
	s.Require().Empty(reports)

	_, err = s.services.Clubs.StartScoutingCycle(s.ctx, club.ID)
	s.ErrorIs(err, ErrCycleThisWeek)

	got, err := s.store.GetProspect(s.ctx, club.ID, "prospect-0-1")
	s.Require().NoError(err)
	s.Equal(models.ProspectPromoted, got.Status)
}

func (s *ServicesTestSuite) TestSignProspectRefusesSignedID() {
	club := s.createClub(models.SportSoccer, 400_000, 0)

	_, err := s.services.Clubs.SignProspect(s.ctx, club.ID, "prospect-0-1")
	s.Require().NoError(err)
	_, err = s.services.Clubs.PromoteProspect(s.ctx, club.ID, "prospect-0-1")
	s.Require().NoError(err)

	// a report that reuses the id of an academy graduate
	stale := scouting.GenerateScoutingReport("prospect-0-1", 0, 1, 77)
	s.Require().NoError(s.store.SaveReport(s.ctx, club.ID, stale))

	_, err = s.services.Clubs.SignProspect(s.ctx, club.ID, "prospect-0-1")
	s.ErrorIs(err, ErrAlreadySigned)
	s.True(models.IsRejected(err))

	got, err := s.store.GetProspect(s.ctx, club.ID, "prospect-0-1")
	s.Require().NoError(err)
	s.Equal(models.ProspectPromoted, got.Status)

	_, err = s.store.GetReport(s.ctx, club.ID, "prospect-0-1")
	s.NoError(err, "a refused signing keeps the report")
}

func TestCarryOver(t *testing.T) {
	report := func(id string, status models.ReportStatus, weeks, updated int, cont bool) models.ScoutingReport {
		return models.ScoutingReport{ID: id, Status: status, WeeksScouted: weeks, LastUpdatedWeek: updated, ContinueScouting: cont}
	}
	pool := []models.ScoutingReport{
		report("untouched", models.ReportAvailable, 0, 0, false),
		report("scouting", models.ReportScouting, 4, 4, true),
		report("stopped", models.ReportAvailable, 4, 4, false),
		report("lost", models.ReportSignedByRival, 4, 4, false),
	}

	ids := func(reports []models.ScoutingReport) []string {
		out := []string{}
		for _, r := range reports {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, []string{"scouting", "stopped"}, ids(carryOver(pool, 4)))
	assert.Equal(t, []string{"scouting", "stopped"}, ids(carryOver(pool, 8)))
	assert.Equal(t, []string{"scouting"}, ids(carryOver(pool, 12)))
}

func TestServicesLogThroughInjectedLogger(t *testing.T) {
	db, err := database.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	st := store.New(db)
	require.NoError(t, st.Migrate())

	log, hook := logtest.NewNullLogger()
	svc := New(Dependencies{Store: st, Random: random.Default, Logger: log.WithField("service", "log-test")})

	ctx := context.Background()
	club, err := svc.Clubs.CreateClub(ctx, CreateClubRequest{Name: "Harbour FC", Sport: "soccer"})
	require.NoError(t, err)
	_, err = svc.Clubs.AdvanceWeek(ctx, club.ID)
	require.NoError(t, err)

	messages := map[string]*logrus.Entry{}
	for _, entry := range hook.AllEntries() {
		messages[entry.Message] = entry
	}
	for _, msg := range []string{"Created club", "Advanced week"} {
		entry, ok := messages[msg]
		require.True(t, ok, "missing %q", msg)
		assert.Equal(t, club.ID, entry.Data["club_id"])
		assert.Equal(t, "soccer", entry.Data["sport"])
		assert.Equal(t, "log-test", entry.Data["service"])
	}
}

func TestServicesTestSuite(t *testing.T) {
	suite.Run(t, new(ServicesTestSuite))
}
