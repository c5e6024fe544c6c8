package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/stitts-dev/franchise-sim/internal/api/middleware"
	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/random"
	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/internal/store"
	"github.com/stitts-dev/franchise-sim/internal/websocket"
	"github.com/stitts-dev/franchise-sim/pkg/config"
	"github.com/stitts-dev/franchise-sim/pkg/database"
	"github.com/stitts-dev/franchise-sim/pkg/logger"
	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *utils.AppError `json:"error"`
}

type APITestSuite struct {
	suite.Suite
	db     *database.DB
	router *gin.Engine
	cancel context.CancelFunc
}

func (s *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	db, err := database.NewInMemory()
	s.Require().NoError(err)
	s.db = db

	st := store.New(db)
	s.Require().NoError(st.Migrate())

	log := logger.NewDiscardLogger().WithField("service", "api-test")
	hub := websocket.NewHub(log)
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go hub.Run(ctx)

	cfg := &config.Config{
		JWTSecret:   "api-test-secret",
		CorsOrigins: []string{"*"},
	}
	s.router = NewRouter(RouterDeps{
		Config: cfg,
		DB:     db,
		Services: services.New(services.Dependencies{
			Store:  st,
			Hub:    hub,
			Random: random.Default,
			Logger: log,
		}),
		Hub:         hub,
		RateLimiter: middleware.NewRateLimiter(1000, 1000),
	})
}

func (s *APITestSuite) TearDownSuite() {
	s.cancel()
	s.db.Close()
}

func (s *APITestSuite) SetupTest() {
	for _, table := range []string{"lineups", "roster_players", "academy_prospects", "scouting_reports", "clubs"} {
		s.db.Exec("DELETE FROM " + table)
	}
}

func (s *APITestSuite) do(method, path, token string, body interface{}) (int, envelope) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func (s *APITestSuite) createClub(sport string) (string, string) {
	code, env := s.do(http.MethodPost, "/api/v1/clubs", "", gin.H{
		"name":            "Lakeside " + sport,
		"sport":           sport,
		"scouting_budget": 200000,
		"seed":            77,
	})
	s.Require().Equal(http.StatusCreated, code)

	var created struct {
		Club  store.Club `json:"club"`
		Token string     `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &created))
	s.Require().NotEmpty(created.Token)
	return created.Club.ID, created.Token
}

func (s *APITestSuite) TestHealthAndReady() {
	code, _ := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, code)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"cache":"disabled"`)
}

func (s *APITestSuite) TestCreateClubValidation() {
	code, env := s.do(http.MethodPost, "/api/v1/clubs", "", gin.H{"name": "No Sport"})
	s.Equal(http.StatusBadRequest, code)
	s.Equal(utils.ErrCodeValidation, env.Error.Code)

	code, env = s.do(http.MethodPost, "/api/v1/clubs", "", gin.H{"name": "Cricket", "sport": "cricket"})
	s.Equal(http.StatusBadRequest, code)
	s.Equal(utils.ErrCodeValidation, env.Error.Code)
}

func (s *APITestSuite) TestClubRoutesRequireMatchingToken() {
	clubID, token := s.createClub("soccer")
	otherID, _ := s.createClub("soccer")

	code, _ := s.do(http.MethodGet, "/api/v1/clubs/"+clubID, "", nil)
	s.Equal(http.StatusUnauthorized, code)

	code, _ = s.do(http.MethodGet, "/api/v1/clubs/"+otherID, token, nil)
	s.Equal(http.StatusForbidden, code)

	code, env := s.do(http.MethodGet, "/api/v1/clubs/"+clubID, token, nil)
	s.Equal(http.StatusOK, code)
	s.True(env.Success)
}

func (s *APITestSuite) TestScoutingAndAcademyFlow() {
	clubID, token := s.createClub("soccer")
	base := "/api/v1/clubs/" + clubID

	code, env := s.do(http.MethodGet, base+"/scouting", token, nil)
	s.Require().Equal(http.StatusOK, code)
	var reports []map[string]interface{}
	s.Require().NoError(json.Unmarshal(env.Data, &reports))
	s.Require().Len(reports, 4)
	s.NotContains(reports[0], "actual_attributes")
	s.NotContains(reports[0], "potentials")

	code, _ = s.do(http.MethodPost, base+"/scouting/prospect-0-1/continue", token, nil)
	s.Equal(http.StatusOK, code)

	code, _ = s.do(http.MethodPost, base+"/scouting/prospect-0-2/sign", token, nil)
	s.Equal(http.StatusCreated, code)

	code, env = s.do(http.MethodPost, base+"/scouting/prospect-0-2/sign", token, nil)
	s.Equal(http.StatusNotFound, code)
	s.Equal(utils.ErrCodeNotFound, env.Error.Code)

	code, env = s.do(http.MethodGet, base+"/academy", token, nil)
	s.Require().Equal(http.StatusOK, code)
	var academyView services.AcademyView
	s.Require().NoError(json.Unmarshal(env.Data, &academyView))
	s.Equal(1, academyView.Info.UsedSlots)

	code, _ = s.do(http.MethodPost, base+"/academy/prospect-0-2/promote", token, nil)
	s.Equal(http.StatusOK, code)

	code, env = s.do(http.MethodPost, base+"/academy/prospect-0-2/release", token, nil)
	s.Equal(http.StatusConflict, code)
	s.Equal(utils.ErrCodeRejected, env.Error.Code)

	code, env = s.do(http.MethodGet, base+"/roster", token, nil)
	s.Require().Equal(http.StatusOK, code)
	var roster models.Roster
	s.Require().NoError(json.Unmarshal(env.Data, &roster))
	s.Len(roster, 1)

	code, _ = s.do(http.MethodGet, base+"/academy/needs-action", token, nil)
	s.Equal(http.StatusOK, code)
}

func (s *APITestSuite) TestAdvanceWeek() {
	clubID, token := s.createClub("baseball")

	var summary services.WeekSummary
	for i := 0; i < 4; i++ {
		code, env := s.do(http.MethodPost, "/api/v1/clubs/"+clubID+"/advance-week", token, nil)
		s.Require().Equal(http.StatusOK, code)
		s.Require().NoError(json.Unmarshal(env.Data, &summary))
	}
	s.Equal(4, summary.Week)
	s.True(summary.CycleCompleted)
	s.Len(summary.NewReports, 4)

	code, _ := s.do(http.MethodPost, "/api/v1/clubs/"+clubID+"/scouting/cycle", token, nil)
	s.Equal(http.StatusConflict, code)
}

func (s *APITestSuite) TestLineupFlow() {
	clubID, token := s.createClub("basketball")
	base := "/api/v1/clubs/" + clubID

	for i := 1; i <= 7; i++ {
		attrs := map[string]int{}
		for _, a := range models.AttributeNames() {
			attrs[a] = 40 + i
		}
		code, _ := s.do(http.MethodPost, base+"/roster", token, gin.H{
			"id":            fmt.Sprintf("p%d", i),
			"name":          fmt.Sprintf("Guard %d", i),
			"position":      "PG",
			"attributes":    attrs,
			"match_fitness": 100,
		})
		s.Require().Equal(http.StatusCreated, code)
	}

	code, env := s.do(http.MethodPost, base+"/lineup/optimal", token, nil)
	s.Require().Equal(http.StatusOK, code)
	var view services.LineupView
	s.Require().NoError(json.Unmarshal(env.Data, &view))
	s.True(view.Valid)
	s.ElementsMatch([]string{"p3", "p4", "p5", "p6", "p7"}, view.Lineup.Starters)

	code, env = s.do(http.MethodPost, base+"/lineup/minutes", token, gin.H{"player_id": "p7", "minutes": 30})
	s.Require().Equal(http.StatusOK, code)
	s.Require().NoError(json.Unmarshal(env.Data, &view))
	s.Equal(30, view.Lineup.Minutes["p7"])

	code, env = s.do(http.MethodPost, base+"/lineup/bench", token, gin.H{"player_id": "p1"})
	s.Equal(http.StatusConflict, code)
	s.Equal(utils.ErrCodeRejected, env.Error.Code)

	code, _ = s.do(http.MethodDelete, base+"/lineup/bench/p1", token, nil)
	s.Equal(http.StatusOK, code)

	code, _ = s.do(http.MethodPost, base+"/lineup/swap", token, gin.H{
		"a": gin.H{"kind": "starter", "index": 0},
		"b": gin.H{"kind": "bench", "player_id": "p2"},
	})
	s.Equal(http.StatusOK, code)

	code, _ = s.do(http.MethodPost, base+"/lineup/swap", token, gin.H{
		"a": gin.H{"kind": "starter", "index": 0},
		"b": gin.H{"kind": "reserve", "player_id": "p1"},
	})
	s.Equal(http.StatusConflict, code)

	code, env = s.do(http.MethodPost, base+"/lineup/formation", token, gin.H{"formation": "twin_towers"})
	s.Require().Equal(http.StatusOK, code)
	s.Require().NoError(json.Unmarshal(env.Data, &view))
	s.Equal("twin_towers", view.Lineup.Formation)

	code, _ = s.do(http.MethodPost, base+"/lineup/starter", token, gin.H{"player_id": "p2"})
	s.Equal(http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, base+"/lineup/bullpen", token, gin.H{"role": "closer", "player_id": "p2"})
	s.Equal(http.StatusConflict, code)

	code, env = s.do(http.MethodGet, base+"/search?q=guard", token, nil)
	s.Require().Equal(http.StatusOK, code)
	var results []services.SearchResult
	s.Require().NoError(json.Unmarshal(env.Data, &results))
	s.GreaterOrEqual(len(results), 7)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
