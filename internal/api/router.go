// Package api exposes the club services over HTTP.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/franchise-sim/internal/api/handlers"
	"github.com/stitts-dev/franchise-sim/internal/api/middleware"
	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/internal/websocket"
	"github.com/stitts-dev/franchise-sim/pkg/config"
	"github.com/stitts-dev/franchise-sim/pkg/database"
)

type RouterDeps struct {
	Config      *config.Config
	DB          *database.DB
	Cache       *services.CacheService
	Services    *services.Services
	Hub         *websocket.Hub
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the engine with the global middleware, health checks, API routes and the
// websocket endpoint.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.CorsOrigins))

	health := handlers.NewHealthHandler(deps.DB, deps.Cache)
	router.GET("/health", health.GetHealth)
	router.GET("/ready", health.GetReady)

	apiV1 := router.Group("/api/v1")
	if deps.RateLimiter != nil {
		apiV1.Use(deps.RateLimiter.Middleware())
	}
	SetupRoutes(apiV1, deps.Services, cfg)

	if deps.Hub != nil {
		router.GET("/ws/clubs/:club_id", middleware.AuthRequired(cfg.JWTSecret, cfg.AuthDisabled), deps.Hub.HandleWebSocket)
	}

	return router
}

// SetupRoutes registers the /api/v1 routes. Everything under a club needs a token for
// that club.
func SetupRoutes(group *gin.RouterGroup, svc *services.Services, cfg *config.Config) {
	clubHandler := handlers.NewClubHandler(svc.Clubs, cfg.JWTSecret)
	scoutingHandler := handlers.NewScoutingHandler(svc.Clubs)
	academyHandler := handlers.NewAcademyHandler(svc.Clubs)
	lineupHandler := handlers.NewLineupHandler(svc.Lineups)

	group.POST("/clubs", clubHandler.CreateClub)
	group.GET("/clubs", clubHandler.ListClubs)

	club := group.Group("/clubs/:club_id")
	club.Use(middleware.AuthRequired(cfg.JWTSecret, cfg.AuthDisabled))
	{
		club.GET("", clubHandler.GetClub)
		club.POST("/advance-week", clubHandler.AdvanceWeek)
		club.GET("/search", clubHandler.Search)

		club.GET("/scouting", scoutingHandler.ListReports)
		club.POST("/scouting/cycle", scoutingHandler.StartCycle)
		club.POST("/scouting/:report_id/continue", scoutingHandler.ContinueScouting)
		club.POST("/scouting/:report_id/stop", scoutingHandler.StopScouting)
		club.POST("/scouting/:report_id/sign", scoutingHandler.SignProspect)

		club.GET("/academy", academyHandler.GetAcademy)
		club.GET("/academy/needs-action", academyHandler.NeedsAction)
		club.POST("/academy/:prospect_id/promote", academyHandler.Promote)
		club.POST("/academy/:prospect_id/release", academyHandler.Release)

		club.GET("/roster", academyHandler.ListRoster)
		club.POST("/roster", academyHandler.AddRosterPlayer)

		club.GET("/lineup", lineupHandler.GetLineup)
		club.PUT("/lineup", lineupHandler.SetFullLineup)
		club.POST("/lineup/optimal", lineupHandler.ApplyOptimal)
		club.POST("/lineup/starter", lineupHandler.SetStarter)
		club.POST("/lineup/bench", lineupHandler.MoveToBench)
		club.DELETE("/lineup/bench/:player_id", lineupHandler.RemoveFromBench)
		club.POST("/lineup/swap", lineupHandler.Swap)
		club.POST("/lineup/batting-order", lineupHandler.SwapBattingOrder)
		club.POST("/lineup/minutes", lineupHandler.SetMinutes)
		club.POST("/lineup/formation", lineupHandler.ChangeFormation)
		club.POST("/lineup/bullpen", lineupHandler.SetBullpen)
		club.POST("/lineup/pitcher", lineupHandler.SetStartingPitcher)
	}
}
