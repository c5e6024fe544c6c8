package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/franchise-sim/internal/api/middleware"
	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/internal/store"
	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

const clubTokenTTL = 30 * 24 * time.Hour

type ClubHandler struct {
	clubs     *services.ClubService
	jwtSecret string
}

func NewClubHandler(clubs *services.ClubService, jwtSecret string) *ClubHandler {
	return &ClubHandler{
		clubs:     clubs,
		jwtSecret: jwtSecret,
	}
}

type CreateClubResponse struct {
	Club  *store.Club `json:"club"`
	Token string      `json:"token"`
}

// CreateClub creates a club and returns a token scoped to it.
func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req services.CreateClubRequest
	if !bindJSON(c, &req) {
		return
	}

	club, err := h.clubs.CreateClub(c.Request.Context(), req)
	if err != nil {
		sendServiceError(c, err, "Club not found")
		return
	}

	token, err := middleware.IssueToken(h.jwtSecret, club.ID, clubTokenTTL)
	if err != nil {
		sendServiceError(c, err, "")
		return
	}
	utils.SendCreated(c, CreateClubResponse{Club: club, Token: token})
}

func (h *ClubHandler) ListClubs(c *gin.Context) {
	clubs, err := h.clubs.ListClubs(c.Request.Context())
	if err != nil {
		sendServiceError(c, err, "")
		return
	}
	utils.SendList(c, clubs, len(clubs))
}

func (h *ClubHandler) GetClub(c *gin.Context) {
	club, err := h.clubs.GetClub(c.Request.Context(), c.Param("club_id"))
	if err != nil {
		sendServiceError(c, err, "Club not found")
		return
	}
	utils.SendSuccess(c, club)
}

func (h *ClubHandler) AdvanceWeek(c *gin.Context) {
	summary, err := h.clubs.AdvanceWeek(c.Request.Context(), c.Param("club_id"))
	if err != nil {
		sendServiceError(c, err, "Club not found")
		return
	}
	utils.SendSuccess(c, summary)
}

// Search matches names across the roster, academy and scouting pool.
func (h *ClubHandler) Search(c *gin.Context) {
	results, err := h.clubs.SearchPlayers(c.Request.Context(), c.Param("club_id"), c.Query("q"))
	if err != nil {
		sendServiceError(c, err, "Club not found")
		return
	}
	utils.SendSuccess(c, results)
}
