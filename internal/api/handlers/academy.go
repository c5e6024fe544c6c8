package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

type AcademyHandler struct {
	clubs *services.ClubService
}

func NewAcademyHandler(clubs *services.ClubService) *AcademyHandler {
	return &AcademyHandler{clubs: clubs}
}

func (h *AcademyHandler) GetAcademy(c *gin.Context) {
	view, err := h.clubs.AcademyInfo(c.Request.Context(), c.Param("club_id"))
	if err != nil {
		sendServiceError(c, err, "Club not found")
		return
	}
	utils.SendSuccess(c, view)
}

func (h *AcademyHandler) NeedsAction(c *gin.Context) {
	prospects, err := h.clubs.ProspectsNeedingAction(c.Request.Context(), c.Param("club_id"))
	if err != nil {
		sendServiceError(c, err, "Club not found")
		return
	}
	utils.SendSuccess(c, prospects)
}

func (h *AcademyHandler) Promote(c *gin.Context) {
	player, err := h.clubs.PromoteProspect(c.Request.Context(), c.Param("club_id"), c.Param("prospect_id"))
	if err != nil {
		sendServiceError(c, err, "Prospect not found")
		return
	}
	utils.SendSuccess(c, player)
}

func (h *AcademyHandler) Release(c *gin.Context) {
	prospect, err := h.clubs.ReleaseProspect(c.Request.Context(), c.Param("club_id"), c.Param("prospect_id"))
	if err != nil {
		sendServiceError(c, err, "Prospect not found")
		return
	}
	utils.SendSuccess(c, prospect)
}

func (h *AcademyHandler) ListRoster(c *gin.Context) {
	roster, err := h.clubs.ListRoster(c.Request.Context(), c.Param("club_id"))
	if err != nil {
		sendServiceError(c, err, "Club not found")
		return
	}
	utils.SendList(c, roster, len(roster))
}

func (h *AcademyHandler) AddRosterPlayer(c *gin.Context) {
	var player models.Player
	if !bindJSON(c, &player) {
		return
	}
	added, err := h.clubs.AddRosterPlayer(c.Request.Context(), c.Param("club_id"), player)
	if err != nil {
		sendServiceError(c, err, "Club not found")
		return
	}
	utils.SendCreated(c, added)
}
