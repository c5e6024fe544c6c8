package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

type ScoutingHandler struct {
	clubs *services.ClubService
}

func NewScoutingHandler(clubs *services.ClubService) *ScoutingHandler {
	return &ScoutingHandler{clubs: clubs}
}

func (h *ScoutingHandler) ListReports(c *gin.Context) {
	reports, err := h.clubs.ListReports(c.Request.Context(), c.Param("club_id"))
	if err != nil {
		sendServiceError(c, err, "Club not found")
		return
	}
	utils.SendSuccess(c, reports)
}

func (h *ScoutingHandler) StartCycle(c *gin.Context) {
	reports, err := h.clubs.StartScoutingCycle(c.Request.Context(), c.Param("club_id"))
	if err != nil {
		sendServiceError(c, err, "Club not found")
		return
	}
	utils.SendSuccess(c, reports)
}

func (h *ScoutingHandler) ContinueScouting(c *gin.Context) {
	report, err := h.clubs.ContinueScouting(c.Request.Context(), c.Param("club_id"), c.Param("report_id"))
	if err != nil {
		sendServiceError(c, err, "Scouting report not found")
		return
	}
	utils.SendSuccess(c, report)
}

func (h *ScoutingHandler) StopScouting(c *gin.Context) {
	report, err := h.clubs.StopScouting(c.Request.Context(), c.Param("club_id"), c.Param("report_id"))
	if err != nil {
		sendServiceError(c, err, "Scouting report not found")
		return
	}
	utils.SendSuccess(c, report)
}

func (h *ScoutingHandler) SignProspect(c *gin.Context) {
	prospect, err := h.clubs.SignProspect(c.Request.Context(), c.Param("club_id"), c.Param("report_id"))
	if err != nil {
		sendServiceError(c, err, "Scouting report not found")
		return
	}
	utils.SendCreated(c, prospect)
}
