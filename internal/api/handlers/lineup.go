package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/franchise-sim/internal/lineup"
	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

type LineupHandler struct {
	lineups *services.LineupService
}

func NewLineupHandler(lineups *services.LineupService) *LineupHandler {
	return &LineupHandler{lineups: lineups}
}

type SetStarterRequest struct {
	Slot     *int   `json:"slot" binding:"required,min=0"`
	PlayerID string `json:"player_id" binding:"required"`
}

type PlayerRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

type SwapRequest struct {
	A lineup.SlotRef `json:"a"`
	B lineup.SlotRef `json:"b"`
}

type BattingOrderRequest struct {
	A *int `json:"a" binding:"required"`
	B *int `json:"b" binding:"required"`
}

type MinutesRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Minutes  *int   `json:"minutes" binding:"required"`
}

type FormationRequest struct {
	Formation string `json:"formation" binding:"required"`
}

type BullpenRequest struct {
	Role     lineup.BullpenRole `json:"role" binding:"required"`
	PlayerID string             `json:"player_id"`
}

func (h *LineupHandler) respond(c *gin.Context, view *services.LineupView, err error) {
	if err != nil {
		sendServiceError(c, err, "Club not found")
		return
	}
	utils.SendSuccess(c, view)
}

func (h *LineupHandler) GetLineup(c *gin.Context) {
	view, err := h.lineups.GetLineup(c.Request.Context(), c.Param("club_id"))
	h.respond(c, view, err)
}

func (h *LineupHandler) ApplyOptimal(c *gin.Context) {
	view, err := h.lineups.ApplyOptimalLineup(c.Request.Context(), c.Param("club_id"))
	h.respond(c, view, err)
}

func (h *LineupHandler) SetStarter(c *gin.Context) {
	var req SetStarterRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.lineups.SetStarter(c.Request.Context(), c.Param("club_id"), *req.Slot, req.PlayerID)
	h.respond(c, view, err)
}

func (h *LineupHandler) MoveToBench(c *gin.Context) {
	var req PlayerRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.lineups.MoveToBench(c.Request.Context(), c.Param("club_id"), req.PlayerID)
	h.respond(c, view, err)
}

func (h *LineupHandler) RemoveFromBench(c *gin.Context) {
	view, err := h.lineups.RemoveFromBench(c.Request.Context(), c.Param("club_id"), c.Param("player_id"))
	h.respond(c, view, err)
}

func (h *LineupHandler) Swap(c *gin.Context) {
	var req SwapRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.lineups.Swap(c.Request.Context(), c.Param("club_id"), req.A, req.B)
	h.respond(c, view, err)
}

func (h *LineupHandler) SwapBattingOrder(c *gin.Context) {
	var req BattingOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.lineups.SwapBattingOrder(c.Request.Context(), c.Param("club_id"), *req.A, *req.B)
	h.respond(c, view, err)
}

func (h *LineupHandler) SetMinutes(c *gin.Context) {
	var req MinutesRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.lineups.SetMinutes(c.Request.Context(), c.Param("club_id"), req.PlayerID, *req.Minutes)
	h.respond(c, view, err)
}

func (h *LineupHandler) ChangeFormation(c *gin.Context) {
	var req FormationRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.lineups.ChangeFormation(c.Request.Context(), c.Param("club_id"), req.Formation)
	h.respond(c, view, err)
}

// SetBullpen assigns a bullpen role; an empty player_id clears it.
func (h *LineupHandler) SetBullpen(c *gin.Context) {
	var req BullpenRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.lineups.SetBullpenRole(c.Request.Context(), c.Param("club_id"), req.Role, req.PlayerID)
	h.respond(c, view, err)
}

func (h *LineupHandler) SetStartingPitcher(c *gin.Context) {
	var req PlayerRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.lineups.SetStartingPitcher(c.Request.Context(), c.Param("club_id"), req.PlayerID)
	h.respond(c, view, err)
}

func (h *LineupHandler) SetFullLineup(c *gin.Context) {
	var req lineup.Assignment
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.lineups.SetFullLineup(c.Request.Context(), c.Param("club_id"), req)
	h.respond(c, view, err)
}
