package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/internal/store"
	"github.com/stitts-dev/franchise-sim/pkg/logger"
	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

// sendServiceError maps a service error onto the response envelope.
func sendServiceError(c *gin.Context, err error, notFound string) {
	switch {
	case models.IsRejected(err):
		utils.SendRejected(c, err.Error())
	case errors.Is(err, store.ErrNotFound):
		utils.SendNotFound(c, notFound)
	case errors.Is(err, services.ErrValidation):
		utils.SendValidationError(c, "Invalid request", err.Error())
	default:
		c.Error(err)
		logger.WithRequestContext(c.GetString("request_id"), c.Param("club_id")).
			WithField("path", c.Request.URL.Path).
			WithError(err).Error("Request failed")
		utils.SendInternalError(c, "Internal server error")
	}
}

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return false
	}
	return true
}
