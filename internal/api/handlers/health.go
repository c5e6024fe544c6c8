package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/pkg/database"
)

type HealthHandler struct {
	db    *database.DB
	cache *services.CacheService
}

func NewHealthHandler(db *database.DB, cache *services.CacheService) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
	}
}

// GetHealth is the liveness check: 200 whenever the process is serving.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"time":    time.Now().UTC(),
		"service": "franchise-sim",
	})
}

// GetReady reports whether the database answers. Redis is optional, so a failing
// cache is reported but does not fail readiness.
func (h *HealthHandler) GetReady(c *gin.Context) {
	checks := gin.H{"database": "ok"}
	status := http.StatusOK

	if err := h.db.HealthCheck(); err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if h.cache == nil {
		checks["cache"] = "disabled"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			checks["cache"] = err.Error()
		} else {
			checks["cache"] = "ok"
		}
		checks["cache_breaker"] = h.cache.State().String()
	}

	ready := "ready"
	if status != http.StatusOK {
		ready = "not_ready"
	}
	c.JSON(status, gin.H{
		"status": ready,
		"checks": checks,
	})
}
