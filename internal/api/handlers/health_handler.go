package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citypulse/app-announcements/internal/services"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	announcements *services.AnnouncementService
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(announcements *services.AnnouncementService) *HealthHandler {
	return &HealthHandler{announcements: announcements}
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"announcements": h.announcements.Count(),
	})
}
