package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service readiness.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
