package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"fahs/internal/wizard"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db      *sqlx.DB
	variant wizard.Variant
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB, variant wizard.Variant) *HealthHandler {
	return &HealthHandler{db: db, variant: variant}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "variant": h.variant.Name})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "variant": h.variant.Name})
}
