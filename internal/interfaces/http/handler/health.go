package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bukubiz/backend/internal/infrastructure/persistence"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	BaseHandler
	db      *persistence.Database
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *persistence.Database, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// RegisterRoutes registers health routes on the given router group
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/healthz", h.Liveness)
	rg.GET("/readyz", h.Readiness)
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	h.Success(c, gin.H{"status": "ok", "version": h.version})
}

// Readiness handles GET /readyz; it fails when the database is unreachable
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	h.Success(c, gin.H{"status": "ready"})
}
