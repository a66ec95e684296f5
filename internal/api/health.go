package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantryplate/backend/internal/database"
)

// HealthHandler reports process and store liveness.
type HealthHandler struct {
	db *database.HealthDB
}

// NewHealthHandler creates a new HealthHandler. db may be nil when no
// liveness connection is available.
func NewHealthHandler(db *database.HealthDB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	if h.db != nil {
		if err := h.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "database unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
