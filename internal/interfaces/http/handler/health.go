package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siteops/backend/internal/interfaces/http/dto"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping() error
}

// HealthHandler reports service liveness and database reachability
type HealthHandler struct {
	BaseHandler
	db      Pinger
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Health responds with service status and database reachability
func (h *HealthHandler) Health(c *gin.Context) {
	status := "ok"
	database := "up"
	code := http.StatusOK

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status = "degraded"
			database = "down"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, dto.NewSuccessResponse(gin.H{
		"status":   status,
		"database": database,
		"version":  h.version,
	}))
}

// RegisterRoutes registers the health routes
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}
