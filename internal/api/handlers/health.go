package handlers

import (
	"time"

	"github.com/flowmeta/eventlog-service/internal/api/response"
	"github.com/flowmeta/eventlog-service/internal/logging"
	"github.com/flowmeta/eventlog-service/pkg/clock"
	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger    logging.Logger
	clock     clock.Clock
	startedAt time.Time
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(logger logging.Logger, clk clock.Clock) *HealthHandler {
	return &HealthHandler{
		logger:    logger,
		clock:     clk,
		startedAt: clk.Now(),
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status        string `json:"status" example:"ok"`
	Service       string `json:"service" example:"eventlog-service"`
	Version       string `json:"version" example:"1.0.0"`
	UptimeSeconds int64  `json:"uptime_seconds" example:"4213"`
} // @name HealthResponse

// Health godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API service
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response.OK(c, HealthResponse{
		Status:        "ok",
		Service:       "eventlog-service",
		Version:       "1.0.0",
		UptimeSeconds: int64(h.clock.Now().Sub(h.startedAt).Seconds()),
	})
}
