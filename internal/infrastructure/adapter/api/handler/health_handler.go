package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// HealthReporter reports database health
type HealthReporter interface {
	Health(ctx context.Context) database.HealthStatus
}

// HealthHandler answers liveness and readiness probes
type HealthHandler struct {
	reporter HealthReporter
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(reporter HealthReporter) *HealthHandler {
	return &HealthHandler{reporter: reporter}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	status := h.reporter.Health(c.Request.Context())

	resp := dto.HealthResponse{
		Status:        "ok",
		Driver:        status.Driver,
		LatencyMs:     status.LatencyMs,
		OpenConns:     status.OpenConnections,
		InUse:         status.InUse,
		Idle:          status.Idle,
		Queries:       status.Queries.Total,
		SlowQueries:   status.Queries.Slow,
		FailedQueries: status.Queries.Failed,
	}
	code := http.StatusOK
	if !status.Healthy {
		resp.Status = "unavailable"
		resp.Error = status.Error
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, resp)
}
