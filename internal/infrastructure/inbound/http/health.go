package delivery_http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ports "blog-service/internal/domain/ports/output"
)

const healthCheckTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks  map[string]Pinger
	log     ports.Logger
	metrics ports.MetricsProvider
}

// NewHealthHandler probes every named dependency on each request.
func NewHealthHandler(checks map[string]Pinger, log ports.Logger, metrics ports.MetricsProvider) *HealthHandler {
	return &HealthHandler{checks: checks, log: log, metrics: metrics}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	healthy := true
	results := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			h.log.Warn("Health check failed", slog.String("check", name), slog.String("error", err.Error()))
			results[name] = err.Error()
			healthy = false
			continue
		}
		results[name] = "ok"
	}

	h.metrics.SetServiceHealth(healthy)

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "error",
			"checks":    results,
			"timestamp": time.Now().Unix(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"checks":    results,
		"timestamp": time.Now().Unix(),
	})
}
