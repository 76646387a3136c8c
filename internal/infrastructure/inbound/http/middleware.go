package delivery_http

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	ports "blog-service/internal/domain/ports/output"
)

const unmatchedRoute = "unmatched"

func LoggerMiddleware(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("route", route(c)),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// MetricsMiddleware labels requests by route template, not by raw path.
func MetricsMiddleware(metrics ports.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.IncrementHTTPRequests(c.Request.Method, route(c), status)
		metrics.RecordHTTPRequestDuration(c.Request.Method, route(c), status, time.Since(start))
	}
}

func route(c *gin.Context) string {
	if r := c.FullPath(); r != "" {
		return r
	}
	return unmatchedRoute
}
