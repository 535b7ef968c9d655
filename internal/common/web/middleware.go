package web

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/metrics"
)

// RequestLogger logs one line per request and feeds the Prometheus
// counters. The handler label is the registered route, not the raw path,
// to keep cardinality bounded.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		handler := ctx.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		status := ctx.Writer.Status()
		duration := time.Since(start)

		metrics.HTTPRequestsTotal.WithLabelValues(handler, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(handler).Observe(duration.Seconds())

		log.Info("request completed", map[string]interface{}{
			"method":     ctx.Request.Method,
			"path":       handler,
			"status":     status,
			"durationMs": duration.Milliseconds(),
			"clientIp":   ctx.ClientIP(),
		})
	}
}
