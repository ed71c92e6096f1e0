package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// RequestLogGin logs every ops request and counts it by status class ("2xx", "5xx").
// Scrapes of the metrics endpoint are neither logged nor counted.
func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		if mCounter != nil {
			mCounter.WithLabelValues(statusClass(status)).Inc()
		}

		route := c.FullPath()
		if route == "" {
			route = "<unmatched>"
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if status >= http.StatusInternalServerError {
			logger.Warn("HTTP request", fields...)
			return
		}
		logger.Info("HTTP request", fields...)
	}
}

func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}
