package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"ims-dao/internal/infrastructure/metrics"
)

func TestRequestLogGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)
	counter := metrics.NewRequestCounter(prometheus.NewRegistry())

	r := gin.New()
	r.Use(RequestLogGin(zap.New(core), counter))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/down", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })
	r.GET("/api/v1/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/ok", "/down", "/api/v1/metrics", "/nope"} {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok", entries[0].ContextMap()["route"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.EqualValues(t, http.StatusServiceUnavailable, entries[1].ContextMap()["status"])
	assert.Equal(t, "<unmatched>", entries[2].ContextMap()["route"])

	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues("2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues("5xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues("4xx")))
}
