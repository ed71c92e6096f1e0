package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type OpsController struct {
	logger *zap.Logger
	db     Pinger
}

func NewOpsController(r *gin.Engine, logger *zap.Logger, db Pinger, gatherer prometheus.Gatherer) *OpsController {
	oc := &OpsController{
		logger: logger,
		db:     db,
	}

	r.GET(RouteHealth, oc.HealthHandler)
	r.GET(RouteMetrics, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return oc
}

// HealthHandler reports 503 while the database does not answer a ping.
func (oc *OpsController) HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := oc.db.Ping(ctx); err != nil {
		oc.logger.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "db": "down"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "up"})
}
