package rest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ims-dao/internal/infrastructure/metrics"
)

func newOpsRouter(t *testing.T, db Pinger, reg *prometheus.Registry) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewOpsController(r, zap.NewNop(), db, reg)
	return r
}

func doGET(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestOpsController_HealthHandler(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantCode int
		wantBody string
	}{
		{name: "db up", wantCode: http.StatusOK, wantBody: `{"db":"up","status":"ok"}`},
		{name: "db down", pingErr: errors.New("dial tcp: connection refused"), wantCode: http.StatusServiceUnavailable, wantBody: `{"db":"down","status":"unavailable"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			e := mock.ExpectPing()
			if tt.pingErr != nil {
				e.WillReturnError(tt.pingErr)
			}

			rr := doGET(t, newOpsRouter(t, mock, prometheus.NewRegistry()), RouteHealth)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOpsController_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewDAOCounter(reg).WithLabelValues("user", "get", "ok").Inc()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rr := doGET(t, newOpsRouter(t, mock, reg), RouteMetrics)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `ims_dao_operations_total{entity="user",op="get",result="ok"} 1`)
}
