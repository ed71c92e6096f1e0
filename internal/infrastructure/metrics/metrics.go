package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewDAOCounter counts repository calls by entity, operation and result.
func NewDAOCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ims",
			Name:      "dao_operations_total",
			Help:      "Repository operations by entity, operation and result.",
		},
		[]string{"entity", "op", "result"})
}

func NewRequestCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ims",
			Name:      "ops_http_requests_total",
			Help:      "Ops HTTP requests by status class.",
		},
		[]string{"result"})
}
