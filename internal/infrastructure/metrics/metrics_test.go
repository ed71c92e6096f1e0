package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDAOCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewDAOCounter(reg)

	c.WithLabelValues("user", "create", "ok").Inc()
	c.WithLabelValues("user", "create", "ok").Inc()
	c.WithLabelValues("user", "get", "not_found").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.WithLabelValues("user", "create", "ok")))
	assert.Equal(t, 2, testutil.CollectAndCount(c))

	// a second registration on the same registry is a programming error
	require.Panics(t, func() { NewDAOCounter(reg) })
}
