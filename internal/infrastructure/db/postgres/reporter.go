package postgres

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ims-dao/internal/domain/storage"
)

const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Reporter turns driver outcomes into storage errors, logging and counting
// each of them for one entity.
type Reporter struct {
	entity   string
	log      *zap.Logger
	mCounter *prometheus.CounterVec
}

// NewReporter accepts a nil logger or counter; both are then skipped.
func NewReporter(entity string, logger *zap.Logger, mCounter *prometheus.CounterVec) Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Reporter{
		entity:   entity,
		log:      logger.With(zap.String("entity", entity)),
		mCounter: mCounter,
	}
}

func (r Reporter) OK(op string) {
	r.count(op, ResultOK)
}

func (r Reporter) NotFound(op, key string, cause error) error {
	r.count(op, ResultNotFound)
	r.log.Warn(r.entity+" not found",
		zap.String("op", op),
		zap.String("key", key),
		zap.Error(cause),
	)

	return storage.NotFound(r.entity, op, key, cause)
}

func (r Reporter) Fail(op, key string, cause error) error {
	r.count(op, ResultError)
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("key", key),
		zap.Error(cause),
	}
	if c := ConstraintName(cause); c != "" {
		fields = append(fields, zap.String("constraint", c))
	}
	r.log.Error(r.entity+" "+op+" failed", fields...)

	return storage.DataAccess(r.entity, op, key, cause)
}

// Lookup classifies the error of a query expected to return exactly one row.
func (r Reporter) Lookup(op, key string, err error) error {
	if IsNoRows(err) {
		return r.NotFound(op, key, err)
	}
	return r.Fail(op, key, err)
}

func (r Reporter) count(op, result string) {
	if r.mCounter != nil {
		r.mCounter.WithLabelValues(r.entity, op, result).Inc()
	}
}
