package aggregates

import (
	"time"

	"github.com/yungbote/quizhub-backend/internal/observability"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

// Hooks receives the outcome of every aggregate write. status is "success" or
// the error code the write failed with.
type Hooks interface {
	Observe(op, status string, took time.Duration)
	Conflict(op string)
	Retry(op string)
}

type discardHooks struct{}

func (discardHooks) Observe(string, string, time.Duration) {}
func (discardHooks) Conflict(string)                       {}
func (discardHooks) Retry(string)                          {}

type metricsHooks struct {
	metrics *observability.Metrics
	log     *logger.Logger
}

// NewMetricsHooks feeds write outcomes into metrics and logs the writes that
// lost a race or hit a transient fault. metrics may be nil.
func NewMetricsHooks(metrics *observability.Metrics, log *logger.Logger) Hooks {
	if log == nil {
		log = logger.Nop()
	}
	return &metricsHooks{metrics: metrics, log: log.With("component", "AggregateHooks")}
}

func (h *metricsHooks) Observe(op, status string, took time.Duration) {
	h.metrics.ObserveAggregateOperation(op, status, took)
}

func (h *metricsHooks) Conflict(op string) {
	h.metrics.IncAggregateConflict(op)
	h.log.Debug("aggregate write conflicted", "op", op)
}

func (h *metricsHooks) Retry(op string) {
	h.metrics.IncAggregateRetry(op)
	h.log.Debug("aggregate write hit a transient fault", "op", op)
}
