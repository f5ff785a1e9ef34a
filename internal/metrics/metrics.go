// Package metrics содержит Prometheus-счётчики сервиса нарезки.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SplitsTotal      prometheus.Counter
	SplitFailures    *prometheus.CounterVec
	SegmentsProduced prometheus.Counter
	SplitDuration    prometheus.Histogram
}

// New регистрирует метрики в переданном реестре.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SplitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "audiosplit_splits_total",
			Help: "Total number of split requests handled.",
		}),
		SplitFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "audiosplit_split_failures_total",
			Help: "Split failures by kind.",
		}, []string{"kind"}),
		SegmentsProduced: factory.NewCounter(prometheus.CounterOpts{
			Name: "audiosplit_segments_produced_total",
			Help: "Total number of segments returned to clients.",
		}),
		SplitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "audiosplit_split_duration_seconds",
			Help:    "Wall-clock duration of split requests.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
	}
}
