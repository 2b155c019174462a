// Package prometheus provides Prometheus implementations of the observer
// interfaces used by mountinfo.
package prometheus

import (
	"github.com/marmos91/mountinfo/pkg/metrics"
	"github.com/marmos91/mountinfo/pkg/mounts"
	"github.com/marmos91/mountinfo/pkg/query"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mountinfo"

// queryMetrics is the Prometheus implementation of query.Observer.
type queryMetrics struct {
	records  prometheus.Counter
	rejected *prometheus.CounterVec
	selected prometheus.Gauge
	emitted  prometheus.Gauge
	matched  prometheus.Gauge
	duration prometheus.Gauge
	lastRun  prometheus.Gauge
}

// NewQueryMetrics creates a Prometheus-backed query.Observer registered
// with the process registry.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
func NewQueryMetrics() query.Observer {
	if !metrics.IsEnabled() {
		return nil
	}
	return newQueryMetrics(metrics.GetRegistry())
}

func newQueryMetrics(reg prometheus.Registerer) *queryMetrics {
	m := &queryMetrics{
		records: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Mount records enumerated",
		}),
		rejected: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_rejected_total",
				Help:      "Mount records rejected, by filter stage",
			},
			[]string{"stage"},
		),
		selected: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "values_selected",
			Help:      "Distinct values selected by the record pass",
		}),
		emitted: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "values_emitted",
			Help:      "Values surviving the point filter",
		}),
		matched: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "query_matched",
			Help:      "1 if the last query matched at least one value, 0 otherwise",
		}),
		duration: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Wall time of the last query",
		}),
		lastRun: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last query finished",
		}),
	}

	// Export every stage, including those that rejected nothing.
	for _, stage := range query.Stages() {
		if stage == query.StageSelect {
			continue
		}
		m.rejected.WithLabelValues(stage.String())
	}
	return m
}

// ObserveDecision implements query.Observer.
func (m *queryMetrics) ObserveDecision(_ mounts.Record, d query.Decision) {
	if m == nil {
		return
	}
	m.records.Inc()
	if d.Outcome != query.Accept {
		m.rejected.WithLabelValues(d.Stage.String()).Inc()
	}
}

// ObserveStats implements query.Observer.
func (m *queryMetrics) ObserveStats(s query.Stats) {
	if m == nil {
		return
	}
	m.selected.Set(float64(s.Selected))
	m.emitted.Set(float64(s.Emitted))
	if s.Emitted > 0 {
		m.matched.Set(1)
	} else {
		m.matched.Set(0)
	}
	m.duration.Set(s.Duration.Seconds())
	m.lastRun.SetToCurrentTime()
}
