package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rinasm/journeymap/pkg/domain"
)

// Metrics holds the Prometheus collectors fed by engine lifecycle events.
// All collectors use the "journeymap" namespace.
type Metrics struct {
	Builds        prometheus.Counter
	BuildDuration prometheus.Histogram
	GraphJourneys prometheus.Gauge
	GraphNodes    prometheus.Gauge
	GraphPaths    prometheus.Gauge
	Exports       *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil
// registerer yields unregistered collectors, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Builds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "journeymap",
			Name:      "builds_total",
			Help:      "Total number of graph builds",
		}),
		BuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "journeymap",
			Name:      "build_duration_seconds",
			Help:      "Duration of graph builds in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 0.1ms to ~400ms
		}),
		GraphJourneys: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "journeymap",
			Name:      "graph_journeys",
			Help:      "Journeys in the most recent graph",
		}),
		GraphNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "journeymap",
			Name:      "graph_nodes",
			Help:      "Nodes in the most recent graph",
		}),
		GraphPaths: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "journeymap",
			Name:      "graph_paths",
			Help:      "Root-to-leaf paths in the most recent graph",
		}),
		Exports: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "journeymap",
			Name:      "exports_total",
			Help:      "Total number of visualization exports by format",
		}, []string{"format"}),
	}
}

// Hooks returns lifecycle hooks that record every event on m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnBuildComplete: func(ctx context.Context, e *domain.BuildEvent) {
			m.Builds.Inc()
			m.BuildDuration.Observe(e.Duration.Seconds())
			m.GraphJourneys.Set(float64(e.Journeys))
			m.GraphNodes.Set(float64(e.Nodes))
			m.GraphPaths.Set(float64(e.Paths))
		},
		OnExport: func(ctx context.Context, e *domain.ExportEvent) {
			m.Exports.WithLabelValues(e.Format).Inc()
		},
	}
}
