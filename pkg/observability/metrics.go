package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/dfa/pkg/domain"
)

// Metrics holds the engine collectors and the registry they are registered on.
type Metrics struct {
	registry        *prometheus.Registry
	Classifications *prometheus.CounterVec
	Loads           prometheus.Counter
	LoadErrors      *prometheus.CounterVec
	InputLength     prometheus.Histogram
	ClassifyLatency prometheus.Histogram
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Classifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dfa_classifications_total",
				Help: "Total number of classified strings by verdict",
			},
			[]string{"verdict"},
		),
		Loads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dfa_loads_total",
			Help: "Total number of successfully built automata",
		}),
		LoadErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dfa_load_errors_total",
				Help: "Total number of failed automaton builds by error kind",
			},
			[]string{"kind"},
		),
		InputLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dfa_classify_input_length",
			Help:    "Length in bytes of classified strings",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		ClassifyLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dfa_classify_duration_seconds",
			Help:    "Duration of single classifications",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 7),
		}),
	}
	m.registry.MustRegister(m.Classifications, m.Loads, m.LoadErrors, m.InputLength, m.ClassifyLatency)
	return m
}

// Registry exposes the underlying registry, e.g. to add process collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLoad: func(ctx context.Context, e *domain.LoadEvent) {
			m.Loads.Inc()
		},
		OnLoadError: func(ctx context.Context, e *domain.LoadEvent) {
			kind := e.ErrorKind
			if kind == "" {
				kind = "other"
			}
			m.LoadErrors.WithLabelValues(kind).Inc()
		},
		OnClassify: func(ctx context.Context, e *domain.ClassifyEvent) {
			m.Classifications.WithLabelValues(e.Verdict.String()).Inc()
			m.InputLength.Observe(float64(len(e.Input)))
			m.ClassifyLatency.Observe(e.Elapsed.Seconds())
		},
	}
}

// Chain combines hooks; each callback of every argument is invoked in order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLoad: func(ctx context.Context, e *domain.LoadEvent) {
			for _, h := range hooks {
				if h.OnLoad != nil {
					h.OnLoad(ctx, e)
				}
			}
		},
		OnLoadError: func(ctx context.Context, e *domain.LoadEvent) {
			for _, h := range hooks {
				if h.OnLoadError != nil {
					h.OnLoadError(ctx, e)
				}
			}
		},
		OnClassify: func(ctx context.Context, e *domain.ClassifyEvent) {
			for _, h := range hooks {
				if h.OnClassify != nil {
					h.OnClassify(ctx, e)
				}
			}
		},
	}
}
