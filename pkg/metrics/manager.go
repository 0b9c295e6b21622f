package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Manager owns the pipeline metrics and the registry they live on.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	recordsIn     *prometheus.CounterVec
	recordsOut    *prometheus.CounterVec
	groups        prometheus.Counter
	stageDuration *prometheus.HistogramVec
}

// Global manager on a private registry, so Go runtime collectors never show up.
var defaultManager = NewManager() //nolint:gochecknoglobals // process-wide metrics singleton

// Default returns the process-wide manager.
func Default() *Manager { return defaultManager }

// NewManager creates a manager with its own registry unless WithRegistry is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "recordops",
		subsystem:        "pipeline",
		histogramBuckets: []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1},
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recordsIn = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_in_total",
		Help:      "Records fed into a pipeline, by dataset",
	}, []string{"dataset"})

	m.recordsOut = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_out_total",
		Help:      "Records produced by a pipeline stage, by stage",
	}, []string{"stage"})

	m.groups = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "groups_total",
		Help:      "Groups built by group-by stages",
	})

	m.stageDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stage_duration_seconds",
		Help:      "Wall time spent in each pipeline stage",
		Buckets:   m.histogramBuckets,
	}, []string{"stage"})
}

// RecordRecordsIn counts n input records for dataset.
func (m *Manager) RecordRecordsIn(dataset string, n int) {
	if !m.enabled {
		return
	}
	m.recordsIn.WithLabelValues(dataset).Add(float64(n))
}

// RecordRecordsOut counts n records produced by stage.
func (m *Manager) RecordRecordsOut(stage string, n int) {
	if !m.enabled {
		return
	}
	m.recordsOut.WithLabelValues(stage).Add(float64(n))
}

// RecordGroups counts n groups.
func (m *Manager) RecordGroups(n int) {
	if !m.enabled {
		return
	}
	m.groups.Add(float64(n))
}

// ObserveStage records how long stage took since start.
func (m *Manager) ObserveStage(stage string, start time.Time) {
	if !m.enabled {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// Registry exposes the underlying registry, e.g. for tests or an HTTP handler.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// WriteText writes all gathered metrics in the Prometheus text exposition format.
func (m *Manager) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("%w: gather: %v", ErrExportFailed, err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrExportFailed, mf.GetName(), err)
		}
	}
	return nil
}
