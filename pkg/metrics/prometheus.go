package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	scansTotal  prometheus.Counter
	assetsTotal *prometheus.CounterVec
	signals     *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

// New creates a recorder registered on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Recorder{
		scansTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "marketscanner_scans_total",
				Help: "Total number of scan requests processed",
			},
		),
		assetsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketscanner_assets_total",
				Help: "Assets processed, by outcome",
			},
			[]string{"outcome"},
		),
		signals: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketscanner_signals_total",
				Help: "Signals emitted, by action",
			},
			[]string{"action"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketscanner_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordScan counts one scan request.
func (r *Recorder) RecordScan() {
	r.scansTotal.Inc()
}

// RecordAsset counts one asset with its outcome ("evaluated" or a skip reason).
func (r *Recorder) RecordAsset(outcome string) {
	r.assetsTotal.WithLabelValues(outcome).Inc()
}

// RecordSignal counts one emitted signal by its action.
func (r *Recorder) RecordSignal(action string) {
	r.signals.WithLabelValues(action).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordScan() {}
func (Nop) RecordAsset(string) {}
func (Nop) RecordSignal(string) {}
func (Nop) RecordLatency(string, float64) {}
