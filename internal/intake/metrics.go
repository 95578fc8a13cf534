package intake

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Outcome labels for ImagesTotal.
const (
	OutcomeReady     = "ready"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"
	OutcomeDiscarded = "discarded"
)

// Metrics holds the Prometheus metrics of the intake pipeline.
type Metrics struct {
	ImagesTotal      *prometheus.CounterVec
	CompressDuration prometheus.Histogram
}

// NewMetrics creates and registers the metrics with the given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		ImagesTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "repairctl",
				Subsystem: "intake",
				Name:      "images_total",
				Help:      "Total number of selected images by final outcome",
			},
			[]string{"outcome"},
		),
		CompressDuration: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "repairctl",
				Subsystem: "intake",
				Name:      "compress_duration_seconds",
				Help:      "Time spent decoding, scaling and re-encoding one image",
				Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
		),
	}
}

func (m *Metrics) outcome(o string) {
	if m == nil {
		return
	}
	m.ImagesTotal.WithLabelValues(o).Inc()
}

func (m *Metrics) observe(seconds float64) {
	if m == nil {
		return
	}
	m.CompressDuration.Observe(seconds)
}

// Push sends everything gathered by g to a Prometheus pushgateway.
// A short-lived CLI cannot be scraped, so metrics are pushed on exit.
func Push(ctx context.Context, url, job string, g prometheus.Gatherer) error {
	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	if err := push.New(url, job).Client(client).Gatherer(g).PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}
	return nil
}
