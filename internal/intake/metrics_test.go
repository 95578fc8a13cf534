package intake

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.outcome(OutcomeReady)
	m.outcome(OutcomeReady)
	m.outcome(OutcomeFailed)
	m.observe(0.2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ImagesTotal.WithLabelValues(OutcomeReady)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImagesTotal.WithLabelValues(OutcomeFailed)))

	expected := `
# HELP repairctl_intake_images_total Total number of selected images by final outcome
# TYPE repairctl_intake_images_total counter
repairctl_intake_images_total{outcome="failed"} 1
repairctl_intake_images_total{outcome="ready"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "repairctl_intake_images_total"))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.outcome(OutcomeReady)
		m.observe(1)
	})
}

func TestPush(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotMethod, gotPath, gotBody = r.Method, r.URL.Path, string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.outcome(OutcomeReady)

	require.NoError(t, Push(context.Background(), srv.URL, "repairctl", reg))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/metrics/job/repairctl", gotPath)
	assert.NotEmpty(t, gotBody)
}

func TestPush_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := Push(context.Background(), srv.URL, "repairctl", prometheus.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to push metrics")
}
