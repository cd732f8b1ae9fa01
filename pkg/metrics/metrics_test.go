package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("surgery-board", reg)

	m.ObserveHTTPRequest("POST", "/api/v1/bookings", 201, 0.01)
	m.ObserveHTTPRequest("POST", "/api/v1/bookings", 409, 0.02)
	m.IncBookingSaved("create")
	m.IncBookingSaved("create")
	m.IncConflict("quir_1")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/bookings", "409")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsSavedTotal.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conflictsTotal.WithLabelValues("quir_1")))
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveHTTPRequest("GET", "/", 200, 0.1)
	m.IncBookingSaved("update")
	m.IncConflict("quir_2")
}

func TestMetricsDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New("surgery-board", reg)

	assert.Panics(t, func() { New("surgery-board", reg) })
}
