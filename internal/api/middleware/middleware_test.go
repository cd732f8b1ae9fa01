package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurgeryBoard/pkg/metrics"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) add(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Info(format string, v ...interface{})  { l.add("INFO", format, v...) }
func (l *recordingLogger) Warn(format string, v ...interface{})  { l.add("WARN", format, v...) }
func (l *recordingLogger) Error(format string, v ...interface{}) { l.add("ERROR", format, v...) }

func newRouter(mw ...mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()
	for _, m := range mw {
		r.Use(m)
	}
	r.HandleFunc("/api/v1/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["bookingId"] == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return r
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New("surgery_board_test", reg)
	router := newRouter(MetricsMiddleware(m))

	for _, id := range []string{"a", "b", "missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil))
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	total := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			assert.Equal(t, "/api/v1/bookings/{bookingId}", labels["route"])
			total[labels["status"]] = metric.GetCounter().GetValue()
		}
	}

	assert.Equal(t, 2.0, total["200"])
	assert.Equal(t, 1.0, total["404"])
	count, err := testutil.GatherAndCount(reg, "http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRequestLogger(t *testing.T) {
	logger := &recordingLogger{}
	router := newRouter(RequestLogger(logger))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/a", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/missing", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))

	require.Len(t, logger.lines, 2)
	assert.Contains(t, logger.lines[0], "INFO GET /api/v1/bookings/a - status=200")
	assert.Contains(t, logger.lines[1], "WARN GET /api/v1/bookings/missing - status=404")
	assert.Contains(t, logger.lines[1], "request_id=req-42")
}
