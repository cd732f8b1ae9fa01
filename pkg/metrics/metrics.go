package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллекторы Prometheus сервиса
// Все методы безопасны для nil-получателя (метрики выключены)
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingsSavedTotal  *prometheus.CounterVec
	conflictsTotal      *prometheus.CounterVec
}

// New создает и регистрирует коллекторы
// Если reg == nil, используется prometheus.DefaultRegisterer
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		bookingsSavedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_saved_total",
			Help:        "Bookings accepted into the working set",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		conflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Submissions rejected because of an overlapping booking",
			ConstLabels: constLabels,
		}, []string{"room"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.httpRequestsTotal, m.httpRequestDuration, m.bookingsSavedTotal, m.conflictsTotal)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// IncBookingSaved фиксирует принятое бронирование (create / update)
func (m *Metrics) IncBookingSaved(operation string) {
	if m == nil {
		return
	}
	m.bookingsSavedTotal.WithLabelValues(operation).Inc()
}

// IncConflict фиксирует отклонённое из-за пересечения бронирование
func (m *Metrics) IncConflict(room string) {
	if m == nil {
		return
	}
	m.conflictsTotal.WithLabelValues(room).Inc()
}
