package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_submitted_total",
			Help: "Total number of accepted lead submissions",
		},
	)

	leadsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_confirmed_total",
			Help: "Total number of double opt-in confirmations",
		},
	)

	notificationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_errors_total",
			Help: "Total number of failed notification sends",
		},
		[]string{"kind"},
	)

	leadsPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "leads_pending",
			Help: "Leads currently awaiting double opt-in",
		},
	)

	leadsConfirmedGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "leads_confirmed",
			Help: "Leads with completed double opt-in",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadSubmitted() {
	leadsSubmitted.Inc()
}

func RecordLeadConfirmed() {
	leadsConfirmed.Inc()
}

func RecordNotificationError(kind string) {
	notificationErrors.WithLabelValues(kind).Inc()
}

func SetLeadCounts(pending, confirmed float64) {
	leadsPending.Set(pending)
	leadsConfirmedGauge.Set(confirmed)
}
