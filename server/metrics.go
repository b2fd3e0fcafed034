package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// metrics are the prometheus collectors of one Server.
type metrics struct {
	queries        *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	responseStatus *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evcharge",
			Name:      "query_total",
			Help:      "Advisor queries answered, by operation and whether a result was found.",
		}, []string{"operation", "found"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "evcharge",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"method", "route"}),
		responseStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evcharge",
			Name:      "response_status_total",
			Help:      "HTTP responses by status code.",
		}, []string{"status", "method", "route"}),
	}
	reg.MustRegister(m.queries, m.httpDuration, m.responseStatus)

	return m
}

// observe counts one answered query.
func (m *metrics) observe(op string, found bool) {
	m.queries.WithLabelValues(op, strconv.FormatBool(found)).Inc()
}

// instrument records duration and status per chi route pattern, so the
// label set stays bounded whatever paths clients request.
func (m *metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		m.responseStatus.WithLabelValues(strconv.Itoa(status), r.Method, route).Inc()
	})
}
