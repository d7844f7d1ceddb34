package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Ratings
	RatingsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_ratings_submitted_total",
			Help: "Ratings accepted by outcome (created, updated)",
		},
		[]string{"outcome"},
	)

	DuplicateKeyRecovered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_duplicate_key_recovered_total",
			Help: "Create races resolved by re-reading the winning document",
		},
		[]string{"store"},
	)

	CatalogEntriesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "movierec_catalog_entries_created_total",
			Help: "Catalog entries created from the external catalog",
		},
	)

	// Upstream
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_upstream_requests_total",
			Help: "Requests to external services by service and outcome",
		},
		[]string{"service", "outcome"},
	)

	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movierec_upstream_request_duration_seconds",
			Help:    "External service request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	BreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "movierec_breaker_state",
			Help: "Circuit breaker state (0 = closed, 1 = half-open, 2 = open)",
		},
		[]string{"service"},
	)

	// Cache
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_cache_lookups_total",
			Help: "Cache lookups by cache name and result (hit, miss, error)",
		},
		[]string{"cache", "result"},
	)

	SnapshotServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_snapshot_served_total",
			Help: "Temporal analytics answered from a stored snapshot",
		},
		[]string{"kind"},
	)

	// API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_api_requests_total",
			Help: "Total number of API requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movierec_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func init() {
	prometheus.MustRegister(RatingsSubmitted)
	prometheus.MustRegister(DuplicateKeyRecovered)
	prometheus.MustRegister(CatalogEntriesCreated)
	prometheus.MustRegister(UpstreamRequests)
	prometheus.MustRegister(UpstreamDuration)
	prometheus.MustRegister(BreakerState)
	prometheus.MustRegister(CacheLookups)
	prometheus.MustRegister(SnapshotServed)
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware registra conteo y latencia por ruta de chi (el patrón, no el path,
// para no explotar la cardinalidad).
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		APIRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		APIRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
