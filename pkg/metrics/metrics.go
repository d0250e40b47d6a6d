package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the dedicated registry served at /api/metrics. Using our own
// registry keeps third-party default collectors out of the scrape output.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// Buckets tuned for handler latencies plus upstream CRM calls that can
	// take several seconds on a cold path.
	apiBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21}

	// HTTP metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: apiBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Upstream CRM client metrics
	CRMRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crm_client_operation_duration_seconds",
			Help:    "Upstream CRM operation duration in seconds",
			Buckets: apiBuckets,
		},
		[]string{"operation", "status"},
	)

	CRMRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_client_operation_total",
			Help: "Total number of upstream CRM operations",
		},
		[]string{"operation", "status"},
	)

	// Cache metrics
	CacheHits = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_name"},
	)

	CacheMisses = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_name"},
	)

	CacheSize = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Number of entries in cache",
		},
		[]string{"cache_name"},
	)

	// Business metrics
	LeadSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradespark_lead_submissions_total",
			Help: "Total number of lead form submissions",
		},
		[]string{"status"},
	)

	ContactSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradespark_contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"status"},
	)

	CourseDetailViews = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradespark_course_detail_views_total",
			Help: "Total number of course detail lookups",
		},
		[]string{"course_slug"},
	)

	PopupImpressions = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "tradespark_popup_impressions_total",
			Help: "Total number of automatic promo popup impressions",
		},
	)

	// Infrastructure metrics
	GoRoutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)

	buildInfo = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tradespark_build_info",
			Help: "Build information",
		},
		[]string{"service"},
	)
)

// Init registers runtime collectors and stamps the build info gauge.
func Init(serviceName string) {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	buildInfo.WithLabelValues(serviceName).Set(1)
}

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation in seconds
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
