package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wonny/govdash/internal/dataset"
	"github.com/wonny/govdash/internal/scheduler"
)

// Metrics holds the dashboard's Prometheus collectors on a private registry
// ⭐ SSOT: 메트릭 정의는 이 파일에서만
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	datasetRows     prometheus.Gauge
	datasetVersion  prometheus.Gauge
	datasetLoadedAt prometheus.Gauge
	jobRuns         *prometheus.CounterVec
	wsClients       prometheus.GaugeFunc
}

// NewMetrics registers every collector; clients reports the live websocket count
func NewMetrics(clients func() int) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "govdash",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "govdash",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		datasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "govdash",
			Name:      "dataset_rows",
			Help:      "Rows in the current dataset.",
		}),
		datasetVersion: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "govdash",
			Name:      "dataset_version",
			Help:      "Generation of the current dataset.",
		}),
		datasetLoadedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "govdash",
			Name:      "dataset_loaded_timestamp_seconds",
			Help:      "Unix time of the last successful load.",
		}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "govdash",
			Name:      "scheduler_job_runs_total",
			Help:      "Scheduled job runs by job and result.",
		}, []string{"job", "result"}),
	}

	if clients == nil {
		clients = func() int { return 0 }
	}
	m.wsClients = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "govdash",
		Name:      "websocket_clients",
		Help:      "Connected websocket clients.",
	}, func() float64 { return float64(clients()) })

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration,
		m.datasetRows, m.datasetVersion, m.datasetLoadedAt,
		m.jobRuns, m.wsClients,
	)

	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry (tests, extra collectors)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveDataset records a freshly loaded snapshot
func (m *Metrics) ObserveDataset(snap dataset.Snapshot) {
	if snap.Table != nil {
		m.datasetRows.Set(float64(snap.Table.Len()))
	}
	m.datasetVersion.Set(float64(snap.Version))
	m.datasetLoadedAt.Set(float64(snap.LoadedAt.Unix()))
}

// ObserveJob records a finished scheduler run
func (m *Metrics) ObserveJob(r scheduler.JobResult) {
	result := "success"
	if !r.Success {
		result = "failure"
	}
	m.jobRuns.WithLabelValues(r.JobName, result).Inc()
}

// middleware counts requests per mux route template
func (m *Metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := "unmatched"
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rw.Status())).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
