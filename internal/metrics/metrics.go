package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nl2sql_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nl2sql_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	QueriesGeneratedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "nl2sql_queries_generated_total",
			Help: "Total number of SQL statements produced by the mock generator.",
		},
	)

	QueriesExecutedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "nl2sql_queries_executed_total",
			Help: "Total number of mock query executions.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		QueriesGeneratedTotal,
		QueriesExecutedTotal,
	)
}
