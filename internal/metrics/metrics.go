package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_products_created_total",
		Help: "Total number of products successfully created.",
	})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	FallbackServedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_fallback_served_total",
		Help: "Total number of responses served from the in-process mock store.",
	},
		[]string{"entity", "operation"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dashboard_active_sessions",
		Help: "Current number of live admin sessions.",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_http_requests_total",
		Help: "Total number of HTTP requests.",
	},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "path"},
	)
)
