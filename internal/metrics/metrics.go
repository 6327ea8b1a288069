// Package metrics holds the Prometheus collectors shared by the web tier.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	backendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "car_rental_web_backend_requests_total",
		Help: "Backend REST calls by endpoint and outcome status.",
	}, []string{"method", "endpoint", "status"})

	backendLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "car_rental_web_backend_request_duration_seconds",
		Help:    "Latency of backend REST calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	sessionOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "car_rental_web_session_outcomes_total",
		Help: "Session resolutions and transitions by outcome.",
	}, []string{"outcome"})

	rejectedSubmits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "car_rental_web_duplicate_submits_total",
		Help: "Form submissions rejected because an identical one was in flight.",
	})
)

// ObserveBackend records one backend call.  status 0 means no response.
func ObserveBackend(method, endpoint string, status int, took time.Duration) {
	code := "network_error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	backendRequests.WithLabelValues(method, endpoint, code).Inc()
	backendLatency.WithLabelValues(method, endpoint).Observe(took.Seconds())
}

// Session counts a session outcome (authenticated, anonymous, expired,
// invalid, login, logout).
func Session(outcome string) { sessionOutcomes.WithLabelValues(outcome).Inc() }

// DuplicateSubmit counts a rejected double submission.
func DuplicateSubmit() { rejectedSubmits.Inc() }

// Handler exposes the default registry for scraping.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
