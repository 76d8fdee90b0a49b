package metrics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// WebhookMetrics holds the webhook request metrics
type WebhookMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ErrorsTotal     *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewWebhookMetrics registers the webhook metrics on a fresh registry
func NewWebhookMetrics() *WebhookMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &WebhookMetrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hookcord_webhook_requests_total",
			Help: "Total number of webhook requests by method and status code",
		}, []string{"method", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hookcord_webhook_request_duration_seconds",
			Help:    "Duration of webhook requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hookcord_webhook_errors_total",
			Help: "Total number of failed webhook requests by error type",
		}, []string{"method", "error_type"}),
		registry: registry,
	}
}

// Registry returns the registry the metrics live in
func (m *WebhookMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one webhook request. A zero status code is
// reported as "none".
func (m *WebhookMetrics) ObserveRequest(method string, statusCode int, duration time.Duration, err error) {
	status := "none"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}

	m.RequestsTotal.WithLabelValues(method, status).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(duration.Seconds())

	if err != nil {
		m.ErrorsTotal.WithLabelValues(method, errorType(err)).Inc()
	}
}

func errorType(err error) string {
	var httpErr *errorwrapper.HTTPError
	var netErr *errorwrapper.NetworkError
	switch {
	case errors.As(err, &httpErr):
		return "http"
	case errors.As(err, &netErr):
		return "network"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "context"
	default:
		return "other"
	}
}

// Push sends the current metric values to a Prometheus Pushgateway
func (m *WebhookMetrics) Push(ctx context.Context, gatewayURL, job string) error {
	if err := push.New(gatewayURL, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return errorwrapper.WrapError(err, "failed to push metrics to "+gatewayURL)
	}
	return nil
}
