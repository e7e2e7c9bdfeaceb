// Package metrics exposes business counters through Prometheus.
package metrics

import (
	"net/http"
	"time"

	"creatorhub/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "creatorhub"

// Registry owns the collectors served on /metrics.
type Registry struct {
	registry        *prometheus.Registry
	clicksTracked   *prometheus.CounterVec
	quotaRejections *prometheus.CounterVec
	deliveryLag     *prometheus.HistogramVec
}

// NewRegistry registers runtime and business collectors on a private registry.
func NewRegistry() *Registry {
	registry := prometheus.NewRegistry()

	r := &Registry{
		registry: registry,
		clicksTracked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clicks_tracked_total",
			Help:      "Clicks recorded on public items, by item type.",
		}, []string{"type"}),
		quotaRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quota_rejections_total",
			Help:      "Creations refused by the free plan limits, by resource.",
		}, []string{"resource"}),
		deliveryLag: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "click_event_delivery_seconds",
			Help:      "Time between a click and its event reaching a consumer, by item type.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"type"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.clicksTracked,
		r.quotaRejections,
		r.deliveryLag,
	)

	return r
}

// NewMetrics exposes the registry as the domain metrics recorder.
func NewMetrics(r *Registry) service.Metrics {
	return r
}

// ClickTracked counts one recorded click of the given item type.
func (r *Registry) ClickTracked(itemType string) {
	r.clicksTracked.WithLabelValues(itemType).Inc()
}

// QuotaRejected counts a creation refused by the free plan limits.
func (r *Registry) QuotaRejected(resource string) {
	r.quotaRejections.WithLabelValues(resource).Inc()
}

// ClickEventDelivered observes the delivery lag of one click event.
func (r *Registry) ClickEventDelivered(itemType string, lag time.Duration) {
	r.deliveryLag.WithLabelValues(itemType).Observe(max(lag, 0).Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
