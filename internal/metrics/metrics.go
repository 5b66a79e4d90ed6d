package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smartdna/internal/domain"
)

// UsageSource es lo que el colector necesita del tracker de uso.
type UsageSource interface {
	Snapshot() domain.UsageStats
}

// Metrics agrupa el registro propio del servicio y sus metricas HTTP.
type Metrics struct {
	registry        *prometheus.Registry
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	accessDecisions *prometheus.CounterVec
}

func New(usage UsageSource) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(reg)
	m := &Metrics{
		registry: reg,
		requestCount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartdna_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "smartdna_http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
			},
			[]string{"method", "endpoint"},
		),
		accessDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartdna_access_decisions_total",
				Help: "DNA access decisions by hub and reason",
			},
			[]string{"hub", "reason"},
		),
	}
	if usage != nil {
		reg.MustRegister(NewUsageCollector(usage))
	}
	return m
}

// ObserveRequest registra un request HTTP terminado.
func (m *Metrics) ObserveRequest(method, endpoint string, status int, latency time.Duration) {
	m.requestCount.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, endpoint).Observe(latency.Seconds())
}

// ObserveAccess registra una decision de acceso.
func (m *Metrics) ObserveAccess(hub domain.Hub, reason string) {
	m.accessDecisions.WithLabelValues(string(hub), reason).Inc()
}

// Handler expone el registro en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry se usa en tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// UsageCollector lee una foto del tracker en cada scrape; no duplica contadores.
type UsageCollector struct {
	usage    UsageSource
	requests *prometheus.Desc
	cost     *prometheus.Desc
	perProv  *prometheus.Desc
}

func NewUsageCollector(usage UsageSource) *UsageCollector {
	return &UsageCollector{
		usage: usage,
		requests: prometheus.NewDesc(
			"smartdna_generation_requests_total",
			"Successful generation requests",
			nil, nil,
		),
		cost: prometheus.NewDesc(
			"smartdna_generation_cost_dollars_total",
			"Estimated generation cost in dollars",
			nil, nil,
		),
		perProv: prometheus.NewDesc(
			"smartdna_provider_requests_total",
			"Successful generation requests per provider",
			[]string{"provider"}, nil,
		),
	}
}

func (c *UsageCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.requests
	ch <- c.cost
	ch <- c.perProv
}

func (c *UsageCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.usage.Snapshot()
	ch <- prometheus.MustNewConstMetric(c.requests, prometheus.CounterValue, float64(stats.TotalRequests))
	ch <- prometheus.MustNewConstMetric(c.cost, prometheus.CounterValue, stats.TotalCost)
	for _, id := range domain.Providers {
		ch <- prometheus.MustNewConstMetric(c.perProv, prometheus.CounterValue, float64(stats.ProviderUsage[id]), string(id))
	}
}
