package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	forecastsTotal  *prometheus.CounterVec
	fallbacksTotal  *prometheus.CounterVec
	upstreamTotal   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	lastPrice       *prometheus.GaugeVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		forecastsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictor_forecasts_total",
				Help: "Total forecasts served, by winning model and horizon",
			},
			[]string{"model", "horizon"},
		),
		fallbacksTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictor_fallbacks_total",
				Help: "Forecasts where the drift model was flat or failed and the trend model answered",
			},
			[]string{"horizon"},
		),
		upstreamTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictor_upstream_requests_total",
				Help: "Upstream market-data requests, by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		upstreamLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "predictor_upstream_duration_seconds",
				Help:    "Upstream request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictor_cache_lookups_total",
				Help: "Cache lookups for upstream responses, by endpoint and result",
			},
			[]string{"endpoint", "result"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "predictor_last_price",
				Help: "Last observed close for a coin",
			},
			[]string{"coin"},
		),
	}
}

// RecordForecast records a served forecast for a horizon.
func (r *Recorder) RecordForecast(model, horizon string) {
	r.forecastsTotal.WithLabelValues(model, horizon).Inc()
}

// RecordFallback records a trend fallback for a horizon.
func (r *Recorder) RecordFallback(horizon string) {
	r.fallbacksTotal.WithLabelValues(horizon).Inc()
}

// RecordUpstream records an upstream request outcome.
func (r *Recorder) RecordUpstream(endpoint string, err bool) {
	outcome := "ok"
	if err {
		outcome = "error"
	}
	r.upstreamTotal.WithLabelValues(endpoint, outcome).Inc()
}

// RecordUpstreamLatency records upstream latency in seconds.
func (r *Recorder) RecordUpstreamLatency(endpoint string, seconds float64) {
	r.upstreamLatency.WithLabelValues(endpoint).Observe(seconds)
}

// RecordCacheLookup records a cache hit or miss.
func (r *Recorder) RecordCacheLookup(endpoint string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(endpoint, result).Inc()
}

// RecordLastPrice records the last close for a coin.
func (r *Recorder) RecordLastPrice(coin string, price float64) {
	r.lastPrice.WithLabelValues(coin).Set(price)
}
