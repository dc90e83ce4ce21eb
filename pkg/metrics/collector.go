package metrics

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports management API client metrics to prometheus and keeps
// a short in-process request rate.
type Collector struct {
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	parseFailures   *prometheus.CounterVec

	totalRequests atomic.Int64
	requestRate   *RateTracker

	config *Config
}

// Config holds configuration for metrics collection
type Config struct {
	Enabled    bool          // Enable/disable metrics collection
	Namespace  string        // Prometheus namespace, e.g. "rmqadmin"
	WindowSize time.Duration // Time window for rate calculations
	MaxSamples int           // Maximum samples to keep for the rate
}

// DefaultConfig returns sensible defaults for metrics collection
func DefaultConfig() *Config {
	return &Config{
		Enabled:    true,
		Namespace:  "rmqadmin",
		WindowSize: time.Minute,
		MaxSamples: 120,
	}
}

// NewCollector registers the client metrics on reg. A nil reg uses the
// prometheus default registerer.
func NewCollector(reg prometheus.Registerer, config *Config) (*Collector, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: config.Namespace,
				Name:      "http_requests_total",
				Help:      "Management API requests by method, endpoint and status code",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: config.Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Management API request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		parseFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: config.Namespace,
				Name:      "parse_failures_total",
				Help:      "Responses that could not be parsed, by resource and failure kind",
			},
			[]string{"resource", "kind"},
		),
		requestRate: NewRateTracker(config.WindowSize, config.MaxSamples),
		config:      config,
	}

	for _, m := range []prometheus.Collector{c.requestCount, c.requestDuration, c.parseFailures} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordRequest records a completed request. status is 0 when the request
// never got a response.
func (c *Collector) RecordRequest(method, endpoint string, status int, elapsed time.Duration) {
	if !c.config.Enabled {
		return
	}

	c.requestCount.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
	c.requestRate.Record(c.totalRequests.Add(1))
}

// RecordParseFailure records a response body rejected by the parsers
func (c *Collector) RecordParseFailure(resource, kind string) {
	if !c.config.Enabled {
		return
	}

	c.parseFailures.WithLabelValues(resource, kind).Inc()
}

// TotalRequests returns the number of requests recorded so far
func (c *Collector) TotalRequests() int64 {
	return c.totalRequests.Load()
}

// RequestRate returns requests per second over the configured window
func (c *Collector) RequestRate() float64 {
	return c.requestRate.Rate()
}

func (c *Collector) IsEnabled() bool {
	return c.config.Enabled
}
