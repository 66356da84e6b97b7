package middleware

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	defaultMetricsNamespace = "usersvc"
	defaultMetricsSubsystem = "http"
)

var requestLabelNames = []string{"method", "route", "status"}

// HTTPMetricsOptions configures collector registration. Zero values fall back
// to the default registerer, the usersvc/http name prefix, and the client
// library's default latency buckets.
type HTTPMetricsOptions struct {
	Registerer prometheus.Registerer
	Namespace  string
	Subsystem  string
	Buckets    []float64
}

// HTTPMetrics holds the request counter, latency histogram, and in-flight
// gauge that Handler records per request.
type HTTPMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

// NewHTTPMetrics builds and registers the request collectors. Collectors a
// previous call already registered are reused, so constructing twice against
// the same registry is not an error.
func NewHTTPMetrics(opts HTTPMetricsOptions) (*HTTPMetrics, error) {
	if opts.Namespace == "" {
		opts.Namespace = defaultMetricsNamespace
	}
	if opts.Subsystem == "" {
		opts.Subsystem = defaultMetricsSubsystem
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if len(opts.Buckets) == 0 {
		opts.Buckets = prometheus.DefBuckets
	}

	requests, err := registerCollector(opts.Registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: opts.Namespace,
		Subsystem: opts.Subsystem,
		Name:      "requests_total",
		Help:      "Total number of HTTP requests partitioned by method, route, and status code.",
	}, requestLabelNames))
	if err != nil {
		return nil, fmt.Errorf("requests_total: %w", err)
	}

	duration, err := registerCollector(opts.Registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: opts.Namespace,
		Subsystem: opts.Subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of HTTP request latencies in seconds partitioned by method, route, and status code.",
		Buckets:   opts.Buckets,
	}, requestLabelNames))
	if err != nil {
		return nil, fmt.Errorf("request_duration_seconds: %w", err)
	}

	inFlight, err := registerCollector(opts.Registerer, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: opts.Namespace,
		Subsystem: opts.Subsystem,
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	}))
	if err != nil {
		return nil, fmt.Errorf("in_flight_requests: %w", err)
	}

	return &HTTPMetrics{Requests: requests, Duration: duration, InFlight: inFlight}, nil
}

// registerCollector registers c with reg, handing back the collector already
// registered under the same descriptor when there is one.
func registerCollector[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var zero C
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing, nil
		}
		return zero, fmt.Errorf("existing collector has unexpected type %T", already.ExistingCollector)
	}
	return zero, err
}

// Handler instruments every request passing through the router. A nil
// receiver yields a pass-through middleware so routes wire up identically
// when metrics are disabled.
func (m *HTTPMetrics) Handler() gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		start := time.Now()
		if m.InFlight != nil {
			m.InFlight.Inc()
			defer m.InFlight.Dec()
		}

		c.Next()

		// Prefer the route template so path parameters don't explode label
		// cardinality; unmatched requests fall back to the raw path.
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		labels := prometheus.Labels{
			"method": c.Request.Method,
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}

		if m.Requests != nil {
			m.Requests.With(labels).Inc()
		}
		if m.Duration != nil {
			m.Duration.With(labels).Observe(time.Since(start).Seconds())
		}
	}
}
