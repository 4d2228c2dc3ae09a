// Package metrics exposes Prometheus collectors for the HTTP surface, the
// position estimator and the presence tracker.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Estimate outcomes
const (
	OutcomeSolved       = "solved"
	OutcomeDegenerate   = "degenerate"
	OutcomeInsufficient = "insufficient"
	OutcomeCached       = "cached"
)

// Collector bundles the service's Prometheus metrics. All methods are safe on a nil receiver.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	Estimates       *prometheus.CounterVec
	EstimateErrors  prometheus.Histogram
	RangeChanges    *prometheus.CounterVec
	ActiveStations  prometheus.Gauge
	MessagesHandled *prometheus.CounterVec
}

// NewCollector registers metrics against reg, defaulting to the global registry when nil
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sitetrack_http_requests_total",
		Help: "Handled HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"}), "sitetrack_http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sitetrack_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "route"}), "sitetrack_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	estimates, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sitetrack_position_estimates_total",
		Help: "Position estimate requests by outcome.",
	}, []string{"outcome"}), "sitetrack_position_estimates_total")
	if err != nil {
		return nil, err
	}

	estimateErrors, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sitetrack_position_estimate_error_meters",
		Help:    "Mean absolute residual of computed position estimates.",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100},
	}), "sitetrack_position_estimate_error_meters")
	if err != nil {
		return nil, err
	}

	rangeChanges, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sitetrack_range_transitions_total",
		Help: "Beacon range transitions by action and visit kind.",
	}, []string{"action", "kind"}), "sitetrack_range_transitions_total")
	if err != nil {
		return nil, err
	}

	active, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sitetrack_active_station_ranges",
		Help: "Open (beacon, station) visits across all beacons.",
	}), "sitetrack_active_station_ranges")
	if err != nil {
		return nil, err
	}

	messages, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sitetrack_nsq_messages_total",
		Help: "Consumed NSQ messages by topic and result.",
	}, []string{"topic", "result"}), "sitetrack_nsq_messages_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:        gatherer,
		HTTPRequests:    requests,
		HTTPDurations:   durations,
		Estimates:       estimates,
		EstimateErrors:  estimateErrors,
		RangeChanges:    rangeChanges,
		ActiveStations:  active,
		MessagesHandled: messages,
	}, nil
}

// EchoMiddleware records request counts and durations per route template
func (c *Collector) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if c == nil {
				return err
			}

			status := ctx.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			method := ctx.Request().Method

			c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			c.HTTPDurations.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler exposes a ready-to-use /metrics handler
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveEstimate counts an estimate outcome and, for computed ones, its residual
func (c *Collector) ObserveEstimate(outcome string, errorMeters float64) {
	if c == nil {
		return
	}
	c.Estimates.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSolved || outcome == OutcomeDegenerate {
		c.EstimateErrors.Observe(errorMeters)
	}
}

// RecordTransition counts a range transition and moves the open-visit gauge
func (c *Collector) RecordTransition(entered bool, kind string) {
	if c == nil {
		return
	}
	if entered {
		c.RangeChanges.WithLabelValues("entered", kind).Inc()
		c.ActiveStations.Inc()
		return
	}
	c.RangeChanges.WithLabelValues("exited", kind).Inc()
	c.ActiveStations.Dec()
}

// RecordMessage counts a consumed NSQ message
func (c *Collector) RecordMessage(topic string, err error) {
	if c == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.MessagesHandled.WithLabelValues(topic, result).Inc()
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
