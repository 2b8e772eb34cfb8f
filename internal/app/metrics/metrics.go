// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface handlers and the provisioning workflow use
// to report outcomes. A nil *Collector satisfies call sites via NopRecorder.
type Recorder interface {
	RecordHTTPStatus(statusCode int)
	RecordProvisionSuccess(adventures int)
	RecordProvisionFailure(reason string)
	RecordProvisionLatency(d time.Duration)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	httpStatus       *prometheus.CounterVec
	provisionOK      prometheus.Counter
	provisionFail    *prometheus.CounterVec
	adventuresSeeded prometheus.Counter
	provisionLatency prometheus.Histogram
}

// NewCollector registers the API metrics on reg and returns the
// collector.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "adventurehub_http_status_total",
			Help: "Responses by HTTP status code.",
		}, []string{"status_code"}),
		provisionOK: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "adventurehub_provision_success_total",
			Help: "Successful edition provisioning requests.",
		}),
		provisionFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "adventurehub_provision_failure_total",
			Help: "Failed edition provisioning requests by reason.",
		}, []string{"reason"}),
		adventuresSeeded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "adventurehub_adventures_seeded_total",
			Help: "Adventures materialized from seed templates.",
		}),
		provisionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "adventurehub_provision_latency_seconds",
			Help:    "Latency of the provisioning workflow.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.provisionOK,
		c.provisionFail,
		c.adventuresSeeded,
		c.provisionLatency,
	)

	return c
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordProvisionSuccess(adventures int) {
	c.provisionOK.Inc()
	c.adventuresSeeded.Add(float64(adventures))
}

func (c *Collector) RecordProvisionFailure(reason string) {
	c.provisionFail.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordProvisionLatency(d time.Duration) {
	c.provisionLatency.Observe(d.Seconds())
}

// Handler returns the /metrics endpoint for the given registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// NopRecorder discards every observation. Used in tests and anywhere a
// Recorder is optional.
type NopRecorder struct{}

func (NopRecorder) RecordHTTPStatus(int)                 {}
func (NopRecorder) RecordProvisionSuccess(int)           {}
func (NopRecorder) RecordProvisionFailure(string)        {}
func (NopRecorder) RecordProvisionLatency(time.Duration) {}
