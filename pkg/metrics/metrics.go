// Package metrics holds the OpenTelemetry instruments exported by the
// application and the Prometheus-backed meter provider that serves them.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "tenantfinder"

// NewMeterProvider creates a meter provider whose readings are exposed through
// the given Prometheus registerer (usually prometheus.DefaultRegisterer, which
// promhttp.Handler serves).
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Probe result labels.
const (
	ProbeResultOK        = "ok"
	ProbeResultTransient = "transient"
	ProbeResultFailed    = "failed"
)

// Probe groups the instruments recorded by the probe client.
type Probe struct {
	requests metric.Int64Counter
	retries  metric.Int64Counter
	duration metric.Float64Histogram
}

// NewProbe registers the probe instruments on mp. A nil mp uses the global
// provider, which is a no-op unless the application installed one.
func NewProbe(mp metric.MeterProvider) (*Probe, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(meterName)

	requests, err := meter.Int64Counter("tenantfinder.probe.requests",
		metric.WithDescription("Number of HTTP requests issued by probes."))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}
	retries, err := meter.Int64Counter("tenantfinder.probe.retries",
		metric.WithDescription("Number of probe attempts retried after a transient failure."))
	if err != nil {
		return nil, fmt.Errorf("could not create retries counter: %w", err)
	}
	duration, err := meter.Float64Histogram("tenantfinder.probe.duration",
		metric.WithDescription("Duration of a complete probe including retries."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Probe{requests: requests, retries: retries, duration: duration}, nil
}

// Request records a single HTTP request of the given method and result.
func (p *Probe) Request(ctx context.Context, method, result string) {
	p.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("result", result),
	))
}

// Retry records a retried attempt.
func (p *Probe) Retry(ctx context.Context) {
	p.retries.Add(ctx, 1)
}

// Duration records the duration of a complete probe in seconds.
func (p *Probe) Duration(ctx context.Context, seconds float64) {
	p.duration.Record(ctx, seconds)
}
