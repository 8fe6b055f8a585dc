// Package metrics holds the OpenTelemetry instruments the service records
// and the wiring that exports them through the Prometheus registry.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// NewMeterProvider builds an OTel meter provider whose metrics are exported
// via the default Prometheus registerer (served by the ops HTTP server).
func NewMeterProvider() (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Metrics bundles the instruments recorded by the MCP server and the curve
// service. A nil *Metrics is valid and records nothing, which keeps tests and
// one-shot CLI paths free of metric plumbing.
type Metrics struct {
	toolCalls        metric.Int64Counter
	toolDuration     metric.Float64Histogram
	upstreamRequests metric.Int64Counter
	upstreamDuration metric.Float64Histogram
}

// New creates the service instruments on the given meter.
func New(meter metric.Meter) (*Metrics, error) {
	toolCalls, err := meter.Int64Counter("mcp_tool_calls_total",
		metric.WithDescription("Number of MCP tool calls, by tool and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create tool call counter: %w", err)
	}

	toolDuration, err := meter.Float64Histogram("mcp_tool_duration_seconds",
		metric.WithDescription("MCP tool call latency in seconds."),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create tool duration histogram: %w", err)
	}

	upstreamRequests, err := meter.Int64Counter("chinabond_requests_total",
		metric.WithDescription("Number of upstream ChinaBond fetches, by curve and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create upstream request counter: %w", err)
	}

	upstreamDuration, err := meter.Float64Histogram("chinabond_request_duration_seconds",
		metric.WithDescription("Upstream ChinaBond fetch latency in seconds."),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create upstream duration histogram: %w", err)
	}

	return &Metrics{
		toolCalls:        toolCalls,
		toolDuration:     toolDuration,
		upstreamRequests: upstreamRequests,
		upstreamDuration: upstreamDuration,
	}, nil
}

// ToolCall records one MCP tool invocation.
func (m *Metrics) ToolCall(ctx context.Context, tool string, dur time.Duration, failed bool) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.Bool("error", failed),
	)
	m.toolCalls.Add(ctx, 1, attrs)
	m.toolDuration.Record(ctx, dur.Seconds(), attrs)
}

// UpstreamRequest records one fetch against the ChinaBond endpoint.
func (m *Metrics) UpstreamRequest(ctx context.Context, curve string, dur time.Duration, failed bool) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("curve", curve),
		attribute.Bool("error", failed),
	)
	m.upstreamRequests.Add(ctx, 1, attrs)
	m.upstreamDuration.Record(ctx, dur.Seconds(), attrs)
}
