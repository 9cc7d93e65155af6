package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "screen-array"

// Metrics holds the counters for issued screen commands.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Commands issued and failed, partitioned by op kind.
	CommandsIssued metric.Int64Counter
	CommandsFailed metric.Int64Counter

	// Windows created by layout runs.
	WindowsCreated metric.Int64Counter

	// Completed runs, partitioned by run type (layout, visit).
	Runs metric.Int64Counter
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.CommandsIssued, err = meter.Int64Counter("screen_array.commands.issued",
		metric.WithDescription("Screen commands handed to the multiplexer"),
		metric.WithUnit("{command}"))
	if err != nil {
		return nil, err
	}

	m.CommandsFailed, err = meter.Int64Counter("screen_array.commands.failed",
		metric.WithDescription("Screen commands the multiplexer rejected"),
		metric.WithUnit("{command}"))
	if err != nil {
		return nil, err
	}

	m.WindowsCreated, err = meter.Int64Counter("screen_array.windows.created",
		metric.WithDescription("Windows created while building grids"),
		metric.WithUnit("{window}"))
	if err != nil {
		return nil, err
	}

	m.Runs, err = meter.Int64Counter("screen_array.runs.total",
		metric.WithDescription("Completed layout and visit runs"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordCommand records one issued command and whether it failed.
func (m *Metrics) RecordCommand(ctx context.Context, op string, failed bool) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("screen.op", op))
	m.CommandsIssued.Add(ctx, 1, attrs)
	if failed {
		m.CommandsFailed.Add(ctx, 1, attrs)
	}
}

// RecordWindowCreated records one created window.
func (m *Metrics) RecordWindowCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.WindowsCreated.Add(ctx, 1)
}

// RecordRun records a finished run of the given kind ("layout" or "visit").
func (m *Metrics) RecordRun(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.Runs.Add(ctx, 1, metric.WithAttributes(attribute.String("run.kind", kind)))
}
