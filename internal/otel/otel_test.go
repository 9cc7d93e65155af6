package otel

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestParseHeaders(t *testing.T) {
	got := parseHeaders(" Authorization=Basic abc123 , x-tenant=ops,broken, =nokey")
	if len(got) != 2 {
		t.Fatalf("expected 2 headers, got %d: %v", len(got), got)
	}
	if got["Authorization"] != "Basic abc123" {
		t.Errorf("Authorization: got %q", got["Authorization"])
	}
	if got["x-tenant"] != "ops" {
		t.Errorf("x-tenant: got %q", got["x-tenant"])
	}
}

func TestParseHeaders_Empty(t *testing.T) {
	if got := parseHeaders(""); len(got) != 0 {
		t.Errorf("expected no headers, got %v", got)
	}
}

func TestInit_NoEndpointIsNoop(t *testing.T) {
	tel, err := Init(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer tel.Shutdown(context.Background())

	if tel.Tracer == nil || tel.Metrics == nil {
		t.Fatal("expected tracer and metrics even without an endpoint")
	}
	// Recording against no-op instruments must not panic.
	tel.Metrics.RecordCommand(context.Background(), "split", false)
	tel.Metrics.RecordWindowCreated(context.Background())
	tel.Metrics.RecordRun(context.Background(), "layout")
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordCommand(context.Background(), "focus", true)
	m.RecordWindowCreated(context.Background())
	m.RecordRun(context.Background(), "visit")
}

func TestMetrics_InstrumentNames(t *testing.T) {
	prev := otel.GetMeterProvider()
	reader := sdkmetric.NewManualReader()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	m, err := NewMetrics()
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	ctx := context.Background()
	m.RecordCommand(ctx, "split", true)
	m.RecordWindowCreated(ctx)
	m.RecordRun(ctx, "layout")
	m.RecordRun(ctx, "visit")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			sum, ok := md.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("%s: unexpected data %T", md.Name, md.Data)
			}
			for _, dp := range sum.DataPoints {
				totals[md.Name] += dp.Value
			}
		}
	}

	want := map[string]int64{
		"screen_array.commands.issued": 1,
		"screen_array.commands.failed": 1,
		"screen_array.windows.created": 1,
		"screen_array.runs.total":      2,
	}
	for name, n := range want {
		if totals[name] != n {
			t.Errorf("%s: got %d, want %d (all: %v)", name, totals[name], n, totals)
		}
	}
}
