// Package array issues grid layouts and window visits to a screen session.
//
// Every command depends on the region or window the previous one left
// active, so commands are issued one at a time, each waiting for the sink
// to return. The first failure stops the run. Commands already issued are
// not undone: a failed Make can leave a partial layout behind.
package array

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/timvw/screen-array/internal/grid"
	"github.com/timvw/screen-array/internal/mux"
	telem "github.com/timvw/screen-array/internal/otel"
)

// Array binds a grid to the session it is laid out in.
type Array struct {
	session string
	grid    *grid.Grid
	sink    mux.Sink

	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *telem.Metrics
}

// Option configures an Array.
type Option func(*Array)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Array) { a.logger = l }
}

// WithTelemetry wires a tracer and metric counters. Either may be nil.
func WithTelemetry(tracer trace.Tracer, metrics *telem.Metrics) Option {
	return func(a *Array) {
		if tracer != nil {
			a.tracer = tracer
		}
		a.metrics = metrics
	}
}

// New returns an Array for the session. The grid is already validated.
func New(session string, g *grid.Grid, sink mux.Sink, opts ...Option) *Array {
	a := &Array{
		session: session,
		grid:    g,
		sink:    sink,
		logger:  slog.New(slog.DiscardHandler),
		tracer:  noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Grid returns the grid this array builds.
func (a *Array) Grid() *grid.Grid { return a.grid }

// Make lays out the grid in the session. The session must currently show a
// single region.
func (a *Array) Make(ctx context.Context) error {
	return a.run(ctx, "layout", a.grid.Layout())
}

// Visit runs mapper's command in each masked window (nil mask: all) and
// leaves the last window active. The mask is checked before anything is
// issued.
func (a *Array) Visit(ctx context.Context, mapper grid.Mapper, mask []int) error {
	ops, err := a.grid.Visit(mapper, mask)
	if err != nil {
		return err
	}
	return a.run(ctx, "visit", ops)
}

func (a *Array) run(ctx context.Context, kind string, ops []grid.Op) error {
	ctx, span := a.tracer.Start(ctx, "array."+kind, trace.WithAttributes(
		attribute.String("screen.session", a.session),
		attribute.Int("grid.width", a.grid.Width()),
		attribute.Int("grid.height", a.grid.Height()),
		attribute.Int("ops", len(ops)),
	))
	defer span.End()

	log := a.logger.With("session", a.session, "run", kind)
	log.DebugContext(ctx, "starting", "ops", len(ops), "grid", a.grid.String())

	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "cancelled")
			return fmt.Errorf("%s stopped before op %d/%d: %w", kind, i+1, len(ops), err)
		}

		err := a.sink.Execute(ctx, op.String())
		a.metrics.RecordCommand(ctx, op.Kind.String(), err != nil)
		if err != nil {
			log.ErrorContext(ctx, "command failed", "step", i+1, "op", op.String(), "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "command failed")
			return fmt.Errorf("%s op %d/%d %q: %w", kind, i+1, len(ops), op.String(), err)
		}
		log.DebugContext(ctx, "issued", "step", i+1, "op", op.String())

		if op.Kind == grid.CreateWindow {
			a.metrics.RecordWindowCreated(ctx)
		}
	}

	a.metrics.RecordRun(ctx, kind)
	log.InfoContext(ctx, "done", "ops", len(ops))
	return nil
}

func (a *Array) String() string {
	return fmt.Sprintf("%s: %d x %d", a.session, a.grid.Height(), a.grid.Width())
}
