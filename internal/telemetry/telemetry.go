// Package telemetry wires tracing and metrics shared by every relgraph entry
// point: one otel span per call and a handful of prometheus collectors.
//
// Collectors register on the default prometheus registry at package init,
// so importing relgraph packages twice in one binary is harmless but
// registering the same names elsewhere is not.
package telemetry

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/relgraph/diag"
)

// Outcome labels.
const (
	OutcomeReached     = "reached"
	OutcomeUnreached   = "unreached"
	OutcomeSubstituted = "substituted"
	OutcomeInvalid     = "invalid"
	OutcomeError       = "error"
	OutcomeOK          = "ok"
)

var tracer = otel.Tracer("github.com/katalvlaran/relgraph")

var (
	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "relgraph_operation_duration_seconds",
		Help:    "Duration of relgraph operations in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"op", "outcome"})

	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relgraph_search_total",
		Help: "Shortest-path searches by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	searchVisited = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "relgraph_search_visited",
		Help:    "Entities settled per shortest-path search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"algorithm"})

	astarFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relgraph_astar_fallback_total",
		Help: "A* searches that degraded to Dijkstra for lack of spatial data",
	})

	partitionComponents = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "relgraph_partition_components",
		Help:    "Components produced per partition call",
		Buckets: []float64{1, 2, 3, 5, 10, 20, 50, 100, 500},
	})

	diagnosticsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relgraph_diagnostics_total",
		Help: "Diagnostics emitted by level",
	}, []string{"level"})
)

// Op tracks one traced, timed operation.
type Op struct {
	name  string
	span  trace.Span
	start time.Time
}

// Begin opens a span named "relgraph.<name>".
func Begin(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, *Op) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := tracer.Start(ctx, "relgraph."+name, trace.WithAttributes(attrs...))
	return ctx, &Op{name: name, span: span, start: time.Now()}
}

// SetAttributes annotates the span.
func (o *Op) SetAttributes(attrs ...attribute.KeyValue) {
	o.span.SetAttributes(attrs...)
}

// End closes the span and observes the duration under outcome.
func (o *Op) End(outcome string, err error) {
	o.span.SetAttributes(attribute.String("outcome", outcome))
	if err != nil {
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, err.Error())
	} else {
		o.span.SetStatus(codes.Ok, "")
	}
	operationDuration.WithLabelValues(o.name, outcome).Observe(time.Since(o.start).Seconds())
	o.span.End()
}

// RecordSearch counts a finished shortest-path search.
func RecordSearch(algorithm, outcome string, visited int) {
	searchTotal.WithLabelValues(algorithm, outcome).Inc()
	searchVisited.WithLabelValues(algorithm).Observe(float64(visited))
}

// RecordFallback counts an A* degradation to Dijkstra.
func RecordFallback() { astarFallbacks.Inc() }

// RecordComponents observes the size of a partition.
func RecordComponents(n int) { partitionComponents.Observe(float64(n)) }

// CountingSink wraps s so every diagnostic is also counted.
func CountingSink(s diag.Sink) diag.Sink {
	if s == nil {
		s = diag.Nop{}
	}
	return countingSink{next: s}
}

type countingSink struct{ next diag.Sink }

func (c countingSink) RecordError(msg string) {
	diagnosticsTotal.WithLabelValues("error").Inc()
	c.next.RecordError(msg)
}

func (c countingSink) RecordWarning(msg string) {
	diagnosticsTotal.WithLabelValues("warning").Inc()
	c.next.RecordWarning(msg)
}
