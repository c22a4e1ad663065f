package astar

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/dijkstra"
	"github.com/katalvlaran/relgraph/geom"
	"github.com/katalvlaran/relgraph/internal/search"
	"github.com/katalvlaran/relgraph/internal/telemetry"
)

const algorithm = "astar"

// AStar returns a route from start to end in r guided by straight-line
// distance to end.
//
// Invalid input is recorded on the sink and returned as ErrNilGraph,
// ErrEmptyEndpoint or ErrEntityNotFound with an empty result; a malformed
// relation aborts with core.ErrMalformedRelation.
//
// Without spatial data the call falls back to Dijkstra (warning, Fallback
// set). When end is unreachable the path leads to the settled entity closest
// to end instead (warning, Reached false, Destination set to the substitute).
func AStar(r core.Reader, start, end string, opts ...Option) (*core.PathResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return core.EmptyPathResult(), o.err
	}
	sink := telemetry.CountingSink(o.Sink)

	ctx, op := telemetry.Begin(o.Ctx, "astar",
		attribute.String("start", start), attribute.String("end", end),
		attribute.String("priority", o.Priority.String()))

	invalid := func(err error) (*core.PathResult, error) {
		sink.RecordError(err.Error())
		op.End(telemetry.OutcomeInvalid, err)
		telemetry.RecordSearch(algorithm, telemetry.OutcomeInvalid, 0)
		return core.EmptyPathResult(), err
	}
	if err := validate(r, start, end); err != nil {
		return invalid(err)
	}

	proj, err := o.Projector.Project(r)
	if err != nil {
		return invalid(fmt.Errorf("%w: %w", ErrProjection, err))
	}
	if reason := degenerate(proj, start, end); reason != "" {
		sink.RecordWarning(fmt.Sprintf("astar: %s; falling back to dijkstra", reason))
		telemetry.RecordFallback()
		op.SetAttributes(attribute.Bool("fallback", true))

		res, err := dijkstra.Dijkstra(r, start, end,
			dijkstra.WithContext(ctx), dijkstra.WithSink(o.Sink), dijkstra.WithMaxIterations(o.MaxIterations))
		if errors.Is(err, dijkstra.ErrIterationBudget) {
			err = fmt.Errorf("%w: %w", ErrIterationBudget, err)
		}
		res.Fallback = true
		op.End(outcomeOf(res, err), err)
		return res, err
	}

	metric := func(rel *core.Relation) float64 { return proj.Lengths[rel.ID] }
	st := search.New(proj.Graph, search.Config{
		Priority:      o.Priority.key(),
		Metric:        metric,
		MaxIterations: o.MaxIterations,
	})
	target := proj.Positions[end]
	for id, p := range proj.Positions {
		st.SetHeuristic(id, geom.Distance(p, target))
	}

	reached, runErr := st.Run(ctx, start, end)
	dest, routed := end, reached
	if !reached && runErr == nil {
		if sub, ok := closestSettled(st.SettledOrder(), proj.Positions, target); ok {
			dest, routed = sub, true
			sink.RecordWarning(fmt.Sprintf("astar: %q is unreachable from %q; routing to closest reached entity %q",
				end, start, sub))
		}
	}

	res, err := st.Result(start, dest, routed, func(p search.Path) float64 { return p.Measure(metric) })
	res.Reached = reached
	if err == nil && runErr != nil {
		err = runErr
		if errors.Is(runErr, search.ErrBudgetExhausted) {
			err = fmt.Errorf("%w after %d pops", ErrIterationBudget, st.Iterations())
		}
	}

	outcome := outcomeOf(res, err)
	op.SetAttributes(attribute.Int("visited", res.Visited.Cardinality()), attribute.String("destination", res.Destination))
	op.End(outcome, err)
	telemetry.RecordSearch(algorithm, outcome, res.Visited.Cardinality())

	return res, err
}

// degenerate explains why proj cannot drive a spatial search, or "".
func degenerate(proj *Projection, start, end string) string {
	switch {
	case proj == nil || core.IsNil(proj.Graph) || len(proj.Positions) == 0:
		return "graph has no spatial entities"
	case len(proj.Lengths) == 0:
		return "graph has no spatial relations"
	}
	for _, id := range []string{start, end} {
		if _, ok := proj.Positions[id]; !ok {
			return fmt.Sprintf("entity %q has no position", id)
		}
		if _, ok := proj.Graph.Entity(id); !ok {
			return fmt.Sprintf("entity %q is missing from the projection", id)
		}
	}
	return ""
}

func outcomeOf(res *core.PathResult, err error) string {
	switch {
	case err != nil:
		return telemetry.OutcomeError
	case res.Reached:
		return telemetry.OutcomeReached
	case len(res.Path) > 0:
		return telemetry.OutcomeSubstituted
	default:
		return telemetry.OutcomeUnreached
	}
}

func validate(r core.Reader, start, end string) error {
	if core.IsNil(r) {
		return ErrNilGraph
	}
	if start == "" || end == "" {
		return ErrEmptyEndpoint
	}
	for _, id := range []string{start, end} {
		if _, ok := r.Entity(id); !ok {
			return fmt.Errorf("%w: %q", ErrEntityNotFound, id)
		}
	}
	return core.Validate(r)
}
