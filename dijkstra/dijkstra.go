// Package dijkstra finds the minimum-cost route between two entities.
//
// The frontier is a lazy decrease-key min-heap ordered by accumulated cost,
// ties broken by admission order. Relations are relaxed in graph relation
// order. Once the end is settled the route is rebuilt from back-pointers.
//
// Complexity:
//
//   - Time:  O((V + R) log R)
//   - Space: O(V + R)
package dijkstra

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/internal/search"
	"github.com/katalvlaran/relgraph/internal/telemetry"
)

const algorithm = "dijkstra"

// Dijkstra returns the cheapest route from start to end in r.
//
// Result fields:
//
//   - Path, RelationsUsed: the route; between two consecutive entities the
//     relation with the shortest curve (weight when it has none) is used,
//     first in relation order on ties.
//   - Length: hop count.
//   - Cost: sum of RelationsUsed weights.
//   - Visited: entities settled before the search stopped.
//
// An unreachable end is a warning, not an error: Reached is false, Path is
// empty and Visited shows how far the search got.
//
// Invalid input (nil graph, empty or unknown endpoint) is recorded on the
// sink and returns an empty result with ErrNilGraph, ErrEmptyEndpoint or
// ErrEntityNotFound. A relation referencing a missing entity aborts the call
// with core.ErrMalformedRelation.
func Dijkstra(r core.Reader, start, end string, opts ...Option) (*core.PathResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return core.EmptyPathResult(), o.err
	}
	sink := telemetry.CountingSink(o.Sink)

	ctx, op := telemetry.Begin(o.Ctx, "dijkstra",
		attribute.String("start", start), attribute.String("end", end))

	if err := validate(r, start, end); err != nil {
		sink.RecordError(err.Error())
		op.End(telemetry.OutcomeInvalid, err)
		telemetry.RecordSearch(algorithm, telemetry.OutcomeInvalid, 0)
		return core.EmptyPathResult(), err
	}
	op.SetAttributes(attribute.Int("relations", len(r.Relations())))

	st := search.New(r, search.Config{
		Metric:        RelationMetric,
		MaxIterations: o.MaxIterations,
	})
	reached, runErr := st.Run(ctx, start, end)
	res, err := st.Result(start, end, reached, hopLength)
	res.Reached = reached
	if err == nil && runErr != nil {
		err = runErr
		if errors.Is(runErr, search.ErrBudgetExhausted) {
			err = fmt.Errorf("%w after %d pops", ErrIterationBudget, st.Iterations())
		}
	}
	op.SetAttributes(attribute.Int("visited", res.Visited.Cardinality()))

	outcome := telemetry.OutcomeReached
	switch {
	case err != nil:
		outcome = telemetry.OutcomeError
	case !reached:
		outcome = telemetry.OutcomeUnreached
		sink.RecordWarning(fmt.Sprintf("dijkstra: %q is unreachable from %q (%d entities settled)",
			end, start, res.Visited.Cardinality()))
	}
	op.End(outcome, err)
	telemetry.RecordSearch(algorithm, outcome, res.Visited.Cardinality())

	return res, err
}

// RelationMetric ranks parallel relations: curve length when present,
// otherwise weight.
func RelationMetric(rel *core.Relation) float64 {
	if rel.Curve != nil {
		return rel.Curve.Length()
	}
	return rel.Weight
}

func hopLength(p search.Path) float64 { return float64(len(p.Relations)) }

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
