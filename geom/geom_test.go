package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relgraph/geom"
)

func TestDistance(t *testing.T) {
	require.InDelta(t, 5.0, geom.Distance(geom.Pt(0, 0), geom.Pt(3, 4)), 1e-12)
	require.InDelta(t, 3.0, geom.Distance(geom.Point{}, geom.Point{X: 1, Y: 2, Z: 2}), 1e-12)
	require.InDelta(t, 25.0, geom.DistanceSq(geom.Pt(0, 0), geom.Pt(3, 4)), 1e-12)
}

func TestCurveLengths(t *testing.T) {
	require.InDelta(t, 5.0, geom.Line{A: geom.Pt(0, 0), B: geom.Pt(3, 4)}.Length(), 1e-12)

	pl := geom.Polyline{geom.Pt(0, 0), geom.Pt(3, 0), geom.Pt(3, 4)}
	require.InDelta(t, 7.0, pl.Length(), 1e-12)
	require.Zero(t, geom.Polyline{geom.Pt(1, 1)}.Length())
	require.Zero(t, geom.Polyline(nil).Length())
}

func TestAtIsPositioned(t *testing.T) {
	var p geom.Positioned = geom.At(geom.Pt(2, 7))
	pos, ok := p.Position()
	require.True(t, ok)
	require.Equal(t, geom.Pt(2, 7), pos)
}
