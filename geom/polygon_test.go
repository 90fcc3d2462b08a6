package geom_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takram-design-engineering/takram-math/geom"
)

func unitSquare() geom.Polygon[float64] {
	return geom.PolygonOf(
		geom.V2(0.0, 0.0),
		geom.V2(1.0, 0.0),
		geom.V2(1.0, 1.0),
		geom.V2(0.0, 1.0),
	)
}

func TestPolygonArea(t *testing.T) {
	p := unitSquare()
	require.Equal(t, 1.0, p.SignedArea())
	require.Equal(t, 1.0, p.Area())
	require.Equal(t, 4.0, p.Perimeter())

	// Clockwise winding flips the sign but not the area.
	var cw geom.Polygon[float64]
	for i := p.Len() - 1; i >= 0; i-- {
		cw.Add(p.At(i))
	}
	require.Equal(t, -1.0, cw.SignedArea())
	require.Equal(t, 1.0, cw.Area())
}

func TestPolygonCentroid(t *testing.T) {
	require.Equal(t, geom.V2(0.5, 0.5), unitSquare().Centroid())

	// Degenerate polygons fall back to the vertex mean.
	line := geom.PolygonOf(geom.V2(0.0, 0.0), geom.V2(2.0, 0.0))
	require.Equal(t, geom.V2(1.0, 0.0), line.Centroid())

	var empty geom.Polygon[float64]
	require.Equal(t, geom.V2(0.0, 0.0), empty.Centroid())
}

func TestPolygonBounds(t *testing.T) {
	p := geom.PolygonOf(geom.V2(1, 1), geom.V2(5, 2), geom.V2(3, 8))
	require.Equal(t, geom.Rt(1, 1, 4, 7), p.Bounds())
}

func TestPolygonContains(t *testing.T) {
	p := unitSquare()
	require.True(t, p.Contains(geom.V2(0.5, 0.5)))
	require.False(t, p.Contains(geom.V2(1.5, 0.5)))
	require.False(t, p.Contains(geom.V2(-0.5, 0.5)))

	// A concave polygon excludes points inside its notch.
	concave := geom.PolygonOf(
		geom.V2(0.0, 0.0),
		geom.V2(4.0, 0.0),
		geom.V2(4.0, 4.0),
		geom.V2(2.0, 1.0),
		geom.V2(0.0, 4.0),
	)
	require.True(t, concave.Contains(geom.V2(1.0, 0.5)))
	require.False(t, concave.Contains(geom.V2(2.0, 3.0)))
}

func TestPolygonMutation(t *testing.T) {
	var p geom.Polygon[int]
	require.True(t, p.Empty())

	p.Add(geom.V2(0, 0))
	p.AddXY(2, 0)
	p.Insert(1, geom.V2(1, 0))
	require.Equal(t, 3, p.Len())
	require.Equal(t, geom.V2(1, 0), p.At(1))

	removed := p.Remove(1)
	require.Equal(t, geom.V2(1, 0), removed)
	require.Equal(t, 2, p.Len())
	require.Equal(t, geom.V2(2, 0), p.At(1))

	require.Panics(t, func() { p.At(5) })
}

func TestPolygonCloneEq(t *testing.T) {
	p := unitSquare()
	q := p.Clone()
	require.True(t, p.Eq(q))

	q.Add(geom.V2(9.0, 9.0))
	require.False(t, p.Eq(q))
	require.Equal(t, 4, p.Len())
}

func TestPolygonEdges(t *testing.T) {
	p := geom.PolygonOf(geom.V2(0, 0), geom.V2(1, 0), geom.V2(0, 1))
	edges := slices.Collect(p.Edges())
	require.Equal(t, []geom.Line2[int]{
		geom.Ln2(geom.V2(0, 0), geom.V2(1, 0)),
		geom.Ln2(geom.V2(1, 0), geom.V2(0, 1)),
		geom.Ln2(geom.V2(0, 1), geom.V2(0, 0)),
	}, edges)

	// A single vertex has no edges.
	single := geom.PolygonOf(geom.V2(0, 0))
	require.Empty(t, slices.Collect(single.Edges()))
}

func TestPolygonCollect(t *testing.T) {
	p := unitSquare()
	q := geom.CollectPolygon(p.Vertices())
	require.True(t, p.Eq(q))
}

func TestPolygonConversion(t *testing.T) {
	p := geom.PolygonTo[int](geom.PolygonOf(geom.V2(1.9, 2.9), geom.V2(3.9, 4.9)))
	require.Equal(t, geom.V2(1, 2), p.At(0))
	require.Equal(t, geom.V2(3, 4), p.At(1))
}

func TestPolygonString(t *testing.T) {
	p := geom.PolygonOf(geom.V2(1, 2), geom.V2(3, 4))
	require.Equal(t, "( ( 1, 2 ), ( 3, 4 ) )", p.String())
}
