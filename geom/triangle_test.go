package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takram-design-engineering/takram-math/geom"
)

func TestTriangle2Area(t *testing.T) {
	ccw := geom.Tri2(geom.V2(0.0, 0.0), geom.V2(4.0, 0.0), geom.V2(0.0, 3.0))
	require.Equal(t, 6.0, ccw.SignedArea())
	require.Equal(t, 6.0, ccw.Area())

	cw := geom.Tri2(geom.V2(0.0, 0.0), geom.V2(0.0, 3.0), geom.V2(4.0, 0.0))
	require.Equal(t, -6.0, cw.SignedArea())
	require.Equal(t, 6.0, cw.Area())

	require.Equal(t, 12.0, ccw.Perimeter())
}

func TestTriangle2Centroid(t *testing.T) {
	tr := geom.Tri2(geom.V2(0.0, 0.0), geom.V2(3.0, 0.0), geom.V2(0.0, 3.0))
	require.Equal(t, geom.V2(1.0, 1.0), tr.Centroid())
}

func TestTriangle2Contains(t *testing.T) {
	tr := geom.Tri2(geom.V2(0.0, 0.0), geom.V2(4.0, 0.0), geom.V2(0.0, 4.0))
	require.True(t, tr.Contains(geom.V2(1.0, 1.0)))
	require.True(t, tr.Contains(geom.V2(0.0, 0.0)))  // vertex
	require.True(t, tr.Contains(geom.V2(2.0, 0.0)))  // edge
	require.False(t, tr.Contains(geom.V2(3.0, 3.0)))
	require.False(t, tr.Contains(geom.V2(-1.0, 0.0)))

	// Winding must not matter.
	rev := geom.Tri2(tr.C, tr.B, tr.A)
	require.True(t, rev.Contains(geom.V2(1.0, 1.0)))
	require.False(t, rev.Contains(geom.V2(3.0, 3.0)))
}

func TestTriangle3Area(t *testing.T) {
	tr := geom.Tri3(geom.V3(0.0, 0.0, 1.0), geom.V3(4.0, 0.0, 1.0), geom.V3(0.0, 3.0, 1.0))
	require.InDelta(t, 6, tr.Area(), 1e-12)
	require.Equal(t, 12.0, tr.Perimeter())
	require.Equal(t, geom.Tri2(geom.V2(0.0, 0.0), geom.V2(4.0, 0.0), geom.V2(0.0, 3.0)), tr.XY())
}

func TestTriangle3Normal(t *testing.T) {
	tr := geom.Tri3(geom.V3(0.0, 0.0, 0.0), geom.V3(1.0, 0.0, 0.0), geom.V3(0.0, 1.0, 0.0))
	n := tr.Normal()
	require.InDelta(t, 1, n.Magnitude(), 1e-12)
	require.InDelta(t, 1, math.Abs(n.Z), 1e-12)

	degenerate := geom.Tri3(geom.V3(0.0, 0.0, 0.0), geom.V3(1.0, 1.0, 1.0), geom.V3(2.0, 2.0, 2.0))
	require.Equal(t, geom.V3(0.0, 0.0, 0.0), degenerate.Normal())
}

func TestTriangle3Plane(t *testing.T) {
	tr := geom.Tri3(geom.V3(0.0, 0.0, 2.0), geom.V3(1.0, 0.0, 2.0), geom.V3(0.0, 1.0, 2.0))
	p, err := tr.Plane()
	require.NoError(t, err)
	require.InDelta(t, 0, p.SignedDistance(geom.V3(7.0, -3.0, 2.0)), 1e-12)

	degenerate := geom.Tri3(geom.V3(0.0, 0.0, 0.0), geom.V3(1.0, 1.0, 1.0), geom.V3(2.0, 2.0, 2.0))
	_, err = degenerate.Plane()
	require.Error(t, err)
}
