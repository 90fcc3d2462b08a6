package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takram-design-engineering/takram-math/geom"
)

func TestNewPlane(t *testing.T) {
	// z = 5, as 0x + 0y + 1z - 5 = 0.
	p, err := geom.NewPlane(0, 0, 1, -5)
	require.NoError(t, err)
	require.Equal(t, geom.V3(0.0, 0.0, 1.0), p.Normal())
	require.Equal(t, 5.0, p.Distance())
	require.Equal(t, [4]float64{0, 0, 1, -5}, p.Equation())

	// The normal is stored normalized.
	p, err = geom.NewPlane(0, 0, 2, -10)
	require.NoError(t, err)
	require.Equal(t, geom.V3(0.0, 0.0, 1.0), p.Normal())
	require.Equal(t, 5.0, p.Distance())
}

func TestNewPlaneZeroNormal(t *testing.T) {
	_, err := geom.NewPlane(0, 0, 0, 1)
	require.ErrorIs(t, err, geom.ErrZeroNormal)

	_, err = geom.PlaneFromNormal(geom.V3(0.0, 0.0, 0.0), 1)
	require.ErrorIs(t, err, geom.ErrZeroNormal)
}

func TestPlaneAt(t *testing.T) {
	p, err := geom.PlaneAt(geom.V3(3.0, 4.0, 5.0), geom.V3(0.0, 0.0, 2.0))
	require.NoError(t, err)
	require.Equal(t, 5.0, p.Distance())
	require.Equal(t, geom.V3(0.0, 0.0, 5.0), p.Point())
}

func TestPlaneFromPoints(t *testing.T) {
	p, err := geom.PlaneFromPoints(geom.V3(1.0, 0.0, 0.0), geom.V3(0.0, 1.0, 0.0), geom.V3(0.0, 0.0, 1.0))
	require.NoError(t, err)

	// All three defining points lie on the plane.
	for _, v := range []geom.Vec3[float64]{
		geom.V3(1.0, 0.0, 0.0), geom.V3(0.0, 1.0, 0.0), geom.V3(0.0, 0.0, 1.0),
	} {
		require.InDelta(t, 0, p.SignedDistance(v), 1e-12)
	}

	_, err = geom.PlaneFromPoints(geom.V3(0.0, 0.0, 0.0), geom.V3(1.0, 1.0, 1.0), geom.V3(2.0, 2.0, 2.0))
	require.ErrorIs(t, err, geom.ErrCollinear)
}

func TestPlaneSignedDistance(t *testing.T) {
	p, err := geom.NewPlane(0, 0, 1, -5)
	require.NoError(t, err)
	require.Equal(t, 2.0, p.SignedDistance(geom.V3(0.0, 0.0, 7.0)))
	require.Equal(t, -5.0, p.SignedDistance(geom.V3(0.0, 0.0, 0.0)))
}

func TestPlaneProject(t *testing.T) {
	p, err := geom.NewPlane(0, 0, 1, -5)
	require.NoError(t, err)
	require.Equal(t, geom.V3(3.0, 4.0, 5.0), p.Project(geom.V3(3.0, 4.0, 9.0)))
	require.InDelta(t, 0, p.SignedDistance(p.Project(geom.V3(1.0, 2.0, 3.0))), 1e-12)
}

func TestPlaneEquationRoundTrip(t *testing.T) {
	orig, err := geom.NewPlane(1, 2, 3, 4)
	require.NoError(t, err)
	eq := orig.Equation()
	back, err := geom.NewPlane(eq[0], eq[1], eq[2], eq[3])
	require.NoError(t, err)
	require.InDelta(t, orig.Distance(), back.Distance(), 1e-12)
	require.InDelta(t, 0, orig.Normal().Sub(back.Normal()).Magnitude(), 1e-12)
}
