package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takram-design-engineering/takram-math/geom"
)

func TestCircleMeasures(t *testing.T) {
	c := geom.Circle[float64]{Center: geom.V2(1.0, 2.0), Radius: 3.0}
	require.Equal(t, 6.0, c.Diameter())
	require.InDelta(t, geom.Tau*3, c.Circumference(), 1e-12)
	require.InDelta(t, geom.Pi*9, c.Area(), 1e-12)
}

func TestCircleContains(t *testing.T) {
	c := geom.Circle[float64]{Radius: 5.0}
	require.True(t, c.Contains(geom.V2(3.0, 4.0))) // boundary is inside
	require.True(t, c.Contains(geom.V2(0.0, 0.0)))
	require.False(t, c.Contains(geom.V2(3.0, 5.0)))
}

func TestCircleCanonicalized(t *testing.T) {
	c := geom.Circle[float64]{Radius: -2.0}
	require.False(t, c.Canonical())
	require.Equal(t, 2.0, c.Canonicalized().Radius)
	require.True(t, c.Canonicalized().Canonical())
}

func TestCircleAround(t *testing.T) {
	c := geom.CircleAround(geom.V2(0.0, 0.0), geom.V2(0.0, 4.0))
	require.Equal(t, geom.V2(0.0, 2.0), c.Center)
	require.Equal(t, 2.0, c.Radius)
}

func TestCircumcircle(t *testing.T) {
	a, b, c := geom.V2(0.0, 0.0), geom.V2(4.0, 0.0), geom.V2(0.0, 4.0)
	circle, err := geom.Circumcircle(a, b, c)
	require.NoError(t, err)
	require.Equal(t, geom.V2(2.0, 2.0), circle.Center)
	require.InDelta(t, circle.Center.Distance(a), circle.Radius, 1e-12)
	require.InDelta(t, circle.Center.Distance(b), circle.Radius, 1e-12)
	require.InDelta(t, circle.Center.Distance(c), circle.Radius, 1e-12)
}

func TestCircumcircleCollinear(t *testing.T) {
	_, err := geom.Circumcircle(geom.V2(0.0, 0.0), geom.V2(1.0, 1.0), geom.V2(2.0, 2.0))
	require.ErrorIs(t, err, geom.ErrCollinear)
}

func TestCircleConversion(t *testing.T) {
	c := geom.CircleOf[int](geom.Circle[float64]{Center: geom.V2(1.9, 2.9), Radius: 3.9})
	require.Equal(t, geom.V2(1, 2), c.Center)
	require.Equal(t, 3, c.Radius)
}
