package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takram-design-engineering/takram-math/geom"
)

func TestLerp(t *testing.T) {
	require.Equal(t, 5.0, geom.Lerp(0, 10, 0.5))
	require.Equal(t, 0.0, geom.Lerp(0, 10, 0.0))
	require.Equal(t, 10.0, geom.Lerp(0, 10, 1.0))
	require.Equal(t, 20.0, geom.Lerp(0, 10, 2.0)) // extrapolates
}

func TestNorm(t *testing.T) {
	require.Equal(t, 0.5, geom.Norm(5.0, 0, 10))
	require.Equal(t, 0.5, geom.Lerp(0, 1, geom.Norm(5.0, 0, 10)))
}

func TestMap(t *testing.T) {
	require.Equal(t, 50.0, geom.Map(5.0, 0, 10, 0, 100))
	require.Equal(t, 0.25, geom.Map(25.0, 0, 100, 0, 1))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 5, geom.Clamp(5, 0, 10))
	require.Equal(t, 0, geom.Clamp(-5, 0, 10))
	require.Equal(t, 10, geom.Clamp(15, 0, 10))
	require.Equal(t, 2.5, geom.Clamp(2.5, 0.0, 10.0))
}

func TestSolveLinear(t *testing.T) {
	require.Equal(t, []float64{2}, geom.SolveLinear(3, -6))
	require.Nil(t, geom.SolveLinear(0, 1))
}

func TestSolveQuadratic(t *testing.T) {
	// (x - 1)(x - 3) = x² - 4x + 3
	require.Equal(t, []float64{1, 3}, geom.SolveQuadratic(1, -4, 3))

	// (x - 2)² = x² - 4x + 4
	require.Equal(t, []float64{2}, geom.SolveQuadratic(1, -4, 4))

	// x² + 1 has no real roots.
	require.Nil(t, geom.SolveQuadratic(1, 0, 1))

	// Degrades to the linear case.
	require.Equal(t, []float64{2}, geom.SolveQuadratic(0, 3, -6))

	// Roots come back in ascending order regardless of sign of a.
	require.Equal(t, []float64{1, 3}, geom.SolveQuadratic(-1, 4, -3))
}

func TestConstants(t *testing.T) {
	require.Equal(t, geom.Pi*2, geom.Tau)
	require.InDelta(t, 1, geom.Degree*geom.Radian, 1e-12)
	require.InDelta(t, geom.Pi, 180*geom.Degree, 1e-12)
	require.InDelta(t, 90.0, geom.HalfPi*geom.Radian, 1e-12)
}
