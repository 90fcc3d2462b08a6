package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takram-design-engineering/takram-math/geom"
)

func TestSize2Measures(t *testing.T) {
	s := geom.Sz2(4.0, 3.0)
	require.Equal(t, 4.0/3.0, s.Aspect())
	require.Equal(t, 12.0, s.Area())
	require.Equal(t, 5.0, s.Diagonal())

	// Area ignores sign.
	require.Equal(t, 12.0, geom.Sz2(-4.0, 3.0).Area())

	require.True(t, math.IsInf(geom.Sz2(4.0, 0.0).Aspect(), 1))
}

func TestSize2Arithmetic(t *testing.T) {
	s := geom.Sz2(4, 3)
	require.Equal(t, geom.Sz2(5, 5), s.Add(geom.Sz2(1, 2)))
	require.Equal(t, geom.Sz2(3, 1), s.Sub(geom.Sz2(1, 2)))
	require.Equal(t, geom.Sz2(8, 6), s.MulN(2))
	require.Equal(t, geom.Sz2(2.0, 1.5), geom.Sz2(4.0, 3.0).DivN(2))
	require.Equal(t, geom.V2(4, 3), s.Vec())
}

func TestSize2DivByZeroPanics(t *testing.T) {
	require.Panics(t, func() { geom.Sz2(1, 2).DivN(0) })
	require.Panics(t, func() { geom.Sz2(1, 2).Div(geom.Sz2(1, 0)) })
}

func TestSize3Measures(t *testing.T) {
	s := geom.Sz3(2.0, 3.0, 6.0)
	require.Equal(t, 36.0, s.Volume())
	require.Equal(t, 7.0, s.Diagonal())
	require.Equal(t, 36.0, geom.Sz3(-2.0, 3.0, 6.0).Volume())
	require.Equal(t, geom.V3(2.0, 3.0, 6.0), s.Vec())
}

func TestSizeConversion(t *testing.T) {
	require.Equal(t, geom.Sz2(1, 2), geom.Sz2Of[int](geom.Sz2(1.9, 2.9)))
	require.Equal(t, geom.Sz3(1, 2, 3), geom.Sz3Of[int](geom.Sz3(1.9, 2.9, 3.9)))
}

func TestSizeLess(t *testing.T) {
	require.True(t, geom.Sz2(1, 2).Less(geom.Sz2(1, 3)))
	require.False(t, geom.Sz2(1, 2).Less(geom.Sz2(1, 2)))
	require.True(t, geom.Sz3(1, 2, 3).Less(geom.Sz3(1, 2, 4)))
}
