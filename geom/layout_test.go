package geom_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takram-design-engineering/takram-math/geom"
)

func TestHSplit(t *testing.T) {
	left, right := geom.HSplit(geom.Rt(0, 0, 10, 4), 3)
	require.Equal(t, geom.Rt(0, 0, 3, 4), left)
	require.Equal(t, geom.Rt(3, 0, 7, 4), right)
}

func TestVSplit(t *testing.T) {
	top, bottom := geom.VSplit(geom.Rt(0, 0, 4, 10), 3)
	require.Equal(t, geom.Rt(0, 0, 4, 3), top)
	require.Equal(t, geom.Rt(0, 3, 4, 7), bottom)
}

func TestTileRightThenDown(t *testing.T) {
	tiles := make([]geom.Rect[int], 3)
	geom.TileRightThenDown(tiles, geom.Rt(0, 0, 8, 8))
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 4, 8),
		geom.Rt(4, 0, 4, 4),
		geom.Rt(4, 4, 4, 4),
	}, tiles)
}

func TestTiledEvenVertically(t *testing.T) {
	tiles := slices.Collect(geom.TiledEvenVertically(3, geom.Rt(0, 0, 4, 9)))
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 4, 3),
		geom.Rt(0, 3, 4, 3),
		geom.Rt(0, 6, 4, 3),
	}, tiles)
}

func TestTiledEvenHorizontally(t *testing.T) {
	tiles := slices.Collect(geom.TiledEvenHorizontally(2, geom.Rt(0, 0, 8, 3)))
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 4, 3),
		geom.Rt(4, 0, 4, 3),
	}, tiles)
}

func TestTiledRows(t *testing.T) {
	tiles := slices.Collect(geom.TiledRows(5, geom.Rt(0, 0, 12, 6), 3))
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 4, 3),
		geom.Rt(4, 0, 4, 3),
		geom.Rt(8, 0, 4, 3),
		geom.Rt(0, 3, 6, 3),
		geom.Rt(6, 3, 6, 3),
	}, tiles)
}

func TestTilesCoverRect(t *testing.T) {
	r := geom.Rt(0.0, 0.0, 12.0, 6.0)
	var area float64
	for tile := range geom.TiledRows(6, r, 3) {
		area += tile.Area()
		require.True(t, r.Contains(tile))
	}
	require.InDelta(t, r.Area(), area, 1e-9)
}

func TestAlign(t *testing.T) {
	outer := geom.Rt(0.0, 0.0, 10.0, 10.0)
	inner := geom.Rt(0.0, 0.0, 4.0, 2.0)

	require.Equal(t, geom.Rt(3.0, 4.0, 4.0, 2.0), geom.Align(outer, inner, geom.EdgeNone))
	require.Equal(t, geom.Rt(3.0, 0.0, 4.0, 2.0), geom.Align(outer, inner, geom.EdgeTop))
	require.Equal(t, geom.Rt(3.0, 8.0, 4.0, 2.0), geom.Align(outer, inner, geom.EdgeBottom))
	require.Equal(t, geom.Rt(0.0, 4.0, 4.0, 2.0), geom.Align(outer, inner, geom.EdgeLeft))
	require.Equal(t, geom.Rt(6.0, 4.0, 4.0, 2.0), geom.Align(outer, inner, geom.EdgeRight))

	// Opposite edges stretch the rectangle.
	stretched := geom.Align(outer, inner, geom.EdgeTop|geom.EdgeBottom|geom.EdgeLeft|geom.EdgeRight)
	require.Equal(t, outer, stretched)
}
