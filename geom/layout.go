package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// HSplit splits a rectangle at w into two rectangles arranged
// horizontally.
func HSplit[T Scalar](r Rect[T], w T) (left, right Rect[T]) {
	left = r.Resized(Sz2(w, r.Size.Height))
	right = r.Resized(Sz2(r.Size.Width-w, r.Size.Height)).Translated(V2(w, 0))
	return left, right
}

func hsplitHalf[T Scalar](r Rect[T]) (left, right Rect[T]) {
	return HSplit(r, r.Size.Width/2)
}

// VSplit splits a rectangle at h into two rectangles arranged
// vertically.
func VSplit[T Scalar](r Rect[T], h T) (top, bottom Rect[T]) {
	top = r.Resized(Sz2(r.Size.Width, h))
	bottom = r.Resized(Sz2(r.Size.Width, r.Size.Height-h)).Translated(V2(0, h))
	return top, bottom
}

func vsplitHalf[T Scalar](r Rect[T]) (top, bottom Rect[T]) {
	return VSplit(r, r.Size.Height/2)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards.
func TileRightThenDown[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		split, next := hsplitHalf[T], vsplitHalf[T]

		n := r
		for range numtiles - 1 {
			var c Rect[T]
			c, n = split(n)
			split, next = next, split
			if !yield(c) {
				return
			}
		}

		yield(n)
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result is an even, vertical splitting of r.
func TileEvenVertically[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		shift := V2(0, r.Size.Height/T(numtiles))
		c, _ := VSplit(r, shift.Y)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Translated(shift)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result is an even, horizontal splitting of r.
func TileEvenHorizontally[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except
// that it yields the tiles from an iterator.
func TiledEvenHorizontally[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		shift := V2(r.Size.Width/T(numtiles), 0)
		c, _ := HSplit(r, shift.X)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Translated(shift)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[T Scalar](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. Both rectangles are
// taken in canonical form.
func Align[T Scalar](outer, inner Rect[T], edges Edges) Rect[float64] {
	o := RectOf[float64](outer).Canonicalized()
	in := RectOf[float64](inner).Canonicalized().CenterAt(o.Centroid())

	switch {
	case edges&EdgeTop != 0:
		height := in.Size.Height
		if edges&EdgeBottom != 0 {
			height = o.Size.Height
		}
		in.Origin.Y, in.Size.Height = o.Top(), height
	case edges&EdgeBottom != 0:
		in.Origin.Y = o.Bottom() - in.Size.Height
	}
	switch {
	case edges&EdgeLeft != 0:
		width := in.Size.Width
		if edges&EdgeRight != 0 {
			width = o.Size.Width
		}
		in.Origin.X, in.Size.Width = o.Left(), width
	case edges&EdgeRight != 0:
		in.Origin.X = o.Right() - in.Size.Width
	}

	return in
}

func insertTilesFromSeq[T Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
