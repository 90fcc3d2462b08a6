package geom

import (
	"fmt"
	"iter"
)

// Rect is an axis-aligned rectangle described by an origin point and
// a size. A rect with a negative dimension is permitted and denotes
// the same region as its canonical form; use Canonicalized before
// relying on Origin being the minimum corner.
type Rect[T Scalar] struct {
	Origin Vec2[T]
	Size   Size2[T]
}

// Rt returns the rect at (x, y) spanning width × height.
func Rt[T Scalar](x, y, width, height T) Rect[T] {
	return Rect[T]{Vec2[T]{x, y}, Size2[T]{width, height}}
}

// RectBetween returns the canonical rect spanning two opposite
// corners, given in any order.
func RectBetween[T Scalar](p1, p2 Vec2[T]) Rect[T] {
	origin := Vec2[T]{min(p1.X, p2.X), min(p1.Y, p2.Y)}
	return Rect[T]{
		Origin: origin,
		Size:   Size2[T]{max(p1.X, p2.X) - origin.X, max(p1.Y, p2.Y) - origin.Y},
	}
}

// RectOf converts a rect to another scalar kind.
func RectOf[T, U Scalar](r Rect[U]) Rect[T] {
	return Rect[T]{V2Of[T](r.Origin), Sz2Of[T](r.Size)}
}

// X returns the x coordinate of the origin.
func (r Rect[T]) X() T { return r.Origin.X }

// Y returns the y coordinate of the origin.
func (r Rect[T]) Y() T { return r.Origin.Y }

// Width returns the horizontal extent, possibly negative.
func (r Rect[T]) Width() T { return r.Size.Width }

// Height returns the vertical extent, possibly negative.
func (r Rect[T]) Height() T { return r.Size.Height }

// Empty reports whether the rect has zero size.
func (r Rect[T]) Empty() bool {
	return r.Size.Empty()
}

// Eq reports element-wise equality. Non-canonical rects covering the
// same region as a canonical one do not compare equal; canonicalize
// first when region identity is wanted.
func (r Rect[T]) Eq(other Rect[T]) bool {
	return r == other
}

// Less reports lexicographic ordering over origin then size.
func (r Rect[T]) Less(other Rect[T]) bool {
	if r.Origin != other.Origin {
		return r.Origin.Less(other.Origin)
	}
	return r.Size.Less(other.Size)
}

// Aspect returns the ratio of width to height.
func (r Rect[T]) Aspect() float64 { return r.Size.Aspect() }

// Diagonal returns the length of the rect's diagonal.
func (r Rect[T]) Diagonal() float64 { return r.Size.Diagonal() }

// Area returns the absolute area of the rect.
func (r Rect[T]) Area() float64 { return r.Size.Area() }

// Perimeter returns the length of the rect's boundary.
func (r Rect[T]) Perimeter() float64 {
	s := Sz2Of[float64](r.Size)
	if s.Width < 0 {
		s.Width = -s.Width
	}
	if s.Height < 0 {
		s.Height = -s.Height
	}
	return 2*s.Width + 2*s.Height
}

// Centroid returns the center of the rect.
func (r Rect[T]) Centroid() Vec2[float64] {
	return Vec2[float64]{r.MidX(), r.MidY()}
}

// MinX returns the smaller of the two x bounds.
func (r Rect[T]) MinX() T { return min(r.Origin.X, r.Origin.X+r.Size.Width) }

// MidX returns the horizontal center of the rect.
func (r Rect[T]) MidX() float64 {
	return float64(r.Origin.X) + float64(r.Size.Width)/2
}

// MaxX returns the larger of the two x bounds.
func (r Rect[T]) MaxX() T { return max(r.Origin.X, r.Origin.X+r.Size.Width) }

// MinY returns the smaller of the two y bounds.
func (r Rect[T]) MinY() T { return min(r.Origin.Y, r.Origin.Y+r.Size.Height) }

// MidY returns the vertical center of the rect.
func (r Rect[T]) MidY() float64 {
	return float64(r.Origin.Y) + float64(r.Size.Height)/2
}

// MaxY returns the larger of the two y bounds.
func (r Rect[T]) MaxY() T { return max(r.Origin.Y, r.Origin.Y+r.Size.Height) }

func (r Rect[T]) Left() T   { return r.MinX() }
func (r Rect[T]) Right() T  { return r.MaxX() }
func (r Rect[T]) Top() T    { return r.MinY() }
func (r Rect[T]) Bottom() T { return r.MaxY() }

// Min returns the corner with the smallest coordinates.
func (r Rect[T]) Min() Vec2[T] { return Vec2[T]{r.MinX(), r.MinY()} }

// Max returns the corner with the largest coordinates.
func (r Rect[T]) Max() Vec2[T] { return Vec2[T]{r.MaxX(), r.MaxY()} }

func (r Rect[T]) TopLeft() Vec2[T]     { return Vec2[T]{r.Left(), r.Top()} }
func (r Rect[T]) TopRight() Vec2[T]    { return Vec2[T]{r.Right(), r.Top()} }
func (r Rect[T]) BottomLeft() Vec2[T]  { return Vec2[T]{r.Left(), r.Bottom()} }
func (r Rect[T]) BottomRight() Vec2[T] { return Vec2[T]{r.Right(), r.Bottom()} }

// LeftEdge returns the left edge, directed from top to bottom.
func (r Rect[T]) LeftEdge() Line2[T] {
	x := r.Left()
	return Line2[T]{Vec2[T]{x, r.Top()}, Vec2[T]{x, r.Bottom()}}
}

// RightEdge returns the right edge, directed from top to bottom.
func (r Rect[T]) RightEdge() Line2[T] {
	x := r.Right()
	return Line2[T]{Vec2[T]{x, r.Top()}, Vec2[T]{x, r.Bottom()}}
}

// TopEdge returns the top edge, directed from left to right.
func (r Rect[T]) TopEdge() Line2[T] {
	y := r.Top()
	return Line2[T]{Vec2[T]{r.Left(), y}, Vec2[T]{r.Right(), y}}
}

// BottomEdge returns the bottom edge, directed from left to right.
func (r Rect[T]) BottomEdge() Line2[T] {
	y := r.Bottom()
	return Line2[T]{Vec2[T]{r.Left(), y}, Vec2[T]{r.Right(), y}}
}

// Canonical reports whether both dimensions are positive.
func (r Rect[T]) Canonical() bool {
	return r.Size.Width > 0 && r.Size.Height > 0
}

// Canonicalized returns the rect covering the same region with
// non-negative dimensions. It is idempotent.
func (r Rect[T]) Canonicalized() Rect[T] {
	if r.Size.Width < 0 {
		r.Origin.X += r.Size.Width
		r.Size.Width = -r.Size.Width
	}
	if r.Size.Height < 0 {
		r.Origin.Y += r.Size.Height
		r.Size.Height = -r.Size.Height
	}
	return r
}

// Translated returns the rect moved by offset.
func (r Rect[T]) Translated(offset Vec2[T]) Rect[T] {
	return Rect[T]{r.Origin.Add(offset), r.Size}
}

// Scaled returns the rect with its size multiplied element-wise.
func (r Rect[T]) Scaled(scale Vec2[T]) Rect[T] {
	return Rect[T]{r.Origin, Size2[T]{r.Size.Width * scale.X, r.Size.Height * scale.Y}}
}

// ScaledN returns the rect with its size multiplied by a scalar.
func (r Rect[T]) ScaledN(scale T) Rect[T] {
	return Rect[T]{r.Origin, r.Size.MulN(scale)}
}

// Resized returns the rect with the given size.
func (r Rect[T]) Resized(size Size2[T]) Rect[T] {
	return Rect[T]{r.Origin, size}
}

// CenterAt returns the rect moved so that its centroid is at center.
func (r Rect[T]) CenterAt(center Vec2[float64]) Rect[float64] {
	p := RectOf[float64](r)
	return p.Translated(center.Sub(p.Centroid()))
}

// ContainsPoint reports whether the point lies within the rect,
// boundary inclusive.
func (r Rect[T]) ContainsPoint(point Vec2[T]) bool {
	return !(point.X < r.MinX() || r.MaxX() < point.X ||
		point.Y < r.MinY() || r.MaxY() < point.Y)
}

// Contains reports whether other lies entirely within the rect,
// boundary inclusive.
func (r Rect[T]) Contains(other Rect[T]) bool {
	return r.ContainsPoint(other.Min()) && r.ContainsPoint(other.Max())
}

// Intersects reports whether the two rects overlap, boundary
// inclusive.
func (r Rect[T]) Intersects(other Rect[T]) bool {
	return !(r.MinX() > other.MaxX() || r.MaxX() < other.MinX() ||
		r.MinY() > other.MaxY() || r.MaxY() < other.MinY())
}

// Include returns the canonical rect grown to cover the given point.
func (r Rect[T]) Include(point Vec2[T]) Rect[T] {
	r = r.Canonicalized()
	minimum := Vec2[T]{min(r.MinX(), point.X), min(r.MinY(), point.Y)}
	maximum := Vec2[T]{max(r.MaxX(), point.X), max(r.MaxY(), point.Y)}
	return RectBetween(minimum, maximum)
}

// IncludeRect returns the canonical rect grown to cover other.
func (r Rect[T]) IncludeRect(other Rect[T]) Rect[T] {
	return r.Include(other.Min()).Include(other.Max())
}

// IncludeSeq returns the canonical rect grown to cover every point
// yielded by seq.
func (r Rect[T]) IncludeSeq(seq iter.Seq[Vec2[T]]) Rect[T] {
	for p := range seq {
		r = r.Include(p)
	}
	return r
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("( %v, %v )", r.Origin, r.Size)
}
