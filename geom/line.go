package geom

import "fmt"

// Line2 is a 2-dimensional line segment between the points A and B.
// Degenerate segments of zero length are permitted.
type Line2[T Scalar] struct {
	A, B Vec2[T]
}

// Ln2 returns the segment from a to b.
func Ln2[T Scalar](a, b Vec2[T]) Line2[T] {
	return Line2[T]{a, b}
}

// Ln2Of converts a segment to another scalar kind.
func Ln2Of[T, U Scalar](l Line2[U]) Line2[T] {
	return Line2[T]{V2Of[T](l.A), V2Of[T](l.B)}
}

// Empty reports whether the segment has zero length.
func (l Line2[T]) Empty() bool {
	return l.A == l.B
}

// Eq reports element-wise equality.
func (l Line2[T]) Eq(other Line2[T]) bool {
	return l == other
}

// Length returns the length of the segment.
func (l Line2[T]) Length() float64 {
	return l.A.Distance(l.B)
}

// LengthSquared returns the squared length of the segment.
func (l Line2[T]) LengthSquared() float64 {
	return l.A.DistanceSquared(l.B)
}

// Mid returns the midpoint of the segment.
func (l Line2[T]) Mid() Vec2[float64] {
	return l.A.Lerp(l.B, 0.5)
}

// Direction returns the unit vector from A towards B, or the zero
// vector for a degenerate segment.
func (l Line2[T]) Direction() Vec2[float64] {
	return l.B.Sub(l.A).Normalized()
}

// Intersect returns the intersection point of two segments. The
// second result is false when the segments are parallel or the
// intersection of the carrying lines falls outside either segment.
func (l Line2[T]) Intersect(other Line2[T]) (Vec2[float64], bool) {
	a, b := V2Of[float64](l.A), V2Of[float64](l.B)
	c, d := V2Of[float64](other.A), V2Of[float64](other.B)
	denominator := (d.Y-c.Y)*(b.X-a.X) - (d.X-c.X)*(b.Y-a.Y)
	if denominator == 0 {
		return Vec2[float64]{}, false
	}
	s := ((d.X-c.X)*(a.Y-c.Y) - (d.Y-c.Y)*(a.X-c.X)) / denominator
	t := ((b.X-a.X)*(a.Y-c.Y) - (b.Y-a.Y)*(a.X-c.X)) / denominator
	if s < 0 || s > 1 || t < 0 || t > 1 {
		return Vec2[float64]{}, false
	}
	return a.Add(b.Sub(a).MulN(s)), true
}

// Project returns the point on the segment closest to the given
// point, clamped to the endpoints.
func (l Line2[T]) Project(point Vec2[T]) Vec2[float64] {
	a, b := V2Of[float64](l.A), V2Of[float64](l.B)
	ab := b.Sub(a)
	magnitude := ab.MagnitudeSquared()
	if magnitude == 0 {
		return a
	}
	scale := V2Of[float64](point).Sub(a).Dot(ab) / magnitude
	switch {
	case scale <= 0:
		return a
	case scale >= 1:
		return b
	default:
		return a.Add(ab.MulN(scale))
	}
}

// Side classifies a point relative to the directed line through A and
// B: left when the cross product of (B−A) and (point−A) is positive,
// right when it is negative, and coincident when the point lies on
// the carrying line.
func (l Line2[T]) Side(point Vec2[T]) Side {
	d := l.B.Sub(l.A).Cross(point.Sub(l.A))
	switch {
	case d > 0:
		return SideLeft
	case d < 0:
		return SideRight
	default:
		return SideCoincident
	}
}

func (l Line2[T]) String() string {
	return fmt.Sprintf("( %v, %v )", l.A, l.B)
}

// Line3 is a 3-dimensional line segment between the points A and B.
type Line3[T Scalar] struct {
	A, B Vec3[T]
}

// Ln3 returns the segment from a to b.
func Ln3[T Scalar](a, b Vec3[T]) Line3[T] {
	return Line3[T]{a, b}
}

// Ln3Of converts a segment to another scalar kind.
func Ln3Of[T, U Scalar](l Line3[U]) Line3[T] {
	return Line3[T]{V3Of[T](l.A), V3Of[T](l.B)}
}

// XY truncates the segment to its first two components.
func (l Line3[T]) XY() Line2[T] {
	return Line2[T]{l.A.XY(), l.B.XY()}
}

// Empty reports whether the segment has zero length.
func (l Line3[T]) Empty() bool {
	return l.A == l.B
}

// Eq reports element-wise equality.
func (l Line3[T]) Eq(other Line3[T]) bool {
	return l == other
}

// Length returns the length of the segment.
func (l Line3[T]) Length() float64 {
	return l.A.Distance(l.B)
}

// LengthSquared returns the squared length of the segment.
func (l Line3[T]) LengthSquared() float64 {
	return l.A.DistanceSquared(l.B)
}

// Mid returns the midpoint of the segment.
func (l Line3[T]) Mid() Vec3[float64] {
	return l.A.Lerp(l.B, 0.5)
}

// Direction returns the unit vector from A towards B, or the zero
// vector for a degenerate segment.
func (l Line3[T]) Direction() Vec3[float64] {
	return l.B.Sub(l.A).Normalized()
}

// Project returns the point on the segment closest to the given
// point, clamped to the endpoints.
func (l Line3[T]) Project(point Vec3[T]) Vec3[float64] {
	a, b := V3Of[float64](l.A), V3Of[float64](l.B)
	ab := b.Sub(a)
	magnitude := ab.MagnitudeSquared()
	if magnitude == 0 {
		return a
	}
	scale := V3Of[float64](point).Sub(a).Dot(ab) / magnitude
	switch {
	case scale <= 0:
		return a
	case scale >= 1:
		return b
	default:
		return a.Add(ab.MulN(scale))
	}
}

func (l Line3[T]) String() string {
	return fmt.Sprintf("( %v, %v )", l.A, l.B)
}
