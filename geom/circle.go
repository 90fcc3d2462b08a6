package geom

import (
	"fmt"

	"github.com/takram-design-engineering/takram-math/promote"
)

// Circle is a circle described by a center point and a radius. A
// negative radius denotes a non-canonical circle covering the same
// region as its canonical form.
type Circle[T Scalar] struct {
	Center Vec2[T]
	Radius T
}

// CircleOf converts a circle to another scalar kind.
func CircleOf[T, U Scalar](c Circle[U]) Circle[T] {
	return Circle[T]{V2Of[T](c.Center), promote.Convert[T](c.Radius)}
}

// CircleAround returns the circle whose diameter is the segment from
// a to b.
func CircleAround[T Scalar](a, b Vec2[T]) Circle[float64] {
	center := a.Lerp(b, 0.5)
	return Circle[float64]{center, center.Distance(V2Of[float64](a))}
}

// Circumcircle returns the circle passing through three points, or
// ErrCollinear when the points do not determine one.
func Circumcircle[T Scalar](a, b, c Vec2[T]) (Circle[float64], error) {
	p, q, r := V2Of[float64](a), V2Of[float64](b), V2Of[float64](c)
	d := 2 * (p.X*(q.Y-r.Y) + q.X*(r.Y-p.Y) + r.X*(p.Y-q.Y))
	if d == 0 {
		return Circle[float64]{}, ErrCollinear
	}
	pp, qq, rr := p.MagnitudeSquared(), q.MagnitudeSquared(), r.MagnitudeSquared()
	center := Vec2[float64]{
		(pp*(q.Y-r.Y) + qq*(r.Y-p.Y) + rr*(p.Y-q.Y)) / d,
		(pp*(r.X-q.X) + qq*(p.X-r.X) + rr*(q.X-p.X)) / d,
	}
	return Circle[float64]{center, center.Distance(p)}, nil
}

// Empty reports whether the circle has zero radius.
func (c Circle[T]) Empty() bool {
	return c.Radius == 0
}

// Eq reports element-wise equality.
func (c Circle[T]) Eq(other Circle[T]) bool {
	return c == other
}

// Less reports lexicographic ordering over center then radius.
func (c Circle[T]) Less(other Circle[T]) bool {
	if c.Center != other.Center {
		return c.Center.Less(other.Center)
	}
	return c.Radius < other.Radius
}

// Diameter returns twice the radius.
func (c Circle[T]) Diameter() float64 {
	return 2 * float64(c.Radius)
}

// Circumference returns the length of the circle's boundary.
func (c Circle[T]) Circumference() float64 {
	return Tau * float64(c.Radius)
}

// Area returns the area of the circle.
func (c Circle[T]) Area() float64 {
	r := float64(c.Radius)
	return Pi * r * r
}

// Canonical reports whether the radius is positive.
func (c Circle[T]) Canonical() bool {
	return c.Radius > 0
}

// Canonicalized returns the circle with a non-negative radius. It is
// idempotent.
func (c Circle[T]) Canonicalized() Circle[T] {
	if c.Radius < 0 {
		c.Radius = -c.Radius
	}
	return c
}

// Contains reports whether the point lies within the circle, boundary
// inclusive. The test compares squared distances and never takes a
// square root.
func (c Circle[T]) Contains(point Vec2[T]) bool {
	r := float64(c.Radius)
	return c.Center.DistanceSquared(point) <= r*r
}

func (c Circle[T]) String() string {
	return fmt.Sprintf("( %v, %v )", c.Center, c.Radius)
}
