package geom

import (
	"fmt"

	"github.com/takram-design-engineering/takram-math/promote"
)

// Sphere is a sphere described by a center point and a radius. A
// negative radius denotes a non-canonical sphere covering the same
// region as its canonical form.
type Sphere[T Scalar] struct {
	Center Vec3[T]
	Radius T
}

// SphereOf converts a sphere to another scalar kind.
func SphereOf[T, U Scalar](s Sphere[U]) Sphere[T] {
	return Sphere[T]{V3Of[T](s.Center), promote.Convert[T](s.Radius)}
}

// Empty reports whether the sphere has zero radius.
func (s Sphere[T]) Empty() bool {
	return s.Radius == 0
}

// Eq reports element-wise equality.
func (s Sphere[T]) Eq(other Sphere[T]) bool {
	return s == other
}

// Less reports lexicographic ordering over center then radius.
func (s Sphere[T]) Less(other Sphere[T]) bool {
	if s.Center != other.Center {
		return s.Center.Less(other.Center)
	}
	return s.Radius < other.Radius
}

// Diameter returns twice the radius.
func (s Sphere[T]) Diameter() float64 {
	return 2 * float64(s.Radius)
}

// SurfaceArea returns the area of the sphere's boundary.
func (s Sphere[T]) SurfaceArea() float64 {
	r := float64(s.Radius)
	return 4 * Pi * r * r
}

// Volume returns the volume enclosed by the sphere.
func (s Sphere[T]) Volume() float64 {
	r := float64(s.Radius)
	return 4 * Pi * r * r * r / 3
}

// Canonical reports whether the radius is positive.
func (s Sphere[T]) Canonical() bool {
	return s.Radius > 0
}

// Canonicalized returns the sphere with a non-negative radius. It is
// idempotent.
func (s Sphere[T]) Canonicalized() Sphere[T] {
	if s.Radius < 0 {
		s.Radius = -s.Radius
	}
	return s
}

// Contains reports whether the point lies within the sphere, boundary
// inclusive. The test compares squared distances and never takes a
// square root.
func (s Sphere[T]) Contains(point Vec3[T]) bool {
	r := float64(s.Radius)
	return s.Center.DistanceSquared(point) <= r*r
}

func (s Sphere[T]) String() string {
	return fmt.Sprintf("( %v, %v )", s.Center, s.Radius)
}
