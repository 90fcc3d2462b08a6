package geom

import (
	"fmt"
	"math"
)

// Triangle2 is a triangle in the plane. No winding order is enforced;
// SignedArea reports the actual orientation.
type Triangle2[T Scalar] struct {
	A, B, C Vec2[T]
}

// Tri2 returns the triangle with the vertices a, b and c.
func Tri2[T Scalar](a, b, c Vec2[T]) Triangle2[T] {
	return Triangle2[T]{a, b, c}
}

// Tri2Of converts a triangle to another scalar kind.
func Tri2Of[T, U Scalar](t Triangle2[U]) Triangle2[T] {
	return Triangle2[T]{V2Of[T](t.A), V2Of[T](t.B), V2Of[T](t.C)}
}

// Eq reports element-wise equality.
func (t Triangle2[T]) Eq(other Triangle2[T]) bool {
	return t == other
}

// Empty reports whether the vertices are coincident.
func (t Triangle2[T]) Empty() bool {
	return t.A == t.B && t.B == t.C
}

// SignedArea returns the area of the triangle, positive when the
// vertices wind counterclockwise.
func (t Triangle2[T]) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

// Area returns the absolute area of the triangle.
func (t Triangle2[T]) Area() float64 {
	return math.Abs(t.SignedArea())
}

// Perimeter returns the sum of the side lengths.
func (t Triangle2[T]) Perimeter() float64 {
	return t.A.Distance(t.B) + t.B.Distance(t.C) + t.C.Distance(t.A)
}

// Centroid returns the arithmetic mean of the vertices.
func (t Triangle2[T]) Centroid() Vec2[float64] {
	return V2Of[float64](t.A).
		Add(V2Of[float64](t.B)).
		Add(V2Of[float64](t.C)).
		DivN(3)
}

// Contains reports whether the point lies within the triangle,
// boundary inclusive, regardless of winding order.
func (t Triangle2[T]) Contains(point Vec2[T]) bool {
	d1 := t.B.Sub(t.A).Cross(point.Sub(t.A))
	d2 := t.C.Sub(t.B).Cross(point.Sub(t.B))
	d3 := t.A.Sub(t.C).Cross(point.Sub(t.C))
	negative := d1 < 0 || d2 < 0 || d3 < 0
	positive := d1 > 0 || d2 > 0 || d3 > 0
	return !(negative && positive)
}

func (t Triangle2[T]) String() string {
	return fmt.Sprintf("( %v, %v, %v )", t.A, t.B, t.C)
}

// Triangle3 is a triangle in space.
type Triangle3[T Scalar] struct {
	A, B, C Vec3[T]
}

// Tri3 returns the triangle with the vertices a, b and c.
func Tri3[T Scalar](a, b, c Vec3[T]) Triangle3[T] {
	return Triangle3[T]{a, b, c}
}

// Tri3Of converts a triangle to another scalar kind.
func Tri3Of[T, U Scalar](t Triangle3[U]) Triangle3[T] {
	return Triangle3[T]{V3Of[T](t.A), V3Of[T](t.B), V3Of[T](t.C)}
}

// XY truncates the triangle to the plane.
func (t Triangle3[T]) XY() Triangle2[T] {
	return Triangle2[T]{t.A.XY(), t.B.XY(), t.C.XY()}
}

// Eq reports element-wise equality.
func (t Triangle3[T]) Eq(other Triangle3[T]) bool {
	return t == other
}

// Empty reports whether the vertices are coincident.
func (t Triangle3[T]) Empty() bool {
	return t.A == t.B && t.B == t.C
}

// Area returns the area of the triangle, half the magnitude of the
// cross product of two edges.
func (t Triangle3[T]) Area() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Magnitude() / 2
}

// Perimeter returns the sum of the side lengths.
func (t Triangle3[T]) Perimeter() float64 {
	return t.A.Distance(t.B) + t.B.Distance(t.C) + t.C.Distance(t.A)
}

// Centroid returns the arithmetic mean of the vertices.
func (t Triangle3[T]) Centroid() Vec3[float64] {
	return V3Of[float64](t.A).
		Add(V3Of[float64](t.B)).
		Add(V3Of[float64](t.C)).
		DivN(3)
}

// Normal returns the unit normal of the triangle's plane following
// the winding of the vertices, or the zero vector for a degenerate
// triangle.
func (t Triangle3[T]) Normal() Vec3[float64] {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalized()
}

// Plane returns the plane carrying the triangle, or ErrCollinear for
// a degenerate triangle.
func (t Triangle3[T]) Plane() (Plane, error) {
	return PlaneFromPoints(V3Of[float64](t.A), V3Of[float64](t.B), V3Of[float64](t.C))
}

func (t Triangle3[T]) String() string {
	return fmt.Sprintf("( %v, %v, %v )", t.A, t.B, t.C)
}
