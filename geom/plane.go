package geom

import "fmt"

// Plane is a plane in Hessian normal form: a unit normal vector and
// the signed distance of the plane from the origin along that normal.
// The zero value is not a valid plane; use one of the constructors,
// which normalize their input and reject zero normals.
type Plane struct {
	normal   Vec3[float64]
	distance float64
}

// NewPlane returns the plane of the equation a·x + b·y + c·z + d = 0,
// or ErrZeroNormal when (a, b, c) is the zero vector.
func NewPlane(a, b, c, d float64) (Plane, error) {
	normal := Vec3[float64]{a, b, c}
	if normal.Empty() {
		return Plane{}, ErrZeroNormal
	}
	return Plane{normal.Normalized(), -d / normal.Magnitude()}, nil
}

// PlaneFromNormal returns the plane with the given normal at the
// given signed distance from the origin, or ErrZeroNormal when the
// normal is the zero vector. The normal need not be unit length.
func PlaneFromNormal(normal Vec3[float64], distance float64) (Plane, error) {
	if normal.Empty() {
		return Plane{}, ErrZeroNormal
	}
	return Plane{normal.Normalized(), distance}, nil
}

// PlaneAt returns the plane through point with the given normal, or
// ErrZeroNormal when the normal is the zero vector.
func PlaneAt(point, normal Vec3[float64]) (Plane, error) {
	if normal.Empty() {
		return Plane{}, ErrZeroNormal
	}
	unit := normal.Normalized()
	return Plane{unit, unit.Dot(point)}, nil
}

// PlaneFromPoints returns the plane through three points, with the
// normal following the winding p1, p2, p3, or ErrCollinear when the
// points do not determine a plane.
func PlaneFromPoints(p1, p2, p3 Vec3[float64]) (Plane, error) {
	normal := p2.Sub(p1).Cross(p3.Sub(p1))
	if normal.Empty() {
		return Plane{}, ErrCollinear
	}
	unit := normal.Normalized()
	return Plane{unit, unit.Dot(p1)}, nil
}

// Normal returns the unit normal of the plane.
func (p Plane) Normal() Vec3[float64] {
	return p.normal
}

// Distance returns the signed distance of the plane from the origin
// along its normal.
func (p Plane) Distance() float64 {
	return p.distance
}

// Empty reports whether the plane is the invalid zero value.
func (p Plane) Empty() bool {
	return p.normal.Empty()
}

// Eq reports element-wise equality.
func (p Plane) Eq(other Plane) bool {
	return p == other
}

// Point returns the point of the plane closest to the origin.
func (p Plane) Point() Vec3[float64] {
	return p.normal.MulN(p.distance)
}

// Equation returns the coefficients (a, b, c, d) of the plane
// equation a·x + b·y + c·z + d = 0, with (a, b, c) unit length.
func (p Plane) Equation() [4]float64 {
	return [4]float64{p.normal.X, p.normal.Y, p.normal.Z, -p.distance}
}

// SignedDistance returns the distance from the point to the plane,
// positive on the side the normal points to.
func (p Plane) SignedDistance(point Vec3[float64]) float64 {
	return p.normal.Dot(point) - p.distance
}

// Project returns the orthogonal projection of the point onto the
// plane.
func (p Plane) Project(point Vec3[float64]) Vec3[float64] {
	return point.Sub(p.normal.MulN(p.SignedDistance(point)))
}

func (p Plane) String() string {
	return fmt.Sprintf("( %v, %v )", p.normal, p.distance)
}
