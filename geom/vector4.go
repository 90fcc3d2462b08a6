package geom

import (
	"fmt"
	"math"

	"github.com/takram-design-engineering/takram-math/promote"
	"github.com/takram-design-engineering/takram-math/random"
)

// Vec4 is a 4-dimensional vector.
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

// V4 returns the vector (x, y, z, w).
func V4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// V4Of converts a vector to another scalar kind. The conversion
// truncates when T cannot represent a component exactly.
func V4Of[T, U Scalar](v Vec4[U]) Vec4[T] {
	return Vec4[T]{
		promote.Convert[T](v.X),
		promote.Convert[T](v.Y),
		promote.Convert[T](v.Z),
		promote.Convert[T](v.W),
	}
}

// RandomV4 returns a vector whose components are uniform samples over
// [min, max], drawn from e, or from the shared engine when e is nil.
func RandomV4[T Scalar](e *random.Engine, min, max T) Vec4[T] {
	if e == nil {
		e = random.Shared()
	}
	return Vec4[T]{
		random.UniformIn(e, min, max),
		random.UniformIn(e, min, max),
		random.UniformIn(e, min, max),
		random.UniformIn(e, min, max),
	}
}

// XY truncates the vector to its first two components.
func (v Vec4[T]) XY() Vec2[T] {
	return Vec2[T]{v.X, v.Y}
}

// XYZ truncates the vector to its first three components.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

// At returns the component at index, panicking when index is not in
// [0, 3].
func (v Vec4[T]) At(index int) T {
	switch index {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic(fmt.Sprintf("geom: vector index %d out of range", index))
	}
}

// AtAxis returns the component on the given axis.
func (v Vec4[T]) AtAxis(axis Axis) T {
	return v.At(int(axis))
}

// Empty reports whether all components are zero.
func (v Vec4[T]) Empty() bool {
	return v == Vec4[T]{}
}

// Eq reports element-wise equality.
func (v Vec4[T]) Eq(other Vec4[T]) bool {
	return v == other
}

// Less reports lexicographic ordering over the components.
func (v Vec4[T]) Less(other Vec4[T]) bool {
	if v.X != other.X {
		return v.X < other.X
	}
	if v.Y != other.Y {
		return v.Y < other.Y
	}
	if v.Z != other.Z {
		return v.Z < other.Z
	}
	return v.W < other.W
}

func (v Vec4[T]) Add(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vec4[T]) Sub(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vec4[T]) Mul(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Div divides element-wise, panicking with ErrDivisionByZero when a
// component of other is zero.
func (v Vec4[T]) Div(other Vec4[T]) Vec4[T] {
	if other.X == 0 || other.Y == 0 || other.Z == 0 || other.W == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec4[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

func (v Vec4[T]) AddN(scalar T) Vec4[T] {
	return Vec4[T]{v.X + scalar, v.Y + scalar, v.Z + scalar, v.W + scalar}
}

func (v Vec4[T]) SubN(scalar T) Vec4[T] {
	return Vec4[T]{v.X - scalar, v.Y - scalar, v.Z - scalar, v.W - scalar}
}

func (v Vec4[T]) MulN(scalar T) Vec4[T] {
	return Vec4[T]{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// DivN divides by a scalar, panicking with ErrDivisionByZero when the
// scalar is zero.
func (v Vec4[T]) DivN(scalar T) Vec4[T] {
	if scalar == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec4[T]{v.X / scalar, v.Y / scalar, v.Z / scalar, v.W / scalar}
}

// Neg returns the vector with every component negated.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Magnitude returns the length of the vector.
func (v Vec4[T]) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the vector, avoiding
// a square root.
func (v Vec4[T]) MagnitudeSquared() float64 {
	x, y, z, w := float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)
	return x*x + y*y + z*z + w*w
}

// Normalized returns the unit vector in the direction of v, or the
// zero vector when v has zero magnitude.
func (v Vec4[T]) Normalized() Vec4[float64] {
	p := V4Of[float64](v)
	if m := v.Magnitude(); m != 0 {
		return p.DivN(m)
	}
	return p
}

// Distance returns the distance between two points.
func (v Vec4[T]) Distance(other Vec4[T]) float64 {
	return v.Sub(other).Magnitude()
}

// DistanceSquared returns the squared distance between two points.
func (v Vec4[T]) DistanceSquared(other Vec4[T]) float64 {
	return v.Sub(other).MagnitudeSquared()
}

// Dot returns the dot product of two vectors.
func (v Vec4[T]) Dot(other Vec4[T]) float64 {
	return float64(v.X)*float64(other.X) +
		float64(v.Y)*float64(other.Y) +
		float64(v.Z)*float64(other.Z) +
		float64(v.W)*float64(other.W)
}

// Lerp interpolates linearly towards other. The factor is not clamped
// to [0, 1].
func (v Vec4[T]) Lerp(other Vec4[T], factor float64) Vec4[float64] {
	a, b := V4Of[float64](v), V4Of[float64](other)
	return a.Add(b.Sub(a).MulN(factor))
}

// Jittered returns the vector offset on each axis by a uniform sample
// over [-1, 1] scaled by the corresponding component of amount. The
// samples are drawn from e, or from the shared engine when e is nil.
func (v Vec4[T]) Jittered(amount Vec4[T], e *random.Engine) Vec4[float64] {
	p := V4Of[float64](v)
	if amount.Empty() {
		return p
	}
	if e == nil {
		e = random.Shared()
	}
	return Vec4[float64]{
		p.X + float64(amount.X)*random.UniformIn(e, -1.0, 1.0),
		p.Y + float64(amount.Y)*random.UniformIn(e, -1.0, 1.0),
		p.Z + float64(amount.Z)*random.UniformIn(e, -1.0, 1.0),
		p.W + float64(amount.W)*random.UniformIn(e, -1.0, 1.0),
	}
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("( %v, %v, %v, %v )", v.X, v.Y, v.Z, v.W)
}
