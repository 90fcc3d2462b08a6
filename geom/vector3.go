package geom

import (
	"fmt"
	"math"

	"github.com/takram-design-engineering/takram-math/promote"
	"github.com/takram-design-engineering/takram-math/random"
)

// Vec3 is a 3-dimensional vector.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// V3 returns the vector (x, y, z).
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// V3Of converts a vector to another scalar kind. The conversion
// truncates when T cannot represent a component exactly.
func V3Of[T, U Scalar](v Vec3[U]) Vec3[T] {
	return Vec3[T]{
		promote.Convert[T](v.X),
		promote.Convert[T](v.Y),
		promote.Convert[T](v.Z),
	}
}

// RandomV3 returns a vector whose components are uniform samples over
// [min, max], drawn from e, or from the shared engine when e is nil.
func RandomV3[T Scalar](e *random.Engine, min, max T) Vec3[T] {
	if e == nil {
		e = random.Shared()
	}
	return Vec3[T]{
		random.UniformIn(e, min, max),
		random.UniformIn(e, min, max),
		random.UniformIn(e, min, max),
	}
}

// XY truncates the vector to its first two components.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{v.X, v.Y}
}

// Vec4 extends the vector with a w component.
func (v Vec3[T]) Vec4(w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

// At returns the component at index, panicking when index is not in
// [0, 2].
func (v Vec3[T]) At(index int) T {
	switch index {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("geom: vector index %d out of range", index))
	}
}

// AtAxis returns the component on the given axis.
func (v Vec3[T]) AtAxis(axis Axis) T {
	return v.At(int(axis))
}

// Empty reports whether all components are zero.
func (v Vec3[T]) Empty() bool {
	return v == Vec3[T]{}
}

// Eq reports element-wise equality.
func (v Vec3[T]) Eq(other Vec3[T]) bool {
	return v == other
}

// Less reports lexicographic ordering over the components.
func (v Vec3[T]) Less(other Vec3[T]) bool {
	if v.X != other.X {
		return v.X < other.X
	}
	if v.Y != other.Y {
		return v.Y < other.Y
	}
	return v.Z < other.Z
}

func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vec3[T]) Mul(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div divides element-wise, panicking with ErrDivisionByZero when a
// component of other is zero.
func (v Vec3[T]) Div(other Vec3[T]) Vec3[T] {
	if other.X == 0 || other.Y == 0 || other.Z == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec3[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v Vec3[T]) AddN(scalar T) Vec3[T] {
	return Vec3[T]{v.X + scalar, v.Y + scalar, v.Z + scalar}
}

func (v Vec3[T]) SubN(scalar T) Vec3[T] {
	return Vec3[T]{v.X - scalar, v.Y - scalar, v.Z - scalar}
}

func (v Vec3[T]) MulN(scalar T) Vec3[T] {
	return Vec3[T]{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// DivN divides by a scalar, panicking with ErrDivisionByZero when the
// scalar is zero.
func (v Vec3[T]) DivN(scalar T) Vec3[T] {
	if scalar == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec3[T]{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Neg returns the vector with every component negated.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Magnitude returns the length of the vector.
func (v Vec3[T]) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the vector, avoiding
// a square root.
func (v Vec3[T]) MagnitudeSquared() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return x*x + y*y + z*z
}

// Normalized returns the unit vector in the direction of v, or the
// zero vector when v has zero magnitude.
func (v Vec3[T]) Normalized() Vec3[float64] {
	p := V3Of[float64](v)
	if m := v.Magnitude(); m != 0 {
		return p.DivN(m)
	}
	return p
}

// Limited returns the vector scaled down to the given magnitude when
// it is longer than that.
func (v Vec3[T]) Limited(max float64) Vec3[float64] {
	p := V3Of[float64](v)
	if p.MagnitudeSquared() > max*max {
		return p.Normalized().MulN(max)
	}
	return p
}

// Distance returns the distance between two points.
func (v Vec3[T]) Distance(other Vec3[T]) float64 {
	return v.Sub(other).Magnitude()
}

// DistanceSquared returns the squared distance between two points.
func (v Vec3[T]) DistanceSquared(other Vec3[T]) float64 {
	return v.Sub(other).MagnitudeSquared()
}

// Dot returns the dot product of two vectors.
func (v Vec3[T]) Dot(other Vec3[T]) float64 {
	return float64(v.X)*float64(other.X) +
		float64(v.Y)*float64(other.Y) +
		float64(v.Z)*float64(other.Z)
}

// Cross returns the cross product of two vectors.
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[float64] {
	a, b := V3Of[float64](v), V3Of[float64](other)
	return Vec3[float64]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Angle returns the unsigned angle between two vectors, in radians.
func (v Vec3[T]) Angle(other Vec3[T]) float64 {
	return math.Atan2(v.Cross(other).Magnitude(), v.Dot(other))
}

// Lerp interpolates linearly towards other. The factor is not clamped
// to [0, 1].
func (v Vec3[T]) Lerp(other Vec3[T], factor float64) Vec3[float64] {
	a, b := V3Of[float64](v), V3Of[float64](other)
	return a.Add(b.Sub(a).MulN(factor))
}

// Jittered returns the vector offset on each axis by a uniform sample
// over [-1, 1] scaled by the corresponding component of amount. The
// samples are drawn from e, or from the shared engine when e is nil.
func (v Vec3[T]) Jittered(amount Vec3[T], e *random.Engine) Vec3[float64] {
	p := V3Of[float64](v)
	if amount.Empty() {
		return p
	}
	if e == nil {
		e = random.Shared()
	}
	return Vec3[float64]{
		p.X + float64(amount.X)*random.UniformIn(e, -1.0, 1.0),
		p.Y + float64(amount.Y)*random.UniformIn(e, -1.0, 1.0),
		p.Z + float64(amount.Z)*random.UniformIn(e, -1.0, 1.0),
	}
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("( %v, %v, %v )", v.X, v.Y, v.Z)
}
