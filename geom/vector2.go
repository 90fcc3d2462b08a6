package geom

import (
	"fmt"
	"math"

	"github.com/takram-design-engineering/takram-math/promote"
	"github.com/takram-design-engineering/takram-math/random"
)

// Vec2 is a 2-dimensional vector.
type Vec2[T Scalar] struct {
	X, Y T
}

// V2 returns the vector (x, y).
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// V2Of converts a vector to another scalar kind. The conversion
// truncates when T cannot represent a component exactly.
func V2Of[T, U Scalar](v Vec2[U]) Vec2[T] {
	return Vec2[T]{promote.Convert[T](v.X), promote.Convert[T](v.Y)}
}

// Heading2 returns the unit vector pointing at angle, in radians.
func Heading2(angle float64) Vec2[float64] {
	return Vec2[float64]{math.Cos(angle), math.Sin(angle)}
}

// RandomV2 returns a vector whose components are uniform samples over
// [min, max], drawn from e, or from the shared engine when e is nil.
func RandomV2[T Scalar](e *random.Engine, min, max T) Vec2[T] {
	if e == nil {
		e = random.Shared()
	}
	return Vec2[T]{random.UniformIn(e, min, max), random.UniformIn(e, min, max)}
}

// Vec3 extends the vector with a z component.
func (v Vec2[T]) Vec3(z T) Vec3[T] {
	return Vec3[T]{v.X, v.Y, z}
}

// Vec4 extends the vector with z and w components.
func (v Vec2[T]) Vec4(z, w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, z, w}
}

// Size returns the vector reinterpreted as a size.
func (v Vec2[T]) Size() Size2[T] {
	return Size2[T]{v.X, v.Y}
}

// At returns the component at index, panicking when index is not 0
// or 1.
func (v Vec2[T]) At(index int) T {
	switch index {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic(fmt.Sprintf("geom: vector index %d out of range", index))
	}
}

// AtAxis returns the component on the given axis.
func (v Vec2[T]) AtAxis(axis Axis) T {
	return v.At(int(axis))
}

// Empty reports whether all components are zero.
func (v Vec2[T]) Empty() bool {
	return v == Vec2[T]{}
}

// Eq reports element-wise equality.
func (v Vec2[T]) Eq(other Vec2[T]) bool {
	return v == other
}

// Less reports lexicographic ordering over the components.
func (v Vec2[T]) Less(other Vec2[T]) bool {
	return v.X < other.X || (v.X == other.X && v.Y < other.Y)
}

func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + other.X, v.Y + other.Y}
}

func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - other.X, v.Y - other.Y}
}

func (v Vec2[T]) Mul(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X * other.X, v.Y * other.Y}
}

// Div divides element-wise, panicking with ErrDivisionByZero when a
// component of other is zero.
func (v Vec2[T]) Div(other Vec2[T]) Vec2[T] {
	if other.X == 0 || other.Y == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec2[T]{v.X / other.X, v.Y / other.Y}
}

func (v Vec2[T]) AddN(scalar T) Vec2[T] {
	return Vec2[T]{v.X + scalar, v.Y + scalar}
}

func (v Vec2[T]) SubN(scalar T) Vec2[T] {
	return Vec2[T]{v.X - scalar, v.Y - scalar}
}

func (v Vec2[T]) MulN(scalar T) Vec2[T] {
	return Vec2[T]{v.X * scalar, v.Y * scalar}
}

// DivN divides by a scalar, panicking with ErrDivisionByZero when the
// scalar is zero.
func (v Vec2[T]) DivN(scalar T) Vec2[T] {
	if scalar == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec2[T]{v.X / scalar, v.Y / scalar}
}

// Neg returns the vector with every component negated.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-v.X, -v.Y}
}

// Heading returns the angle of the vector from the positive x axis,
// in radians.
func (v Vec2[T]) Heading() float64 {
	return math.Atan2(float64(v.Y), float64(v.X))
}

// Angle returns the signed angle from v to other, in radians.
func (v Vec2[T]) Angle(other Vec2[T]) float64 {
	return math.Atan2(v.Cross(other), v.Dot(other))
}

// Magnitude returns the length of the vector.
func (v Vec2[T]) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the vector, avoiding
// a square root.
func (v Vec2[T]) MagnitudeSquared() float64 {
	x, y := float64(v.X), float64(v.Y)
	return x*x + y*y
}

// Normalized returns the unit vector in the direction of v, or the
// zero vector when v has zero magnitude.
func (v Vec2[T]) Normalized() Vec2[float64] {
	p := V2Of[float64](v)
	if m := v.Magnitude(); m != 0 {
		return p.DivN(m)
	}
	return p
}

// Limited returns the vector scaled down to the given magnitude when
// it is longer than that.
func (v Vec2[T]) Limited(max float64) Vec2[float64] {
	p := V2Of[float64](v)
	if p.MagnitudeSquared() > max*max {
		return p.Normalized().MulN(max)
	}
	return p
}

// Distance returns the distance between two points.
func (v Vec2[T]) Distance(other Vec2[T]) float64 {
	return v.Sub(other).Magnitude()
}

// DistanceSquared returns the squared distance between two points.
func (v Vec2[T]) DistanceSquared(other Vec2[T]) float64 {
	return v.Sub(other).MagnitudeSquared()
}

// Dot returns the dot product of two vectors.
func (v Vec2[T]) Dot(other Vec2[T]) float64 {
	return float64(v.X)*float64(other.X) + float64(v.Y)*float64(other.Y)
}

// Cross returns the 2-dimensional cross product, the signed area of
// the parallelogram the two vectors span.
func (v Vec2[T]) Cross(other Vec2[T]) float64 {
	return float64(v.X)*float64(other.Y) - float64(v.Y)*float64(other.X)
}

// Lerp interpolates linearly towards other. The factor is not clamped
// to [0, 1].
func (v Vec2[T]) Lerp(other Vec2[T], factor float64) Vec2[float64] {
	a, b := V2Of[float64](v), V2Of[float64](other)
	return a.Add(b.Sub(a).MulN(factor))
}

// Polar returns the polar form (magnitude, heading) of the vector.
func (v Vec2[T]) Polar() Vec2[float64] {
	return Vec2[float64]{v.Magnitude(), v.Heading()}
}

// Cartesian interprets the vector as polar form (magnitude, angle)
// and returns the cartesian point it denotes.
func (v Vec2[T]) Cartesian() Vec2[float64] {
	r, a := float64(v.X), float64(v.Y)
	return Vec2[float64]{r * math.Cos(a), r * math.Sin(a)}
}

// Jittered returns the vector offset on each axis by a uniform sample
// over [-1, 1] scaled by the corresponding component of amount. The
// samples are drawn from e, or from the shared engine when e is nil.
func (v Vec2[T]) Jittered(amount Vec2[T], e *random.Engine) Vec2[float64] {
	p := V2Of[float64](v)
	if amount.Empty() {
		return p
	}
	if e == nil {
		e = random.Shared()
	}
	return Vec2[float64]{
		p.X + float64(amount.X)*random.UniformIn(e, -1.0, 1.0),
		p.Y + float64(amount.Y)*random.UniformIn(e, -1.0, 1.0),
	}
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("( %v, %v )", v.X, v.Y)
}
