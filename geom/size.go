package geom

import (
	"fmt"
	"math"

	"github.com/takram-design-engineering/takram-math/promote"
)

// Size2 is a pair of dimensions. It behaves like a vector but names
// its components width and height; a negative dimension denotes a
// non-canonical extent (see Rect).
type Size2[T Scalar] struct {
	Width, Height T
}

// Sz2 returns the size width × height.
func Sz2[T Scalar](width, height T) Size2[T] {
	return Size2[T]{width, height}
}

// Sz2Of converts a size to another scalar kind.
func Sz2Of[T, U Scalar](s Size2[U]) Size2[T] {
	return Size2[T]{promote.Convert[T](s.Width), promote.Convert[T](s.Height)}
}

// Vec returns the size reinterpreted as a vector.
func (s Size2[T]) Vec() Vec2[T] {
	return Vec2[T]{s.Width, s.Height}
}

// Empty reports whether both dimensions are zero.
func (s Size2[T]) Empty() bool {
	return s == Size2[T]{}
}

// Eq reports element-wise equality.
func (s Size2[T]) Eq(other Size2[T]) bool {
	return s == other
}

// Less reports lexicographic ordering over width then height.
func (s Size2[T]) Less(other Size2[T]) bool {
	return s.Width < other.Width ||
		(s.Width == other.Width && s.Height < other.Height)
}

// Aspect returns the ratio of width to height. A zero height yields
// an infinity, following float64 division.
func (s Size2[T]) Aspect() float64 {
	return float64(s.Width) / float64(s.Height)
}

// Area returns the absolute area covered by the size.
func (s Size2[T]) Area() float64 {
	return math.Abs(float64(s.Width) * float64(s.Height))
}

// Diagonal returns the length of the diagonal.
func (s Size2[T]) Diagonal() float64 {
	return s.Vec().Magnitude()
}

func (s Size2[T]) Add(other Size2[T]) Size2[T] {
	return Size2[T]{s.Width + other.Width, s.Height + other.Height}
}

func (s Size2[T]) Sub(other Size2[T]) Size2[T] {
	return Size2[T]{s.Width - other.Width, s.Height - other.Height}
}

func (s Size2[T]) Mul(other Size2[T]) Size2[T] {
	return Size2[T]{s.Width * other.Width, s.Height * other.Height}
}

// Div divides element-wise, panicking with ErrDivisionByZero when a
// dimension of other is zero.
func (s Size2[T]) Div(other Size2[T]) Size2[T] {
	if other.Width == 0 || other.Height == 0 {
		panic(ErrDivisionByZero)
	}
	return Size2[T]{s.Width / other.Width, s.Height / other.Height}
}

func (s Size2[T]) AddN(scalar T) Size2[T] {
	return Size2[T]{s.Width + scalar, s.Height + scalar}
}

func (s Size2[T]) SubN(scalar T) Size2[T] {
	return Size2[T]{s.Width - scalar, s.Height - scalar}
}

func (s Size2[T]) MulN(scalar T) Size2[T] {
	return Size2[T]{s.Width * scalar, s.Height * scalar}
}

// DivN divides by a scalar, panicking with ErrDivisionByZero when the
// scalar is zero.
func (s Size2[T]) DivN(scalar T) Size2[T] {
	if scalar == 0 {
		panic(ErrDivisionByZero)
	}
	return Size2[T]{s.Width / scalar, s.Height / scalar}
}

func (s Size2[T]) String() string {
	return fmt.Sprintf("( %v, %v )", s.Width, s.Height)
}

// Size3 is a triple of dimensions.
type Size3[T Scalar] struct {
	Width, Height, Depth T
}

// Sz3 returns the size width × height × depth.
func Sz3[T Scalar](width, height, depth T) Size3[T] {
	return Size3[T]{width, height, depth}
}

// Sz3Of converts a size to another scalar kind.
func Sz3Of[T, U Scalar](s Size3[U]) Size3[T] {
	return Size3[T]{
		promote.Convert[T](s.Width),
		promote.Convert[T](s.Height),
		promote.Convert[T](s.Depth),
	}
}

// Vec returns the size reinterpreted as a vector.
func (s Size3[T]) Vec() Vec3[T] {
	return Vec3[T]{s.Width, s.Height, s.Depth}
}

// Empty reports whether all dimensions are zero.
func (s Size3[T]) Empty() bool {
	return s == Size3[T]{}
}

// Eq reports element-wise equality.
func (s Size3[T]) Eq(other Size3[T]) bool {
	return s == other
}

// Less reports lexicographic ordering over the dimensions.
func (s Size3[T]) Less(other Size3[T]) bool {
	if s.Width != other.Width {
		return s.Width < other.Width
	}
	if s.Height != other.Height {
		return s.Height < other.Height
	}
	return s.Depth < other.Depth
}

// Volume returns the absolute volume covered by the size.
func (s Size3[T]) Volume() float64 {
	return math.Abs(float64(s.Width) * float64(s.Height) * float64(s.Depth))
}

// Diagonal returns the length of the space diagonal.
func (s Size3[T]) Diagonal() float64 {
	return s.Vec().Magnitude()
}

func (s Size3[T]) Add(other Size3[T]) Size3[T] {
	return Size3[T]{s.Width + other.Width, s.Height + other.Height, s.Depth + other.Depth}
}

func (s Size3[T]) Sub(other Size3[T]) Size3[T] {
	return Size3[T]{s.Width - other.Width, s.Height - other.Height, s.Depth - other.Depth}
}

func (s Size3[T]) Mul(other Size3[T]) Size3[T] {
	return Size3[T]{s.Width * other.Width, s.Height * other.Height, s.Depth * other.Depth}
}

// Div divides element-wise, panicking with ErrDivisionByZero when a
// component of other is zero.
func (s Size3[T]) Div(other Size3[T]) Size3[T] {
	if other.Width == 0 || other.Height == 0 || other.Depth == 0 {
		panic(ErrDivisionByZero)
	}
	return Size3[T]{s.Width / other.Width, s.Height / other.Height, s.Depth / other.Depth}
}

func (s Size3[T]) AddN(scalar T) Size3[T] {
	return Size3[T]{s.Width + scalar, s.Height + scalar, s.Depth + scalar}
}

func (s Size3[T]) SubN(scalar T) Size3[T] {
	return Size3[T]{s.Width - scalar, s.Height - scalar, s.Depth - scalar}
}

func (s Size3[T]) MulN(scalar T) Size3[T] {
	return Size3[T]{s.Width * scalar, s.Height * scalar, s.Depth * scalar}
}

// DivN divides by a scalar, panicking with ErrDivisionByZero when the
// scalar is zero.
func (s Size3[T]) DivN(scalar T) Size3[T] {
	if scalar == 0 {
		panic(ErrDivisionByZero)
	}
	return Size3[T]{s.Width / scalar, s.Height / scalar, s.Depth / scalar}
}

func (s Size3[T]) String() string {
	return fmt.Sprintf("( %v, %v, %v )", s.Width, s.Height, s.Depth)
}
