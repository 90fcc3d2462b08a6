package geom

import (
	"fmt"
	"math"

	"github.com/takram-design-engineering/takram-math/promote"
)

// Matrix2 is a 3×3 homogeneous transform matrix for the plane, stored
// column-major: the element at row r, column c is M[c*3+r].
type Matrix2[T Scalar] struct {
	M [9]T
}

// Identity2 returns the identity transform.
func Identity2[T Scalar]() Matrix2[T] {
	var m Matrix2[T]
	m.M[0], m.M[4], m.M[8] = 1, 1, 1
	return m
}

// Translation2 returns the transform moving points by offset.
func Translation2[T Scalar](offset Vec2[T]) Matrix2[T] {
	m := Identity2[T]()
	m.M[6], m.M[7] = offset.X, offset.Y
	return m
}

// Scaling2 returns the transform scaling points element-wise.
func Scaling2[T Scalar](scale Vec2[T]) Matrix2[T] {
	var m Matrix2[T]
	m.M[0], m.M[4], m.M[8] = scale.X, scale.Y, 1
	return m
}

// Rotation2 returns the transform rotating points counterclockwise by
// angle, in radians.
func Rotation2(angle float64) Matrix2[float64] {
	sin, cos := math.Sincos(angle)
	m := Identity2[float64]()
	m.M[0], m.M[1] = cos, sin
	m.M[3], m.M[4] = -sin, cos
	return m
}

// Matrix2Of converts a matrix to another scalar kind.
func Matrix2Of[T, U Scalar](m Matrix2[U]) Matrix2[T] {
	var out Matrix2[T]
	for i, v := range m.M {
		out.M[i] = promote.Convert[T](v)
	}
	return out
}

// At returns the element at row and col, panicking when either index
// is not in [0, 2].
func (m Matrix2[T]) At(row, col int) T {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		panic(fmt.Sprintf("geom: matrix index (%d, %d) out of range", row, col))
	}
	return m.M[col*3+row]
}

// Col returns the column at index as a vector.
func (m Matrix2[T]) Col(index int) Vec3[T] {
	return Vec3[T]{m.At(0, index), m.At(1, index), m.At(2, index)}
}

// Eq reports element-wise equality.
func (m Matrix2[T]) Eq(other Matrix2[T]) bool {
	return m == other
}

func (m Matrix2[T]) Add(other Matrix2[T]) Matrix2[T] {
	var out Matrix2[T]
	for i := range m.M {
		out.M[i] = m.M[i] + other.M[i]
	}
	return out
}

func (m Matrix2[T]) Sub(other Matrix2[T]) Matrix2[T] {
	var out Matrix2[T]
	for i := range m.M {
		out.M[i] = m.M[i] - other.M[i]
	}
	return out
}

func (m Matrix2[T]) MulN(scalar T) Matrix2[T] {
	var out Matrix2[T]
	for i := range m.M {
		out.M[i] = m.M[i] * scalar
	}
	return out
}

// Mul returns the matrix product m × other; the resulting transform
// applies other first, then m.
func (m Matrix2[T]) Mul(other Matrix2[T]) Matrix2[T] {
	var out Matrix2[T]
	for c := range 3 {
		for r := range 3 {
			var sum T
			for k := range 3 {
				sum += m.M[k*3+r] * other.M[c*3+k]
			}
			out.M[c*3+r] = sum
		}
	}
	return out
}

// Transform applies the homogeneous transform to a point.
func (m Matrix2[T]) Transform(v Vec2[T]) Vec2[float64] {
	p := Matrix2Of[float64](m)
	x, y := float64(v.X), float64(v.Y)
	out := Vec2[float64]{
		p.M[0]*x + p.M[3]*y + p.M[6],
		p.M[1]*x + p.M[4]*y + p.M[7],
	}
	if w := p.M[2]*x + p.M[5]*y + p.M[8]; w != 0 && w != 1 {
		out = out.DivN(w)
	}
	return out
}

// Transpose returns the matrix flipped over its diagonal.
func (m Matrix2[T]) Transpose() Matrix2[T] {
	var out Matrix2[T]
	for c := range 3 {
		for r := range 3 {
			out.M[r*3+c] = m.M[c*3+r]
		}
	}
	return out
}

// Determinant returns the determinant of the matrix.
func (m Matrix2[T]) Determinant() float64 {
	at := func(r, c int) float64 { return float64(m.M[c*3+r]) }
	return at(0, 0)*(at(1, 1)*at(2, 2)-at(1, 2)*at(2, 1)) -
		at(0, 1)*(at(1, 0)*at(2, 2)-at(1, 2)*at(2, 0)) +
		at(0, 2)*(at(1, 0)*at(2, 1)-at(1, 1)*at(2, 0))
}

func (m Matrix2[T]) String() string {
	return fmt.Sprintf("( %v, %v, %v )", m.Col(0), m.Col(1), m.Col(2))
}

// Matrix3 is a 4×4 homogeneous transform matrix for space, stored
// column-major: the element at row r, column c is M[c*4+r].
type Matrix3[T Scalar] struct {
	M [16]T
}

// Identity3 returns the identity transform.
func Identity3[T Scalar]() Matrix3[T] {
	var m Matrix3[T]
	m.M[0], m.M[5], m.M[10], m.M[15] = 1, 1, 1, 1
	return m
}

// Translation3 returns the transform moving points by offset.
func Translation3[T Scalar](offset Vec3[T]) Matrix3[T] {
	m := Identity3[T]()
	m.M[12], m.M[13], m.M[14] = offset.X, offset.Y, offset.Z
	return m
}

// Scaling3 returns the transform scaling points element-wise.
func Scaling3[T Scalar](scale Vec3[T]) Matrix3[T] {
	var m Matrix3[T]
	m.M[0], m.M[5], m.M[10], m.M[15] = scale.X, scale.Y, scale.Z, 1
	return m
}

// RotationX returns the transform rotating points about the x axis by
// angle, in radians.
func RotationX(angle float64) Matrix3[float64] {
	sin, cos := math.Sincos(angle)
	m := Identity3[float64]()
	m.M[5], m.M[6] = cos, sin
	m.M[9], m.M[10] = -sin, cos
	return m
}

// RotationY returns the transform rotating points about the y axis by
// angle, in radians.
func RotationY(angle float64) Matrix3[float64] {
	sin, cos := math.Sincos(angle)
	m := Identity3[float64]()
	m.M[0], m.M[2] = cos, -sin
	m.M[8], m.M[10] = sin, cos
	return m
}

// RotationZ returns the transform rotating points about the z axis by
// angle, in radians.
func RotationZ(angle float64) Matrix3[float64] {
	sin, cos := math.Sincos(angle)
	m := Identity3[float64]()
	m.M[0], m.M[1] = cos, sin
	m.M[4], m.M[5] = -sin, cos
	return m
}

// Matrix3Of converts a matrix to another scalar kind.
func Matrix3Of[T, U Scalar](m Matrix3[U]) Matrix3[T] {
	var out Matrix3[T]
	for i, v := range m.M {
		out.M[i] = promote.Convert[T](v)
	}
	return out
}

// At returns the element at row and col, panicking when either index
// is not in [0, 3].
func (m Matrix3[T]) At(row, col int) T {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		panic(fmt.Sprintf("geom: matrix index (%d, %d) out of range", row, col))
	}
	return m.M[col*4+row]
}

// Col returns the column at index as a vector.
func (m Matrix3[T]) Col(index int) Vec4[T] {
	return Vec4[T]{m.At(0, index), m.At(1, index), m.At(2, index), m.At(3, index)}
}

// Eq reports element-wise equality.
func (m Matrix3[T]) Eq(other Matrix3[T]) bool {
	return m == other
}

func (m Matrix3[T]) Add(other Matrix3[T]) Matrix3[T] {
	var out Matrix3[T]
	for i := range m.M {
		out.M[i] = m.M[i] + other.M[i]
	}
	return out
}

func (m Matrix3[T]) Sub(other Matrix3[T]) Matrix3[T] {
	var out Matrix3[T]
	for i := range m.M {
		out.M[i] = m.M[i] - other.M[i]
	}
	return out
}

func (m Matrix3[T]) MulN(scalar T) Matrix3[T] {
	var out Matrix3[T]
	for i := range m.M {
		out.M[i] = m.M[i] * scalar
	}
	return out
}

// Mul returns the matrix product m × other; the resulting transform
// applies other first, then m.
func (m Matrix3[T]) Mul(other Matrix3[T]) Matrix3[T] {
	var out Matrix3[T]
	for c := range 4 {
		for r := range 4 {
			var sum T
			for k := range 4 {
				sum += m.M[k*4+r] * other.M[c*4+k]
			}
			out.M[c*4+r] = sum
		}
	}
	return out
}

// Transform applies the homogeneous transform to a point, performing
// the perspective division when the resulting w component is neither
// zero nor one.
func (m Matrix3[T]) Transform(v Vec3[T]) Vec3[float64] {
	p := Matrix3Of[float64](m)
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	out := Vec3[float64]{
		p.M[0]*x + p.M[4]*y + p.M[8]*z + p.M[12],
		p.M[1]*x + p.M[5]*y + p.M[9]*z + p.M[13],
		p.M[2]*x + p.M[6]*y + p.M[10]*z + p.M[14],
	}
	if w := p.M[3]*x + p.M[7]*y + p.M[11]*z + p.M[15]; w != 0 && w != 1 {
		out = out.DivN(w)
	}
	return out
}

// Transpose returns the matrix flipped over its diagonal.
func (m Matrix3[T]) Transpose() Matrix3[T] {
	var out Matrix3[T]
	for c := range 4 {
		for r := range 4 {
			out.M[r*4+c] = m.M[c*4+r]
		}
	}
	return out
}

// Determinant returns the determinant of the matrix, by cofactor
// expansion along the first column.
func (m Matrix3[T]) Determinant() float64 {
	at := func(r, c int) float64 { return float64(m.M[c*4+r]) }
	minor := func(row int) float64 {
		var v [3][3]float64
		i := 0
		for r := range 4 {
			if r == row {
				continue
			}
			for c := 1; c < 4; c++ {
				v[i][c-1] = at(r, c)
			}
			i++
		}
		return v[0][0]*(v[1][1]*v[2][2]-v[1][2]*v[2][1]) -
			v[0][1]*(v[1][0]*v[2][2]-v[1][2]*v[2][0]) +
			v[0][2]*(v[1][0]*v[2][1]-v[1][1]*v[2][0])
	}
	var det float64
	sign := 1.0
	for r := range 4 {
		det += sign * at(r, 0) * minor(r)
		sign = -sign
	}
	return det
}

func (m Matrix3[T]) String() string {
	return fmt.Sprintf("( %v, %v, %v, %v )", m.Col(0), m.Col(1), m.Col(2), m.Col(3))
}
