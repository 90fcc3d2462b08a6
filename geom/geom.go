// Package geom provides generic value types for 2-, 3- and
// 4-dimensional geometry: vectors, lines, rectangles, circles,
// triangles, planes, spheres, polygons, sizes and homogeneous
// transform matrices.
//
// It is patterned after image.Rectangle and image.Point, but vastly
// extends their capabilities. Every type is a plain struct copied by
// value with no identity; operations never mutate their receiver
// unless they take a pointer receiver, and operations whose result is
// inherently fractional (magnitudes, interpolation, centroids) are
// computed in float64, the promoted kind of every scalar type (see the
// promote package).
package geom

import (
	"errors"

	"github.com/takram-design-engineering/takram-math/promote"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar = promote.Scalar

var (
	// ErrDivisionByZero is the panic value of element-wise division
	// by a zero component.
	ErrDivisionByZero = errors.New("geom: division by zero")

	// ErrZeroNormal indicates a plane constructed from a zero normal
	// vector.
	ErrZeroNormal = errors.New("geom: zero normal")

	// ErrCollinear indicates three points that do not determine a
	// circle or plane.
	ErrCollinear = errors.New("geom: collinear points")
)

// Axis identifies a component of a vector.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisW:
		return "w"
	default:
		return "invalid"
	}
}

// Side classifies a point relative to a directed line.
type Side int

const (
	SideCoincident Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideCoincident:
		return "coincident"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "invalid"
	}
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)
