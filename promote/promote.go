// Package promote implements the scalar promotion rules shared by the
// geometry types in this module.
//
// Mixed-kind arithmetic follows a single convention: any integer kind
// promotes to float64, because geometric results are fractional, and a
// pair of floating kinds promotes to the wider of the two. Go has no
// type-level functions, so the rules are exposed as an algebra over
// [Kind] values together with generic conversion helpers; computations
// on promoted values are carried out in float64, the widest kind.
package promote

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Float is a constraint for any floating-point type.
type Float interface {
	constraints.Float
}

// Scalar is a constraint for the types that the geometry types and
// functions in this module can handle.
type Scalar interface {
	Integer | Float
}

// Kind identifies the promotion class of a scalar type. Every integer
// type maps to KindInt regardless of width or signedness; the float
// kinds are kept distinct because they promote differently.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat32
	KindFloat64
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return "invalid"
	}
}

// KindOf reports the promotion kind of T.
func KindOf[T Scalar]() Kind {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return KindInt
	default:
		return KindInvalid
	}
}

// Promote1 reports the kind holding the result of an arithmetic
// operation over a single kind. Integer kinds promote to float64;
// floating kinds are already promoted.
func Promote1(k Kind) Kind {
	if k == KindInt {
		return KindFloat64
	}
	return k
}

// Promote reports the kind holding the result of an arithmetic
// operation mixing values of kinds a and b. It is commutative.
func Promote(a, b Kind) Kind {
	if a == KindInvalid || b == KindInvalid {
		return KindInvalid
	}
	a, b = Promote1(a), Promote1(b)
	if a == KindFloat64 || b == KindFloat64 {
		return KindFloat64
	}
	return KindFloat32
}

// Of reports the promoted kind of the type pair T, U.
func Of[T, U Scalar]() Kind {
	return Promote(KindOf[T](), KindOf[U]())
}

// Convert converts a scalar value between kinds. The conversion
// truncates when To cannot represent v exactly, like a Go conversion.
func Convert[To, From Scalar](v From) To {
	return To(v)
}

// Promoted converts v to float64, the carrier of every promoted
// computation in this module.
func Promoted[T Scalar](v T) float64 {
	return float64(v)
}
