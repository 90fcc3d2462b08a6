package geom

import "math"

// SolveLinear returns the real root of a*x + b = 0, or nil when the
// equation is degenerate.
func SolveLinear(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

// SolveQuadratic returns the real roots of a*x² + b*x + c = 0 in
// ascending order. A zero leading coefficient degrades to the linear
// case, and a negative discriminant yields nil.
func SolveQuadratic(a, b, c float64) []float64 {
	if a == 0 {
		return SolveLinear(b, c)
	}
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-b / (2 * a)}
	}
	sqrt := math.Sqrt(disc)
	x1 := (-b - sqrt) / (2 * a)
	x2 := (-b + sqrt) / (2 * a)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	return []float64{x1, x2}
}
