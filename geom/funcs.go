package geom

import "github.com/takram-design-engineering/takram-math/promote"

// Lerp linearly interpolates between start and stop. The factor is not
// clamped, so values outside [0, 1] extrapolate.
func Lerp[T promote.Float](start, stop, factor T) T {
	return start + (stop-start)*factor
}

// Norm is the inverse of Lerp: it maps value to the factor placing it
// between start and stop.
func Norm[T promote.Float](value, start, stop T) T {
	return (value - start) / (stop - start)
}

// Map remaps value from the range [fromStart, fromStop] to the range
// [toStart, toStop].
func Map[T promote.Float](value, fromStart, fromStop, toStart, toStop T) T {
	return Lerp(toStart, toStop, Norm(value, fromStart, fromStop))
}

// Clamp limits value to the closed interval [low, high].
func Clamp[T Scalar](value, low, high T) T {
	return min(max(value, low), high)
}
