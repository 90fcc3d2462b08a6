// Package random wraps a pseudo-random number engine behind seeding,
// reseeding and generic distribution helpers for the scalar kinds used
// by the geometry types.
//
// An Engine is cheap to create; callers that need reproducible results
// should create their own with New. Shared returns a lazily created
// process-wide engine for code that does not care about reproducibility.
//
// Engines are not safe for concurrent sampling. The process-wide engine
// is created exactly once even under concurrent first use, but callers
// sampling from the same engine on multiple goroutines must provide
// their own synchronization.
package random

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"github.com/takram-design-engineering/takram-math/promote"
)

// Engine is a seedable pseudo-random number generator. The zero value
// is not usable; create one with New or NewRandomized.
type Engine struct {
	src *rand.PCG
	rng *rand.Rand
}

// New returns an engine deterministically seeded with seed.
func New(seed uint64) *Engine {
	src := rand.NewPCG(seed, seed)
	return &Engine{src: src, rng: rand.New(src)}
}

// NewRandomized returns an engine seeded from the operating system's
// entropy source.
func NewRandomized() *Engine {
	e := New(0)
	e.Randomize()
	return e
}

// Seed deterministically reseeds the engine.
func (e *Engine) Seed(seed uint64) {
	e.src.Seed(seed, seed)
}

// Randomize reseeds the engine from the operating system's entropy
// source.
func (e *Engine) Randomize() {
	e.src.Seed(entropy(), entropy())
}

// Next returns the engine's next raw output.
func (e *Engine) Next() uint64 {
	return e.rng.Uint64()
}

func entropy() uint64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		panic("random: reading entropy: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

var shared = sync.OnceValue(NewRandomized)

// Shared returns the process-wide engine, creating it on first use.
// Creation is safe for concurrent callers; sampling is not.
func Shared() *Engine {
	return shared()
}

// Uniform returns a uniform sample over the full range of T when T is
// an integer kind, and over [0, 1) when T is a floating kind.
func Uniform[T promote.Scalar](e *Engine) T {
	if promote.KindOf[T]() == promote.KindInt {
		return T(e.Next())
	}
	return T(e.rng.Float64())
}

// UniformMax returns a uniform sample over [0, max] for integer kinds
// and [0, max) for floating kinds.
func UniformMax[T promote.Scalar](e *Engine, max T) T {
	var zero T
	return UniformIn(e, zero, max)
}

// UniformIn returns a uniform sample over [min, max] for integer kinds
// and [min, max) for floating kinds. The bounds may be given in either
// order.
func UniformIn[T promote.Scalar](e *Engine, min, max T) T {
	if max < min {
		min, max = max, min
	}
	if promote.KindOf[T]() == promote.KindInt {
		return uniformInt(e, min, max)
	}
	return T(float64(min) + (float64(max)-float64(min))*e.rng.Float64())
}

func uniformInt[T promote.Scalar](e *Engine, min, max T) T {
	// Two's complement makes the modular delta correct for signed
	// types as well.
	delta := uint64(max) - uint64(min)
	if delta == ^uint64(0) {
		return T(e.Next())
	}
	return T(uint64(min) + e.rng.Uint64N(delta+1))
}

// Gaussian returns a normal-distribution sample of mean 0 and standard
// deviation 1, computed in the promoted floating kind of T.
func Gaussian[T promote.Scalar](e *Engine) T {
	return T(e.rng.NormFloat64())
}

// GaussianWith returns a normal-distribution sample of the given mean
// and standard deviation, computed in the promoted floating kind of T.
func GaussianWith[T promote.Scalar](e *Engine, mean, stddev float64) T {
	return T(mean + stddev*e.rng.NormFloat64())
}
