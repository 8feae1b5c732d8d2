package underz

import "math/rand"

// RandomSource yields uniformly distributed floats in [0, 1).
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultRandom is the source Shuffle uses: the math/rand top-level
// generator.
var DefaultRandom RandomSource = globalSource{}
