package testutil

import "math/rand"

// Sequence returns [0, 1, ..., n-1].
func Sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// DeterministicInts returns n values in [0, limit) from a fixed seed.
func DeterministicInts(seed int64, limit, n int) []int {
	out := make([]int, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Intn(limit)
	}
	return out
}

// DeterministicFloats returns n values in [-amplitude, amplitude) from a fixed seed.
func DeterministicFloats(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Filled returns a slice of length n with every element set to value.
func Filled[T any](value T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}
	return out
}
