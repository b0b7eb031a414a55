// Package numeric provides float64 operations over vector.Vector[float64].
//
// Element-wise kernels (Sum, Dot, Scale, Add, Mul, MaxAbs) dispatch to the
// SIMD implementations in algo-vecmath, selected once per process from the
// detected CPU features. Convolve computes a full linear convolution through
// algo-fft; ConvolveDirect is the O(N*M) time-domain reference.
//
// All functions operate on the live elements only; spare capacity is never
// read or written.
package numeric
