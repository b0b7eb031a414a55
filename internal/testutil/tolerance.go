package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vector/vector"
)

// RequireNearlyEqual fails t if got's elements differ from want in length or
// if any pair differs by more than eps (absolute tolerance).
func RequireNearlyEqual(t *testing.T, got *vector.Vector[float64], want []float64, eps float64) {
	t.Helper()
	if got.Len() != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", got.Len(), len(want))
	}
	if i, diff := maxAbsDiffIndex(got.Slice(), want); diff > eps {
		t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got.Index(i), want[i], diff, eps)
	}
}

// maxAbsDiffIndex returns the index and size of the largest absolute
// difference between equally long slices.
func maxAbsDiffIndex(a, b []float64) (int, float64) {
	idx, maxDiff := 0, 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			idx, maxDiff = i, d
		}
	}
	return idx, maxDiff
}
