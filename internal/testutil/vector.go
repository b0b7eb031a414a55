package testutil

import (
	"slices"
	"testing"

	"github.com/cwbudde/algo-vector/vector"
)

// RequireContents fails t if v's live elements differ from want.
func RequireContents[T comparable](t *testing.T, v *vector.Vector[T], want []T) {
	t.Helper()
	got := v.Slice()
	if len(got) != len(want) {
		t.Fatalf("Len() = %d, want %d (got %v, want %v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v (got %v)", i, got[i], want[i], got)
		}
	}
}

// RequireInvariants fails t if Len exceeds Cap or if any slot in [Len, Cap)
// holds something other than the zero value.
func RequireInvariants[T comparable](t *testing.T, v *vector.Vector[T]) {
	t.Helper()
	if v.Len() > v.Cap() {
		t.Fatalf("Len() = %d exceeds Cap() = %d", v.Len(), v.Cap())
	}
	var zero T
	spare := v.Slice()[v.Len():v.Cap()]
	if i := slices.IndexFunc(spare, func(x T) bool { return x != zero }); i >= 0 {
		t.Fatalf("vacated slot %d holds %v, want zero value", v.Len()+i, spare[i])
	}
}
