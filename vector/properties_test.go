package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-vector/internal/testutil"
	"github.com/cwbudde/algo-vector/vector"
)

func reallocationBound(n int) int {
	if n == 0 {
		return 0
	}
	return max(1, int(math.Ceil(math.Log2(float64(n)/10)))+1)
}

func TestPropertyAmortizedGrowth(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 20, 21, 100, 1000, 4097} {
		reallocs := 0
		v := vector.New(vector.WithGrowthHook[int](func(vector.GrowthEvent) { reallocs++ }))
		for i := range n {
			v.PushBack(i)
			require.LessOrEqual(t, v.Len(), v.Cap())
		}
		require.Equal(t, n, v.Len())
		require.GreaterOrEqual(t, v.Cap(), n)
		require.LessOrEqual(t, reallocs, reallocationBound(n), "n=%d", n)
	}
}

func TestPropertySizeNeverExceedsCapacity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v := vector.New[int]()
	for step := range 2000 {
		switch op := rng.Intn(7); op {
		case 0, 1:
			v.PushBack(step)
		case 2:
			v.Insert(rng.Intn(v.Len()+1), step)
		case 3:
			if v.Len() > 0 {
				v.Erase(rng.Intn(v.Len()))
			}
		case 4:
			v.PopBack()
		case 5:
			v.Resize(rng.Intn(64))
		case 6:
			v.Reserve(rng.Intn(128))
		}
		require.LessOrEqual(t, v.Len(), v.Cap(), "step %d", step)
	}
	testutil.RequireInvariants(t, v)
}

func TestPropertyInsertEraseRoundTrip(t *testing.T) {
	base := testutil.DeterministicInts(11, 1000, 37)
	for p := 0; p <= len(base); p++ {
		v := vector.Of(base...)
		orig := v.Clone()

		pos := v.Insert(p, -1)
		require.Equal(t, p, pos)
		require.Equal(t, -1, v.Index(pos))
		v.Erase(pos)

		require.True(t, vector.Equal(orig, v), "position %d", p)
		require.GreaterOrEqual(t, v.Cap(), orig.Cap())
	}
}

func TestPropertyResizeShrinkThenGrow(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for m := n + 1; m <= 12; m++ {
			v := vector.Of(testutil.Filled(7, 8)...)
			v.Resize(n)
			v.Resize(m)
			for i := n; i < m; i++ {
				require.Zero(t, v.Index(i), "n=%d m=%d slot %d", n, m, i)
			}
			for i := 0; i < n; i++ {
				require.Equal(t, 7, v.Index(i))
			}
		}
	}
}

func TestPropertyCopyIndependence(t *testing.T) {
	a := vector.Of(testutil.DeterministicInts(3, 50, 20)...)
	want := append([]int(nil), a.Slice()...)

	b := a.Clone()
	require.True(t, vector.Equal(a, b))

	b.PushBack(1)
	b.Insert(0, 2)
	b.Erase(5)
	b.Resize(3)
	b.SetIndex(0, 99)
	require.Equal(t, want, a.Slice())
}

func TestPropertyMoveEmptiesSource(t *testing.T) {
	want := testutil.DeterministicInts(5, 100, 15)

	a := vector.Of(want...)
	b := vector.Take(a)
	require.Zero(t, a.Len())
	require.Equal(t, want, b.Slice())

	c := vector.Of(1)
	c.MoveFrom(b)
	require.Zero(t, b.Len())
	require.Equal(t, want, c.Slice())
}

func TestScenarioPushInsertEraseResize(t *testing.T) {
	v := vector.New[int]()
	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)
	require.Equal(t, 3, v.Len())
	require.Equal(t, 10, v.Cap())
	require.Equal(t, []int{1, 2, 3}, v.Slice())

	pos := v.Insert(1, 99)
	require.Equal(t, 1, pos)
	require.Equal(t, []int{1, 99, 2, 3}, v.Slice())

	v.Erase(1)
	require.Equal(t, []int{1, 2, 3}, v.Slice())

	v.Resize(5)
	require.Equal(t, []int{1, 2, 3, 0, 0}, v.Slice())
	require.Equal(t, 10, v.Cap())
}
