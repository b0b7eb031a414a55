package rawbuf

import "testing"

func TestNewZeroFilled(t *testing.T) {
	b := New[int](8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i, v := range b.Slots() {
		if v != 0 {
			t.Fatalf("Slots()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewNonPositiveLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		b := New[string](n)
		if b.Len() != 0 {
			t.Fatalf("New(%d).Len() = %d, want 0", n, b.Len())
		}
		if b.Slots() != nil {
			t.Fatalf("New(%d) allocated a block", n)
		}
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var b Buffer[int]
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
	b.Free()
}

func TestNilBufferLen(t *testing.T) {
	var b *Buffer[int]
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for nil buffer", b.Len())
	}
	b.Free() // must not panic
}

func TestSetAtPtr(t *testing.T) {
	b := New[int](3)
	b.Set(1, 42)
	if b.At(1) != 42 {
		t.Fatalf("At(1) = %d, want 42", b.At(1))
	}
	*b.Ptr(2) = 7
	if b.Slots()[2] != 7 {
		t.Fatalf("Slots()[2] = %d, want 7", b.Slots()[2])
	}
}

func TestReleaseTransfersOwnership(t *testing.T) {
	b := New[int](4)
	b.Set(0, 9)
	block := b.Release()
	if len(block) != 4 || block[0] != 9 {
		t.Fatalf("Release() = %v, want 4 slots starting with 9", block)
	}
	if b.Len() != 0 {
		t.Fatalf("Len() = %d after Release, want 0", b.Len())
	}
}

func TestSwapExchangesBlocks(t *testing.T) {
	a := New[int](2)
	c := New[int](5)
	a.Set(0, 1)
	c.Set(0, 2)
	blockA := a.Slots()

	a.Swap(c)
	if a.Len() != 5 || c.Len() != 2 {
		t.Fatalf("after Swap: a.Len()=%d c.Len()=%d, want 5 and 2", a.Len(), c.Len())
	}
	if a.At(0) != 2 || c.At(0) != 1 {
		t.Fatal("Swap did not exchange contents")
	}
	// Same backing array, no copy.
	if &c.Slots()[0] != &blockA[0] {
		t.Fatal("Swap copied elements instead of exchanging blocks")
	}
}

func TestFreeDropsBlock(t *testing.T) {
	b := New[int](3)
	b.Free()
	if b.Len() != 0 {
		t.Fatalf("Len() = %d after Free, want 0", b.Len())
	}
}

func TestResetReusesCapacity(t *testing.T) {
	b := New[int](8)
	for i := range b.Slots() {
		b.Set(i, i+1)
	}
	orig := &b.Slots()[0]

	b.reset(4)
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	if &b.Slots()[0] != orig {
		t.Fatal("reset did not reuse the backing array")
	}
	for i, v := range b.Slots() {
		if v != 0 {
			t.Fatalf("Slots()[%d] = %d after reset, want 0", i, v)
		}
	}

	b.reset(16)
	if b.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", b.Len())
	}
}
