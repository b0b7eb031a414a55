package rawbuf

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer exclusively owns a fixed-length block of T slots.
// The zero value is an empty buffer with no block.
//
// A Buffer must not be copied; ownership moves only through Release and Swap.
type Buffer[T any] struct {
	_     noCopy
	block []T
}

// New returns a Buffer owning n zero-valued slots.
// For n <= 0 the buffer is empty and nothing is allocated.
func New[T any](n int) *Buffer[T] {
	b := &Buffer[T]{}
	if n > 0 {
		b.block = make([]T, n)
	}
	return b
}

// Len returns the number of slots in the owned block.
func (b *Buffer[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.block)
}

// Slots returns the owned block. Writes are visible through the Buffer.
func (b *Buffer[T]) Slots() []T {
	return b.block
}

// At returns the slot at offset i. Only the block length is checked.
func (b *Buffer[T]) At(i int) T {
	return b.block[i]
}

// Set stores v at offset i.
func (b *Buffer[T]) Set(i int, v T) {
	b.block[i] = v
}

// Ptr returns a pointer to the slot at offset i.
func (b *Buffer[T]) Ptr(i int) *T {
	return &b.block[i]
}

// Release hands the block to the caller and leaves the buffer empty.
func (b *Buffer[T]) Release() []T {
	block := b.block
	b.block = nil
	return block
}

// Swap exchanges the blocks owned by b and other. No elements are copied.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.block, other.block = other.block, b.block
}

// Free drops the owned block. Calling Free on an empty or nil buffer is a no-op.
func (b *Buffer[T]) Free() {
	if b == nil {
		return
	}
	b.block = nil
}

// reset makes b own exactly n zeroed slots, reusing the backing array when
// its capacity allows.
func (b *Buffer[T]) reset(n int) {
	if n <= 0 {
		b.block = b.block[:0]
		return
	}
	if n <= cap(b.block) {
		b.block = b.block[:n]
		clear(b.block)
		return
	}
	b.block = make([]T, n)
}
