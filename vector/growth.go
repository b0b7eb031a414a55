package vector

import "github.com/cwbudde/algo-vector/vector/rawbuf"

// initialCapacity is the capacity reserved by the first push onto a vector
// that owns no block.
const initialCapacity = 10

// nextCapacity is the growth policy shared by PushBack and Insert.
func nextCapacity(old int) int {
	if old == 0 {
		return initialCapacity
	}
	return old * 2
}

// Reserve grows the capacity to exactly n, keeping the elements in order.
// It is a no-op if n <= Cap.
func (v *Vector[T]) Reserve(n int) {
	v.reserve(n, GrowReserve)
}

// Resize sets the length to n. Elements past n are dropped; new elements are
// zero values. Growing past the capacity reserves exactly n slots.
// Negative n is treated as 0.
func (v *Vector[T]) Resize(n int) {
	n = max(n, 0)
	if n <= v.size {
		clear(v.buf.Slots()[n:v.size])
		v.size = n
		return
	}
	if n > v.Cap() {
		v.reserve(n, GrowResize)
	}
	clear(v.buf.Slots()[v.size:n])
	v.size = n
}

// PushBack appends value, doubling the capacity when the vector is full.
func (v *Vector[T]) PushBack(value T) {
	if v.size == v.Cap() {
		v.reserve(nextCapacity(v.Cap()), GrowPushBack)
	}
	v.buf.Set(v.size, value)
	v.size++
}

// Append pushes values in order.
func (v *Vector[T]) Append(values ...T) {
	for _, value := range values {
		v.PushBack(value)
	}
}

func (v *Vector[T]) reserve(n int, op GrowthOp) {
	if n <= v.Cap() {
		return
	}
	next := v.alloc(n)
	copy(next.Slots(), v.live())
	v.replace(next, op)
}

// replace swaps next in as the owned block, retires the old one and reports
// the reallocation. next must already hold the relocated elements.
func (v *Vector[T]) replace(next *rawbuf.Buffer[T], op GrowthOp) {
	oldCap := v.Cap()
	v.adopt(next)
	if v.cfg.hook != nil {
		v.cfg.hook(GrowthEvent{
			Op:          op,
			OldCapacity: oldCap,
			NewCapacity: v.Cap(),
			Size:        v.size,
		})
	}
}

// adopt takes ownership of next's block and retires the block v held.
func (v *Vector[T]) adopt(next *rawbuf.Buffer[T]) {
	v.buf.Swap(next)
	v.retire(next)
}

func (v *Vector[T]) alloc(n int) *rawbuf.Buffer[T] {
	if v.cfg.pool != nil {
		return v.cfg.pool.Get(n)
	}
	return rawbuf.New[T](n)
}

func (v *Vector[T]) retire(b *rawbuf.Buffer[T]) {
	if v.cfg.pool != nil {
		v.cfg.pool.Put(b)
		return
	}
	b.Free()
}
