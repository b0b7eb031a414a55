package vector

import "github.com/cwbudde/algo-vector/vector/rawbuf"

// Clone returns a deep copy of the live elements. The copy's capacity equals
// v.Len; spare capacity is not carried over. Options are inherited.
func (v *Vector[T]) Clone() *Vector[T] {
	cfg := v.cfg
	cfg.capacity = 0
	c := newVector(cfg, v.size)
	copy(c.buf.Slots(), v.live())
	c.size = v.size
	return c
}

// Take moves src's storage into a new vector and leaves src empty with no
// block. Options are inherited from src.
func Take[T any](src *Vector[T]) *Vector[T] {
	v := &Vector[T]{cfg: src.cfg}
	v.buf.Swap(&src.buf)
	v.size, src.size = src.size, 0
	return v
}

// Assign replaces v's contents with a copy of src's live elements. The old
// block is released and the new capacity equals src.Len.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	v.release()
	if src.size > 0 {
		next := v.alloc(src.size)
		copy(next.Slots(), src.live())
		v.adopt(next)
	}
	v.size = src.size
}

// MoveFrom releases v's block and takes over src's block, length and
// capacity. src is left empty with no block.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.release()
	v.buf.Swap(&src.buf)
	v.size, src.size = src.size, 0
}

// Swap exchanges the contents of v and other in constant time.
// Options stay with their vectors.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
}

func (v *Vector[T]) release() {
	old := &rawbuf.Buffer[T]{}
	old.Swap(&v.buf)
	v.retire(old)
	v.size = 0
}
