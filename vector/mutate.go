package vector

import "fmt"

// Clear sets the length to 0. The capacity is kept.
func (v *Vector[T]) Clear() {
	clear(v.live())
	v.size = 0
}

// PopBack removes the last element. It is a no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	var zero T
	v.buf.Set(v.size-1, zero)
	v.size--
}

// Insert places value at position pos, shifting later elements right, and
// returns the position of the inserted element. pos must be in [0, Len];
// pos == Len is equivalent to PushBack.
func (v *Vector[T]) Insert(pos int, value T) int {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0, %d]", pos, v.size))
	}
	if pos == v.size {
		v.PushBack(value)
		return v.size - 1
	}

	if v.size < v.Cap() {
		s := v.buf.Slots()
		copy(s[pos+1:v.size+1], s[pos:v.size])
		s[pos] = value
		v.size++
		return pos
	}

	// Full: build the new layout directly instead of Reserve followed by a shift.
	next := v.alloc(nextCapacity(v.Cap()))
	dst, src := next.Slots(), v.live()
	copy(dst, src[:pos])
	copy(dst[pos+1:], src[pos:])
	dst[pos] = value
	v.replace(next, GrowInsert)
	v.size++
	return pos
}

// Erase removes the element at position pos, shifting later elements left,
// and returns pos, which now holds the element that followed the erased one
// (or equals Len if the last element was erased). pos must be in [0, Len).
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("vector: erase position %d out of range [0, %d)", pos, v.size))
	}
	s := v.live()
	copy(s[pos:], s[pos+1:])
	var zero T
	s[v.size-1] = zero
	v.size--
	return pos
}
