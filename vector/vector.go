package vector

import (
	"fmt"

	"github.com/cwbudde/algo-vector/vector/rawbuf"
)

// Vector is a growable sequence of T stored in a single owned block.
// The zero value is an empty vector ready to use.
type Vector[T any] struct {
	buf  rawbuf.Buffer[T]
	size int
	cfg  config[T]
}

// New returns an empty vector. Nothing is allocated unless WithCapacity is given.
func New[T any](opts ...Option[T]) *Vector[T] {
	return newVector(applyOptions(opts), 0)
}

// NewSize returns a vector holding n zero values, with capacity n (or the
// WithCapacity value, if larger). Negative n is treated as 0.
func NewSize[T any](n int, opts ...Option[T]) *Vector[T] {
	n = max(n, 0)
	v := newVector(applyOptions(opts), n)
	v.size = n
	return v
}

// NewFilled returns a vector holding n copies of value. Capacity follows NewSize.
func NewFilled[T any](n int, value T, opts ...Option[T]) *Vector[T] {
	v := NewSize(n, opts...)
	s := v.live()
	for i := range s {
		s[i] = value
	}
	return v
}

// Of returns a vector holding a copy of values, with capacity len(values).
func Of[T any](values ...T) *Vector[T] {
	v := newVector(config[T]{}, len(values))
	copy(v.buf.Slots(), values)
	v.size = len(values)
	return v
}

// NewReserved returns an empty vector with room for hint.Capacity elements.
func NewReserved[T any](hint ReserveHint, opts ...Option[T]) *Vector[T] {
	return newVector(applyOptions(opts), hint.Capacity)
}

func newVector[T any](cfg config[T], capacity int) *Vector[T] {
	v := &Vector[T]{cfg: cfg}
	if n := max(capacity, cfg.capacity); n > 0 {
		v.adopt(v.alloc(n))
	}
	return v
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.buf.Len()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// At returns the element at index i, or an error wrapping ErrOutOfRange if
// i is not in [0, Len).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, v.size)
	}
	return v.buf.At(i), nil
}

// Set replaces the element at index i, or returns an error wrapping
// ErrOutOfRange if i is not in [0, Len).
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, v.size)
	}
	v.buf.Set(i, value)
	return nil
}

// Index returns the element at index i without checking it against Len.
// The caller must guarantee 0 <= i < Len.
func (v *Vector[T]) Index(i int) T {
	v.assertIndex(i)
	return v.buf.At(i)
}

// Ref returns a pointer to the element at index i without checking it
// against Len. The pointer is invalidated by growth, Insert and Erase.
func (v *Vector[T]) Ref(i int) *T {
	v.assertIndex(i)
	return v.buf.Ptr(i)
}

// SetIndex replaces the element at index i without checking it against Len.
func (v *Vector[T]) SetIndex(i int, value T) {
	v.assertIndex(i)
	v.buf.Set(i, value)
}

// Front returns the first element, or false if the vector is empty.
func (v *Vector[T]) Front() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	return v.buf.At(0), true
}

// Back returns the last element, or false if the vector is empty.
func (v *Vector[T]) Back() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	return v.buf.At(v.size - 1), true
}

// Slice returns the live elements. The slice aliases the vector's storage.
func (v *Vector[T]) Slice() []T {
	return v.live()
}

// String formats the elements like a slice, e.g. [1 2 3].
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.live())
}

func (v *Vector[T]) live() []T {
	return v.buf.Slots()[:v.size]
}

func (v *Vector[T]) assertIndex(i int) {
	if debugAsserts && (i < 0 || i >= v.size) {
		panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, v.size))
	}
}
