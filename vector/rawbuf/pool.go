package rawbuf

import "sync"

// Pool provides sync.Pool-based Buffer reuse to reduce GC pressure when
// containers grow and shrink repeatedly.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{}
			},
		},
	}
}

// Get returns a Buffer owning exactly n zeroed slots.
// Callers should return it via Put when done.
func (p *Pool[T]) Get(n int) *Buffer[T] {
	b := p.pool.Get().(*Buffer[T])
	b.reset(n)
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	// Drop references held by the block so pooled memory does not pin them.
	clear(b.block[:cap(b.block)])
	p.pool.Put(b)
}
