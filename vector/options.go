package vector

import "github.com/cwbudde/algo-vector/vector/rawbuf"

// GrowthOp identifies the operation that caused a reallocation.
type GrowthOp int

const (
	// GrowReserve is an explicit Reserve call.
	GrowReserve GrowthOp = iota

	// GrowPushBack is a PushBack (or Append) on a full vector.
	GrowPushBack

	// GrowInsert is an Insert on a full vector.
	GrowInsert

	// GrowResize is a Resize beyond the current capacity.
	GrowResize
)

// String returns a human-readable name for the operation.
func (op GrowthOp) String() string {
	switch op {
	case GrowReserve:
		return "reserve"
	case GrowPushBack:
		return "push-back"
	case GrowInsert:
		return "insert"
	case GrowResize:
		return "resize"
	default:
		return "unknown"
	}
}

// GrowthEvent describes one reallocation. Size is the number of live
// elements that were relocated into the new block.
type GrowthEvent struct {
	Op          GrowthOp
	OldCapacity int
	NewCapacity int
	Size        int
}

type config[T any] struct {
	pool     *rawbuf.Pool[T]
	hook     func(GrowthEvent)
	capacity int
}

// Option configures a Vector at construction time.
type Option[T any] func(*config[T])

// WithPool makes the vector take blocks from p and hand displaced blocks back
// to it instead of leaving them to the garbage collector.
func WithPool[T any](p *rawbuf.Pool[T]) Option[T] {
	return func(cfg *config[T]) {
		cfg.pool = p
	}
}

// WithGrowthHook registers fn to be called after every reallocation.
// Construction-time allocations are not reported.
func WithGrowthHook[T any](fn func(GrowthEvent)) Option[T] {
	return func(cfg *config[T]) {
		cfg.hook = fn
	}
}

// WithCapacity preallocates room for n elements.
func WithCapacity[T any](n int) Option[T] {
	return func(cfg *config[T]) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

func applyOptions[T any](opts []Option[T]) config[T] {
	var cfg config[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// ReserveHint carries a capacity request for NewReserved.
type ReserveHint struct {
	Capacity int
}

// Reserve returns a hint requesting capacity n.
func Reserve(n int) ReserveHint {
	return ReserveHint{Capacity: n}
}
