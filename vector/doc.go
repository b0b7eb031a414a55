// Package vector provides Vector, a generic growable sequence stored in one
// contiguous block.
//
// A Vector tracks a logical length (Len) and the length of its owned block
// (Cap). Appending is amortized O(1): the first push on an unallocated vector
// reserves 10 slots and every push on a full vector doubles the capacity.
// Reserve is the exact-size growth primitive; it never rounds up.
//
// # Usage
//
//	v := vector.Of(1, 2, 3)
//	v.PushBack(4)
//	pos := v.Insert(1, 99) // [1 99 2 3 4]
//	v.Erase(pos)           // [1 2 3 4]
//
//	x, err := v.At(10) // errors.Is(err, vector.ErrOutOfRange)
//
// # Access
//
// At and Set are always bounds checked against Len. Index, Ref and SetIndex
// skip that check; build with -tags vectordebug to turn them into asserting
// accessors while testing.
//
// # Invalidation
//
// Any call that grows the block (Reserve, Resize, PushBack, Insert, Append)
// and any Insert or Erase invalidates slices returned by Slice, pointers
// returned by Ref, and previously computed positions. Re-acquire them after
// mutating.
//
// # Ownership
//
// A Vector must not be copied by value. Use Clone for a deep copy, Take or
// MoveFrom to transfer the storage, and Swap to exchange it.
//
// Vectors are not safe for concurrent use.
package vector
