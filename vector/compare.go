package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.live(), b.live())
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but uses eq to compare elements.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.live(), b.live(), eq)
}

// Compare orders a and b lexicographically. It returns -1, 0 or +1.
// A vector that is a strict prefix of the other orders first.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.live(), b.live())
}

// CompareFunc is like Compare but uses cmpFn to compare elements.
func CompareFunc[T any](a, b *Vector[T], cmpFn func(T, T) int) int {
	return slices.CompareFunc(a.live(), b.live(), cmpFn)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a orders before or equal to b.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual reports whether a orders after or equal to b.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) >= 0
}
