package numeric

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vector/vector"
)

// Errors returned by numeric functions.
var (
	ErrEmptyInput     = errors.New("numeric: empty input")
	ErrLengthMismatch = errors.New("numeric: length mismatch")
)

// Sum returns the sum of all elements. Returns 0 for an empty vector.
func Sum(v *vector.Vector[float64]) float64 {
	return vecmath.Sum(v.Slice())
}

// Dot returns sum(a[i] * b[i]).
func Dot(a, b *vector.Vector[float64]) (float64, error) {
	if err := sameLen(a, b); err != nil {
		return 0, err
	}
	return vecmath.DotProduct(a.Slice(), b.Slice()), nil
}

// Scale multiplies every element of v by k in place.
func Scale(v *vector.Vector[float64], k float64) {
	vecmath.ScaleBlockInPlace(v.Slice(), k)
}

// Add adds src to dst element-wise in place.
func Add(dst, src *vector.Vector[float64]) error {
	if err := sameLen(dst, src); err != nil {
		return err
	}
	vecmath.AddBlockInPlace(dst.Slice(), src.Slice())
	return nil
}

// Mul multiplies dst by src element-wise in place.
func Mul(dst, src *vector.Vector[float64]) error {
	if err := sameLen(dst, src); err != nil {
		return err
	}
	vecmath.MulBlockInPlace(dst.Slice(), src.Slice())
	return nil
}

// MaxAbs returns the largest absolute element value, or 0 for an empty vector.
func MaxAbs(v *vector.Vector[float64]) float64 {
	if v.IsEmpty() {
		return 0
	}
	return vecmath.MaxAbs(v.Slice())
}

func sameLen(a, b *vector.Vector[float64]) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, a.Len(), b.Len())
	}
	return nil
}
