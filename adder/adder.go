// Package adder implements addition over unsigned 64-bit integers with an
// explicit overflow policy.
//
// The default operation Add wraps modulo 2^64, the native semantics of Go's
// uint64. The other two policies are available as separate operations:
// AddChecked signals ErrOverflow and AddSaturating clamps to math.MaxUint64.
package adder

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrOverflow reports that the true sum of the operands exceeds
// math.MaxUint64.
var ErrOverflow = errors.New("arithmetic overflow")

// Add returns left + right modulo 2^64. Overflow wraps silently.
func Add(left, right uint64) uint64 {
	return left + right
}

// AddChecked returns left + right, or ErrOverflow when the true sum does
// not fit in a uint64.
func AddChecked(left, right uint64) (uint64, error) {
	sum := left + right
	if sum < left {
		return 0, ErrOverflow
	}
	return sum, nil
}

// AddSaturating returns left + right, clamped to math.MaxUint64 on
// overflow.
func AddSaturating(left, right uint64) uint64 {
	if right > math.MaxUint64-left {
		return math.MaxUint64
	}
	return left + right
}

// Sum returns the wrapping sum of terms. The empty sum is zero.
func Sum[T constraints.Unsigned](terms ...T) T {
	var total T
	for _, term := range terms {
		total += term
	}
	return total
}
