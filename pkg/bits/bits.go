// Package bits provides helpers for working with the individual bits of
// the 8 and 16-bit values that move around the CPU. Bits are indexed right
// to left, starting from 0.
//
// Indexing a bit outside the width of the operand is a programming error;
// the result is unspecified.
package bits

import "golang.org/x/exp/constraints"

// Val returns the value of the bit at the given index.
func Val[T constraints.Unsigned](b T, i uint8) T {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset[T constraints.Unsigned](b T, i uint8) T {
	return b &^ (T(1) << i)
}

// Set sets the bit at the given index.
func Set[T constraints.Unsigned](b T, i uint8) T {
	return b | (T(1) << i)
}

// Test tests the bit at the given index.
func Test[T constraints.Unsigned](b T, i uint8) bool {
	return (b>>i)&1 != 0
}

// Assign sets the bit at the given index when v is true,
// and resets it otherwise.
func Assign[T constraints.Unsigned](b T, i uint8, v bool) T {
	if v {
		return Set(b, i)
	}
	return Reset(b, i)
}
