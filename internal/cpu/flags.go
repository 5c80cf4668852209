package cpu

import "github.com/thelolagemann/sm83/internal/types"

// bit masks of the flags within the F register, the
// lower nibble of F is always 0.
const (
	flagZero      = types.Bit7
	flagSubtract  = types.Bit6
	flagHalfCarry = types.Bit5
	flagCarry     = types.Bit4
)

// Flags is the value held by the F register. Flags is an
// immutable value; the With methods return a modified copy.
//
//	Bit 7 - Zero       (Z)
//	Bit 6 - Subtract   (N)
//	Bit 5 - Half Carry (H)
//	Bit 4 - Carry      (C)
//	Bit 3-0 - Unused, always 0
type Flags struct {
	zero      bool // set if the result of the operation was 0
	subtract  bool // set if the operation was a subtraction
	halfCarry bool // set on a carry/borrow across the nibble boundary
	carry     bool // set on a carry/borrow out of the operand
}

// FlagsFromByte unpacks the flags from b, ignoring the lower nibble.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		zero:      b&flagZero != 0,
		subtract:  b&flagSubtract != 0,
		halfCarry: b&flagHalfCarry != 0,
		carry:     b&flagCarry != 0,
	}
}

// Byte packs the flags into their hardware layout.
func (f Flags) Byte() uint8 {
	var b uint8
	if f.zero {
		b |= flagZero
	}
	if f.subtract {
		b |= flagSubtract
	}
	if f.halfCarry {
		b |= flagHalfCarry
	}
	if f.carry {
		b |= flagCarry
	}
	return b
}

func (f Flags) Zero() bool      { return f.zero }
func (f Flags) Subtract() bool  { return f.subtract }
func (f Flags) HalfCarry() bool { return f.halfCarry }
func (f Flags) Carry() bool     { return f.carry }

func (f Flags) WithZero(v bool) Flags      { f.zero = v; return f }
func (f Flags) WithSubtract(v bool) Flags  { f.subtract = v; return f }
func (f Flags) WithHalfCarry(v bool) Flags { f.halfCarry = v; return f }
func (f Flags) WithCarry(v bool) Flags     { f.carry = v; return f }

// String returns the flags as ZNHC, with a '-' in
// place of each flag that is not set.
func (f Flags) String() string {
	s := []byte("----")
	for i, set := range [4]bool{f.zero, f.subtract, f.halfCarry, f.carry} {
		if set {
			s[i] = "ZNHC"[i]
		}
	}
	return string(s)
}
