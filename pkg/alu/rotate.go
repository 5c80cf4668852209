package alu

import "github.com/thelolagemann/sm83/pkg/bits"

// RotateLeft rotates v left by 1 bit. Bit 7 wraps around to
// bit 0 and is also returned as the new carry.
//
//	┏━ Carry ━┓   ┏━━━━━━ u8 ━━━━━━━┓
//	┃    C   ←╂─┬─╂─ b7 ← ... ← b0 ←╂─┐
//	┗━━━━━━━━━┛ │ ┗━━━━━━━━━━━━━━━━━┛ │
//	            └─────────────────────┘
func RotateLeft(v uint8) (uint8, bool) {
	return v<<1 | v>>7, bits.Test(v, 7)
}

// RotateRight rotates v right by 1 bit. Bit 0 wraps around to
// bit 7 and is also returned as the new carry.
//
//	  ┏━━━━━━━ u8 ━━━━━━┓   ┏━ Carry ━┓
//	┌─╂→ b7 → ... → b0 ─╂─┬─╂→   C    ┃
//	│ ┗━━━━━━━━━━━━━━━━━┛ │ ┗━━━━━━━━━┛
//	└─────────────────────┘
func RotateRight(v uint8) (uint8, bool) {
	return v>>1 | v<<7, bits.Test(v, 0)
}

// RotateLeftThroughCarry rotates v left by 1 bit through the carry,
// treating v and the carry as a single 9-bit value.
//
//	  ┏━ Carry ━┓ ┏━━━━━━ u8 ━━━━━━━┓
//	┌─╂─   C   ←╂─╂─ b7 ← ... ← b0 ←╂─┐
//	│ ┗━━━━━━━━━┛ ┗━━━━━━━━━━━━━━━━━┛ │
//	└─────────────────────────────────┘
func RotateLeftThroughCarry(v uint8, carry bool) (uint8, bool) {
	return bits.Assign(v<<1, 0, carry), bits.Test(v, 7)
}

// RotateRightThroughCarry rotates v right by 1 bit through the carry,
// treating v and the carry as a single 9-bit value.
//
//	  ┏━━━━━━━ u8 ━━━━━━┓ ┏━ Carry ━┓
//	┌─╂→ b7 → ... → b0 ─╂─╂→   C   ─╂─┐
//	│ ┗━━━━━━━━━━━━━━━━━┛ ┗━━━━━━━━━┛ │
//	└─────────────────────────────────┘
func RotateRightThroughCarry(v uint8, carry bool) (uint8, bool) {
	return bits.Assign(v>>1, 7, carry), bits.Test(v, 0)
}

// ShiftLeftArithmetic shifts v left by 1 bit into the carry.
// Bit 0 is reset.
func ShiftLeftArithmetic(v uint8) (uint8, bool) {
	return v << 1, bits.Test(v, 7)
}

// ShiftRightArithmetic shifts v right by 1 bit into the carry,
// leaving bit 7 unchanged.
func ShiftRightArithmetic(v uint8) (uint8, bool) {
	return v&0x80 | v>>1, bits.Test(v, 0)
}

// ShiftRightLogical shifts v right by 1 bit into the carry.
// Bit 7 is reset.
func ShiftRightLogical(v uint8) (uint8, bool) {
	return v >> 1, bits.Test(v, 0)
}

// Swap exchanges the upper and lower nibbles of v.
func Swap(v uint8) uint8 {
	return v<<4 | v>>4
}
