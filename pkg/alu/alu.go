// Package alu implements the arithmetic and rotation primitives of the
// SM83. Every function is pure and returns the result together with the
// flags the hardware derives from it; callers decide which of those flags
// an instruction actually updates.
package alu

// Add8 adds a and b, returning (result, halfCarry, carry).
//
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func Add8(a, b uint8) (uint8, bool, bool) {
	return Add8Carry(a, b, false)
}

// Add8Carry adds a, b and the incoming carry, returning
// (result, halfCarry, carry).
func Add8Carry(a, b uint8, carry bool) (uint8, bool, bool) {
	c := b2u(carry)
	sum := uint16(a) + uint16(b) + uint16(c)
	half := a&0x0F + b&0x0F + c
	return uint8(sum), half > 0x0F, sum > 0xFF
}

// Add16 adds a and b, returning (result, halfCarry, carry).
//
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func Add16(a, b uint16) (uint16, bool, bool) {
	sum := uint32(a) + uint32(b)
	return uint16(sum), a&0x0FFF+b&0x0FFF > 0x0FFF, sum > 0xFFFF
}

// Add16Signed8 adds the sign-extended b to a. The flags are those of
// an 8-bit addition between the low byte of a and the raw byte of b,
// as used by ADD SP, e8 and LD HL, SP+e8.
func Add16Signed8(a uint16, b int8) (uint16, bool, bool) {
	result := a + uint16(int16(b))
	_, half, carry := Add8(uint8(a), uint8(b))
	return result, half, carry
}

// Sub8 subtracts b from a, returning (result, halfCarry, carry).
//
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func Sub8(a, b uint8) (uint8, bool, bool) {
	return Sub8Carry(a, b, false)
}

// Sub8Carry subtracts b and the incoming carry from a, returning
// (result, halfCarry, carry).
func Sub8Carry(a, b uint8, carry bool) (uint8, bool, bool) {
	c := b2u(carry)
	diff := int16(a) - int16(b) - int16(c)
	return uint8(diff), a&0x0F < b&0x0F+c, diff < 0
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
