package alu

// DecimalAdjust corrects a after a BCD addition or subtraction, using the
// subtract, halfCarry and carry flags left behind by that operation. It
// returns the adjusted value and the new carry.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func DecimalAdjust(a uint8, subtract, halfCarry, carry bool) (uint8, bool) {
	if !subtract {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if halfCarry || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if halfCarry {
			a -= 0x06
		}
	}
	return a, carry
}
