package cpu

// r8Names are the names of the 8-bit operands, indexed the
// same way the opcodes encode them.
//
//	0 = B, 1 = C, 2 = D, 3 = E, 4 = H, 5 = L, 6 = (HL), 7 = A
var r8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// rpNames are the 16-bit register pairs used by LD, INC, DEC & ADD.
var rpNames = [4]string{"BC", "DE", "HL", "SP"}

// rp2Names are the 16-bit register pairs used by PUSH & POP.
var rp2Names = [4]string{"BC", "DE", "HL", "AF"}

// conditionNames are the conditions used by JR, JP, CALL & RET.
var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

// getR8 returns the 8-bit operand at index, reading
// (HL) from memory for index 6.
func (c *CPU) getR8(index uint8) uint8 {
	switch index & 7 {
	case 0:
		return c.b
	case 1:
		return c.c
	case 2:
		return c.d
	case 3:
		return c.e
	case 4:
		return c.h
	case 5:
		return c.l
	case 6:
		return c.readByte(c.HL())
	default:
		return c.a
	}
}

// setR8 sets the 8-bit operand at index, writing
// (HL) to memory for index 6.
func (c *CPU) setR8(index uint8, value uint8) {
	switch index & 7 {
	case 0:
		c.b = value
	case 1:
		c.c = value
	case 2:
		c.d = value
	case 3:
		c.e = value
	case 4:
		c.h = value
	case 5:
		c.l = value
	case 6:
		c.writeByte(c.HL(), value)
	default:
		c.a = value
	}
}

// getRP returns the register pair at index (BC, DE, HL, SP).
func (c *CPU) getRP(index uint8) uint16 {
	switch index & 3 {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.sp
	}
}

// setRP sets the register pair at index (BC, DE, HL, SP).
func (c *CPU) setRP(index uint8, value uint16) {
	switch index & 3 {
	case 0:
		c.SetBC(value)
	case 1:
		c.SetDE(value)
	case 2:
		c.SetHL(value)
	default:
		c.sp = value
	}
}

// getRP2 returns the register pair at index (BC, DE, HL, AF).
func (c *CPU) getRP2(index uint8) uint16 {
	if index&3 == 3 {
		return c.AF()
	}
	return c.getRP(index)
}

// setRP2 sets the register pair at index (BC, DE, HL, AF).
// The lower nibble of F is discarded when setting AF.
func (c *CPU) setRP2(index uint8, value uint16) {
	if index&3 == 3 {
		c.SetAF(value)
		return
	}
	c.setRP(index, value)
}

// condition returns whether the condition at index
// (NZ, Z, NC, C) is met.
func (c *CPU) condition(index uint8) bool {
	switch index & 3 {
	case 0:
		return !c.f.zero
	case 1:
		return c.f.zero
	case 2:
		return !c.f.carry
	default:
		return c.f.carry
	}
}
