package cpu

import "github.com/thelolagemann/sm83/pkg/alu"

// jumpRelative reads a signed offset and, if condition
// is met, adds it to the program counter.
//
//	JR r8
//	JR cc, r8
//	cc = NZ, Z, NC, C
func (c *CPU) jumpRelative(condition bool) {
	offset := int8(c.readOperand())
	if condition {
		c.pc, _, _ = alu.Add16Signed8(c.pc, offset)
		c.tickCycle()
	}
}

// jumpAbsolute reads an address and, if condition
// is met, sets the program counter to it.
//
//	JP a16
//	JP cc, a16
//	cc = NZ, Z, NC, C
func (c *CPU) jumpAbsolute(condition bool) {
	address := c.readOperand16()
	if condition {
		c.pc = address
		c.tickCycle()
	}
}

// call reads an address and, if condition is met, pushes
// the address of the next instruction onto the stack
// and jumps to it.
//
//	CALL a16
//	CALL cc, a16
//	cc = NZ, Z, NC, C
func (c *CPU) call(condition bool) {
	address := c.readOperand16()
	if condition {
		c.tickCycle()
		c.push(c.pc)
		c.pc = address
	}
}

// ret pops an address off the stack and jumps to it.
//
//	RET
//	RETI
func (c *CPU) ret() {
	c.pc = c.pop()
	c.tickCycle()
}

// retConditional returns from a subroutine if condition is met.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(condition bool) {
	c.tickCycle()
	if condition {
		c.ret()
	}
}

// restart pushes the address of the next instruction onto
// the stack and jumps to address.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) restart(address uint16) {
	c.tickCycle()
	c.push(c.pc)
	c.pc = address
}
