package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/pkg/bits"
)

// The CB prefixed instructions are decoded as x = bits 7-6,
// y = bits 5-3 and z = bits 2-0 of the opcode, z selecting the
// operand.
//
//	x = 0: rotateOps[y] z
//	x = 1: BIT y, z
//	x = 2: RES y, z
//	x = 3: SET y, z
func init() {
	for z := uint8(0); z < 8; z++ {
		z := z
		for y := uint8(0); y < 8; y++ {
			y := y
			op := rotateOps[y]
			DefineInstructionCB(y<<3|z, op.name+" "+r8Names[z], func(c *CPU) {
				c.setR8(z, c.rotate(op, c.getR8(z)))
			})
			DefineInstructionCB(0x40|y<<3|z, fmt.Sprintf("BIT %d, %s", y, r8Names[z]), func(c *CPU) {
				c.testBit(c.getR8(z), y)
			})
			DefineInstructionCB(0x80|y<<3|z, fmt.Sprintf("RES %d, %s", y, r8Names[z]), func(c *CPU) {
				c.setR8(z, bits.Reset(c.getR8(z), y))
			})
			DefineInstructionCB(0xC0|y<<3|z, fmt.Sprintf("SET %d, %s", y, r8Names[z]), func(c *CPU) {
				c.setR8(z, bits.Set(c.getR8(z), y))
			})
		}
	}
}
