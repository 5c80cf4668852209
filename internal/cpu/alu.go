package cpu

import (
	"github.com/thelolagemann/sm83/pkg/alu"
	"github.com/thelolagemann/sm83/pkg/bits"
)

// aluOp is an operation of the 8-bit ALU, applied to the A
// Register and an operand.
type aluOp struct {
	name string
	fn   func(c *CPU, n uint8)
}

// aluOps are indexed by bits 5-3 of the ALU opcodes (0x80 - 0xBF
// and the d8 forms at 0xC6 - 0xFE).
var aluOps = [8]aluOp{
	{"ADD A, ", (*CPU).add},
	{"ADC A, ", (*CPU).addCarry},
	{"SUB ", (*CPU).sub},
	{"SBC A, ", (*CPU).subCarry},
	{"AND ", (*CPU).and},
	{"XOR ", (*CPU).xor},
	{"OR ", (*CPU).or},
	{"CP ", (*CPU).compare},
}

// add n to the A Register.
//
//	ADD A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8) {
	result, h, carry := alu.Add8(c.a, n)
	c.setFlags(result == 0, false, h, carry)
	c.a = result
}

// addCarry adds n and the carry flag to the A Register.
//
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addCarry(n uint8) {
	result, h, carry := alu.Add8Carry(c.a, n, c.f.carry)
	c.setFlags(result == 0, false, h, carry)
	c.a = result
}

// sub subtracts n from the A Register.
//
//	SUB n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8) {
	result, h, carry := alu.Sub8(c.a, n)
	c.setFlags(result == 0, true, h, carry)
	c.a = result
}

// subCarry subtracts n and the carry flag from the A Register.
//
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) subCarry(n uint8) {
	result, h, carry := alu.Sub8Carry(c.a, n, c.f.carry)
	c.setFlags(result == 0, true, h, carry)
	c.a = result
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.a &= n
	c.setFlags(c.a == 0, false, true, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.a ^= n
	c.setFlags(c.a == 0, false, false, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.a |= n
	c.setFlags(c.a == 0, false, false, false)
}

// compare compares n to the A Register, by subtracting
// without storing the result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	result, h, carry := alu.Sub8(c.a, n)
	c.setFlags(result == 0, true, h, carry)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result, h, _ := alu.Add8(n, 1)
	c.setFlags(result == 0, false, h, c.f.carry)
	return result
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result, h, _ := alu.Sub8(n, 1)
	c.setFlags(result == 0, true, h, c.f.carry)
	return result
}

// addHL adds nn to the HL RegisterPair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(nn uint16) {
	result, h, carry := alu.Add16(c.HL(), nn)
	c.setFlags(c.f.zero, false, h, carry)
	c.SetHL(result)
	c.tickCycle()
}

// addSPSigned reads a signed operand and returns it added to SP.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := int8(c.readOperand())
	result, h, carry := alu.Add16Signed8(c.sp, value)
	c.setFlags(false, false, h, carry)
	c.tickCycle()
	return result
}

// decimalAdjust adjusts the A Register so that it holds the
// correct BCD representation of the previous operation.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	result, carry := alu.DecimalAdjust(c.a, c.f.subtract, c.f.halfCarry, c.f.carry)
	c.setFlags(result == 0, c.f.subtract, false, carry)
	c.a = result
}

// rotateOp is a rotate, shift or swap applied to an 8-bit
// operand, returning the result and the new carry.
type rotateOp struct {
	name string
	fn   func(n uint8, carry bool) (uint8, bool)
}

// rotateOps are indexed by bits 5-3 of the CB opcodes 0x00 - 0x3F.
var rotateOps = [8]rotateOp{
	{"RLC", ignoreCarry(alu.RotateLeft)},
	{"RRC", ignoreCarry(alu.RotateRight)},
	{"RL", alu.RotateLeftThroughCarry},
	{"RR", alu.RotateRightThroughCarry},
	{"SLA", ignoreCarry(alu.ShiftLeftArithmetic)},
	{"SRA", ignoreCarry(alu.ShiftRightArithmetic)},
	{"SWAP", func(n uint8, _ bool) (uint8, bool) { return alu.Swap(n), false }},
	{"SRL", ignoreCarry(alu.ShiftRightLogical)},
}

func ignoreCarry(fn func(uint8) (uint8, bool)) func(uint8, bool) (uint8, bool) {
	return func(n uint8, _ bool) (uint8, bool) {
		return fn(n)
	}
}

// rotate applies op to n.
//
//	RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit shifted out (reset by SWAP).
func (c *CPU) rotate(op rotateOp, n uint8) uint8 {
	result, carry := op.fn(n, c.f.carry)
	c.setFlags(result == 0, false, false, carry)
	return result
}

// rotateA applies op to the A Register. Unlike the CB
// prefixed rotations, the zero flag is always reset.
//
//	RLCA, RRCA, RLA, RRA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit shifted out.
func (c *CPU) rotateA(op rotateOp) {
	result, carry := op.fn(c.a, c.f.carry)
	c.setFlags(false, false, false, carry)
	c.a = result
}

// testBit tests the bit at the given position in n.
//
//	BIT b, n
//	b = 0-7
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(n uint8, position uint8) {
	c.setFlags(!bits.Test(n, position), false, true, c.f.carry)
}
