package cpu

import (
	"fmt"
	"strings"

	"github.com/thelolagemann/sm83/pkg/bits"
)

// Instruction represents a single instruction of the
// CPU.
type Instruction struct {
	name   string     // name of the instruction
	length uint8      // length in bytes, including the opcode
	fn     func(*CPU) // fn called when executing the instruction
}

// Name returns the mnemonic of the instruction, with operands
// read from memory written as d8, d16, a8, a16 or r8.
func (i Instruction) Name() string { return i.name }

// Length returns the length of the instruction in bytes.
func (i Instruction) Length() uint8 { return i.length }

// Defined reports whether the instruction can be executed.
func (i Instruction) Defined() bool { return i.fn != nil }

// InstructionSet holds the first 256 instructions.
var InstructionSet [256]Instruction

// InstructionSetCB holds the 256 instructions prefixed by 0xCB.
var InstructionSetCB [256]Instruction

// illegalOpcodes are the opcodes that do not exist on the SM83,
// executing one locks up the hardware.
var illegalOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

// DefineInstruction defines the instruction in the InstructionSet,
// with the provided opcode.
func DefineInstruction(opcode uint8, name string, length uint8, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{
		name:   name,
		length: length,
		fn:     fn,
	}
}

// DefineInstructionCB defines the instruction in the InstructionSetCB,
// with the provided opcode.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{
		name:   name,
		length: 2,
		fn:     fn,
	}
}

// Disassemble returns the instruction at addr with its operands
// filled in, along with its length. Nothing is executed, and no
// cycles are counted.
func Disassemble(b Bus, addr uint16) (string, uint8) {
	opcode := b.Read(addr)
	if opcode == 0xCB {
		return InstructionSetCB[b.Read(addr+1)].name, 2
	}

	instruction := InstructionSet[opcode]
	if !instruction.Defined() {
		return fmt.Sprintf("DB $%02X", opcode), 1
	}

	name := instruction.name
	operand := b.Read(addr + 1)
	switch {
	case strings.Contains(name, "d16"), strings.Contains(name, "a16"):
		v := fmt.Sprintf("$%04X", bits.FromBytes(operand, b.Read(addr+2)))
		name = strings.NewReplacer("d16", v, "a16", v).Replace(name)
	case strings.Contains(name, "d8"), strings.Contains(name, "a8"):
		v := fmt.Sprintf("$%02X", operand)
		name = strings.NewReplacer("d8", v, "a8", v).Replace(name)
	case strings.HasPrefix(name, "JR"):
		// show the target rather than the offset
		target := addr + 2 + uint16(int16(int8(operand)))
		name = strings.Replace(name, "r8", fmt.Sprintf("$%04X", target), 1)
	case strings.Contains(name, "r8"):
		name = strings.Replace(name, "r8", fmt.Sprintf("%d", int8(operand)), 1)
	}
	return name, instruction.length
}
