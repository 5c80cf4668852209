package cpu

import (
	"errors"
	"fmt"
)

// ErrIllegalOpcode is returned (wrapped in a DecodeError) when the CPU
// reads an opcode that does not exist in the SM83 instruction set.
var ErrIllegalOpcode = errors.New("cpu: illegal opcode")

// DecodeError describes an opcode the CPU could not decode.
type DecodeError struct {
	PC       uint16 // address of the opcode (or of the 0xCB prefix)
	Opcode   uint8
	Prefixed bool // Opcode followed a 0xCB prefix
}

func (e *DecodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("%v CB %02X at %04X", ErrIllegalOpcode, e.Opcode, e.PC)
	}
	return fmt.Sprintf("%v %02X at %04X", ErrIllegalOpcode, e.Opcode, e.PC)
}

func (e *DecodeError) Unwrap() error {
	return ErrIllegalOpcode
}
