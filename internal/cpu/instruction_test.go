package cpu

import (
	"fmt"
	"strings"
	"testing"

	"github.com/thelolagemann/sm83/internal/ram"
)

func TestInstructionSet(t *testing.T) {
	defined := 0
	for opcode, instruction := range InstructionSet {
		if instruction.Defined() {
			defined++
		}
		if instruction.Name() == "" {
			t.Errorf("%02X: expected a name", opcode)
		}
	}
	// 256 - 11 illegal opcodes - the CB prefix
	if defined != 244 {
		t.Errorf("expected 244 defined instructions, got %d", defined)
	}
	for _, opcode := range illegalOpcodes {
		if InstructionSet[opcode].Defined() {
			t.Errorf("%02X: expected illegal opcode to be undefined", opcode)
		}
	}
	if name := InstructionSet[0xCB].Name(); name != "PREFIX CB" {
		t.Errorf("expected PREFIX CB, got %s", name)
	}

	for opcode, instruction := range InstructionSetCB {
		if !instruction.Defined() || instruction.Length() != 2 {
			t.Errorf("CB %02X: expected a defined 2 byte instruction", opcode)
		}
	}
}

func TestInstruction_Name(t *testing.T) {
	tests := []struct {
		set    *[256]Instruction
		opcode uint8
		want   string
	}{
		{&InstructionSet, 0x00, "NOP"},
		{&InstructionSet, 0x01, "LD BC, d16"},
		{&InstructionSet, 0x22, "LD (HL+), A"},
		{&InstructionSet, 0x41, "LD B, C"},
		{&InstructionSet, 0x76, "HALT"},
		{&InstructionSet, 0x86, "ADD A, (HL)"},
		{&InstructionSet, 0x9F, "SBC A, A"},
		{&InstructionSet, 0xC1, "POP BC"},
		{&InstructionSet, 0xF5, "PUSH AF"},
		{&InstructionSet, 0xD8, "RET C"},
		{&InstructionSet, 0xEF, "RST 28H"},
		{&InstructionSet, 0xFE, "CP d8"},
		{&InstructionSetCB, 0x00, "RLC B"},
		{&InstructionSetCB, 0x37, "SWAP A"},
		{&InstructionSetCB, 0x7E, "BIT 7, (HL)"},
		{&InstructionSetCB, 0x87, "RES 0, A"},
		{&InstructionSetCB, 0xFF, "SET 7, A"},
	}
	for _, tt := range tests {
		if got := tt.set[tt.opcode].Name(); got != tt.want {
			t.Errorf("%02X: expected %q, got %q", tt.opcode, tt.want, got)
		}
	}
}

// TestInstruction_Length executes every instruction that does not
// change the flow of execution, and checks that PC moved past all
// of its bytes.
func TestInstruction_Length(t *testing.T) {
	for opcode, instruction := range InstructionSet {
		if !instruction.Defined() || changesFlow(instruction.Name()) {
			continue
		}
		c, b := newTestCPU(uint8(opcode))
		step(t, c, b)
		if want := 0x0100 + uint16(instruction.Length()); c.PC() != want {
			t.Errorf("%02X %s: expected PC=%04X, got %04X", opcode, instruction.Name(), want, c.PC())
		}
	}
	for opcode := range InstructionSetCB {
		c, b := newTestCPU(0xCB, uint8(opcode))
		step(t, c, b)
		if c.PC() != 0x0102 {
			t.Errorf("CB %02X: expected PC=0102, got %04X", opcode, c.PC())
		}
	}
}

func changesFlow(name string) bool {
	for _, prefix := range []string{"JR", "JP", "CALL", "RET", "RST"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func TestDisassemble(t *testing.T) {
	b := ram.NewRAM()
	tests := []struct {
		addr   uint16
		bytes  []byte
		want   string
		length uint8
	}{
		{0x0000, []byte{0x01, 0x34, 0x12}, "LD BC, $1234", 3},
		{0x0010, []byte{0x18, 0xFE}, "JR $0010", 2},
		{0x0020, []byte{0x20, 0x05}, "JR NZ, $0027", 2},
		{0x0030, []byte{0xE8, 0xFE}, "ADD SP, -2", 2},
		{0x0040, []byte{0xF8, 0x05}, "LD HL, SP+5", 2},
		{0x0050, []byte{0xE0, 0x80}, "LDH ($80), A", 2},
		{0x0060, []byte{0xCB, 0x7C}, "BIT 7, H", 2},
		{0x0070, []byte{0xD3}, "DB $D3", 1},
		{0x0080, []byte{0xFA, 0x00, 0xC0}, "LD A, ($C000)", 3},
		{0x0090, []byte{0x3E, 0x42}, "LD A, $42", 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%04X", tt.addr), func(t *testing.T) {
			for i, v := range tt.bytes {
				b.Write(tt.addr+uint16(i), v)
			}
			got, length := Disassemble(b, tt.addr)
			if got != tt.want || length != tt.length {
				t.Errorf("expected %q (%d), got %q (%d)", tt.want, tt.length, got, length)
			}
		})
	}
}
