package types

import "strings"

type Model int // The Model used in emulation.

const (
	Unset  Model = iota // Unset - Model hasn't been set - behaves as DMG0
	DMG0                // DMG0 - early Game Boy, only released in Japan
	DMGABC              // DMGABC - Standard Game Boy
	CGB0                // CGB0 -  early Game Boy Colour, only released in Japan
	CGBABC              // CGBABC - Standard Game Boy Colour
	MGB                 // MGB - Pocket Game Boy
	SGB                 // SGB - Super Game Boy
	SGB2                // SGB2 - Super Game Boy 2
	AGB                 // AGB - Game Boy Advance
)

var modelNames = [...]string{
	Unset:  "Unset",
	DMG0:   "DMG0",
	DMGABC: "DMG",
	CGB0:   "CGB0",
	CGBABC: "CGB",
	MGB:    "MGB",
	SGB:    "SGB",
	SGB2:   "SGB2",
	AGB:    "AGB",
}

// StringToModel converts a string to a Model.
func StringToModel(s string) Model {
	for m, n := range modelNames {
		if n == strings.ToUpper(s) {
			return Model(m)
		}
	}

	return Unset
}

func (m Model) String() string {
	if m < 0 || int(m) >= len(modelNames) {
		return modelNames[Unset]
	}
	return modelNames[m]
}

// modelRegisters - model specific CPU registers after the boot ROM
// hands off to the cartridge, in the order A, F, B, C, D, E, H, L.
//
// See https://gbdev.io/pandocs/Power_Up_Sequence.html#cpu-registers
var modelRegisters = [...][8]uint8{
	Unset:  {0x01, 0x00, 0xFF, 0x13, 0x00, 0xC1, 0x84, 0x03}, // default to DMG0 registers
	DMG0:   {0x01, 0x00, 0xFF, 0x13, 0x00, 0xC1, 0x84, 0x03},
	DMGABC: {0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	CGB0:   {0x11, 0x80, 0x00, 0x00, 0x00, 0x08, 0x00, 0x7C}, // TODO does CGB0 have the same starting registers?
	CGBABC: {0x11, 0x80, 0x00, 0x00, 0x00, 0x08, 0x00, 0x7C},
	MGB:    {0xFF, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	SGB:    {0x01, 0x00, 0x00, 0x14, 0x00, 0x00, 0xC0, 0x60},
	SGB2:   {0xFF, 0x00, 0x00, 0x14, 0x00, 0x00, 0xC0, 0x60},
	AGB:    {0x11, 0x00, 0x01, 0x00, 0x00, 0x08, 0x00, 0x7C},
}

const (
	// BootPC is the program counter after the boot ROM hands off.
	BootPC uint16 = 0x0100
	// BootSP is the stack pointer after the boot ROM hands off.
	BootSP uint16 = 0xFFFE
)

// Registers returns the CPU registers of the model after the boot
// ROM has completed, in the order A, F, B, C, D, E, H, L. The
// returned array is a copy.
func (m Model) Registers() [8]uint8 {
	if m < 0 || int(m) >= len(modelRegisters) {
		return modelRegisters[Unset]
	}
	return modelRegisters[m]
}
