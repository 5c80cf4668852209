package cpu

import (
	"testing"

	"github.com/thelolagemann/sm83/internal/types"
)

func TestPowerUp(t *testing.T) {
	r := PowerUp(types.DMG0)
	want := map[string]uint16{
		"AF": 0x0100, "BC": 0xFF13, "DE": 0x00C1, "HL": 0x8403,
		"SP": 0xFFFE, "PC": 0x0100,
	}
	got := map[string]uint16{
		"AF": r.AF(), "BC": r.BC(), "DE": r.DE(), "HL": r.HL(),
		"SP": r.SP(), "PC": r.PC(),
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s: expected %04X, got %04X", name, v, got[name])
		}
	}

	// an unset model behaves as a DMG0
	if *PowerUp(types.Unset) != *r {
		t.Errorf("expected Unset to power up as DMG0")
	}

	// DMG-ABC sets the flags based on the header checksum
	if f := PowerUp(types.DMGABC).F(); f != 0xB0 {
		t.Errorf("expected DMG-ABC F to be B0, got %02X", f)
	}
}

func TestNewRegisters(t *testing.T) {
	r := NewRegisters()
	if r.AF() != 0 || r.BC() != 0 || r.DE() != 0 || r.HL() != 0 || r.SP() != 0 || r.PC() != 0 {
		t.Errorf("expected every register to be cleared, got %s", r)
	}
}

func TestRegisters_Pairs(t *testing.T) {
	r := NewRegisters()
	r.SetBC(0x1234)
	if r.B() != 0x12 || r.C() != 0x34 {
		t.Errorf("expected B=12 C=34, got B=%02X C=%02X", r.B(), r.C())
	}

	pairs := []struct {
		name string
		set  func(uint16)
		get  func() uint16
		mask uint16
	}{
		{"AF", r.SetAF, r.AF, 0xFFF0},
		{"BC", r.SetBC, r.BC, 0xFFFF},
		{"DE", r.SetDE, r.DE, 0xFFFF},
		{"HL", r.SetHL, r.HL, 0xFFFF},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for _, v := range []uint16{0x0000, 0x00FF, 0xFF00, 0xBEEF, 0xFFFF} {
				p.set(v)
				if got := p.get(); got != v&p.mask {
					t.Errorf("expected %04X, got %04X", v&p.mask, got)
				}
			}
		})
	}

	r.SetF(0xFF)
	if r.F() != 0xF0 {
		t.Errorf("expected lower nibble of F to be discarded, got %02X", r.F())
	}
}

func TestRegisters_Flags(t *testing.T) {
	r := NewRegisters()
	r.SetZero(true)
	r.SetCarry(true)
	if r.F() != 0x90 {
		t.Errorf("expected F to be 90, got %02X", r.F())
	}
	r.SetZero(false)
	r.SetSubtract(true)
	r.SetHalfCarry(true)
	if !r.Subtract() || !r.HalfCarry() || !r.Carry() || r.Zero() {
		t.Errorf("expected -NHC, got %s", r.Flags())
	}
	r.SetFlags(Flags{})
	if r.F() != 0 {
		t.Errorf("expected F to be cleared, got %02X", r.F())
	}
}

func TestRegisters_StackPointer(t *testing.T) {
	r := NewRegisters()
	r.DecrementSP()
	if r.SP() != 0xFFFF {
		t.Errorf("expected SP to wrap to FFFF, got %04X", r.SP())
	}
	r.IncrementSP()
	if r.SP() != 0x0000 {
		t.Errorf("expected SP to wrap to 0000, got %04X", r.SP())
	}
}

// swapPairs exchanges BC and DE through the capability
// interface alone.
func swapPairs(r RegisterFile) {
	bc, de := r.BC(), r.DE()
	r.SetBC(de)
	r.SetDE(bc)
}

func TestRegisterFile(t *testing.T) {
	for name, r := range map[string]RegisterFile{
		"registers": NewRegisters(),
		"cpu":       New(WithBootROM()),
	} {
		t.Run(name, func(t *testing.T) {
			r.SetBC(0x1122)
			r.SetDE(0x3344)
			swapPairs(r)
			if r.BC() != 0x3344 || r.DE() != 0x1122 {
				t.Errorf("expected BC=3344 DE=1122, got BC=%04X DE=%04X", r.BC(), r.DE())
			}
		})
	}
}

func TestRegisters_String(t *testing.T) {
	want := "A: 01 F: 00 B: FF C: 13 D: 00 E: C1 H: 84 L: 03 SP: FFFE PC: 0100"
	if s := PowerUp(types.DMG0).String(); s != want {
		t.Errorf("expected %q, got %q", want, s)
	}
}

func TestRegisters_Hash(t *testing.T) {
	a, b := PowerUp(types.DMG0), PowerUp(types.DMG0)
	if a.Hash() != b.Hash() {
		t.Errorf("expected identical registers to hash the same")
	}
	b.SetL(b.L() + 1)
	if a.Hash() == b.Hash() {
		t.Errorf("expected different registers to hash differently")
	}
}
