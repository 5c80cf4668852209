package cpu

import (
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/bits"
)

// RegisterFile is the set of CPU visible registers. It is implemented
// by Registers, and by the CPU through its embedded Registers, so
// that anything holding a RegisterFile can inspect and modify the
// CPU state without knowing how it is stored.
type RegisterFile interface {
	A() uint8
	SetA(uint8)
	B() uint8
	SetB(uint8)
	C() uint8
	SetC(uint8)
	D() uint8
	SetD(uint8)
	E() uint8
	SetE(uint8)
	H() uint8
	SetH(uint8)
	L() uint8
	SetL(uint8)

	F() uint8
	SetF(uint8)
	Flags() Flags
	SetFlags(Flags)
	Zero() bool
	SetZero(bool)
	Subtract() bool
	SetSubtract(bool)
	HalfCarry() bool
	SetHalfCarry(bool)
	Carry() bool
	SetCarry(bool)

	PC() uint16
	SetPC(uint16)
	SP() uint16
	SetSP(uint16)
	IncrementSP()
	DecrementSP()

	AF() uint16
	SetAF(uint16)
	BC() uint16
	SetBC(uint16)
	DE() uint16
	SetDE(uint16)
	HL() uint16
	SetHL(uint16)
}

var _ RegisterFile = (*Registers)(nil)

// Registers represents the GB CPU registers. The CPU has 8 Registers:
// A, B, C, D, E, F, H and L, where F holds the Flags. They can be
// paired to form the 16-bit registers AF, BC, DE and HL, with the
// first named register being the high byte.
type Registers struct {
	a, b, c, d, e, h, l uint8
	f                   Flags

	// pc is the program counter, it points to the next instruction to be executed.
	pc uint16
	// sp is the stack pointer, it points to the top of the stack.
	sp uint16
}

// NewRegisters returns Registers with every register cleared, the
// state of the CPU when power is first applied and the boot ROM is
// about to run.
func NewRegisters() *Registers {
	return &Registers{}
}

// PowerUp returns the Registers as the boot ROM of the given model
// leaves them when it hands control to the cartridge at 0x0100.
//
// See https://gbdev.io/pandocs/Power_Up_Sequence.html#cpu-registers
func PowerUp(model types.Model) *Registers {
	r := model.Registers()
	return &Registers{
		a:  r[0],
		f:  FlagsFromByte(r[1]),
		b:  r[2],
		c:  r[3],
		d:  r[4],
		e:  r[5],
		h:  r[6],
		l:  r[7],
		pc: types.BootPC,
		sp: types.BootSP,
	}
}

func (r *Registers) A() uint8     { return r.a }
func (r *Registers) SetA(v uint8) { r.a = v }
func (r *Registers) B() uint8     { return r.b }
func (r *Registers) SetB(v uint8) { r.b = v }
func (r *Registers) C() uint8     { return r.c }
func (r *Registers) SetC(v uint8) { r.c = v }
func (r *Registers) D() uint8     { return r.d }
func (r *Registers) SetD(v uint8) { r.d = v }
func (r *Registers) E() uint8     { return r.e }
func (r *Registers) SetE(v uint8) { r.e = v }
func (r *Registers) H() uint8     { return r.h }
func (r *Registers) SetH(v uint8) { r.h = v }
func (r *Registers) L() uint8     { return r.l }
func (r *Registers) SetL(v uint8) { r.l = v }

// F returns the F register in its byte form.
func (r *Registers) F() uint8 { return r.f.Byte() }

// SetF sets the F register, discarding the lower nibble.
func (r *Registers) SetF(v uint8) { r.f = FlagsFromByte(v) }

func (r *Registers) Flags() Flags     { return r.f }
func (r *Registers) SetFlags(f Flags) { r.f = f }

func (r *Registers) Zero() bool          { return r.f.zero }
func (r *Registers) SetZero(v bool)      { r.f = r.f.WithZero(v) }
func (r *Registers) Subtract() bool      { return r.f.subtract }
func (r *Registers) SetSubtract(v bool)  { r.f = r.f.WithSubtract(v) }
func (r *Registers) HalfCarry() bool     { return r.f.halfCarry }
func (r *Registers) SetHalfCarry(v bool) { r.f = r.f.WithHalfCarry(v) }
func (r *Registers) Carry() bool         { return r.f.carry }
func (r *Registers) SetCarry(v bool)     { r.f = r.f.WithCarry(v) }
func (r *Registers) PC() uint16          { return r.pc }
func (r *Registers) SetPC(v uint16)      { r.pc = v }
func (r *Registers) SP() uint16          { return r.sp }
func (r *Registers) SetSP(v uint16)      { r.sp = v }

// IncrementSP increments the stack pointer, wrapping at 0xFFFF.
func (r *Registers) IncrementSP() { r.sp++ }

// DecrementSP decrements the stack pointer, wrapping at 0x0000.
func (r *Registers) DecrementSP() { r.sp-- }

func (r *Registers) AF() uint16 { return bits.FromBytes(r.f.Byte(), r.a) }

func (r *Registers) SetAF(v uint16) {
	var f uint8
	f, r.a = bits.ToBytes(v)
	r.f = FlagsFromByte(f)
}

func (r *Registers) BC() uint16     { return bits.FromBytes(r.c, r.b) }
func (r *Registers) SetBC(v uint16) { r.c, r.b = bits.ToBytes(v) }
func (r *Registers) DE() uint16     { return bits.FromBytes(r.e, r.d) }
func (r *Registers) SetDE(v uint16) { r.e, r.d = bits.ToBytes(v) }
func (r *Registers) HL() uint16     { return bits.FromBytes(r.l, r.h) }
func (r *Registers) SetHL(v uint16) { r.l, r.h = bits.ToBytes(v) }

// bytes returns the registers in the order
// A, F, B, C, D, E, H, L, SP, PC (little endian).
func (r *Registers) bytes() [12]byte {
	spL, spH := bits.ToBytes(r.sp)
	pcL, pcH := bits.ToBytes(r.pc)
	return [12]byte{r.a, r.f.Byte(), r.b, r.c, r.d, r.e, r.h, r.l, spL, spH, pcL, pcH}
}

// Hash returns a fingerprint of the register state, used to
// quickly compare the state of two CPUs.
func (r *Registers) Hash() uint64 {
	b := r.bytes()
	return xxhash.Sum64(b[:])
}

func (r *Registers) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
		r.a, r.f.Byte(), r.b, r.c, r.d, r.e, r.h, r.l, r.sp, r.pc)
}
