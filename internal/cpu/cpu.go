package cpu

import (
	"github.com/thelolagemann/sm83/internal/interrupts"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/bits"
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
	// TicksPerCycle is the number of clock ticks
	// in a single machine cycle.
	TicksPerCycle = 4
)

// Bus is the memory the CPU is attached to. Everything outside
// of the CPU (cartridge, RAM, hardware registers) is reached
// through these two operations.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode.
	ModeHalt
	// ModeStop is the stop CPU mode.
	ModeStop
	// ModeHaltBug is the halt bug CPU mode, the next
	// opcode is read without incrementing PC.
	ModeHaltBug
)

var _ RegisterFile = (*CPU)(nil)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	Log log.Logger

	Debug           bool
	DebugBreakpoint bool

	bus Bus

	ime        bool // interrupt master enable
	imePending bool // EI was executed, IME is set after the next instruction
	mode       mode

	model    types.Model
	zeroBoot bool
	trace    bool

	currentTick uint8
	cycles      uint64
	err         error
}

// New creates a new CPU, with the registers initialized to the state
// the boot ROM leaves them in (unless WithBootROM is given).
func New(opts ...Opt) *CPU {
	c := &CPU{
		Log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset()

	return c
}

// Reset returns the CPU to its power up state.
func (c *CPU) Reset() {
	if c.zeroBoot {
		c.Registers = *NewRegisters()
	} else {
		c.Registers = *PowerUp(c.model)
	}
	c.ime, c.imePending = false, false
	c.mode = ModeNormal
	c.currentTick = 0
	c.cycles = 0
	c.err = nil
	c.DebugBreakpoint = false
}

// Cycles returns the number of machine cycles executed since the
// CPU was last reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// IME returns the interrupt master enable flag.
func (c *CPU) IME() bool {
	return c.ime
}

// Mode returns the current mode of the CPU.
func (c *CPU) Mode() uint8 {
	return c.mode
}

// Err returns the error that stopped the CPU, if any.
func (c *CPU) Err() error {
	return c.err
}

// Step performs a single fetch-decode-execute cycle against b,
// returning the number of machine cycles it took. Servicing an
// interrupt, or idling in HALT or STOP, counts as a step.
//
// An error is returned when the opcode read could not be decoded.
// The CPU is stopped by the error; the registers are left as they
// were before the step, and every following call to Step returns
// the same error.
func (c *CPU) Step(b Bus) (uint8, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.bus = b

	// reset tick counter
	c.currentTick = 0

	if c.mode == ModeHalt || c.mode == ModeStop {
		// the CPU idles until an interrupt is pending, regardless of IME
		if !c.hasInterrupts() {
			c.tickCycle()
			return c.finishStep(), nil
		}
		c.mode = ModeNormal
	}

	if c.ime && c.hasInterrupts() {
		c.executeInterrupt()
		return c.finishStep(), nil
	}

	enableIME := c.imePending
	if err := c.runInstruction(); err != nil {
		c.err = err
		c.Log.Errorf("%v (%s)", err, c.Registers.String())
		return 0, err
	}
	if enableIME && c.imePending {
		c.ime, c.imePending = true, false
	}

	return c.finishStep(), nil
}

func (c *CPU) finishStep() uint8 {
	c.cycles += uint64(c.currentTick)
	return c.currentTick
}

// runInstruction reads, decodes and executes the instruction at PC.
func (c *CPU) runInstruction() error {
	pc, saved, savedMode := c.pc, c.Registers, c.mode
	opcode := c.readInstruction()
	instruction := InstructionSet[opcode]

	// do we need to run a CB instruction?
	prefixed := opcode == 0xCB
	if prefixed {
		opcode = c.readOperand()
		instruction = InstructionSetCB[opcode]
	}
	if instruction.fn == nil {
		c.Registers, c.mode = saved, savedMode
		return &DecodeError{PC: pc, Opcode: opcode, Prefixed: prefixed}
	}

	instruction.fn(c)

	if c.trace {
		c.Log.Debugf("%04X  %-16s %s hash=%016x", pc, instruction.name, c.Registers.String(), c.Hash())
	}
	return nil
}

// hasInterrupts reports whether an enabled interrupt has been
// requested. IE and IF are inspected without costing any cycles.
func (c *CPU) hasInterrupts() bool {
	return c.pendingInterrupts() != 0
}

func (c *CPU) pendingInterrupts() uint8 {
	return interrupts.Pending(c.bus.Read(types.IF), c.bus.Read(types.IE))
}

// executeInterrupt pushes PC onto the stack and jumps to the
// vector of the highest priority pending interrupt, taking
// 5 machine cycles.
func (c *CPU) executeInterrupt() {
	if c.mode == ModeHaltBug {
		// EI followed by HALT: the interrupt returns to the HALT
		// itself, and the vector is fetched normally
		c.pc--
		c.mode = ModeNormal
	}
	c.tickCycle()
	c.tickCycle()

	high, low := uint8(c.pc>>8), uint8(c.pc)
	c.DecrementSP()
	c.writeByte(c.sp, high)

	// the vector is resolved between the two pushes, so writing the
	// high byte of PC over IE can cancel the interrupt
	flag, vector, ok := interrupts.Vector(c.pendingInterrupts())

	c.DecrementSP()
	c.writeByte(c.sp, low)

	c.ime = false
	if ok {
		c.bus.Write(types.IF, bits.Reset(c.bus.Read(types.IF), flagIndex(flag)))
		c.pc = vector
		c.Log.Debugf("interrupt %02X serviced, jumping to %04X", flag, vector)
	} else {
		c.pc = 0x0000
	}

	c.tickCycle()
}

// flagIndex returns the index of the single bit set in flag.
func flagIndex(flag uint8) uint8 {
	for i := uint8(0); i < 8; i++ {
		if bits.Test(flag, i) {
			return i
		}
	}
	return 0
}

// tickCycle advances the CPU by a single machine cycle.
func (c *CPU) tickCycle() {
	c.currentTick++
}

// readInstruction reads the next opcode from memory.
func (c *CPU) readInstruction() uint8 {
	value := c.readByte(c.pc)
	if c.mode == ModeHaltBug {
		// the halt bug fails to increment PC, so the byte
		// following HALT is read twice
		c.mode = ModeNormal
	} else {
		c.pc++
	}
	return value
}

// readOperand reads the next operand from memory.
func (c *CPU) readOperand() uint8 {
	value := c.readByte(c.pc)
	c.pc++
	return value
}

// readOperand16 reads the next two operands from memory,
// as a little endian uint16.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return bits.FromBytes(low, high)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	c.tickCycle()
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.tickCycle()
	c.bus.Write(addr, val)
}

// push pushes a 16-bit value onto the stack, high byte first.
func (c *CPU) push(value uint16) {
	low, high := bits.ToBytes(value)
	c.DecrementSP()
	c.writeByte(c.sp, high)
	c.DecrementSP()
	c.writeByte(c.sp, low)
}

// pop pops a 16-bit value off the stack.
func (c *CPU) pop() uint16 {
	low := c.readByte(c.sp)
	c.IncrementSP()
	high := c.readByte(c.sp)
	c.IncrementSP()
	return bits.FromBytes(low, high)
}

// setFlags replaces all four flags.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.f = Flags{zero: zero, subtract: subtract, halfCarry: halfCarry, carry: carry}
}
