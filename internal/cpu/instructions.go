package cpu

import "fmt"

func init() {
	defineControl()
	defineLoads()
	defineArithmetic()
	defineJumps()

	for _, opcode := range illegalOpcodes {
		InstructionSet[opcode] = Instruction{name: fmt.Sprintf("ILLEGAL_%02X", opcode), length: 1}
	}
	InstructionSet[0xCB] = Instruction{name: "PREFIX CB", length: 1}
}

// defineControl defines the instructions that control the CPU
// itself or the flags.
func defineControl() {
	DefineInstruction(0x00, "NOP", 1, func(c *CPU) {})
	DefineInstruction(0x10, "STOP", 2, func(c *CPU) {
		// STOP is followed by an ignored byte
		c.pc++
		c.mode = ModeStop
	})
	DefineInstruction(0x76, "HALT", 1, func(c *CPU) {
		if !c.ime && c.hasInterrupts() {
			c.mode = ModeHaltBug
		} else {
			c.mode = ModeHalt
		}
	})
	DefineInstruction(0xF3, "DI", 1, func(c *CPU) {
		c.ime, c.imePending = false, false
	})
	DefineInstruction(0xFB, "EI", 1, func(c *CPU) {
		c.imePending = true
	})

	DefineInstruction(0x07, "RLCA", 1, func(c *CPU) { c.rotateA(rotateOps[0]) })
	DefineInstruction(0x0F, "RRCA", 1, func(c *CPU) { c.rotateA(rotateOps[1]) })
	DefineInstruction(0x17, "RLA", 1, func(c *CPU) { c.rotateA(rotateOps[2]) })
	DefineInstruction(0x1F, "RRA", 1, func(c *CPU) { c.rotateA(rotateOps[3]) })
	DefineInstruction(0x27, "DAA", 1, (*CPU).decimalAdjust)
	DefineInstruction(0x2F, "CPL", 1, func(c *CPU) {
		c.a = ^c.a
		c.setFlags(c.f.zero, true, true, c.f.carry)
	})
	DefineInstruction(0x37, "SCF", 1, func(c *CPU) {
		c.setFlags(c.f.zero, false, false, true)
	})
	DefineInstruction(0x3F, "CCF", 1, func(c *CPU) {
		c.setFlags(c.f.zero, false, false, !c.f.carry)
	})
}

// defineLoads defines the 8 and 16-bit load instructions, as
// well as PUSH and POP.
func defineLoads() {
	for p := uint8(0); p < 4; p++ {
		p := p
		DefineInstruction(0x01|p<<4, "LD "+rpNames[p]+", d16", 3, func(c *CPU) {
			c.setRP(p, c.readOperand16())
		})
		DefineInstruction(0xC1|p<<4, "POP "+rp2Names[p], 1, func(c *CPU) {
			c.setRP2(p, c.pop())
		})
		DefineInstruction(0xC5|p<<4, "PUSH "+rp2Names[p], 1, func(c *CPU) {
			c.tickCycle()
			c.push(c.getRP2(p))
		})
	}

	// LD (rr), A & LD A, (rr)
	indirect := [4]struct {
		name    string
		address func(c *CPU) uint16
	}{
		{"(BC)", func(c *CPU) uint16 { return c.BC() }},
		{"(DE)", func(c *CPU) uint16 { return c.DE() }},
		{"(HL+)", func(c *CPU) uint16 { hl := c.HL(); c.SetHL(hl + 1); return hl }},
		{"(HL-)", func(c *CPU) uint16 { hl := c.HL(); c.SetHL(hl - 1); return hl }},
	}
	for i, ind := range indirect {
		ind := ind
		DefineInstruction(0x02|uint8(i)<<4, "LD "+ind.name+", A", 1, func(c *CPU) {
			c.writeByte(ind.address(c), c.a)
		})
		DefineInstruction(0x0A|uint8(i)<<4, "LD A, "+ind.name, 1, func(c *CPU) {
			c.a = c.readByte(ind.address(c))
		})
	}

	for r := uint8(0); r < 8; r++ {
		r := r
		DefineInstruction(0x06|r<<3, "LD "+r8Names[r]+", d8", 2, func(c *CPU) {
			c.setR8(r, c.readOperand())
		})
	}

	// 0x40 - 0x7F LD r, r (0x76 is HALT)
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == 6 && src == 6 {
				continue
			}
			dst, src := dst, src
			DefineInstruction(0x40|dst<<3|src, "LD "+r8Names[dst]+", "+r8Names[src], 1, func(c *CPU) {
				c.setR8(dst, c.getR8(src))
			})
		}
	}
	// LD B, B is used as a software breakpoint by test ROMs
	DefineInstruction(0x40, "LD B, B", 1, func(c *CPU) {
		if c.Debug {
			c.DebugBreakpoint = true
		}
	})

	DefineInstruction(0x08, "LD (a16), SP", 3, func(c *CPU) {
		address := c.readOperand16()
		c.writeByte(address, uint8(c.sp))
		c.writeByte(address+1, uint8(c.sp>>8))
	})
	DefineInstruction(0xE0, "LDH (a8), A", 2, func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.readOperand()), c.a)
	})
	DefineInstruction(0xF0, "LDH A, (a8)", 2, func(c *CPU) {
		c.a = c.readByte(0xFF00 + uint16(c.readOperand()))
	})
	DefineInstruction(0xE2, "LD (C), A", 1, func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.c), c.a)
	})
	DefineInstruction(0xF2, "LD A, (C)", 1, func(c *CPU) {
		c.a = c.readByte(0xFF00 + uint16(c.c))
	})
	DefineInstruction(0xEA, "LD (a16), A", 3, func(c *CPU) {
		c.writeByte(c.readOperand16(), c.a)
	})
	DefineInstruction(0xFA, "LD A, (a16)", 3, func(c *CPU) {
		c.a = c.readByte(c.readOperand16())
	})
	DefineInstruction(0xF8, "LD HL, SP+r8", 2, func(c *CPU) {
		c.SetHL(c.addSPSigned())
	})
	DefineInstruction(0xF9, "LD SP, HL", 1, func(c *CPU) {
		c.sp = c.HL()
		c.tickCycle()
	})
}

// defineArithmetic defines the 8 and 16-bit arithmetic and
// logic instructions.
func defineArithmetic() {
	for p := uint8(0); p < 4; p++ {
		p := p
		DefineInstruction(0x03|p<<4, "INC "+rpNames[p], 1, func(c *CPU) {
			c.setRP(p, c.getRP(p)+1)
			c.tickCycle()
		})
		DefineInstruction(0x0B|p<<4, "DEC "+rpNames[p], 1, func(c *CPU) {
			c.setRP(p, c.getRP(p)-1)
			c.tickCycle()
		})
		DefineInstruction(0x09|p<<4, "ADD HL, "+rpNames[p], 1, func(c *CPU) {
			c.addHL(c.getRP(p))
		})
	}

	for r := uint8(0); r < 8; r++ {
		r := r
		DefineInstruction(0x04|r<<3, "INC "+r8Names[r], 1, func(c *CPU) {
			c.setR8(r, c.increment(c.getR8(r)))
		})
		DefineInstruction(0x05|r<<3, "DEC "+r8Names[r], 1, func(c *CPU) {
			c.setR8(r, c.decrement(c.getR8(r)))
		})
	}

	// 0x80 - 0xBF ALU A, r & 0xC6 - 0xFE ALU A, d8
	for y := uint8(0); y < 8; y++ {
		op := aluOps[y]
		for r := uint8(0); r < 8; r++ {
			r := r
			DefineInstruction(0x80|y<<3|r, op.name+r8Names[r], 1, func(c *CPU) {
				op.fn(c, c.getR8(r))
			})
		}
		DefineInstruction(0xC6|y<<3, op.name+"d8", 2, func(c *CPU) {
			op.fn(c, c.readOperand())
		})
	}

	DefineInstruction(0xE8, "ADD SP, r8", 2, func(c *CPU) {
		c.sp = c.addSPSigned()
		c.tickCycle()
	})
}

// defineJumps defines the jumps, calls, returns and restarts.
func defineJumps() {
	DefineInstruction(0x18, "JR r8", 2, func(c *CPU) { c.jumpRelative(true) })
	DefineInstruction(0xC3, "JP a16", 3, func(c *CPU) { c.jumpAbsolute(true) })
	DefineInstruction(0xCD, "CALL a16", 3, func(c *CPU) { c.call(true) })
	DefineInstruction(0xC9, "RET", 1, (*CPU).ret)
	DefineInstruction(0xD9, "RETI", 1, func(c *CPU) {
		c.ime, c.imePending = true, false
		c.ret()
	})
	DefineInstruction(0xE9, "JP HL", 1, func(c *CPU) { c.pc = c.HL() })

	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		DefineInstruction(0x20|cc<<3, "JR "+conditionNames[cc]+", r8", 2, func(c *CPU) {
			c.jumpRelative(c.condition(cc))
		})
		DefineInstruction(0xC2|cc<<3, "JP "+conditionNames[cc]+", a16", 3, func(c *CPU) {
			c.jumpAbsolute(c.condition(cc))
		})
		DefineInstruction(0xC4|cc<<3, "CALL "+conditionNames[cc]+", a16", 3, func(c *CPU) {
			c.call(c.condition(cc))
		})
		DefineInstruction(0xC0|cc<<3, "RET "+conditionNames[cc], 1, func(c *CPU) {
			c.retConditional(c.condition(cc))
		})
	}

	for n := uint8(0); n < 8; n++ {
		address := uint16(n) * 8
		DefineInstruction(0xC7|n<<3, fmt.Sprintf("RST %02XH", address), 1, func(c *CPU) {
			c.restart(address)
		})
	}
}
