package cpu

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a CPU
// instance.
type Opt func(c *CPU)

// WithModel sets the model whose post boot ROM register
// values the CPU starts with. Defaults to types.DMG0.
func WithModel(m types.Model) Opt {
	return func(c *CPU) {
		c.model = m
	}
}

// WithBootROM starts the CPU with every register cleared and PC at
// 0x0000, ready to execute a boot ROM mapped by the bus.
func WithBootROM() Opt {
	return func(c *CPU) {
		c.zeroBoot = true
	}
}

// WithLogger sets the logger decode errors and traces are written to.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.Log = l
	}
}

// Trace logs every executed instruction at the debug level.
func Trace() Opt {
	return func(c *CPU) {
		c.trace = true
	}
}

// Debug enables the LD B, B software breakpoint.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}
