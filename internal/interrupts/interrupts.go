// Package interrupts describes the interrupt sources of the Game Boy,
// as seen by the CPU through the IF and IE hardware registers.
package interrupts

import (
	"github.com/thelolagemann/sm83/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the PPU enters
	// VBlank mode.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), which
	// is requested by the LCD STAT register when certain
	// conditions are met.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// which is requested when a serial transfer is
	// completed.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4),
	// which is requested when any of the selected joypad
	// lines go from high to low.
	JoypadFlag = types.Bit4

	// Mask covers the five interrupt sources; the
	// upper 3 bits of IF and IE are unused.
	Mask = 0x1F
)

// vectorBase is the address the VBlank interrupt jumps to,
// each following source is 8 bytes after the last.
const vectorBase uint16 = 0x0040

// Pending returns the interrupts that are both requested
// and enabled.
func Pending(flag, enable uint8) uint8 {
	return flag & enable & Mask
}

// Vector returns the highest priority interrupt of pending,
// as the flag to acknowledge in IF and the address to jump
// to. Bit 0 (VBlank) has the highest priority. ok is false
// when nothing is pending.
func Vector(pending uint8) (flag uint8, address uint16, ok bool) {
	pending &= Mask
	for i := uint8(0); i < 5; i++ {
		if pending&(1<<i) != 0 {
			return 1 << i, vectorBase + uint16(i)*8, true
		}
	}
	return 0, 0, false
}
