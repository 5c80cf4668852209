package types

// Bit0 through Bit7 mask a single bit of a hardware register,
// such as F, IF or IE.
const (
	Bit0 uint8 = 0x01
	Bit1 uint8 = 0x02
	Bit2 uint8 = 0x04
	Bit3 uint8 = 0x08
	Bit4 uint8 = 0x10
	Bit5 uint8 = 0x20
	Bit6 uint8 = 0x40
	Bit7 uint8 = 0x80
)
