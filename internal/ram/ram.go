// Package ram provides a basic RAM implementation, covering the
// full 16-bit address space. It is the simplest bus a CPU can be
// attached to.
package ram

// RAM represents a block of RAM.
type RAM interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

type ram struct {
	data [0x10000]uint8
}

// NewRAM returns a new RAM with every address set to 0.
func NewRAM() RAM {
	return &ram{}
}

// NewRAMWith returns a new RAM with program copied in at the
// given origin. Bytes beyond the end of the address space are
// dropped.
func NewRAMWith(origin uint16, program []byte) RAM {
	r := &ram{}
	copy(r.data[origin:], program)
	return r
}

// Read returns the value at the given address.
func (r *ram) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *ram) Write(address uint16, value uint8) {
	r.data[address] = value
}
