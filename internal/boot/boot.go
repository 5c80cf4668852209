// Package boot provides a boot ROM implementation for the Game Boy. Whilst
// this package is not strictly required for the CPU to function, it can be
// used to run the boot process from the all-zero register state instead of
// starting from the post-boot register values.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

// ErrInvalidLength is returned when a boot ROM is neither 256
// (DMG/MGB/SGB) nor 2304 (CGB) bytes long.
var ErrInvalidLength = errors.New("boot: invalid boot rom length")

// Bus is the memory the boot ROM is overlaid on top of.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// ROM represents a boot ROM for the Game Boy. When the Game Boy first
// powers on, the boot ROM is mapped to memory addresses 0x0000 -
// 0x00FF (or 0x0000 - 0x00FF & 0x0200 - 0x08FF for the CGB).
//
// Once the boot ROM has completed its tasks, it is unmapped from memory
// (by writing to the types.BDIS register), and the cartridge is mapped
// over the boot ROM, thus starting the cartridge execution, and preventing
// the boot ROM from being executed again.
type ROM struct {
	raw      []byte // the raw boot rom
	checksum string // the MD5 checksum of the boot rom
}

// LoadBootROM loads a boot ROM into a new ROM. The length of b must
// be valid for either DMG/MGB/SGB (256 bytes) or CGB (2304 bytes).
// The MD5 checksum of the boot rom is calculated and stored in the
// ROM, to identify the model it belongs to.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != 256 && len(b) != 2304 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, len(b))
	}

	bootChecksum := md5.Sum(b)

	return &ROM{
		raw:      b,
		checksum: hex.EncodeToString(bootChecksum[:]),
	}, nil
}

// mapped reports whether addr falls inside the boot ROM,
// skipping the CGB cartridge header window at 0x0100 - 0x01FF.
func (b *ROM) mapped(addr uint16) bool {
	if addr < 0x0100 {
		return true
	}
	return len(b.raw) == 2304 && addr >= 0x0200 && int(addr) < len(b.raw)
}

// Read returns the byte at the given address.
func (b *ROM) Read(addr uint16) byte {
	return b.raw[addr]
}

// Overlay maps the boot ROM over bus until the boot ROM disables
// itself by writing a non-zero value to types.BDIS.
type Overlay struct {
	rom     *ROM
	bus     Bus
	enabled bool
}

// NewOverlay returns an Overlay with the boot ROM mapped.
func NewOverlay(rom *ROM, bus Bus) *Overlay {
	return &Overlay{rom: rom, bus: bus, enabled: true}
}

// Enabled reports whether the boot ROM is still mapped.
func (o *Overlay) Enabled() bool {
	return o.enabled
}

// Read reads from the boot ROM while it is mapped, and
// from the bus otherwise.
func (o *Overlay) Read(addr uint16) uint8 {
	if o.enabled && o.rom.mapped(addr) {
		return o.rom.Read(addr)
	}
	return o.bus.Read(addr)
}

// Write passes every write through to the bus.
func (o *Overlay) Write(addr uint16, value uint8) {
	if addr == types.BDIS && o.enabled && value != 0 {
		o.enabled = false
	}
	o.bus.Write(addr, value)
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the name of the hardware the boot rom was
// dumped from, identified by its checksum.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if known, ok := knownBootROMs[b.checksum]; ok {
		return known.name
	}
	return "unknown"
}

// Hardware returns the types.Model the boot rom belongs to, or
// types.Unset if the boot rom is not recognised. The result can
// be given to cpu.WithModel.
func (b *ROM) Hardware() types.Model {
	if b == nil {
		return types.Unset
	}
	return knownBootROMs[b.checksum].model
}

// knownBootROMs maps the MD5 checksum of each official boot
// ROM to the hardware it runs on.
//
// See https://gbdev.gg8.se/wiki/articles/Gameboy_Bootstrap_ROM
var knownBootROMs = map[string]struct {
	name  string
	model types.Model
}{
	"a8f84a0ac44da5d3f0ee19f9cea80a8c": {"Game Boy (DMG-0)", types.DMG0},
	"32fbbd84168d3482956eb3c5051637f5": {"Game Boy (DMG-01)", types.DMGABC},
	"71a378e71ff30b2d8a1f02bf5c7896aa": {"Game Boy Pocket", types.MGB},
	"d574d4f9c12f305074798f54c091a8b4": {"Super Game Boy", types.SGB},
	"e0430bca9925fb9882148fd2dc2418c1": {"Super Game Boy 2", types.SGB2},
	"7c773f3c0b01cb73bca8e83227287b7f": {"Game Boy Color (CGB-0)", types.CGB0},
	"dbfce9db9deaa2567f6a84fde55f9680": {"Game Boy Color", types.CGBABC},
	"e6cefb5f7d352fab6681989763917c73": {"Game Boy Advance", types.AGB},
}
