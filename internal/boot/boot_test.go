package boot

import (
	"errors"
	"testing"

	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
)

func TestLoadBootROM(t *testing.T) {
	t.Run("invalid length", func(t *testing.T) {
		if _, err := LoadBootROM(make([]byte, 100)); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("expected ErrInvalidLength, got %v", err)
		}
	})
	t.Run("unknown", func(t *testing.T) {
		rom, err := LoadBootROM(make([]byte, 256))
		if err != nil {
			t.Fatal(err)
		}
		if rom.Model() != "unknown" {
			t.Errorf("expected unknown model, got %s", rom.Model())
		}
		if rom.Hardware() != types.Unset {
			t.Errorf("expected Unset hardware, got %s", rom.Hardware())
		}
		if len(rom.Checksum()) != 32 {
			t.Errorf("expected an md5 hex checksum, got %q", rom.Checksum())
		}
	})
	t.Run("nil", func(t *testing.T) {
		var rom *ROM
		if rom.Model() != "none" || rom.Checksum() != "" {
			t.Errorf("expected a nil rom to report no model")
		}
	})
}

func TestOverlay(t *testing.T) {
	raw := make([]byte, 256)
	raw[0x00] = 0x31
	raw[0xFF] = 0xE0
	rom, err := LoadBootROM(raw)
	if err != nil {
		t.Fatal(err)
	}

	bus := ram.NewRAMWith(0x0000, []byte{0xAA})
	bus.Write(0x0100, 0xBB)
	o := NewOverlay(rom, bus)

	if v := o.Read(0x0000); v != 0x31 {
		t.Errorf("expected boot rom at 0x0000, got 0x%02X", v)
	}
	if v := o.Read(0x00FF); v != 0xE0 {
		t.Errorf("expected boot rom at 0x00FF, got 0x%02X", v)
	}
	if v := o.Read(0x0100); v != 0xBB {
		t.Errorf("expected cartridge at 0x0100, got 0x%02X", v)
	}

	o.Write(types.BDIS, 0x00)
	if !o.Enabled() {
		t.Fatal("expected writing 0 to BDIS to leave the boot rom mapped")
	}
	o.Write(types.BDIS, 0x01)
	if o.Enabled() {
		t.Fatal("expected boot rom to be unmapped")
	}
	if v := o.Read(0x0000); v != 0xAA {
		t.Errorf("expected cartridge at 0x0000 after unmapping, got 0x%02X", v)
	}
}

func TestROM_Hardware(t *testing.T) {
	tests := []struct {
		checksum string
		name     string
		model    types.Model
	}{
		{"a8f84a0ac44da5d3f0ee19f9cea80a8c", "Game Boy (DMG-0)", types.DMG0},
		{"32fbbd84168d3482956eb3c5051637f5", "Game Boy (DMG-01)", types.DMGABC},
		{"dbfce9db9deaa2567f6a84fde55f9680", "Game Boy Color", types.CGBABC},
		{"00000000000000000000000000000000", "unknown", types.Unset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rom := &ROM{checksum: tt.checksum}
			if rom.Model() != tt.name {
				t.Errorf("expected %s, got %s", tt.name, rom.Model())
			}
			if rom.Hardware() != tt.model {
				t.Errorf("expected %s, got %s", tt.model, rom.Hardware())
			}
		})
	}
	var rom *ROM
	if rom.Hardware() != types.Unset {
		t.Errorf("expected a nil rom to be Unset")
	}
}
