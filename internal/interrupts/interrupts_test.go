package interrupts

import "testing"

func TestVector(t *testing.T) {
	tests := []struct {
		name    string
		pending uint8
		flag    uint8
		address uint16
		ok      bool
	}{
		{"none", 0x00, 0, 0, false},
		{"unused bits", 0xE0, 0, 0, false},
		{"vblank", VBlankFlag, VBlankFlag, 0x40, true},
		{"lcd", LCDFlag, LCDFlag, 0x48, true},
		{"timer", TimerFlag, TimerFlag, 0x50, true},
		{"serial", SerialFlag, SerialFlag, 0x58, true},
		{"joypad", JoypadFlag, JoypadFlag, 0x60, true},
		{"priority", TimerFlag | JoypadFlag | LCDFlag, LCDFlag, 0x48, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag, address, ok := Vector(tt.pending)
			if flag != tt.flag || address != tt.address || ok != tt.ok {
				t.Errorf("expected (%02X, %04X, %v), got (%02X, %04X, %v)", tt.flag, tt.address, tt.ok, flag, address, ok)
			}
		})
	}
}

func TestPending(t *testing.T) {
	if got := Pending(0xFF, TimerFlag); got != TimerFlag {
		t.Errorf("expected only the enabled timer interrupt, got %02X", got)
	}
	if got := Pending(0xE0, 0xFF); got != 0 {
		t.Errorf("expected unused bits to be ignored, got %02X", got)
	}
}
