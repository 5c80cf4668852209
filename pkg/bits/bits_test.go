package bits

import "testing"

func TestBytes(t *testing.T) {
	t.Run("FromBytes", func(t *testing.T) {
		if got := FromBytes(0xAA, 0xBB); got != 0xBBAA {
			t.Errorf("expected 0xBBAA, got 0x%04X", got)
		}
	})
	t.Run("ToBytes", func(t *testing.T) {
		low, high := ToBytes(0xBBAA)
		if low != 0xAA || high != 0xBB {
			t.Errorf("expected (0xAA, 0xBB), got (0x%02X, 0x%02X)", low, high)
		}
	})
	t.Run("round trip", func(t *testing.T) {
		for low := 0; low <= 0xFF; low++ {
			for high := 0; high <= 0xFF; high++ {
				l, h := ToBytes(FromBytes(uint8(low), uint8(high)))
				if l != uint8(low) || h != uint8(high) {
					t.Fatalf("expected (0x%02X, 0x%02X), got (0x%02X, 0x%02X)", low, high, l, h)
				}
			}
		}
	})
}

func TestBit8(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		v := Set(uint8(0), i)
		if v != 1<<i {
			t.Errorf("Set(0, %d): expected 0x%02X, got 0x%02X", i, 1<<i, v)
		}
		if !Test(v, i) || Val(v, i) != 1 {
			t.Errorf("bit %d should be set in 0x%02X", i, v)
		}
		if r := Reset(uint8(0xFF), i); Test(r, i) || r|1<<i != 0xFF {
			t.Errorf("Reset(0xFF, %d): got 0x%02X", i, r)
		}
	}
}

func TestBit16(t *testing.T) {
	for i := uint8(0); i < 16; i++ {
		if !Test(uint16(1)<<i, i) {
			t.Errorf("expected bit %d to be set", i)
		}
		if Test(^(uint16(1) << i), i) {
			t.Errorf("expected bit %d to be unset", i)
		}
	}
	if !Test(uint16(0x8000), 15) {
		t.Error("expected bit 15 of 0x8000 to be set")
	}
}

func TestAssign(t *testing.T) {
	tests := []struct {
		in   uint8
		i    uint8
		v    bool
		want uint8
	}{
		{0x00, 7, true, 0x80},
		{0x80, 7, false, 0x00},
		{0x0F, 0, false, 0x0E},
		{0x0E, 0, true, 0x0F},
		{0xAA, 1, true, 0xAA},
	}
	for _, tt := range tests {
		if got := Assign(tt.in, tt.i, tt.v); got != tt.want {
			t.Errorf("Assign(0x%02X, %d, %v): expected 0x%02X, got 0x%02X", tt.in, tt.i, tt.v, tt.want, got)
		}
	}
}
