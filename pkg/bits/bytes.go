package bits

// FromBytes creates an uint16 from its low and high bytes.
//
//	FromBytes(0xAA, 0xBB) == 0xBBAA
func FromBytes(low, high uint8) uint16 {
	return uint16(low) | uint16(high)<<8
}

// ToBytes splits value into its low and high bytes,
// the inverse of FromBytes.
func ToBytes(value uint16) (low, high uint8) {
	return uint8(value), uint8(value >> 8)
}
