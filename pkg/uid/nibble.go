package uid

// packQuad packs 4 decimal digits into a uint16, one nibble per digit,
// most significant nibble first: [1,2,3,4] -> 0x1234. Because the digits
// are decimal, numeric order of the packed value matches lexicographic
// order of the digit sequence.
func packQuad(d []uint8) uint16 {
	return uint16(d[0]&0x0f)<<12 |
		uint16(d[1]&0x0f)<<8 |
		uint16(d[2]&0x0f)<<4 |
		uint16(d[3]&0x0f)
}

// unpackQuad splits a uint16 back into its 4 nibbles, most significant
// first.
func unpackQuad(n uint16) [4]uint8 {
	return [4]uint8{
		uint8(n >> 12),
		uint8(n>>8) & 0x0f,
		uint8(n>>4) & 0x0f,
		uint8(n) & 0x0f,
	}
}
