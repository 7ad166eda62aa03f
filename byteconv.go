package pkm3text

// Byte/integer helpers for the numeric fields that sit next to encoded
// text in the cartridge data (trainer IDs, item counts and the like).
// The GBA is little-endian and so is this format.

// ToInt interprets data as a little-endian unsigned integer. Only the
// first 8 bytes participate; an empty slice yields 0.
func ToInt(data []byte) uint64 {
	var v uint64
	for i, b := range data {
		if i == 8 {
			break
		}
		v |= uint64(b) << (8 * i)
	}
	return v
}

// FromInt renders v as width little-endian bytes. Negative widths are
// treated as zero; values wider than width bytes are truncated to the
// low-order bytes.
func FromInt(v uint64, width int) []byte {
	if width < 0 {
		width = 0
	}
	out := make([]byte, width)
	for i := range out {
		out[i] = byte(v >> (8 * i))
	}
	return out
}
