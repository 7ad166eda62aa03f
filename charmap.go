package pkm3text

import "fmt"

// Reserved control bytes, shared by both regional variants. They are not
// content: neither may appear as a cell in a character table.
const (
	// Terminator ends every encoded string. Bytes after it in a buffer
	// are not part of the string.
	Terminator byte = 0xFF

	// LineBreak is the encoded representation of '\n'.
	LineBreak byte = 0xFE
)

// CharMap is an immutable bijective table between byte values and runes,
// plus the two reserved control bytes. Both variants are built once as
// package-level instances and never mutated afterward, so a CharMap is
// safe for concurrent use without locking.
type CharMap struct {
	name       string
	terminator byte
	lineBreak  byte
	byteToRune [256]rune
	defined    [256]bool
	runeToByte map[rune]byte
}

// newCharMap builds a CharMap from a byte→rune cell table. The table must
// be injective in both directions and must not touch the reserved bytes;
// a violation is a construction-time defect and panics.
func newCharMap(name string, cells map[byte]rune) *CharMap {
	m := &CharMap{
		name:       name,
		terminator: Terminator,
		lineBreak:  LineBreak,
		runeToByte: make(map[rune]byte, len(cells)),
	}

	for b, r := range cells {
		if b == m.terminator || b == m.lineBreak {
			panic(fmt.Sprintf("pkm3text: %s map assigns reserved byte 0x%02X", name, b))
		}
		if prev, dup := m.runeToByte[r]; dup {
			panic(fmt.Sprintf("pkm3text: %s map assigns %q to both 0x%02X and 0x%02X", name, r, prev, b))
		}
		m.byteToRune[b] = r
		m.defined[b] = true
		m.runeToByte[r] = b
	}

	return m
}

// Name returns the variant name ("western" or "japanese").
func (m *CharMap) Name() string { return m.name }

// Terminator returns the end-of-string byte.
func (m *CharMap) Terminator() byte { return m.terminator }

// LineBreak returns the byte that encodes '\n'.
func (m *CharMap) LineBreak() byte { return m.lineBreak }

// Len returns the number of defined content cells.
func (m *CharMap) Len() int { return len(m.runeToByte) }

// RuneForByte returns the rune mapped to b, if any. The reserved control
// bytes are not content and report false.
func (m *CharMap) RuneForByte(b byte) (rune, bool) {
	if !m.defined[b] {
		return 0, false
	}
	return m.byteToRune[b], true
}

// ByteForRune returns the byte mapped to r, if any.
func (m *CharMap) ByteForRune(r rune) (byte, bool) {
	b, ok := m.runeToByte[r]
	return b, ok
}

// HasByte reports whether b is a defined content byte.
func (m *CharMap) HasByte(b byte) bool { return m.defined[b] }

// HasRune reports whether r is in the map's character domain.
func (m *CharMap) HasRune(r rune) bool {
	_, ok := m.runeToByte[r]
	return ok
}
