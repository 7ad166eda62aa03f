package pkm3text

import (
	"fmt"
	"strings"
)

// ErrorMode selects how Decode treats bytes outside the active map's
// domain. It has no effect on Encode, which never fails.
type ErrorMode int

const (
	// Strict fails the decode, reporting the offending byte and offset.
	Strict ErrorMode = iota
	// Replace substitutes '?' for the offending byte and continues.
	Replace
	// Ignore drops the offending byte and continues.
	Ignore
)

// String returns the mode's canonical name.
func (m ErrorMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Replace:
		return "replace"
	case Ignore:
		return "ignore"
	default:
		return "replace"
	}
}

// ParseErrorMode maps a mode name to an ErrorMode, case-insensitively.
// Unrecognized names resolve to Replace, the same defensive default the
// decoder applies to out-of-range mode values.
func ParseErrorMode(s string) ErrorMode {
	switch strings.ToLower(s) {
	case "strict":
		return Strict
	case "ignore":
		return Ignore
	default:
		return Replace
	}
}

// DecodeError reports a byte outside the active map's domain during a
// Strict decode. No partial text accompanies it.
type DecodeError struct {
	Byte   byte // the offending byte value
	Offset int  // its position in the input
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pkm3text: invalid byte 0x%02X at offset %d", e.Byte, e.Offset)
}

// replacementRune substitutes undefined bytes under Replace mode.
const replacementRune = '?'

// Codec encodes and decodes text for a single regional variant. It holds
// only a CharMap reference and no other state, so one instance may be
// shared freely across goroutines.
type Codec struct {
	cm *CharMap
}

var (
	westernCodec  = &Codec{cm: WesternMap}
	japaneseCodec = &Codec{cm: JapaneseMap}
)

// WesternCodec returns the shared Latin-script codec.
func WesternCodec() *Codec { return westernCodec }

// JapaneseCodec returns the shared kana codec.
func JapaneseCodec() *Codec { return japaneseCodec }

// NewCodec builds a codec around an arbitrary character map. Most callers
// want WesternCodec or JapaneseCodec.
func NewCodec(cm *CharMap) *Codec { return &Codec{cm: cm} }

// Map returns the codec's character map.
func (c *Codec) Map() *CharMap { return c.cm }

// Encode converts text to the cartridge byte format and appends the
// terminator. '\n' becomes the line-break byte. A character outside the
// map's domain is replaced with the space byte (0x00 if the map has no
// space) regardless of mode — encoding never fails, so round-tripping is
// lossy for out-of-domain input. Empty input encodes to a lone terminator.
func (c *Codec) Encode(text string, _ ErrorMode) []byte {
	fallback := byte(0x00)
	if b, ok := c.cm.ByteForRune(' '); ok {
		fallback = b
	}

	out := make([]byte, 0, len(text)+1)
	for _, r := range text {
		switch {
		case r == '\n':
			out = append(out, c.cm.LineBreak())
		default:
			if b, ok := c.cm.ByteForRune(r); ok {
				out = append(out, b)
			} else {
				out = append(out, fallback)
			}
		}
	}
	return append(out, c.cm.Terminator())
}

// Decode converts cartridge bytes back to text. Scanning stops at the
// first terminator; anything after it is discarded. A missing terminator
// is not an error — all supplied bytes are decoded. Bytes outside the
// map's domain are resolved per mode; only Strict surfaces an error, a
// *DecodeError carrying the byte and its offset.
func (c *Codec) Decode(data []byte, mode ErrorMode) (string, error) {
	var sb strings.Builder
	sb.Grow(len(data))

	for i, b := range data {
		switch {
		case b == c.cm.Terminator():
			return sb.String(), nil
		case b == c.cm.LineBreak():
			sb.WriteByte('\n')
		default:
			if r, ok := c.cm.RuneForByte(b); ok {
				sb.WriteRune(r)
				continue
			}
			switch mode {
			case Strict:
				return "", &DecodeError{Byte: b, Offset: i}
			case Ignore:
				// Skip the byte, emit nothing.
			default:
				sb.WriteRune(replacementRune)
			}
		}
	}
	return sb.String(), nil
}
