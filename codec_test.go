package pkm3text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================
// Western encoding
// ============================================================

func TestWestern_Encode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []byte // without terminator
	}{
		{"upper case", "HELLO", []byte{0xC2, 0xBF, 0xC6, 0xC6, 0xC9}},
		{"lower case", "hello", []byte{0xDC, 0xD9, 0xE0, 0xE0, 0xE3}},
		{"digits and punctuation", "123!?", []byte{0xA2, 0xA3, 0xA4, 0xAB, 0xAC}},
		{"gender glyphs", "♂♀", []byte{0xB5, 0xB6}},
		{"accented", "éÉèÈ", []byte{0x1B, 0x06, 0x1A, 0x05}},
		{"line break", "Line1\nLine2", []byte{0xC6, 0xDD, 0xE2, 0xD9, 0xA2, 0xFE, 0xC6, 0xDD, 0xE2, 0xD9, 0xA3}},
	}

	c := WesternCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Encode(tt.text, Strict)
			require.NotEmpty(t, got)
			assert.Equal(t, Terminator, got[len(got)-1], "missing terminator")
			assert.Equal(t, tt.want, got[:len(got)-1])
		})
	}
}

func TestWestern_Decode(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"upper case", []byte{0xC2, 0xBF, 0xC6, 0xC6, 0xC9, 0xFF}, "HELLO"},
		{"lower case", []byte{0xDC, 0xD9, 0xE0, 0xE0, 0xE3, 0xFF}, "hello"},
		{"digits and punctuation", []byte{0xA2, 0xA3, 0xA4, 0xAB, 0xAC, 0xFF}, "123!?"},
		{"gender glyphs", []byte{0xB5, 0xB6, 0xFF}, "♂♀"},
		{"line break", []byte{0xC6, 0xDD, 0xE2, 0xD9, 0xA2, 0xFE, 0xC6, 0xDD, 0xE2, 0xD9, 0xA3, 0xFF}, "Line1\nLine2"},
		{"no terminator", []byte{0xC2, 0xBF, 0xC6, 0xC6, 0xC9}, "HELLO"},
		{"bytes after terminator discarded", []byte{0xC2, 0xFF, 0xBF, 0xC6}, "H"},
		{"lone terminator", []byte{0xFF}, ""},
	}

	c := WesternCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Decode(tt.data, Strict)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ============================================================
// Japanese encoding
// ============================================================

func TestJapanese_Encode(t *testing.T) {
	c := JapaneseCodec()

	encoded := c.Encode("あいうえお", Strict)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0xFF}, encoded)

	encoded = c.Encode("アイウエオ", Strict)
	assert.Equal(t, []byte{0x51, 0x52, 0x53, 0x54, 0x55, 0xFF}, encoded)
}

func TestJapanese_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"hiragana", "あいうえお"},
		{"katakana", "アイウエオ"},
		{"mixed", "ポケモン　ゲットだぜ！"},
		{"punctuation", "「こんにちは。」"},
		{"multi line", "ピカチュウ\n１０まんボルト"},
	}

	c := JapaneseCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := c.Decode(c.Encode(tt.text, Strict), Strict)
			require.NoError(t, err)
			assert.Equal(t, tt.text, decoded)
		})
	}
}

// ============================================================
// Shared behavior
// ============================================================

func TestCodec_EmptyString(t *testing.T) {
	for _, c := range []*Codec{WesternCodec(), JapaneseCodec()} {
		t.Run(c.Map().Name(), func(t *testing.T) {
			encoded := c.Encode("", Strict)
			assert.Equal(t, []byte{Terminator}, encoded)

			decoded, err := c.Decode(encoded, Strict)
			require.NoError(t, err)
			assert.Equal(t, "", decoded)
		})
	}
}

// Every rune in a map's domain, plus newline, must survive an
// encode/decode round trip under both Strict and Replace.
func TestCodec_RoundTripFullDomain(t *testing.T) {
	for _, c := range []*Codec{WesternCodec(), JapaneseCodec()} {
		t.Run(c.Map().Name(), func(t *testing.T) {
			var sb strings.Builder
			for i := 0; i < 256; i++ {
				if r, ok := c.Map().RuneForByte(byte(i)); ok {
					sb.WriteRune(r)
				}
			}
			sb.WriteRune('\n')
			text := sb.String()

			for _, mode := range []ErrorMode{Strict, Replace} {
				decoded, err := c.Decode(c.Encode(text, mode), mode)
				require.NoError(t, err, "mode %v", mode)
				assert.Equal(t, text, decoded, "mode %v", mode)
			}
		})
	}
}

func TestEncode_UnmappedNeverFails(t *testing.T) {
	c := WesternCodec()

	// The emoji is outside the Western domain and becomes a space.
	encoded := c.Encode("Hello 😊 World", Strict)
	decoded, err := c.Decode(encoded, Strict)
	require.NoError(t, err)
	assert.Equal(t, "Hello   World", decoded)

	// The Japanese map has no ASCII space, so the fallback is 0x00,
	// which decodes as the ideographic space.
	jc := JapaneseCodec()
	assert.Equal(t, []byte{0x00, Terminator}, jc.Encode("A", Strict))
}

func TestDecode_ErrorModes(t *testing.T) {
	// 0x50 is undefined in the Western map ('っ' in the Japanese one).
	data := []byte{0xC2, 0x50, 0xBF, 0xFF}
	c := WesternCodec()

	t.Run("strict", func(t *testing.T) {
		text, err := c.Decode(data, Strict)
		assert.Empty(t, text, "strict decode must not yield partial text")

		var derr *DecodeError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, byte(0x50), derr.Byte)
		assert.Equal(t, 1, derr.Offset)
	})

	t.Run("replace", func(t *testing.T) {
		text, err := c.Decode(data, Replace)
		require.NoError(t, err)
		assert.Equal(t, "H?E", text)
	})

	t.Run("ignore", func(t *testing.T) {
		text, err := c.Decode(data, Ignore)
		require.NoError(t, err)
		assert.Equal(t, "HE", text)
	})

	t.Run("unknown mode behaves as replace", func(t *testing.T) {
		text, err := c.Decode(data, ErrorMode(99))
		require.NoError(t, err)
		assert.Equal(t, "H?E", text)
	})
}

func TestParseErrorMode(t *testing.T) {
	assert.Equal(t, Strict, ParseErrorMode("strict"))
	assert.Equal(t, Strict, ParseErrorMode("STRICT"))
	assert.Equal(t, Ignore, ParseErrorMode("ignore"))
	assert.Equal(t, Replace, ParseErrorMode("replace"))
	assert.Equal(t, Replace, ParseErrorMode("bogus"))
}

func TestDecodeError_Message(t *testing.T) {
	err := &DecodeError{Byte: 0x50, Offset: 3}
	assert.EqualError(t, err, "pkm3text: invalid byte 0x50 at offset 3")
}
