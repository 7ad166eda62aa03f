package pkm3text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *Codec
	}{
		{"ascii", "PIKACHU", westernCodec},
		{"empty", "", westernCodec},
		{"pure hiragana", "あいうえお", japaneseCodec},
		{"pure katakana", "ピカチュウ", japaneseCodec},
		{"japanese with full-width digits", "１０まんボルト！", japaneseCodec},
		// ♂ lives in both domains and alone gives no Japanese signal.
		{"shared glyphs only", "♂♀", westernCodec},
		// The emoji is outside both domains, so the all-Japanese test
		// fails and the lossy Western fallback applies.
		{"japanese plus unmapped", "あいう😊", westernCodec},
		// '\n' is a control character, not a domain member.
		{"japanese with newline", "あい\nうえ", westernCodec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, DetectEncoding(tt.text))
		})
	}
}

func TestDetectDecoding(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want *Codec
	}{
		{"empty", nil, westernCodec},
		{"ascii range", []byte{0xC2, 0xBF, 0xC6, 0xC6, 0xC9, 0xFF}, westernCodec},
		// 0x01-0x05 are accented Latin cells in the Western map, so
		// nothing here is Japanese-exclusive.
		{"low bytes shared with western", []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0xFF}, westernCodec},
		// 0x0A ('こ') is undefined in the Western map.
		{"japanese exclusive byte", []byte{0x0A, 0x2E, 0x16, 0x11, 0x1A, 0xFF}, japaneseCodec},
		{"kana block", []byte{0x3F, 0x41, 0x50, 0xFF}, japaneseCodec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, DetectDecoding(tt.data))
		})
	}
}

func TestEncode_AutoDetect(t *testing.T) {
	data, n := Encode("HELLO", Strict)
	assert.Equal(t, []byte{0xC2, 0xBF, 0xC6, 0xC6, 0xC9, 0xFF}, data)
	assert.Equal(t, 5, n, "count is input characters, not bytes")

	data, n = Encode("こんにちは", Strict)
	assert.Equal(t, []byte{0x0A, 0x2E, 0x16, 0x11, 0x1A, 0xFF}, data)
	assert.Equal(t, 5, n)
}

func TestDecode_AutoDetect(t *testing.T) {
	text, n, err := Decode([]byte{0x0A, 0x2E, 0x16, 0x11, 0x1A, 0xFF}, Strict)
	require.NoError(t, err)
	assert.Equal(t, "こんにちは", text)
	assert.Equal(t, 6, n)

	text, n, err = Decode([]byte{0xC2, 0xBF, 0xC6, 0xC6, 0xC9, 0xFF}, Strict)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", text)
	assert.Equal(t, 6, n)
}

func TestJapaneseForcedEntryPoints(t *testing.T) {
	// "あいうえお" would decode as accented Latin under auto-detection;
	// the forced entry points bypass it.
	data, n := EncodeJapanese("あいうえお", Strict)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0xFF}, data)
	assert.Equal(t, 5, n)

	text, n, err := DecodeJapanese(data, Strict)
	require.NoError(t, err)
	assert.Equal(t, "あいうえお", text)
	assert.Equal(t, 6, n)
}

func TestDecode_StrictErrorYieldsNoCount(t *testing.T) {
	_, n, err := Decode([]byte{0x0A, 0xFB}, Strict)
	require.Error(t, err)
	assert.Zero(t, n)
}
