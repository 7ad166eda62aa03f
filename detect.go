package pkm3text

import "unicode/utf8"

// detectRangeMax bounds the byte range probed by decode-side detection.
// Everything at or below it is kana content in the Japanese variant, so a
// byte here that the Western map leaves undefined can only be Japanese.
const detectRangeMax = 0xA0

// DetectEncoding picks the codec for text whose variant the caller does
// not know: Japanese when every character belongs to the Japanese domain
// and at least one is absent from the Western domain, Western otherwise.
//
// Pure-ASCII text therefore always selects Western, and so does text
// mixing Japanese with characters outside both domains (those characters
// then hit Encode's lossy fallback). '\n' is a control character, not a
// member of either domain, so multi-line Japanese text also falls back to
// Western; callers that know the language should use the forced entry
// points instead.
func DetectEncoding(text string) *Codec {
	allJapanese := true
	anyOutsideWestern := false

	for _, r := range text {
		if !JapaneseMap.HasRune(r) {
			allJapanese = false
			break
		}
		if !WesternMap.HasRune(r) {
			anyOutsideWestern = true
		}
	}

	if allJapanese && anyOutsideWestern {
		return japaneseCodec
	}
	return westernCodec
}

// DetectDecoding picks the codec for raw bytes: Japanese when any byte in
// the low content range (0x00–0xA0) is undefined in the Western map,
// Western otherwise.
func DetectDecoding(data []byte) *Codec {
	for _, b := range data {
		if b <= detectRangeMax && !WesternMap.HasByte(b) {
			return japaneseCodec
		}
	}
	return westernCodec
}

// Encode converts text using the auto-detected variant and reports the
// encoded bytes along with the number of input characters consumed.
func Encode(text string, mode ErrorMode) ([]byte, int) {
	c := DetectEncoding(text)
	return c.Encode(text, mode), utf8.RuneCountInString(text)
}

// EncodeJapanese converts text using the Japanese variant unconditionally,
// bypassing detection.
func EncodeJapanese(text string, mode ErrorMode) ([]byte, int) {
	return japaneseCodec.Encode(text, mode), utf8.RuneCountInString(text)
}

// Decode converts bytes using the auto-detected variant and reports the
// decoded text along with the number of input bytes consumed.
func Decode(data []byte, mode ErrorMode) (string, int, error) {
	c := DetectDecoding(data)
	text, err := c.Decode(data, mode)
	if err != nil {
		return "", 0, err
	}
	return text, len(data), nil
}

// DecodeJapanese converts bytes using the Japanese variant
// unconditionally, bypassing detection.
func DecodeJapanese(data []byte, mode ErrorMode) (string, int, error) {
	text, err := japaneseCodec.Decode(data, mode)
	if err != nil {
		return "", 0, err
	}
	return text, len(data), nil
}
