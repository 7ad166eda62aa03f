// Package pkm3text implements the Generation III Pokémon text encoding.
//
// The cartridge format stores text as one byte per character with a
// terminator byte at the end of every string. Two mutually exclusive
// regional variants exist:
//   - Western: basic Latin letters, digits, accented Latin characters,
//     punctuation and Pokémon-specific glyphs (♂, ♀, …)
//   - Japanese: hiragana, katakana and full-width punctuation, occupying
//     a low byte range the Western variant largely leaves undefined
//
// # Character Maps
//
// Each variant is backed by an immutable CharMap: a direct byte→rune
// lookup table plus its exact inverse, checked for bijectivity when the
// package initializes. Two control bytes are reserved in both variants
// and never appear as content: the terminator (0xFF) and the line break
// (0xFE, the encoded form of '\n').
//
// # Encoding and Decoding
//
// A Codec owns one CharMap and performs the transform:
//
//	data := pkm3text.WesternCodec().Encode("HELLO", pkm3text.Strict)
//	text, err := pkm3text.WesternCodec().Decode(data, pkm3text.Strict)
//
// Encoding never fails: characters outside the map's domain are silently
// replaced with the space byte (or 0x00), matching what the games do.
// Decoding of a byte outside the map is governed by an ErrorMode: Strict
// fails with a DecodeError carrying the byte and its offset, Replace
// substitutes '?', Ignore drops the byte.
//
// # Auto-Detection
//
// The package-level Encode and Decode entry points pick the variant from
// the input itself: text made entirely of Japanese-domain characters with
// at least one character missing from the Western domain encodes as
// Japanese; data containing a byte in the Japanese-exclusive low range
// decodes as Japanese. Everything else is Western. EncodeJapanese and
// DecodeJapanese bypass detection.
//
// # Host Integration
//
// Named codecs are available through a process-wide registry
// (Lookup("pkm3"), Lookup("pkm3jap")), through StreamReader/StreamWriter
// adapters over injected io values, and as golang.org/x/text
// encoding.Encoding implementations (Western, Japanese) for use with the
// standard transform machinery.
package pkm3text
