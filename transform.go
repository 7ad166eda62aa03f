package pkm3text

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Western and Japanese expose the two variants through the standard
// golang.org/x/text encoding machinery, for callers that consume
// encoding.Encoding rather than this package's API.
//
// The transformers follow the cartridge framing: the encoder appends the
// terminator when the stream ends, the decoder stops emitting at the
// first terminator and discards the rest. A transform stream has no
// per-call error mode, so the decoder resolves undefined bytes the way
// Replace does ('?'); strict decoding is available on Codec.Decode.
var (
	Western  encoding.Encoding = pkEncoding{c: westernCodec, name: "PKM3 Western"}
	Japanese encoding.Encoding = pkEncoding{c: japaneseCodec, name: "PKM3 Japanese"}
)

type pkEncoding struct {
	c    *Codec
	name string
}

func (e pkEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &pkDecoder{cm: e.c.cm}}
}

func (e pkEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &pkEncoder{cm: e.c.cm}}
}

func (e pkEncoding) String() string { return e.name }

type pkEncoder struct {
	cm         *CharMap
	terminated bool
}

func (e *pkEncoder) Reset() { e.terminated = false }

func (e *pkEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	fallback := byte(0x00)
	if b, ok := e.cm.ByteForRune(' '); ok {
		fallback = b
	}

	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst == len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		switch {
		case r == '\n':
			dst[nDst] = e.cm.LineBreak()
		default:
			if b, ok := e.cm.ByteForRune(r); ok {
				dst[nDst] = b
			} else {
				dst[nDst] = fallback
			}
		}
		nDst++
		nSrc += size
	}

	if atEOF && !e.terminated {
		if nDst == len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = e.cm.Terminator()
		nDst++
		e.terminated = true
	}
	return nDst, nSrc, nil
}

type pkDecoder struct {
	cm   *CharMap
	done bool
}

func (d *pkDecoder) Reset() { d.done = false }

func (d *pkDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if d.done {
		// Past the terminator: swallow the rest of the stream.
		return 0, len(src), nil
	}

	for nSrc < len(src) {
		b := src[nSrc]

		if b == d.cm.Terminator() {
			d.done = true
			return nDst, len(src), nil
		}

		r := rune('\n')
		if b != d.cm.LineBreak() {
			var ok bool
			if r, ok = d.cm.RuneForByte(b); !ok {
				r = replacementRune
			}
		}

		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return nDst, nSrc, nil
}
