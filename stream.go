package pkm3text

import "io"

// StreamWriter adapts an encode entry point to an injected byte sink.
// Each WriteString call encodes one full string and writes it in a single
// call to the underlying writer; no state is buffered between calls.
type StreamWriter struct {
	w      io.Writer
	encode EncodeFunc

	// Mode is the ErrorMode applied to each WriteString call. The zero
	// value is Strict, though encode-side behavior does not depend on it.
	Mode ErrorMode
}

// NewStreamWriter returns a writer that auto-detects the variant per
// string.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w, encode: Encode}
}

// NewJapaneseStreamWriter returns a writer forced to the Japanese
// variant.
func NewJapaneseStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w, encode: EncodeJapanese}
}

// WriteString encodes s, writes the encoded bytes (terminator included)
// to the sink, and returns the number of input characters consumed — not
// the number of bytes written.
func (sw *StreamWriter) WriteString(s string) (int, error) {
	data, n := sw.encode(s, sw.Mode)
	if _, err := sw.w.Write(data); err != nil {
		return 0, err
	}
	return n, nil
}

// StreamReader adapts a decode entry point to an injected byte source.
// Each ReadString call drains the source and decodes the whole chunk.
type StreamReader struct {
	r      io.Reader
	decode DecodeFunc

	// Mode is the ErrorMode applied to each ReadString call. The zero
	// value is Strict.
	Mode ErrorMode
}

// NewStreamReader returns a reader that auto-detects the variant per
// chunk.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: r, decode: Decode}
}

// NewJapaneseStreamReader returns a reader forced to the Japanese
// variant.
func NewJapaneseStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: r, decode: DecodeJapanese}
}

// ReadString reads the source to EOF and decodes everything read. A
// source with no terminator byte still decodes fully.
func (sr *StreamReader) ReadString() (string, error) {
	data, err := io.ReadAll(sr.r)
	if err != nil {
		return "", err
	}
	text, _, err := sr.decode(data, sr.Mode)
	return text, err
}
