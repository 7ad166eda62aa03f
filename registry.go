package pkm3text

import (
	"errors"
	"io"
	"strings"
	"sync"
)

// EncodeFunc is a registry encode entry point: encoded bytes plus the
// number of input characters consumed.
type EncodeFunc func(text string, mode ErrorMode) ([]byte, int)

// DecodeFunc is a registry decode entry point: decoded text plus the
// number of input bytes consumed.
type DecodeFunc func(data []byte, mode ErrorMode) (string, int, error)

// CodecInfo bundles the four capabilities a registered codec must expose.
type CodecInfo struct {
	Name      string
	Encode    EncodeFunc
	Decode    DecodeFunc
	NewReader func(r io.Reader) *StreamReader
	NewWriter func(w io.Writer) *StreamWriter
}

// ErrIncompleteCodec rejects a registration that is missing one of the
// four required capabilities.
var ErrIncompleteCodec = errors.New("pkm3text: codec registration requires encode, decode, reader and writer")

var registry = struct {
	mu      sync.RWMutex
	byAlias map[string]*CodecInfo
}{byAlias: make(map[string]*CodecInfo)}

// Register installs a codec in the process-wide registry under its name
// and any extra aliases, case-insensitively. All four capabilities must
// be present. Re-registering an alias replaces the previous entry, so
// repeating the same registration is harmless.
func Register(info CodecInfo, aliases ...string) error {
	if info.Name == "" || info.Encode == nil || info.Decode == nil ||
		info.NewReader == nil || info.NewWriter == nil {
		return ErrIncompleteCodec
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.byAlias[strings.ToLower(info.Name)] = &info
	for _, alias := range aliases {
		registry.byAlias[strings.ToLower(alias)] = &info
	}
	return nil
}

// Lookup resolves a codec name or alias, case-insensitively. An
// unrecognized name returns nil rather than an error.
func Lookup(name string) *CodecInfo {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.byAlias[strings.ToLower(name)]
}

func init() {
	// Built-in registrations cannot fail: both entries carry all four
	// capabilities by construction.
	_ = Register(CodecInfo{
		Name:      "pkm3",
		Encode:    Encode,
		Decode:    Decode,
		NewReader: NewStreamReader,
		NewWriter: NewStreamWriter,
	}, "pkm3codec")

	_ = Register(CodecInfo{
		Name:      "pkm3jap",
		Encode:    EncodeJapanese,
		Decode:    DecodeJapanese,
		NewReader: NewJapaneseStreamReader,
		NewWriter: NewJapaneseStreamWriter,
	}, "pkm3japanese")
}
