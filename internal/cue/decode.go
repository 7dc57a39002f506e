package cue

import (
	"bytes"
	"unicode/utf8"

	"github.com/EcoG-One/cue-to-m3u-converter/internal/shared"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw CUE bytes to text, trying encodings in order: UTF-8
// (with BOM stripping), UTF-16 when a byte-order mark is present, then
// Windows-1252 and ISO 8859-1 as single-byte fallbacks.
//
// CUE sheets in the wild carry no encoding declaration, so decoding is best
// effort and only fails with [shared.ErrDecode] once every fallback is
// exhausted.
func Decode(raw []byte) (string, error) {
	if trimmed, ok := bytes.CutPrefix(raw, utf8BOM); ok && utf8.Valid(trimmed) {
		return string(trimmed), nil
	}

	if len(raw) >= 2 && (raw[0] == 0xFF && raw[1] == 0xFE || raw[0] == 0xFE && raw[1] == 0xFF) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if out, err := dec.Bytes(raw); err == nil {
			return string(out), nil
		}
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	for _, enc := range []encoding.Encoding{charmap.Windows1252, charmap.ISO8859_1} {
		if out, err := enc.NewDecoder().Bytes(raw); err == nil {
			return string(out), nil
		}
	}

	return "", shared.ErrDecode
}
