package transcript

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode turns an uploaded export into text. UTF-8 is tried first; anything
// that is not valid UTF-8 is read as ISO-8859-1, which accepts every byte, so
// decoding never rejects a payload.
func Decode(data []byte) string {
	if utf8.Valid(data) {
		return string(bytes.TrimPrefix(data, utf8BOM))
	}

	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		// Unreachable for ISO-8859-1; keep the bytes rather than dropping the upload.
		return string(data)
	}
	return string(out)
}

// ParseFile reads, decodes and parses an exported chat file.
func ParseFile(path string) (*RecordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return Parse(Decode(data)), nil
}

// ParseReader is ParseFile for an arbitrary reader, e.g. an HTTP upload.
func ParseReader(r io.Reader) (*RecordSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return Parse(Decode(data)), nil
}
