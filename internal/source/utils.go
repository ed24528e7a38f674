package source

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF16 is returned for UTF-16 input that cannot be transcoded.
var ErrInvalidUTF16 = errors.New("invalid UTF-16 text")

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode turns raw file bytes into source text. UTF-16 text with a byte order
// mark is transcoded to UTF-8 and the mark dropped. Anything else is taken as
// UTF-8 and returned unchanged, including a UTF-8 BOM, which the tokenizer
// treats as whitespace.
func Decode(raw []byte) (string, FileFlags, error) {
	var endian unicode.Endianness
	switch {
	case bytes.HasPrefix(raw, bomUTF16LE):
		endian = unicode.LittleEndian
	case bytes.HasPrefix(raw, bomUTF16BE):
		endian = unicode.BigEndian
	default:
		return string(raw), 0, nil
	}
	dec := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", 0, errors.Join(ErrInvalidUTF16, err)
	}
	return string(out), FileTranscoded, nil
}

// HasUTF8BOM reports whether text starts with U+FEFF.
func HasUTF8BOM(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	return r == '\ufeff'
}

func normalizePath(p string) string {
	if p == "" || strings.HasPrefix(p, "<") {
		// virtual names such as <stdin>
		return p
	}
	return filepath.ToSlash(filepath.Clean(p))
}
