// Package codepage resolves text encoding names used for SIE4 input and
// output files.
package codepage

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// PC8 is the encoding SIE4 files declare with #FORMAT PC8.
const PC8 = "pc8"

var ErrUnsupported = errors.New("unsupported encoding")

// Lookup returns the encoding for name. Besides IANA names ("utf-8",
// "ibm437", "cp437", "iso-8859-1", ...) it accepts "pc8".
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PC8:
		return charmap.CodePage437, nil
	case "utf-8", "utf8", "":
		return unicode.UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
	}
	return enc, nil
}

// Encode converts UTF-8 text to enc. Text the encoding cannot represent
// is an error rather than being replaced.
func Encode(enc encoding.Encoding, text []byte) ([]byte, error) {
	out, err := enc.NewEncoder().Bytes(text)
	if err != nil {
		return nil, fmt.Errorf("unable to encode output: %w", err)
	}
	return out, nil
}

// NewReader decodes r with enc.
func NewReader(r io.Reader, enc encoding.Encoding) io.Reader {
	return enc.NewDecoder().Reader(r)
}
