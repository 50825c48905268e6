package codepage

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want any
	}{
		{"pc8", charmap.CodePage437},
		{"PC8", charmap.CodePage437},
		{"IBM437", charmap.CodePage437},
		{"cp437", charmap.CodePage437},
		{"utf-8", unicode.UTF8},
		{"", unicode.UTF8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("no-such-charset"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestPC8RoundTrip(t *testing.T) {
	enc, _ := Lookup(PC8)

	encoded, err := Encode(enc, []byte("Kassa och bank åäö"))
	if err != nil {
		t.Fatal(err)
	}
	// å ä ö are 0x86 0x84 0x94 in code page 437
	if !bytes.HasSuffix(encoded, []byte{0x86, 0x84, 0x94}) {
		t.Errorf("unexpected bytes % x", encoded)
	}

	decoded, err := io.ReadAll(NewReader(bytes.NewReader(encoded), enc))
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != "Kassa och bank åäö" {
		t.Errorf("got %q", decoded)
	}
}

func TestEncodeUnrepresentable(t *testing.T) {
	enc, _ := Lookup(PC8)
	if _, err := Encode(enc, []byte("price in €")); err == nil {
		t.Error("expected error encoding euro sign to PC8")
	}
}
