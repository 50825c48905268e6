package sie

import (
	"errors"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
		err  error
	}{
		{
			"ver",
			`#VER "A" 1 20230101 "Hello world"`,
			[]string{"#VER", "A", "1", "20230101", "Hello world"},
			nil,
		},
		{
			"empty",
			"",
			nil,
			nil,
		},
		{
			"whitespace only",
			" \t  ",
			nil,
			nil,
		},
		{
			"collapse whitespace",
			"#KONTO   1910\t\"Kassa\"  ",
			[]string{"#KONTO", "1910", "Kassa"},
			nil,
		},
		{
			"empty object list",
			"#TRANS 1910 {} 100.00",
			[]string{"#TRANS", "1910", "{}", "100.00"},
			nil,
		},
		{
			"bracket",
			"{",
			[]string{"{"},
			nil,
		},
		{
			"quoted empty",
			`#VER "" 1 20230101 ""`,
			[]string{"#VER", "", "1", "20230101", ""},
			nil,
		},
		{
			"escaped quote",
			`#KONTO 1 "Bank \"A\""`,
			[]string{"#KONTO", "1", `Bank "A"`},
			nil,
		},
		{
			"adjacent quoting joins word",
			`ab"c d"e`,
			[]string{"abc de"},
			nil,
		},
		{
			"non ascii",
			`#KONTO 3010 "Försäljning varor"`,
			[]string{"#KONTO", "3010", "Försäljning varor"},
			nil,
		},
		{
			"unterminated double quote",
			`#KONTO 1910 "Kassa`,
			nil,
			ErrUnterminatedQuote,
		},
		{
			"unterminated single quote",
			`#KONTO 1910 Kalle's`,
			nil,
			ErrUnterminatedQuote,
		},
		{
			"carriage return is not a separator",
			"#KONTO 1910\rKassa",
			[]string{"#KONTO", "1910\rKassa"},
			nil,
		},
		{
			"escaped dollar in double quotes",
			`#KONTO 1910 "a\$b"`,
			[]string{"#KONTO", "1910", "a$b"},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.line)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Tokenize(%q) error = %v, want %v", tt.line, err, tt.err)
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", "two words", `say "hi"`, `C:\temp`, "tab\there", "$HOME `x`"} {
		got, err := Tokenize("x " + quote(s))
		if err != nil {
			t.Fatalf("Tokenize(quote(%q)) failed: %v", s, err)
		}
		if len(got) != 2 || got[1] != s {
			t.Errorf("quote(%q) tokenized to %q", s, got)
		}
	}
}

func TestWord(t *testing.T) {
	tests := []struct{ in, out string }{
		{"20230101", "20230101"},
		{"", `""`},
		{"2023 01", `"2023 01"`},
		{`it's`, `"it's"`},
		{"a\rb", "\"a\rb\""},
		{"#MY LABEL", `"#MY LABEL"`},
	}
	for _, tt := range tests {
		if got := word(tt.in); got != tt.out {
			t.Errorf("word(%q) = %s, want %s", tt.in, got, tt.out)
		}
	}
}
