package sie

import (
	"errors"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Tokenize splits a line into words the way a POSIX shell would: runs of
// whitespace separate words, quotes group words and are removed.
//
//	#VER "A" 1 20230101 "Hello world"  =>  [#VER A 1 20230101 Hello world]
func Tokenize(line string) ([]string, error) {
	words, err := shellquote.Split(line)
	switch {
	case err == nil:
		return words, nil
	case errors.Is(err, shellquote.UnterminatedSingleQuoteError),
		errors.Is(err, shellquote.UnterminatedDoubleQuoteError),
		errors.Is(err, shellquote.UnterminatedEscapeError):
		return nil, ErrUnterminatedQuote
	default:
		return nil, err
	}
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote wraps s in double quotes so that Tokenize yields s back.
func quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}

// word is like quote but leaves s bare when it is a single plain word.
func word(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\r\n\"'\\") {
		return quote(s)
	}
	return s
}
