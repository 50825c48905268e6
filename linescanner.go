package sie

import (
	"bufio"
	"io"
	"strings"
)

// linescanner reads lines of any length and tracks where it is for error
// messages.
type linescanner struct {
	name string
	r    *bufio.Reader

	line    string
	lineNum int
	err     error
}

func newLineScanner(name string, r io.Reader) *linescanner {
	return &linescanner{name: name, r: bufio.NewReader(r)}
}

// Scan advances to the next line, which is then available through Text.
func (s *linescanner) Scan() bool {
	if s.err != nil {
		return false
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = err
			return false
		}
		if len(line) == 0 {
			return false
		}
		s.err = io.EOF
	}
	s.line = strings.TrimRight(line, "\r\n")
	s.lineNum++
	return true
}

func (s *linescanner) Text() string {
	return s.line
}

func (s *linescanner) Name() string {
	return s.name
}

func (s *linescanner) LineNumber() int {
	return s.lineNum
}

// Err returns the first read error other than io.EOF.
func (s *linescanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}
