package sie

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
)

// ParseFile parses a SIE4 file. When enc is not nil the file is decoded
// with it first; SIE4 files are normally PC8 (code page 437).
func ParseFile(filename string, enc encoding.Encoding) (*Ledger, error) {
	ifile, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer ifile.Close()

	var r io.Reader = ifile
	if enc != nil {
		r = enc.NewDecoder().Reader(ifile)
	}
	return parseLedger(filename, r)
}

// Parse parses SIE4 text that is already decoded.
func Parse(r io.Reader) (*Ledger, error) {
	return parseLedger("", r)
}

type parser struct {
	scanner *linescanner
	ledger  *Ledger

	// current is the entry #TRANS lines are added to. Braces do not
	// change it, only the next #VER does.
	current *Entry
}

func parseLedger(filename string, r io.Reader) (*Ledger, error) {
	lp := parser{
		scanner: newLineScanner(filename, r),
		ledger:  NewLedger(),
	}

	for lp.scanner.Scan() {
		if err := lp.parseLine(lp.scanner.Text()); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", lp.scanner.Name(), lp.scanner.LineNumber(), err)
		}
	}
	if err := lp.scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", lp.scanner.Name(), err)
	}
	return lp.ledger, nil
}

func (lp *parser) parseLine(line string) error {
	tokens, err := Tokenize(line)
	if err != nil {
		return fmt.Errorf("unable to split line: %w", err)
	}
	if len(tokens) == 0 {
		return nil
	}

	switch first := tokens[0]; {
	case strings.HasPrefix(first, "#"):
		return lp.parseLabel(first[1:], tokens[1:])
	case first == "{" || first == "}":
		if len(tokens) != 1 {
			return fmt.Errorf("%w: %q", ErrBracketLine, line)
		}
	}
	return nil
}

func (lp *parser) parseLabel(label string, fields []string) error {
	switch label {
	case "KONTO":
		return lp.parseKonto(fields)
	case "VER":
		return lp.parseVer(fields)
	case "TRANS":
		return lp.parseTrans(fields)
	default:
		lp.ledger.Headers.Set(label, fields)
		return nil
	}
}

func requireFields(label string, fields []string, n int) error {
	if len(fields) < n {
		return fmt.Errorf("unable to parse #%s: %w: need %d, got %d", label, ErrMissingFields, n, len(fields))
	}
	return nil
}

// parseKonto handles: #KONTO number name
func (lp *parser) parseKonto(fields []string) error {
	if err := requireFields("KONTO", fields, 2); err != nil {
		return err
	}
	number, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("unable to parse #KONTO account number: %w", err)
	}
	lp.ledger.Accounts.Set(number, fields[1])
	return nil
}

// parseVer handles: #VER series number date text [regdate [sign]]
// The registration date and signature are dropped.
func (lp *parser) parseVer(fields []string) error {
	if err := requireFields("VER", fields, 4); err != nil {
		return err
	}
	number, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("unable to parse #VER number: %w", err)
	}
	e := &Entry{
		Series: fields[0],
		Number: number,
		Date:   fields[2],
		Text:   fields[3],
	}
	lp.ledger.Entries = append(lp.ledger.Entries, e)
	lp.current = e
	return nil
}

// parseTrans handles: #TRANS account {objects} amount ...
func (lp *parser) parseTrans(fields []string) error {
	if err := requireFields("TRANS", fields, 3); err != nil {
		return err
	}
	if lp.current == nil {
		return ErrNoCurrentEntry
	}
	account, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("unable to parse #TRANS account: %w", err)
	}
	amount, err := decimal.NewFromString(fields[2])
	if err != nil {
		return fmt.Errorf("unable to parse #TRANS amount: %w", err)
	}
	if err := lp.current.AddTransaction(account, amount); err != nil {
		return fmt.Errorf("unable to add #TRANS to #VER %s %d: %w", lp.current.Series, lp.current.Number, err)
	}
	return nil
}
