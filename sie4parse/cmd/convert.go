package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	date "github.com/joyt/godate"
	"github.com/plenert-macdonald/sie"
	"github.com/plenert-macdonald/sie/sie4parse/internal/codepage"
)

const sieDateFormat = "20060102"

var (
	csvPath, siePath         string
	sortByDate               bool
	beginString, endString   string
	fieldDelimiter           string
	useCRLF                  bool
	csvEncoding, sieEncoding string
)

var ErrBadDelimiter = errors.New("delimiter must be a single character")

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&csvPath, "csv", "", "Output CSV file (\"-\" for stdout).")
	flags.StringVar(&siePath, "si", "", "Output an SIE4 file (\"-\" for stdout).")
	flags.BoolVar(&sortByDate, "sort-date", false, "Sort by date instead of number.")
	flags.StringVarP(&beginString, "begin-date", "b", "", "Only entries dated on or after this date.")
	flags.StringVarP(&endString, "end-date", "e", "", "Only entries dated on or before this date.")
	flags.StringVar(&fieldDelimiter, "delimiter", ",", "CSV field delimiter.")
	flags.BoolVar(&useCRLF, "crlf", true, "End CSV rows with CRLF.")
	flags.StringVar(&csvEncoding, "csv-encoding", "utf-8", "Encoding of the CSV output.")
	flags.StringVar(&sieEncoding, "sie-encoding", codepage.PC8, "Encoding of the SIE4 output.")
}

func runConvert(filename string) error {
	generalLedger, err := loadLedger(filename)
	if err != nil {
		return err
	}
	if csvPath == "" && siePath == "" {
		slog.Warn("No output file selected")
		return nil
	}

	begin, err := parseDateFlag(beginString)
	if err != nil {
		return err
	}
	end, err := parseDateFlag(endString)
	if err != nil {
		return err
	}
	if begin != "" || end != "" {
		generalLedger = generalLedger.Between(begin, end)
		slog.Debug("filtered entries", "begin", begin, "end", end, "entries", len(generalLedger.Entries))
	}

	order := sie.ByNumber
	if sortByDate {
		order = sie.ByDate
	}

	if csvPath != "" {
		comma, size := utf8.DecodeRuneInString(fieldDelimiter)
		if size == 0 || size != len(fieldDelimiter) {
			return fmt.Errorf("%w: %q", ErrBadDelimiter, fieldDelimiter)
		}
		opts := sie.CSVOptions{Order: order, Comma: comma, UseCRLF: useCRLF}
		err := writeOutput(csvPath, csvEncoding, func(buf *bytes.Buffer) error {
			return sie.WriteCSV(buf, generalLedger, opts)
		})
		if err != nil {
			return err
		}
	}

	if siePath != "" {
		err := writeOutput(siePath, sieEncoding, func(buf *bytes.Buffer) error {
			return sie.WriteSIE(buf, generalLedger, order)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// writeOutput renders into memory first so that a failed serializer
// leaves no partial file behind.
func writeOutput(path, encName string, render func(*bytes.Buffer) error) error {
	enc, err := codepage.Lookup(encName)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	out, err := codepage.Encode(enc, buf.Bytes())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if path == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return err
	}
	slog.Debug("wrote output", "path", path, "encoding", encName, "bytes", len(out))
	return nil
}

// parseDateFlag accepts a date in any common layout and returns it as
// YYYYMMDD. An empty string stays empty.
func parseDateFlag(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse(sieDateFormat, s); err == nil {
		return t.Format(sieDateFormat), nil
	}
	t, _, err := date.ParseAndGetLayout(s)
	if err != nil {
		return "", fmt.Errorf("unable to parse date(%s): %w", s, err)
	}
	return t.Format(sieDateFormat), nil
}
