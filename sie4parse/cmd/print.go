package cmd

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/plenert-macdonald/sie"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const newLine = "\n"

var columnWidth int
var columnWide bool

// accountsCmd represents the accounts command
var accountsCmd = &cobra.Command{
	Use:   "accounts FILENAME",
	Args:  cobra.ExactArgs(1),
	Short: "List accounts with entry counts and totals",
	RunE: func(_ *cobra.Command, args []string) error {
		generalLedger, err := loadLedger(args[0])
		if err != nil {
			return err
		}

		if columnWide {
			columnWidth = 132
			fd := int(os.Stdout.Fd())
			if term.IsTerminal(fd) {
				tw, _, err := term.GetSize(fd)
				if err == nil {
					columnWidth = tw
				}
			}
		}

		buf := bufio.NewWriter(os.Stdout)
		PrintAccounts(buf, AccountSummaries(generalLedger), columnWidth)
		return buf.Flush()
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)

	accountsCmd.Flags().IntVar(&columnWidth, "columns", 80, "Set a column width for output.")
	accountsCmd.Flags().BoolVar(&columnWide, "wide", false, "Wide output (use terminal width).")
}

// AccountSummary is one line of the accounts listing.
type AccountSummary struct {
	Number  int
	Name    string
	Known   bool
	Entries int
	Total   decimal.Decimal
}

// AccountSummaries totals every account of the directory, plus accounts
// only seen in transactions, ordered by account number.
func AccountSummaries(l *sie.Ledger) []AccountSummary {
	byNumber := make(map[int]*AccountSummary)
	for _, number := range l.Accounts.Numbers() {
		name, _ := l.Accounts.Name(number)
		byNumber[number] = &AccountSummary{Number: number, Name: name, Known: true}
	}
	for _, entry := range l.Entries {
		for _, p := range entry.Transactions {
			s, ok := byNumber[p.Account]
			if !ok {
				s = &AccountSummary{Number: p.Account}
				byNumber[p.Account] = s
			}
			s.Entries++
			s.Total = s.Total.Add(p.Amount)
		}
	}

	summaries := make([]AccountSummary, 0, len(byNumber))
	for _, s := range byNumber {
		summaries = append(summaries, *s)
	}
	slices.SortFunc(summaries, func(a, b AccountSummary) int {
		return a.Number - b.Number
	})
	return summaries
}

// PrintAccounts writes one line per account fitted to columns: number,
// name, entry count and total. Accounts missing from the directory are
// marked with '?'.
func PrintAccounts(w io.StringWriter, summaries []AccountSummary, columns int) {
	// 8 for number, 6 for count, 14 for total, 3 separators
	if columns < 40 {
		columns = 40
		slog.Warn("columns too small", "columns", columns)
	}
	nameWidth := columns - 8 - 6 - 14 - 3

	for _, s := range summaries {
		name := s.Name
		if !s.Known {
			name = "?"
		}
		w.WriteString(fixed(strconv.Itoa(s.Number), 8, false))
		w.WriteString(" ")
		w.WriteString(fixed(name, nameWidth, false))
		w.WriteString(" ")
		w.WriteString(fixed(strconv.Itoa(s.Entries), 6, true))
		w.WriteString(" ")
		w.WriteString(fixed(s.Total.StringFixedBank(2), 14, true))
		w.WriteString(newLine)
	}
}

// fixed pads or truncates s to exactly width runes.
func fixed(s string, width int, alignRight bool) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		return string([]rune(s)[:width])
	}
	pad := strings.Repeat(" ", width-n)
	if alignRight {
		return pad + s
	}
	return s + pad
}
