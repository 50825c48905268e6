package sie

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVOptions controls WriteCSV.
type CSVOptions struct {
	Order SortMode
	// Comma is the field delimiter; zero means ','.
	Comma rune
	// UseCRLF ends rows with \r\n as spreadsheet programs expect.
	UseCRLF bool
}

// WriteCSV writes l as a table with one column per account. The first two
// rows hold account numbers and names, then each entry gets a row with
// its number, date, text and the amount booked on each account.
func WriteCSV(w io.Writer, l *Ledger, opts CSVOptions) error {
	csvWriter := csv.NewWriter(w)
	if opts.Comma != 0 {
		csvWriter.Comma = opts.Comma
	}
	csvWriter.UseCRLF = opts.UseCRLF

	accountNumbers := l.Accounts.Sorted()
	column := make(map[int]int, len(accountNumbers))

	numberRow := []string{"#", "date", "text"}
	nameRow := []string{"", "", ""}
	for i, number := range accountNumbers {
		column[number] = i + 3
		name, _ := l.Accounts.Name(number)
		numberRow = append(numberRow, strconv.Itoa(number))
		nameRow = append(nameRow, name)
	}
	if err := csvWriter.Write(numberRow); err != nil {
		return err
	}
	if err := csvWriter.Write(nameRow); err != nil {
		return err
	}

	for _, entry := range SortedEntries(l.Entries, opts.Order) {
		record := make([]string, len(numberRow))
		record[0] = strconv.Itoa(entry.Number)
		record[1] = FormatDate(entry.Date)
		record[2] = entry.Text
		for _, p := range entry.Transactions {
			col, ok := column[p.Account]
			if !ok {
				return fmt.Errorf("entry %s %d: %w: %d", entry.Series, entry.Number, ErrUnknownAccount, p.Account)
			}
			record[col] = p.Amount.String()
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
