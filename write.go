package sie

import (
	"bufio"
	"io"
	"strconv"
)

const newLine = "\n"

// WriteSIE writes l back as SIE4: header labels, the account list, then
// every entry with its #TRANS lines inside braces. Registration dates and
// signatures of #VER are not kept, and the object list of #TRANS is
// always written empty.
func WriteSIE(w io.Writer, l *Ledger, mode SortMode) error {
	buf := bufio.NewWriter(w)

	for _, label := range l.Headers.Labels() {
		fields, _ := l.Headers.Get(label)
		buf.WriteString(word("#"+label) + " ")
		for i, f := range fields {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(quote(f))
		}
		buf.WriteString(newLine)
	}

	for _, number := range l.Accounts.Numbers() {
		name, _ := l.Accounts.Name(number)
		buf.WriteString("#KONTO " + strconv.Itoa(number) + " " + quote(name) + newLine)
	}

	for _, entry := range SortedEntries(l.Entries, mode) {
		WriteEntry(buf, entry)
	}

	return buf.Flush()
}

// WriteEntry writes a single #VER block followed by a blank line.
func WriteEntry(w io.StringWriter, entry *Entry) {
	w.WriteString("#VER " + quote(entry.Series) + " " + strconv.Itoa(entry.Number) + " " + word(entry.Date) + " " + quote(entry.Text) + newLine)
	w.WriteString("{" + newLine)
	for _, p := range entry.Transactions {
		w.WriteString("#TRANS " + strconv.Itoa(p.Account) + " {} " + p.Amount.String() + newLine)
	}
	w.WriteString("}" + newLine)
	w.WriteString(newLine)
}
