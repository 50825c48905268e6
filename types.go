package sie

import (
	"slices"

	"github.com/shopspring/decimal"
)

// AccountDirectory maps account numbers to their display names. Numbers
// keeps the order in which accounts were first declared.
type AccountDirectory struct {
	names   map[int]string
	numbers []int
}

// Set declares an account. A repeated declaration replaces the name but
// keeps the account's original position.
func (d *AccountDirectory) Set(number int, name string) {
	if d.names == nil {
		d.names = make(map[int]string)
	}
	if _, ok := d.names[number]; !ok {
		d.numbers = append(d.numbers, number)
	}
	d.names[number] = name
}

// Name returns the display name of an account.
func (d *AccountDirectory) Name(number int) (name string, ok bool) {
	name, ok = d.names[number]
	return
}

// Numbers returns account numbers in declaration order.
func (d *AccountDirectory) Numbers() []int {
	return slices.Clone(d.numbers)
}

// Sorted returns account numbers in ascending order.
func (d *AccountDirectory) Sorted() []int {
	numbers := slices.Clone(d.numbers)
	slices.Sort(numbers)
	return numbers
}

func (d *AccountDirectory) Len() int {
	return len(d.numbers)
}

// HeaderFields holds the raw fields of every label the parser does not
// interpret itself, in the order the labels first appeared.
type HeaderFields struct {
	fields map[string][]string
	labels []string
}

// Set stores the fields of a label, replacing any earlier occurrence.
func (h *HeaderFields) Set(label string, fields []string) {
	if h.fields == nil {
		h.fields = make(map[string][]string)
	}
	if _, ok := h.fields[label]; !ok {
		h.labels = append(h.labels, label)
	}
	h.fields[label] = fields
}

func (h *HeaderFields) Get(label string) (fields []string, ok bool) {
	fields, ok = h.fields[label]
	return
}

// Labels returns header labels in order of first appearance.
func (h *HeaderFields) Labels() []string {
	return slices.Clone(h.labels)
}

func (h *HeaderFields) Len() int {
	return len(h.labels)
}

// Posting is a single #TRANS line: an amount booked on an account.
type Posting struct {
	Account int
	Amount  decimal.Decimal
}

// Entry is a verification (#VER) and the postings that follow it.
// Date is kept exactly as written, normally YYYYMMDD.
type Entry struct {
	Series       string
	Number       int
	Date         string
	Text         string
	Transactions []Posting
}

// Ledger is the parsed content of a SIE4 file.
type Ledger struct {
	Accounts AccountDirectory
	Headers  HeaderFields
	Entries  []*Entry
}

func NewLedger() *Ledger {
	return &Ledger{}
}
