package sie

import (
	"cmp"
	"slices"
)

// SortMode selects the order in which entries are written.
type SortMode int

const (
	// ByNumber orders entries by verification number.
	ByNumber SortMode = iota
	// ByDate orders entries by date, then by verification number.
	ByDate
)

func (m SortMode) String() string {
	if m == ByDate {
		return "date"
	}
	return "number"
}

// SortedEntries returns a sorted copy of entries. Entries that compare
// equal keep their file order.
func SortedEntries(entries []*Entry, mode SortMode) []*Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b *Entry) int {
		if mode == ByDate {
			if c := cmp.Compare(a.Date, b.Date); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.Number, b.Number)
	})
	return sorted
}

// FormatDate turns YYYYMMDD into YYYY-MM-DD by slicing; the date is not
// checked against the calendar. Short input yields short parts.
func FormatDate(s string) string {
	part := func(from, to int) string {
		if from > len(s) {
			return ""
		}
		return s[from:min(to, len(s))]
	}
	return part(0, 4) + "-" + part(4, 6) + "-" + part(6, 8)
}
