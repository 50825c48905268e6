package sie

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingFields     = errors.New("too few fields")
	ErrNoCurrentEntry    = errors.New("#TRANS before any #VER")
	ErrDuplicateAccount  = errors.New("account already has a transaction in this entry")
	ErrBracketLine       = errors.New("bracket must be alone on its line")
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrUnknownAccount    = errors.New("account not in account directory")
)

// AddTransaction books amount on account. Each account may appear at most
// once per entry.
func (e *Entry) AddTransaction(account int, amount decimal.Decimal) error {
	if _, ok := e.Amount(account); ok {
		return fmt.Errorf("%w: %d", ErrDuplicateAccount, account)
	}
	e.Transactions = append(e.Transactions, Posting{Account: account, Amount: amount})
	return nil
}

// Amount returns the amount booked on account in this entry.
func (e *Entry) Amount(account int) (decimal.Decimal, bool) {
	for _, p := range e.Transactions {
		if p.Account == account {
			return p.Amount, true
		}
	}
	return decimal.Zero, false
}

// Between returns a ledger sharing accounts and headers with l but holding
// only the entries dated within [begin, end]. Dates compare as raw
// YYYYMMDD strings; an empty bound is open.
func (l *Ledger) Between(begin, end string) *Ledger {
	view := &Ledger{Accounts: l.Accounts, Headers: l.Headers}
	for _, e := range l.Entries {
		if begin != "" && e.Date < begin {
			continue
		}
		if end != "" && e.Date > end {
			continue
		}
		view.Entries = append(view.Entries, e)
	}
	return view
}
