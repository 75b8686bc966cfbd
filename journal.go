package lending

import "fmt"

// AccountLabel names one of the two ledger accounts a lending adjustment can
// touch.
type AccountLabel int

const (
	// SecuritiesBorrowed is the asset-side account tracking borrowed stock.
	SecuritiesBorrowed AccountLabel = iota
	// PayableForSecurities is the liability-side account owed back to lenders.
	PayableForSecurities
)

func (l AccountLabel) String() string {
	switch l {
	case SecuritiesBorrowed:
		return "Securities Borrowed"
	case PayableForSecurities:
		return "Payable for Securities"
	default:
		return "unknown"
	}
}

// ParseAccountLabel parses the display form of an account label.
func ParseAccountLabel(s string) (AccountLabel, error) {
	switch s {
	case "Securities Borrowed":
		return SecuritiesBorrowed, nil
	case "Payable for Securities":
		return PayableForSecurities, nil
	default:
		return 0, fmt.Errorf("unknown account label: %q", s)
	}
}

// JournalEntry is one double-entry accounting row. Quantity and Amount are
// always non-negative magnitudes; the direction of the adjustment is encoded
// entirely by which account is debited.
type JournalEntry struct {
	Date        Date
	SecurityID  string
	Account     string
	Debit       AccountLabel
	Credit      AccountLabel
	Quantity    Quantity
	Amount      Amount
	Description string
}

// BuildEntries maps position changes to journal entries, dated on the given
// day. Callers wanting "today" pass Today(); the builder itself never reads
// the clock, which keeps it deterministic under test.
//
// A positive quantity change is a new or increased borrow: debit Securities
// Borrowed, credit Payable for Securities. A negative one is a return, with
// the accounts swapped. A change whose quantity delta is zero (a pure
// revaluation) produces no entry at all: value-only moves are not journaled.
//
// Entries come out in input order, one per non-zero quantity change.
func BuildEntries(changes []ChangeRecord, on Date) []JournalEntry {
	var entries []JournalEntry
	for _, c := range changes {
		switch {
		case c.QuantityChange.IsPositive():
			entries = append(entries, JournalEntry{
				Date:        on,
				SecurityID:  c.SecurityID,
				Account:     c.Account,
				Debit:       SecuritiesBorrowed,
				Credit:      PayableForSecurities,
				Quantity:    c.QuantityChange.Abs(),
				Amount:      c.ValueChange.Abs(),
				Description: "Borrow securities " + c.SecurityID,
			})
		case c.QuantityChange.IsNegative():
			entries = append(entries, JournalEntry{
				Date:        on,
				SecurityID:  c.SecurityID,
				Account:     c.Account,
				Debit:       PayableForSecurities,
				Credit:      SecuritiesBorrowed,
				Quantity:    c.QuantityChange.Abs(),
				Amount:      c.ValueChange.Abs(),
				Description: "Return securities " + c.SecurityID,
			})
		}
	}
	return entries
}
