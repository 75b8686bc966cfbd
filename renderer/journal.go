package renderer

import (
	"github.com/finlens/lending"
)

// JournalReport is the fully formatted view of a generated journal, ready
// for the templates. Numbers are pre-rendered strings: formatting decisions
// (currency, signs) are made here, not in the templates.
type JournalReport struct {
	// Date of the journal entries.
	Date lending.Date
	// Currency used to display amounts.
	Currency string
	// Entries, one row per journal entry, in journal order.
	Entries []JournalRow
	// BySecurity and ByAccount are the aggregate views of the journal.
	BySecurity []SummaryLine
	ByAccount  []SummaryLine
}

// JournalRow is one rendered journal entry.
type JournalRow struct {
	SecurityID  string
	Account     string
	Debit       string
	Credit      string
	Quantity    string
	Amount      string
	Description string
}

// SummaryLine is one rendered aggregate row.
type SummaryLine struct {
	Key      string
	Quantity string
	Amount   string
}

// NewJournalReport builds the report for a journal, displaying amounts in
// the given ISO currency.
func NewJournalReport(entries []lending.JournalEntry, currency string) *JournalReport {
	r := &JournalReport{Currency: currency}
	if len(entries) > 0 {
		r.Date = entries[0].Date
	}
	for _, e := range entries {
		r.Entries = append(r.Entries, JournalRow{
			SecurityID:  e.SecurityID,
			Account:     e.Account,
			Debit:       e.Debit.String(),
			Credit:      e.Credit.String(),
			Quantity:    e.Quantity.String(),
			Amount:      e.Amount.Display(currency),
			Description: e.Description,
		})
	}
	r.BySecurity = summaryLines(lending.SummarizeBySecurity(entries), currency)
	r.ByAccount = summaryLines(lending.SummarizeByAccount(entries), currency)
	return r
}

func summaryLines(rows []lending.SummaryRow, currency string) []SummaryLine {
	var lines []SummaryLine
	for _, row := range rows {
		lines = append(lines, SummaryLine{
			Key:      row.Key,
			Quantity: row.Quantity.String(),
			Amount:   row.Amount.Display(currency),
		})
	}
	return lines
}
