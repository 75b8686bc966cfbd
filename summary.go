package lending

import "sort"

// SummaryRow aggregates total quantity and amount under one grouping key
// (a security or an account).
type SummaryRow struct {
	Key      string
	Quantity Quantity
	Amount   Amount
}

// SummarizeBySecurity totals journal entry quantities and amounts per
// security, sorted by security. Aggregation is a presentation concern: the
// journal itself never merges entries across keys.
func SummarizeBySecurity(entries []JournalEntry) []SummaryRow {
	return summarize(entries, func(e JournalEntry) string { return e.SecurityID })
}

// SummarizeByAccount totals journal entry quantities and amounts per
// account, sorted by account.
func SummarizeByAccount(entries []JournalEntry) []SummaryRow {
	return summarize(entries, func(e JournalEntry) string { return e.Account })
}

func summarize(entries []JournalEntry, keyOf func(JournalEntry) string) []SummaryRow {
	totals := make(map[string]SummaryRow)
	for _, e := range entries {
		key := keyOf(e)
		row, ok := totals[key]
		if !ok {
			row = SummaryRow{Key: key}
		}
		row.Quantity = row.Quantity.Add(e.Quantity)
		row.Amount = row.Amount.Add(e.Amount)
		totals[key] = row
	}

	rows := make([]SummaryRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}
