package lending

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// journalHeader is the column order of an exported journal, identical for
// CSV and Excel.
var journalHeader = []string{
	"date", "security_id", "account",
	"debit_account", "credit_account",
	"quantity", "amount", "description",
}

// WriteJournalCSV writes the journal, header first, as CSV.
func WriteJournalCSV(w io.Writer, entries []JournalEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(journalHeader); err != nil {
		return fmt.Errorf("cannot write journal header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			e.Date.String(),
			e.SecurityID,
			e.Account,
			e.Debit.String(),
			e.Credit.String(),
			e.Quantity.String(),
			e.Amount.String(),
			e.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write journal row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJournalXLSX writes the journal to an Excel workbook at path. The
// workbook gets a "Journal Entries" sheet and, when the journal is not
// empty, "Summary by Security" and "Summary by Account" sheets.
func WriteJournalXLSX(path string, entries []JournalEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	const mainSheet = "Journal Entries"
	if err := f.SetSheetName(f.GetSheetName(0), mainSheet); err != nil {
		return fmt.Errorf("cannot create sheet %q: %w", mainSheet, err)
	}
	if err := setSheetRows(f, mainSheet, journalRows(entries)); err != nil {
		return err
	}

	if len(entries) > 0 {
		for _, summary := range []struct {
			sheet string
			rows  []SummaryRow
		}{
			{"Summary by Security", SummarizeBySecurity(entries)},
			{"Summary by Account", SummarizeByAccount(entries)},
		} {
			if _, err := f.NewSheet(summary.sheet); err != nil {
				return fmt.Errorf("cannot create sheet %q: %w", summary.sheet, err)
			}
			if err := setSheetRows(f, summary.sheet, summaryRows(summary.rows)); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save workbook %q: %w", path, err)
	}
	return nil
}

func journalRows(entries []JournalEntry) [][]any {
	rows := [][]any{anyRow(journalHeader)}
	for _, e := range entries {
		rows = append(rows, []any{
			e.Date.String(),
			e.SecurityID,
			e.Account,
			e.Debit.String(),
			e.Credit.String(),
			e.Quantity.Decimal().InexactFloat64(),
			e.Amount.Decimal().InexactFloat64(),
			e.Description,
		})
	}
	return rows
}

func summaryRows(rows []SummaryRow) [][]any {
	out := [][]any{{"key", "quantity", "amount"}}
	for _, r := range rows {
		out = append(out, []any{
			r.Key,
			r.Quantity.Decimal().InexactFloat64(),
			r.Amount.Decimal().InexactFloat64(),
		})
	}
	return out
}

func anyRow(cells []string) []any {
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

func setSheetRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("cannot write row %d of sheet %q: %w", i+1, sheet, err)
		}
	}
	return nil
}

// ExportJournal writes the journal into dir (created on demand) under a
// timestamped file name, in the given format ("csv" or "xlsx"), and returns
// the path of the file it wrote.
func ExportJournal(dir, format string, entries []JournalEntry, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create output directory %q: %w", dir, err)
	}
	name := fmt.Sprintf("journal_entries_%s.%s", now.Format("20060102_150405"), format)
	path := filepath.Join(dir, name)

	switch format {
	case "csv":
		f, err := os.Create(path)
		if err != nil {
			return "", fmt.Errorf("cannot create %q: %w", path, err)
		}
		if err := WriteJournalCSV(f, entries); err != nil {
			f.Close()
			return "", err
		}
		return path, f.Close()
	case "xlsx":
		if err := WriteJournalXLSX(path, entries); err != nil {
			return "", err
		}
		return path, nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", format)
	}
}
