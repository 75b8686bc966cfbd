package lending

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSXSnapshot reads a position snapshot from the first sheet of an
// Excel workbook. The first row is the header, with the same column contract
// as ReadCSVSnapshot.
func ReadXLSXSnapshot(path string) (*Snapshot, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot %q: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("snapshot %q has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, &SchemaError{Field: colSecurityID, Reason: "empty sheet, missing header row"}
	}

	cols, err := indexColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var records []PositionRecord
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		rec, err := cols.record(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return NewSnapshot(records...)
}

// isBlankRow reports whether every cell of the row is empty. Spreadsheets
// routinely carry trailing blank rows that are not data.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
