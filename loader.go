package lending

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Required snapshot columns. Extra columns (security_name and friends) are
// tolerated and ignored, matching what custody exports actually look like.
const (
	colSecurityID   = "security_id"
	colSecurityName = "security_name"
	colAccount      = "account"
	colQuantity     = "quantity"
	colValue        = "value"
)

// LoadSnapshot loads a position snapshot from a file, dispatching on the
// file extension: .csv, .xlsx/.xls, or .json.
func LoadSnapshot(path string) (*Snapshot, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open snapshot %q: %w", path, err)
		}
		defer f.Close()
		return ReadCSVSnapshot(f)
	case ".xlsx", ".xls":
		return ReadXLSXSnapshot(path)
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open snapshot %q: %w", path, err)
		}
		defer f.Close()
		return ReadJSONSnapshot(f, DefaultPositionsPath)
	default:
		return nil, fmt.Errorf("unsupported snapshot file format: %q", ext)
	}
}

// ReadCSVSnapshot reads a position snapshot from CSV data. The first row is
// the header and must contain the security_id, account, quantity and value
// columns, in any order.
func ReadCSVSnapshot(r io.Reader) (*Snapshot, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{Field: colSecurityID, Reason: "empty file, missing header row"}
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot header: %w", err)
	}
	// A UTF-8 BOM on the first cell is common in spreadsheet exports.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var records []PositionRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read snapshot row: %w", err)
		}
		rec, err := cols.record(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return NewSnapshot(records...)
}

// columnIndex maps the required (and known optional) columns to their
// position in a header row.
type columnIndex struct {
	securityID   int
	securityName int // -1 when absent
	account      int
	quantity     int
	value        int
}

func indexColumns(header []string) (columnIndex, error) {
	cols := columnIndex{securityID: -1, securityName: -1, account: -1, quantity: -1, value: -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case colSecurityID:
			cols.securityID = i
		case colSecurityName:
			cols.securityName = i
		case colAccount:
			cols.account = i
		case colQuantity:
			cols.quantity = i
		case colValue:
			cols.value = i
		}
	}
	for _, required := range []struct {
		name string
		pos  int
	}{
		{colSecurityID, cols.securityID},
		{colAccount, cols.account},
		{colQuantity, cols.quantity},
		{colValue, cols.value},
	} {
		if required.pos < 0 {
			return cols, &SchemaError{Field: required.name, Reason: "column not found in header"}
		}
	}
	return cols, nil
}

// record converts one data row into a PositionRecord.
func (c columnIndex) record(row []string) (PositionRecord, error) {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	quantity, err := ParseQuantity(cell(c.quantity))
	if err != nil {
		return PositionRecord{}, &SchemaError{Field: colQuantity, Reason: fmt.Sprintf("cannot parse %q as a number", cell(c.quantity))}
	}
	value, err := ParseAmount(cell(c.value))
	if err != nil {
		return PositionRecord{}, &SchemaError{Field: colValue, Reason: fmt.Sprintf("cannot parse %q as a number", cell(c.value))}
	}
	rec := PositionRecord{
		SecurityID:   cell(c.securityID),
		SecurityName: cell(c.securityName),
		Account:      cell(c.account),
		Quantity:     quantity,
		Value:        value,
	}
	if rec.SecurityID == "" {
		return PositionRecord{}, &SchemaError{Field: colSecurityID, Reason: "empty value"}
	}
	if rec.Account == "" {
		return PositionRecord{}, &SchemaError{Field: colAccount, Reason: "empty value"}
	}
	return rec, nil
}
