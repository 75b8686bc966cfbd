package lending

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// SamplePositions returns a small, plausible borrowed-position snapshot,
// used to demonstrate the journal workflow without real custody data.
func SamplePositions() []PositionRecord {
	return []PositionRecord{
		{SecurityID: "SH600000", SecurityName: "SPDB", Account: "ACC001", Quantity: Q(10000), Value: A(120000.00)},
		{SecurityID: "SH600016", SecurityName: "CMBC", Account: "ACC001", Quantity: Q(5000), Value: A(45000.00)},
		{SecurityID: "SH600036", SecurityName: "CMB", Account: "ACC002", Quantity: Q(8000), Value: A(320000.00)},
		{SecurityID: "SZ000001", SecurityName: "PAB", Account: "ACC002", Quantity: Q(12000), Value: A(180000.00)},
		{SecurityID: "SZ000002", SecurityName: "Vanke A", Account: "ACC003", Quantity: Q(15000), Value: A(375000.00)},
	}
}

// WriteSampleCSV writes the sample snapshot as sample_positions.csv into
// dir (created on demand) and returns the path of the file.
func WriteSampleCSV(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create output directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, "sample_positions.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create %q: %w", path, err)
	}
	cw := csv.NewWriter(f)
	if err := cw.Write([]string{colSecurityID, colSecurityName, colAccount, colQuantity, colValue}); err != nil {
		f.Close()
		return "", err
	}
	for _, r := range SamplePositions() {
		row := []string{r.SecurityID, r.SecurityName, r.Account, r.Quantity.String(), r.Value.String()}
		if err := cw.Write(row); err != nil {
			f.Close()
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
