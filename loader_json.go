package lending

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultPositionsPath is the JSONPath under which custody API exports
// usually nest their position list.
const DefaultPositionsPath = "$.positions[*]"

// ReadJSONSnapshot reads a position snapshot from a JSON document,
// extracting the record list with the given JSONPath expression (for
// instance "$.positions[*]", or "$[*]" for a bare array). Each extracted
// record must be an object carrying the usual snapshot fields.
func ReadJSONSnapshot(r io.Reader, recordsPath string) (*Snapshot, error) {
	if recordsPath == "" {
		recordsPath = DefaultPositionsPath
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse snapshot JSON: %w", err)
	}

	jval, err := jsonpath.Get(recordsPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot extract positions at %q: %w", recordsPath, err)
	}
	// jsonpath is never clear about whether it returns a list of answers or
	// a single one; normalize to a list.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	var records []PositionRecord
	for _, item := range jlist {
		jrec, ok := item.(map[string]any)
		if !ok {
			return nil, &SchemaError{Field: colSecurityID, Reason: fmt.Sprintf("position is not an object: %v", item)}
		}
		rec, err := jsonRecord(jrec)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return NewSnapshot(records...)
}

func jsonRecord(jrec map[string]any) (PositionRecord, error) {
	securityID, err := jsonString(jrec, colSecurityID)
	if err != nil {
		return PositionRecord{}, err
	}
	account, err := jsonString(jrec, colAccount)
	if err != nil {
		return PositionRecord{}, err
	}
	quantity, err := jsonNumber(jrec, colQuantity)
	if err != nil {
		return PositionRecord{}, err
	}
	value, err := jsonNumber(jrec, colValue)
	if err != nil {
		return PositionRecord{}, err
	}

	rec := PositionRecord{
		SecurityID: securityID,
		Account:    account,
		Quantity:   Quantity{value: quantity},
		Value:      Amount{value: value},
	}
	if name, ok := jrec[colSecurityName].(string); ok {
		rec.SecurityName = name
	}
	return rec, nil
}

func jsonString(jrec map[string]any, field string) (string, error) {
	v, ok := jrec[field]
	if !ok {
		return "", &SchemaError{Field: field, Reason: "field not found"}
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", &SchemaError{Field: field, Reason: fmt.Sprintf("expected a non-empty string, got %v", v)}
	}
	return s, nil
}

func jsonNumber(jrec map[string]any, field string) (decimal.Decimal, error) {
	v, ok := jrec[field]
	if !ok {
		return decimal.Decimal{}, &SchemaError{Field: field, Reason: "field not found"}
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Decimal{}, &SchemaError{Field: field, Reason: fmt.Sprintf("cannot parse %q as a number", n)}
		}
		return d, nil
	default:
		return decimal.Decimal{}, &SchemaError{Field: field, Reason: fmt.Sprintf("expected a number, got %v", v)}
	}
}
