package lending

import (
	"errors"
	"testing"
)

func TestNewSnapshot_RejectsDuplicateKeys(t *testing.T) {
	_, err := NewSnapshot(
		PositionRecord{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
		PositionRecord{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(50), Value: A(500)},
	)
	if err == nil {
		t.Fatal("NewSnapshot() accepted a duplicate (security, account) key")
	}

	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %v, want a *DuplicateKeyError", err)
	}
	if dup.SecurityID != "SEC1" || dup.Account != "ACC1" {
		t.Errorf("duplicate key = (%s, %s), want (SEC1, ACC1)", dup.SecurityID, dup.Account)
	}
}

func TestNewSnapshot_SameSecurityDifferentAccounts(t *testing.T) {
	s, err := NewSnapshot(
		PositionRecord{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
		PositionRecord{SecurityID: "SEC1", Account: "ACC2", Quantity: Q(50), Value: A(500)},
	)
	if err != nil {
		t.Fatalf("NewSnapshot() failed: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSnapshot_Get(t *testing.T) {
	s := mustSnapshot(t,
		PositionRecord{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
	)

	r, ok := s.Get(PositionKey{SecurityID: "SEC1", Account: "ACC1"})
	if !ok {
		t.Fatal("Get() did not find an existing key")
	}
	if !r.Quantity.Equal(Q(100)) {
		t.Errorf("quantity = %s, want 100", r.Quantity)
	}

	if _, ok := s.Get(PositionKey{SecurityID: "SEC1", Account: "ACC9"}); ok {
		t.Error("Get() found a key that is not in the snapshot")
	}

	// The zero record of a missing key carries zero quantity and value;
	// reconciliation relies on that for its outer join.
	missing, _ := s.Get(PositionKey{SecurityID: "NOPE", Account: "NOPE"})
	if !missing.Quantity.IsZero() || !missing.Value.IsZero() {
		t.Errorf("missing record = %v, want zero quantity and value", missing)
	}
}
