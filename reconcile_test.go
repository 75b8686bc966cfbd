package lending

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

// mustSnapshot builds a snapshot from records, failing the test on duplicate keys.
func mustSnapshot(t *testing.T, records ...PositionRecord) *Snapshot {
	t.Helper()
	s, err := NewSnapshot(records...)
	if err != nil {
		t.Fatalf("NewSnapshot() failed: %v", err)
	}
	return s
}

func TestReconcile_NoPrevious(t *testing.T) {
	// Without a previous snapshot, every position is newly opened: the
	// change equals the position itself.
	current := mustSnapshot(t,
		PositionRecord{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
		PositionRecord{SecurityID: "SEC2", Account: "ACC1", Quantity: Q(50), Value: A(600)},
	)

	changes := Reconcile(current, nil)

	want := []ChangeRecord{
		{SecurityID: "SEC1", Account: "ACC1", QuantityChange: Q(100), ValueChange: A(1000)},
		{SecurityID: "SEC2", Account: "ACC1", QuantityChange: Q(50), ValueChange: A(600)},
	}
	assertChanges(t, changes, want)
}

func TestReconcile_OuterJoin(t *testing.T) {
	testCases := []struct {
		name     string
		current  []PositionRecord
		previous []PositionRecord
		want     []ChangeRecord
	}{
		{
			name: "key only in current is a full open",
			current: []PositionRecord{
				{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
			},
			previous: []PositionRecord{},
			want: []ChangeRecord{
				{SecurityID: "SEC1", Account: "ACC1", QuantityChange: Q(100), ValueChange: A(1000)},
			},
		},
		{
			name:    "key only in previous is a full close",
			current: []PositionRecord{},
			previous: []PositionRecord{
				{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
			},
			want: []ChangeRecord{
				{SecurityID: "SEC1", Account: "ACC1", QuantityChange: Q(-100), ValueChange: A(-1000)},
			},
		},
		{
			name: "identical records are suppressed",
			current: []PositionRecord{
				{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
			},
			previous: []PositionRecord{
				{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
			},
			want: nil,
		},
		{
			name: "quantity increase",
			current: []PositionRecord{
				{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
			},
			previous: []PositionRecord{
				{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(60), Value: A(600)},
			},
			want: []ChangeRecord{
				{SecurityID: "SEC1", Account: "ACC1", QuantityChange: Q(40), ValueChange: A(400)},
			},
		},
		{
			name: "value-only change is still a change record",
			current: []PositionRecord{
				{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1100)},
			},
			previous: []PositionRecord{
				{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
			},
			want: []ChangeRecord{
				{SecurityID: "SEC1", Account: "ACC1", QuantityChange: Q(0), ValueChange: A(100)},
			},
		},
		{
			name: "same security in two accounts reconciles per account",
			current: []PositionRecord{
				{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
				{SecurityID: "SEC1", Account: "ACC2", Quantity: Q(20), Value: A(200)},
			},
			previous: []PositionRecord{
				{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
			},
			want: []ChangeRecord{
				{SecurityID: "SEC1", Account: "ACC2", QuantityChange: Q(20), ValueChange: A(200)},
			},
		},
		{
			name:     "both empty",
			current:  []PositionRecord{},
			previous: []PositionRecord{},
			want:     nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			current := mustSnapshot(t, tc.current...)
			previous := mustSnapshot(t, tc.previous...)
			got := Reconcile(current, previous)
			assertChanges(t, got, tc.want)
		})
	}
}

func TestReconcile_ExactComparison(t *testing.T) {
	// Change detection is exact: a delta of 0.0001 is a change. Sources with
	// noisy numbers see spurious changes unless they opt into a tolerance.
	current := mustSnapshot(t,
		PositionRecord{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000.0001)},
	)
	previous := mustSnapshot(t,
		PositionRecord{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
	)

	if got := Reconcile(current, previous); len(got) != 1 {
		t.Fatalf("Reconcile() = %v, want exactly one spurious change", got)
	}
}

func TestReconcile_WithTolerance(t *testing.T) {
	current := mustSnapshot(t,
		PositionRecord{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000.0001)},
		PositionRecord{SecurityID: "SEC2", Account: "ACC1", Quantity: Q(60), Value: A(700)},
	)
	previous := mustSnapshot(t,
		PositionRecord{SecurityID: "SEC1", Account: "ACC1", Quantity: Q(100), Value: A(1000)},
		PositionRecord{SecurityID: "SEC2", Account: "ACC1", Quantity: Q(50), Value: A(600)},
	)

	got := Reconcile(current, previous, WithTolerance(decimal.NewFromFloat(0.01)))

	// SEC1's 0.0001 value wiggle is absorbed; SEC2's genuine move is not.
	want := []ChangeRecord{
		{SecurityID: "SEC2", Account: "ACC1", QuantityChange: Q(10), ValueChange: A(100)},
	}
	assertChanges(t, got, want)
}

func TestReconcile_SortedOutput(t *testing.T) {
	current := mustSnapshot(t,
		PositionRecord{SecurityID: "ZZZ", Account: "ACC1", Quantity: Q(1), Value: A(1)},
		PositionRecord{SecurityID: "AAA", Account: "ACC2", Quantity: Q(1), Value: A(1)},
		PositionRecord{SecurityID: "AAA", Account: "ACC1", Quantity: Q(1), Value: A(1)},
	)

	changes := Reconcile(current, mustSnapshot(t))

	var keys []PositionKey
	for _, c := range changes {
		keys = append(keys, PositionKey{SecurityID: c.SecurityID, Account: c.Account})
	}
	want := []PositionKey{
		{SecurityID: "AAA", Account: "ACC1"},
		{SecurityID: "AAA", Account: "ACC2"},
		{SecurityID: "ZZZ", Account: "ACC1"},
	}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Reconcile() key order = %v, want %v", keys, want)
	}
}

// assertChanges compares change lists field by field, using decimal equality
// for the numeric parts.
func assertChanges(t *testing.T, got, want []ChangeRecord) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d changes (%v), want %d (%v)", len(got), got, len(want), want)
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.SecurityID != w.SecurityID || g.Account != w.Account {
			t.Errorf("change %d key = (%s, %s), want (%s, %s)", i, g.SecurityID, g.Account, w.SecurityID, w.Account)
		}
		if !g.QuantityChange.Equal(w.QuantityChange) {
			t.Errorf("change %d quantity = %s, want %s", i, g.QuantityChange, w.QuantityChange)
		}
		if !g.ValueChange.Equal(w.ValueChange) {
			t.Errorf("change %d value = %s, want %s", i, g.ValueChange, w.ValueChange)
		}
	}
}
