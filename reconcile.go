package lending

import "github.com/shopspring/decimal"

// ChangeRecord is the per-key outcome of reconciling two snapshots: how much
// the quantity and value of one (security, account) position moved. It only
// lives between reconciliation and journalization.
type ChangeRecord struct {
	SecurityID     string
	Account        string
	QuantityChange Quantity
	ValueChange    Amount
}

// ReconcileOption configures a reconciliation run.
type ReconcileOption func(*reconcileOptions)

type reconcileOptions struct {
	tolerance decimal.Decimal
}

// WithTolerance makes deltas whose absolute value is at most t count as
// zero. By default change detection is exact: a position whose value moved
// by 0.000001 is a change. Sources that round their two snapshots
// differently can opt in to a tolerance instead.
func WithTolerance(t decimal.Decimal) ReconcileOption {
	return func(o *reconcileOptions) { o.tolerance = t }
}

// Reconcile compares current against previous and returns one ChangeRecord
// per (security, account) key whose quantity or value differ.
//
// A nil previous means there is nothing to compare against: every current
// position is treated as newly opened, so its full quantity and value are
// the change. Otherwise the two snapshots are outer-joined on the key; a key
// missing on one side contributes zero quantity and zero value for that
// side. Keys whose both deltas are zero are dropped entirely.
//
// The result is sorted by (security, account). Reconcile has no side
// effects and keeps no state between calls.
func Reconcile(current, previous *Snapshot, opts ...ReconcileOption) []ChangeRecord {
	var o reconcileOptions
	for _, opt := range opts {
		opt(&o)
	}

	if previous == nil {
		changes := make([]ChangeRecord, 0, current.Len())
		for _, key := range current.Keys() {
			r, _ := current.Get(key)
			changes = append(changes, ChangeRecord{
				SecurityID:     r.SecurityID,
				Account:        r.Account,
				QuantityChange: r.Quantity,
				ValueChange:    r.Value,
			})
		}
		return changes
	}

	// Union of keys from both sides, deduplicated and sorted.
	seen := make(map[PositionKey]struct{}, current.Len()+previous.Len())
	keys := make([]PositionKey, 0, current.Len()+previous.Len())
	for _, r := range current.Records() {
		if _, ok := seen[r.Key()]; !ok {
			seen[r.Key()] = struct{}{}
			keys = append(keys, r.Key())
		}
	}
	for _, r := range previous.Records() {
		if _, ok := seen[r.Key()]; !ok {
			seen[r.Key()] = struct{}{}
			keys = append(keys, r.Key())
		}
	}
	sortKeys(keys)

	var changes []ChangeRecord
	for _, key := range keys {
		cur, _ := current.Get(key)   // zero record when absent
		prev, _ := previous.Get(key) // zero record when absent

		dq := cur.Quantity.Sub(prev.Quantity)
		dv := cur.Value.Sub(prev.Value)
		if o.withinTolerance(dq.Decimal()) && o.withinTolerance(dv.Decimal()) {
			continue
		}
		changes = append(changes, ChangeRecord{
			SecurityID:     key.SecurityID,
			Account:        key.Account,
			QuantityChange: dq,
			ValueChange:    dv,
		})
	}
	return changes
}

// withinTolerance reports whether a delta counts as "no change".
// With the default zero tolerance this is an exact zero test.
func (o *reconcileOptions) withinTolerance(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(o.tolerance)
}
