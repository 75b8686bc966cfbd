package lending

import (
	"sort"
)

// PositionRecord describes one borrowed position: a holding of a security in
// an account, with its quantity and market value. Records are immutable once
// loaded into a snapshot.
type PositionRecord struct {
	SecurityID   string
	SecurityName string // optional, informational only
	Account      string
	Quantity     Quantity
	Value        Amount
}

// Key returns the (security, account) identity of the record.
func (r PositionRecord) Key() PositionKey {
	return PositionKey{SecurityID: r.SecurityID, Account: r.Account}
}

// PositionKey uniquely identifies a position within one snapshot.
type PositionKey struct {
	SecurityID string
	Account    string
}

// Snapshot is one point-in-time set of position records, indexed by
// (security, account). Within a snapshot that key is unique.
type Snapshot struct {
	records []PositionRecord
	index   map[PositionKey]int
}

// NewSnapshot builds a snapshot from records. It returns a
// *DuplicateKeyError if two records share the same (security, account) key.
func NewSnapshot(records ...PositionRecord) (*Snapshot, error) {
	s := &Snapshot{
		records: make([]PositionRecord, 0, len(records)),
		index:   make(map[PositionKey]int, len(records)),
	}
	for _, r := range records {
		if err := s.add(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Snapshot) add(r PositionRecord) error {
	key := r.Key()
	if _, exists := s.index[key]; exists {
		return &DuplicateKeyError{SecurityID: r.SecurityID, Account: r.Account}
	}
	s.index[key] = len(s.records)
	s.records = append(s.records, r)
	return nil
}

// Len returns the number of positions in the snapshot.
func (s *Snapshot) Len() int { return len(s.records) }

// Get returns the record for the given key, if present.
func (s *Snapshot) Get(key PositionKey) (PositionRecord, bool) {
	i, ok := s.index[key]
	if !ok {
		return PositionRecord{}, false
	}
	return s.records[i], true
}

// Records returns the snapshot's records in load order.
// The returned slice must not be mutated.
func (s *Snapshot) Records() []PositionRecord { return s.records }

// Keys returns all position keys sorted by (security, account).
func (s *Snapshot) Keys() []PositionKey {
	keys := make([]PositionKey, 0, len(s.records))
	for _, r := range s.records {
		keys = append(keys, r.Key())
	}
	sortKeys(keys)
	return keys
}

func sortKeys(keys []PositionKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].SecurityID != keys[j].SecurityID {
			return keys[i].SecurityID < keys[j].SecurityID
		}
		return keys[i].Account < keys[j].Account
	})
}
