package lending

import "fmt"

// SchemaError reports a snapshot source whose shape does not match the
// required contract: a missing column, or a cell that cannot be parsed into
// the column's type. It is raised at the loader boundary, before any
// reconciliation runs, so the core can assume well-formed input.
type SchemaError struct {
	Field  string // the offending column or field name
	Reason string // what was wrong with it
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid snapshot schema: field %q: %s", e.Field, e.Reason)
}

// DuplicateKeyError reports two records claiming the same
// (security, account) key within a single snapshot.
//
// An outer join over duplicated keys would silently multiply rows, so
// snapshot construction fails loudly instead.
type DuplicateKeyError struct {
	SecurityID string
	Account    string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate position key: security %q account %q", e.SecurityID, e.Account)
}
