// Package lending generates accounting journal entries for a securities
// lending program by reconciling two snapshots of borrowed positions.
//
// The core functionalities include:
//   - Snapshot Loading: Reading position snapshots (security, account,
//     quantity, value) from CSV, Excel, or JSON sources into an in-memory,
//     duplicate-checked Snapshot.
//   - Reconciliation: Computing per-(security, account) quantity and value
//     deltas between a current snapshot and an optional previous one.
//   - Journalization: Mapping each non-zero quantity delta to a double-entry
//     journal row, with the direction encoded by which account is debited
//     (Securities Borrowed vs Payable for Securities).
//   - Export: Writing the resulting journal, with per-security and
//     per-account summaries, to CSV or Excel files.
//
// This package serves as the foundational logic for the `slj` command-line
// tool. All operations are pure functions of their inputs: snapshots are
// read-only once built, and nothing is persisted between runs beyond the
// exported journal file.
package lending
