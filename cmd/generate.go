package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/finlens/lending"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// journalFlags are the inputs shared by every command that runs the
// reconciliation pipeline.
type journalFlags struct {
	current   string
	previous  string
	date      string
	tolerance string
}

func (p *journalFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.current, "current", "", "Current position snapshot file (csv, xlsx or json).")
	f.StringVar(&p.previous, "previous", "", "Previous position snapshot file. Optional.")
	f.StringVar(&p.date, "date", "", "Journal date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&p.tolerance, "tolerance", "", "Treat deltas up to this magnitude as zero. Default is exact comparison.")
}

// buildJournal loads both snapshots, reconciles them, and builds the dated
// entries. On failure it has already written the error to stderr and
// returns the exit status to propagate.
func (p *journalFlags) buildJournal() ([]lending.JournalEntry, subcommands.ExitStatus) {
	if p.current == "" {
		fmt.Fprintln(os.Stderr, "Error: -current is required.")
		return nil, subcommands.ExitUsageError
	}

	on, err := journalDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return nil, subcommands.ExitUsageError
	}

	var opts []lending.ReconcileOption
	if p.tolerance != "" {
		tol, err := decimal.NewFromString(p.tolerance)
		if err != nil || tol.IsNegative() {
			fmt.Fprintf(os.Stderr, "Error: -tolerance must be a non-negative number, got %q.\n", p.tolerance)
			return nil, subcommands.ExitUsageError
		}
		opts = append(opts, lending.WithTolerance(tol))
	}

	current, previous, err := loadSnapshots(p.current, p.previous)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	changes := lending.Reconcile(current, previous, opts...)
	return lending.BuildEntries(changes, on), subcommands.ExitSuccess
}

type generateCmd struct {
	journalFlags
	format string
}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "generate journal entries from position snapshots" }
func (*generateCmd) Usage() string {
	return `slj generate -current <file> [-previous <file>] [-date <date>] [-tolerance <n>] [-format csv|xlsx]

  Reconciles the current position snapshot against the previous one and
  writes the resulting journal entries into the output directory. Without
  -previous, every current position is journaled as a new borrow.

Usage Examples:
# Journal today's changes against yesterday's file, as an Excel workbook.
$ slj generate -current today.csv -previous yesterday.csv -format xlsx

`
}

func (p *generateCmd) SetFlags(f *flag.FlagSet) {
	p.journalFlags.SetFlags(f)
	f.StringVar(&p.format, "format", "csv", "Output format: csv or xlsx.")
}

func (p *generateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, status := p.buildJournal()
	if status != subcommands.ExitSuccess {
		return status
	}

	path, err := lending.ExportJournal(*outputDir, p.format, entries, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Generated %d journal entries.\n", len(entries))
	fmt.Println(path)
	return subcommands.ExitSuccess
}
