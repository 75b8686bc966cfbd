package cmd

import (
	"context"
	"flag"

	"github.com/finlens/lending/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	journalFlags
	currency string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render the journal as a report in the terminal" }
func (*reportCmd) Usage() string {
	return `slj report -current <file> [-previous <file>] [-date <date>] [-tolerance <n>] [-currency USD]

  Runs the same reconciliation as 'generate' but renders the journal and its
  summaries as a report in the terminal instead of writing a file.
`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	p.journalFlags.SetFlags(f)
	f.StringVar(&p.currency, "currency", "USD", "ISO currency used to display amounts.")
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, status := p.buildJournal()
	if status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.JournalMarkdown(renderer.NewJournalReport(entries, p.currency)))
	return subcommands.ExitSuccess
}
