package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finlens/lending/pdf"
	"github.com/google/subcommands"
)

type mergePDFCmd struct{}

func (*mergePDFCmd) Name() string     { return "merge-pdf" }
func (*mergePDFCmd) Synopsis() string { return "merge several PDF files into one" }
func (*mergePDFCmd) Usage() string {
	return `slj merge-pdf <output.pdf> <input1.pdf> <input2.pdf> ...

  Concatenates the input PDF files, in order, into the output file. The
  ".pdf" extension is appended to the output name when missing.
`
}

func (*mergePDFCmd) SetFlags(f *flag.FlagSet) {}

func (*mergePDFCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Error: need an output file and at least one input file.")
		return subcommands.ExitUsageError
	}

	output := pdf.OutputName(args[0])
	skipped, err := pdf.Merge(args[1:], output)
	for _, s := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: %q is not a PDF file. Skipping.\n", s)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(output)
	return subcommands.ExitSuccess
}
