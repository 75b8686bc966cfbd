package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finlens/lending"
	"github.com/google/subcommands"
)

type sampleCmd struct{}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "write a sample position snapshot to try the tool" }
func (*sampleCmd) Usage() string {
	return `slj sample

  Writes sample_positions.csv into the output directory. Feed it back to
  'generate' or 'report' to see the full workflow without real data.
`
}

func (*sampleCmd) SetFlags(f *flag.FlagSet) {}

func (*sampleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path, err := lending.WriteSampleCSV(*outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(path)
	return subcommands.ExitSuccess
}
