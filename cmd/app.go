// Package cmd implements the CLI application to generate lending journals.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/finlens/lending"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&generateCmd{}, "journal")
	c.Register(&reportCmd{}, "journal")
	c.Register(&sampleCmd{}, "journal")

	c.Register(&mergePDFCmd{}, "pdf")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var outputDir = flag.String("output-dir", "output", "Directory where generated files are written")

// loadSnapshots loads the current snapshot and, when previousPath is not
// empty, the previous one. A missing previous path returns a nil previous
// snapshot: the reconciler then treats every position as newly opened.
func loadSnapshots(currentPath, previousPath string) (current, previous *lending.Snapshot, err error) {
	current, err = lending.LoadSnapshot(currentPath)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load current snapshot: %w", err)
	}
	if previousPath != "" {
		previous, err = lending.LoadSnapshot(previousPath)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot load previous snapshot: %w", err)
		}
	}
	return current, previous, nil
}

// journalDate parses the -date flag, defaulting to today.
func journalDate(flagValue string) (lending.Date, error) {
	if flagValue == "" {
		return lending.Today(), nil
	}
	return lending.ParseDate(flagValue)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot do its job.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
