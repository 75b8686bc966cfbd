// Package pdf concatenates PDF documents.
//
// It is a thin, validating wrapper around pdfcpu's merge: callers get early,
// friendly errors for missing files and a predictable output name, and
// pdfcpu does the actual PDF surgery.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Merge concatenates the input PDF files, in the order given, into a single
// document at output. It returns the list of inputs that were skipped
// because they are not PDF files.
//
// Every input must exist. Inputs without a .pdf extension are skipped, not
// fatal; the merge fails only when no usable input remains.
func Merge(inputs []string, output string) (skipped []string, err error) {
	var usable []string
	for _, input := range inputs {
		if _, err := os.Stat(input); err != nil {
			return nil, fmt.Errorf("input file %q not found: %w", input, err)
		}
		if !strings.EqualFold(filepath.Ext(input), ".pdf") {
			skipped = append(skipped, input)
			continue
		}
		usable = append(usable, input)
	}
	if len(usable) == 0 {
		return skipped, fmt.Errorf("no PDF files to merge")
	}

	if err := api.MergeCreateFile(usable, OutputName(output), false, nil); err != nil {
		return skipped, fmt.Errorf("cannot merge PDFs: %w", err)
	}
	return skipped, nil
}

// OutputName returns the output path with a ".pdf" extension appended when
// missing.
func OutputName(output string) string {
	if strings.EqualFold(filepath.Ext(output), ".pdf") {
		return output
	}
	return output + ".pdf"
}
