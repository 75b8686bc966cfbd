// Command pdfmerge concatenates PDF files into a single document.
//
// Usage: pdfmerge <output.pdf> <input1.pdf> <input2.pdf> ...
package main

import (
	"fmt"
	"os"

	"github.com/finlens/lending/pdf"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: pdfmerge <output.pdf> <input1.pdf> <input2.pdf> ...")
		fmt.Fprintln(os.Stderr, "\nExample:")
		fmt.Fprintln(os.Stderr, "  pdfmerge merged.pdf file1.pdf file2.pdf file3.pdf")
		os.Exit(1)
	}

	output := pdf.OutputName(os.Args[1])
	inputs := os.Args[2:]

	skipped, err := pdf.Merge(inputs, output)
	for _, s := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: %q is not a PDF file. Skipping.\n", s)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error merging PDFs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Merged %d files into %s\n", len(inputs)-len(skipped), output)
}
