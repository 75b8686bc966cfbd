// Package renderer renders journal reports to markdown.
//
// Rendering is split in two phases: a report type gathers and formats all
// the data (so templates stay dumb), then a main template stitches together
// partial templates, all embedded in the binary.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// JournalMarkdown renders the journal report to a markdown string.
func JournalMarkdown(r *JournalReport) string {
	partials := map[string]string{
		"journal_title":     "templates/journal_title.md",
		"journal_entries":   "templates/journal_entries.md",
		"journal_summaries": "templates/journal_summaries.md",
	}
	return renderTemplate("journal", "templates/journal.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
