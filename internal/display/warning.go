// Package display formats user-facing warnings for the tutorialbatch CLI.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Paths      []string // Related directories or files (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning to out. colorOutput wraps it in yellow.
func (w Warning) Display(out io.Writer, colorOutput bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Paths) > 0 {
		b.WriteString("    ")
		if len(w.Paths) == 1 {
			b.WriteString("Affected path:\n")
		} else {
			b.WriteString("Affected paths:\n")
		}
		for i, p := range w.Paths {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, p))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if colorOutput {
		fmt.Fprint(out, color.New(color.FgYellow).Sprint(b.String()))
		return
	}
	fmt.Fprint(out, b.String())
}

// NoTutorialsMatched builds the warning shown when a run emits no commands.
func NoTutorialsMatched(root string, candidates int) Warning {
	if candidates == 0 {
		return Warning{
			Title:      "No tutorial directories found",
			Message:    fmt.Sprintf("Nothing under %s matches <section>/<subsection>/circos.conf", root),
			Paths:      []string{root},
			Suggestion: "Point --root at the directory that holds the numbered section directories",
		}
	}
	return Warning{
		Title:      "All tutorials were filtered out",
		Message:    fmt.Sprintf("%d tutorial directories found, none passed the section/subsection filters", candidates),
		Suggestion: "Check --sections, --sections-skip, --subsections and --subsections-skip",
	}
}
