package logger

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harrison/tutorialbatch/internal/tutorial"
)

// colorScheme defines consistent colors for outcomes.
// Green: included
// Yellow: skipped
// Red: aborted
// Cyan: labels
type colorScheme struct {
	include *color.Color
	skip    *color.Color
	abort   *color.Color
	label   *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		include: color.New(color.FgGreen),
		skip:    color.New(color.FgYellow),
		abort:   color.New(color.FgRed),
		label:   color.New(color.FgCyan),
	}
}

// formatColorizedSummary formats outcome counts with color coding.
// Format: "N found, N included, N skipped"
func formatColorizedSummary(summary tutorial.Summary, scheme *colorScheme) string {
	found := scheme.label.Sprintf("%d found", summary.Candidates)
	included := scheme.include.Sprintf("%d included", summary.Included)
	skipped := fmt.Sprintf("%d skipped", summary.Skipped)
	if summary.Skipped > 0 {
		skipped = scheme.skip.Sprint(skipped)
	}
	return fmt.Sprintf("%s, %s, %s", found, included, skipped)
}

// OutcomeColor returns the color used for an outcome label.
func OutcomeColor(outcome tutorial.Outcome) *color.Color {
	scheme := newColorScheme()
	switch outcome {
	case tutorial.OutcomeInclude:
		return scheme.include
	case tutorial.OutcomeSkip:
		return scheme.skip
	case tutorial.OutcomeAbort:
		return scheme.abort
	default:
		return color.New(color.Reset)
	}
}
