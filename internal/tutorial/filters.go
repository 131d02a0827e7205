package tutorial

import (
	"fmt"

	"github.com/harrison/tutorialbatch/internal/rangespec"
)

// Outcome is the decision taken for a single candidate.
type Outcome int

const (
	// OutcomeInclude means a command is emitted for the candidate.
	OutcomeInclude Outcome = iota
	// OutcomeSkip means a filter rejected the candidate.
	OutcomeSkip
	// OutcomeAbort means the candidate invalidates the whole run.
	OutcomeAbort
)

// String returns the string representation of Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeInclude:
		return "include"
	case OutcomeSkip:
		return "skip"
	case OutcomeAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// Filters holds the four parsed range filters of a run.
type Filters struct {
	Sections        rangespec.Filter
	SectionsSkip    rangespec.Filter
	Subsections     rangespec.Filter
	SubsectionsSkip rangespec.Filter
}

// NewFilters parses all four specs once. The first invalid spec is returned
// as an error wrapping rangespec.ErrInvalidRangeSpec.
func NewFilters(sections, sectionsSkip, subsections, subsectionsSkip string) (Filters, error) {
	var (
		f   Filters
		err error
	)

	if f.Sections, err = rangespec.NewInclude(sections); err != nil {
		return Filters{}, fmt.Errorf("sections: %w", err)
	}
	if f.SectionsSkip, err = rangespec.NewExclude(sectionsSkip); err != nil {
		return Filters{}, fmt.Errorf("sections_skip: %w", err)
	}
	if f.Subsections, err = rangespec.NewInclude(subsections); err != nil {
		return Filters{}, fmt.Errorf("subsections: %w", err)
	}
	if f.SubsectionsSkip, err = rangespec.NewExclude(subsectionsSkip); err != nil {
		return Filters{}, fmt.Errorf("subsections_skip: %w", err)
	}

	return f, nil
}

// Check applies the filter chain in order, stopping at the first rejection.
// The returned reason is empty for OutcomeInclude.
func (f Filters) Check(section, subsection int) (Outcome, string) {
	if !f.Sections.Matches(section) {
		return OutcomeSkip, fmt.Sprintf("section %d not in sections %q", section, f.Sections.String())
	}
	if f.SectionsSkip.Matches(section) {
		return OutcomeSkip, fmt.Sprintf("section %d in sections_skip %q", section, f.SectionsSkip.String())
	}
	if !f.Subsections.Matches(subsection) {
		return OutcomeSkip, fmt.Sprintf("subsection %d not in subsections %q", subsection, f.Subsections.String())
	}
	if f.SubsectionsSkip.Matches(subsection) {
		return OutcomeSkip, fmt.Sprintf("subsection %d in subsections_skip %q", subsection, f.SubsectionsSkip.String())
	}
	return OutcomeInclude, ""
}
