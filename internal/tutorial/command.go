package tutorial

import (
	"fmt"
	"strings"
)

// DiscardTarget is the redirect target used when output is not captured.
const DiscardTarget = "/dev/null"

// Entry is a tutorial directory that survived the filter chain.
type Entry struct {
	Section    int
	Subsection int
	Dir        string
	OutputFile string
}

// NewEntry builds an Entry and derives its output filename.
func NewEntry(dir string, section, subsection int) Entry {
	return Entry{
		Section:    section,
		Subsection: subsection,
		Dir:        dir,
		OutputFile: OutputFilename(section, subsection),
	}
}

// Command is the pair of script lines emitted for one entry.
type Command struct {
	Progress string
	Line     string
}

// OutputFilename returns tutorial-SS-TT.png with both numbers zero-padded to
// two digits. Wider numbers are printed in full.
func OutputFilename(section, subsection int) string {
	return fmt.Sprintf("tutorial-%02d-%02d.png", section, subsection)
}

// RedirectTarget returns the file the renderer's output goes to, relative to
// the output directory.
func RedirectTarget(outputFile string, redirect bool) string {
	if !redirect {
		return DiscardTarget
	}
	return strings.TrimSuffix(outputFile, ".png") + ".txt"
}

// AssembleParameters appends the image format flags to the base renderer
// parameters.
func AssembleParameters(base string, png, svg bool) string {
	params := base
	if png {
		params += " -png "
	}
	if svg {
		params += " -svg "
	}
	return params
}

// Options are the run-wide inputs to command synthesis.
type Options struct {
	Bin        string
	OutputDir  string
	Parameters string
	PNG        bool
	SVG        bool
	Redirect   bool
	// Sort orders included entries by (section, subsection) instead of
	// listing order.
	Sort bool
}

// Synthesizer builds command lines. The parameter string is assembled once.
type Synthesizer struct {
	bin        string
	outputDir  string
	parameters string
	redirect   bool
}

// NewSynthesizer creates a Synthesizer from run options.
func NewSynthesizer(opts Options) *Synthesizer {
	return &Synthesizer{
		bin:        opts.Bin,
		outputDir:  opts.OutputDir,
		parameters: AssembleParameters(opts.Parameters, opts.PNG, opts.SVG),
		redirect:   opts.Redirect,
	}
}

// Parameters returns the assembled parameter string.
func (s *Synthesizer) Parameters() string {
	return s.parameters
}

// Build returns the progress and command lines for entry. Token order and
// spacing are fixed because the output is run as a shell script.
func (s *Synthesizer) Build(entry Entry) Command {
	target := RedirectTarget(entry.OutputFile, s.redirect)
	line := fmt.Sprintf("%s -conf %s/%s -outputdir %s -outputfile %s %s &> %s/%s",
		s.bin, entry.Dir, MarkerFile, s.outputDir, entry.OutputFile, s.parameters, s.outputDir, target)

	return Command{
		Progress: fmt.Sprintf("echo now making image %d.%d", entry.Section, entry.Subsection),
		Line:     line,
	}
}
