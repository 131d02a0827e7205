package tutorial

import (
	"fmt"
	"io"
	"sort"
)

// Logger receives diagnostics while a plan is built.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// Result is the outcome for one candidate.
type Result struct {
	Candidate Candidate
	Entry     Entry
	Outcome   Outcome
	// Reason explains a skip or abort.
	Reason  string
	Command Command
}

// Summary counts outcomes of a plan.
type Summary struct {
	Candidates int
	Included   int
	Skipped    int
}

// Generator turns a tutorial tree into script lines.
type Generator struct {
	filters Filters
	synth   *Synthesizer
	sort    bool
	logger  Logger
}

// NewGenerator creates a Generator. logger may be nil.
func NewGenerator(filters Filters, opts Options, logger Logger) *Generator {
	return &Generator{
		filters: filters,
		synth:   NewSynthesizer(opts),
		sort:    opts.Sort,
		logger:  logger,
	}
}

// Plan walks root and decides the outcome of every candidate. On an
// unparseable path it stops and returns the results so far, ending with the
// aborting one, together with an error wrapping ErrUnparseablePath.
func (g *Generator) Plan(root string) ([]Result, error) {
	walked, err := Walk(root)
	if err != nil {
		return nil, err
	}
	for _, walkErr := range walked.Errors {
		g.warn(walkErr.Error())
	}

	results := make([]Result, 0, len(walked.Candidates))
	for _, candidate := range walked.Candidates {
		result, err := g.evaluate(candidate)
		results = append(results, result)
		if err != nil {
			return results, err
		}
	}

	if g.sort {
		sort.SliceStable(results, func(i, j int) bool {
			a, b := results[i].Entry, results[j].Entry
			if a.Section != b.Section {
				return a.Section < b.Section
			}
			return a.Subsection < b.Subsection
		})
	}

	return results, nil
}

func (g *Generator) evaluate(candidate Candidate) (Result, error) {
	// Only the part below root is scanned, so digit-named ancestors of root
	// are never mistaken for a section.
	section, subsection, err := ParseNumbers(candidate.Rel)
	if err != nil {
		err = &PathError{Path: candidate.Dir}
		return Result{Candidate: candidate, Outcome: OutcomeAbort, Reason: err.Error()}, err
	}

	entry := NewEntry(candidate.Dir, section, subsection)
	outcome, reason := g.filters.Check(section, subsection)
	result := Result{
		Candidate: candidate,
		Entry:     entry,
		Outcome:   outcome,
		Reason:    reason,
	}

	if outcome != OutcomeInclude {
		g.debug(fmt.Sprintf("skip %s: %s", candidate.Dir, reason))
		return result, nil
	}

	result.Command = g.synth.Build(entry)
	g.debug(fmt.Sprintf("include %s as %s", candidate.Dir, entry.OutputFile))
	return result, nil
}

// Emit writes a progress line and a command line for every included result.
func (g *Generator) Emit(w io.Writer, results []Result) error {
	for _, r := range results {
		if r.Outcome != OutcomeInclude {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", r.Command.Progress, r.Command.Line); err != nil {
			return fmt.Errorf("failed to write command for %s: %w", r.Candidate.Dir, err)
		}
	}
	return nil
}

// Generate plans root and emits the script to w. Nothing is written when the
// plan aborts.
func (g *Generator) Generate(w io.Writer, root string) (Summary, error) {
	results, err := g.Plan(root)
	if err != nil {
		return Summary{}, err
	}
	if err := g.Emit(w, results); err != nil {
		return Summary{}, err
	}
	return Summarize(results), nil
}

// Summarize counts the outcomes in results.
func Summarize(results []Result) Summary {
	s := Summary{Candidates: len(results)}
	for _, r := range results {
		switch r.Outcome {
		case OutcomeInclude:
			s.Included++
		case OutcomeSkip:
			s.Skipped++
		}
	}
	return s
}

func (g *Generator) debug(msg string) {
	if g.logger != nil {
		g.logger.LogDebug(msg)
	}
}

func (g *Generator) warn(msg string) {
	if g.logger != nil {
		g.logger.LogWarn(msg)
	}
}
