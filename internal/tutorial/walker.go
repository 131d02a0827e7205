// Package tutorial discovers tutorial directories laid out as
// <root>/<section>/<subsection>/circos.conf and synthesizes one renderer
// command line per tutorial.
package tutorial

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// MarkerFile is the file whose presence makes a directory a tutorial.
const MarkerFile = "circos.conf"

// Candidate is a two-level-deep directory that contains MarkerFile.
type Candidate struct {
	// Dir is the candidate directory, root joined with both components.
	Dir string
	// Rel is Dir relative to the root, "<section>/<subsection>" for
	// well-formed trees.
	Rel string
}

// WalkResult contains the candidates found under a root.
type WalkResult struct {
	// Candidates are in listing order: os.ReadDir sorts by name.
	Candidates []Candidate
	// Errors are non-fatal problems, e.g. an unreadable section directory.
	Errors []error
}

// Walk lists root two levels deep and returns every grandchild directory
// that contains MarkerFile. Entries that are not directories and directories
// without the marker are skipped silently.
func Walk(root string) (*WalkResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRootNotFound, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	sections, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRootNotFound, root, err)
	}

	result := &WalkResult{
		Candidates: make([]Candidate, 0),
		Errors:     make([]error, 0),
	}

	for _, section := range sections {
		sectionPath := filepath.Join(root, section.Name())
		if !isDir(sectionPath, section) {
			continue
		}

		subsections, err := os.ReadDir(sectionPath)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error reading %s: %w", sectionPath, err))
			continue
		}

		for _, subsection := range subsections {
			dir := filepath.Join(sectionPath, subsection.Name())
			if !isDir(dir, subsection) {
				continue
			}
			if !hasMarker(dir) {
				continue
			}
			result.Candidates = append(result.Candidates, Candidate{
				Dir: dir,
				Rel: section.Name() + "/" + subsection.Name(),
			})
		}
	}

	return result, nil
}

// isDir follows symlinks so linked tutorial directories are still found.
func isDir(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func hasMarker(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, MarkerFile))
	return err == nil && !info.IsDir()
}

// ParseNumbers extracts the section and subsection numbers from path. It
// takes the first two adjacent path components that are pure digit
// sequences.
func ParseNumbers(path string) (section, subsection int, err error) {
	components := strings.Split(filepath.ToSlash(path), "/")

	for i := 0; i+1 < len(components); i++ {
		if !isDigits(components[i]) || !isDigits(components[i+1]) {
			continue
		}
		s, errSection := strconv.Atoi(components[i])
		sub, errSubsection := strconv.Atoi(components[i+1])
		if errSection != nil || errSubsection != nil {
			break
		}
		return s, sub, nil
	}

	return 0, 0, &PathError{Path: path}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
