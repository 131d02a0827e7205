// Package rangespec parses compact integer set descriptions such as
// "1-3,5,7-9" and answers membership queries against them.
//
// A spec is a comma-separated list of tokens. Each token is either a single
// non-negative integer or an inclusive range "low-high" with low <= high.
// Whitespace around tokens and around the hyphen is ignored, as are empty
// tokens.
package rangespec

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// All is the literal that selects every value in an inclusion filter.
const All = "all"

// ErrInvalidRangeSpec is returned for specs that cannot be parsed.
var ErrInvalidRangeSpec = errors.New("invalid range spec")

// SpecError describes which token of which spec failed to parse.
type SpecError struct {
	Spec   string // Full spec as given
	Token  string // Offending token
	Reason string // Human-readable cause
}

// Error implements the error interface for SpecError.
func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid range spec %q: token %q: %s", e.Spec, e.Token, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidRangeSpec.
func (e *SpecError) Unwrap() error {
	return ErrInvalidRangeSpec
}

// Interval is an inclusive range of integers.
type Interval struct {
	Low  int
	High int
}

// Set is an immutable union of intervals.
type Set struct {
	intervals []Interval
}

// Parse parses spec into a Set. An empty spec yields an empty set.
func Parse(spec string) (*Set, error) {
	var intervals []Interval

	for _, raw := range strings.Split(spec, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}

		iv, err := parseToken(token)
		if err != nil {
			return nil, &SpecError{Spec: spec, Token: token, Reason: err.Error()}
		}
		intervals = append(intervals, iv)
	}

	return &Set{intervals: merge(intervals)}, nil
}

// parseToken parses a single "N" or "A-B" token.
func parseToken(token string) (Interval, error) {
	lowStr, highStr, isRange := strings.Cut(token, "-")
	if !isRange {
		n, err := parseNumber(token)
		if err != nil {
			return Interval{}, err
		}
		return Interval{Low: n, High: n}, nil
	}

	low, err := parseNumber(strings.TrimSpace(lowStr))
	if err != nil {
		return Interval{}, fmt.Errorf("range start: %w", err)
	}
	high, err := parseNumber(strings.TrimSpace(highStr))
	if err != nil {
		return Interval{}, fmt.Errorf("range end: %w", err)
	}
	if high < low {
		return Interval{}, fmt.Errorf("range end %d is less than start %d", high, low)
	}
	return Interval{Low: low, High: high}, nil
}

// parseNumber accepts only plain decimal digits, so signs are rejected.
func parseNumber(s string) (int, error) {
	if s == "" {
		return 0, errors.New("missing number")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a non-negative integer", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return n, nil
}

// merge sorts intervals and joins overlapping or adjacent ones.
func merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Low < sorted[j].Low
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Low <= last.High+1 {
			if iv.High > last.High {
				last.High = iv.High
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// Contains reports whether n is a member of the set.
func (s *Set) Contains(n int) bool {
	if s == nil {
		return false
	}
	// First interval whose High is >= n.
	i := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].High >= n
	})
	return i < len(s.intervals) && s.intervals[i].Low <= n
}

// Empty reports whether the set has no members.
func (s *Set) Empty() bool {
	return s == nil || len(s.intervals) == 0
}

// Intervals returns a copy of the merged intervals in ascending order.
func (s *Set) Intervals() []Interval {
	if s == nil {
		return nil
	}
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

// String returns the canonical form of the set, e.g. "1-3,5".
func (s *Set) String() string {
	if s.Empty() {
		return ""
	}
	parts := make([]string, 0, len(s.intervals))
	for _, iv := range s.intervals {
		if iv.Low == iv.High {
			parts = append(parts, strconv.Itoa(iv.Low))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", iv.Low, iv.High))
		}
	}
	return strings.Join(parts, ",")
}
