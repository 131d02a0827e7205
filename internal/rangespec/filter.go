package rangespec

import "strings"

// Mode selects how an unset spec behaves.
type Mode int

const (
	// ModeInclude treats an unset spec or "all" as matching everything.
	ModeInclude Mode = iota
	// ModeExclude treats an unset spec as matching nothing.
	ModeExclude
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case ModeInclude:
		return "include"
	case ModeExclude:
		return "exclude"
	default:
		return "unknown"
	}
}

// Filter is a parsed spec together with its unset/"all" semantics.
type Filter struct {
	mode Mode
	raw  string
	all  bool
	set  *Set
}

// NewInclude builds an inclusion filter. Empty or "all" matches every value.
func NewInclude(spec string) (Filter, error) {
	return newFilter(ModeInclude, spec)
}

// NewExclude builds an exclusion filter. Empty matches no value and "all"
// matches every value.
func NewExclude(spec string) (Filter, error) {
	return newFilter(ModeExclude, spec)
}

func newFilter(mode Mode, spec string) (Filter, error) {
	trimmed := strings.TrimSpace(spec)
	f := Filter{mode: mode, raw: trimmed}

	if strings.EqualFold(trimmed, All) {
		f.all = true
		return f, nil
	}

	set, err := Parse(trimmed)
	if err != nil {
		return Filter{}, err
	}
	f.set = set
	return f, nil
}

// Active reports whether the filter restricts anything. An inactive include
// filter lets everything through and an inactive exclude filter rejects
// nothing.
func (f Filter) Active() bool {
	if f.mode == ModeInclude {
		return !f.all && f.raw != ""
	}
	return f.all || f.raw != ""
}

// Matches reports whether n is selected by the spec. For an inactive
// include filter every value matches; for an inactive exclude filter none
// does.
func (f Filter) Matches(n int) bool {
	if f.all {
		return true
	}
	if f.raw == "" {
		return f.mode == ModeInclude
	}
	return f.set.Contains(n)
}

// Mode returns the filter's mode.
func (f Filter) Mode() Mode {
	return f.mode
}

// String returns the spec as configured.
func (f Filter) String() string {
	return f.raw
}
