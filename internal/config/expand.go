package config

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrUnknownKey is returned when an expression references a missing key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrExpressionCycle is returned when keys reference each other in a loop.
	ErrExpressionCycle = errors.New("config expression cycle")
	// ErrInvalidExpression is returned for expressions outside the grammar.
	ErrInvalidExpression = errors.New("invalid config expression")
)

// expressionPattern finds __...__ segments. Only segments whose body starts
// like a term are evaluated; anything else is left as literal text.
var expressionPattern = regexp.MustCompile(`__(.+?)__`)

const confPrefix = "$CONF{"

// Expand replaces __expr__ segments in string values with their values.
//
// The grammar is deliberately small:
//
//	expr := term ('.' term)*
//	term := $CONF{key} | "literal" | 'literal' | digits
//
// '.' concatenates. $CONF{key} yields the expanded value of another key;
// boolean keys yield "true" or "false".
func (c *Config) Expand() error {
	e := &expander{
		fields:   c.fieldPointers(),
		resolved: make(map[string]string),
		visiting: make(map[string]bool),
	}

	keys := make([]string, 0, len(e.fields))
	for key, ptr := range e.fields {
		if _, ok := ptr.(*string); ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	expanded := make(map[string]string, len(keys))
	for _, key := range keys {
		v, err := e.resolve(key)
		if err != nil {
			return err
		}
		expanded[key] = v
	}

	// Write back only after every value resolved against the originals.
	for key, v := range expanded {
		*e.fields[key].(*string) = v
	}
	return nil
}

type expander struct {
	fields   map[string]interface{}
	resolved map[string]string
	visiting map[string]bool
	stack    []string
}

func (e *expander) resolve(key string) (string, error) {
	if v, ok := e.resolved[key]; ok {
		return v, nil
	}

	ptr, ok := e.fields[key]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	if b, ok := ptr.(*bool); ok {
		return strconv.FormatBool(*b), nil
	}

	if e.visiting[key] {
		chain := append(append([]string{}, e.stack...), key)
		return "", fmt.Errorf("%w: %s", ErrExpressionCycle, strings.Join(chain, " -> "))
	}
	e.visiting[key] = true
	e.stack = append(e.stack, key)
	defer func() {
		e.visiting[key] = false
		e.stack = e.stack[:len(e.stack)-1]
	}()

	v, err := e.substitute(*ptr.(*string))
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	e.resolved[key] = v
	return v, nil
}

func (e *expander) substitute(s string) (string, error) {
	var firstErr error
	out := expressionPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}
		body := match[2 : len(match)-2]
		if !startsTerm(body) {
			return match
		}
		v, err := e.evaluate(body)
		if err != nil {
			firstErr = err
			return match
		}
		return v
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

func startsTerm(body string) bool {
	body = strings.TrimLeft(body, " \t")
	if strings.HasPrefix(body, confPrefix) {
		return true
	}
	if body == "" {
		return false
	}
	switch c := body[0]; {
	case c == '"', c == '\'':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	return false
}

// evaluate parses and evaluates one expression body.
func (e *expander) evaluate(body string) (string, error) {
	var sb strings.Builder
	rest := body

	for {
		rest = strings.TrimLeft(rest, " \t")
		value, remaining, err := e.term(rest)
		if errors.Is(err, ErrUnknownKey) || errors.Is(err, ErrExpressionCycle) {
			return "", err
		}
		if err != nil {
			return "", fmt.Errorf("%w %q: %v", ErrInvalidExpression, body, err)
		}
		sb.WriteString(value)

		remaining = strings.TrimLeft(remaining, " \t")
		if remaining == "" {
			return sb.String(), nil
		}
		if remaining[0] != '.' {
			return "", fmt.Errorf("%w %q: expected '.' before %q", ErrInvalidExpression, body, remaining)
		}
		rest = remaining[1:]
	}
}

// term consumes one term from the front of s.
func (e *expander) term(s string) (value, rest string, err error) {
	switch {
	case strings.HasPrefix(s, confPrefix):
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return "", "", errors.New("unterminated $CONF{")
		}
		key := strings.TrimSpace(s[len(confPrefix):end])
		v, err := e.resolve(key)
		if err != nil {
			return "", "", err
		}
		return v, s[end+1:], nil

	case s != "" && (s[0] == '"' || s[0] == '\''):
		quote := s[0]
		end := strings.IndexByte(s[1:], quote)
		if end < 0 {
			return "", "", errors.New("unterminated string literal")
		}
		return s[1 : end+1], s[end+2:], nil

	case s != "" && s[0] >= '0' && s[0] <= '9':
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return s[:i], s[i:], nil
	}

	if s == "" {
		return "", "", errors.New("missing term")
	}
	return "", "", fmt.Errorf("unexpected %q", s)
}
