package condition

import (
	"strings"

	"github.com/arthur-debert/templater/pkg/errors"
	"github.com/arthur-debert/templater/pkg/types"
)

const (
	andPrefix = "(and "
	orPrefix  = "(or "
)

// Condition is a parsed #if condition
type Condition interface {
	// Evaluate reports whether the condition holds for the active flags
	Evaluate(active types.FlagSet) bool

	// Flags returns every flag the condition names, in source order
	Flags() []string

	// String returns the condition in directive syntax
	String() string
}

// Recorder receives the flags named by evaluated conditions
type Recorder interface {
	Record(flags ...string)
}

// Atom is a single flag. Text that is not an and/or group is taken whole,
// so "foo bar" or "(and)" is an atom matched only by that exact flag name.
type Atom string

func (a Atom) Evaluate(active types.FlagSet) bool { return active.Has(string(a)) }
func (a Atom) Flags() []string                      { return []string{string(a)} }
func (a Atom) String() string                       { return string(a) }

// All holds when every flag is active
type All []string

func (c All) Evaluate(active types.FlagSet) bool {
	for _, f := range c {
		if !active.Has(f) {
			return false
		}
	}
	return true
}

func (c All) Flags() []string { return append([]string(nil), c...) }
func (c All) String() string  { return "(and " + strings.Join(c, " ") + ")" }

// Any holds when at least one flag is active
type Any []string

func (c Any) Evaluate(active types.FlagSet) bool {
	for _, f := range c {
		if active.Has(f) {
			return true
		}
	}
	return false
}

func (c Any) Flags() []string { return append([]string(nil), c...) }
func (c Any) String() string  { return "(or " + strings.Join(c, " ") + ")" }

// Parse turns directive condition text into a Condition
func Parse(text string) (Condition, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New(errors.ErrConditionParse, "empty condition")
	}

	switch {
	case strings.HasPrefix(text, andPrefix):
		terms, err := parseTerms(text, andPrefix)
		if err != nil {
			return nil, err
		}
		return All(terms), nil
	case strings.HasPrefix(text, orPrefix):
		terms, err := parseTerms(text, orPrefix)
		if err != nil {
			return nil, err
		}
		return Any(terms), nil
	default:
		return Atom(text), nil
	}
}

func parseTerms(text, prefix string) ([]string, error) {
	if !strings.HasSuffix(text, ")") {
		return nil, errors.Newf(errors.ErrConditionParse, "missing closing parenthesis in %q", text).
			WithDetail("condition", text)
	}
	terms := strings.Fields(text[len(prefix) : len(text)-1])
	for _, term := range terms {
		if strings.ContainsAny(term, "()") {
			return nil, errors.Newf(errors.ErrConditionParse, "nested groups are not supported in %q", text).
				WithDetail("condition", text)
		}
	}
	return terms, nil
}

// Evaluate parses text, records its flags and evaluates it against active.
// A nil recorder disables tracking.
func Evaluate(text string, active types.FlagSet, rec Recorder) (bool, error) {
	cond, err := Parse(text)
	if err != nil {
		return false, err
	}
	if rec != nil {
		rec.Record(cond.Flags()...)
	}
	return cond.Evaluate(active), nil
}
