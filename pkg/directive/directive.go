// Package directive recognises #if and #endif directives in a single line.
//
// Scan is a pure function: the only package state is an immutable compiled
// pattern, so it is safe to call from concurrent workers.
package directive

import (
	"regexp"
	"strings"
)

// Kind classifies a scanned line
type Kind int

const (
	// KindNone is an ordinary content line
	KindNone Kind = iota
	// KindIf is a line containing an #if directive
	KindIf
	// KindEndif is a line consisting of #endif
	KindEndif
)

func (k Kind) String() string {
	switch k {
	case KindIf:
		return "if"
	case KindEndif:
		return "endif"
	default:
		return "none"
	}
}

const endifToken = "#endif"

// ifPattern matches the leftmost "#if" followed by whitespace and a condition.
// The condition runs to the end of the line minus trailing whitespace and may
// be empty, in which case parsing it fails.
var ifPattern = regexp.MustCompile(`#if\s+(.*?)\s*$`)

// Match is the result of scanning one line
type Match struct {
	Kind Kind

	// Condition is the text following "#if " for KindIf
	Condition string

	// Start and End delimit the #if directive in the line (bytes).
	// End is always the end of the line.
	Start int
	End   int

	line string
}

// WholeLine reports whether the directive is the only non-whitespace content
// on its line (block form). Inline directives gate only the text before them.
func (m Match) WholeLine() bool {
	switch m.Kind {
	case KindIf:
		return strings.TrimSpace(m.line) == strings.TrimSpace(m.line[m.Start:m.End])
	case KindEndif:
		return true
	default:
		return false
	}
}

// Prefix returns the content preceding an inline #if, trailing whitespace trimmed
func (m Match) Prefix() string {
	if m.Kind != KindIf {
		return ""
	}
	return strings.TrimRight(m.line[:m.Start], " \t\r\f\v")
}

// Scan classifies line, which must not contain its terminating newline
func Scan(line string) Match {
	if loc := ifPattern.FindStringSubmatchIndex(line); loc != nil {
		return Match{
			Kind:      KindIf,
			Condition: line[loc[2]:loc[3]],
			Start:     loc[0],
			End:       loc[1],
			line:      line,
		}
	}
	if strings.TrimSpace(line) == endifToken {
		return Match{Kind: KindEndif, line: line}
	}
	return Match{Kind: KindNone, line: line}
}
