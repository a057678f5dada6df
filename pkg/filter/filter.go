package filter

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/templater/pkg/condition"
	"github.com/arthur-debert/templater/pkg/directive"
	"github.com/arthur-debert/templater/pkg/errors"
	"github.com/arthur-debert/templater/pkg/inclusion"
	"github.com/arthur-debert/templater/pkg/logging"
	"github.com/arthur-debert/templater/pkg/types"
)

type options struct {
	tracker Tracker
	path    string
}

// Option configures Process
type Option func(*options)

// WithTracker records every flag named by an evaluated condition into t
func WithTracker(t Tracker) Option {
	return func(o *options) { o.tracker = t }
}

// WithPath names the file being processed in error messages and details
func WithPath(path string) Option {
	return func(o *options) { o.path = path }
}

// Process filters lines against the active flags. Lines must not carry their
// terminating newline.
func Process(lines []string, active types.FlagSet, opts ...Option) ([]string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.GetLogger("filter")

	output := make([]string, 0, len(lines))
	ctx := inclusion.New()

	for i, line := range lines {
		lineNum := i + 1
		m := directive.Scan(line)

		switch m.Kind {
		case directive.KindIf:
			holds, err := condition.Evaluate(m.Condition, active, o.tracker)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConditionParse, "%s: invalid #if condition", location(o.path, lineNum)).
					WithDetail("path", o.path).
					WithDetail("line", lineNum).
					WithDetail("condition", m.Condition)
			}
			ctx.PushAt(holds, lineNum)

			if m.WholeLine() {
				logger.Trace().Int("line", lineNum).Str("condition", m.Condition).Bool("included", ctx.Included()).Msg("block #if")
				continue
			}

			if ctx.Included() {
				output = append(output, m.Prefix())
			}
			ctx.Pop()

		case directive.KindEndif:
			if !ctx.Pop() {
				return nil, errors.Newf(errors.ErrMismatchedEndif, "%s: mismatched #endif without #if", location(o.path, lineNum)).
					WithDetail("path", o.path).
					WithDetail("line", lineNum)
			}

		default:
			if ctx.Included() {
				output = append(output, line)
			}
		}
	}

	if !ctx.Balanced() {
		open := ctx.InnermostLine()
		return nil, errors.Newf(errors.ErrMismatchedIf, "%s: mismatched #if/#endif, #if at line %d is never closed", location(o.path, open), open).
			WithDetail("path", o.path).
			WithDetail("line", open).
			WithDetail("depth", ctx.Depth())
	}

	return output, nil
}

// ProcessReader reads all of r, splits it into lines and filters them
func ProcessReader(r io.Reader, active types.FlagSet, opts ...Option) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileRead, "failed to read input")
	}
	return Process(SplitLines(string(data)), active, opts...)
}

// SplitLines splits content on "\n", dropping the empty element that follows
// a final newline. Carriage returns are kept.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

func location(path string, line int) string {
	if path == "" {
		return fmt.Sprintf("line %d", line)
	}
	return fmt.Sprintf("%s:%d", path, line)
}
