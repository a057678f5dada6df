// Package report computes the flag usage diagnostic shown after a run:
// which active flags no condition referenced, and the closest flag the tree
// does declare for each of them.
package report

import (
	"path/filepath"

	"github.com/arthur-debert/templater/pkg/condition"
	"github.com/arthur-debert/templater/pkg/directive"
	"github.com/arthur-debert/templater/pkg/errors"
	"github.com/arthur-debert/templater/pkg/filter"
	"github.com/arthur-debert/templater/pkg/logging"
	"github.com/arthur-debert/templater/pkg/suggest"
	"github.com/arthur-debert/templater/pkg/types"
)

// BuildOptions holds the inputs of Build
type BuildOptions struct {
	FS   types.FS
	Root string

	// Files are paths relative to Root, as returned by tree.Walk
	Files []string

	Active types.FlagSet
	Used   types.FlagSet

	// MaxDistance bounds suggestions; zero means suggest.DefaultMaxDistance
	MaxDistance int
}

// ScanConditions re-reads files and returns every flag named by any
// parseable #if directive, regardless of which flags are active.
func ScanConditions(fsys types.FS, root string, files []string) (types.FlagSet, error) {
	logger := logging.GetLogger("report")
	declared := types.NewFlagSet()

	for _, rel := range files {
		path := filepath.Join(root, rel)
		data, err := fsys.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path).
				WithDetail("path", path)
		}

		for _, line := range filter.SplitLines(string(data)) {
			m := directive.Scan(line)
			if m.Kind != directive.KindIf {
				continue
			}
			cond, err := condition.Parse(m.Condition)
			if err != nil {
				logger.Trace().Str("path", path).Str("condition", m.Condition).Msg("Ignoring unparseable condition")
				continue
			}
			declared.AddAll(cond.Flags()...)
		}
	}

	logger.Debug().Int("declared", declared.Len()).Msg("Scanned conditions")
	return declared, nil
}

// Build computes the usage report. The tree is only scanned when some
// active flag went unused.
func Build(opts BuildOptions) (*types.UsageReport, error) {
	logger := logging.GetLogger("report")

	used := opts.Used
	if used == nil {
		used = types.NewFlagSet()
	}

	r := &types.UsageReport{Used: used.Sorted()}

	unused := opts.Active.Difference(used)
	if unused.Len() == 0 {
		return r, nil
	}

	declared, err := ScanConditions(opts.FS, opts.Root, opts.Files)
	if err != nil {
		return nil, err
	}
	r.Declared = declared.Sorted()

	maxDistance := opts.MaxDistance
	if maxDistance <= 0 {
		maxDistance = suggest.DefaultMaxDistance
	}

	for _, name := range unused.Sorted() {
		entry := types.UnusedFlag{Name: name}
		if s, ok := suggest.Closest(name, r.Declared, maxDistance); ok {
			entry.Suggestion = s
		}
		r.Unused = append(r.Unused, entry)
	}

	logger.Info().Int("unused", len(r.Unused)).Msg("Found unused flags")
	return r, nil
}
