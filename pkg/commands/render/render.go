package render

import (
	"context"
	"io/fs"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/templater/pkg/errors"
	"github.com/arthur-debert/templater/pkg/filesystem"
	"github.com/arthur-debert/templater/pkg/filter"
	"github.com/arthur-debert/templater/pkg/logging"
	"github.com/arthur-debert/templater/pkg/materialize"
	"github.com/arthur-debert/templater/pkg/report"
	"github.com/arthur-debert/templater/pkg/tree"
	"github.com/arthur-debert/templater/pkg/types"
)

// RenderTreeOptions defines the options for the RenderTree command.
type RenderTreeOptions struct {
	// SourceRoot is the template tree; it must be a directory.
	SourceRoot string
	// DestRoot mirrors SourceRoot; it is created when missing.
	DestRoot string
	// Flags are the active flags.
	Flags []string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS

	// Ignore holds base-name glob patterns skipped during the walk.
	Ignore []string
	// FileMode and DirMode default to 0644 and 0755 when zero.
	FileMode fs.FileMode
	DirMode  fs.FileMode

	// DryRun filters and reports without writing anything.
	DryRun bool
	// Jobs is the number of files processed concurrently; values below 2
	// mean sequential processing.
	Jobs int
	// MaxDistance bounds unused-flag suggestions.
	MaxDistance int
}

// RenderTree renders every file under opts.SourceRoot into opts.DestRoot.
func RenderTree(ctx context.Context, opts RenderTreeOptions) (*types.RenderTreeResult, error) {
	logger := logging.GetLogger("commands.render")
	defer logging.LogOperationStart(logger, "RenderTree")()

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	active, err := activeFlags(opts.Flags)
	if err != nil {
		return nil, err
	}

	if err := validateSource(fsys, opts.SourceRoot); err != nil {
		return nil, err
	}
	if err := prepareDest(fsys, opts.DestRoot, opts.DryRun); err != nil {
		return nil, err
	}

	files, err := tree.Walk(fsys, opts.SourceRoot, opts.Ignore)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("from", opts.SourceRoot).
		Str("to", opts.DestRoot).
		Strs("flags", active.Sorted()).
		Int("files", len(files)).
		Bool("dryRun", opts.DryRun).
		Msg("Rendering tree")

	r := &renderer{
		fs:     fsys,
		src:    opts.SourceRoot,
		dst:    opts.DestRoot,
		active: active,
		mat: &materialize.Materializer{
			FS:       fsys,
			FileMode: opts.FileMode,
			DirMode:  opts.DirMode,
			DryRun:   opts.DryRun,
		},
	}

	var results []types.FileResult
	var used types.FlagSet
	if opts.Jobs > 1 {
		results, used, err = r.parallel(ctx, files, opts.Jobs)
	} else {
		results, used, err = r.sequential(ctx, files)
	}
	if err != nil {
		return nil, err
	}

	usage, err := report.Build(report.BuildOptions{
		FS:          fsys,
		Root:        opts.SourceRoot,
		Files:       files,
		Active:      active,
		Used:        used,
		MaxDistance: opts.MaxDistance,
	})
	if err != nil {
		return nil, err
	}

	result := &types.RenderTreeResult{
		SourceRoot: opts.SourceRoot,
		DestRoot:   opts.DestRoot,
		DryRun:     opts.DryRun,
		Files:      results,
		Used:       used,
		Report:     usage,
	}

	logger.Info().
		Int("written", result.Count(types.StatusWritten)).
		Int("skipped", result.Count(types.StatusSkipped)).
		Msg("Render complete")

	return result, nil
}

func activeFlags(flags []string) (types.FlagSet, error) {
	active := types.NewFlagSet()
	for _, f := range flags {
		if f == "" {
			return nil, errors.New(errors.ErrInvalidInput, "flag names must not be empty")
		}
		active.Add(f)
	}
	return active, nil
}

func validateSource(fsys types.FS, root string) error {
	info, err := fsys.Stat(root)
	if err != nil {
		return errors.Wrap(err, errors.ErrNotFound, "source root does not exist").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return errors.New(errors.ErrInvalidInput, "source root is not a directory").
			WithDetail("path", root)
	}
	return nil
}

func prepareDest(fsys types.FS, root string, dryRun bool) error {
	info, err := fsys.Stat(root)
	if err == nil {
		if !info.IsDir() {
			return errors.New(errors.ErrInvalidInput, "destination root is not a directory").
				WithDetail("path", root)
		}
		return nil
	}
	if dryRun {
		return nil
	}
	if err := fsys.MkdirAll(root, materialize.DefaultDirMode); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create destination root").
			WithDetail("path", root)
	}
	return nil
}

type renderer struct {
	fs     types.FS
	src    string
	dst    string
	active types.FlagSet
	mat    *materialize.Materializer
}

// renderFile filters one file and materializes the result
func (r *renderer) renderFile(rel string, tracker filter.Tracker) (types.FileResult, error) {
	srcPath := filepath.Join(r.src, rel)
	data, err := r.fs.ReadFile(srcPath)
	if err != nil {
		return types.FileResult{}, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", srcPath).
			WithDetail("path", srcPath)
	}

	lines := filter.SplitLines(string(data))
	out, err := filter.Process(lines, r.active, filter.WithTracker(tracker), filter.WithPath(srcPath))
	if err != nil {
		return types.FileResult{}, err
	}

	status, err := r.mat.Write(filepath.Join(r.dst, rel), out)
	if err != nil {
		return types.FileResult{}, err
	}

	return types.FileResult{
		RelPath:     rel,
		Status:      status,
		InputLines:  len(lines),
		OutputLines: len(out),
	}, nil
}

func (r *renderer) sequential(ctx context.Context, files []string) ([]types.FileResult, types.FlagSet, error) {
	tracker := filter.NewUsedFlags()
	results := make([]types.FileResult, 0, len(files))

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		res, err := r.renderFile(rel, tracker)
		if err != nil {
			return nil, nil, err
		}
		results = append(results, res)
	}
	return results, tracker.Set(), nil
}

// parallel renders files on a bounded pool. Each file gets its own tracker
// and result slot so nothing is shared between workers.
func (r *renderer) parallel(ctx context.Context, files []string, jobs int) ([]types.FileResult, types.FlagSet, error) {
	results := make([]types.FileResult, len(files))
	trackers := make([]*filter.UsedFlags, len(files))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, rel := range files {
		i, rel := i, rel
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tracker := filter.NewUsedFlags()
			res, err := r.renderFile(rel, tracker)
			if err != nil {
				return err
			}
			results[i] = res
			trackers[i] = tracker
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	used := types.NewFlagSet()
	for _, tracker := range trackers {
		used.Union(tracker.Set())
	}
	return results, used, nil
}
