// Package tree lists the files of a source tree that the renderer processes.
package tree

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/templater/pkg/errors"
	"github.com/arthur-debert/templater/pkg/logging"
	"github.com/arthur-debert/templater/pkg/types"
)

// Walk returns the regular files under root as paths relative to root,
// sorted. Symlinks to regular files are included. Entries whose base name matches one of the ignore patterns are
// skipped; an ignored directory is not descended into.
func Walk(fsys types.FS, root string, ignore []string) ([]string, error) {
	logger := logging.GetLogger("tree")
	logger.Trace().Str("root", root).Strs("ignore", ignore).Msg("Walking source tree")

	var files []string
	err := fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		name := info.Name()
		if ShouldIgnore(name, ignore) {
			logger.Trace().Str("path", path).Msg("Skipping ignored pattern")
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !isFile(fsys, path, info) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWalk, "failed to walk %s", root).
			WithDetail("path", root)
	}

	sort.Strings(files)

	logger.Debug().Int("count", len(files)).Msg("Found source files")
	return files, nil
}

// isFile reports whether path is a regular file or a symlink to one.
// Symlinked directories are listed but not descended into.
func isFile(fsys types.FS, path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.Mode().IsRegular()
	}
	target, err := fsys.Stat(path)
	if err != nil {
		logger := logging.GetLogger("tree")
		logger.Debug().Err(err).Str("path", path).Msg("Skipping broken symlink")
		return false
	}
	return target.Mode().IsRegular()
}

// ShouldIgnore reports whether name matches any of the glob patterns
func ShouldIgnore(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
