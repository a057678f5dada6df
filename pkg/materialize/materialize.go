// Package materialize writes filtered lines to their destination file, or
// skips the file entirely when nothing but whitespace survived filtering.
package materialize

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/templater/pkg/errors"
	"github.com/arthur-debert/templater/pkg/logging"
	"github.com/arthur-debert/templater/pkg/types"
)

const (
	// DefaultFileMode is used when Materializer.FileMode is zero
	DefaultFileMode fs.FileMode = 0644
	// DefaultDirMode is used when Materializer.DirMode is zero
	DefaultDirMode fs.FileMode = 0755
)

// Materializer writes processed files through a types.FS
type Materializer struct {
	FS       types.FS
	FileMode fs.FileMode
	DirMode  fs.FileMode

	// DryRun reports what would be written without touching the filesystem
	DryRun bool
}

// New returns a Materializer with default modes
func New(fsys types.FS) *Materializer {
	return &Materializer{FS: fsys, FileMode: DefaultFileMode, DirMode: DefaultDirMode}
}

// IsBlank reports whether every line is empty or whitespace only.
// No lines at all is blank.
func IsBlank(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

// Render joins lines with "\n" and terminates the result with a single "\n"
func Render(lines []string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}

// Write materializes lines at dest. Blank content is skipped without
// touching dest, so an existing file there is left as it was.
func (m *Materializer) Write(dest string, lines []string) (types.Status, error) {
	logger := logging.GetLogger("materialize")

	if IsBlank(lines) {
		logger.Debug().Str("dest", dest).Msg("skipping blank file")
		return types.StatusSkipped, nil
	}

	if m.DryRun {
		logger.Debug().Str("dest", dest).Int("lines", len(lines)).Msg("dry run, not writing")
		return types.StatusWritten, nil
	}

	dir := filepath.Dir(dest)
	if err := m.FS.MkdirAll(dir, m.dirMode()); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create destination directory %s", dir).
			WithDetail("path", dir)
	}

	if err := m.FS.WriteFile(dest, Render(lines), m.fileMode()); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest).
			WithDetail("path", dest)
	}

	logger.Debug().Str("dest", dest).Int("lines", len(lines)).Msg("wrote file")
	return types.StatusWritten, nil
}

func (m *Materializer) fileMode() fs.FileMode {
	if m.FileMode == 0 {
		return DefaultFileMode
	}
	return m.FileMode
}

func (m *Materializer) dirMode() fs.FileMode {
	if m.DirMode == 0 {
		return DefaultDirMode
	}
	return m.DirMode
}
