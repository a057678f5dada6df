package testutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/templater/pkg/filesystem"
	"github.com/arthur-debert/templater/pkg/types"
)

// WriteTree writes files below root through fsys, creating parent
// directories as needed. It fails the test on any error.
func WriteTree(t *testing.T, fsys types.FS, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create parent directories for %s: %v", path, err)
		}
		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", path, err)
		}
	}
}

// MemTree returns an in-memory filesystem holding files below root
func MemTree(t *testing.T, root string, files map[string]string) types.FS {
	t.Helper()
	fsys := filesystem.NewMemoryFS()
	WriteTree(t, fsys, root, files)
	return fsys
}

// DiskTree writes files into a fresh temp dir and returns its path
func DiskTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	WriteTree(t, filesystem.NewOS(), root, files)
	return root
}

// ReadFile reads path through fsys and returns its content.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	content, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// Exists reports whether path exists in fsys
func Exists(t *testing.T, fsys types.FS, path string) bool {
	t.Helper()
	_, err := fsys.Stat(path)
	return err == nil
}

// IsolateXDG points XDG_CONFIG_HOME and XDG_STATE_HOME at temp dirs and
// reloads the xdg package. The previous values are restored on cleanup.
func IsolateXDG(t *testing.T) (configHome, stateHome string) {
	t.Helper()
	t.Cleanup(xdg.Reload)

	configHome = t.TempDir()
	stateHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", stateHome)
	xdg.Reload()
	return configHome, stateHome
}
