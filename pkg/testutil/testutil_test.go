package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func TestMemTree(t *testing.T) {
	fsys := MemTree(t, "/root", map[string]string{
		"a.txt":     "a",
		"b/c/d.txt": "d",
	})

	assert.Equal(t, "a", ReadFile(t, fsys, "/root/a.txt"))
	assert.Equal(t, "d", ReadFile(t, fsys, "/root/b/c/d.txt"))
	assert.True(t, Exists(t, fsys, "/root/b/c"))
	assert.False(t, Exists(t, fsys, "/root/missing"))
}

func TestDiskTree(t *testing.T) {
	root := DiskTree(t, map[string]string{"x/y.txt": "y"})

	data, err := os.ReadFile(filepath.Join(root, "x", "y.txt"))
	assert.NoError(t, err)
	assert.Equal(t, "y", string(data))
}

func TestIsolateXDG(t *testing.T) {
	configHome, stateHome := IsolateXDG(t)

	assert.Equal(t, configHome, xdg.ConfigHome)
	assert.Equal(t, stateHome, xdg.StateHome)
}
