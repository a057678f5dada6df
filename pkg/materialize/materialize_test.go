package materialize

import (
	"testing"

	"github.com/arthur-debert/templater/pkg/filesystem"
	"github.com/arthur-debert/templater/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  bool
	}{
		{"nil", nil, true},
		{"empty", []string{}, true},
		{"empty lines", []string{"", ""}, true},
		{"whitespace lines", []string{"  ", "\t", "\r"}, true},
		{"content", []string{"", "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlank(tt.lines))
		})
	}
}

func TestRender(t *testing.T) {
	assert.Equal(t, "foo\nbar\n", string(Render([]string{"foo", "bar"})))
	assert.Equal(t, "foo\n\n", string(Render([]string{"foo", ""})))
}

func TestWrite_CreatesParents(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	m := New(fsys)

	status, err := m.Write("/out/a/b/file.txt", []string{"foo", "bar"})
	require.NoError(t, err)
	assert.Equal(t, types.StatusWritten, status)

	data, err := fsys.ReadFile("/out/a/b/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "foo\nbar\n", string(data))
}

func TestWrite_Overwrites(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	require.NoError(t, fsys.WriteFile("/out/file.txt", []byte("old content that is longer\n"), 0644))

	status, err := New(fsys).Write("/out/file.txt", []string{"new"})
	require.NoError(t, err)
	assert.Equal(t, types.StatusWritten, status)

	data, err := fsys.ReadFile("/out/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestWrite_SkipsBlank(t *testing.T) {
	fsys := filesystem.NewMemoryFS()

	status, err := New(fsys).Write("/out/empty.txt", []string{"", "   "})
	require.NoError(t, err)
	assert.Equal(t, types.StatusSkipped, status)

	_, err = fsys.Stat("/out/empty.txt")
	assert.Error(t, err, "blank file must not be created")
	_, err = fsys.Stat("/out")
	assert.Error(t, err, "parent directory must not be created")
}

func TestWrite_SkipLeavesExistingFile(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	require.NoError(t, fsys.WriteFile("/out/keep.txt", []byte("previous\n"), 0644))

	status, err := New(fsys).Write("/out/keep.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, types.StatusSkipped, status)

	data, err := fsys.ReadFile("/out/keep.txt")
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(data))
}

func TestWrite_DryRun(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	m := New(fsys)
	m.DryRun = true

	status, err := m.Write("/out/file.txt", []string{"content"})
	require.NoError(t, err)
	assert.Equal(t, types.StatusWritten, status)

	_, err = fsys.Stat("/out/file.txt")
	assert.Error(t, err)
}

func TestWrite_ZeroModesUseDefaults(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	m := &Materializer{FS: fsys}

	_, err := m.Write("/out/file.txt", []string{"x"})
	require.NoError(t, err)

	info, err := fsys.Stat("/out/file.txt")
	require.NoError(t, err)
	assert.Equal(t, DefaultFileMode, info.Mode().Perm())
}
