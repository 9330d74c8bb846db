package encoding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))
	require.True(t, DirExists(dir))
}

func TestEnsureFile_CreatesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hxcm.toml")

	require.NoError(t, EnsureFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestEnsureFile_KeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hxcm.toml")
	require.NoError(t, os.WriteFile(path, []byte(`remote_configs_repo = "x"`), 0644))

	require.NoError(t, EnsureFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `remote_configs_repo = "x"`, string(data))
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	require.True(t, PathExists(file))
	require.True(t, PathExists(dir))
	require.False(t, PathExists(filepath.Join(dir, "missing")))
	require.False(t, DirExists(file))
}

type sample struct {
	Name  string `toml:"name"`
	Count int    `toml:"count"`
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "valid.toml")
		require.NoError(t, os.WriteFile(path, []byte("name = \"x\"\ncount = 3\n"), 0644))

		got, err := LoadTOML[sample](path)
		require.NoError(t, err)
		require.Equal(t, sample{Name: "x", Count: 3}, *got)
	})

	t.Run("empty", func(t *testing.T) {
		path := filepath.Join(dir, "empty.toml")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		got, err := LoadTOML[sample](path)
		require.NoError(t, err)
		require.Equal(t, sample{}, *got)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("name = \n"), 0644))

		_, err := LoadTOML[sample](path)
		require.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadTOML[sample](filepath.Join(dir, "missing.toml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
