package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBundles_Empty(t *testing.T) {
	bundles, err := ListBundles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, bundles)
}

func TestListBundles_SkipsHiddenAndFiles(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(root, "alacritty"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, ".cache"), 0755))
	writeFile(t, filepath.Join(root, "README"), "docs")

	bundles, err := ListBundles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"alacritty"}, bundles)
}

func TestListBundles_Mixture(t *testing.T) {
	root := t.TempDir()

	for _, dir := range []string{"zed", "alacritty", ".git", ".hidden-dir", "helix"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0755))
	}

	for _, file := range []string{"notes.txt", ".gitignore", "LICENSE"} {
		writeFile(t, filepath.Join(root, file), "x")
	}

	bundles, err := ListBundles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"alacritty", "helix", "zed"}, bundles)

	for _, b := range bundles {
		assert.NotEqual(t, '.', rune(b[0]), "hidden entry listed: %s", b)
	}
}

func TestListBundles_SymlinkedDirectory(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()

	symlinkOrSkip(t, outside, filepath.Join(root, "linked"))
	symlinkOrSkip(t, filepath.Join(root, "missing"), filepath.Join(root, "dangling"))

	bundles, err := ListBundles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"linked"}, bundles)
}

func TestListBundles_MissingRoot(t *testing.T) {
	_, err := ListBundles(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
