package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeGit records invocations and simulates a clone by creating git metadata
type fakeGit struct {
	clones   []string
	remotes  []string
	pulls    []string
	cloneErr error
	pullErr  error
}

func (f *fakeGit) Clone(_ context.Context, remote, targetPath string) error {
	f.clones = append(f.clones, targetPath)
	f.remotes = append(f.remotes, remote)

	if f.cloneErr != nil {
		return f.cloneErr
	}

	return os.MkdirAll(filepath.Join(targetPath, ".git"), 0755)
}

func (f *fakeGit) Pull(_ context.Context, repoDir string) error {
	f.pulls = append(f.pulls, repoDir)
	return f.pullErr
}

func (f *fakeGit) calls() int {
	return len(f.clones) + len(f.pulls)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

// snapshot returns relative path -> content (or "<dir>") for everything below root
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	out := make(map[string]string)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, _ := filepath.Rel(root, path)
		if rel == "." {
			return nil
		}

		if info.IsDir() {
			out[rel] = "<dir>"
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		out[rel] = string(data)

		return nil
	})
	require.NoError(t, err)

	return out
}

func symlinkOrSkip(t *testing.T, target, link string) {
	t.Helper()

	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
}
