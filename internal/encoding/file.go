package encoding

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DirExists checks if a directory exists at the given path.
// Symlinks are followed.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// PathExists checks if anything exists at the given path, without following a final symlink.
func PathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// EnsureDir creates a directory and all parent directories if they don't exist.
// Uses 0755 permissions.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// EnsureFile creates an empty file with 0644 permissions if none exists.
// An existing file is left untouched.
func EnsureFile(path string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}

	return f.Close()
}
