package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// copyTree copies the entries of directory src into the existing directory dst.
func copyTree(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := copyEntry(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}

func copyEntry(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}

	mode := info.Mode()

	switch {
	case mode&os.ModeSymlink != 0:
		return copySymlink(src, dst)
	case mode.IsDir():
		// Owner write is kept while children are copied.
		if err := os.MkdirAll(dst, mode.Perm()|0700); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dst, err)
		}

		return copyTree(src, dst)
	case mode.IsRegular():
		return copyFile(src, dst, mode.Perm())
	default:
		// Sockets, devices and pipes have no content to copy.
		return nil
	}
}

// copyFile copies a single file, replacing a symlink at dst instead of writing through it
func copyFile(src, dst string, perm os.FileMode) error {
	if info, err := os.Lstat(dst); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if err := os.Remove(dst); err != nil {
			return fmt.Errorf("failed to replace symlink %s: %w", dst, err)
		}
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}

	// OpenFile only applies perm to new files.
	if err := os.Chmod(dst, perm); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	return nil
}

func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}

	if info, err := os.Lstat(dst); err == nil {
		if info.IsDir() {
			return fmt.Errorf("failed to copy symlink %s: destination is a directory", src)
		}

		if err := os.Remove(dst); err != nil {
			return fmt.Errorf("failed to replace %s: %w", dst, err)
		}
	}

	return os.Symlink(target, dst)
}
