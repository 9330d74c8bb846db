package core

import (
	"os"
	"path/filepath"
	"strings"
)

// isWithin reports whether child is parent itself or lies below it.
// Both paths must be absolute and clean.
func isWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// isStrictlyWithin is isWithin excluding parent itself.
func isStrictlyWithin(parent, child string) bool {
	return isWithin(parent, child) && filepath.Clean(parent) != filepath.Clean(child)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// realPath resolves symlinks in the longest existing prefix of path and
// appends the remaining, not yet existing, elements.
func realPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	var rest []string

	for p := abs; ; {
		if resolved, err := filepath.EvalSymlinks(p); err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...)
		}

		parent := filepath.Dir(p)
		if parent == p {
			return abs
		}

		rest = append([]string{filepath.Base(p)}, rest...)
		p = parent
	}
}

// checkRemovable refuses to delete the filesystem root, the home directory
// or any directory containing a protected path.
func checkRemovable(root string, protected []string) error {
	if !filepath.IsAbs(root) {
		return &UnsafeRemoveError{Path: root, Reason: "path is not absolute"}
	}

	root = realPath(root)

	if filepath.Dir(root) == root {
		return &UnsafeRemoveError{Path: root, Reason: "filesystem root"}
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		protected = append(protected, home)
	}

	for _, p := range protected {
		if p == "" {
			continue
		}

		if isWithin(root, realPath(p)) {
			return &UnsafeRemoveError{Path: root, Reason: "contains " + p}
		}
	}

	return nil
}
