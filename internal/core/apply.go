package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inovacc/hxcm/internal/application"
	"github.com/inovacc/hxcm/internal/encoding"
)

// ApplyResult describes a completed apply
type ApplyResult struct {
	Bundle      string
	Source      string
	Destination string
}

// ResolveBundle returns the path of bundle name inside the local repository at root.
// Names that resolve to root itself or outside it, before or after following
// symlinks, yield *PathEscapeError. Hidden names, missing paths and non-directories
// yield *BundleNotFoundError.
func ResolveBundle(root, name string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve local configs repo: %w", err)
	}

	path := filepath.Join(absRoot, name)
	if !isStrictlyWithin(absRoot, path) {
		return "", &PathEscapeError{Name: name, Root: absRoot}
	}

	rel, _ := filepath.Rel(absRoot, path)
	if first, _, _ := strings.Cut(filepath.ToSlash(rel), "/"); isHidden(first) {
		return "", &BundleNotFoundError{Name: name, Root: absRoot}
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &BundleNotFoundError{Name: name, Root: absRoot}
		}

		return "", fmt.Errorf("failed to stat config %s: %w", name, err)
	}

	if !info.IsDir() {
		return "", &BundleNotFoundError{Name: name, Root: absRoot}
	}

	if !isStrictlyWithin(realPath(absRoot), realPath(path)) {
		return "", &PathEscapeError{Name: name, Root: absRoot}
	}

	return path, nil
}

// ApplyBundle copies every entry of bundle name into target/.helix.
// The destination folder is created when missing; same-named entries are
// overwritten and unrelated entries are left in place. Nothing is created
// when the bundle cannot be resolved.
func ApplyBundle(root, name, target string) (*ApplyResult, error) {
	src, err := ResolveBundle(root, name)
	if err != nil {
		return nil, err
	}

	dest, err := filepath.Abs(filepath.Join(target, application.TargetFolderName))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target path: %w", err)
	}

	if isWithin(realPath(src), realPath(dest)) {
		return nil, ErrApplyIntoBundle
	}

	if err := encoding.EnsureDir(dest); err != nil {
		return nil, err
	}

	if err := copyTree(src, dest); err != nil {
		return nil, fmt.Errorf("failed to apply config %s: %w", name, err)
	}

	return &ApplyResult{Bundle: name, Source: src, Destination: dest}, nil
}
