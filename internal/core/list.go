package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/inovacc/hxcm/internal/encoding"
)

// ListBundles returns the names of the bundles in the local repository at root.
// Hidden entries and plain files are skipped; symlinks to directories count as bundles.
func ListBundles(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read local configs repo: %w", err)
	}

	bundles := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if isHidden(name) {
			continue
		}

		if !encoding.DirExists(filepath.Join(root, name)) {
			continue
		}

		bundles = append(bundles, name)
	}

	sort.Strings(bundles)

	return bundles, nil
}
