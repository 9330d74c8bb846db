package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/hxcm/internal/encoding"
	"github.com/inovacc/hxcm/internal/git"
)

// RepoState classifies the local repository directory before a sync
type RepoState int

const (
	RepoEmpty       RepoState = iota // No entries at all
	RepoWorkingCopy                  // Contains git metadata
	RepoForeign                      // Non-empty without git metadata
)

func (s RepoState) String() string {
	switch s {
	case RepoEmpty:
		return "empty"
	case RepoWorkingCopy:
		return "working copy"
	case RepoForeign:
		return "not a repository"
	default:
		return "unknown"
	}
}

// InspectRepository reports the state of the local repository at root
func InspectRepository(root string) (RepoState, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return RepoEmpty, fmt.Errorf("failed to read local configs repo: %w", err)
	}

	if len(entries) == 0 {
		return RepoEmpty, nil
	}

	if encoding.PathExists(filepath.Join(root, git.MetadataDir)) {
		return RepoWorkingCopy, nil
	}

	return RepoForeign, nil
}

// ResetRepository removes the local repository at root and recreates it empty.
// It refuses to run when root is the filesystem root, the home directory or
// contains one of the protected paths.
func ResetRepository(root string, protected ...string) error {
	if err := checkRemovable(root, protected); err != nil {
		return err
	}

	if err := os.RemoveAll(root); err != nil {
		return fmt.Errorf("failed to clear local configs repo: %w", err)
	}

	return encoding.EnsureDir(root)
}
