package core

import (
	"errors"
	"fmt"
)

var (
	// ErrRemoteNotConfigured indicates sync was requested without a remote repository
	ErrRemoteNotConfigured = errors.New("remote configs repo not configured")

	// ErrSyncDeclined indicates the user did not confirm replacing the local repository
	ErrSyncDeclined = errors.New("sync declined: local configs repo left untouched")

	// ErrApplyIntoBundle indicates the destination folder lies inside the bundle being applied
	ErrApplyIntoBundle = errors.New("cannot apply a config into itself")
)

// BundleNotFoundError indicates the named bundle does not exist in the local repository
type BundleNotFoundError struct {
	Name string
	Root string
}

func (e *BundleNotFoundError) Error() string {
	return fmt.Sprintf("Config %s not exists in local repo", e.Name)
}

// PathEscapeError indicates a bundle name that resolves outside the local repository
type PathEscapeError struct {
	Name string
	Root string
}

func (e *PathEscapeError) Error() string {
	return fmt.Sprintf("config name %q resolves outside the local repo %s", e.Name, e.Root)
}

// UnsafeRemoveError indicates a refused recursive delete
type UnsafeRemoveError struct {
	Path   string
	Reason string
}

func (e *UnsafeRemoveError) Error() string {
	return fmt.Sprintf("refusing to remove %s: %s", e.Path, e.Reason)
}

// SyncAction describes what Sync did to the local repository
type SyncAction int

const (
	SyncNone     SyncAction = iota // Nothing changed
	SyncCloned                     // Empty directory, fresh clone
	SyncPulled                     // Existing working copy, pulled in place
	SyncReplaced                   // Non-repository content removed, then cloned
)

func (a SyncAction) String() string {
	switch a {
	case SyncCloned:
		return "cloned"
	case SyncPulled:
		return "pulled"
	case SyncReplaced:
		return "replaced"
	default:
		return "none"
	}
}
