package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/inovacc/hxcm/internal/git"
	"github.com/inovacc/hxcm/internal/giturl"
	"github.com/inovacc/hxcm/internal/settings"
)

// ReplacePrompt is asked before a non-repository local directory is replaced
const ReplacePrompt = "Your local configs repo is not empty. Clear it to synchronize with remote? y or n ? "

// confirmToken is the only answer accepted by ReplacePrompt
const confirmToken = "y"

// Git is the subset of git operations used by Sync
type Git interface {
	Clone(ctx context.Context, remote, targetPath string) error
	Pull(ctx context.Context, repoDir string) error
}

// AskFunc shows question and returns the answer line without its line terminator
type AskFunc func(question string) (string, error)

// SyncOptions configures the sync operation
type SyncOptions struct {
	Git    Git
	Ask    AskFunc
	Logger *slog.Logger
}

// Sync mirrors the local repository of cfg against its remote.
//
// An empty directory is cloned into, a git working copy is pulled, and any
// other content is replaced by a fresh clone only after the user answers
// ReplacePrompt with exactly "y".
func Sync(ctx context.Context, cfg *settings.Config, opts SyncOptions) (SyncAction, error) {
	if !cfg.SyncEnabled() {
		return SyncNone, ErrRemoteNotConfigured
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	state, err := InspectRepository(cfg.LocalRepo)
	if err != nil {
		return SyncNone, err
	}

	logger.Debug("local configs repo inspected", "path", cfg.LocalRepo, "state", state.String())

	switch state {
	case RepoEmpty:
		if err := opts.Git.Clone(ctx, cfg.RemoteRepo, cfg.LocalRepo); err != nil {
			return SyncNone, fmt.Errorf("failed to clone %s: %w", giturl.Redact(cfg.RemoteRepo), err)
		}

		return SyncCloned, nil

	case RepoWorkingCopy:
		warnOnOriginMismatch(logger, cfg)

		if err := opts.Git.Pull(ctx, cfg.LocalRepo); err != nil {
			return SyncNone, fmt.Errorf("failed to pull %s: %w", cfg.LocalRepo, err)
		}

		return SyncPulled, nil
	}

	ok, err := confirmReplace(opts.Ask)
	if err != nil {
		return SyncNone, err
	}

	if !ok {
		logger.Debug("replace declined", "path", cfg.LocalRepo)
		return SyncNone, ErrSyncDeclined
	}

	if err := ResetRepository(cfg.LocalRepo, cfg.SettingsDir); err != nil {
		return SyncNone, err
	}

	logger.Debug("local configs repo cleared", "path", cfg.LocalRepo)

	if err := opts.Git.Clone(ctx, cfg.RemoteRepo, cfg.LocalRepo); err != nil {
		return SyncNone, fmt.Errorf("failed to clone %s: %w", giturl.Redact(cfg.RemoteRepo), err)
	}

	return SyncReplaced, nil
}

func confirmReplace(ask AskFunc) (bool, error) {
	if ask == nil {
		return false, nil
	}

	answer, err := ask(ReplacePrompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}

		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	return answer == confirmToken, nil
}

func warnOnOriginMismatch(logger *slog.Logger, cfg *settings.Config) {
	origin, err := git.OriginURL(cfg.LocalRepo)
	if err != nil {
		logger.Debug("could not read origin of local configs repo", "error", err)
		return
	}

	if origin != "" && !git.SameRemote(origin, cfg.RemoteRepo) {
		logger.Warn("local configs repo tracks a different remote",
			"origin", giturl.Redact(origin), "configured", giturl.Redact(cfg.RemoteRepo))
	}
}
