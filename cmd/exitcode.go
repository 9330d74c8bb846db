package cmd

import (
	"errors"
	"io"

	"github.com/inovacc/hxcm/internal/cli"
	"github.com/inovacc/hxcm/internal/core"
	"github.com/inovacc/hxcm/internal/git"
)

// Exit codes following GNU/POSIX conventions
const (
	// ExitSuccess indicates successful execution, including reported user errors
	ExitSuccess = 0

	// ExitError indicates a startup or runtime failure, including failed git commands
	ExitError = 1

	// ExitUsage indicates incorrect command usage
	ExitUsage = 2

	// ExitInterrupted indicates the user aborted a running git command
	ExitInterrupted = 130
)

// usageError marks errors caused by invalid flags or arguments
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

// isReported reports whether err is an anticipated user-facing condition that
// is printed on stdout and does not fail the process.
func isReported(err error) bool {
	var notFound *core.BundleNotFoundError

	return errors.As(err, &notFound) ||
		errors.Is(err, core.ErrRemoteNotConfigured) ||
		errors.Is(err, core.ErrSyncDeclined)
}

// exitCode maps an execution error to the process exit status
func exitCode(err error) int {
	if err == nil || isReported(err) {
		return ExitSuccess
	}

	var usage *usageError
	if errors.As(err, &usage) {
		return ExitUsage
	}

	if errors.Is(err, cli.ErrInterrupted) {
		return ExitInterrupted
	}

	return ExitError
}

// report prints err where it belongs and returns the exit status
func report(err error, out, errOut io.Writer) int {
	if err == nil {
		return ExitSuccess
	}

	if isReported(err) {
		cli.NewPrinter(out).Error("%s", err.Error())
		return exitCode(err)
	}

	p := cli.NewPrinter(errOut)
	p.Error("Error: %v", err)

	if hint := gitHint(err); hint != "" {
		p.Item("Hint: " + hint)
	}

	return exitCode(err)
}

// gitHint suggests a next step for well-known git failures
func gitHint(err error) string {
	var gitErr *git.GitError
	if !errors.As(err, &gitErr) {
		return ""
	}

	switch {
	case git.IsAuthRequired(err):
		return "git could not authenticate to the remote; set up a credential helper or an SSH key for it"
	case git.IsRepoNotFound(err):
		return "check remote_configs_repo in the settings file (hxcm --show-config)"
	case git.IsConflict(err):
		return "resolve the conflicts in the local configs repo with git, then sync again"
	case git.IsAlreadyExists(err):
		return "the local configs repo is not empty; run the sync again to replace it"
	case git.IsNotRepository(err):
		return "the local configs repo has broken git metadata; remove its .git directory and sync again"
	}

	return ""
}
