package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Common error messages from git
const (
	errMsgNotRepository    = "not a git repository"
	errMsgAuthFailed       = "Authentication failed"
	errMsgPermissionDenied = "Permission denied"
	errMsgPromptDisabled   = "terminal prompts disabled"
	errMsgHostKey          = "Host key verification failed"
	errMsgRepoNotFound     = "not found"
	errMsgAlreadyExists    = "already exists and is not an empty directory"
	errMsgConflict         = "CONFLICT"
)

// GitError represents a git command that did not exit successfully
type GitError struct {
	Args     []string
	ExitCode int
	Stderr   string
	err      error
}

func (e *GitError) Error() string {
	op := "git"
	if len(e.Args) > 0 {
		op = "git " + e.Args[0]
	}

	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		return fmt.Sprintf("%s failed (exit code %d): %s", op, e.ExitCode, lastLine(msg))
	}

	return fmt.Sprintf("%s failed: %v", op, e.err)
}

func (e *GitError) Unwrap() error {
	return e.err
}

// NewGitError creates a GitError from command output and error
func NewGitError(args []string, stderr string, err error) *GitError {
	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &GitError{
		ExitCode: exitCode,
		Stderr:   stderr,
		Args:     args,
		err:      err,
	}
}

// IsNotRepository checks if the error indicates not a git repository
func IsNotRepository(err error) bool {
	return containsError(err, errMsgNotRepository)
}

// IsAuthRequired checks if the error indicates authentication is required
func IsAuthRequired(err error) bool {
	return containsError(err, errMsgAuthFailed) ||
		containsError(err, errMsgPermissionDenied) ||
		containsError(err, errMsgPromptDisabled) ||
		containsError(err, errMsgHostKey)
}

// IsRepoNotFound checks if the error indicates the remote repository does not exist
func IsRepoNotFound(err error) bool {
	return containsError(err, errMsgRepoNotFound) || containsError(err, "does not exist")
}

// IsAlreadyExists checks if clone refused a non-empty target directory
func IsAlreadyExists(err error) bool {
	return containsError(err, errMsgAlreadyExists)
}

// IsConflict checks if the error indicates a merge conflict
func IsConflict(err error) bool {
	return containsError(err, errMsgConflict)
}

// GetExitCode returns the exit code from a git error, or -1 if not available
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return gitErr.ExitCode
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}

// containsError checks if the error contains a specific message
func containsError(err error, msg string) bool {
	if err == nil {
		return false
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return strings.Contains(strings.ToLower(gitErr.Stderr), strings.ToLower(msg))
	}

	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(msg))
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}

	return s
}
