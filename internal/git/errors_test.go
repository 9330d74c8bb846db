package git

import (
	"errors"
	"fmt"
	"testing"
)

func TestGitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *GitError
		want string
	}{
		{
			name: "with stderr uses last line",
			err: &GitError{
				Args:     []string{"clone", "https://example.com/r.git", "/tmp/r"},
				ExitCode: 128,
				Stderr:   "Cloning into '/tmp/r'...\nfatal: repository 'https://example.com/r.git/' not found\n",
			},
			want: "git clone failed (exit code 128): fatal: repository 'https://example.com/r.git/' not found",
		},
		{
			name: "without stderr uses wrapped error",
			err:  &GitError{Args: []string{"pull"}, ExitCode: 1, err: errors.New("exit status 1")},
			want: "git pull failed: exit status 1",
		},
		{
			name: "no args",
			err:  &GitError{err: errors.New("boom")},
			want: "git failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGitError_Unwrap(t *testing.T) {
	inner := errors.New("exit status 128")
	err := fmt.Errorf("sync: %w", NewGitError([]string{"clone"}, "", inner))

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the inner error")
	}

	if got := GetExitCode(err); got != -1 {
		t.Errorf("GetExitCode() = %d, want -1 for a non-exec error", got)
	}
}

func TestErrorClassifiers(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		check  func(error) bool
	}{
		{"not repository", "fatal: not a git repository (or any of the parent directories): .git", IsNotRepository},
		{"auth", "remote: Authentication failed for 'https://github.com/u/r.git/'", IsAuthRequired},
		{"publickey", "git@github.com: Permission denied (publickey).", IsAuthRequired},
		{"prompt disabled", "fatal: could not read Username for 'https://github.com': terminal prompts disabled", IsAuthRequired},
		{"host key", "Host key verification failed.\nfatal: Could not read from remote repository.", IsAuthRequired},
		{"repo not found", "fatal: repository '/tmp/x' does not exist", IsRepoNotFound},
		{"already exists", "fatal: destination path 'r' already exists and is not an empty directory.", IsAlreadyExists},
		{"conflict", "CONFLICT (content): Merge conflict in zed/settings.json", IsConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &GitError{Stderr: tt.stderr}
			if !tt.check(err) {
				t.Errorf("classifier did not match %q", tt.stderr)
			}
		})
	}

	if IsConflict(nil) {
		t.Error("nil error should not match")
	}
}

func TestGetExitCode_Nil(t *testing.T) {
	if got := GetExitCode(nil); got != 0 {
		t.Errorf("GetExitCode(nil) = %d, want 0", got)
	}
}
