// Package git runs the git client as a structured subprocess.
// Arguments are always passed as a list; no shell is involved.
package git

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// Client wraps the git operations hxcm needs
type Client struct {
	GitPath string // Path to git executable
	Stderr  io.Writer
	Stdout  io.Writer

	// Env is appended to the process environment of every git command
	Env []string
}

// NonInteractiveEnv makes git fail instead of prompting on the terminal for
// credentials or SSH host key confirmation.
func NonInteractiveEnv() []string {
	env := []string{"GIT_TERMINAL_PROMPT=0"}

	if os.Getenv("GIT_SSH_COMMAND") == "" && os.Getenv("GIT_SSH") == "" {
		env = append(env, "GIT_SSH_COMMAND=ssh -o BatchMode=yes")
	}

	return env
}

// NewClient creates a new git client writing git's own output to the process stdio
func NewClient() *Client {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		gitPath = "git"
	}

	return &Client{
		GitPath: gitPath,
		Stderr:  os.Stderr,
		Stdout:  os.Stdout,
	}
}

// Command creates a git command running in dir (the current directory when empty)
func (c *Client) Command(ctx context.Context, dir string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.GitPath, args...)

	if dir != "" {
		cmd.Dir = dir
	}

	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	return cmd
}

// Clone clones remote into targetPath. targetPath may be an existing empty directory.
func (c *Client) Clone(ctx context.Context, remote, targetPath string) error {
	return c.run(ctx, "", "clone", remote, targetPath)
}

// Pull updates the working copy at repoDir from its upstream
func (c *Client) Pull(ctx context.Context, repoDir string) error {
	return c.run(ctx, repoDir, "pull")
}

// run streams git output to the client writers and keeps a copy of stderr
// so a failure can be reported with git's own diagnostics.
func (c *Client) run(ctx context.Context, dir string, args ...string) error {
	var stderr bytes.Buffer

	cmd := c.Command(ctx, dir, args...)
	cmd.Stdout = writerOrDiscard(c.Stdout)
	cmd.Stderr = io.MultiWriter(writerOrDiscard(c.Stderr), &stderr)

	if err := cmd.Run(); err != nil {
		return NewGitError(args, stderr.String(), err)
	}

	return nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}
