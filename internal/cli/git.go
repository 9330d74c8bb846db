package cli

import (
	"context"
	"io"
	"slices"

	"github.com/inovacc/hxcm/internal/git"
	"github.com/inovacc/hxcm/internal/giturl"
)

// SpinnerGit runs git commands behind a spinner. git's own output is not
// shown while the spinner is active; on failure it is carried by *git.GitError.
// The spinner owns the terminal, so git runs with terminal prompts disabled.
type SpinnerGit struct {
	client *git.Client
	out    io.Writer
}

// NewSpinnerGit wraps client, rendering the spinner to out
func NewSpinnerGit(client *git.Client, out io.Writer) *SpinnerGit {
	quiet := *client
	quiet.Stdout = io.Discard
	quiet.Stderr = io.Discard
	quiet.Env = append(slices.Clone(client.Env), git.NonInteractiveEnv()...)

	return &SpinnerGit{client: &quiet, out: out}
}

// Clone clones remote into targetPath
func (g *SpinnerGit) Clone(ctx context.Context, remote, targetPath string) error {
	return RunTask(ctx, g.out, "Cloning "+giturl.Redact(remote), "→ "+targetPath, func(ctx context.Context) error {
		return g.client.Clone(ctx, remote, targetPath)
	})
}

// Pull updates the working copy at repoDir
func (g *SpinnerGit) Pull(ctx context.Context, repoDir string) error {
	return RunTask(ctx, g.out, "Pulling", "→ "+repoDir, func(ctx context.Context) error {
		return g.client.Pull(ctx, repoDir)
	})
}
