package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/inovacc/hxcm/internal/application"
	"github.com/inovacc/hxcm/internal/cli"
	"github.com/inovacc/hxcm/internal/core"
	"github.com/inovacc/hxcm/internal/git"
	"github.com/inovacc/hxcm/internal/giturl"
	"github.com/inovacc/hxcm/internal/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "0.1.0"

// options holds the parsed root flags
type options struct {
	list       bool
	sync       bool
	apply      string
	showConfig bool
	configFile string
	verbose    bool
}

// app carries the state of one invocation: flags, the bootstrapped settings and collaborators.
type app struct {
	opts   options
	cfg    *settings.Config
	logger *slog.Logger
	newGit func(cmd *cobra.Command) core.Git
}

type rootOption func(a *app)

// withGit replaces the git client used by --sync
func withGit(g core.Git) rootOption {
	return func(a *app) {
		a.newGit = func(*cobra.Command) core.Git { return g }
	}
}

func newRootCmd(opts ...rootOption) *cobra.Command {
	a := &app{newGit: defaultGit}
	for _, o := range opts {
		o(a)
	}

	rootCmd := &cobra.Command{
		Use:   application.AppName + " [flags]",
		Short: "A simple utility to manage helix configs",
		Long: `hxcm keeps named helix config bundles in a local repository, optionally
mirrored from a remote git repository, and applies a bundle to a project by
copying it into <path>/.helix.

Settings are read from hxcm.toml in the user config directory:

  remote_configs_repo = "https://github.com/user/helix-configs"
  local_configs_repo  = "~/helix-configs"`,
		Example: `  hxcm --list
  hxcm --sync
  hxcm --apply rust ~/code/my-crate`,
		Version:           version,
		Args:              validateArgs,
		PersistentPreRunE: a.bootstrap,
		RunE:              a.run,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	addOperationFlags(rootCmd.Flags(), &a.opts)
	rootCmd.MarkFlagsMutuallyExclusive("list", "sync", "apply", "show-config")

	rootCmd.PersistentFlags().StringVar(&a.opts.configFile, "config", "", "Settings file (default is <user-config-dir>/hxcm/hxcm.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return rootCmd
}

func addOperationFlags(fs *pflag.FlagSet, o *options) {
	fs.BoolVarP(&o.list, "list", "l", false, "List available configs")
	fs.BoolVarP(&o.sync, "sync", "s", false, "Synchronize local configs database with the configured repository")
	fs.StringVarP(&o.apply, "apply", "a", "", "Apply a `config` to a given directory: --apply <config> <path>")
	fs.BoolVar(&o.showConfig, "show-config", false, "Show the resolved settings")
}

// Execute runs the root command and exits with its status code
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer, opts ...rootOption) int {
	rootCmd := newRootCmd(opts...)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	return report(rootCmd.ExecuteContext(ctx), out, errOut)
}

// operationFlags are the mutually exclusive operation switches
var operationFlags = map[string]bool{"list": true, "sync": true, "apply": true, "show-config": true}

// changedOperations returns the operation flags set on the command line
func changedOperations(fs *pflag.FlagSet) []string {
	var set []string

	fs.Visit(func(f *pflag.Flag) {
		if operationFlags[f.Name] {
			set = append(set, "--"+f.Name)
		}
	})

	return set
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if ops := changedOperations(cmd.Flags()); len(ops) > 1 {
		return &usageError{err: fmt.Errorf("only one of --list, --sync, --apply or --show-config may be used, got %s", strings.Join(ops, " "))}
	}

	if cmd.Flags().Changed("apply") {
		if len(args) != 1 {
			return &usageError{err: fmt.Errorf("--apply requires <config> <path>")}
		}

		return nil
	}

	if len(args) > 0 {
		return &usageError{err: fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))}
	}

	return nil
}

func (a *app) bootstrap(cmd *cobra.Command, _ []string) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.opts.verbose)

	paths, err := settings.DefaultPaths(a.opts.configFile)
	if err != nil {
		return err
	}

	cfg, err := settings.Bootstrap(paths)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger.Debug("settings loaded", "file", cfg.SettingsFile, "local_repo", cfg.LocalRepo, "remote_repo", giturl.Redact(cfg.RemoteRepo))

	return nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	switch {
	case a.opts.list:
		return a.runList(cmd)
	case a.opts.sync:
		return a.runSync(cmd)
	case cmd.Flags().Changed("apply"):
		return a.runApply(cmd, a.opts.apply, args[0])
	case a.opts.showConfig:
		return a.runShowConfig(cmd)
	default:
		return cmd.Help()
	}
}

func (a *app) runList(cmd *cobra.Command) error {
	bundles, err := core.ListBundles(a.cfg.LocalRepo)
	if err != nil {
		return err
	}

	p := cli.NewPrinter(cmd.OutOrStdout())
	p.Header("Available configs:")

	for _, b := range bundles {
		p.Item(b)
	}

	return nil
}

func (a *app) runSync(cmd *cobra.Command) error {
	p := cli.NewPrinter(cmd.OutOrStdout())

	if !a.cfg.SyncEnabled() {
		p.Info("Remote configs repo not configured")
		return nil
	}

	p.Info("Synchronizing local config with remote [%s]", a.cfg.RemoteRepo)

	action, err := core.Sync(cmd.Context(), a.cfg, core.SyncOptions{
		Git:    a.newGit(cmd),
		Ask:    newAsk(p, cmd.InOrStdin()),
		Logger: a.logger,
	})
	if errors.Is(err, core.ErrSyncDeclined) {
		return nil
	}

	if err != nil {
		if code := git.GetExitCode(err); code > 0 {
			a.logger.Debug("git command failed", "exit_code", code)
		}

		return err
	}

	switch action {
	case core.SyncCloned, core.SyncReplaced:
		p.Success("Local configs repo cloned from %s", giturl.Redact(a.cfg.RemoteRepo))
	case core.SyncPulled:
		p.Success("Local configs repo updated")
	}

	return nil
}

func (a *app) runApply(cmd *cobra.Command, name, target string) error {
	res, err := core.ApplyBundle(a.cfg.LocalRepo, name, target)
	if err != nil {
		return err
	}

	a.logger.Debug("config applied", "source", res.Source, "destination", res.Destination)
	cli.NewPrinter(cmd.OutOrStdout()).Success("%s configured", res.Bundle)

	return nil
}

// defaultGit streams git output on plain stdio and shows a spinner on a terminal
func defaultGit(cmd *cobra.Command) core.Git {
	client := git.NewClient()
	client.Stdout = cmd.OutOrStdout()
	client.Stderr = cmd.ErrOrStderr()

	if cli.IsTerminal(cmd.OutOrStdout()) && cli.IsTerminal(cmd.InOrStdin()) {
		return cli.NewSpinnerGit(client, cmd.OutOrStdout())
	}

	return client
}
