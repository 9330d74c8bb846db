package cmd

import (
	"github.com/inovacc/hxcm/internal/cli"
	"github.com/inovacc/hxcm/internal/giturl"
	"github.com/spf13/cobra"
)

// runShowConfig prints the settings file in use and the values resolved from it.
// hxcm never writes the settings file.
func (a *app) runShowConfig(cmd *cobra.Command) error {
	p := cli.NewPrinter(cmd.OutOrStdout())

	remote := giturl.Redact(a.cfg.RemoteRepo)
	if !a.cfg.SyncEnabled() {
		remote = "(not configured)"
	}

	p.Header("Current Configuration:")
	p.Item("=====================")
	p.Item("Settings File:       " + a.cfg.SettingsFile)
	p.Item("Local Configs Repo:  " + a.cfg.LocalRepo)
	p.Item("Remote Configs Repo: " + remote)

	return nil
}
