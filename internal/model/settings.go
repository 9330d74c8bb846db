package model

import "strings"

// Settings holds the recognized keys of the settings file.
type Settings struct {
	// RemoteConfigsRepo is a git-fetchable locator of the remote configs repository.
	// Empty disables sync.
	RemoteConfigsRepo string `toml:"remote_configs_repo"`

	// LocalConfigsRepo is the path of the local configs repository.
	// Empty selects the default data directory.
	LocalConfigsRepo string `toml:"local_configs_repo"`
}

// SyncEnabled reports whether a remote repository is configured.
func (s Settings) SyncEnabled() bool {
	return strings.TrimSpace(s.RemoteConfigsRepo) != ""
}

// WithDefaults returns a copy of s with the local repository defaulted to localRepo when unset.
func (s Settings) WithDefaults(localRepo string) Settings {
	if strings.TrimSpace(s.LocalConfigsRepo) == "" {
		s.LocalConfigsRepo = localRepo
	}

	return s
}
