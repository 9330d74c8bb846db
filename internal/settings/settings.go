// Package settings bootstraps the hxcm settings directory, settings file and
// local configs repository on every invocation.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inovacc/hxcm/internal/application"
	"github.com/inovacc/hxcm/internal/encoding"
	"github.com/inovacc/hxcm/internal/model"
	"github.com/pelletier/go-toml/v2"
)

// Paths locates the settings file and the default local repository.
type Paths struct {
	// File is the settings file; its parent directory is the settings directory.
	File string

	// DefaultLocalRepo is used when local_configs_repo is unset.
	DefaultLocalRepo string
}

// Dir returns the settings directory.
func (p Paths) Dir() string {
	return filepath.Dir(p.File)
}

// DefaultPaths resolves the per-user settings file and data directory.
// A non-empty override replaces the settings file location.
func DefaultPaths(override string) (Paths, error) {
	file := override
	if file == "" {
		var err error

		file, err = application.GetSettingsFile()
		if err != nil {
			return Paths{}, err
		}
	}

	file, err := ExpandPath(file)
	if err != nil {
		return Paths{}, err
	}

	dataDir, err := application.GetDataDirectory()
	if err != nil {
		return Paths{}, err
	}

	return Paths{File: file, DefaultLocalRepo: dataDir}, nil
}

// Config is the resolved, read-only configuration of one invocation.
type Config struct {
	// SettingsFile is the settings file that was read.
	SettingsFile string

	// SettingsDir is the directory holding the settings file.
	SettingsDir string

	// RemoteRepo is the remote configs repository locator, empty when sync is disabled.
	RemoteRepo string

	// LocalRepo is the absolute path of the local configs repository.
	LocalRepo string
}

// SyncEnabled reports whether a remote repository is configured.
func (c *Config) SyncEnabled() bool {
	return model.Settings{RemoteConfigsRepo: c.RemoteRepo}.SyncEnabled()
}

// ParseError indicates the settings file exists but is not valid TOML.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid settings file %s (line %d, column %d): %v", e.Path, e.Line, e.Column, e.Err)
	}

	return fmt.Sprintf("invalid settings file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Bootstrap ensures the settings directory and file exist, reads the file,
// applies defaults and ensures the local repository directory exists.
func Bootstrap(paths Paths) (*Config, error) {
	if err := encoding.EnsureDir(paths.Dir()); err != nil {
		return nil, err
	}

	if err := encoding.EnsureFile(paths.File); err != nil {
		return nil, err
	}

	s, err := Load(paths.File)
	if err != nil {
		return nil, err
	}

	*s = s.WithDefaults(paths.DefaultLocalRepo)

	localRepo, err := ExpandPath(s.LocalConfigsRepo)
	if err != nil {
		return nil, fmt.Errorf("invalid local_configs_repo: %w", err)
	}

	if err := encoding.EnsureDir(localRepo); err != nil {
		return nil, err
	}

	return &Config{
		SettingsFile: paths.File,
		SettingsDir:  paths.Dir(),
		RemoteRepo:   strings.TrimSpace(s.RemoteConfigsRepo),
		LocalRepo:    localRepo,
	}, nil
}

// Load reads and decodes the settings file at path.
func Load(path string) (*model.Settings, error) {
	s, err := encoding.LoadTOML[model.Settings](path)
	if err == nil {
		return s, nil
	}

	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return nil, err
	}

	pe := &ParseError{Path: path, Err: err}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		pe.Line, pe.Column = decodeErr.Position()
	}

	return nil, pe
}

// ExpandPath expands a leading ~ to the user's home directory and returns an absolute path.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path is empty")
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}
