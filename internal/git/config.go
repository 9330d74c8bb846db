package git

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/inovacc/hxcm/internal/giturl"
	"gopkg.in/ini.v1"
)

// MetadataDir is the name of the git metadata entry inside a working copy
const MetadataDir = ".git"

// OriginURL reads the origin remote URL from repoDir/.git/config.
// It returns an empty string when no origin is configured.
func OriginURL(repoDir string) (string, error) {
	configFile := filepath.Join(repoDir, MetadataDir, "config")

	cfg, err := ini.Load(configFile)
	if err != nil {
		return "", fmt.Errorf("failed to read git config: %w", err)
	}

	sec, err := cfg.GetSection(`remote "origin"`)
	if err != nil {
		return "", nil
	}

	return strings.TrimSpace(sec.Key("url").String()), nil
}

// SameRemote reports whether two remote locators point at the same repository.
// The https, ssh and scp-like spellings of a hosted repository are equivalent.
func SameRemote(a, b string) bool {
	return giturl.Canonical(a) == giturl.Canonical(b)
}
