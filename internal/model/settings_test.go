package model

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
)

func TestSettings_SyncEnabled(t *testing.T) {
	tests := []struct {
		remote string
		want   bool
	}{
		{"", false},
		{"   ", false},
		{"https://github.com/user/configs", true},
		{"git@github.com:user/configs.git", true},
	}

	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			s := Settings{RemoteConfigsRepo: tt.remote}
			if got := s.SyncEnabled(); got != tt.want {
				t.Errorf("SyncEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSettings_WithDefaults(t *testing.T) {
	tests := []struct {
		name  string
		in    Settings
		local string
		want  Settings
	}{
		{
			name:  "empty settings get default local repo",
			in:    Settings{},
			local: "/data/hxcm",
			want:  Settings{LocalConfigsRepo: "/data/hxcm"},
		},
		{
			name:  "configured local repo is kept",
			in:    Settings{LocalConfigsRepo: "/custom"},
			local: "/data/hxcm",
			want:  Settings{LocalConfigsRepo: "/custom"},
		},
		{
			name:  "remote is never defaulted",
			in:    Settings{RemoteConfigsRepo: "https://example.com/r.git"},
			local: "/data/hxcm",
			want:  Settings{RemoteConfigsRepo: "https://example.com/r.git", LocalConfigsRepo: "/data/hxcm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.in.WithDefaults(tt.local))
		})
	}
}

func TestSettings_TOMLKeys(t *testing.T) {
	doc := `
remote_configs_repo = "https://github.com/user/configs"
local_configs_repo = "/home/user/configs"
`

	var s Settings

	require.NoError(t, toml.Unmarshal([]byte(doc), &s))
	require.Equal(t, "https://github.com/user/configs", s.RemoteConfigsRepo)
	require.Equal(t, "/home/user/configs", s.LocalConfigsRepo)
}
