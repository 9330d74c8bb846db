// Package core provides the business logic layer for hxcm.
//
// This package contains the bundle operations separated from UI concerns.
// Functions in this package return errors instead of printing; the cmd
// package turns results into user-facing output.
//
// # Local repository
//
// The local repository is a directory whose non-hidden immediate
// subdirectories are config bundles:
//
//	~/.local/share/hxcm/
//	├── .git/          (present when mirrored from a remote)
//	├── alacritty/
//	└── zed/
//
// # Operations
//
//   - [ListBundles] enumerates bundle names
//   - [Sync] clones, pulls or replaces the local repository from the remote
//   - [ApplyBundle] copies a bundle into <target>/.helix
//
// Every path taken from user input is resolved with [ResolveBundle], which
// rejects names that escape the local repository. The only recursive delete
// ([ResetRepository]) is restricted to the local repository root.
package core
