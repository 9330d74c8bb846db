// Package model defines the data structures used throughout hxcm.
//
// # Settings
//
// The [Settings] struct mirrors the user-edited settings file:
//
//	remote_configs_repo = "https://github.com/user/helix-configs"
//	local_configs_repo  = "~/helix-configs"
//
// Both keys are optional. hxcm never writes the file back.
package model
