// SPDX-License-Identifier: MPL-2.0

// Package config handles omniboot configuration using Viper with CUE as the
// file format.
//
// Configuration is loaded from ~/.config/omniboot/config.cue (or XDG
// equivalent on Linux, ~/Library/Application Support/omniboot/config.cue on
// macOS, %APPDATA%\omniboot\config.cue on Windows) and validated against an
// embedded CUE schema. The surface is deliberately small: fetch timeout,
// interpreter override, and verbosity. The launcher URL is not configurable.
package config
