// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for styleconf.
//
// These are the editor's own settings, stored as TOML. They are unrelated to
// the style.conf files being edited, except that they decide which one is
// opened.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - StyleConfig: Which style.conf to edit and where AviUtl2 lives
//   - UIConfig: Theme and TUI behaviour
//   - LogConfig: Log level and destination
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (STYLECONF_*)
//   - ~/.styleconf/config.toml (or $STYLECONF_HOME/config.toml)
//   - Built-in defaults
//
// # Usage
//
// Load configuration and pick the style file:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path := cfg.ResolveStylePath("")
package config
