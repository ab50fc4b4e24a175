// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution for
// styleconf.
//
// Every command works on one style.conf, chosen by --file, --user, --default
// or the editor configuration, and reaches the file system only through a
// platform.Host so that --dry-run and tests can substitute an in-memory one.
//
// # Key Types
//
//   - Command: Enumeration of all available CLI commands
//   - Args: Parsed command-line arguments with global flags
//   - Runtime: Configuration, host and output streams shared by handlers
//   - JSONResponse: Envelope for --json output
//
// # Usage
//
//	cmd, args := cli.Parse(os.Args[1:])
//	cfg, err := config.Load()
//	if err != nil {
//	    cli.HandleErrorAndExit(err, args.JSON)
//	}
//	config.SetGlobal(cfg)
//	rt := cli.NewRuntime(args)
//	cli.HandleErrorAndExit(cli.Run(cmd, rt), args.JSON)
//
// # Commands Overview
//
// Document commands: show, get, set, unset, check, diff, normalize.
// Font commands: font list|get|set, fonts, keys.
// File commands: path, reveal, watch, shell.
// Editor commands: config, version, help.
//
// All commands support --json for scripting.
package cli
