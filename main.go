// styleconf - A terminal editor for the AviUtl2 style.conf file.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeranaias/styleconf/internal/cli"
	"github.com/jeranaias/styleconf/internal/config"
	"github.com/jeranaias/styleconf/internal/logging"
	"github.com/jeranaias/styleconf/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	// Parse CLI arguments
	cmd, args := cli.Parse(os.Args[1:])
	cli.SetColorMode(args.NoColor)

	cfg, err := config.Load()
	if err != nil {
		cli.HandleErrorAndExit(err, args.JSON)
	}
	config.SetGlobal(cfg)

	setupLogging(cfg, args)
	defer logging.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt := cli.NewRuntime(args)
	rt.Ctx = ctx

	if cmd == cli.CmdTUI {
		err = runTUI(ctx, rt)
	} else {
		err = cli.Run(cmd, rt)
	}
	if err != nil {
		// os.Exit skips deferred calls.
		stop()
		logging.Close()
		cli.HandleErrorAndExit(err, args.JSON)
	}
}

// setupLogging sends logs to the log file. Failure to open it is reported
// but never fatal.
func setupLogging(cfg *config.Config, args cli.Args) {
	level := cfg.Log.Level
	if args.Verbose {
		level = "debug"
	}
	path, err := config.LogPath(cfg)
	if err == nil {
		err = config.EnsureConfigDir()
	}
	if err == nil {
		err = logging.Configure(logging.Config{Level: level, File: path})
	}
	if err != nil && args.Verbose {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
}

// runTUI opens the style file and starts the interactive editor.
func runTUI(ctx context.Context, rt *cli.Runtime) error {
	// USABILITY: a full-screen editor cannot run without a terminal.
	if err := cli.RequiresTTY("open the editor"); err != nil {
		return cli.NewValidationError("stdin", "", err.Error()+"; use a subcommand such as 'styleconf show'")
	}

	session, err := rt.Open()
	if err != nil {
		return err
	}
	return app.Run(ctx, session, rt.Host, rt.Config)
}
