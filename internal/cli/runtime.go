// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// runtime.go - Shared state for command handlers.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/jeranaias/styleconf/internal/config"
	"github.com/jeranaias/styleconf/internal/editor"
	"github.com/jeranaias/styleconf/internal/logging"
	"github.com/jeranaias/styleconf/internal/platform"
)

// Runtime carries everything a command handler needs. Handlers never touch
// os.Stdout or the file system directly.
type Runtime struct {
	// Ctx is cancelled on interrupt; long-running commands stop on it.
	Ctx context.Context

	Args   Args
	Config *config.Config
	Host   platform.Host

	In          io.Reader
	Out         io.Writer
	ErrOut      io.Writer
	Interactive bool // stdin is a terminal

	log zerolog.Logger
}

// NewRuntime builds a Runtime for the real terminal and file system, using the
// global configuration. --dry-run wraps the host so that writes are reported
// instead of performed.
func NewRuntime(args Args) *Runtime {
	var host platform.Host = platform.NewOSHost()
	if args.DryRun {
		host = &dryRunHost{Host: host, out: os.Stderr}
	}
	return &Runtime{
		Ctx:         context.Background(),
		Args:        args,
		Config:      config.Global(),
		Host:        host,
		In:          os.Stdin,
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		Interactive: IsTTY(),
		log:         logging.WithComponent("cli"),
	}
}

// StylePath resolves the style file named by the global flags and config.
// --file wins over --default, which wins over --user.
func (rt *Runtime) StylePath() string {
	switch {
	case rt.Args.File != "":
		return rt.Args.File
	case rt.Args.Default:
		return rt.Config.DefaultStylePath()
	case rt.Args.User:
		return rt.Config.UserStylePath()
	default:
		return rt.Config.ResolveStylePath("")
	}
}

func (rt *Runtime) context() context.Context {
	if rt.Ctx == nil {
		return context.Background()
	}
	return rt.Ctx
}

// Open opens the resolved style file.
func (rt *Runtime) Open() (*editor.Session, error) {
	path := rt.StylePath()
	rt.log.Debug().Str("path", path).Msg("opening style file")
	return editor.Open(rt.Host, path)
}

// Save writes the session and reports where, unless --quiet or --json.
func (rt *Runtime) Save(s *editor.Session) error {
	if err := s.Save(); err != nil {
		return err
	}
	if !rt.Args.Quiet && !rt.Args.JSON && !rt.Args.DryRun {
		rt.Printf("%s Saved %s\n", RenderStatus("saved"), s.Path())
	}
	return nil
}

// PrintJSON writes a success envelope for command.
func (rt *Runtime) PrintJSON(command string, data interface{}) error {
	return NewJSONResponse(command, data).PrintTo(rt.Out)
}

// Printf writes to the command output.
func (rt *Runtime) Printf(format string, args ...interface{}) {
	fmt.Fprintf(rt.Out, format, args...)
}

// Println writes a line to the command output.
func (rt *Runtime) Println(args ...interface{}) {
	fmt.Fprintln(rt.Out, args...)
}

// confirmation returns the options for RequireConfirmation.
func (rt *Runtime) confirmation(confirmFlag bool) ConfirmationOptions {
	return ConfirmationOptions{
		ConfirmFlag: confirmFlag,
		JSONMode:    rt.Args.JSON,
		Interactive: rt.Interactive,
		In:          rt.In,
		Out:         rt.ErrOut,
	}
}

// =============================================================================
// DRY RUN
// =============================================================================

// dryRunHost reads through to the real host and reports writes instead of
// performing them.
type dryRunHost struct {
	platform.Host
	out io.Writer
}

func (h *dryRunHost) WriteText(path, text string) error {
	fmt.Fprintf(h.out, "%s would write %d bytes to %s\n", RenderStatus("dry-run"), len(text), path)
	return nil
}
