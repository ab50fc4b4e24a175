// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for styleconf.
//
// CLI: Comprehensive help and examples for all commands
package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdShow
	CmdGet
	CmdSet
	CmdUnset
	CmdFont
	CmdFonts
	CmdKeys
	CmdCheck
	CmdDiff
	CmdNormalize
	CmdPath
	CmdReveal
	CmdWatch
	CmdShell
	CmdConfig
	CmdVersion
	CmdHelp
	CmdUnknown
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	File    string // explicit style file
	User    bool   // edit the ProgramData override file
	Default bool   // edit the file in the install directory
	JSON    bool   // Output in JSON format
	Quiet   bool
	Verbose bool
	NoColor bool
	DryRun  bool // never write to disk

	// Command name as typed
	Name string

	// Subcommand is the first positional argument after the command
	Subcommand string

	// Raw args (remaining after global flag parsing, command name removed)
	Raw []string
}

const usageText = `styleconf - editor for the AviUtl2 appearance settings (style.conf)

Usage:
  styleconf                          Start the interactive editor (default)
  styleconf show [SECTION] [--raw]   Print the document
  styleconf get SECTION KEY          Print one value
  styleconf set SECTION KEY VALUE    Set a value and save
  styleconf unset SECTION KEY        Remove a key and save
  styleconf font list                List the font settings with current values
  styleconf font get KEY             Show a font setting's size and family
  styleconf font set KEY [--size N] [--family NAME]
                                     Update a font setting and save
  styleconf fonts [FILTER]           List installed font families
  styleconf keys                     Describe every font setting
  styleconf check                    Report entries that would not survive a save
  styleconf diff OTHER               Compare with another style file
  styleconf normalize [--confirm]    Rewrite the file in canonical form
  styleconf path                     Show the style file locations
  styleconf reveal                   Show the style file in the file manager
  styleconf watch                    Print a line whenever the file changes
  styleconf shell                    Interactive prompt
  styleconf config [show|set|path]   Editor settings
  styleconf version                  Version information

Sections: Font, Color, Layout, Format (any letter case on the command line)

Global Flags:
  --file PATH     Edit PATH instead of the configured file
  --user          Edit %%PROGRAMDATA%%\aviutl2\style.conf (default)
  --default       Edit style.conf in the AviUtl2 install directory
  --dry-run       Show what would be written without touching the disk
  --json          Output in JSON format
  --no-color      Disable colored output
  -q, --quiet     Minimal output
  -v, --verbose   Debug logging

Examples:
  styleconf get font TextEdit
  styleconf set Color Background 202020
  styleconf font set Log --size 14 --family "BIZ UDGothic"
  styleconf font set DefaultFamily --family "Yu Gothic UI"
  styleconf fonts gothic
  styleconf --default show --raw
  styleconf diff "C:\Program Files\AviUtl2\style.conf"

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "styleconf version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments (without the program name) and returns
// the command and args.
func Parse(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	if len(remaining) > 0 && remaining[0] == "--" {
		remaining = remaining[1:]
	}

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	parsedArgs.Name = cmd
	remaining = remaining[1:]
	parsedArgs.Raw = remaining
	if len(remaining) > 0 {
		parsedArgs.Subcommand = remaining[0]
	}

	switch cmd {
	case "tui", "edit":
		return CmdTUI, parsedArgs
	case "show", "cat":
		return CmdShow, parsedArgs
	case "get":
		return CmdGet, parsedArgs
	case "set":
		return CmdSet, parsedArgs
	case "unset", "rm", "delete":
		return CmdUnset, parsedArgs
	case "font":
		return CmdFont, parsedArgs
	case "fonts":
		return CmdFonts, parsedArgs
	case "keys", "catalog":
		return CmdKeys, parsedArgs
	case "check", "lint":
		return CmdCheck, parsedArgs
	case "diff":
		return CmdDiff, parsedArgs
	case "normalize", "fmt":
		return CmdNormalize, parsedArgs
	case "path", "where":
		return CmdPath, parsedArgs
	case "reveal", "open":
		return CmdReveal, parsedArgs
	case "watch":
		return CmdWatch, parsedArgs
	case "shell", "repl":
		return CmdShell, parsedArgs
	case "config":
		return CmdConfig, parsedArgs
	case "version", "--version":
		return CmdVersion, parsedArgs
	case "help", "-h", "--help":
		return CmdHelp, parsedArgs
	default:
		return CmdUnknown, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
// Global flags may appear anywhere on the command line.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "--user":
			parsedArgs.User = true
		case "--default":
			parsedArgs.Default = true
		case "--json":
			parsedArgs.JSON = true
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--no-color":
			parsedArgs.NoColor = true
		case "--dry-run", "-n":
			parsedArgs.DryRun = true
		case "--file", "-f":
			if i+1 < len(args) {
				i++
				parsedArgs.File = args[i]
			}
		case "--":
			// Global flags end here. The marker is kept so the command's own
			// parser also treats what follows as positional.
			remaining = append(remaining, args[i:]...)
			return remaining, parsedArgs
		default:
			if strings.HasPrefix(arg, "--file=") {
				parsedArgs.File = strings.TrimPrefix(arg, "--file=")
			} else {
				remaining = append(remaining, arg)
			}
		}
	}

	return remaining, parsedArgs
}

// =============================================================================
// COMMAND DISPATCH
// =============================================================================

// ERROR HANDLING: Errors must not be silently ignored

// Run executes a non-interactive command. CmdTUI is handled by the caller.
func Run(cmd Command, rt *Runtime) error {
	switch cmd {
	case CmdShow:
		return HandleShow(rt)
	case CmdGet:
		return HandleGet(rt)
	case CmdSet:
		return HandleSet(rt)
	case CmdUnset:
		return HandleUnset(rt)
	case CmdFont:
		return HandleFont(rt)
	case CmdFonts:
		return HandleFonts(rt)
	case CmdKeys:
		return HandleKeys(rt)
	case CmdCheck:
		return HandleCheck(rt)
	case CmdDiff:
		return HandleDiff(rt)
	case CmdNormalize:
		return HandleNormalize(rt)
	case CmdPath:
		return HandlePath(rt)
	case CmdReveal:
		return HandleReveal(rt)
	case CmdWatch:
		return HandleWatch(rt)
	case CmdShell:
		return HandleShell(rt)
	case CmdConfig:
		return HandleConfig(rt)
	case CmdVersion:
		return HandleVersion(rt)
	case CmdHelp:
		PrintUsage(rt.Out)
		return nil
	case CmdTUI:
		return NewCommandError("tui", "run", "the interactive editor is started by the main program", nil)
	default:
		return NewValidationErrorWithExample("command", rt.Args.Name, "unknown command", "styleconf help")
	}
}

// HandleVersion handles the "version" command with JSON output support.
func HandleVersion(rt *Runtime) error {
	if rt.Args.JSON {
		return rt.PrintJSON("version", VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		})
	}
	PrintVersion(rt.Out)
	return nil
}
