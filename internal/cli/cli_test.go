// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	ForceColorsEnabled(false)
	SetColorMode(true)
	goleak.VerifyTestMain(m)
}

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		bools    []string
		wantSub  string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name:    "simple subcommand",
			args:    []string{"list"},
			wantSub: "list",
		},
		{
			name:    "subcommand with flag",
			args:    []string{"set", "Log", "--size", "14"},
			wantSub: "set",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("size") != "14" {
					t.Errorf("Flag(size) = %q, want %q", p.Flag("size"), "14")
				}
				if p.Positional(1) != "Log" {
					t.Errorf("Positional(1) = %q, want Log", p.Positional(1))
				}
			},
		},
		{
			name:    "flag with equals",
			args:    []string{"set", "TextEdit", "--family=MS Gothic"},
			wantSub: "set",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("family") != "MS Gothic" {
					t.Errorf("Flag(family) = %q, want %q", p.Flag("family"), "MS Gothic")
				}
			},
		},
		{
			name:    "explicitly empty flag",
			args:    []string{"set", "TextEdit", "--family="},
			wantSub: "set",
			validate: func(t *testing.T, p *ArgParser) {
				v, ok := p.LookupFlag("family")
				if !ok || v != "" {
					t.Errorf("LookupFlag(family) = %q, %v; want empty, true", v, ok)
				}
			},
		},
		{
			name:    "declared boolean does not consume value",
			args:    []string{"--raw", "font"},
			bools:   []string{"raw"},
			wantSub: "font",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("raw") {
					t.Error("BoolFlag(raw) should be true")
				}
			},
		},
		{
			name:    "undeclared flag consumes value",
			args:    []string{"--raw", "font"},
			wantSub: "",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("raw") != "font" {
					t.Errorf("Flag(raw) = %q, want font", p.Flag("raw"))
				}
			},
		},
		{
			name:    "multiple positional args",
			args:    []string{"Color", "Background", "20", "20", "20"},
			wantSub: "Color",
			validate: func(t *testing.T, p *ArgParser) {
				if p.PositionalCount() != 5 {
					t.Errorf("PositionalCount() = %d, want 5", p.PositionalCount())
				}
				if got := JoinPositionalArgs(p, 2); got != "20 20 20" {
					t.Errorf("JoinPositionalArgs = %q, want %q", got, "20 20 20")
				}
			},
		},
		{
			name:    "negative number is positional",
			args:    []string{"Layout", "Offset", "-5"},
			wantSub: "Layout",
			validate: func(t *testing.T, p *ArgParser) {
				if p.PositionalCount() != 3 || p.Positional(2) != "-5" {
					t.Errorf("Positional(2) = %q, want -5", p.Positional(2))
				}
				if p.HasFlag("5") {
					t.Error("-5 should not be a flag")
				}
			},
		},
		{
			name:    "flag takes negative value",
			args:    []string{"set", "Log", "--size", "-2", "--family", "Mono"},
			wantSub: "set",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("size") != "-2" {
					t.Errorf("Flag(size) = %q, want -2", p.Flag("size"))
				}
				if p.Flag("family") != "Mono" {
					t.Errorf("Flag(family) = %q, want Mono", p.Flag("family"))
				}
			},
		},
		{
			name:    "double dash ends flags",
			args:    []string{"Color", "Key", "--", "-1"},
			wantSub: "Color",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Positional(2) != "-1" {
					t.Errorf("Positional(2) = %q, want -1", p.Positional(2))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewArgParser(tt.args, tt.bools...)
			if p.Subcommand() != tt.wantSub {
				t.Errorf("Subcommand() = %q, want %q", p.Subcommand(), tt.wantSub)
			}
			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestArgParser_HasFlag(t *testing.T) {
	p := NewArgParser([]string{"--confirm", "--size", "12"})
	if !p.HasFlag("confirm") || !p.HasFlag("--size") {
		t.Error("HasFlag should report both flags")
	}
	if p.HasFlag("family") {
		t.Error("HasFlag(family) should be false")
	}
}

func TestArgParser_EmptyArgs(t *testing.T) {
	p := NewArgParser(nil)
	if p.Subcommand() != "" || p.PositionalCount() != 0 {
		t.Error("empty parser should have no positional args")
	}
	if len(p.PositionalFrom(3)) != 0 {
		t.Error("PositionalFrom out of range should be empty")
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"YES", true, false},
		{"on", true, false},
		{"0", false, false},
		{"off", false, false},
		{"maybe", false, true},
	}
	for _, tt := range tests {
		got, err := ParseBoolString(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBoolString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseBoolString(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// =============================================================================
// PARSE TESTS (cli.go)
// =============================================================================

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{nil, CmdTUI},
		{[]string{"tui"}, CmdTUI},
		{[]string{"show"}, CmdShow},
		{[]string{"get", "font", "Log"}, CmdGet},
		{[]string{"set"}, CmdSet},
		{[]string{"unset"}, CmdUnset},
		{[]string{"rm"}, CmdUnset},
		{[]string{"font", "list"}, CmdFont},
		{[]string{"fonts"}, CmdFonts},
		{[]string{"keys"}, CmdKeys},
		{[]string{"check"}, CmdCheck},
		{[]string{"lint"}, CmdCheck},
		{[]string{"diff"}, CmdDiff},
		{[]string{"normalize"}, CmdNormalize},
		{[]string{"path"}, CmdPath},
		{[]string{"reveal"}, CmdReveal},
		{[]string{"watch"}, CmdWatch},
		{[]string{"shell"}, CmdShell},
		{[]string{"config"}, CmdConfig},
		{[]string{"version"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"-h"}, CmdHelp},
		{[]string{"SHOW"}, CmdShow},
		{[]string{"frobnicate"}, CmdUnknown},
	}
	for _, tt := range tests {
		got, _ := Parse(tt.argv)
		if got != tt.want {
			t.Errorf("Parse(%v) = %v, want %v", tt.argv, got, tt.want)
		}
	}
}

func TestParse_GlobalFlagsAnywhere(t *testing.T) {
	cmd, args := Parse([]string{"--json", "get", "-q", "font", "--file", `C:\x\style.conf`, "Log", "--dry-run"})
	if cmd != CmdGet {
		t.Fatalf("cmd = %v, want CmdGet", cmd)
	}
	if !args.JSON || !args.Quiet || !args.DryRun {
		t.Errorf("flags not parsed: %+v", args)
	}
	if args.File != `C:\x\style.conf` {
		t.Errorf("File = %q", args.File)
	}
	if strings.Join(args.Raw, " ") != "font Log" {
		t.Errorf("Raw = %v, want [font Log]", args.Raw)
	}
	if args.Subcommand != "font" {
		t.Errorf("Subcommand = %q, want font", args.Subcommand)
	}
}

func TestParse_FileEquals(t *testing.T) {
	_, args := Parse([]string{"--file=/tmp/style.conf", "--user", "--default", "--no-color", "-v"})
	if args.File != "/tmp/style.conf" || !args.User || !args.Default || !args.NoColor || !args.Verbose {
		t.Errorf("unexpected args: %+v", args)
	}
}

func TestParse_DoubleDashStopsGlobalFlags(t *testing.T) {
	cmd, args := Parse([]string{"-q", "set", "Format", "Sep", "--", "-n", "-v"})
	if cmd != CmdSet {
		t.Fatalf("cmd = %v, want CmdSet", cmd)
	}
	if !args.Quiet || args.DryRun || args.Verbose {
		t.Errorf("flags after -- must not be parsed: %+v", args)
	}
	if strings.Join(args.Raw, " ") != "Format Sep -- -n -v" {
		t.Errorf("Raw = %v, want [Format Sep -- -n -v]", args.Raw)
	}

	p := NewArgParser(args.Raw)
	if got := JoinPositionalArgs(p, 2); got != "-n -v" {
		t.Errorf("value = %q, want %q", got, "-n -v")
	}

	cmd, _ = Parse([]string{"--", "show"})
	if cmd != CmdShow {
		t.Errorf("Parse(-- show) = %v, want CmdShow", cmd)
	}
}
