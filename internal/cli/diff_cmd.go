// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// diff_cmd.go - The "diff" command.

package cli

import (
	"strings"

	"github.com/jeranaias/styleconf/internal/diff"
	"github.com/jeranaias/styleconf/internal/style"
)

// HandleDiff compares the active style file with another one.
//
//	styleconf diff OTHER
func HandleDiff(rt *Runtime) error {
	parser := NewArgParser(rt.Args.Raw)
	other := parser.Positional(0)
	if other == "" {
		return ErrMissingArgument("file", `styleconf diff "C:\Program Files\AviUtl2\style.conf"`)
	}

	session, err := rt.Open()
	if err != nil {
		return err
	}
	text, err := rt.Host.ReadText(other)
	if err != nil {
		return err
	}

	d := session.Diff(style.Parse(text))
	if rt.Args.JSON {
		return rt.PrintJSON("diff", newDiffData(session.Path(), other, d))
	}

	printDiff(rt, d, session.Path(), other)
	return nil
}

func newDiffData(oldLabel, newLabel string, d *diff.Diff) DiffData {
	changes := d.Changes
	if changes == nil {
		changes = []diff.Change{}
	}
	return DiffData{Old: oldLabel, New: newLabel, Changes: changes, Stats: d.Stats}
}

// printDiff writes a colored unified-style diff followed by its summary.
func printDiff(rt *Runtime, d *diff.Diff, oldLabel, newLabel string) {
	if d.Empty() {
		if !rt.Args.Quiet {
			rt.Println(DimStyle.Render(d.Summary()))
		}
		return
	}
	for _, line := range strings.Split(strings.TrimSuffix(diff.Format(d, oldLabel, newLabel), "\n"), "\n") {
		rt.Println(colorDiffLine(line))
	}
	if !rt.Args.Quiet {
		rt.Println(DimStyle.Render(d.Summary()))
	}
}

func colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		return TitleStyle.Render(line)
	case strings.HasPrefix(line, "@@"):
		return SectionStyle.Render(line)
	case strings.HasPrefix(line, "+"):
		return AddedStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return RemovedStyle.Render(line)
	default:
		return line
	}
}
