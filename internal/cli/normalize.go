// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// normalize.go - The "normalize" command.

package cli

import (
	"fmt"

	"github.com/jeranaias/styleconf/internal/diff"
	"github.com/jeranaias/styleconf/internal/style"
)

// NormalizeData is returned by "normalize".
type NormalizeData struct {
	Path      string            `json:"path"`
	Changed   bool              `json:"changed"`
	Saved     bool              `json:"saved"`
	BytesOld  int               `json:"bytes_old"`
	BytesNew  int               `json:"bytes_new"`
	Issues    []style.LintIssue `json:"issues,omitempty"`
	Semantics diff.Stats        `json:"semantic_changes"`
}

// HandleNormalize rewrites the file in canonical form: the fixed banner,
// sections in Font, Color, Layout, Format order, "key=value" lines. Comments
// and unknown sections are dropped, so the rewrite asks for confirmation.
//
//	styleconf normalize [--confirm]
func HandleNormalize(rt *Runtime) error {
	parser := NewArgParser(rt.Args.Raw, "confirm", "y")

	session, err := rt.Open()
	if err != nil {
		return err
	}
	if session.IsNew() {
		return NewNotFoundError("style file", session.Path())
	}

	original, err := rt.Host.ReadText(session.Path())
	if err != nil {
		return err
	}
	canonical := session.Text()
	roundTrip := diff.Compare(session.Document(), style.Parse(canonical))

	data := NormalizeData{
		Path:      session.Path(),
		Changed:   original != canonical,
		BytesOld:  len(original),
		BytesNew:  len(canonical),
		Issues:    session.Lint(),
		Semantics: roundTrip.Stats,
	}

	if !data.Changed {
		if rt.Args.JSON {
			return rt.PrintJSON("normalize", data)
		}
		if !rt.Args.Quiet {
			rt.Printf("%s %s is already normalized\n", RenderStatus("ok"), data.Path)
		}
		return nil
	}

	if !rt.Args.JSON && !rt.Args.Quiet {
		rt.Printf("%s: %d bytes -> %d bytes\n", data.Path, data.BytesOld, data.BytesNew)
		rt.Println(DimStyle.Render("Comments, blank lines and unknown sections will be removed."))
		for _, issue := range data.Issues {
			rt.Printf("%s %s\n", RenderStatus("warn"), issue.String())
		}
	}

	confirmed, err := RequireConfirmation(fmt.Sprintf("rewrite %s", data.Path),
		rt.confirmation(parser.BoolFlag("confirm") || parser.BoolFlag("y")))
	if err != nil {
		return err
	}
	if !confirmed {
		if !rt.Args.JSON {
			rt.Println("Cancelled.")
		}
		return nil
	}

	if err := session.Save(); err != nil {
		return err
	}
	data.Saved = !rt.Args.DryRun

	if rt.Args.JSON {
		return rt.PrintJSON("normalize", data)
	}
	if !rt.Args.Quiet && !rt.Args.DryRun {
		rt.Printf("%s Normalized %s\n", RenderStatus("saved"), data.Path)
	}
	return nil
}
