// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// show.go - The "show" command: print the style document.

package cli

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/jeranaias/styleconf/internal/style"
	"github.com/jeranaias/styleconf/internal/util"
)

// HandleShow prints the document, optionally limited to one section.
//
//	styleconf show [SECTION] [--raw]
func HandleShow(rt *Runtime) error {
	parser := NewArgParser(rt.Args.Raw, "raw")

	sections := style.Sections()
	if name := parser.Positional(0); name != "" {
		s, err := parseSectionArg(name)
		if err != nil {
			return err
		}
		sections = []style.Section{s}
	}

	session, err := rt.Open()
	if err != nil {
		return err
	}
	doc := onlySections(session.Document(), sections)

	if rt.Args.JSON {
		return rt.PrintJSON("show", DocumentData{
			Path:     session.Path(),
			Exists:   !session.IsNew(),
			Document: doc,
		})
	}

	if parser.BoolFlag("raw") {
		text := style.Serialize(doc)
		if ColorsEnabled() {
			text = highlightINI(text)
		}
		rt.Printf("%s", text)
		return nil
	}

	if !rt.Args.Quiet {
		rt.Println(TitleStyle.Render(session.Path()))
		if session.IsNew() {
			rt.Println(DimStyle.Render("(file does not exist yet)"))
		}
	}
	renderDocument(rt, doc, sections)
	return nil
}

// renderDocument prints the sections as aligned key/value lists. [Font]
// keys from the catalog carry their Japanese label.
func renderDocument(rt *Runtime, doc *style.Document, sections []style.Section) {
	for _, s := range sections {
		entries := doc.Entries(s)
		if len(entries) == 0 {
			continue
		}
		rt.Println()
		rt.Println(RenderSectionHeader(s.Name()))

		width := 0
		for _, e := range entries {
			if w := util.StringWidth(e.Key); w > width {
				width = w
			}
		}
		width = min(width+2, 28)

		for _, e := range entries {
			line := RenderLabel(e.Key, width) + ValueStyle.Render(e.Value)
			if s == style.SectionFont {
				if fs, ok := style.LookupFontSetting(e.Key); ok {
					line += "  " + DimStyle.Render(fs.Label)
				}
			}
			rt.Println("  " + line)
		}
	}
}

// onlySections copies the requested sections of doc.
func onlySections(doc *style.Document, sections []style.Section) *style.Document {
	if len(sections) == len(style.Sections()) {
		return doc
	}
	out := style.NewDocument()
	for _, s := range sections {
		for _, e := range doc.Entries(s) {
			out.Set(s, e.Key, e.Value)
		}
	}
	return out
}

// parseSectionArg maps a command-line section name to a Section.
func parseSectionArg(name string) (style.Section, error) {
	s, ok := style.ParseSection(name)
	if !ok {
		return 0, NewValidationErrorWithExample("section", name,
			"must be one of Font, Color, Layout, Format", "styleconf get font TextEdit")
	}
	return s, nil
}

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// highlightINI colors style.conf text for the terminal. On any failure the
// text is returned unchanged.
func highlightINI(text string) string {
	lexer := lexers.Get("ini")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	st := chromaStyles.Get("monokai")
	if st == nil {
		st = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, st, iterator); err != nil {
		return text
	}
	return buf.String()
}
