// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// font_cmd.go - The "font" and "fonts" commands.

package cli

import (
	"fmt"

	"github.com/jeranaias/styleconf/internal/editor"
	"github.com/jeranaias/styleconf/internal/platform"
	"github.com/jeranaias/styleconf/internal/style"
	"github.com/jeranaias/styleconf/internal/util"
)

// HandleFont dispatches "font list|get|set".
func HandleFont(rt *Runtime) error {
	parser := NewArgParser(rt.Args.Raw)

	switch parser.Subcommand() {
	case "", "list", "ls":
		return handleFontList(rt)
	case "get", "show":
		return handleFontGet(rt, parser)
	case "set":
		return handleFontSet(rt, parser)
	default:
		return NewValidationErrorWithExample("subcommand", parser.Subcommand(),
			"must be list, get or set", "styleconf font set Log --size 14")
	}
}

// fontData decodes the session's value for a catalog entry.
func fontData(s *editor.Session, fs style.FontSetting) FontData {
	raw, ok := s.Get(style.SectionFont, fs.Key)
	v := style.ParseFontValue(raw)
	return FontData{FontSetting: fs, Raw: raw, Present: ok, Size: v.Size, Family: v.Family}
}

// lookupFontArg resolves KEY against the catalog.
func lookupFontArg(key string) (style.FontSetting, error) {
	if key == "" {
		return style.FontSetting{}, ErrMissingArgument("key", "styleconf font get TextEdit")
	}
	fs, ok := style.LookupFontSetting(key)
	if !ok {
		return style.FontSetting{}, NewNotFoundError("font setting", key)
	}
	return fs, nil
}

func handleFontList(rt *Runtime) error {
	session, err := rt.Open()
	if err != nil {
		return err
	}

	settings := style.FontSettings()
	data := make([]FontData, 0, len(settings))
	for _, fs := range settings {
		data = append(data, fontData(session, fs))
	}

	if rt.Args.JSON {
		return rt.PrintJSON("font list", data)
	}

	for _, d := range data {
		value := d.Raw
		if !d.Present {
			value = DimStyle.Render("(not set)")
		}
		rt.Printf("  %s %s %s %s\n",
			RenderLabel(d.Key, 15),
			util.PadRight(d.Label, 22),
			DimStyle.Render(util.PadRight(d.InputType.String(), 11)),
			value)
	}
	return nil
}

func handleFontGet(rt *Runtime, parser *ArgParser) error {
	fs, err := lookupFontArg(parser.Positional(1))
	if err != nil {
		return err
	}
	session, err := rt.Open()
	if err != nil {
		return err
	}
	d := fontData(session, fs)

	if rt.Args.JSON {
		return rt.PrintJSON("font get", d)
	}

	rt.Println(TitleStyle.Render(fs.Key) + "  " + DimStyle.Render(fs.Label))
	if !rt.Args.Quiet {
		rt.Println(DimStyle.Render(fs.Description))
	}
	if fs.InputType.EditsSize() {
		rt.Println(RenderLabel("size", 10) + ValueStyle.Render(d.Size))
	}
	if fs.InputType.EditsFamily() {
		family := d.Family
		if fs.InputType == style.InputFamilyOnly {
			// family-only values hold the whole name in the first segment
			family = d.Raw
		}
		rt.Println(RenderLabel("family", 10) + ValueStyle.Render(family))
	}
	if !d.Present {
		rt.Println(DimStyle.Render("(not set)"))
	}
	return nil
}

// handleFontSet updates size and family. An omitted flag keeps the current
// part of the value.
//
//	styleconf font set KEY [--size N] [--family NAME]
func handleFontSet(rt *Runtime, parser *ArgParser) error {
	fs, err := lookupFontArg(parser.Positional(1))
	if err != nil {
		return err
	}
	size, hasSize := parser.LookupFlag("size")
	family, hasFamily := parser.LookupFlag("family")
	if !hasSize && !hasFamily {
		return ErrMissingArgument("--size or --family",
			fmt.Sprintf("styleconf font set %s --size 14 --family \"MS Gothic\"", fs.Key))
	}
	if hasSize && !fs.InputType.EditsSize() {
		return NewValidationError("size", size, fs.Key+" only stores a font family")
	}
	if hasFamily && !fs.InputType.EditsFamily() {
		return NewValidationError("family", family, fs.Key+" only stores a font size")
	}

	session, err := rt.Open()
	if err != nil {
		return err
	}
	current := fontData(session, fs)
	if !hasSize {
		size = current.Size
	}
	if !hasFamily {
		family = current.Family
		if fs.InputType == style.InputFamilyOnly {
			family = current.Raw
		}
	}

	value := session.SetFont(fs.Key, size, family)
	if err := rt.Save(session); err != nil {
		return err
	}

	if rt.Args.JSON {
		d := fontData(session, fs)
		d.Saved = !rt.Args.DryRun
		return rt.PrintJSON("font set", d)
	}
	if !rt.Args.Quiet {
		rt.Printf("[Font] %s=%s\n", fs.Key, value)
	}
	return nil
}

// HandleFonts lists installed font families.
//
//	styleconf fonts [FILTER]
func HandleFonts(rt *Runtime) error {
	parser := NewArgParser(rt.Args.Raw)
	filter := JoinPositionalArgs(parser, 0)

	families, err := rt.Host.ListInstalledFontFamilies()
	if err != nil {
		return err
	}
	families = platform.FilterFamilies(families, filter)
	if families == nil {
		families = []string{}
	}

	if rt.Args.JSON {
		return rt.PrintJSON("fonts", FontFamiliesData{Filter: filter, Families: families})
	}
	for _, f := range families {
		rt.Println(f)
	}
	if len(families) == 0 && !rt.Args.Quiet {
		rt.Println(DimStyle.Render("no matching font families"))
	}
	return nil
}
