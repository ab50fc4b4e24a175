// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// keys.go - The "keys" command: font catalog documentation.

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/styleconf/internal/style"
)

// HandleKeys documents every catalog font setting.
func HandleKeys(rt *Runtime) error {
	settings := style.FontSettings()
	if rt.Args.JSON {
		return rt.PrintJSON("keys", settings)
	}

	md := catalogMarkdown(settings)
	if !ColorsEnabled() {
		rt.Printf("%s", md)
		return nil
	}
	rt.Printf("%s", renderMarkdown(md, GetTerminalWidth()))
	return nil
}

// catalogMarkdown renders the font catalog as a markdown document.
func catalogMarkdown(settings []style.FontSetting) string {
	var b strings.Builder
	b.WriteString("# [Font] settings\n\n")
	b.WriteString("| Key | Label | Input | Value format |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, s := range settings {
		fmt.Fprintf(&b, "| `%s` | %s | %s | `%s` |\n", s.Key, s.Label, s.InputType, valueFormat(s.InputType))
	}
	b.WriteString("\n")
	for _, s := range settings {
		fmt.Fprintf(&b, "## %s (%s)\n\n%s\n\n", s.Key, s.Label, s.Description)
	}
	return b.String()
}

func valueFormat(t style.InputType) string {
	switch t {
	case style.InputFamilyOnly:
		return "family"
	case style.InputSizeOnly:
		return "size"
	default:
		return "size,family"
	}
}

// renderMarkdown renders markdown content for terminal display.
// Returns the original content if rendering fails.
func renderMarkdown(content string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(width, 100)),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
