// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// colorTokens returns the 6-hex-digit colors in a [Color] value, in order.
// Values hold one or more comma-separated tokens; anything else is skipped.
func colorTokens(value string) []colorful.Color {
	var out []colorful.Color
	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimPrefix(strings.TrimSpace(tok), "#")
		if len(tok) != 6 {
			continue
		}
		c, err := colorful.Hex("#" + tok)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

// renderSwatches draws one two-cell block per color token.
func renderSwatches(value string) string {
	colors := colorTokens(value)
	if len(colors) == 0 {
		return ""
	}
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Foreground(lipgloss.Color(contrastHex(c))).
			Render("  "))
	}
	return b.String()
}

// contrastHex picks black or white text for a background color.
func contrastHex(c colorful.Color) string {
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
