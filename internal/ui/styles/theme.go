// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the editor.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER AND TABS
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderPath  lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	TabCount    lipgloss.Style

	// ==========================================================================
	// ENTRY LIST
	// ==========================================================================

	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Key         lipgloss.Style
	KeyMissing  lipgloss.Style
	Value       lipgloss.Style
	Label       lipgloss.Style
	Description lipgloss.Style
	Empty       lipgloss.Style

	// ==========================================================================
	// DIALOGS
	// ==========================================================================

	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style
	FieldBlurred lipgloss.Style
	PickerItem   lipgloss.Style
	PickerActive lipgloss.Style
	Preview      lipgloss.Style

	// ==========================================================================
	// STATUS BAR
	// ==========================================================================

	StatusBar   lipgloss.Style
	StatusClean lipgloss.Style
	StatusDirty lipgloss.Style
	StatusError lipgloss.Style
	StatusWarn  lipgloss.Style
	StatusInfo  lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// NewTheme creates a theme. mode is "dark", "light" or "auto"; auto asks the
// terminal for its background.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch mode {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	default:
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Header
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderPath = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.Tab = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 2)

	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Purple).
		Padding(0, 2)

	t.TabCount = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Entry list
	t.Row = lipgloss.NewStyle().
		Foreground(TextPrimary).
		PaddingLeft(2)

	t.RowSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SelectionBg).
		Bold(true).
		PaddingLeft(2)

	t.Key = lipgloss.NewStyle().
		Foreground(Cyan)

	t.KeyMissing = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Value = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.Label = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.Description = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Empty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Padding(1, 2)

	// Dialogs
	t.Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)

	t.DialogTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.FieldLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(8)

	t.FieldFocused = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(FocusRing).
		Padding(0, 1)

	t.FieldBlurred = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.PickerItem = lipgloss.NewStyle().
		Foreground(TextSecondary).
		PaddingLeft(2)

	t.PickerActive = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true).
		PaddingLeft(1)

	t.Preview = lipgloss.NewStyle().
		Foreground(Cyan)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusClean = lipgloss.NewStyle().
		Foreground(Emerald)

	t.StatusDirty = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.StatusError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.StatusWarn = lipgloss.NewStyle().
		Foreground(Amber)

	t.StatusInfo = lipgloss.NewStyle().
		Foreground(Cyan)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns: descriptions hidden
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
