// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/styleconf/internal/platform"
	"github.com/jeranaias/styleconf/internal/style"
)

// =============================================================================
// FONT FORM
// =============================================================================

// Font form fields.
const (
	fieldSize = iota
	fieldFamily
)

// pickerHeight is the number of families shown at once.
const pickerHeight = 8

// fontForm edits one [Font] entry. Only the fields the key's input type
// stores are enabled.
type fontForm struct {
	setting style.FontSetting
	size    textinput.Model
	family  textinput.Model
	focus   int

	// Family picker
	picking    bool
	filter     textinput.Model
	pickCursor int
}

// newFontForm seeds the fields from the stored raw value.
func newFontForm(setting style.FontSetting, raw string) *fontForm {
	f := &fontForm{setting: setting}

	f.size = textinput.New()
	f.size.Placeholder = "size"
	f.size.CharLimit = 8
	f.size.Width = 8

	f.family = textinput.New()
	f.family.Placeholder = "family"
	f.family.Width = 32

	f.filter = textinput.New()
	f.filter.Placeholder = "filter"
	f.filter.Width = 32

	// A family-only value has no size prefix, so it is the family as a whole.
	if setting.InputType == style.InputFamilyOnly {
		f.family.SetValue(raw)
	} else {
		v := style.ParseFontValue(raw)
		f.size.SetValue(v.Size)
		f.family.SetValue(v.Family)
	}

	if setting.InputType.EditsSize() {
		f.focus = fieldSize
	} else {
		f.focus = fieldFamily
	}
	f.applyFocus()
	return f
}

// enabled reports whether field is editable for this key.
func (f *fontForm) enabled(field int) bool {
	if field == fieldSize {
		return f.setting.InputType.EditsSize()
	}
	return f.setting.InputType.EditsFamily()
}

// cycle moves focus to the next enabled field.
func (f *fontForm) cycle() {
	next := 1 - f.focus
	if f.enabled(next) {
		f.focus = next
		f.applyFocus()
	}
}

func (f *fontForm) applyFocus() {
	if f.focus == fieldSize {
		f.size.Focus()
		f.family.Blur()
	} else {
		f.family.Focus()
		f.size.Blur()
	}
}

// update routes a key to the focused field.
func (f *fontForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == fieldSize {
		f.size, cmd = f.size.Update(msg)
	} else {
		f.family, cmd = f.family.Update(msg)
	}
	return cmd
}

// value returns the encoded value for the current fields.
func (f *fontForm) value() string {
	return style.FormatFontValue(f.size.Value(), f.family.Value(), f.setting.Key)
}

// =============================================================================
// FAMILY PICKER
// =============================================================================

// openPicker starts the picker, prefiltered with nothing.
func (f *fontForm) openPicker() {
	f.picking = true
	f.pickCursor = 0
	f.filter.SetValue("")
	f.filter.Focus()
}

func (f *fontForm) closePicker() {
	f.picking = false
	f.filter.Blur()
	f.applyFocus()
}

// matches returns the families passing the filter.
func (f *fontForm) matches(families []string) []string {
	return platform.FilterFamilies(families, f.filter.Value())
}

// movePicker moves the picker cursor by delta within the matches.
func (f *fontForm) movePicker(families []string, delta int) {
	n := len(f.matches(families))
	if n == 0 {
		f.pickCursor = 0
		return
	}
	f.pickCursor = (f.pickCursor + delta + n) % n
}

// pick copies the selected family into the family field. It reports false
// when nothing matches.
func (f *fontForm) pick(families []string) bool {
	m := f.matches(families)
	if len(m) == 0 {
		return false
	}
	if f.pickCursor >= len(m) {
		f.pickCursor = len(m) - 1
	}
	f.family.SetValue(m[f.pickCursor])
	f.closePicker()
	return true
}

// updateFilter routes a key to the filter and resets the cursor.
func (f *fontForm) updateFilter(msg tea.Msg) tea.Cmd {
	before := f.filter.Value()
	var cmd tea.Cmd
	f.filter, cmd = f.filter.Update(msg)
	if f.filter.Value() != before {
		f.pickCursor = 0
	}
	return cmd
}
