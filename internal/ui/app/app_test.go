// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/styleconf/internal/config"
	"github.com/jeranaias/styleconf/internal/editor"
	"github.com/jeranaias/styleconf/internal/platform"
	"github.com/jeranaias/styleconf/internal/style"
	"github.com/jeranaias/styleconf/internal/ui/styles"
	"github.com/jeranaias/styleconf/internal/watch"
)

const testPath = "/aviutl2/style.conf"

const sampleText = `[Font]
Control=13
TextEdit=14,MS Gothic
Custom=abc
[Color]
Background=202020
Accent=ff0000,00ff00
[Layout]
Width=300
`

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestModel(t *testing.T, text string) (Model, *platform.MemHost) {
	t.Helper()
	host := platform.NewMemHost()
	if text != "" {
		host.SetFile(testPath, text)
	}
	host.SetFonts("Meiryo", "MS Gothic", "Yu Gothic UI")

	s, err := editor.Open(host, testPath)
	require.NoError(t, err)

	m := New(s, host, config.Default(),
		WithTheme(styles.NewTheme("dark")),
		WithClipboard(func(string) error { return nil }),
	)
	return m, host
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = update(m, keyMsg(k))
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func selectKey(t *testing.T, m Model, k string) Model {
	t.Helper()
	for i, r := range m.rows {
		if r.Key == k {
			m.cursors[m.tab] = i
			return m
		}
	}
	t.Fatalf("row %q not found", k)
	return m
}

func get(m Model, sec style.Section, k string) string {
	v, _ := m.session.Get(sec, k)
	return v
}

// =============================================================================
// ROWS AND SWATCHES
// =============================================================================

func TestBuildRows_FontListsMissingCatalogKeys(t *testing.T) {
	doc := style.Parse(sampleText)
	rows := buildRows(doc, style.SectionFont)

	require.Len(t, rows, 10)
	assert.Equal(t, "Control", rows[0].Key)
	assert.True(t, rows[0].Present)
	require.NotNil(t, rows[0].Setting)
	assert.Equal(t, style.InputSizeOnly, rows[0].Setting.InputType)

	assert.Equal(t, "Custom", rows[2].Key)
	assert.Nil(t, rows[2].Setting)

	assert.Equal(t, "DefaultFamily", rows[3].Key)
	assert.False(t, rows[3].Present)
	assert.Equal(t, "Log", rows[9].Key)
}

func TestBuildRows_OtherSectionsFileOrder(t *testing.T) {
	doc := style.Parse(sampleText)
	rows := buildRows(doc, style.SectionColor)

	require.Len(t, rows, 2)
	assert.Equal(t, "Background", rows[0].Key)
	assert.Equal(t, "Accent", rows[1].Key)
	assert.Nil(t, rows[0].Setting)

	assert.Empty(t, buildRows(doc, style.SectionFormat))
}

func TestKeyWidth(t *testing.T) {
	rows := []row{{Key: "ab"}, {Key: "ログ表示"}}
	assert.Equal(t, 8, keyWidth(rows, 24))
	assert.Equal(t, 4, keyWidth(rows, 4))
}

func TestColorTokens(t *testing.T) {
	tests := map[string]int{
		"202020":                1,
		"ff0000,#00ff00,zz1234": 2,
		"12345":                 0,
		"":                      0,
		"#ABCDEF , 000000":      2,
	}
	for value, want := range tests {
		assert.Len(t, colorTokens(value), want, value)
	}
	assert.Empty(t, renderSwatches("300"))
	assert.NotEmpty(t, renderSwatches("202020"))
}

// =============================================================================
// NAVIGATION
// =============================================================================

func TestModel_TabSwitching(t *testing.T) {
	m, _ := newTestModel(t, sampleText)
	assert.Equal(t, style.SectionFont, m.tab)

	m = press(m, "tab")
	assert.Equal(t, style.SectionColor, m.tab)
	assert.Len(t, m.rows, 2)

	m = press(m, "4")
	assert.Equal(t, style.SectionFormat, m.tab)

	m = press(m, "shift+tab")
	assert.Equal(t, style.SectionLayout, m.tab)

	m = press(m, "1", "shift+tab")
	assert.Equal(t, style.SectionFormat, m.tab)
}

func TestModel_CursorPerTab(t *testing.T) {
	m, _ := newTestModel(t, sampleText)

	m = press(m, "down", "down")
	assert.Equal(t, 2, m.cursor())

	m = press(m, "tab")
	assert.Equal(t, 0, m.cursor())

	m = press(m, "shift+tab")
	assert.Equal(t, 2, m.cursor())

	m = press(m, "G")
	assert.Equal(t, len(m.rows)-1, m.cursor())
	m = press(m, "down")
	assert.Equal(t, len(m.rows)-1, m.cursor())

	m = press(m, "g", "up")
	assert.Equal(t, 0, m.cursor())
}

// =============================================================================
// EDITING
// =============================================================================

func TestModel_EditValue(t *testing.T) {
	m, _ := newTestModel(t, sampleText)

	m = press(m, "tab", "enter")
	require.Equal(t, modeValue, m.mode)
	assert.Equal(t, "202020", m.input.Value())

	m = press(m, "ctrl+u")
	m = typeText(m, "ffffff")
	m = press(m, "enter")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "ffffff", get(m, style.SectionColor, "Background"))
	assert.True(t, m.session.Dirty())
}

func TestModel_EditValueCancel(t *testing.T) {
	m, _ := newTestModel(t, sampleText)

	m = press(m, "tab", "enter")
	m = typeText(m, "00")
	m = press(m, "esc")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "202020", get(m, style.SectionColor, "Background"))
	assert.False(t, m.session.Dirty())
}

func TestModel_EditFontSizeOnly(t *testing.T) {
	m, _ := newTestModel(t, sampleText)

	m = selectKey(t, m, "Control")
	m = press(m, "enter")
	require.Equal(t, modeFont, m.mode)
	require.NotNil(t, m.form)
	assert.Equal(t, fieldSize, m.form.focus)
	assert.Equal(t, "13", m.form.size.Value())

	// The family field is disabled for size-only keys.
	m = press(m, "tab")
	assert.Equal(t, fieldSize, m.form.focus)

	m = press(m, "ctrl+u")
	m = typeText(m, "16")
	m = press(m, "enter")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "16", get(m, style.SectionFont, "Control"))
}

func TestModel_EditFontWithPicker(t *testing.T) {
	m, _ := newTestModel(t, sampleText)
	m, _ = update(m, fontsLoadedMsg{families: []string{"MS Gothic", "Meiryo", "Yu Gothic UI"}})

	m = selectKey(t, m, "TextEdit")
	m = press(m, "enter")
	require.Equal(t, modeFont, m.mode)
	assert.Equal(t, "MS Gothic", m.form.family.Value())

	m = press(m, "tab")
	assert.Equal(t, fieldFamily, m.form.focus)

	m = press(m, "ctrl+f")
	require.True(t, m.form.picking)
	m = typeText(m, "mei")
	assert.Equal(t, []string{"Meiryo"}, m.form.matches(m.families))

	m = press(m, "enter")
	assert.False(t, m.form.picking)
	assert.Equal(t, "Meiryo", m.form.family.Value())
	assert.Equal(t, "14,Meiryo", m.form.value())

	m = press(m, "enter")
	assert.Equal(t, "14,Meiryo", get(m, style.SectionFont, "TextEdit"))
}

func TestModel_PickerNoMatchKeepsFamily(t *testing.T) {
	m, _ := newTestModel(t, sampleText)
	m, _ = update(m, fontsLoadedMsg{families: []string{"Meiryo"}})

	m = selectKey(t, m, "TextEdit")
	m = press(m, "enter", "tab", "ctrl+f")
	m = typeText(m, "zzz")
	m = press(m, "enter")

	assert.True(t, m.form.picking)
	assert.Equal(t, statusWarn, m.statusKind)

	m = press(m, "esc")
	assert.False(t, m.form.picking)
	assert.Equal(t, "MS Gothic", m.form.family.Value())
}

func TestModel_FontListFailureShown(t *testing.T) {
	m, _ := newTestModel(t, sampleText)
	m, _ = update(m, fontsLoadedMsg{err: &platform.FontListError{Source: "fc-list", Err: errors.New("not found")}})

	assert.False(t, m.fontsLoading)
	assert.Equal(t, statusError, m.statusKind)
	assert.Contains(t, m.status, "font list")

	m = selectKey(t, m, "TextEdit")
	m = press(m, "enter", "tab", "ctrl+f")
	assert.False(t, m.form.picking)
	assert.Contains(t, m.View(), "installed fonts unavailable")
}

func TestModel_EditFamilyOnlyMissingKey(t *testing.T) {
	m, _ := newTestModel(t, sampleText)

	m = selectKey(t, m, "DefaultFamily")
	m = press(m, "enter")
	require.Equal(t, modeFont, m.mode)
	assert.Equal(t, fieldFamily, m.form.focus)

	m = typeText(m, "Yu Gothic UI")
	m = press(m, "enter")

	assert.Equal(t, "Yu Gothic UI", get(m, style.SectionFont, "DefaultFamily"))
	r, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "DefaultFamily", r.Key)
	assert.True(t, r.Present)
}

func TestModel_AddEntry(t *testing.T) {
	m, _ := newTestModel(t, sampleText)

	m = press(m, "3", "a")
	require.Equal(t, modeAdd, m.mode)
	m = typeText(m, "Height=100")
	m = press(m, "enter")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "100", get(m, style.SectionLayout, "Height"))
	r, _ := m.selected()
	assert.Equal(t, "Height", r.Key)
}

func TestModel_AddEntryRequiresKey(t *testing.T) {
	m, _ := newTestModel(t, sampleText)

	m = press(m, "3", "a")
	m = typeText(m, "novalue")
	m = press(m, "enter")

	assert.Equal(t, modeAdd, m.mode)
	assert.Equal(t, statusError, m.statusKind)
	assert.Equal(t, 1, m.session.Document().Len(style.SectionLayout))
}

func TestModel_DeleteEntry(t *testing.T) {
	m, _ := newTestModel(t, sampleText)

	m = press(m, "3", "d")
	_, ok := m.session.Get(style.SectionLayout, "Width")
	assert.False(t, ok)
	assert.Empty(t, m.rows)
	assert.Contains(t, m.View(), "[Layout] is empty")

	// Catalog rows that are not in the file cannot be deleted.
	m = press(m, "1")
	m = selectKey(t, m, "Log")
	m = press(m, "d")
	assert.Len(t, m.rows, 10)
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func TestModel_Save(t *testing.T) {
	m, host := newTestModel(t, sampleText)

	m = press(m, "3", "d", "ctrl+s")

	assert.False(t, m.session.Dirty())
	assert.Equal(t, statusOK, m.statusKind)
	text, ok := host.File(testPath)
	require.True(t, ok)
	assert.NotContains(t, text, "Width=300")
	assert.Contains(t, text, "Control=13")
}

func TestModel_SaveFailure(t *testing.T) {
	m, host := newTestModel(t, sampleText)
	host.WriteErr = errors.New("access denied")

	m = press(m, "3", "d", "s")

	assert.True(t, m.session.Dirty())
	assert.Equal(t, statusError, m.statusKind)
	assert.Contains(t, m.status, "access denied")
}

func TestModel_ReloadConfirmsWhenDirty(t *testing.T) {
	m, _ := newTestModel(t, sampleText)

	m = press(m, "3", "d", "r")
	require.Equal(t, modeConfirm, m.mode)

	m = press(m, "n")
	assert.Equal(t, modeBrowse, m.mode)
	assert.True(t, m.session.Dirty())

	m = press(m, "r", "y")
	assert.False(t, m.session.Dirty())
	assert.Equal(t, "300", get(m, style.SectionLayout, "Width"))
	assert.Len(t, m.rows, 1)
}

func TestModel_QuitConfirmsWhenDirty(t *testing.T) {
	m, _ := newTestModel(t, sampleText)

	_, cmd := update(m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m = press(m, "3", "d", "q")
	require.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, m.View(), "Quit without saving?")

	m = press(m, "esc")
	assert.Equal(t, modeBrowse, m.mode)

	m = press(m, "q")
	m, cmd = update(m, keyMsg("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

// =============================================================================
// BACKGROUND MESSAGES
// =============================================================================

func TestModel_LoadFontsCmd(t *testing.T) {
	_, host := newTestModel(t, sampleText)

	msg := loadFontsCmd(host)()
	loaded, ok := msg.(fontsLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	assert.Equal(t, []string{"MS Gothic", "Meiryo", "Yu Gothic UI"}, loaded.families)
}

func TestModel_WatchReloadsCleanSession(t *testing.T) {
	m, host := newTestModel(t, sampleText)
	host.SetFile(testPath, strings.Replace(sampleText, "Width=300", "Width=640", 1))

	m, cmd := update(m, watchEventMsg{event: watch.Event{Path: testPath}})
	assert.Nil(t, cmd)
	assert.Equal(t, "640", get(m, style.SectionLayout, "Width"))
	assert.Equal(t, statusWarn, m.statusKind)
	assert.False(t, m.diskStale)
}

func TestModel_WatchFlagsDirtySession(t *testing.T) {
	m, host := newTestModel(t, sampleText)
	m = press(m, "1", "d")
	host.SetFile(testPath, strings.Replace(sampleText, "Width=300", "Width=640", 1))

	m, _ = update(m, watchEventMsg{event: watch.Event{Path: testPath}})
	assert.True(t, m.diskStale)
	assert.Equal(t, "300", get(m, style.SectionLayout, "Width"))
	assert.Contains(t, m.View(), "changed on disk")
}

func TestModel_WatchIgnoresOwnSave(t *testing.T) {
	m, _ := newTestModel(t, sampleText)
	m = press(m, "3", "d", "s")
	status := m.status

	m, _ = update(m, watchEventMsg{event: watch.Event{Path: testPath}})
	assert.Equal(t, status, m.status)
}

func TestModel_Copy(t *testing.T) {
	m, _ := newTestModel(t, sampleText)
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := update(m, keyMsg("y"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, "Control=13", copied)

	m, _ = update(m, msg)
	assert.Equal(t, statusOK, m.statusKind)
	assert.Contains(t, m.status, "Control=13")
}

func TestModel_Reveal(t *testing.T) {
	m, host := newTestModel(t, sampleText)

	_, cmd := update(m, keyMsg("o"))
	require.NotNil(t, cmd)
	m, _ = update(m, cmd())

	assert.Equal(t, []string{testPath}, host.Revealed())
	assert.Equal(t, statusInfo, m.statusKind)
}

func TestModel_RevealFailure(t *testing.T) {
	m, host := newTestModel(t, sampleText)
	host.RevealErr = errors.New("no file manager")

	_, cmd := update(m, keyMsg("o"))
	m, _ = update(m, cmd())

	assert.Equal(t, statusError, m.statusKind)
	assert.Contains(t, m.status, "no file manager")
}

// =============================================================================
// VIEW
// =============================================================================

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t, sampleText)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 30})

	view := m.View()
	assert.Contains(t, view, "styleconf")
	assert.Contains(t, view, testPath)
	for _, sec := range style.Sections() {
		assert.Contains(t, view, sec.Name())
	}
	assert.Contains(t, view, "Control")
	assert.Contains(t, view, "(not set)")
	assert.Contains(t, view, "saved")

	m = press(m, "tab")
	assert.Contains(t, m.View(), "Background")

	m = press(m, "d")
	assert.Contains(t, m.View(), "modified")
}

func TestModel_ViewNewFile(t *testing.T) {
	m, _ := newTestModel(t, "")
	assert.Contains(t, m.View(), "(new file)")
	assert.Len(t, m.rows, len(style.FontSettings()))
}

func TestModel_ViewNarrow(t *testing.T) {
	m, _ := newTestModel(t, sampleText)
	m, _ = update(m, tea.WindowSizeMsg{Width: 30, Height: 8})

	assert.NotPanics(t, func() { _ = m.View() })
	m = selectKey(t, m, "TextEdit")
	m = press(m, "enter")
	assert.NotPanics(t, func() { _ = m.View() })
}

func TestModel_HelpToggle(t *testing.T) {
	m, _ := newTestModel(t, sampleText)
	assert.False(t, m.help.ShowAll)
	m = press(m, "?")
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "open folder")
}
