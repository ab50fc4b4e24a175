// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/styleconf/internal/style"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.fontsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fontsLoadedMsg:
		m.fontsLoading = false
		if msg.err != nil {
			m.fontsErr = msg.err
			m.setError("font list", msg.err)
			return m, nil
		}
		m.families = msg.families
		m.log.Debug().Int("families", len(msg.families)).Msg("installed fonts loaded")
		return m, nil

	case watchEventMsg:
		m.handleDiskChange(msg)
		return m, waitForWatchCmd(m.watcher)

	case revealDoneMsg:
		if msg.err != nil {
			m.setError("reveal", msg.err)
		} else {
			m.setStatus(statusInfo, "Opened file location")
		}
		return m, nil

	case copyDoneMsg:
		if msg.err != nil {
			m.setError("copy", msg.err)
		} else {
			m.setStatus(statusOK, "Copied "+msg.text)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey dispatches a key press by mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeValue, modeAdd:
		return m.handleInputKey(msg)
	case modeFont:
		return m.handleFontKey(msg)
	case modeConfirm:
		return m.handleConfirmKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

// =============================================================================
// BROWSE MODE
// =============================================================================

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.session.Dirty() && m.cfg.UI.ConfirmQuit {
			m.mode = modeConfirm
			m.confirm = confirmQuit
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if c := m.cursor(); c > 0 {
			m.cursors[m.tab] = c - 1
		}
	case key.Matches(msg, m.keys.Down):
		if c := m.cursor(); c < len(m.rows)-1 {
			m.cursors[m.tab] = c + 1
		}
	case key.Matches(msg, m.keys.Home):
		m.cursors[m.tab] = 0
	case key.Matches(msg, m.keys.End):
		m.cursors[m.tab] = max(len(m.rows)-1, 0)

	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(style.Section((int(m.tab) + 1) % len(style.Sections())))
	case key.Matches(msg, m.keys.PrevTab):
		n := len(style.Sections())
		m.switchTab(style.Section((int(m.tab) + n - 1) % n))
	case key.Matches(msg, m.keys.JumpTab):
		idx := int(msg.Runes[0] - '1')
		m.switchTab(style.Sections()[idx])

	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()
	case key.Matches(msg, m.keys.Add):
		return m.startAdd()
	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
	case key.Matches(msg, m.keys.Copy):
		if r, ok := m.selected(); ok && r.Present {
			return m, copyCmd(m.copy, r.Key+"="+r.Value)
		}

	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Reload):
		if m.session.Dirty() {
			m.mode = modeConfirm
			m.confirm = confirmReload
			return m, nil
		}
		m.reload()
	case key.Matches(msg, m.keys.Reveal):
		return m, revealCmd(m.host, m.session.Path())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// startEdit opens the font form for catalog keys and the value editor for
// everything else.
func (m Model) startEdit() (tea.Model, tea.Cmd) {
	r, ok := m.selected()
	if !ok {
		return m, nil
	}
	m.editKey = r.Key
	if r.Setting != nil {
		m.form = newFontForm(*r.Setting, r.Value)
		m.mode = modeFont
		return m, nil
	}
	m.input.Prompt = r.Key + "="
	m.input.Placeholder = ""
	m.input.SetValue(r.Value)
	m.input.CursorEnd()
	m.mode = modeValue
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) startAdd() (tea.Model, tea.Cmd) {
	m.editKey = ""
	m.input.Prompt = "> "
	m.input.Placeholder = "key=value"
	m.input.SetValue("")
	m.mode = modeAdd
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) deleteSelected() {
	r, ok := m.selected()
	if !ok || !r.Present {
		return
	}
	m.session.Delete(m.tab, r.Key)
	m.refreshRows()
	m.setStatus(statusInfo, fmt.Sprintf("Deleted [%s] %s", m.tab.Name(), r.Key))
}

func (m *Model) save() {
	if err := m.session.Save(); err != nil {
		m.setError("save", err)
		return
	}
	m.diskStale = false
	msg := "Saved " + m.session.Path()
	if issues := m.session.Lint(); len(issues) > 0 {
		m.setStatus(statusWarn, fmt.Sprintf("%s (%d lint warning(s): %s)", msg, len(issues), issues[0]))
		return
	}
	m.setStatus(statusOK, msg)
}

func (m *Model) reload() {
	if err := m.session.Reload(); err != nil {
		m.setError("reload", err)
		return
	}
	m.diskStale = false
	m.refreshRows()
	m.setStatus(statusInfo, "Reloaded "+m.session.Path())
}

// handleDiskChange reloads a clean session and flags a dirty one.
func (m *Model) handleDiskChange(msg watchEventMsg) {
	if m.session.Dirty() {
		m.diskStale = true
		m.setStatus(statusWarn, "File changed on disk; press r to reload and discard your edits")
		return
	}
	changes, err := m.session.DiskChanges()
	if err != nil {
		m.setError("watch", err)
		return
	}
	if changes.Empty() {
		return
	}
	if err := m.session.Reload(); err != nil {
		m.setError("reload", err)
		return
	}
	m.refreshRows()
	what := "changed"
	if msg.event.Removed {
		what = "removed"
	}
	m.setStatus(statusWarn, fmt.Sprintf("File %s on disk: %s", what, changes.Summary()))
}

// =============================================================================
// VALUE AND ADD DIALOGS
// =============================================================================

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keyCancel):
		m.closeDialog()
		return m, nil
	case key.Matches(msg, keySubmit):
		if m.mode == modeAdd {
			return m.submitAdd()
		}
		m.session.Set(m.tab, m.editKey, m.input.Value())
		m.refreshRows()
		m.setStatus(statusInfo, fmt.Sprintf("Set [%s] %s", m.tab.Name(), m.editKey))
		m.closeDialog()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	k, v, ok := strings.Cut(m.input.Value(), "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		m.setStatus(statusError, "Enter the new entry as key=value")
		return m, nil
	}
	if _, exists := m.session.Get(m.tab, k); exists {
		m.setStatus(statusWarn, fmt.Sprintf("Replaced existing [%s] %s", m.tab.Name(), k))
	} else {
		m.setStatus(statusInfo, fmt.Sprintf("Added [%s] %s", m.tab.Name(), k))
	}
	m.session.Set(m.tab, k, v)
	m.refreshRows()
	for i, r := range m.rows {
		if r.Key == k {
			m.cursors[m.tab] = i
			break
		}
	}
	m.closeDialog()
	return m, nil
}

func (m *Model) closeDialog() {
	m.input.Blur()
	m.form = nil
	m.editKey = ""
	m.mode = modeBrowse
}

// =============================================================================
// FONT DIALOG
// =============================================================================

func (m Model) handleFontKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	if f.picking {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, keyCancel):
		m.closeDialog()
		return m, nil
	case key.Matches(msg, keySubmit):
		value := m.session.SetFont(m.editKey, f.size.Value(), f.family.Value())
		m.refreshRows()
		m.setStatus(statusInfo, fmt.Sprintf("Set [Font] %s=%s", m.editKey, value))
		m.closeDialog()
		return m, nil
	case key.Matches(msg, keyNext), key.Matches(msg, keyPrev):
		f.cycle()
		return m, nil
	case key.Matches(msg, keyPicker):
		if !f.enabled(fieldFamily) {
			return m, nil
		}
		if m.fontsErr != nil {
			m.setStatus(statusError, "Installed fonts unavailable: "+m.fontsErr.Error())
			return m, nil
		}
		if m.fontsLoading {
			m.setStatus(statusInfo, "Still loading installed fonts")
			return m, nil
		}
		f.openPicker()
		return m, nil
	}
	return m, f.update(msg)
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch msg.String() {
	case "esc":
		f.closePicker()
		return m, nil
	case "enter":
		if !f.pick(m.families) {
			m.setStatus(statusWarn, "No installed font matches "+fmt.Sprintf("%q", f.filter.Value()))
		}
		return m, nil
	case "up", "ctrl+p":
		f.movePicker(m.families, -1)
		return m, nil
	case "down", "ctrl+n":
		f.movePicker(m.families, 1)
		return m, nil
	}
	return m, f.updateFilter(msg)
}

// =============================================================================
// CONFIRMATION
// =============================================================================

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keyYes), msg.String() == "ctrl+c" && m.confirm == confirmQuit:
		m.mode = modeBrowse
		switch m.confirm {
		case confirmQuit:
			m.quitting = true
			return m, tea.Quit
		case confirmReload:
			m.reload()
		}
	case key.Matches(msg, keyNo):
		m.mode = modeBrowse
		m.setStatus(statusInfo, "Cancelled")
	}
	return m, nil
}
