// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/styleconf/internal/style"
	"github.com/jeranaias/styleconf/internal/ui/styles"
	"github.com/jeranaias/styleconf/internal/util"
)

// maxKeyWidth caps the key column.
const maxKeyWidth = 24

// =============================================================================
// VIEW
// =============================================================================

// View renders the editor.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.renderHeader()
	tabs := m.renderTabs()
	status := m.renderStatus()
	helpView := m.help.View(m.keys)

	var body string
	switch m.mode {
	case modeValue, modeAdd:
		body = m.renderInputDialog()
	case modeFont:
		body = m.renderFontDialog()
	case modeConfirm:
		body = m.renderConfirm()
	}

	chrome := lipgloss.Height(header) + lipgloss.Height(tabs) +
		lipgloss.Height(status) + lipgloss.Height(helpView)
	if body != "" {
		chrome += lipgloss.Height(body)
	}
	list := m.renderList(max(m.height-chrome-1, 3))

	parts := []string{header, tabs, list}
	if body != "" {
		parts = append(parts, body)
	}
	parts = append(parts, status, helpView)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	t := m.theme
	title := t.HeaderTitle.Render("styleconf")
	path := m.session.Path()
	if m.session.IsNew() {
		path += " (new file)"
	}
	maxPath := max(m.width-util.StringWidth("styleconf")-6, 10)
	line := title + "  " + t.HeaderPath.Render(util.TruncateWidth(path, maxPath))
	return t.Header.Width(m.width).Render(line)
}

func (m Model) renderTabs() string {
	t := m.theme
	doc := m.session.Document()
	var tabs []string
	for i, sec := range style.Sections() {
		label := fmt.Sprintf("%d %s", i+1, sec.Name())
		count := t.TabCount.Render(fmt.Sprintf(" %d", doc.Len(sec)))
		if sec == m.tab {
			tabs = append(tabs, t.TabActive.Render(label)+count)
		} else {
			tabs = append(tabs, t.Tab.Render(label)+count)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderList draws the visible window of rows, keeping the cursor in view.
// The selected [Font] row adds its description below the list.
func (m Model) renderList(height int) string {
	t := m.theme
	if len(m.rows) == 0 {
		return t.Empty.Render(fmt.Sprintf("[%s] is empty. Press a to add an entry.", m.tab.Name()))
	}

	detail := m.renderDetail()
	if detail != "" {
		height -= lipgloss.Height(detail)
	}
	height = max(height, 1)

	cursor := m.cursor()
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := min(start+height, len(m.rows))

	kw := keyWidth(m.rows, maxKeyWidth)
	var lines []string
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(m.rows[i], kw, i == cursor))
	}
	out := strings.Join(lines, "\n")
	if detail != "" {
		out += "\n" + detail
	}
	return out
}

func (m Model) renderRow(r row, kw int, selected bool) string {
	t := m.theme

	keyStyle := t.Key
	if !r.Present {
		keyStyle = t.KeyMissing
	}
	keyCol := keyStyle.Render(util.PadRight(r.Key, kw))

	value := r.Value
	if !r.Present {
		value = "(not set)"
	}
	var extra string
	switch {
	case m.tab == style.SectionColor:
		if sw := renderSwatches(r.Value); sw != "" {
			extra = " " + sw
		}
	case r.Setting != nil && m.theme.GetLayoutMode() != styles.LayoutNarrow:
		extra = "  " + t.Label.Render(r.Setting.Label)
	}

	avail := max(m.width-kw-4-lipgloss.Width(extra), 8)
	valueStyle := t.Value
	if !r.Present {
		valueStyle = t.KeyMissing
	}
	line := keyCol + " " + valueStyle.Render(util.TruncateWidth(value, avail)) + extra

	if selected {
		return t.RowSelected.Render(line)
	}
	return t.Row.Render(line)
}

// renderDetail describes the selected catalog key.
func (m Model) renderDetail() string {
	if !m.cfg.UI.ShowDescriptions {
		return ""
	}
	r, ok := m.selected()
	if !ok || r.Setting == nil {
		return ""
	}
	t := m.theme
	text := fmt.Sprintf("%s: %s (%s)", r.Setting.Label, r.Setting.Description, r.Setting.InputType)
	return t.Description.Render("  " + util.TruncateWidth(text, max(m.width-4, 10)))
}

// =============================================================================
// DIALOGS
// =============================================================================

func (m Model) renderInputDialog() string {
	t := m.theme
	title := fmt.Sprintf("Edit [%s] %s", m.tab.Name(), m.editKey)
	if m.mode == modeAdd {
		title = fmt.Sprintf("Add to [%s]", m.tab.Name())
	}
	hint := t.HelpDesc.Render("enter apply  esc cancel")
	return t.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left,
		t.DialogTitle.Render(title),
		m.input.View(),
		hint,
	))
}

func (m Model) renderFontDialog() string {
	t := m.theme
	f := m.form
	if f == nil {
		return ""
	}

	field := func(label string, id int, view string) string {
		box := t.FieldBlurred
		if f.focus == id && !f.picking {
			box = t.FieldFocused
		}
		if !f.enabled(id) {
			view = t.KeyMissing.Render("not used by this key")
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, t.FieldLabel.Render(label), box.Render(view))
	}

	lines := []string{
		t.DialogTitle.Render(fmt.Sprintf("%s  %s", f.setting.Key, f.setting.Label)),
		t.Description.Render(f.setting.Description),
		field("Size", fieldSize, f.size.View()),
		field("Family", fieldFamily, f.family.View()),
		t.Label.Render("Value: ") + t.Preview.Render(f.value()),
	}

	if f.picking {
		lines = append(lines, m.renderPicker())
	}

	hint := "enter apply  tab next field  esc cancel"
	if f.enabled(fieldFamily) {
		hint += "  C-f pick installed font"
	}
	lines = append(lines, m.renderFontsState(), t.HelpDesc.Render(hint))
	return t.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderFontsState reports the installed font listing.
func (m Model) renderFontsState() string {
	t := m.theme
	switch {
	case m.fontsLoading:
		return t.StatusInfo.Render(m.spinner.View() + " loading installed fonts")
	case m.fontsErr != nil:
		return t.StatusError.Render(styles.StatusIndicators.Error + " installed fonts unavailable: " + m.fontsErr.Error())
	default:
		return t.HelpDesc.Render(fmt.Sprintf("%d installed families", len(m.families)))
	}
}

func (m Model) renderPicker() string {
	t := m.theme
	f := m.form
	matches := f.matches(m.families)

	lines := []string{f.filter.View()}
	if len(matches) == 0 {
		lines = append(lines, t.KeyMissing.Render("no match"))
		return strings.Join(lines, "\n")
	}

	start := 0
	if f.pickCursor >= pickerHeight {
		start = f.pickCursor - pickerHeight + 1
	}
	end := min(start+pickerHeight, len(matches))
	for i := start; i < end; i++ {
		if i == f.pickCursor {
			lines = append(lines, t.PickerActive.Render("> "+matches[i]))
		} else {
			lines = append(lines, t.PickerItem.Render(matches[i]))
		}
	}
	lines = append(lines, t.HelpDesc.Render(fmt.Sprintf("%d/%d", f.pickCursor+1, len(matches))))
	return strings.Join(lines, "\n")
}

func (m Model) renderConfirm() string {
	t := m.theme
	var q string
	switch m.confirm {
	case confirmQuit:
		q = "Quit without saving? " + m.session.Pending().Summary()
	case confirmReload:
		q = "Reload from disk and discard unsaved edits?"
	}
	return t.Dialog.Render(t.StatusWarn.Render(q) + "  " + t.HelpKey.Render("y") + t.HelpDesc.Render("/") + t.HelpKey.Render("n"))
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) renderStatus() string {
	t := m.theme

	var state string
	if m.session.Dirty() {
		state = t.StatusDirty.Render(styles.StatusIndicators.Dirty + " modified")
	} else {
		state = t.StatusClean.Render(styles.StatusIndicators.Success + " saved")
	}
	if m.diskStale {
		state += " " + t.StatusWarn.Render(styles.StatusIndicators.Warning+" changed on disk")
	}
	if n := len(m.session.Lint()); n > 0 {
		state += " " + t.StatusWarn.Render(fmt.Sprintf("%s %d lint", styles.StatusIndicators.Warning, n))
	}

	var msg string
	if m.status != "" {
		st := t.StatusInfo
		switch m.statusKind {
		case statusOK:
			st = t.StatusClean
		case statusWarn:
			st = t.StatusWarn
		case statusError:
			st = t.StatusError
		}
		avail := max(m.width-lipgloss.Width(state)-4, 10)
		msg = st.Render(util.TruncateWidth(m.status, avail))
	}

	line := state
	if msg != "" {
		line += "  " + msg
	}
	return t.StatusBar.Width(m.width).Render(line)
}
