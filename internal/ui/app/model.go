// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jeranaias/styleconf/internal/config"
	"github.com/jeranaias/styleconf/internal/editor"
	"github.com/jeranaias/styleconf/internal/logging"
	"github.com/jeranaias/styleconf/internal/platform"
	"github.com/jeranaias/styleconf/internal/style"
	"github.com/jeranaias/styleconf/internal/ui/styles"
	"github.com/jeranaias/styleconf/internal/watch"
)

// =============================================================================
// EDITOR STATE
// =============================================================================

// mode is what the keyboard currently drives.
type mode int

const (
	modeBrowse   mode = iota // Moving through the entry list
	modeValue                // Editing a raw value
	modeAdd                  // Entering a new key=value
	modeFont                 // Editing a [Font] entry
	modeConfirm              // Waiting for y/n
)

// confirmAction is the action behind a y/n prompt.
type confirmAction int

const (
	confirmQuit confirmAction = iota
	confirmReload
)

// statusKind selects the status message style.
type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the style editor.
type Model struct {
	// Collaborators
	session *editor.Session
	host    platform.Host
	cfg     *config.Config
	watcher watch.FileWatcher
	copy    func(string) error
	log     zerolog.Logger

	// Styling
	theme *styles.Theme
	keys  KeyMap
	help  help.Model

	// Dimensions
	width  int
	height int

	// Navigation
	tab     style.Section
	cursors map[style.Section]int
	rows    []row

	// Dialogs
	mode    mode
	input   textinput.Model
	editKey string
	form    *fontForm
	confirm confirmAction

	// Installed fonts, loaded once
	families     []string
	fontsErr     error
	fontsLoading bool
	spinner      spinner.Model

	// Status line
	status     string
	statusKind statusKind
	diskStale  bool // file changed on disk while edits were pending

	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithWatcher delivers file change notifications to the editor. The caller
// keeps ownership and closes it after the program exits.
func WithWatcher(w watch.FileWatcher) Option {
	return func(m *Model) { m.watcher = w }
}

// WithTheme replaces the theme picked from the configuration.
func WithTheme(t *styles.Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) { m.copy = write }
}

// New creates the editor for an open session.
func New(session *editor.Session, host platform.Host, cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: styles.LineSpinner.Frames,
		FPS:    styles.LineSpinner.Duration(),
	}

	input := textinput.New()
	input.CharLimit = 1024
	input.Width = 48

	m := Model{
		session:      session,
		host:         host,
		cfg:          cfg,
		copy:         copyToClipboard,
		log:          logging.WithComponent("tui"),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		width:        80,
		height:       24,
		tab:          style.SectionFont,
		cursors:      make(map[style.Section]int),
		input:        input,
		spinner:      sp,
		fontsLoading: true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.theme == nil {
		m.theme = styles.NewTheme(cfg.UI.Theme)
	}
	m.theme.SetSize(m.width, m.height)
	m.refreshRows()
	return m
}

// Init starts the font listing, the spinner and the file watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadFontsCmd(m.host),
		m.spinner.Tick,
		waitForWatchCmd(m.watcher),
	)
}

// =============================================================================
// HELPERS
// =============================================================================

// refreshRows rebuilds the active tab's list and clamps the cursor.
func (m *Model) refreshRows() {
	m.rows = buildRows(m.session.Document(), m.tab)
	c := m.cursors[m.tab]
	if c >= len(m.rows) {
		c = len(m.rows) - 1
	}
	if c < 0 {
		c = 0
	}
	m.cursors[m.tab] = c
}

// cursor returns the active tab's cursor.
func (m *Model) cursor() int {
	return m.cursors[m.tab]
}

// selected returns the row under the cursor.
func (m *Model) selected() (row, bool) {
	c := m.cursor()
	if c < 0 || c >= len(m.rows) {
		return row{}, false
	}
	return m.rows[c], true
}

// setStatus replaces the status message.
func (m *Model) setStatus(kind statusKind, msg string) {
	m.status = msg
	m.statusKind = kind
}

// setError shows err in the status line and logs it.
func (m *Model) setError(action string, err error) {
	m.log.Warn().Err(err).Str("action", action).Msg("editor action failed")
	m.setStatus(statusError, action+": "+err.Error())
}

// switchTab makes sec the active tab.
func (m *Model) switchTab(sec style.Section) {
	m.tab = sec
	m.refreshRows()
}

// Session returns the editor session.
func (m Model) Session() *editor.Session {
	return m.session
}
