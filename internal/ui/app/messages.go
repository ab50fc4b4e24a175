// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/styleconf/internal/platform"
	"github.com/jeranaias/styleconf/internal/watch"
)

// =============================================================================
// MESSAGES
// =============================================================================

// fontsLoadedMsg delivers the installed font families.
type fontsLoadedMsg struct {
	families []string
	err      error
}

// watchEventMsg reports a change to the style file on disk.
type watchEventMsg struct {
	event watch.Event
}

// revealDoneMsg reports the result of opening the file manager.
type revealDoneMsg struct {
	err error
}

// copyDoneMsg reports the result of a clipboard write.
type copyDoneMsg struct {
	text string
	err  error
}

// =============================================================================
// COMMANDS
// =============================================================================

// loadFontsCmd lists installed families once. Failures are reported, not
// retried.
func loadFontsCmd(host platform.Host) tea.Cmd {
	return func() tea.Msg {
		families, err := host.ListInstalledFontFamilies()
		return fontsLoadedMsg{families: families, err: err}
	}
}

// waitForWatchCmd blocks until the watcher emits. It returns nil once the
// watcher is closed.
func waitForWatchCmd(w watch.FileWatcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return nil
		}
		return watchEventMsg{event: ev}
	}
}

func revealCmd(host platform.Host, path string) tea.Cmd {
	return func() tea.Msg {
		return revealDoneMsg{err: host.RevealInFileManager(path)}
	}
}

func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{text: text, err: write(text)}
	}
}

// copyToClipboard copies the given text to the system clipboard.
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
