// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package app is the interactive style.conf editor built on Bubble Tea.

The screen has a header with the file path, one tab per section ([Font],
[Color], [Layout], [Format]), the entry list of the active tab and a status
bar. Edits stay in the editor session until saved.

# Key Bindings

	tab/shift+tab, 1-4   switch section
	up/down, j/k         move
	enter                edit the selected entry
	a                    add an entry (key=value)
	d                    delete the selected entry
	y                    copy key=value to the clipboard
	s, ctrl+s            save
	r                    reload from disk
	o                    show the file in the file manager
	?                    toggle help
	q, ctrl+c            quit (asks when there are unsaved edits)

Font entries open a form whose size and family fields follow the key's input
type. The family field has a filterable picker fed by the installed font list,
which loads in the background once per run.

# Usage

	m := app.New(session, host, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
*/
package app
