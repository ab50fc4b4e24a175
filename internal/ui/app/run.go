// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/styleconf/internal/config"
	"github.com/jeranaias/styleconf/internal/editor"
	"github.com/jeranaias/styleconf/internal/logging"
	"github.com/jeranaias/styleconf/internal/platform"
	"github.com/jeranaias/styleconf/internal/watch"
)

// Run opens the editor on the alternate screen and blocks until the user
// quits or ctx is cancelled. A file watch is attached when ui.watch is on.
func Run(ctx context.Context, session *editor.Session, host platform.Host, cfg *config.Config) error {
	log := logging.WithComponent("tui")

	var opts []Option
	if cfg != nil && cfg.UI.Watch {
		w, err := watch.New(session.Path(), watch.DefaultDebounce)
		if err != nil {
			// RELIABILITY: the editor still works without live reload.
			log.Warn().Err(err).Str("path", session.Path()).Msg("file watch unavailable")
		} else {
			defer w.Close()
			opts = append(opts, WithWatcher(w))
		}
	}

	p := tea.NewProgram(
		New(session, host, cfg, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
