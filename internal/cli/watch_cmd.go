// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watch_cmd.go - The "watch" command.

package cli

import (
	"encoding/json"
	"time"

	"github.com/jeranaias/styleconf/internal/diff"
	"github.com/jeranaias/styleconf/internal/watch"
)

// WatchEventData is one line of "watch --json" output.
type WatchEventData struct {
	Time    string        `json:"time"`
	Path    string        `json:"path"`
	Removed bool          `json:"removed"`
	Changes []diff.Change `json:"changes"`
	Stats   diff.Stats    `json:"stats"`
}

// HandleWatch prints the semantic changes each time the style file changes
// on disk, until interrupted. With --json each event is one compact line.
func HandleWatch(rt *Runtime) error {
	session, err := rt.Open()
	if err != nil {
		return err
	}

	w, err := watch.New(session.Path(), watch.DefaultDebounce)
	if err != nil {
		return NewCommandError("watch", "start", "cannot watch "+session.Path(), err)
	}
	defer w.Close()

	if !rt.Args.JSON && !rt.Args.Quiet {
		rt.Println(DimStyle.Render("Watching " + session.Path() + " (Ctrl+C to stop)"))
	}

	ctx := rt.context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			if err := reportWatchEvent(rt, ev, session.DiskChanges, session.Reload); err != nil {
				return err
			}
		}
	}
}

// reportWatchEvent prints one event and then resynchronizes the session so
// the next event is compared against what is now on disk.
func reportWatchEvent(rt *Runtime, ev watch.Event, changes func() (*diff.Diff, error), reload func() error) error {
	d, err := changes()
	if err != nil {
		rt.log.Warn().Err(err).Str("path", ev.Path).Msg("cannot read changed file")
		return nil
	}
	if err := reload(); err != nil {
		rt.log.Warn().Err(err).Str("path", ev.Path).Msg("reload failed")
	}

	now := time.Now()
	if rt.Args.JSON {
		data := WatchEventData{
			Time:    now.UTC().Format(time.RFC3339),
			Path:    ev.Path,
			Removed: ev.Removed,
			Changes: d.Changes,
			Stats:   d.Stats,
		}
		if data.Changes == nil {
			data.Changes = []diff.Change{}
		}
		return json.NewEncoder(rt.Out).Encode(data)
	}

	stamp := DimStyle.Render(now.Format("15:04:05"))
	if ev.Removed {
		rt.Printf("%s %s\n", stamp, WarningStyle.Render("removed "+ev.Path))
	} else {
		rt.Printf("%s %s %s\n", stamp, ev.Path, DimStyle.Render(d.Summary()))
	}
	for _, c := range d.Changes {
		rt.Println("  " + colorChange(c))
	}
	return nil
}

func colorChange(c diff.Change) string {
	switch c.Type {
	case diff.ChangeAdded:
		return AddedStyle.Render(c.String())
	case diff.ChangeRemoved:
		return RemovedStyle.Render(c.String())
	default:
		return ChangedStyle.Render(c.String())
	}
}
