// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// path.go - The "path" and "reveal" commands.

package cli

import (
	"errors"
	"io/fs"

	"github.com/jeranaias/styleconf/internal/config"
)

// HandlePath shows which style file is active and where the others live.
func HandlePath(rt *Runtime) error {
	active := rt.StylePath()
	cfgPath, _ := config.ConfigPathTOML()

	_, err := rt.Host.ReadText(active)
	data := PathData{
		Active:  active,
		Exists:  err == nil,
		User:    rt.Config.UserStylePath(),
		Default: rt.Config.DefaultStylePath(),
		Config:  cfgPath,
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		rt.log.Warn().Err(err).Str("path", active).Msg("style file not readable")
	}

	if rt.Args.JSON {
		return rt.PrintJSON("path", data)
	}
	if rt.Args.Quiet {
		rt.Println(data.Active)
		return nil
	}

	state := SuccessStyle.Render("exists")
	if !data.Exists {
		state = WarningStyle.Render("missing")
	}
	rt.Println(RenderLabel("active", 10) + ValueStyle.Render(data.Active) + "  " + state)
	rt.Println(RenderLabel("user", 10) + data.User)
	rt.Println(RenderLabel("default", 10) + data.Default)
	rt.Println(RenderLabel("config", 10) + DimStyle.Render(data.Config))
	return nil
}

// HandleReveal opens the system file manager at the active style file.
func HandleReveal(rt *Runtime) error {
	path := rt.StylePath()
	if err := rt.Host.RevealInFileManager(path); err != nil {
		return err
	}
	if rt.Args.JSON {
		return rt.PrintJSON("reveal", map[string]string{"path": path})
	}
	if !rt.Args.Quiet {
		rt.Printf("Opened %s\n", path)
	}
	return nil
}
