// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows

package platform

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/styleconf/internal/logging"
)

// fontDirs are searched when fontconfig is not installed.
func fontDirs() []string {
	dirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/System/Library/Fonts",
		"/Library/Fonts",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, ".fonts"),
			filepath.Join(home, "Library", "Fonts"),
		)
	}
	return dirs
}

// ListInstalledFontFamilies implements Host using fontconfig, falling back to
// font file names when fc-list is unavailable.
func (h *OSHost) ListInstalledFontFamilies() ([]string, error) {
	out, err := h.runner.Output("fc-list", fcListArgs...)
	if err == nil {
		return familiesFromFontconfig(out), nil
	}

	files := scanFontFiles(fontDirs())
	if len(files) == 0 {
		return nil, &FontListError{Source: "fc-list " + strings.Join(fcListArgs, " "), Err: err}
	}
	return familiesFromFileNames(files), nil
}

func scanFontFiles(dirs []string) []string {
	var files []string
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return skipUnreadable(d)
			}
			if !d.IsDir() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			// Files found before the failure are kept.
			logger := logging.WithComponent("platform")
			logger.Debug().Err(err).Str("dir", dir).Msg("font directory scan stopped")
		}
	}
	return files
}

// skipUnreadable decides how the walk continues past an entry it could not
// read: an unreadable directory is skipped, a single bad file is ignored.
func skipUnreadable(d fs.DirEntry) error {
	if d == nil || d.IsDir() {
		return fs.SkipDir
	}
	return nil
}
