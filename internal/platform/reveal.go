// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package platform

import "path/filepath"

// revealCommand returns the program that shows path in the file manager of
// goos. Windows and macOS can select the file itself; elsewhere xdg-open gets
// the containing directory, since opening the file would launch an editor.
func revealCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "explorer", []string{"/select,", path}
	case "darwin":
		return "open", []string{"-R", path}
	default:
		return "xdg-open", []string{filepath.Dir(path)}
	}
}
