// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the CLI and the TUI.
//
// # Key Functions
//
// String Utilities:
//   - StringWidth: terminal display width (CJK characters count as 2)
//   - TruncateWidth: width-aware truncation with ellipsis
//   - PadRight: width-aware padding for aligned columns
//
// File Operations:
//   - AtomicWriteFile: crash-safe file replacement
//
// # Usage
//
//	// Align Japanese labels in a table
//	cell := util.PadRight(setting.Label, 24)
//
//	// Replace style.conf without leaving a half-written file behind
//	err := util.AtomicWriteFile(path, data, 0644)
package util
