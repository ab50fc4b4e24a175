// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff compares two style documents entry by entry.
//
// The comparison works on (section, key, value) triples rather than text
// lines, so reordering keys or reformatting whitespace never shows up as a
// change.
//
// # Key Types
//
//   - ChangeType: Kind of change (added, removed, changed)
//   - Change: One differing entry with its old and new value
//   - Diff: Complete result with changes and statistics
//
// # Usage
//
//	d := diff.Compare(onDisk, edited)
//	fmt.Println(d.Summary())
//	fmt.Print(diff.Format(d))
package diff
