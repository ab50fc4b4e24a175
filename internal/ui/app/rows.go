// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/jeranaias/styleconf/internal/style"
	"github.com/jeranaias/styleconf/internal/util"
)

// row is one line of the entry list.
type row struct {
	Key     string
	Value   string
	Present bool               // false for catalog keys missing from the file
	Setting *style.FontSetting // catalog entry, [Font] only
}

// buildRows lists the section's entries in file order. The [Font] tab also
// lists catalog keys the file does not set, after the stored entries.
func buildRows(doc *style.Document, sec style.Section) []row {
	entries := doc.Entries(sec)
	rows := make([]row, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, e := range entries {
		r := row{Key: e.Key, Value: e.Value, Present: true}
		if sec == style.SectionFont {
			if s, ok := style.LookupFontSetting(e.Key); ok {
				r.Setting = &s
			}
		}
		seen[e.Key] = true
		rows = append(rows, r)
	}

	if sec == style.SectionFont {
		for _, s := range style.FontSettings() {
			if seen[s.Key] {
				continue
			}
			rows = append(rows, row{Key: s.Key, Setting: &s})
		}
	}
	return rows
}

// keyWidth returns the display width of the widest key, capped at max.
func keyWidth(rows []row, max int) int {
	w := 0
	for _, r := range rows {
		if kw := util.StringWidth(r.Key); kw > w {
			w = kw
		}
	}
	if w > max {
		w = max
	}
	return w
}
