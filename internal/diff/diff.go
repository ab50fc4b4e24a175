// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"fmt"
	"strings"

	"github.com/jeranaias/styleconf/internal/style"
)

// =============================================================================
// CHANGE TYPES
// =============================================================================

// ChangeType represents the kind of a change.
type ChangeType int

const (
	// ChangeAdded is a key present only in the new document
	ChangeAdded ChangeType = iota
	// ChangeRemoved is a key present only in the old document
	ChangeRemoved
	// ChangeModified is a key present in both with different values
	ChangeModified
)

// String returns the string representation of a change type.
func (t ChangeType) String() string {
	switch t {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeModified:
		return "changed"
	default:
		return "unknown"
	}
}

// Prefix returns the diff prefix character for this change type.
func (t ChangeType) Prefix() string {
	switch t {
	case ChangeAdded:
		return "+"
	case ChangeRemoved:
		return "-"
	case ChangeModified:
		return "~"
	default:
		return " "
	}
}

// MarshalText encodes the change type by name.
func (t ChangeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a name written by MarshalText.
func (t *ChangeType) UnmarshalText(b []byte) error {
	for _, c := range []ChangeType{ChangeAdded, ChangeRemoved, ChangeModified} {
		if string(b) == c.String() {
			*t = c
			return nil
		}
	}
	return fmt.Errorf("unknown change type %q", b)
}

// =============================================================================
// CHANGE
// =============================================================================

// Change is one entry that differs between two documents.
type Change struct {
	Type    ChangeType    `json:"type"`
	Section style.Section `json:"section"`
	Key     string        `json:"key"`
	Old     string        `json:"old,omitempty"` // empty when added
	New     string        `json:"new,omitempty"` // empty when removed
}

// String renders the change on one line.
func (c Change) String() string {
	switch c.Type {
	case ChangeAdded:
		return fmt.Sprintf("+ [%s] %s=%s", c.Section.Name(), c.Key, c.New)
	case ChangeRemoved:
		return fmt.Sprintf("- [%s] %s=%s", c.Section.Name(), c.Key, c.Old)
	default:
		return fmt.Sprintf("~ [%s] %s: %s -> %s", c.Section.Name(), c.Key, c.Old, c.New)
	}
}

// =============================================================================
// DIFF
// =============================================================================

// Stats holds statistics about a diff.
type Stats struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
	Changed int `json:"changed"`
}

// Diff is the result of comparing two documents.
type Diff struct {
	Changes []Change `json:"changes"`
	Stats   Stats    `json:"stats"`
}

// Empty reports whether the documents hold the same entries.
func (d *Diff) Empty() bool {
	return len(d.Changes) == 0
}

// Compare lists the entries that differ between before and after. Changes
// are ordered by section, then by the key's position in before, with added
// keys following in their position in after. A nil document compares as empty.
func Compare(before, after *style.Document) *Diff {
	if before == nil {
		before = style.NewDocument()
	}
	if after == nil {
		after = style.NewDocument()
	}

	d := &Diff{Changes: []Change{}}
	for _, s := range style.Sections() {
		for _, e := range before.Entries(s) {
			v, ok := after.Get(s, e.Key)
			switch {
			case !ok:
				d.Changes = append(d.Changes, Change{Type: ChangeRemoved, Section: s, Key: e.Key, Old: e.Value})
				d.Stats.Removed++
			case v != e.Value:
				d.Changes = append(d.Changes, Change{Type: ChangeModified, Section: s, Key: e.Key, Old: e.Value, New: v})
				d.Stats.Changed++
			}
		}
		for _, e := range after.Entries(s) {
			if _, ok := before.Get(s, e.Key); !ok {
				d.Changes = append(d.Changes, Change{Type: ChangeAdded, Section: s, Key: e.Key, New: e.Value})
				d.Stats.Added++
			}
		}
	}
	return d
}

// =============================================================================
// FORMATTING
// =============================================================================

// Format renders the diff grouped by section in a unified-diff-like layout.
// A modified entry shows as a removal followed by an addition.
func Format(d *Diff, oldLabel, newLabel string) string {
	if d.Empty() {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n", oldLabel)
	fmt.Fprintf(&sb, "+++ %s\n", newLabel)

	current := style.Section(-1)
	for _, c := range d.Changes {
		if c.Section != current {
			current = c.Section
			fmt.Fprintf(&sb, "@@ [%s] @@\n", current.Name())
		}
		switch c.Type {
		case ChangeAdded:
			fmt.Fprintf(&sb, "+%s=%s\n", c.Key, c.New)
		case ChangeRemoved:
			fmt.Fprintf(&sb, "-%s=%s\n", c.Key, c.Old)
		case ChangeModified:
			fmt.Fprintf(&sb, "-%s=%s\n", c.Key, c.Old)
			fmt.Fprintf(&sb, "+%s=%s\n", c.Key, c.New)
		}
	}
	return sb.String()
}

// Summary returns a human-readable summary of the diff.
func (d *Diff) Summary() string {
	if d.Empty() {
		return "No changes"
	}

	var parts []string
	if d.Stats.Added > 0 {
		parts = append(parts, fmt.Sprintf("+%d", d.Stats.Added))
	}
	if d.Stats.Removed > 0 {
		parts = append(parts, fmt.Sprintf("-%d", d.Stats.Removed))
	}
	if d.Stats.Changed > 0 {
		parts = append(parts, fmt.Sprintf("~%d", d.Stats.Changed))
	}
	return "Modified " + strings.Join(parts, " ")
}
