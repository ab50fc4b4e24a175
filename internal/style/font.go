// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package style

import (
	"fmt"
	"strings"
)

// =============================================================================
// INPUT TYPE
// =============================================================================

// InputType says which halves of a font value a setting uses.
type InputType int

const (
	InputFamilyOnly InputType = iota + 1
	InputSizeOnly
	InputBoth
)

// String returns the identifier used by the original settings table.
func (t InputType) String() string {
	switch t {
	case InputFamilyOnly:
		return "familyOnly"
	case InputSizeOnly:
		return "sizeOnly"
	case InputBoth:
		return "both"
	default:
		return fmt.Sprintf("InputType(%d)", int(t))
	}
}

// ParseInputType is the inverse of String.
func ParseInputType(s string) (InputType, error) {
	switch s {
	case "familyOnly":
		return InputFamilyOnly, nil
	case "sizeOnly":
		return InputSizeOnly, nil
	case "both":
		return InputBoth, nil
	default:
		return 0, fmt.Errorf("unknown input type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t InputType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *InputType) UnmarshalText(b []byte) error {
	v, err := ParseInputType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// EditsSize reports whether the size half is user-editable.
func (t InputType) EditsSize() bool {
	return t == InputSizeOnly || t == InputBoth
}

// EditsFamily reports whether the family half is user-editable.
func (t InputType) EditsFamily() bool {
	return t == InputFamilyOnly || t == InputBoth
}

// =============================================================================
// FONT VALUE
// =============================================================================

// FontValue is the decoded form of a [Font] entry, "<size>[,<family>]".
type FontValue struct {
	Size   string `json:"size"`
	Family string `json:"family"`
}

// ParseFontValue splits raw at commas: the first segment is the size, the
// second the family. Missing segments are empty and extra segments are ignored.
func ParseFontValue(raw string) FontValue {
	parts := strings.Split(raw, ",")
	fv := FontValue{Size: parts[0]}
	if len(parts) > 1 {
		fv.Family = parts[1]
	}
	return fv
}

// FormatFontValue builds the raw value for the font setting key.
//
// The result depends on the setting's InputType: family-only settings store
// just the family, size-only settings just the size, and "both" settings store
// "size,family" (or only the size when the family is empty). The family is cut
// at its first comma and trimmed. Keys missing from the catalog store the size
// unchanged.
//
// FormatFontValue and ParseFontValue are not inverses: a size-only value parses
// back with an empty family, and a family passed for a size-only key is lost.
func FormatFontValue(size, family, key string) string {
	setting, ok := LookupFontSetting(key)
	if !ok {
		return size
	}

	first, _, _ := strings.Cut(family, ",")
	clean := strings.TrimSpace(first)

	switch setting.InputType {
	case InputFamilyOnly:
		return clean
	case InputSizeOnly:
		return size
	case InputBoth:
		if clean != "" {
			return size + "," + clean
		}
		return size
	default:
		return size
	}
}
