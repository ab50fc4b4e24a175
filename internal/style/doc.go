// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package style models the AviUtl2 appearance file (style.conf) and converts it
// to and from text.
//
// The file is a small INI dialect with exactly four recognized sections:
// [Font], [Color], [Layout] and [Format]. Everything else (comments, unknown
// sections, stray lines) is skipped when reading and dropped when writing.
//
// # Key Types
//
//   - Document: the four sections, each an insertion-ordered key/value list
//   - Section: closed enumeration of the recognized sections
//   - FontValue: the "size,family" pair stored under a [Font] key
//   - FontSetting: one entry of the built-in font key catalog
//
// # Usage
//
//	doc := style.Parse(text)
//	doc.Set(style.SectionFont, "TextEdit", style.FormatFontValue("14", "MS Gothic", "TextEdit"))
//	out := style.Serialize(doc)
//
// # Limitations
//
// Values are written verbatim. A value containing a newline, or a key containing
// "=" or starting with "[" or ";", does not survive a round trip. Document.Lint
// reports such entries; Serialize never rewrites them.
package style
