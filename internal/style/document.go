// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package style

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// =============================================================================
// SECTIONS
// =============================================================================

// Section identifies one of the four recognized sections of style.conf.
type Section int

const (
	SectionFont Section = iota
	SectionColor
	SectionLayout
	SectionFormat

	numSections
)

// Sections returns the recognized sections in file order.
func Sections() []Section {
	return []Section{SectionFont, SectionColor, SectionLayout, SectionFormat}
}

// Name returns the header name used on disk ("Font", "Color", ...).
func (s Section) Name() string {
	switch s {
	case SectionFont:
		return "Font"
	case SectionColor:
		return "Color"
	case SectionLayout:
		return "Layout"
	case SectionFormat:
		return "Format"
	default:
		return fmt.Sprintf("Section(%d)", int(s))
	}
}

// String returns the lowercase identifier ("font", "color", ...).
func (s Section) String() string {
	if !s.Valid() {
		return s.Name()
	}
	return strings.ToLower(s.Name())
}

// Valid reports whether s is one of the four recognized sections.
func (s Section) Valid() bool {
	return s >= SectionFont && s < numSections
}

// MarshalText encodes the section by its lowercase identifier.
func (s Section) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid section %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts any letter case of a section name.
func (s *Section) UnmarshalText(b []byte) error {
	v, ok := ParseSection(string(b))
	if !ok {
		return fmt.Errorf("unknown section %q", b)
	}
	*s = v
	return nil
}

// SectionByName maps an on-disk header name to its section.
// The match is case-sensitive; anything else is not a recognized section.
func SectionByName(name string) (Section, bool) {
	switch name {
	case "Font":
		return SectionFont, true
	case "Color":
		return SectionColor, true
	case "Layout":
		return SectionLayout, true
	case "Format":
		return SectionFormat, true
	default:
		return 0, false
	}
}

// ParseSection is the lenient lookup used by command-line input: it accepts
// any letter case ("font", "FONT", "Font").
func ParseSection(name string) (Section, bool) {
	for _, s := range Sections() {
		if strings.EqualFold(name, s.Name()) {
			return s, true
		}
	}
	return 0, false
}

// =============================================================================
// ENTRIES
// =============================================================================

// Entry is one key/value line of a section.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Triple is an entry qualified by its section.
type Triple struct {
	Section Section `json:"section"`
	Key     string  `json:"key"`
	Value   string  `json:"value"`
}

// entries is an insertion-ordered map. Overwriting a key keeps its position.
type entries struct {
	keys   []string
	values map[string]string
}

func (e *entries) get(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

func (e *entries) set(key, value string) {
	if e.values == nil {
		e.values = make(map[string]string)
	}
	if _, exists := e.values[key]; !exists {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

func (e *entries) delete(key string) bool {
	if _, ok := e.values[key]; !ok {
		return false
	}
	delete(e.values, key)
	if i := slices.Index(e.keys, key); i >= 0 {
		e.keys = slices.Delete(e.keys, i, i+1)
	}
	return true
}

// =============================================================================
// DOCUMENT
// =============================================================================

// Document is the in-memory form of style.conf.
//
// Each section keeps its keys in insertion order; Serialize writes them in that
// order. The zero value is an empty document ready to use.
type Document struct {
	sections [numSections]entries
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

func (d *Document) section(s Section) *entries {
	if !s.Valid() {
		panic(fmt.Sprintf("style: invalid section %d", int(s)))
	}
	return &d.sections[s]
}

// Get returns the raw value stored under key in section s.
func (d *Document) Get(s Section, key string) (string, bool) {
	return d.section(s).get(key)
}

// Set stores value under key in section s, replacing any previous value.
func (d *Document) Set(s Section, key, value string) {
	d.section(s).set(key, value)
}

// Delete removes key from section s and reports whether it was present.
func (d *Document) Delete(s Section, key string) bool {
	return d.section(s).delete(key)
}

// Keys returns the keys of section s in insertion order.
func (d *Document) Keys(s Section) []string {
	return slices.Clone(d.section(s).keys)
}

// Len returns the number of entries in section s.
func (d *Document) Len(s Section) int {
	return len(d.section(s).keys)
}

// Empty reports whether every section is empty.
func (d *Document) Empty() bool {
	for _, s := range Sections() {
		if d.Len(s) > 0 {
			return false
		}
	}
	return true
}

// Entries returns the entries of section s in insertion order.
func (d *Document) Entries(s Section) []Entry {
	sec := d.section(s)
	out := make([]Entry, 0, len(sec.keys))
	for _, k := range sec.keys {
		out = append(out, Entry{Key: k, Value: sec.values[k]})
	}
	return out
}

// Triples returns every entry of the document qualified by section, in file order.
func (d *Document) Triples() []Triple {
	var out []Triple
	for _, s := range Sections() {
		for _, e := range d.Entries(s) {
			out = append(out, Triple{Section: s, Key: e.Key, Value: e.Value})
		}
	}
	return out
}

// Equal reports whether d and other hold the same (section, key, value)
// triples. Key order is not compared.
func (d *Document) Equal(other *Document) bool {
	for _, s := range Sections() {
		a, b := d.section(s), other.section(s)
		if len(a.keys) != len(b.keys) {
			return false
		}
		for k, v := range a.values {
			if ov, ok := b.values[k]; !ok || ov != v {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	c := NewDocument()
	for _, s := range Sections() {
		for _, e := range d.Entries(s) {
			c.Set(s, e.Key, e.Value)
		}
	}
	return c
}

// MarshalJSON encodes the document as an object of four section objects keyed
// by their lowercase identifiers.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]string, numSections)
	for _, s := range Sections() {
		m := make(map[string]string, d.Len(s))
		for _, e := range d.Entries(s) {
			m[e.Key] = e.Value
		}
		out[s.String()] = m
	}
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON. Unknown section names are
// ignored. Keys are inserted in sorted order since JSON objects are unordered.
func (d *Document) UnmarshalJSON(data []byte) error {
	var in map[string]map[string]string
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*d = Document{}
	for name, m := range in {
		s, ok := ParseSection(name)
		if !ok {
			continue
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			d.Set(s, k, m[k])
		}
	}
	return nil
}
