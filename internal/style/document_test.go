// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package style

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionByName(t *testing.T) {
	for _, s := range Sections() {
		got, ok := SectionByName(s.Name())
		require.True(t, ok, s.Name())
		assert.Equal(t, s, got)
	}

	for _, name := range []string{"font", "FONT", " Font", "Fonts", ""} {
		_, ok := SectionByName(name)
		assert.False(t, ok, "%q must not match", name)
	}
}

func TestParseSection_CaseInsensitive(t *testing.T) {
	s, ok := ParseSection("layout")
	require.True(t, ok)
	assert.Equal(t, SectionLayout, s)

	_, ok = ParseSection("plugin")
	assert.False(t, ok)
}

func TestSection_Strings(t *testing.T) {
	assert.Equal(t, "Color", SectionColor.Name())
	assert.Equal(t, "color", SectionColor.String())
	assert.False(t, Section(42).Valid())
	assert.Equal(t, "Section(42)", Section(42).String())
}

func TestDocument_SetGetDelete(t *testing.T) {
	doc := NewDocument()
	doc.Set(SectionFont, "A", "1")
	doc.Set(SectionFont, "B", "2")
	doc.Set(SectionFont, "C", "3")
	doc.Set(SectionFont, "A", "9")

	assert.Equal(t, []string{"A", "B", "C"}, doc.Keys(SectionFont))

	v, ok := doc.Get(SectionFont, "A")
	assert.True(t, ok)
	assert.Equal(t, "9", v)

	assert.True(t, doc.Delete(SectionFont, "B"))
	assert.False(t, doc.Delete(SectionFont, "B"))
	assert.Equal(t, []string{"A", "C"}, doc.Keys(SectionFont))

	_, ok = doc.Get(SectionColor, "A")
	assert.False(t, ok, "sections are independent")

	// Re-adding a deleted key appends it.
	doc.Set(SectionFont, "B", "2")
	assert.Equal(t, []string{"A", "C", "B"}, doc.Keys(SectionFont))
}

func TestDocument_KeysCaseSensitive(t *testing.T) {
	doc := NewDocument()
	doc.Set(SectionLayout, "width", "1")
	doc.Set(SectionLayout, "Width", "2")
	assert.Equal(t, 2, doc.Len(SectionLayout))
}

func TestDocument_ZeroValueUsable(t *testing.T) {
	var doc Document
	doc.Set(SectionColor, "X", "1")
	assert.Equal(t, 1, doc.Len(SectionColor))
}

func TestDocument_InvalidSectionPanics(t *testing.T) {
	assert.Panics(t, func() { NewDocument().Set(Section(7), "A", "1") })
}

func TestDocument_EqualIgnoresOrder(t *testing.T) {
	a := NewDocument()
	a.Set(SectionFont, "A", "1")
	a.Set(SectionFont, "B", "2")

	b := NewDocument()
	b.Set(SectionFont, "B", "2")
	b.Set(SectionFont, "A", "1")
	assert.True(t, a.Equal(b))

	b.Set(SectionFont, "A", "x")
	assert.False(t, a.Equal(b))

	c := a.Clone()
	c.Set(SectionColor, "A", "1")
	assert.False(t, a.Equal(c))
}

func TestDocument_CloneIsDeep(t *testing.T) {
	a := NewDocument()
	a.Set(SectionFont, "A", "1")
	c := a.Clone()
	c.Set(SectionFont, "A", "2")

	v, _ := a.Get(SectionFont, "A")
	assert.Equal(t, "1", v)
}

func TestDocument_JSON(t *testing.T) {
	doc := Parse(sampleConf)
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var raw map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "14,MS Gothic", raw["font"]["TextEdit"])
	assert.Contains(t, raw, "format")

	back := NewDocument()
	require.NoError(t, json.Unmarshal(data, back))
	assert.True(t, doc.Equal(back))
}

func TestSection_Text(t *testing.T) {
	data, err := json.Marshal(Triple{Section: SectionColor, Key: "Background", Value: "202020"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"section":"color","key":"Background","value":"202020"}`, string(data))

	var back Triple
	require.NoError(t, json.Unmarshal([]byte(`{"section":"COLOR","key":"k","value":"v"}`), &back))
	assert.Equal(t, SectionColor, back.Section)

	assert.Error(t, json.Unmarshal([]byte(`{"section":"plugin"}`), &back))
	_, err = Section(9).MarshalText()
	assert.Error(t, err)
}
