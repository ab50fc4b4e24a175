// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package style

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConf = `; 外観の設定
; UTF-8で記述する

[Font]
DefaultFamily=Yu Gothic UI
Control=13
TextEdit=14,MS Gothic

[Color]
Background=202020
Text = ffffff

[Layout]
ScrollBarSize=12

[Format]
FrameTime=%d:%02d:%02d.%02d
Expr=a=b=c
`

func sortedTriples(d *Document) []Triple {
	return d.Triples()
}

var tripleOrder = cmpopts.SortSlices(func(a, b Triple) bool {
	if a.Section != b.Section {
		return a.Section < b.Section
	}
	return a.Key < b.Key
})

// =============================================================================
// PARSE TESTS
// =============================================================================

func TestParse_Sample(t *testing.T) {
	doc := Parse(sampleConf)

	want := []Triple{
		{SectionFont, "DefaultFamily", "Yu Gothic UI"},
		{SectionFont, "Control", "13"},
		{SectionFont, "TextEdit", "14,MS Gothic"},
		{SectionColor, "Background", "202020"},
		{SectionColor, "Text", "ffffff"},
		{SectionLayout, "ScrollBarSize", "12"},
		{SectionFormat, "FrameTime", "%d:%02d:%02d.%02d"},
		{SectionFormat, "Expr", "a=b=c"},
	}
	if diff := cmp.Diff(want, doc.Triples()); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NoHeaders(t *testing.T) {
	doc := Parse("A=1\nB=2\n; comment\n\nC=3")
	for _, s := range Sections() {
		assert.Zero(t, doc.Len(s), "section %s should be empty", s)
	}
	assert.True(t, doc.Empty())
}

func TestParse_HeaderWithTrailingText(t *testing.T) {
	doc := Parse("[Font] extra\nA=1\n")
	assert.True(t, doc.Empty(), "[Font] extra must not open a section")

	// The previous section stays current when a bogus header appears.
	doc = Parse("[Color]\nA=1\n[Font] extra\nB=2\n")
	assert.Equal(t, []string{"A", "B"}, doc.Keys(SectionColor))
	assert.Zero(t, doc.Len(SectionFont))
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	doc := Parse("[Font]\nA=1\nB=x\nA=2\n")
	v, ok := doc.Get(SectionFont, "A")
	require.True(t, ok)
	assert.Equal(t, "2", v)
	assert.Equal(t, []string{"A", "B"}, doc.Keys(SectionFont), "first position is kept")
}

func TestParse_UnknownSectionDiscarded(t *testing.T) {
	doc := Parse("[Plugin]\nA=1\n[font]\nB=2\n[Font]\nC=3\n")
	assert.Equal(t, []Triple{{SectionFont, "C", "3"}}, doc.Triples())
}

func TestParse_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Triple
	}{
		{"empty value", "[Layout]\nA=\n", []Triple{{SectionLayout, "A", ""}}},
		{"empty key", "[Layout]\n=v\n", []Triple{{SectionLayout, "", "v"}}},
		{"no equals ignored", "[Layout]\njunk line\nA=1\n", []Triple{{SectionLayout, "A", "1"}}},
		{"crlf line endings", "[Color]\r\nA=1\r\nB=2\r\n", []Triple{{SectionColor, "A", "1"}, {SectionColor, "B", "2"}}},
		{"indented comment", "[Color]\n   ; A=1\nB=2", []Triple{{SectionColor, "B", "2"}}},
		{"indented header", "  [Format]  \nA=1", []Triple{{SectionFormat, "A", "1"}}},
		{"key with spaces", "[Format]\n Long Key  =  v a l \n", []Triple{{SectionFormat, "Long Key", "v a l"}}},
		{"value with brackets", "[Format]\nA=[x]\n", []Triple{{SectionFormat, "A", "[x]"}}},
		{"header with inner spaces not trimmed", "[ Font ]\nA=1\n", nil},
		{"empty header", "[]\nA=1\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in).Triples()
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

// =============================================================================
// SERIALIZE TESTS
// =============================================================================

func TestSerialize_EmptyDocument(t *testing.T) {
	out := Serialize(NewDocument())
	assert.Equal(t, Banner, out)
	assert.NotContains(t, out, "[")
	assert.Equal(t, 3, strings.Count(out, ";"))
}

func TestSerialize_Layout(t *testing.T) {
	doc := NewDocument()
	doc.Set(SectionFormat, "F", "1")
	doc.Set(SectionFont, "B", "2")
	doc.Set(SectionFont, "A", "3")

	want := Banner +
		"[Font]\nB=2\nA=3\n\n" +
		"[Format]\nF=1\n\n"
	assert.Equal(t, want, Serialize(doc))
}

func TestSerialize_Deterministic(t *testing.T) {
	doc := Parse(sampleConf)
	first := Serialize(doc)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, Serialize(doc))
	}
}

func TestRoundTrip(t *testing.T) {
	docs := map[string]*Document{
		"sample": Parse(sampleConf),
		"built": func() *Document {
			d := NewDocument()
			d.Set(SectionFont, "Log", "12,Consolas")
			d.Set(SectionColor, "Grid", "404040,303030")
			d.Set(SectionLayout, "Width", "")
			d.Set(SectionFormat, "Eq", "x=y")
			return d
		}(),
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			back := Parse(Serialize(doc))
			assert.True(t, doc.Equal(back))
			if diff := cmp.Diff(sortedTriples(doc), sortedTriples(back), tripleOrder); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			// Second round trip is byte-identical.
			assert.Equal(t, Serialize(doc), Serialize(back))
		})
	}
}

func TestRoundTrip_DropsUnknownContent(t *testing.T) {
	in := "; user comment\n[Plugin]\nX=1\n[Font]\nA=1\n"
	out := Serialize(Parse(in))
	assert.NotContains(t, out, "user comment")
	assert.NotContains(t, out, "Plugin")
	assert.Contains(t, out, "[Font]\nA=1\n")
}

type failWriter struct{ after int }

func (f *failWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errors.New("disk full")
	}
	f.after--
	return len(p), nil
}

func TestWriteTo_StopsOnError(t *testing.T) {
	doc := Parse(sampleConf)
	_, err := doc.WriteTo(&failWriter{after: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteTo_MatchesSerialize(t *testing.T) {
	doc := Parse(sampleConf)
	var b strings.Builder
	n, err := doc.WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, int64(b.Len()), n)
	assert.Equal(t, Serialize(doc), b.String())
}

// =============================================================================
// LINT TESTS
// =============================================================================

func TestLint(t *testing.T) {
	doc := NewDocument()
	doc.Set(SectionFont, "Good", "1")
	doc.Set(SectionFormat, "Multi", "a\nb")
	doc.Set(SectionFormat, "a=b", "c")
	doc.Set(SectionColor, "[X", "1")
	doc.Set(SectionColor, ";C", "1")
	doc.Set(SectionLayout, "Pad", " 1 ")

	issues := doc.Lint()
	keys := make([]string, 0, len(issues))
	for _, i := range issues {
		keys = append(keys, i.Key)
	}
	assert.ElementsMatch(t, []string{"Multi", "a=b", "[X", ";C", "Pad"}, keys)

	// Lint never changes what gets written.
	assert.Contains(t, Serialize(doc), "Multi=a\nb\n")
}

func TestLint_CleanDocument(t *testing.T) {
	assert.Empty(t, Parse(sampleConf).Lint())
}
