// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/styleconf/internal/style"
)

func TestCompare_NoChanges(t *testing.T) {
	a := style.Parse("[Font]\nControl=13\nLog=14,Consolas\n")
	b := style.Parse("[Font]\nLog=14,Consolas\nControl=13\n")

	d := Compare(a, b)
	assert.True(t, d.Empty())
	assert.Equal(t, "No changes", d.Summary())
	assert.Equal(t, "", Format(d, "a", "b"))
}

func TestCompare(t *testing.T) {
	old := style.Parse("[Font]\nControl=13\nFooter=12\n[Color]\nBackground=202020\n")
	edited := style.Parse("[Font]\nControl=14\n[Color]\nBackground=202020\nText=FFFFFF\n[Layout]\nWidth=100\n")

	d := Compare(old, edited)

	want := []Change{
		{Type: ChangeModified, Section: style.SectionFont, Key: "Control", Old: "13", New: "14"},
		{Type: ChangeRemoved, Section: style.SectionFont, Key: "Footer", Old: "12"},
		{Type: ChangeAdded, Section: style.SectionColor, Key: "Text", New: "FFFFFF"},
		{Type: ChangeAdded, Section: style.SectionLayout, Key: "Width", New: "100"},
	}
	if diff := cmp.Diff(want, d.Changes); diff != "" {
		t.Errorf("Compare() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Stats{Added: 2, Removed: 1, Changed: 1}, d.Stats)
	assert.Equal(t, "Modified +2 -1 ~1", d.Summary())
}

func TestCompare_Nil(t *testing.T) {
	doc := style.Parse("[Format]\nDate=yyyy\n")

	d := Compare(nil, doc)
	require.Len(t, d.Changes, 1)
	assert.Equal(t, ChangeAdded, d.Changes[0].Type)

	d = Compare(doc, nil)
	require.Len(t, d.Changes, 1)
	assert.Equal(t, ChangeRemoved, d.Changes[0].Type)
}

func TestFormat(t *testing.T) {
	old := style.Parse("[Font]\nControl=13\n[Color]\nGrid=404040\n")
	edited := style.Parse("[Font]\nControl=14\n")

	got := Format(Compare(old, edited), "disk", "edited")
	want := "--- disk\n" +
		"+++ edited\n" +
		"@@ [Font] @@\n" +
		"-Control=13\n" +
		"+Control=14\n" +
		"@@ [Color] @@\n" +
		"-Grid=404040\n"
	assert.Equal(t, want, got)
}

func TestChangeType(t *testing.T) {
	tests := []struct {
		ct     ChangeType
		name   string
		prefix string
	}{
		{ChangeAdded, "added", "+"},
		{ChangeRemoved, "removed", "-"},
		{ChangeModified, "changed", "~"},
		{ChangeType(99), "unknown", " "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.ct.String())
		assert.Equal(t, tt.prefix, tt.ct.Prefix())
	}
}

func TestChange_String(t *testing.T) {
	c := Change{Type: ChangeModified, Section: style.SectionFont, Key: "Log", Old: "14", New: "14,Consolas"}
	assert.Equal(t, "~ [Font] Log: 14 -> 14,Consolas", c.String())

	c = Change{Type: ChangeAdded, Section: style.SectionColor, Key: "Text", New: "FFFFFF"}
	assert.Equal(t, "+ [Color] Text=FFFFFF", c.String())
}

func TestDiff_JSON(t *testing.T) {
	d := Compare(style.NewDocument(), style.Parse("[Font]\nControl=13\n"))
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"changes": [{"type":"added","section":"font","key":"Control","new":"13"}],
		"stats": {"added":1,"removed":0,"changed":0}
	}`, string(data))
}

func TestDiff_JSONRoundTrip(t *testing.T) {
	d := Compare(style.Parse("[Font]\nLog=14\nControl=13\n"), style.Parse("[Font]\nLog=16\n[Color]\nText=FFFFFF\n"))
	data, err := json.Marshal(d)
	require.NoError(t, err)

	var back Diff
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d.Changes, back.Changes)
	assert.Equal(t, d.Stats, back.Stats)

	var ct ChangeType
	assert.Error(t, ct.UnmarshalText([]byte("renamed")))
}
