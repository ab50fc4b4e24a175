// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows

package platform

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSHost_ListInstalledFontFamilies_Fontconfig(t *testing.T) {
	r := &fakeRunner{output: []byte("Meiryo\nConsolas\nMeiryo\n")}
	h := NewOSHost(WithRunner(r))

	got, err := h.ListInstalledFontFamilies()
	require.NoError(t, err)
	assert.Equal(t, []string{"Consolas", "Meiryo"}, got)
	assert.Equal(t, []string{"fc-list"}, r.started)
}

func TestScanFontFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "truetype")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "Inter-Regular.ttf"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	files := scanFontFiles([]string{dir, filepath.Join(dir, "missing")})
	assert.Len(t, files, 2)
	assert.Equal(t, []string{"Inter"}, familiesFromFileNames(files))
}

func TestSkipUnreadable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ttf"), nil, 0644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, e := range entries {
		if e.IsDir() {
			assert.ErrorIs(t, skipUnreadable(e), fs.SkipDir, e.Name())
		} else {
			// A bad file must not end the walk of its siblings.
			assert.NoError(t, skipUnreadable(e), e.Name())
		}
	}
	assert.ErrorIs(t, skipUnreadable(nil), fs.SkipDir)
}

func TestScanFontFiles_UnreadableSubdirKeepsSiblings(t *testing.T) {
	dir := t.TempDir()
	locked := filepath.Join(dir, "m-locked")
	require.NoError(t, os.MkdirAll(locked, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a-Sans.ttf"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "z-Serif.otf"), nil, 0644))
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	files := scanFontFiles([]string{dir})
	assert.Contains(t, files, filepath.Join(dir, "a-Sans.ttf"))
	assert.Contains(t, files, filepath.Join(dir, "z-Serif.otf"))
}
