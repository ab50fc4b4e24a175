// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package platform

import (
	"io/fs"
	"slices"
	"sync"
)

// MemHost is an in-memory Host. Writes never reach the disk, which makes it
// suitable for tests and dry runs.
type MemHost struct {
	mu       sync.Mutex
	files    map[string]string
	fonts    []string
	revealed []string

	// Injected failures, returned verbatim inside the typed errors.
	ReadErr   error
	WriteErr  error
	FontErr   error
	RevealErr error
}

// NewMemHost returns an empty MemHost.
func NewMemHost() *MemHost {
	return &MemHost{files: make(map[string]string)}
}

// SetFile stores text at path, as if it were already on disk.
func (h *MemHost) SetFile(path, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.files[path] = text
}

// File returns the stored text at path.
func (h *MemHost) File(path string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	text, ok := h.files[path]
	return text, ok
}

// SetFonts sets the families returned by ListInstalledFontFamilies.
func (h *MemHost) SetFonts(families ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var set familySet
	for _, f := range families {
		set.add(f)
	}
	h.fonts = set.sorted()
}

// Revealed returns every path passed to RevealInFileManager.
func (h *MemHost) Revealed() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.revealed)
}

// ReadText implements Host. A missing path fails with fs.ErrNotExist.
func (h *MemHost) ReadText(path string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ReadErr != nil {
		return "", &ReadError{Path: path, Err: h.ReadErr}
	}
	text, ok := h.files[path]
	if !ok {
		return "", &ReadError{Path: path, Err: fs.ErrNotExist}
	}
	text, err := stripBOM([]byte(text))
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return text, nil
}

// WriteText implements Host.
func (h *MemHost) WriteText(path, text string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.WriteErr != nil {
		return &WriteError{Path: path, Err: h.WriteErr}
	}
	h.files[path] = text
	return nil
}

// ListInstalledFontFamilies implements Host.
func (h *MemHost) ListInstalledFontFamilies() ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.FontErr != nil {
		return nil, &FontListError{Source: "memory", Err: h.FontErr}
	}
	if h.fonts == nil {
		return []string{}, nil
	}
	return slices.Clone(h.fonts), nil
}

// RevealInFileManager implements Host.
func (h *MemHost) RevealInFileManager(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.RevealErr != nil {
		return &RevealError{Path: path, Err: h.RevealErr}
	}
	h.revealed = append(h.revealed, path)
	return nil
}

var (
	_ Host = (*OSHost)(nil)
	_ Host = (*MemHost)(nil)
)
