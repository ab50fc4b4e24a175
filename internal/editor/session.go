// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package editor holds an open style.conf between the codec and the user
// interfaces: the document being edited, the copy last read from or written
// to disk, and the file it belongs to.
package editor

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jeranaias/styleconf/internal/diff"
	"github.com/jeranaias/styleconf/internal/logging"
	"github.com/jeranaias/styleconf/internal/platform"
	"github.com/jeranaias/styleconf/internal/style"
)

// =============================================================================
// SESSION
// =============================================================================

// Session is one open style file. It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	host  platform.Host
	path  string
	isNew bool

	doc   *style.Document // working copy
	saved *style.Document // last state read from or written to disk

	log zerolog.Logger
}

// Open reads and parses the file at path. A file that does not exist yet
// opens as an empty document; any other read failure is returned.
func Open(host platform.Host, path string) (*Session, error) {
	s := &Session{
		host: host,
		path: path,
		log:  logging.WithComponent("editor"),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load replaces both documents with the file contents. Callers hold mu or
// own the session exclusively.
func (s *Session) load() error {
	text, err := s.host.ReadText(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.doc, s.saved, s.isNew = style.NewDocument(), style.NewDocument(), true
		s.log.Info().Str("path", s.path).Msg("style file does not exist, starting empty")
		return nil
	case err != nil:
		s.log.Error().Err(err).Str("path", s.path).Msg("open failed")
		return err
	}

	doc := style.Parse(text)
	s.doc, s.saved, s.isNew = doc, doc.Clone(), false
	s.log.Info().
		Str("path", s.path).
		Int("entries", len(doc.Triples())).
		Msg("style file loaded")
	return nil
}

// Path returns the file the session reads and writes.
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// IsNew reports whether the file did not exist when last loaded and has not
// been saved since.
func (s *Session) IsNew() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isNew
}

// Dirty reports whether the working copy holds entries that differ from the
// file on disk. Key order alone does not make a session dirty.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.doc.Equal(s.saved)
}

// Document returns a copy of the working document.
func (s *Session) Document() *style.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Text returns the working document as it would be written.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return style.Serialize(s.doc)
}

// =============================================================================
// EDITING
// =============================================================================

// Get returns the value of key in section.
func (s *Session) Get(section style.Section, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Get(section, key)
}

// Set stores value under key in section.
func (s *Session) Set(section style.Section, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Set(section, key, value)
	s.log.Debug().Stringer("section", section).Str("key", key).Str("value", value).Msg("set")
}

// Delete removes key from section and reports whether it was present.
func (s *Session) Delete(section style.Section, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.doc.Delete(section, key)
	if ok {
		s.log.Debug().Stringer("section", section).Str("key", key).Msg("delete")
	}
	return ok
}

// Font decodes the [Font] value stored under key. A missing key decodes as
// an empty FontValue.
func (s *Session) Font(key string) style.FontValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, _ := s.doc.Get(style.SectionFont, key)
	return style.ParseFontValue(raw)
}

// SetFont encodes size and family according to the catalog entry for key,
// stores the result under [Font] and returns it.
func (s *Session) SetFont(key, size, family string) string {
	value := style.FormatFontValue(size, family, key)
	s.Set(style.SectionFont, key, value)
	return value
}

// Lint reports entries that would not survive a save and reload.
func (s *Session) Lint() []style.LintIssue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Lint()
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// Save writes the working document to the session's file.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(s.path)
}

// SaveAs writes the working document to path and makes it the session's file.
func (s *Session) SaveAs(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.saveLocked(path); err != nil {
		return err
	}
	s.path = path
	return nil
}

func (s *Session) saveLocked(path string) error {
	if err := s.host.WriteText(path, style.Serialize(s.doc)); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("save failed")
		return err
	}
	s.saved = s.doc.Clone()
	s.isNew = false
	s.log.Info().Str("path", path).Msg("style file saved")
	return nil
}

// Reload re-reads the file and discards unsaved edits. On failure the
// session is left unchanged.
func (s *Session) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, saved, isNew := s.doc, s.saved, s.isNew
	if err := s.load(); err != nil {
		s.doc, s.saved, s.isNew = doc, saved, isNew
		return err
	}
	s.log.Info().Str("path", s.path).Msg("style file reloaded")
	return nil
}

// =============================================================================
// COMPARISON
// =============================================================================

// Diff compares the working document against other.
func (s *Session) Diff(other *style.Document) *diff.Diff {
	s.mu.Lock()
	defer s.mu.Unlock()
	return diff.Compare(s.doc, other)
}

// Pending lists the unsaved edits.
func (s *Session) Pending() *diff.Diff {
	s.mu.Lock()
	defer s.mu.Unlock()
	return diff.Compare(s.saved, s.doc)
}

// DiskChanges re-reads the file and lists how it differs from the last
// loaded or saved state, without touching the working copy. A deleted file
// compares as empty.
func (s *Session) DiskChanges() (*diff.Diff, error) {
	s.mu.Lock()
	path, saved := s.path, s.saved
	s.mu.Unlock()

	text, err := s.host.ReadText(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return diff.Compare(saved, style.Parse(text)), nil
}
