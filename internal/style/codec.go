// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package style

import (
	"fmt"
	"io"
	"strings"
)

// =============================================================================
// PARSE
// =============================================================================

// Parse reads style.conf text into a Document.
//
// Parsing is best-effort and never fails: comments, blank lines, lines before
// the first section header, lines without "=", and entries of unrecognized
// sections are skipped. A later duplicate key overwrites the earlier value.
func Parse(text string) *Document {
	doc := NewDocument()

	var (
		current Section
		known   bool // current section is one of the four
		inside  bool // a header has been seen
	)

	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") && len(line) >= 2 {
			current, known = SectionByName(line[1 : len(line)-1])
			inside = true
			continue
		}

		if !inside || !known {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		doc.Set(current, strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return doc
}

// =============================================================================
// SERIALIZE
// =============================================================================

// Banner is the fixed comment block written at the top of every file.
const Banner = "; 外観の設定\n" +
	"; UTF-8で記述する\n" +
	"; ProgramData\\aviutl2\\style.confで設定を上書き出来る\n" +
	"\n"

// Serialize renders doc as style.conf text.
//
// Sections are written in the fixed order Font, Color, Layout, Format; empty
// sections are omitted entirely. Keys and values are written verbatim with no
// escaping.
func Serialize(doc *Document) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_, _ = doc.WriteTo(&b)
	return b.String()
}

// WriteTo streams the serialized form of d to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	io.WriteString(cw, Banner)
	for _, s := range Sections() {
		sec := d.section(s)
		if len(sec.keys) == 0 {
			continue
		}
		fmt.Fprintf(cw, "[%s]\n", s.Name())
		for _, k := range sec.keys {
			fmt.Fprintf(cw, "%s=%s\n", k, sec.values[k])
		}
		io.WriteString(cw, "\n")
	}

	return cw.n, cw.err
}

// countingWriter records the first error and stops writing after it.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}

// =============================================================================
// LINT
// =============================================================================

// LintIssue describes an entry that will not survive a write/read round trip
// unchanged.
type LintIssue struct {
	Section Section `json:"section"`
	Key     string  `json:"key"`
	Problem string  `json:"problem"`
}

func (i LintIssue) String() string {
	return fmt.Sprintf("[%s] %q: %s", i.Section.Name(), i.Key, i.Problem)
}

// Lint reports entries whose key or value cannot be represented in the file
// format. It does not modify the document.
func (d *Document) Lint() []LintIssue {
	var issues []LintIssue
	for _, t := range d.Triples() {
		add := func(problem string) {
			issues = append(issues, LintIssue{Section: t.Section, Key: t.Key, Problem: problem})
		}
		switch {
		case t.Key == "":
			add("empty key is dropped on reload")
		case strings.ContainsAny(t.Key, "\r\n"):
			add("key contains a line break")
		case strings.Contains(t.Key, "="):
			add("key contains '=' and will be split on reload")
		case strings.HasPrefix(t.Key, ";"):
			add("key starts with ';' and will be read as a comment")
		case strings.HasPrefix(t.Key, "["):
			add("key starts with '[' and may be read as a section header")
		case t.Key != strings.TrimSpace(t.Key):
			add("key has surrounding whitespace that is trimmed on reload")
		}
		switch {
		case strings.ContainsAny(t.Value, "\r\n"):
			add("value contains a line break")
		case t.Value != strings.TrimSpace(t.Value):
			add("value has surrounding whitespace that is trimmed on reload")
		}
	}
	return issues
}
