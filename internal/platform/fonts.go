// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package platform

import (
	"bufio"
	"bytes"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fontsRegistryPath lists installed fonts under HKLM (all users) and, since
// Windows 10 1809, under HKCU (per-user installs).
const fontsRegistryPath = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Fonts`

// fcListArgs asks fontconfig for one family list per installed face.
var fcListArgs = []string{":", "family"}

// familySet collects cleaned family names without duplicates.
type familySet struct {
	seen  map[string]struct{}
	names []string
}

func (s *familySet) add(name string) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
}

func (s *familySet) sorted() []string {
	out := slices.Clone(s.names)
	slices.Sort(out)
	if out == nil {
		out = []string{}
	}
	return out
}

// registryFamily turns a registry value name such as
// "MS Gothic & MS UI Gothic & MS PGothic (TrueType)" into "MS Gothic".
func registryFamily(valueName string) string {
	name, _, _ := strings.Cut(valueName, "(")
	name, _, _ = strings.Cut(name, "&")
	return strings.TrimSpace(name)
}

// familiesFromRegistryNames cleans, deduplicates and sorts registry value names.
func familiesFromRegistryNames(valueNames []string) []string {
	var set familySet
	for _, v := range valueNames {
		set.add(registryFamily(v))
	}
	return set.sorted()
}

// familiesFromFontconfig parses `fc-list : family` output. Each line holds the
// localized names of one face separated by commas; the first is kept.
func familiesFromFontconfig(output []byte) []string {
	var set familySet
	sc := bufio.NewScanner(bytes.NewReader(output))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		first, _, _ := strings.Cut(line, ",")
		// fontconfig escapes some characters with a backslash.
		first = strings.ReplaceAll(first, `\`, "")
		set.add(first)
	}
	return set.sorted()
}

// familiesFromFileNames derives family-like names from font file names. It is
// the last resort when no font database is available.
func familiesFromFileNames(paths []string) []string {
	var set familySet
	for _, p := range paths {
		ext := strings.ToLower(filepath.Ext(p))
		switch ext {
		case ".ttf", ".otf", ".ttc", ".otc":
		default:
			continue
		}
		base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		base, _, _ = strings.Cut(base, "-")
		set.add(base)
	}
	return set.sorted()
}

// FilterFamilies returns the families containing query, case-insensitively.
// An empty query returns all families.
func FilterFamilies(families []string, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return families
	}
	var out []string
	for _, f := range families {
		if strings.Contains(strings.ToLower(f), query) {
			out = append(out, f)
		}
	}
	return out
}
