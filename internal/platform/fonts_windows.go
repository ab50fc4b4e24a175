// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build windows

package platform

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

// ListInstalledFontFamilies implements Host by reading the font tables of the
// registry. The machine-wide key must be readable; the per-user key is optional.
func (h *OSHost) ListInstalledFontFamilies() ([]string, error) {
	machine, err := readFontValueNames(registry.LOCAL_MACHINE)
	if err != nil {
		return nil, &FontListError{Source: `HKLM\` + fontsRegistryPath, Err: err}
	}

	user, err := readFontValueNames(registry.CURRENT_USER)
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return nil, &FontListError{Source: `HKCU\` + fontsRegistryPath, Err: err}
	}

	return familiesFromRegistryNames(append(machine, user...)), nil
}

func readFontValueNames(root registry.Key) ([]string, error) {
	k, err := registry.OpenKey(root, fontsRegistryPath, registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	return k.ReadValueNames(0)
}
