// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows

package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// RELIABILITY: Atomic write with fsync prevents data loss on crash
//
// AtomicWriteFile writes data to path so that readers see either the old file
// or the complete new one. The parent directory is created if needed.
// renameio handles the temp file, fsync, rename and cleanup on error.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	if err := renameio.WriteFile(absPath, data, perm); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}
