// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package platform

import "fmt"

// ReadError reports that the style file could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read failed: %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError reports that the style file could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed: %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// FontListError reports that installed fonts could not be enumerated.
type FontListError struct {
	Source string // registry key or command used
	Err    error
}

func (e *FontListError) Error() string {
	return fmt.Sprintf("font list failed: %s: %v", e.Source, e.Err)
}

func (e *FontListError) Unwrap() error {
	return e.Err
}

// RevealError reports that the file manager could not be opened.
type RevealError struct {
	Path string
	Err  error
}

func (e *RevealError) Error() string {
	return fmt.Sprintf("could not open file location: %s: %v", e.Path, e.Err)
}

func (e *RevealError) Unwrap() error {
	return e.Err
}
