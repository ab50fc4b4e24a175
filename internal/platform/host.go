// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package platform isolates the operating-system work around style.conf:
// reading and writing the file, listing installed font families and showing
// the file in the system file manager.
//
// The style codec never touches the OS; everything here goes through the Host
// interface so callers can swap in MemHost for tests or dry runs. Every
// operation is single-shot: failures are returned, never retried.
package platform

import (
	"os"
	"os/exec"
	"runtime"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jeranaias/styleconf/internal/util"
)

// =============================================================================
// HOST INTERFACE
// =============================================================================

// Host is the set of OS capabilities the editor needs.
type Host interface {
	// ReadText returns the file contents with any byte order mark removed.
	ReadText(path string) (string, error)

	// WriteText replaces the file contents atomically.
	WriteText(path, text string) error

	// ListInstalledFontFamilies returns installed font family names,
	// deduplicated and sorted.
	ListInstalledFontFamilies() ([]string, error)

	// RevealInFileManager opens the OS file manager at path.
	RevealInFileManager(path string) error
}

// Runner starts external programs. It exists so tests can observe commands
// without spawning processes.
type Runner interface {
	// Output runs the program to completion and returns its stdout.
	Output(name string, args ...string) ([]byte, error)

	// Start launches the program without waiting for it.
	Start(name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

func (execRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child in the background; the file manager outlives us.
	go cmd.Wait()
	return nil
}

// =============================================================================
// OS HOST
// =============================================================================

// OSHost is the Host backed by the real filesystem and OS tools.
type OSHost struct {
	runner Runner
	goos   string
	perm   os.FileMode
}

// Option configures an OSHost.
type Option func(*OSHost)

// WithRunner replaces the process runner.
func WithRunner(r Runner) Option {
	return func(h *OSHost) { h.runner = r }
}

// WithGOOS overrides the target OS used to pick file manager commands.
func WithGOOS(goos string) Option {
	return func(h *OSHost) { h.goos = goos }
}

// NewOSHost returns a Host for the running system.
func NewOSHost(opts ...Option) *OSHost {
	h := &OSHost{
		runner: execRunner{},
		goos:   runtime.GOOS,
		perm:   0644,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ReadText implements Host.
func (h *OSHost) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	text, err := stripBOM(data)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return text, nil
}

// WriteText implements Host.
func (h *OSHost) WriteText(path, text string) error {
	if err := util.AtomicWriteFile(path, []byte(text), h.perm); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// RevealInFileManager implements Host.
func (h *OSHost) RevealInFileManager(path string) error {
	name, args := revealCommand(h.goos, path)
	if err := h.runner.Start(name, args...); err != nil {
		return &RevealError{Path: path, Err: err}
	}
	return nil
}

// stripBOM drops a leading byte order mark. A UTF-16 BOM also switches the
// decoding to UTF-16; without a BOM the bytes pass through untouched.
func stripBOM(data []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
