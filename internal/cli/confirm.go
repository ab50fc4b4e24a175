// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// confirm.go - Confirmation handling for commands that rewrite the style file.
//
// USABILITY: TTY detection for proper terminal handling
//
// The pattern:
//  1. If --confirm flag is present, proceed without prompting
//  2. If --json mode, require --confirm flag (no interactive prompts in JSON mode)
//  3. If stdin is not a TTY, require --confirm flag (can't prompt)
//  4. Otherwise, show interactive prompt for confirmation

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmationOptions describes how a confirmation may be obtained.
type ConfirmationOptions struct {
	// ConfirmFlag indicates if --confirm flag was passed (skip interactive prompt)
	ConfirmFlag bool
	// JSONMode indicates if --json flag was passed
	JSONMode bool
	// Interactive reports whether In is a terminal
	Interactive bool

	In  io.Reader
	Out io.Writer
}

// RequireConfirmation checks if the user has confirmed a destructive action.
//
// Returns:
//
//	bool  - true if confirmed, false if cancelled
//	error - non-nil if confirmation is required but not provided
func RequireConfirmation(action string, opts ConfirmationOptions) (bool, error) {
	if opts.ConfirmFlag {
		return true, nil
	}

	if opts.JSONMode {
		return false, NewValidationError("confirm", "", "use --confirm to "+action+" in JSON mode")
	}

	// USABILITY: TTY detection for proper terminal handling
	if !opts.Interactive || opts.In == nil {
		return false, NewValidationError("confirm", "", "stdin is not a terminal; use --confirm to "+action)
	}

	fmt.Fprintf(opts.Out, "Are you sure you want to %s? [y/N]: ", action)

	reader := bufio.NewReader(opts.In)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	response := strings.ToLower(strings.TrimSpace(input))
	return response == "y" || response == "yes", nil
}
