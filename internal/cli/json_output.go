// json_output.go - JSON output support for scripting.
//
// Provides a standardized JSON envelope for every CLI command so that
// scripts can consume styleconf output without scraping text.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jeranaias/styleconf/internal/diff"
	"github.com/jeranaias/styleconf/internal/style"
)

// JSONResponse is the standardized response format for all CLI commands.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the ISO8601 timestamp when the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Error:     nil,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates a new error JSON response.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	errStr := err.Error()
	return &JSONResponse{
		Success:   false,
		Data:      nil,
		Error:     &errStr,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Print outputs the JSON response to stdout.
// Human-readable messages should go to stderr when JSON mode is enabled.
func (r *JSONResponse) Print() error {
	return r.PrintTo(os.Stdout)
}

// PrintTo outputs the JSON response to w.
func (r *JSONResponse) PrintTo(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(r)
}

// String returns the JSON response as a string.
func (r *JSONResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":"failed to marshal response: %s","timestamp":"%s"}`,
			err.Error(), time.Now().UTC().Format(time.RFC3339))
	}
	return string(data)
}

// =============================================================================
// COMMAND-SPECIFIC DATA STRUCTURES
// =============================================================================

// DocumentData is returned by "show".
type DocumentData struct {
	Path     string          `json:"path"`
	Exists   bool            `json:"exists"`
	Document *style.Document `json:"document"`
}

// ValueData is returned by "get", "set" and "unset".
type ValueData struct {
	Path    string        `json:"path"`
	Section style.Section `json:"section"`
	Key     string        `json:"key"`
	Value   string        `json:"value"`
	Present bool          `json:"present"`
	Saved   bool          `json:"saved"`
}

// FontData describes one catalog font setting and its current value.
type FontData struct {
	style.FontSetting
	Raw     string `json:"raw"`
	Present bool   `json:"present"`
	Size    string `json:"size"`
	Family  string `json:"family"`
	Saved   bool   `json:"saved,omitempty"`
}

// FontFamiliesData is returned by "fonts".
type FontFamiliesData struct {
	Filter   string   `json:"filter,omitempty"`
	Families []string `json:"families"`
}

// CheckData is returned by "check".
type CheckData struct {
	Path   string            `json:"path"`
	Issues []style.LintIssue `json:"issues"`
}

// DiffData is returned by "diff" and "normalize".
type DiffData struct {
	Old     string        `json:"old"`
	New     string        `json:"new"`
	Changes []diff.Change `json:"changes"`
	Stats   diff.Stats    `json:"stats"`
	Saved   bool          `json:"saved,omitempty"`
}

// PathData is returned by "path".
type PathData struct {
	Active  string `json:"active"`
	Exists  bool   `json:"exists"`
	User    string `json:"user"`
	Default string `json:"default"`
	Config  string `json:"config"`
}

// VersionData represents the data returned by the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// ConfigData is returned by "config show".
type ConfigData struct {
	Path   string            `json:"path"`
	Values map[string]string `json:"values"`
}
