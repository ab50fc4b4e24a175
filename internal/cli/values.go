// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// values.go - The "get", "set" and "unset" commands.

package cli

import "github.com/jeranaias/styleconf/internal/style"

// HandleGet prints one value.
//
//	styleconf get SECTION KEY
func HandleGet(rt *Runtime) error {
	parser := NewArgParser(rt.Args.Raw)
	if parser.PositionalCount() < 2 {
		return ErrMissingArgument("key", "styleconf get SECTION KEY")
	}
	section, err := parseSectionArg(parser.Positional(0))
	if err != nil {
		return err
	}
	key := parser.Positional(1)

	session, err := rt.Open()
	if err != nil {
		return err
	}

	value, ok := session.Get(section, key)
	if !ok {
		return NewNotFoundError("key", "["+section.Name()+"] "+key)
	}

	if rt.Args.JSON {
		return rt.PrintJSON("get", ValueData{
			Path: session.Path(), Section: section, Key: key, Value: value, Present: true,
		})
	}
	rt.Println(value)
	return nil
}

// HandleSet stores a value and saves. Remaining positional arguments are
// joined with single spaces so unquoted values still work.
//
//	styleconf set SECTION KEY VALUE
func HandleSet(rt *Runtime) error {
	parser := NewArgParser(rt.Args.Raw)
	if parser.PositionalCount() < 3 {
		return ErrMissingArgument("value", "styleconf set SECTION KEY VALUE")
	}
	section, err := parseSectionArg(parser.Positional(0))
	if err != nil {
		return err
	}
	key := parser.Positional(1)
	value := JoinPositionalArgs(parser, 2)

	if err := validateKey(key); err != nil {
		return err
	}

	session, err := rt.Open()
	if err != nil {
		return err
	}
	session.Set(section, key, value)
	for _, issue := range session.Lint() {
		if issue.Section == section && issue.Key == key {
			return NewValidationError("value", value, issue.Problem)
		}
	}

	if err := rt.Save(session); err != nil {
		return err
	}

	if rt.Args.JSON {
		return rt.PrintJSON("set", ValueData{
			Path: session.Path(), Section: section, Key: key, Value: value,
			Present: true, Saved: !rt.Args.DryRun,
		})
	}
	if !rt.Args.Quiet {
		rt.Printf("[%s] %s=%s\n", section.Name(), key, value)
	}
	return nil
}

// HandleUnset removes a key and saves.
//
//	styleconf unset SECTION KEY
func HandleUnset(rt *Runtime) error {
	parser := NewArgParser(rt.Args.Raw)
	if parser.PositionalCount() < 2 {
		return ErrMissingArgument("key", "styleconf unset SECTION KEY")
	}
	section, err := parseSectionArg(parser.Positional(0))
	if err != nil {
		return err
	}
	key := parser.Positional(1)

	session, err := rt.Open()
	if err != nil {
		return err
	}
	old, ok := session.Get(section, key)
	if !ok {
		return NewNotFoundError("key", "["+section.Name()+"] "+key)
	}
	session.Delete(section, key)

	if err := rt.Save(session); err != nil {
		return err
	}

	if rt.Args.JSON {
		return rt.PrintJSON("unset", ValueData{
			Path: session.Path(), Section: section, Key: key, Value: old,
			Present: false, Saved: !rt.Args.DryRun,
		})
	}
	if !rt.Args.Quiet {
		rt.Printf("Removed [%s] %s\n", section.Name(), key)
	}
	return nil
}

// validateKey rejects keys the file format cannot hold.
func validateKey(key string) error {
	probe := style.NewDocument()
	probe.Set(style.SectionFont, key, "")
	for _, issue := range probe.Lint() {
		return NewValidationError("key", key, issue.Problem)
	}
	return nil
}
