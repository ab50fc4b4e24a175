// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// check.go - The "check" command.

package cli

import "github.com/jeranaias/styleconf/internal/style"

// HandleCheck reports entries that would not survive a save and reload.
// Any finding makes the command fail with ExitCheckFailed.
func HandleCheck(rt *Runtime) error {
	session, err := rt.Open()
	if err != nil {
		return err
	}
	issues := session.Lint()
	if issues == nil {
		issues = []style.LintIssue{}
	}

	if rt.Args.JSON {
		if err := rt.PrintJSON("check", CheckData{Path: session.Path(), Issues: issues}); err != nil {
			return err
		}
	} else {
		for _, issue := range issues {
			rt.Printf("%s %s\n", RenderStatus("warn"), issue.String())
		}
		if len(issues) == 0 && !rt.Args.Quiet {
			rt.Printf("%s %s\n", RenderStatus("ok"), session.Path())
		}
	}

	if len(issues) > 0 {
		return &CheckFailedError{Issues: len(issues)}
	}
	return nil
}
