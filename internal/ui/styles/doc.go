// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the styleconf editor.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection. The ui.theme setting can pin the mode to "dark" or "light".

# Color System (colors.go)

  - Purple - Active tab and selection accent
  - Cyan - Keys and headings
  - Emerald - Saved state, added diff lines
  - Amber - Unsaved state, warnings, watch notifications
  - Rose - Errors, removed diff lines

# Theme System (theme.go)

	theme := styles.NewTheme("auto")
	tab := theme.TabActive.Render("Font")

# Indicators (animations.go)

Spinner frames for background work and ASCII status indicators:

	StatusIndicators.Success   - [OK]
	StatusIndicators.Warning   - [!]
*/
package styles
