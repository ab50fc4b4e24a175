// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// shell.go - The "shell" command: a line-oriented editor.
//
// USABILITY: liner provides arrow-key history and line editing. Edits stay in
// memory until "save".

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/peterh/liner"

	"github.com/jeranaias/styleconf/internal/config"
	"github.com/jeranaias/styleconf/internal/editor"
	"github.com/jeranaias/styleconf/internal/platform"
	"github.com/jeranaias/styleconf/internal/style"
)

// =============================================================================
// LINE INPUT
// =============================================================================

// ShellInput provides input history and line editing for the shell.
type ShellInput struct {
	line        *liner.State
	historyFile string
}

// NewShellInput creates a ShellInput with history loaded from the config
// directory.
func NewShellInput() *ShellInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	in := &ShellInput{
		line:        line,
		historyFile: filepath.Join(configDir, "shell_history"),
	}
	in.line.SetCompleter(completeShell)
	if f, err := os.Open(in.historyFile); err == nil {
		in.line.ReadHistory(f)
		f.Close()
	}
	return in
}

// ReadInput reads a line with the given prompt.
func (in *ShellInput) ReadInput(prompt string) (string, error) {
	input, err := in.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		in.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves history and restores the terminal.
func (in *ShellInput) Close() {
	if err := config.EnsureConfigDir(); err == nil {
		if f, err := os.OpenFile(in.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			in.line.WriteHistory(f)
			f.Close()
		}
	}
	in.line.Close()
}

var shellCommands = []string{
	"show", "get", "set", "unset", "font", "fonts", "keys", "pending",
	"check", "save", "reload", "path", "help", "quit", "exit",
}

func completeShell(line string) []string {
	var out []string
	words := strings.Fields(line)
	switch {
	case len(words) == 0 || (len(words) == 1 && !strings.HasSuffix(line, " ")):
		for _, c := range shellCommands {
			if strings.HasPrefix(c, line) {
				out = append(out, c)
			}
		}
	case words[0] == "font" && len(words) <= 2:
		prefix := ""
		if len(words) == 2 {
			prefix = words[1]
		}
		for _, fs := range style.FontSettings() {
			if strings.HasPrefix(fs.Key, prefix) {
				out = append(out, "font "+fs.Key)
			}
		}
	}
	return out
}

// =============================================================================
// SHELL
// =============================================================================

// errQuit ends the shell loop.
var errQuit = errors.New("quit")

// Shell executes shell lines against one editor session.
type Shell struct {
	rt      *Runtime
	session *editor.Session
}

// NewShell opens the active style file for interactive editing.
func NewShell(rt *Runtime) (*Shell, error) {
	session, err := rt.Open()
	if err != nil {
		return nil, err
	}
	return &Shell{rt: rt, session: session}, nil
}

// HandleShell runs the interactive shell until quit, Ctrl+C or Ctrl+D.
func HandleShell(rt *Runtime) error {
	if err := RequiresTTY("run the shell"); err != nil {
		return err
	}
	sh, err := NewShell(rt)
	if err != nil {
		return err
	}

	input := NewShellInput()
	defer input.Close()

	rt.Println(TitleStyle.Render("styleconf shell") + "  " + DimStyle.Render(sh.session.Path()))
	rt.Println(DimStyle.Render("Type help for commands."))

	for {
		prompt := "style> "
		if sh.session.Dirty() {
			prompt = "style*> "
		}
		line, err := input.ReadInput(prompt)
		if err != nil {
			// Ctrl+C (liner.ErrPromptAborted) or EOF
			rt.Println()
			if sh.session.Dirty() {
				rt.Println(WarningStyle.Render("Unsaved changes discarded: " + sh.session.Pending().Summary()))
			}
			return nil
		}
		if err := sh.Exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			DisplayErrorTo(rt.Out, err, false)
		}
	}
}

// Exec runs one shell line. It returns errQuit when the shell should exit.
func (sh *Shell) Exec(line string) error {
	words, err := splitWords(line)
	if err != nil {
		return NewValidationError("input", line, err.Error())
	}
	if len(words) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(words[0]), words[1:]
	out := sh.rt

	switch cmd {
	case "help", "?":
		sh.help(out.Out)
	case "show", "ls":
		sections := style.Sections()
		if len(args) > 0 {
			s, err := parseSectionArg(args[0])
			if err != nil {
				return err
			}
			sections = []style.Section{s}
		}
		renderDocument(out, sh.session.Document(), sections)
	case "get":
		if len(args) < 2 {
			return ErrMissingArgument("key", "get SECTION KEY")
		}
		s, err := parseSectionArg(args[0])
		if err != nil {
			return err
		}
		v, ok := sh.session.Get(s, args[1])
		if !ok {
			return NewNotFoundError("key", "["+s.Name()+"] "+args[1])
		}
		out.Println(v)
	case "set":
		if len(args) < 3 {
			return ErrMissingArgument("value", "set SECTION KEY VALUE")
		}
		s, err := parseSectionArg(args[0])
		if err != nil {
			return err
		}
		if err := validateKey(args[1]); err != nil {
			return err
		}
		sh.session.Set(s, args[1], strings.Join(args[2:], " "))
	case "unset", "rm":
		if len(args) < 2 {
			return ErrMissingArgument("key", "unset SECTION KEY")
		}
		s, err := parseSectionArg(args[0])
		if err != nil {
			return err
		}
		if !sh.session.Delete(s, args[1]) {
			return NewNotFoundError("key", "["+s.Name()+"] "+args[1])
		}
	case "font":
		return sh.font(args)
	case "fonts":
		families, err := sh.rt.Host.ListInstalledFontFamilies()
		if err != nil {
			return err
		}
		filter := strings.Join(args, " ")
		for _, f := range platform.FilterFamilies(families, filter) {
			out.Println(f)
		}
	case "keys":
		for _, fs := range style.FontSettings() {
			out.Printf("  %s %s %s\n", RenderLabel(fs.Key, 15), DimStyle.Render(fs.InputType.String()), fs.Label)
		}
	case "pending", "diff":
		printDiff(out, sh.session.Pending(), "saved", "working copy")
	case "check", "lint":
		issues := sh.session.Lint()
		for _, issue := range issues {
			out.Printf("%s %s\n", RenderStatus("warn"), issue.String())
		}
		if len(issues) == 0 {
			out.Println(RenderStatus("ok"))
		}
	case "save", "w":
		return sh.rt.Save(sh.session)
	case "reload":
		return sh.session.Reload()
	case "path":
		out.Println(sh.session.Path())
	case "quit", "exit", "q":
		if sh.session.Dirty() {
			return NewValidationError("quit", "", "unsaved changes; save first or use quit!")
		}
		return errQuit
	case "quit!", "q!":
		return errQuit
	default:
		return NewValidationErrorWithExample("command", cmd, "unknown shell command", "help")
	}
	return nil
}

// font shows or edits a catalog font setting:
//
//	font KEY
//	font KEY SIZE [FAMILY...]      (both)
//	font KEY SIZE                  (size only)
//	font KEY FAMILY...             (family only)
func (sh *Shell) font(args []string) error {
	if len(args) == 0 {
		return ErrMissingArgument("key", "font TextEdit 14 MS Gothic")
	}
	fs, err := lookupFontArg(args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		d := fontData(sh.session, fs)
		sh.rt.Printf("%s  %s\n", fs.Key, DimStyle.Render(fs.Label))
		sh.rt.Printf("  size=%q family=%q raw=%q\n", d.Size, d.Family, d.Raw)
		return nil
	}

	current := fontData(sh.session, fs)
	size, family := current.Size, current.Family
	switch fs.InputType {
	case style.InputFamilyOnly:
		family = strings.Join(args[1:], " ")
	case style.InputSizeOnly:
		size = args[1]
	default:
		size = args[1]
		if len(args) > 2 {
			family = strings.Join(args[2:], " ")
		}
	}
	value := sh.session.SetFont(fs.Key, size, family)
	sh.rt.Printf("[Font] %s=%s\n", fs.Key, value)
	return nil
}

func (sh *Shell) help(w io.Writer) {
	rows := [][2]string{
		{"show [SECTION]", "print the working copy"},
		{"get SECTION KEY", "print one value"},
		{"set SECTION KEY VALUE", "set a value"},
		{"unset SECTION KEY", "remove a key"},
		{"font KEY [SIZE] [FAMILY]", "show or edit a font setting"},
		{"fonts [FILTER]", "list installed font families"},
		{"keys", "list font settings"},
		{"pending", "show unsaved changes"},
		{"check", "report entries that will not survive a save"},
		{"save", "write the file"},
		{"reload", "discard edits and re-read the file"},
		{"quit, quit!", "leave (quit! discards edits)"},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s %s\n", RenderLabel(r[0], 26), DimStyle.Render(r[1]))
	}
}

// splitWords splits a shell line into words with POSIX quoting rules.
// Operators such as ; and | are not supported and must be quoted.
func splitWords(line string) ([]string, error) {
	parser := shellwords.NewParser()
	words, err := parser.Parse(line)
	if err != nil {
		return nil, err
	}
	if parser.Position >= 0 {
		return nil, errors.New("quote values containing ; & | < or >")
	}
	return words, nil
}
