// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation for styleconf.
//
// CLI: Comprehensive help and examples for all commands
//
// Command: config [subcommand]
// Short:   View and modify the editor's own settings
//
// Subcommands:
//   show (default)      Display current configuration
//   set <key> <value>   Set a configuration value
//   reset               Reset to default configuration
//   path                Show configuration file path
//
// Examples:
//   styleconf config set style.target default
//   styleconf config set style.install_dir "D:\AviUtl2"
//   styleconf config set ui.theme dark
//   styleconf config set log.level debug
package cli

import (
	"fmt"
	"sort"

	"github.com/jeranaias/styleconf/internal/config"
)

// HandleConfig handles the config command.
func HandleConfig(rt *Runtime) error {
	parser := NewArgParser(rt.Args.Raw)

	switch parser.Subcommand() {
	case "", "show":
		return handleConfigShow(rt)
	case "set":
		if parser.PositionalCount() < 3 {
			return ErrMissingArgument("value", "styleconf config set ui.theme dark")
		}
		return handleConfigSet(rt, parser.Positional(1), JoinPositionalArgs(parser, 2))
	case "reset":
		return handleConfigReset(rt)
	case "path":
		return handleConfigPath(rt)
	default:
		return NewValidationErrorWithExample("subcommand", parser.Subcommand(),
			"must be show, set, reset or path", "styleconf config show")
	}
}

// configValues flattens the configuration into dot-notation keys.
func configValues(cfg *config.Config) map[string]string {
	values := make(map[string]string)
	for _, key := range config.GetAllKeys() {
		v, err := cfg.Get(key)
		if err != nil {
			continue
		}
		values[key] = fmt.Sprint(v)
	}
	return values
}

func handleConfigShow(rt *Runtime) error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return err
	}
	values := configValues(rt.Config)

	if rt.Args.JSON {
		return rt.PrintJSON("config show", ConfigData{Path: path, Values: values})
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rt.Println(TitleStyle.Render("styleconf configuration"))
	rt.Println(DimStyle.Render(path))
	rt.Println()
	for _, k := range keys {
		v := values[k]
		if v == "" {
			v = DimStyle.Render("(unset)")
		}
		rt.Println("  " + RenderLabel(k, 22) + ValueStyle.Render(v))
	}
	rt.Println()
	rt.Println(RenderLabel("style file", 22) + ValueStyle.Render(rt.StylePath()))
	return nil
}

func handleConfigSet(rt *Runtime, key, value string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return NewValidationErrorWithExample("key", key, err.Error(), "styleconf config set ui.theme dark")
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return WrapError(err, "failed to save config")
	}
	config.SetGlobal(cfg)
	rt.Config = cfg

	if rt.Args.JSON {
		return rt.PrintJSON("config set", map[string]string{"key": key, "value": value})
	}
	if !rt.Args.Quiet {
		rt.Printf("%s %s = %s\n", RenderStatus("ok"), key, value)
	}
	return nil
}

func handleConfigReset(rt *Runtime) error {
	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return WrapError(err, "failed to save config")
	}
	config.SetGlobal(cfg)
	rt.Config = cfg

	if rt.Args.JSON {
		return rt.PrintJSON("config reset", configValues(cfg))
	}
	if !rt.Args.Quiet {
		rt.Printf("%s configuration reset to defaults\n", RenderStatus("ok"))
	}
	return nil
}

func handleConfigPath(rt *Runtime) error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return err
	}
	if rt.Args.JSON {
		return rt.PrintJSON("config path", map[string]string{"path": path})
	}
	rt.Println(path)
	return nil
}
