// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/styleconf/internal/logging"
	"github.com/jeranaias/styleconf/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete styleconf configuration.
type Config struct {
	// Style file selection
	Style StyleConfig `toml:"style" json:"style"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Log configuration
	Log LogConfig `toml:"log" json:"log"`
}

// StyleConfig selects which style.conf is edited.
type StyleConfig struct {
	// Path is an explicit style file; it wins over Target when set
	Path string `toml:"path" json:"path"`
	// Target is "user" (ProgramData override file) or "default" (install dir)
	Target string `toml:"target" json:"target"`
	// ProgramData overrides the PROGRAMDATA environment variable
	ProgramData string `toml:"program_data" json:"program_data"`
	// InstallDir is the AviUtl2 installation directory
	InstallDir string `toml:"install_dir" json:"install_dir"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// ShowDescriptions shows font setting descriptions under each entry
	ShowDescriptions bool `toml:"show_descriptions" json:"show_descriptions"`
	// Watch reloads prompts when the file changes on disk
	Watch bool `toml:"watch" json:"watch"`
	// ConfirmQuit asks before quitting with unsaved changes
	ConfirmQuit bool `toml:"confirm_quit" json:"confirm_quit"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is the minimum level: "debug", "info", "warn", "error"
	Level string `toml:"level" json:"level"`
	// File is the log file path; empty means ~/.styleconf/styleconf.log
	File string `toml:"file" json:"file"`
}

// Style targets.
const (
	TargetUser    = "user"
	TargetDefault = "default"
)

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// DefaultInstallDir is where the AviUtl2 installer puts the application.
const DefaultInstallDir = `C:\Program Files\AviUtl2`

// defaultProgramData is used when PROGRAMDATA is unset.
const defaultProgramData = `C:\ProgramData`

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Style: StyleConfig{
			Target:     TargetUser,
			InstallDir: DefaultInstallDir,
		},
		UI: UIConfig{
			Theme:            "auto",
			ShowDescriptions: true,
			Watch:            true,
			ConfirmQuit:      true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// EnvHome relocates the configuration directory.
const EnvHome = "STYLECONF_HOME"

// ConfigDir returns the styleconf configuration directory path.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".styleconf"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the log file path for cfg.
func LogPath(cfg *Config) (string, error) {
	if cfg.Log.File != "" {
		return cfg.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "styleconf.log"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// STYLE PATH RESOLUTION
// =============================================================================

// DefaultStylePath returns the style file shipped next to the application.
func (c *Config) DefaultStylePath() string {
	dir := c.Style.InstallDir
	if dir == "" {
		dir = DefaultInstallDir
	}
	return filepath.Join(dir, "style.conf")
}

// UserStylePath returns the ProgramData override file, which AviUtl2 reads
// on top of the default one.
func (c *Config) UserStylePath() string {
	dir := c.Style.ProgramData
	if dir == "" {
		dir = os.Getenv("PROGRAMDATA")
	}
	if dir == "" {
		dir = defaultProgramData
	}
	return filepath.Join(dir, "aviutl2", "style.conf")
}

// ResolveStylePath picks the file to edit: override, then style.path, then
// the file named by style.target.
func (c *Config) ResolveStylePath(override string) string {
	if override != "" {
		return override
	}
	if c.Style.Path != "" {
		return c.Style.Path
	}
	if c.Style.Target == TargetDefault {
		return c.DefaultStylePath()
	}
	return c.UserStylePath()
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults
// when it does not exist. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPathTOML()
	if err != nil {
		return finish(Default())
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return finish(Default())
	}
	return LoadFromPath(path)
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer

	// Write header comment
	fmt.Fprintln(&buf, "# styleconf configuration file")
	fmt.Fprintln(&buf, "# Generated by styleconf - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var (
	validTargets   = []string{TargetUser, TargetDefault}
	validThemes    = []string{"dark", "light", "auto"}
	validLogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}
)

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if !contains(validTargets, c.Style.Target) {
		errs = append(errs, ValidationError{
			Field:   "style.target",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validTargets, ", "), c.Style.Target),
		})
	}
	if strings.ContainsAny(c.Style.Path, "\r\n") {
		errs = append(errs, ValidationError{Field: "style.path", Message: "must not contain line breaks"})
	}
	if !contains(validThemes, c.UI.Theme) {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validThemes, ", "), c.UI.Theme),
		})
	}
	if !contains(validLogLevels, c.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills empty fields with their default values.
func (c *Config) SetDefaults() {
	defaults := Default()
	if c.Style.Target == "" {
		c.Style.Target = defaults.Style.Target
	}
	if c.Style.InstallDir == "" {
		c.Style.InstallDir = defaults.Style.InstallDir
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	c.Style.Target = strings.ToLower(c.Style.Target)
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	c.Log.Level = strings.ToLower(c.Log.Level)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - STYLECONF_FILE: overrides style.path
//   - STYLECONF_TARGET: overrides style.target
//   - STYLECONF_INSTALL_DIR: overrides style.install_dir
//   - STYLECONF_THEME: overrides ui.theme
//   - STYLECONF_WATCH: set to "0" or "false" to disable file watching
//   - STYLECONF_LOG_LEVEL: overrides log.level
func (c *Config) ApplyEnvOverrides() {
	if path := os.Getenv("STYLECONF_FILE"); path != "" {
		c.Style.Path = path
	}
	if target := os.Getenv("STYLECONF_TARGET"); target != "" {
		c.Style.Target = target
	}
	if dir := os.Getenv("STYLECONF_INSTALL_DIR"); dir != "" {
		c.Style.InstallDir = dir
	}
	if theme := os.Getenv("STYLECONF_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if watch := os.Getenv("STYLECONF_WATCH"); watch != "" {
		c.UI.Watch = parseBool(watch)
	}
	if level := os.Getenv("STYLECONF_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "1" || s == "true" || s == "yes" || s == "on"
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("field '%s' is a section, not a value", key)
			}
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(strVal)
			if err != nil {
				boolVal = parseBool(strVal)
			}
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	var keys []string
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		section := t.Field(i)
		prefix := tomlName(section)
		for j := 0; j < section.Type.NumField(); j++ {
			keys = append(keys, prefix+"."+tomlName(section.Type.Field(j)))
		}
	}
	return keys
}

func tomlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns a string representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			logger := logging.WithComponent("config")
			logger.Warn().Err(err).
				Msg("config load failed, using defaults")
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
