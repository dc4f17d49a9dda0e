// Package cliconfig holds the CLI configuration surface for dupeclean and
// its three-layer precedence: flags override environment variables, which
// override the TOML config file, which overrides defaults.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultTrashDirName is the trash directory created under the user home
// when no trash dir is configured.
const DefaultTrashDirName = ".dupeclean-trash"

// Config holds CLI configuration for dupeclean.
type Config struct {
	// Root is the directory to scan (positional argument, not configurable
	// via file or environment).
	Root string

	Extensions []string
	MinSize    int64
	MaxSize    int64

	Algorithm string
	BlockSize int
	Workers   int

	Keep string
	Mode string

	Delete   bool
	DryRun   bool
	TrashDir string

	ReportPath string
	Detailed   bool
	Verbose    bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Algorithm: "sha256",
		BlockSize: 64 * 1024,
		Keep:      "first",
		Mode:      "trash",
	}
}

// DefaultTrashDir returns the default trash location under the user home.
func DefaultTrashDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, DefaultTrashDirName)
	}
	return DefaultTrashDirName
}

// Validate checks the configuration for errors and sets derived defaults.
// Extension entries are normalized to a lowercase dot-prefixed form.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("scan path is required")
	}

	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			return fmt.Errorf("empty extension in filter")
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}

	if c.MinSize < 0 {
		return fmt.Errorf("min-size must not be negative")
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("max-size must not be negative")
	}
	if c.MaxSize > 0 && c.MinSize > c.MaxSize {
		return fmt.Errorf("min-size %d exceeds max-size %d", c.MinSize, c.MaxSize)
	}

	if c.BlockSize <= 0 {
		c.BlockSize = 64 * 1024
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}

	if c.TrashDir == "" {
		c.TrashDir = DefaultTrashDir()
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a string slice if non-empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt64 sets an int64 value if positive and flag not changed.
func (s *configSetter) setInt64(flag string, value int64, dst *int64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setInt64FromString parses a string to int64 and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setInt64FromString(flag, value string, dst *int64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if n <= 0 {
		return nil
	}
	*dst = n
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

// setStringsFromString splits a comma-separated string into a slice.
// Used for environment variables that come as strings.
func (s *configSetter) setStringsFromString(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		*dst = out
	}
}
