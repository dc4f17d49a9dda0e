package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML-friendly field types. Booleans are
// pointers so an absent key is distinguishable from an explicit false.
type FileConfig struct {
	Extensions []string `toml:"extensions"`
	MinSize    int64    `toml:"min_size"`
	MaxSize    int64    `toml:"max_size"`
	Algorithm  string   `toml:"algorithm"`
	BlockSize  int      `toml:"block_size"`
	Workers    int      `toml:"workers"`
	Keep       string   `toml:"keep"`
	Mode       string   `toml:"mode"`
	DryRun     *bool    `toml:"dry_run"`
	TrashDir   string   `toml:"trash_dir"`
	ReportPath string   `toml:"report"`
	Detailed   *bool    `toml:"detailed"`
	Verbose    *bool    `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.dupeclean/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".dupeclean", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setStrings("extensions", fc.Extensions, &cfg.Extensions)
	s.setInt64("min-size", fc.MinSize, &cfg.MinSize)
	s.setInt64("max-size", fc.MaxSize, &cfg.MaxSize)

	s.setString("algorithm", fc.Algorithm, &cfg.Algorithm)
	s.setInt("block-size", fc.BlockSize, &cfg.BlockSize)
	s.setInt("workers", fc.Workers, &cfg.Workers)

	s.setString("keep", fc.Keep, &cfg.Keep)
	s.setString("mode", fc.Mode, &cfg.Mode)

	s.setBool("dry-run", fc.DryRun, &cfg.DryRun)
	s.setString("trash-dir", fc.TrashDir, &cfg.TrashDir)

	s.setString("report", fc.ReportPath, &cfg.ReportPath)
	s.setBool("detailed", fc.Detailed, &cfg.Detailed)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
