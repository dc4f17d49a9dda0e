package cliconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Extensions: []string{".jpg", ".png"},
				MinSize:    1024,
				Algorithm:  "md5",
				Keep:       "newest",
				DryRun:     &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Extensions: []string{".jpg", ".png"},
				MinSize:    1024,
				Algorithm:  "md5",
				Keep:       "newest",
				DryRun:     true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Algorithm: "md5",
				Keep:      "oldest",
			},
			changed: map[string]bool{"algorithm": true},
			initial: Config{
				Algorithm: "sha256",
				Keep:      "first",
			},
			expected: Config{
				Algorithm: "sha256", // unchanged because flag was set
				Keep:      "oldest",
			},
		},
		{
			name: "handles all field types correctly",
			fileConfig: FileConfig{
				Extensions: []string{".mp4"},
				MinSize:    100,
				MaxSize:    1 << 30,
				Algorithm:  "sha1",
				BlockSize:  1 << 20,
				Workers:    8,
				Keep:       "last",
				Mode:       "permanent",
				DryRun:     &falseVal,
				TrashDir:   "/var/trash",
				ReportPath: "report.json",
				Detailed:   &trueVal,
				Verbose:    &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{DryRun: true},
			expected: Config{
				Extensions: []string{".mp4"},
				MinSize:    100,
				MaxSize:    1 << 30,
				Algorithm:  "sha1",
				BlockSize:  1 << 20,
				Workers:    8,
				Keep:       "last",
				Mode:       "permanent",
				DryRun:     false,
				TrashDir:   "/var/trash",
				ReportPath: "report.json",
				Detailed:   true,
				Verbose:    true,
			},
		},
		{
			name:       "absent keys leave config untouched",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial: Config{
				Algorithm: "sha256",
				Keep:      "first",
				DryRun:    true,
			},
			expected: Config{
				Algorithm: "sha256",
				Keep:      "first",
				DryRun:    true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			if err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed); err != nil {
				t.Fatalf("ApplyFileConfig() error: %v", err)
			}
			if !reflect.DeepEqual(cfg, tt.expected) {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	content := `
extensions = [".jpg", ".png"]
min_size = 1048576
algorithm = "md5"
keep = "newest"
mode = "permanent"
dry_run = true
trash_dir = "/custom/trash"
workers = 4
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error: %v", err)
	}

	if !reflect.DeepEqual(fc.Extensions, []string{".jpg", ".png"}) {
		t.Errorf("extensions = %v", fc.Extensions)
	}
	if fc.MinSize != 1048576 {
		t.Errorf("min_size = %d, want 1048576", fc.MinSize)
	}
	if fc.Algorithm != "md5" {
		t.Errorf("algorithm = %q, want md5", fc.Algorithm)
	}
	if fc.Keep != "newest" {
		t.Errorf("keep = %q, want newest", fc.Keep)
	}
	if fc.Mode != "permanent" {
		t.Errorf("mode = %q, want permanent", fc.Mode)
	}
	if fc.DryRun == nil || !*fc.DryRun {
		t.Error("dry_run should parse as true")
	}
	if fc.TrashDir != "/custom/trash" {
		t.Errorf("trash_dir = %q", fc.TrashDir)
	}
	if fc.Workers != 4 {
		t.Errorf("workers = %d, want 4", fc.Workers)
	}
}

func TestLoadFileConfig_Invalid(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestLoadFileConfig_Missing(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadFileConfig() expected error for missing file")
	}
}

func TestFileExists(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "f")
	if FileExists(path) {
		t.Error("FileExists() = true for missing file")
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists() = false for existing file")
	}
}
