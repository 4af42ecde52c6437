package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func intPtr(i int) *int { return &i }

func TestApplyFileConfig(t *testing.T) {
	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				From:      "kelvin",
				To:        "celsius",
				Precision: intPtr(4),
				LogLevel:  "debug",
				LogFormat: "json",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				From:      "kelvin",
				To:        "celsius",
				Precision: 4,
				LogLevel:  "debug",
				LogFormat: "json",
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				From:      "kelvin",
				Precision: intPtr(5),
			},
			changed: map[string]bool{"from": true, "precision": true},
			initial: Config{From: "fahrenheit", Precision: 1},
			expected: Config{
				From:      "fahrenheit",
				Precision: 1,
			},
		},
		{
			name:       "explicit zero precision applies",
			fileConfig: FileConfig{Precision: intPtr(0)},
			changed:    map[string]bool{},
			initial:    Config{Precision: 2},
			expected:   Config{Precision: 0},
		},
		{
			name:       "empty file keeps initial",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		`from = "F"`,
		`to = "kelvin"`,
		`precision = 0`,
		`log_level = "warn"`,
		`log_format = "json"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig returned error: %v", err)
	}
	if fc.From != "F" || fc.To != "kelvin" {
		t.Errorf("units = %q -> %q", fc.From, fc.To)
	}
	if fc.Precision == nil || *fc.Precision != 0 {
		t.Errorf("Precision = %v, want explicit 0", fc.Precision)
	}
	if fc.LogLevel != "warn" || fc.LogFormat != "json" {
		t.Errorf("log settings = %q/%q", fc.LogLevel, fc.LogFormat)
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFileConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("from = [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if FileExists(path) {
		t.Fatal("file should not exist yet")
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !FileExists(path) {
		t.Fatal("file should exist")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".thermo", "config.toml")
	if got := DefaultConfigPath(); got != want {
		t.Fatalf("DefaultConfigPath() = %q, want %q", got, want)
	}
}
