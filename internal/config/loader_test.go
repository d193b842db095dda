package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test creates.
func isolate(t *testing.T) (home string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults %+v differ from Default() %+v", cfg, Default())
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
	if got := cfg.Runtime().Grid; got != (core.Grid{W: 32, H: 24}) {
		t.Errorf("grid = %+v, expected 32x24", got)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "tick_rate: 20\ninput:\n  queue_size: 3\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 20 || cfg.Input.QueueSize != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.CellSize != 20 || cfg.Screen.Width != 640 {
		t.Errorf("unspecified fields should keep defaults: %+v", cfg)
	}

	rt := cfg.Runtime()
	if rt.TickRate != 20 || rt.QueueSize != 3 {
		t.Errorf("Runtime() = %+v", rt)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "tick_rate: [oops\n")

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".snake", "config.yaml"), "seed: 77\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Seed != 77 {
		t.Errorf("user config seed not applied, got %d", cfg.Seed)
	}
}

func TestLoadLocalConfig(t *testing.T) {
	isolate(t)
	writeFile(t, localConfigPath, "sound: true\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !cfg.Sound {
		t.Error("local config should enable sound")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero screen", func(c *Config) { c.Screen.Width = 0 }, "screen must be positive"},
		{"zero cell", func(c *Config) { c.CellSize = 0 }, "cell_size must be positive"},
		{"uneven cell", func(c *Config) { c.CellSize = 30 }, "does not divide"},
		{"single cell board", func(c *Config) { c.Screen, c.CellSize = ScreenConfig{Width: 20, Height: 20}, 20 }, "at least 2 cells"},
		{"two cell board", func(c *Config) { c.Screen, c.CellSize = ScreenConfig{Width: 40, Height: 20}, 20 }, ""},
		{"zero tick", func(c *Config) { c.TickRate = 0 }, "tick_rate"},
		{"negative queue", func(c *Config) { c.Input.QueueSize = -1 }, "queue_size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.TickRate = 0
	cfg.Input.QueueSize = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !strings.Contains(err.Error(), "tick_rate") || !strings.Contains(err.Error(), "queue_size") {
		t.Errorf("expected both problems reported, got %v", err)
	}
}

func TestMarshal(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "tick_rate: 15") {
		t.Errorf("marshalled config missing tick_rate:\n%s", data)
	}
}
