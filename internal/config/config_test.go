package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadFullConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	configContent := `
theme: latte
log_level: debug
color: never
highlight: "#313244"
mark_suffix: " (seen)"
show_help: false
keys:
  quit: ["x"]
  describe: ["enter", "p"]
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Theme != "latte" {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, "latte")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color: got %q, want %q", cfg.Color, ColorNever)
	}
	if cfg.Highlight != "#313244" {
		t.Errorf("Highlight: got %q, want %q", cfg.Highlight, "#313244")
	}
	if cfg.MarkSuffix != " (seen)" {
		t.Errorf("MarkSuffix: got %q, want %q", cfg.MarkSuffix, " (seen)")
	}
	if cfg.ShowHelp {
		t.Error("ShowHelp: got true, want false")
	}
	if !reflect.DeepEqual(cfg.Keys.Quit, []string{"x"}) {
		t.Errorf("Keys.Quit: got %v", cfg.Keys.Quit)
	}
	if !reflect.DeepEqual(cfg.Keys.Describe, []string{"enter", "p"}) {
		t.Errorf("Keys.Describe: got %v", cfg.Keys.Describe)
	}
	if cfg.Keys.Up != nil {
		t.Errorf("Keys.Up: got %v, want nil", cfg.Keys.Up)
	}
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom: unexpected error %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("mark_suffix: \" !\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if cfg.Theme != "mocha" || cfg.Color != ColorAuto || cfg.LogLevel != "info" {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if !cfg.ShowHelp {
		t.Error("ShowHelp default should survive a file that omits it")
	}
	if cfg.MarkSuffix != " !" {
		t.Errorf("MarkSuffix: got %q", cfg.MarkSuffix)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "theme: [", "parse"},
		{"unknown theme", "theme: dracula", "theme must be"},
		{"unknown color mode", "color: sometimes", "color must be"},
		{"bad highlight", "highlight: blue", "highlight must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadFrom(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
			if !reflect.DeepEqual(cfg, DefaultConfig()) {
				t.Error("invalid config should fall back to defaults")
			}
		})
	}
}

func TestConfig_YAMLRoundTripFieldNames(t *testing.T) {
	out, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"theme:", "log_level:", "color:", "mark_suffix:", "show_help:", "keys:"} {
		if !strings.Contains(string(out), field) {
			t.Errorf("marshalled config missing %q:\n%s", field, out)
		}
	}
}

func TestGetConfigPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := getConfigPath(); got != filepath.Join("/tmp/xdg", "treeview", "config.yaml") {
		t.Errorf("getConfigPath = %q", got)
	}
}

func TestDataDir(t *testing.T) {
	if got := DataDir("/etc/tv"); got != "/etc/tv" {
		t.Errorf("explicit dir: got %q", got)
	}

	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got := DataDir(""); got != filepath.Join("/tmp/state", "treeview") {
		t.Errorf("XDG_STATE_HOME: got %q", got)
	}
}
