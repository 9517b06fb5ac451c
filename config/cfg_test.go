package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Styling.Extension != ".ucss" {
		t.Errorf("Extension = %q, want .ucss", cfg.Styling.Extension)
	}
	if cfg.Styling.Root != "Canvas" {
		t.Errorf("Root = %q, want Canvas", cfg.Styling.Root)
	}
	if cfg.Watch.Debounce != 250*time.Millisecond {
		t.Errorf("Debounce = %v, want 250ms", cfg.Watch.Debounce)
	}
	if !strings.HasSuffix(filepath.ToSlash(cfg.Prefs.Path), "ucss/prefs.db") {
		t.Errorf("Prefs.Path = %q, expected expanded template", cfg.Prefs.Path)
	}
	if strings.Contains(cfg.Prefs.Path, "{{") {
		t.Errorf("Prefs.Path was not expanded: %q", cfg.Prefs.Path)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, `version: 1
styling:
  stylesheet: `+filepath.ToSlash(filepath.Join(tmpDir, "themes", "..", "dark.ucss"))+`
  root: HUD
watch:
  debounce: 1s
prefs:
  path: `+filepath.ToSlash(filepath.Join(tmpDir, "state", "prefs.db"))+`
logging:
  console:
    level: debug
  file:
    level: debug
    destination: `+filepath.ToSlash(filepath.Join(tmpDir, "logs", "ucss.log"))+`
    mode: append
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Styling.Root != "HUD" {
		t.Errorf("Root = %q, want HUD", cfg.Styling.Root)
	}
	if want := filepath.Join(tmpDir, "dark.ucss"); cfg.Styling.Stylesheet != want {
		t.Errorf("Stylesheet = %q, want cleaned %q", cfg.Styling.Stylesheet, want)
	}
	// untouched values come from the template
	if cfg.Styling.Extension != ".ucss" {
		t.Errorf("Extension = %q, want default .ucss", cfg.Styling.Extension)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("Debounce = %v, want 1s", cfg.Watch.Debounce)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("Mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
	// sanitizer makes sure directories for files exist
	for _, dir := range []string{"state", "logs"} {
		if fi, err := os.Stat(filepath.Join(tmpDir, dir)); err != nil || !fi.IsDir() {
			t.Errorf("expected directory %s to be created: %v", dir, err)
		}
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\nstyling:\n  root: x\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"unknown nested field", "version: 1\nstyling:\n  colour: red\n"},
		{"bad version", "version: 2\n"},
		{"empty root", "version: 1\nstyling:\n  root: \"\"\n"},
		{"extension without dot", "version: 1\nstyling:\n  extension: ucss\n"},
		{"negative debounce", "version: 1\nwatch:\n  debounce: -1s\n"},
		{"bad duration", "version: 1\nwatch:\n  debounce: soon\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	cfg, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("Prepared config is not valid: %v", err)
	}
	if cfg.Reporting.Destination == "" {
		t.Error("expected default report destination")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Styling.Stylesheet = "themes/light.ucss"
	cfg.Watch.Debounce = 3 * time.Second

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "debounce: 3s") {
		t.Errorf("expected duration to be dumped as text:\n%s", data)
	}

	again, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if diff := cmp.Diff(cfg, again); diff != "" {
		t.Errorf("config changed after dump (-want +got):\n%s", diff)
	}
}
