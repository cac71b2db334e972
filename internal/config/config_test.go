package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.Content != "content" || cfg.Static != "static" || cfg.Public != "public" {
		t.Errorf("directories = %q, %q, %q", cfg.Content, cfg.Static, cfg.Public)
	}
	if cfg.Template != "page" || cfg.Style != "default" {
		t.Errorf("assets = %q, %q", cfg.Template, cfg.Style)
	}
	if !cfg.Clean {
		t.Error("Clean = false, want true")
	}
	if cfg.Render.Highlight != "" || cfg.Render.HeadingIDs {
		t.Errorf("Render = %+v, want options off", cfg.Render)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"highlight style", func(c *Config) { c.Render.Highlight = "monokai" }, nil},
		{"unknown highlight style", func(c *Config) { c.Render.Highlight = "nope-xyz" }, ErrInvalidValue},
		{"negative workers", func(c *Config) { c.Workers = -1 }, ErrInvalidValue},
		{"too many workers", func(c *Config) { c.Workers = MaxWorkers + 1 }, ErrInvalidValue},
		{"negative depth", func(c *Config) { c.Render.MaxDepth = -3 }, ErrInvalidValue},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, ErrInvalidValue},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, ErrInvalidValue},
		{"missing content", func(c *Config) { c.Content = "" }, ErrInvalidValue},
		{"missing public", func(c *Config) { c.Public = "" }, ErrInvalidValue},
		{"public is content", func(c *Config) { c.Public = "./content/" }, ErrInvalidValue},
		{"public is static", func(c *Config) { c.Public = "static" }, ErrInvalidValue},
		{"long path", func(c *Config) { c.Assets = strings.Repeat("a", MaxPathLength+1) }, ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	if err := validateFieldLength("f", "1234567890", 10); err != nil {
		t.Errorf("value at limit: %v", err)
	}
	err := validateFieldLength("f", "12345678901", 10)
	if !errors.Is(err, ErrFieldTooLong) {
		t.Fatalf("value over limit: %v, want ErrFieldTooLong", err)
	}
	if !strings.Contains(err.Error(), "11 chars, max 10") {
		t.Errorf("error %q lacks the lengths", err)
	}
}

func TestLoadConfig_Path(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	data := "content: docs\npublic: out\nworkers: 2\nrender:\n  headingIDs: true\n  highlight: github\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Content != "docs" || cfg.Public != "out" || cfg.Workers != 2 {
		t.Errorf("LoadConfig() = %+v", cfg)
	}
	if !cfg.Render.HeadingIDs || cfg.Render.Highlight != "github" {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	// unset fields keep their defaults
	if cfg.Static != "static" || cfg.Template != "page" || !cfg.Clean {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty name", "", ErrEmptyConfigName},
		{"missing file", filepath.Join(dir, "missing.yaml"), ErrConfigNotFound},
		{"unknown field", write("unknown.yaml", "contnet: docs\n"), ErrConfigParse},
		{"invalid value", write("invalid.yaml", "workers: -2\n"), ErrInvalidValue},
		{"name not found", "no-such-config-xyz", ErrConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := LoadConfig(tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("site")
	if len(paths) < 2 || paths[0] != "site.yaml" || paths[1] != "site.yml" {
		t.Fatalf("SearchPaths() = %v", paths)
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, AppDir) {
			t.Errorf("user path %q lacks %s", p, AppDir)
		}
	}
}

func TestConfig_Marshal(t *testing.T) {
	t.Parallel()

	out, err := DefaultConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, want := range []string{"content: content", "public: public", "headingIDs: false"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("Marshal() output lacks %q:\n%s", want, out)
		}
	}

	path := filepath.Join(t.TempDir(), "round.yaml")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err != nil {
		t.Errorf("LoadConfig(Marshal()) error = %v", err)
	}
}
