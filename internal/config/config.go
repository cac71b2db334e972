// Package config loads the YAML configuration of a site build.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/highlight"
	"github.com/alnah/go-md2html/internal/logging"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory searched below os.UserConfigDir.
const AppDir = "go-md2html"

// Limits on config values.
const (
	MaxPathLength  = 4096
	MaxNameLength  = 100
	MaxWorkers     = 256
	MaxRenderDepth = 1024
)

// Config holds the settings of a site build.
type Config struct {
	Content  string       `yaml:"content"`  // markdown tree
	Static   string       `yaml:"static"`   // copied into Public as is
	Public   string       `yaml:"public"`   // output tree
	Template string       `yaml:"template"` // page template name or path
	Style    string       `yaml:"style"`    // stylesheet name or path
	Assets   string       `yaml:"assets"`   // custom asset directory (empty = embedded only)
	Workers  int          `yaml:"workers"`  // 0 = GOMAXPROCS
	Clean    bool         `yaml:"clean"`    // empty Public before building
	Log      LogConfig    `yaml:"log"`
	Render   RenderConfig `yaml:"render"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// RenderConfig tunes the markdown renderer.
type RenderConfig struct {
	HeadingIDs  bool   `yaml:"headingIDs"`
	Highlight   string `yaml:"highlight"`   // chroma style name (empty = off)
	MaxDepth    int    `yaml:"maxDepth"`    // 0 = renderer default
	InlineStyle bool   `yaml:"inlineStyle"` // <style> in each page instead of style.css
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Content:  "content",
		Static:   "static",
		Public:   "public",
		Template: "page",
		Style:    "default",
		Clean:    true,
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// Validate checks value ranges and lengths. LoadConfig calls it; callers
// that build or override a Config should call it again.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name, value string
		max         int
	}{
		{"content", c.Content, MaxPathLength},
		{"static", c.Static, MaxPathLength},
		{"public", c.Public, MaxPathLength},
		{"template", c.Template, MaxPathLength},
		{"style", c.Style, MaxPathLength},
		{"assets", c.Assets, MaxPathLength},
		{"render.highlight", c.Render.Highlight, MaxNameLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Content == "" {
		return fmt.Errorf("%w: content: required", ErrInvalidValue)
	}
	if c.Public == "" {
		return fmt.Errorf("%w: public: required", ErrInvalidValue)
	}
	if samePath(c.Public, c.Content) || (c.Static != "" && samePath(c.Public, c.Static)) {
		return fmt.Errorf("%w: public: %q must differ from content and static", ErrInvalidValue, c.Public)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}
	if c.Render.MaxDepth < 0 || c.Render.MaxDepth > MaxRenderDepth {
		return fmt.Errorf("%w: render.maxDepth: must be between 0 and %d, got %d", ErrInvalidValue, MaxRenderDepth, c.Render.MaxDepth)
	}
	if c.Render.Highlight != "" && !slices.Contains(highlight.Styles(), strings.ToLower(c.Render.Highlight)) {
		return fmt.Errorf("%w: render.highlight: unknown style %q", ErrInvalidValue, c.Render.Highlight)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidValue, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: log.format: %v", ErrInvalidValue, err)
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// LoadConfig loads configuration from a file path or config name. Fields the
// file leaves out keep their DefaultConfig values. A name is searched as
// name.yaml then name.yml, in the working directory and then in
// os.UserConfigDir()/go-md2html/.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if path, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// Marshal returns c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}
