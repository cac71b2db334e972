package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/logging"
)

// defaultConfigName is looked up when --config is not given.
const defaultConfigName = "md2html"

// loadConfig loads the named config, or the default one when it exists.
// Environment values are applied on top.
func loadConfig(name string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env)
	if name == "" {
		name = envCfg.ConfigPath
	}

	var cfg *config.Config
	var err error
	if name != "" {
		if cfg, err = config.LoadConfig(name); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg, err = config.LoadConfig(defaultConfigName)
		switch {
		case errors.Is(err, config.ErrConfigNotFound):
			cfg = config.DefaultConfig()
		case err != nil:
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeCommonFlags applies flags to cfg (CLI wins).
func mergeCommonFlags(f *commonFlags, r *renderOptionFlags, a *assetFlags, changed func(string) bool, cfg *config.Config) {
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	if changed("heading-ids") {
		cfg.Render.HeadingIDs = r.headingIDs
	}
	if changed("highlight") {
		cfg.Render.Highlight = r.highlight
	}
	if changed("max-depth") {
		cfg.Render.MaxDepth = r.maxDepth
	}
	if changed("inline-style") {
		cfg.Render.InlineStyle = r.inlineStyle
	}
	if a.template != "" {
		cfg.Template = a.template
	}
	if a.style != "" {
		cfg.Style = a.style
	}
	if a.assetPath != "" {
		cfg.Assets = a.assetPath
	}
}

// newLogger builds the logger from cfg. --verbose forces debug and --quiet
// errors only.
func newLogger(cfg *config.Config, f *commonFlags, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	switch {
	case f.quiet:
		level = logging.LevelError
	case f.verbose:
		level = logging.LevelDebug
	}
	return logging.New(w, level, format), nil
}

// newConverter builds a Converter from the render and asset settings of cfg.
func newConverter(cfg *config.Config, logger *slog.Logger) (*md2html.Converter, error) {
	opts := []md2html.Option{
		md2html.WithLogger(logger),
		md2html.WithHeadingIDs(cfg.Render.HeadingIDs),
		md2html.WithHighlight(cfg.Render.Highlight),
		md2html.WithAssetPath(cfg.Assets),
		md2html.WithStyle(cfg.Style),
	}
	if cfg.Render.MaxDepth > 0 {
		opts = append(opts, md2html.WithMaxDepth(cfg.Render.MaxDepth))
	}
	return md2html.NewConverter(opts...)
}
