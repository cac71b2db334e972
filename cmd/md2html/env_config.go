package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // MD2HTML_CONFIG: config file name or path
	Public     string // MD2HTML_PUBLIC: output directory
	Style      string // MD2HTML_STYLE: stylesheet name or path
	Highlight  string // MD2HTML_HIGHLIGHT: chroma style
	LogLevel   string // MD2HTML_LOG_LEVEL: debug, info, warn, error
	LogFormat  string // MD2HTML_LOG_FORMAT: text, json
	Workers    int    // MD2HTML_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2HTML_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":     true,
	"MD2HTML_PUBLIC":     true,
	"MD2HTML_STYLE":      true,
	"MD2HTML_HIGHLIGHT":  true,
	"MD2HTML_LOG_LEVEL":  true,
	"MD2HTML_LOG_FORMAT": true,
	"MD2HTML_WORKERS":    true,
}

// loadEnvConfig reads the MD2HTML_* variables. Invalid numbers are ignored.
func loadEnvConfig(env *Environment) *envConfig {
	cfg := &envConfig{
		ConfigPath: env.Getenv("MD2HTML_CONFIG"),
		Public:     env.Getenv("MD2HTML_PUBLIC"),
		Style:      env.Getenv("MD2HTML_STYLE"),
		Highlight:  env.Getenv("MD2HTML_HIGHLIGHT"),
		LogLevel:   env.Getenv("MD2HTML_LOG_LEVEL"),
		LogFormat:  env.Getenv("MD2HTML_LOG_FORMAT"),
	}
	if workers := env.Getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars reports MD2HTML_* variables that are likely typos.
func warnUnknownEnvVars(env *Environment) {
	for _, kv := range env.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(env.Stderr, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config file values with environment values.
// CLI flags are applied afterwards: flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Public != "" {
		cfg.Public = env.Public
	}
	if env.Style != "" {
		cfg.Style = env.Style
	}
	if env.Highlight != "" {
		cfg.Render.Highlight = env.Highlight
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Log.Format = env.LogFormat
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
