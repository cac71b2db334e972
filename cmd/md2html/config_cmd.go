package main

import (
	"fmt"

	"github.com/alnah/go-md2html/internal/config"
)

// runConfig prints the effective configuration as YAML: defaults, the
// config file and environment overrides merged.
func runConfig(args []string, env *Environment) error {
	fs := newFlagSet("config", printConfigUsage, env)
	var name string
	var defaults bool
	fs.StringVarP(&name, "config", "c", "", "config file name or path")
	fs.BoolVar(&defaults, "defaults", false, "print the built-in defaults only")
	if err := parseFlagSet(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: config takes no arguments", ErrUsage)
	}

	cfg := config.DefaultConfig()
	if !defaults {
		var err error
		if cfg, err = loadConfig(name, env); err != nil {
			return err
		}
	}

	out, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
