package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/site"
)

// runBuild generates the site.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseBuildFlags(args, env)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeBuildFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, &flags.common, env.Stderr)
	if err != nil {
		return err
	}
	conv, err := newConverter(cfg, logger)
	if err != nil {
		return err
	}

	start := env.Now()
	report, err := site.Build(ctx, conv, site.Options{
		Content:     cfg.Content,
		Static:      cfg.Static,
		Public:      cfg.Public,
		Template:    cfg.Template,
		Workers:     cfg.Workers,
		Clean:       cfg.Clean,
		InlineStyle: cfg.Render.InlineStyle,
		Logger:      logger,
	})
	if report != nil && !flags.common.quiet {
		printReport(env, report, cfg.Public, env.Now().Sub(start))
	}
	return err
}

// mergeBuildFlags applies build flags to cfg (CLI wins).
func mergeBuildFlags(f *buildFlags, cfg *config.Config) {
	mergeCommonFlags(&f.common, &f.render, &f.assets, f.changed, cfg)
	if f.content != "" {
		cfg.Content = f.content
	}
	if f.static != "" {
		cfg.Static = f.static
	}
	if f.public != "" {
		cfg.Public = f.public
	}
	if f.changed("workers") {
		cfg.Workers = f.workers
	}
	if f.noClean {
		cfg.Clean = false
	}
}

// printReport writes the build summary. Failed pages are already logged.
func printReport(env *Environment, r *site.Report, public string, elapsed time.Duration) {
	fmt.Fprintf(env.Stdout, "Built %s in %s: %d written, %d unchanged, %d failed (%s)\n",
		public,
		elapsed.Round(time.Millisecond),
		r.Written(), r.Unchanged(), r.Failed(),
		humanize.Bytes(uint64(r.PageBytes())), // #nosec G115 -- sizes are non-negative
	)
	if r.Static.Files > 0 {
		fmt.Fprintf(env.Stdout, "Copied %d static %s (%s)\n",
			r.Static.Files,
			pluralize(r.Static.Files, "file", "files"),
			humanize.Bytes(uint64(r.Static.Bytes)), // #nosec G115 -- sizes are non-negative
		)
	}
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
