package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// ErrReadMarkdown indicates the input file could not be read.
var ErrReadMarkdown = errors.New("failed to read markdown file")

// runRender prints one file as an HTML fragment, a full page or its title.
func runRender(args []string, env *Environment) error {
	flags, input, err := parseRenderFlags(args, env)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeCommonFlags(&flags.common, &flags.render, &flags.assets, flags.changed, cfg)
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

	markdown, err := readInput(input, env.Stdin)
	if err != nil {
		return err
	}

	if flags.title {
		fmt.Fprintln(env.Stdout, conv.ExtractTitle(markdown))
		return nil
	}
	if !flags.page {
		out, err := conv.Render(markdown)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Stdout, out)
		return nil
	}

	tmpl, err := conv.LoadTemplate(cfg.Template)
	if err != nil {
		return err
	}
	res, err := conv.Convert(context.Background(), md2html.Input{
		Markdown:     markdown,
		Template:     tmpl,
		DefaultTitle: defaultTitle(input),
	})
	if err != nil {
		return err
	}
	page := res.Page
	if cfg.Render.InlineStyle {
		css, err := conv.Stylesheet()
		if err != nil {
			return err
		}
		page = pipeline.InjectStylesheet(page, css)
	}
	fmt.Fprintln(env.Stdout, page)
	return nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- user-provided path
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	return string(data), nil
}

// defaultTitle names a page after its file when it has no heading.
func defaultTitle(path string) string {
	if path == "-" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
