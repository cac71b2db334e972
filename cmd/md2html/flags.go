package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command lines.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logLevel  string
	logFormat string
}

// renderOptionFlags holds the renderer switches.
type renderOptionFlags struct {
	headingIDs  bool
	highlight   string
	maxDepth    int
	inlineStyle bool
}

// assetFlags holds template and stylesheet selection.
type assetFlags struct {
	template  string
	style     string
	assetPath string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	render  renderOptionFlags
	assets  assetFlags
	content string
	static  string
	public  string
	workers int
	noClean bool
	changed func(name string) bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common  commonFlags
	render  renderOptionFlags
	assets  assetFlags
	title   bool
	page    bool
	changed func(name string) bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every page")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json")
}

func addRenderOptionFlags(fs *flag.FlagSet, f *renderOptionFlags) {
	fs.BoolVar(&f.headingIDs, "heading-ids", false, "add anchor ids to headings")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for fenced code (\"\" = off)")
	fs.IntVar(&f.maxDepth, "max-depth", 0, "maximum quote and list nesting (0 = default)")
	fs.BoolVar(&f.inlineStyle, "inline-style", false, "embed the stylesheet in each page")
}

func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVarP(&f.template, "template", "t", "", "page template name or path")
	fs.StringVarP(&f.style, "style", "s", "", "stylesheet name or path")
	fs.StringVar(&f.assetPath, "assets", "", "directory overriding built-in templates and styles")
}

func newFlagSet(name string, usage func(io.Writer), env *Environment) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { usage(env.Stdout) }
	return fs
}

func parseFlagSet(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// parseBuildFlags parses build command flags. build takes no arguments.
func parseBuildFlags(args []string, env *Environment) (*buildFlags, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", printBuildUsage, env)

	fs.StringVar(&f.content, "content", "", "markdown directory")
	fs.StringVar(&f.static, "static", "", "static files directory")
	fs.StringVarP(&f.public, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.noClean, "no-clean", false, "keep existing files in the output directory")
	addCommonFlags(fs, &f.common)
	addRenderOptionFlags(fs, &f.render)
	addAssetFlags(fs, &f.assets)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: build takes no arguments, got %q", ErrUsage, fs.Args())
	}
	f.changed = fs.Changed
	return f, nil
}

// parseRenderFlags parses render command flags and returns the input path.
func parseRenderFlags(args []string, env *Environment) (*renderFlags, string, error) {
	f := &renderFlags{}
	fs := newFlagSet("render", printRenderUsage, env)

	fs.BoolVar(&f.title, "title", false, "print the title instead of the HTML")
	fs.BoolVar(&f.page, "page", false, "fill the page template")
	addCommonFlags(fs, &f.common)
	addRenderOptionFlags(fs, &f.render)
	addAssetFlags(fs, &f.assets)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, "", err
	}
	if fs.NArg() != 1 {
		return nil, "", fmt.Errorf("%w: render takes one file (or - for stdin)", ErrUsage)
	}
	f.changed = fs.Changed
	return f, fs.Arg(0), nil
}
