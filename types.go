package md2html

import "log/slog"

// Placeholders substituted in page templates.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// Input contains conversion parameters.
type Input struct {
	Markdown     string // Markdown content
	Template     string // Page template (optional, empty = fragment only)
	DefaultTitle string // Title when the markdown has no level-1 heading
}

// Result holds the output of one conversion.
type Result struct {
	Title   string // Extracted title, or Input.DefaultTitle
	Content string // HTML fragment under a single <div>
	Page    string // Template with placeholders substituted (empty without a template)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	logger         *slog.Logger
	headingIDs     bool
	highlightStyle string
	maxDepth       int
	assetPath      string
	style          string
}

// WithLogger sends warnings (unterminated code fences, missing titles,
// dropped links) to logger instead of stderr.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = logger
	}
}

// WithHeadingIDs adds an anchor id to every heading.
func WithHeadingIDs(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.headingIDs = enabled
	}
}

// WithHighlight highlights fenced code that names its language, using the
// named chroma style. An empty name disables highlighting.
func WithHighlight(style string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = style
	}
}

// WithMaxDepth limits how deeply quotes and lists may nest.
// Panics if depth <= 0 (programmer error, similar to time.NewTicker).
func WithMaxDepth(depth int) Option {
	if depth <= 0 {
		panic("md2html: WithMaxDepth depth must be positive")
	}
	return func(c *Converter) {
		c.cfg.maxDepth = depth
	}
}

// WithAssetPath overrides built-in templates and styles with the ones found
// in dir (styles/{name}.css, templates/{name}.html).
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithStyle selects the stylesheet returned by Stylesheet: a style name,
// a path to a .css file, or CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.style = style
	}
}
