package md2html

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/highlight"
	"github.com/alnah/go-md2html/internal/htmlnode"
	"github.com/alnah/go-md2html/internal/pipeline"
)

var _ pipeline.Highlighter = (*highlight.Highlighter)(nil)

// titlePattern matches a level-1 heading line, indentation allowed. As for
// any heading, the '#' must be followed by a space.
var titlePattern = regexp.MustCompile(`(?m)^[ \t]*# [ \t]*(\S.*)$`)

// Converter renders markdown to HTML. It holds no per-call state and is
// safe for concurrent use.
type Converter struct {
	cfg         converterConfig
	logger      *slog.Logger
	loader      assets.Loader
	highlighter *highlight.Highlighter
	assembler   *pipeline.Assembler
}

// NewConverter creates a Converter. Without options it renders plain
// fragments, logs warnings to stderr and uses the embedded assets.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.cfg.logger
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}

	resolver, err := assets.NewResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.loader = resolver

	assemblerOpts := []pipeline.AssemblerOption{
		pipeline.WithHeadingIDs(c.cfg.headingIDs),
		pipeline.WithMaxDepth(c.cfg.maxDepth),
	}
	if c.cfg.highlightStyle != "" {
		h, err := highlight.New(c.cfg.highlightStyle)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHighlightStyle, err)
		}
		c.highlighter = h
		assemblerOpts = append(assemblerOpts, pipeline.WithHighlighter(h))
	}
	c.assembler = pipeline.NewAssembler(c.logger, assemblerOpts...)

	return c, nil
}

// Render converts markdown to an HTML fragment with a single <div> root.
// It fails with ErrSyntax, ErrStructure or ErrNestingTooDeep and never
// returns partial output.
func (c *Converter) Render(markdown string) (string, error) {
	root, err := c.assembler.Assemble(pipeline.Normalize(markdown))
	if err != nil {
		return "", fmt.Errorf("parsing markdown: %w", err)
	}
	out, err := htmlnode.Render(root)
	if err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return out, nil
}

// ExtractTitle returns the trimmed text of the first level-1 heading line.
// Without one it logs a warning and returns "".
func (c *Converter) ExtractTitle(markdown string) string {
	m := titlePattern.FindStringSubmatch(pipeline.Normalize(markdown))
	if m == nil {
		c.logger.Warn("no title heading")
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Convert renders input.Markdown and, when input.Template is set, fills the
// template. The context is checked before the work starts and abandons the
// wait when it is cancelled.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input.Template != "" {
		if err := ValidateTemplate(input.Template); err != nil {
			return nil, err
		}
	}

	type outcome struct {
		res *Result
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("internal error: %v", r)}
			}
		}()

		content, err := c.Render(input.Markdown)
		if err != nil {
			done <- outcome{err: err}
			return
		}
		res := &Result{Content: content, Title: c.title(input)}
		if input.Template != "" {
			res.Page = ApplyTemplate(input.Template, res.Title, res.Content)
		}
		done <- outcome{res: res}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case o := <-done:
		return o.res, o.err
	}
}

func (c *Converter) title(input Input) string {
	if m := titlePattern.FindStringSubmatch(pipeline.Normalize(input.Markdown)); m != nil {
		return strings.TrimSpace(m[1])
	}
	if input.DefaultTitle != "" {
		c.logger.Debug("no title heading, using default", "title", input.DefaultTitle)
		return input.DefaultTitle
	}
	return c.ExtractTitle(input.Markdown)
}

// LoadTemplate returns a page template by name from the asset directory
// (or the embedded defaults), or by path when nameOrPath contains a path
// separator. The template must contain {{ Content }}.
func (c *Converter) LoadTemplate(nameOrPath string) (string, error) {
	if nameOrPath == "" {
		nameOrPath = assets.DefaultTemplateName
	}

	var tmpl string
	if fileutil.IsFilePath(nameOrPath) {
		data, err := os.ReadFile(nameOrPath) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading template file %q: %w", nameOrPath, err)
		}
		tmpl = string(data)
	} else {
		var err error
		if tmpl, err = c.loader.LoadTemplate(nameOrPath); err != nil {
			return "", fmt.Errorf("loading template %q: %w", nameOrPath, err)
		}
	}

	if err := ValidateTemplate(tmpl); err != nil {
		return "", fmt.Errorf("template %q: %w", nameOrPath, err)
	}
	return tmpl, nil
}

// Stylesheet returns the CSS selected with WithStyle (the default style
// when unset), followed by the highlighting rules when highlighting is on.
func (c *Converter) Stylesheet() (string, error) {
	css, err := c.resolveStyle()
	if err != nil {
		return "", err
	}
	if c.highlighter == nil {
		return css, nil
	}

	var b strings.Builder
	b.WriteString(css)
	b.WriteString("\n")
	if err := c.highlighter.WriteCSS(&b); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return b.String(), nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
func (c *Converter) resolveStyle() (string, error) {
	input := c.cfg.style
	switch {
	case input == "":
		input = assets.DefaultStyleName
	case strings.Contains(input, "{"):
		return input, nil
	case fileutil.IsFilePath(input):
		data, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading style file %q: %w", input, err)
		}
		return string(data), nil
	}

	css, err := c.loader.LoadStyle(input)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", input, err)
	}
	return css, nil
}

// ApplyTemplate substitutes {{ Title }} and {{ Content }} in one pass, so
// placeholder text inside the title or content is left alone.
func ApplyTemplate(tmpl, title, content string) string {
	return strings.NewReplacer(TitlePlaceholder, title, ContentPlaceholder, content).Replace(tmpl)
}

// ValidateTemplate checks that tmpl has somewhere to put the content.
func ValidateTemplate(tmpl string) error {
	if !strings.Contains(tmpl, ContentPlaceholder) {
		return fmt.Errorf("%w: %s", ErrMissingPlaceholder, ContentPlaceholder)
	}
	return nil
}

// IsMarkdownError reports whether err comes from the markdown itself rather
// than from I/O or configuration.
func IsMarkdownError(err error) bool {
	return errors.Is(err, ErrSyntax) || errors.Is(err, ErrStructure) || errors.Is(err, ErrNestingTooDeep)
}
