// Package highlight renders fenced code through chroma with CSS classes.
package highlight

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownStyle indicates a chroma style name that is not registered.
var ErrUnknownStyle = errors.New("unknown highlight style")

// Highlighter turns source code into class-annotated HTML spans. The output
// has no surrounding <pre>; the caller owns the wrapper elements.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// New creates a Highlighter for the named chroma style.
func New(styleName string) (*Highlighter, error) {
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, styleName)
	}
	return &Highlighter{
		style: style,
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
	}, nil
}

// Highlight formats code written in lang. It reports false when no lexer
// knows lang, in which case the caller should emit the code verbatim.
func (h *Highlighter) Highlight(lang, code string) (string, bool, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", false, nil
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", false, fmt.Errorf("tokenising %s code: %w", lang, err)
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, it); err != nil {
		return "", false, fmt.Errorf("formatting %s code: %w", lang, err)
	}
	return b.String(), true, nil
}

// WriteCSS writes the stylesheet for the highlighter's classes.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

// Styles lists the registered style names.
func Styles() []string {
	return styles.Names()
}
