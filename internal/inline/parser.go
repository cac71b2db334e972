package inline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrSyntax indicates an unpaired inline delimiter.
var ErrSyntax = errors.New("inline syntax error")

// Precompiled patterns for the bracketed grammars.
var (
	// ![alt](url)
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^()]*)\)`)

	// [text](url); matches preceded by '!' are rejected in splitMatches
	linkPattern = regexp.MustCompile(`\[([^\[\]]*)\]\(([^()]*)\)`)
)

// delimiters run after links and images. "**" must precede "*".
var delimiters = []struct {
	marker string
	typ    Type
}{
	{"**", Bold},
	{"*", Italic},
	{"`", Code},
}

// Parser turns block text into spans. It holds no state and is safe for
// concurrent use.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// TextToSpans tokenizes text. Each stage only splits spans still tagged
// Plain, and empty Plain spans are dropped. A link or image with empty text
// is kept as is; it has nothing to render and fails node validation. An
// unpaired delimiter fails the whole call with ErrSyntax.
func (p *Parser) TextToSpans(text string) ([]Span, error) {
	spans := []Span{{Text: text, Type: Plain}}
	spans = p.splitMatches(spans, imagePattern, Image)
	spans = p.splitMatches(spans, linkPattern, Link)

	for _, d := range delimiters {
		var err error
		spans, err = splitDelimiter(spans, d.marker, d.typ)
		if err != nil {
			return nil, err
		}
	}

	return dropEmpty(spans), nil
}

// splitMatches extracts every match of re from Plain spans as a span of typ
// whose text is the first group and target the second.
func (p *Parser) splitMatches(spans []Span, re *regexp.Regexp, typ Type) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Type != Plain {
			out = append(out, s)
			continue
		}

		rest := 0
		for _, m := range re.FindAllStringSubmatchIndex(s.Text, -1) {
			start, end := m[0], m[1]
			if typ == Link && start > 0 && s.Text[start-1] == '!' {
				continue
			}
			out = append(out, Span{Text: s.Text[rest:start], Type: Plain})

			out = append(out, Span{Text: s.Text[m[2]:m[3]], Type: typ, Target: s.Text[m[4]:m[5]]})
			rest = end
		}
		out = append(out, Span{Text: s.Text[rest:], Type: Plain})
	}
	return dropEmpty(out)
}

// splitDelimiter splits Plain spans on marker; odd-numbered parts become typ.
func splitDelimiter(spans []Span, marker string, typ Type) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Type != Plain {
			out = append(out, s)
			continue
		}

		parts := strings.Split(s.Text, marker)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w: unpaired %q in %q", ErrSyntax, marker, s.Text)
		}
		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 1 {
				out = append(out, Span{Text: part, Type: typ})
			} else {
				out = append(out, Span{Text: part, Type: Plain})
			}
		}
	}
	return out, nil
}

func dropEmpty(spans []Span) []Span {
	out := spans[:0]
	for _, s := range spans {
		if s.Text != "" || s.Type != Plain {
			out = append(out, s)
		}
	}
	return out
}
