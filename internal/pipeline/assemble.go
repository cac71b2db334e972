package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shurcooL/sanitized_anchor_name"

	"github.com/alnah/go-md2html/internal/block"
	"github.com/alnah/go-md2html/internal/htmlnode"
	"github.com/alnah/go-md2html/internal/inline"
)

// ErrNestingTooDeep indicates quotes and lists nested past the assembler's
// depth limit.
var ErrNestingTooDeep = errors.New("document nesting too deep")

// DefaultMaxDepth bounds container nesting when no limit is configured.
const DefaultMaxDepth = 64

// Highlighter formats the body of a fenced code block. It reports false
// when it does not know the language.
type Highlighter interface {
	Highlight(lang, code string) (string, bool, error)
}

// Assembler builds htmlnode trees from markdown.
type Assembler struct {
	blocks      *block.Parser
	spans       *inline.Parser
	highlighter Highlighter
	headingIDs  bool
	maxDepth    int
	logger      *slog.Logger
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithHighlighter routes fenced code with a language tag through h.
func WithHighlighter(h Highlighter) AssemblerOption {
	return func(a *Assembler) {
		a.highlighter = h
	}
}

// WithHeadingIDs adds an anchor id derived from the text to every heading.
func WithHeadingIDs(enabled bool) AssemblerOption {
	return func(a *Assembler) {
		a.headingIDs = enabled
	}
}

// WithMaxDepth sets the container nesting limit. Values below 1 keep the
// default.
func WithMaxDepth(depth int) AssemblerOption {
	return func(a *Assembler) {
		if depth > 0 {
			a.maxDepth = depth
		}
	}
}

// NewAssembler creates an Assembler. A nil logger discards warnings.
func NewAssembler(logger *slog.Logger, opts ...AssemblerOption) *Assembler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &Assembler{
		blocks:   block.NewParser(logger),
		spans:    inline.NewParser(),
		maxDepth: DefaultMaxDepth,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble returns the node tree of markdown under a single root <div>.
// The tree is not validated; htmlnode.Render reports structural problems
// such as an empty document or an empty list item.
func (a *Assembler) Assemble(markdown string) (*htmlnode.Parent, error) {
	asm := &assembly{Assembler: a}
	if a.headingIDs {
		asm.ids = make(map[string]int)
	}
	return asm.container(block.Block{Type: block.Document, Content: markdown}, 0)
}

// assembly holds the state of one Assemble call.
type assembly struct {
	*Assembler
	ids map[string]int
}

var containerTags = map[block.Type]string{
	block.Document:      "div",
	block.Quote:         "blockquote",
	block.UnorderedList: "ul",
	block.OrderedList:   "ol",
}

func (s *assembly) container(b block.Block, depth int) (*htmlnode.Parent, error) {
	if depth >= s.maxDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrNestingTooDeep, s.maxDepth)
	}

	parent := &htmlnode.Parent{Tag: containerTags[b.Type]}
	switch b.Type {
	case block.UnorderedList, block.OrderedList:
		for _, item := range b.Items() {
			children, err := s.children(item, depth+1)
			if err != nil {
				return nil, err
			}
			parent.Children = append(parent.Children, &htmlnode.Parent{Tag: "li", Children: children})
		}
	default:
		children, err := s.children(b.Content, depth+1)
		if err != nil {
			return nil, err
		}
		parent.Children = children
	}
	return parent, nil
}

func (s *assembly) children(markdown string, depth int) ([]htmlnode.Node, error) {
	var nodes []htmlnode.Node
	for _, b := range s.blocks.Parse(markdown) {
		n, err := s.node(b, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (s *assembly) node(b block.Block, depth int) (htmlnode.Node, error) {
	switch b.Type {
	case block.Document, block.Quote, block.UnorderedList, block.OrderedList:
		return s.container(b, depth)
	case block.Paragraph:
		return s.paragraph(b.Content)
	case block.Heading:
		return s.heading(b)
	case block.Code:
		return s.code(b), nil
	default:
		s.logger.Warn("unknown block type, rendering as paragraph", "type", b.Type.String())
		return s.paragraph(b.Content)
	}
}

func (s *assembly) paragraph(text string) (htmlnode.Node, error) {
	children, _, err := s.inline(text)
	if err != nil {
		return nil, err
	}
	return &htmlnode.Parent{Tag: "p", Children: children}, nil
}

func (s *assembly) heading(b block.Block) (htmlnode.Node, error) {
	children, plain, err := s.inline(b.Text())
	if err != nil {
		return nil, err
	}
	h := &htmlnode.Parent{Tag: "h" + strconv.Itoa(b.Level()), Children: children}
	if s.ids != nil {
		if id := s.anchor(plain); id != "" {
			h.Attributes = map[string]string{"id": id}
		}
	}
	return h, nil
}

// anchor derives a heading id, suffixing repeats with -1, -2 and so on.
func (s *assembly) anchor(text string) string {
	id := sanitized_anchor_name.Create(text)
	if id == "" {
		return ""
	}
	n := s.ids[id]
	s.ids[id] = n + 1
	if n == 0 {
		return id
	}
	return id + "-" + strconv.Itoa(n)
}

func (s *assembly) code(b block.Block) htmlnode.Node {
	lang, body := b.Language(), b.Code()

	code := &htmlnode.Parent{Tag: "code"}
	pre := &htmlnode.Parent{Tag: "pre", Children: []htmlnode.Node{code}}
	if lang != "" {
		code.Attributes = map[string]string{"class": "language-" + lang}
	}

	if s.highlighter != nil && lang != "" {
		out, ok, err := s.highlighter.Highlight(lang, body)
		switch {
		case err != nil:
			s.logger.Warn("highlighting failed, emitting plain code", "language", lang, "error", err)
		case ok:
			pre.Attributes = map[string]string{"class": "chroma"}
			code.Children = []htmlnode.Node{htmlnode.Text(out)}
			return pre
		}
	}

	code.Children = []htmlnode.Node{htmlnode.Text(body)}
	return pre
}

// inline converts text to nodes and also returns the text without markup.
func (s *assembly) inline(text string) ([]htmlnode.Node, string, error) {
	spans, err := s.spans.TextToSpans(text)
	if err != nil {
		return nil, "", err
	}

	var plain strings.Builder
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, span := range spans {
		plain.WriteString(span.Text)
		nodes = append(nodes, s.spanNode(span))
	}
	return nodes, plain.String(), nil
}

func (s *assembly) spanNode(span inline.Span) htmlnode.Node {
	switch span.Type {
	case inline.Plain:
		return htmlnode.Text(span.Text)
	case inline.Bold:
		return &htmlnode.Leaf{Tag: "b", Value: span.Text}
	case inline.Italic:
		return &htmlnode.Leaf{Tag: "i", Value: span.Text}
	case inline.Code:
		return &htmlnode.Leaf{Tag: "code", Value: span.Text}
	case inline.Link:
		return &htmlnode.Leaf{Tag: "a", Value: span.Text, Attributes: map[string]string{"href": span.Target}}
	case inline.Image:
		return &htmlnode.Leaf{
			Tag:        "img",
			Value:      span.Text,
			Attributes: map[string]string{"src": span.Target, "alt": span.Text},
		}
	default:
		s.logger.Warn("unknown span type, rendering as text", "type", span.Type.String())
		return htmlnode.Text(span.Text)
	}
}
