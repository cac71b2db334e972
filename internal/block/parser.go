package block

import (
	"log/slog"
	"regexp"
	"strings"
)

const fence = "```"

// Line classifiers. Every block may be indented.
var (
	headingPattern   = regexp.MustCompile(`^[ \t]*#{1,6} [ \t]*\S`)
	fencePattern     = regexp.MustCompile("^[ \t]*" + fence)
	quotePattern     = regexp.MustCompile(`^[ \t]*> `)
	unorderedPattern = regexp.MustCompile(`^([ \t]*)[*-] `)
	orderedPattern   = regexp.MustCompile(`^([ \t]*)[0-9]+\. `)
)

// Parser splits text into blocks. Warnings go to the logger it was created
// with.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a Parser. A nil logger discards warnings.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{logger: logger}
}

// Parse returns the blocks of text in order. Blank or empty text yields no
// blocks.
func (p *Parser) Parse(text string) []Block {
	var blocks []Block
	rest := text
	for {
		rest = skipBlankLines(rest)
		if rest == "" {
			return blocks
		}
		b, n := p.next(rest, lineNumber(text, rest))
		blocks = append(blocks, b)
		rest = rest[n:]
	}
}

// next extracts the block at the front of rest and returns it with the
// number of bytes consumed.
func (p *Parser) next(rest string, line int) (Block, int) {
	first, _ := cutLine(rest)
	switch {
	case headingPattern.MatchString(first):
		return Block{Type: Heading, Content: strings.TrimSpace(first)}, lineEnd(rest)
	case fencePattern.MatchString(first):
		return p.code(rest, line)
	case quotePattern.MatchString(first):
		return quote(rest)
	case isUnorderedItem(first):
		return list(rest, UnorderedList, unorderedMarker)
	case isOrderedItem(first):
		return list(rest, OrderedList, orderedMarker)
	default:
		return paragraph(rest)
	}
}

// code reads a fenced block. The block closes at the first later line that
// starts with a fence, or at a line whose text ends with one. Without a
// closing fence the rest of the input becomes the block.
func (p *Parser) code(rest string, line int) (Block, int) {
	start := strings.Index(rest, fence) + len(fence)
	for pos := start; pos < len(rest); {
		l, _ := cutLine(rest[pos:])
		if bodyEnd, fenceEnd, ok := closingFence(l, pos == start); ok {
			return Block{Type: Code, Content: rest[start : pos+bodyEnd]}, pos + fenceEnd
		}
		pos += len(l) + 1
	}

	b := Block{Type: Code, Content: rest[start:]}
	p.logger.Warn("unterminated code fence", "line", line, "language", b.Language())
	return b, len(rest)
}

// closingFence reports whether line closes a code block, with the offsets
// where the code ends and where the fence ends. The opening line can only
// close its own block with a trailing fence.
func closingFence(line string, opening bool) (bodyEnd, fenceEnd int, ok bool) {
	if !opening && fencePattern.MatchString(line) {
		return 0, strings.Index(line, fence) + len(fence), true
	}
	if trimmed := strings.TrimRight(line, " \t"); strings.HasSuffix(trimmed, fence) {
		return len(trimmed) - len(fence), len(trimmed), true
	}
	return 0, 0, false
}

// quote collects contiguous "> " lines and strips their markers.
func quote(rest string) (Block, int) {
	var lines []string
	n := 0
	for tail := rest; tail != ""; {
		line, next := cutLine(tail)
		loc := quotePattern.FindStringIndex(line)
		if loc == nil {
			break
		}
		lines = append(lines, line[loc[1]:])
		n += len(tail) - len(next)
		tail = next
	}
	return Block{Type: Quote, Content: strings.Join(lines, "\n")}, n
}

// list collects the lines of one list: markers at the first marker's
// indentation and anything indented deeper. A blank line ends the list.
func list(rest string, typ Type, marker func(string) (int, int, bool)) (Block, int) {
	first, _ := cutLine(rest)
	listIndent, _, _ := marker(first)

	var lines []string
	n := 0
	for tail := rest; tail != ""; {
		line, next := cutLine(tail)
		if isBlank(line) {
			break
		}
		indent, _, ok := marker(line)
		if !(ok && indent == listIndent) && indentation(line) <= listIndent {
			break
		}
		lines = append(lines, line)
		n += len(tail) - len(next)
		tail = next
	}
	return Block{Type: typ, Content: strings.Join(lines, "\n")}, n
}

// paragraph runs until a blank line or a line that starts another block.
func paragraph(rest string) (Block, int) {
	var lines []string
	n := 0
	for tail := rest; tail != ""; {
		line, next := cutLine(tail)
		if isBlank(line) || (len(lines) > 0 && startsBlock(line)) {
			break
		}
		lines = append(lines, strings.TrimSpace(line))
		n += len(tail) - len(next)
		tail = next
	}
	return Block{Type: Paragraph, Content: strings.Join(lines, "\n")}, n
}

func startsBlock(line string) bool {
	return headingPattern.MatchString(line) ||
		fencePattern.MatchString(line) ||
		quotePattern.MatchString(line) ||
		isUnorderedItem(line) ||
		isOrderedItem(line)
}

func isUnorderedItem(line string) bool {
	_, _, ok := unorderedMarker(line)
	return ok
}

func isOrderedItem(line string) bool {
	_, _, ok := orderedMarker(line)
	return ok
}

// unorderedMarker reports the indentation of a "* " or "- " marker and the
// marker's width including its trailing space.
func unorderedMarker(line string) (indent, width int, ok bool) {
	return markerAt(unorderedPattern, line)
}

// orderedMarker is unorderedMarker for "<digits>. " markers.
func orderedMarker(line string) (indent, width int, ok bool) {
	return markerAt(orderedPattern, line)
}

func markerAt(re *regexp.Regexp, line string) (indent, width int, ok bool) {
	m := re.FindStringSubmatchIndex(line)
	if m == nil {
		return 0, 0, false
	}
	indent = m[3] - m[2]
	return indent, m[1] - indent, true
}

// cutLine splits off the first line, dropping its '\n'.
func cutLine(s string) (line, rest string) {
	line, rest, _ = strings.Cut(s, "\n")
	return line, rest
}

// lineEnd is the length of the first line including its '\n'.
func lineEnd(s string) int {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return i + 1
	}
	return len(s)
}

func skipBlankLines(s string) string {
	for s != "" {
		line, rest := cutLine(s)
		if !isBlank(line) {
			return s
		}
		s = rest
	}
	return ""
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// indentation counts leading spaces and tabs.
func indentation(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// lineNumber is the 1-based line of rest within text, rest being a suffix.
func lineNumber(text, rest string) int {
	return strings.Count(text[:len(text)-len(rest)], "\n") + 1
}
