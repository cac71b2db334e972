// Package block partitions markdown text into typed blocks.
//
// Container blocks (Document, Quote and the two list types) keep their raw
// sub-markdown in Content. Their children are produced on demand by running
// a Parser over Content, or over each list item returned by Items.
package block

import (
	"fmt"
	"strings"
)

// Type identifies the kind of a Block.
type Type int

// Block types.
const (
	Document Type = iota
	Paragraph
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

var typeNames = []string{
	Document:      "Document",
	Paragraph:     "Paragraph",
	Heading:       "Heading",
	Code:          "Code",
	Quote:         "Quote",
	UnorderedList: "UnorderedList",
	OrderedList:   "OrderedList",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// IsContainer reports whether blocks of type t hold sub-markdown.
func (t Type) IsContainer() bool {
	switch t {
	case Document, Quote, UnorderedList, OrderedList:
		return true
	}
	return false
}

// Block is one structural unit of a document.
//
// Content depends on Type:
//   - Heading: the trimmed source line, including the leading '#' run
//   - Code: everything between the fences; the first line is the language
//   - Quote: the quoted lines with their "> " markers removed
//   - UnorderedList, OrderedList: the raw lines, markers included
//   - Paragraph: the trimmed lines joined by '\n'
//   - Document: the whole input
type Block struct {
	Type    Type
	Content string
}

func (b Block) String() string {
	return fmt.Sprintf("%s(%q)", b.Type, b.Content)
}

// Level returns the heading level, or 0 for other block types.
func (b Block) Level() int {
	if b.Type != Heading {
		return 0
	}
	return len(b.Content) - len(strings.TrimLeft(b.Content, "#"))
}

// Text returns the heading text without its '#' run, or Content for other
// leaf blocks.
func (b Block) Text() string {
	if b.Type != Heading {
		return b.Content
	}
	return strings.TrimSpace(b.Content[b.Level():])
}

// Language returns the language tag of a code block.
func (b Block) Language() string {
	if b.Type != Code {
		return ""
	}
	lang, _, _ := strings.Cut(b.Content, "\n")
	return strings.TrimSpace(lang)
}

// Code returns the literal body of a code block, without the language line.
func (b Block) Code() string {
	if b.Type != Code {
		return ""
	}
	_, body, _ := strings.Cut(b.Content, "\n")
	return body
}

// Items splits a list block into item bodies. Each item runs from one marker
// at the list's indentation to the next one; the marker is removed and
// continuation lines lose up to the item's content offset of indentation.
func (b Block) Items() []string {
	var marker func(string) (indent, width int, ok bool)
	switch b.Type {
	case UnorderedList:
		marker = unorderedMarker
	case OrderedList:
		marker = orderedMarker
	default:
		return nil
	}

	lines := strings.Split(b.Content, "\n")
	listIndent, _, ok := marker(lines[0])
	if !ok {
		return nil
	}

	var items []string
	var current []string
	offset := 0
	for _, line := range lines {
		if indent, width, ok := marker(line); ok && indent == listIndent {
			if current != nil {
				items = append(items, strings.Join(current, "\n"))
			}
			offset = indent + width
			current = []string{line[offset:]}
			continue
		}
		current = append(current, dedent(line, offset))
	}
	if current != nil {
		items = append(items, strings.Join(current, "\n"))
	}
	return items
}

// dedent removes at most n leading spaces or tabs.
func dedent(line string, n int) string {
	i := 0
	for i < n && i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[i:]
}
