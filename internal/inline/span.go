// Package inline tokenizes the text of a leaf block into typed spans.
package inline

import "fmt"

// Type identifies the inline role of a Span.
type Type int

// Span types, in the order the tokenizer extracts them after Plain.
const (
	Plain Type = iota
	Bold
	Italic
	Code
	Link
	Image
)

var typeNames = []string{
	Plain:  "Plain",
	Bold:   "Bold",
	Italic: "Italic",
	Code:   "Code",
	Link:   "Link",
	Image:  "Image",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Span is a run of inline text. Target holds the URL of links and images.
type Span struct {
	Text   string
	Type   Type
	Target string
}

func (s Span) String() string {
	if s.Target != "" {
		return fmt.Sprintf("%s(%q, %q)", s.Type, s.Text, s.Target)
	}
	return fmt.Sprintf("%s(%q)", s.Type, s.Text)
}
