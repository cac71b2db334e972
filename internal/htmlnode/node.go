// Package htmlnode models rendered HTML as a tree of Leaf and Parent nodes.
//
// Nodes are built bottom-up by the pipeline and rendered once. Render checks
// the structural invariants while it walks the tree and fails the whole call
// on the first violation, so a caller never sees a partially closed tag.
package htmlnode

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrStructure indicates a node tree that cannot be rendered.
var ErrStructure = errors.New("invalid node structure")

// voidElements have no closing tag; their content lives in attributes.
var voidElements = map[string]bool{
	"img": true,
	"br":  true,
	"hr":  true,
}

// Node is either a *Leaf or a *Parent.
type Node interface {
	node()
}

// Leaf is a text-bearing node. A Leaf without a tag is raw passthrough text.
// Value must not be empty. Void elements (img) keep their text in Value for
// that invariant and emit it through their attributes only.
type Leaf struct {
	Tag        string
	Value      string
	Attributes map[string]string
}

// Parent is a tag with at least one child.
type Parent struct {
	Tag        string
	Children   []Node
	Attributes map[string]string
}

func (*Leaf) node()   {}
func (*Parent) node() {}

// Text returns a tagless Leaf.
func Text(value string) *Leaf {
	return &Leaf{Value: value}
}

// Render produces the HTML for n.
func Render(n Node) (string, error) {
	var b strings.Builder
	if err := write(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func write(b *strings.Builder, n Node) error {
	switch n := n.(type) {
	case *Leaf:
		return writeLeaf(b, n)
	case *Parent:
		return writeParent(b, n)
	case nil:
		return fmt.Errorf("%w: nil node", ErrStructure)
	default:
		return fmt.Errorf("%w: unknown node type %T", ErrStructure, n)
	}
}

func writeLeaf(b *strings.Builder, l *Leaf) error {
	if l.Value == "" {
		return fmt.Errorf("%w: leaf <%s> without value", ErrStructure, l.Tag)
	}
	if l.Tag == "" {
		b.WriteString(l.Value)
		return nil
	}
	openTag(b, l.Tag, l.Attributes)
	if voidElements[l.Tag] {
		return nil
	}
	b.WriteString(l.Value)
	closeTag(b, l.Tag)
	return nil
}

func writeParent(b *strings.Builder, p *Parent) error {
	if p.Tag == "" {
		return fmt.Errorf("%w: parent without tag", ErrStructure)
	}
	if len(p.Children) == 0 {
		return fmt.Errorf("%w: parent <%s> without children", ErrStructure, p.Tag)
	}
	openTag(b, p.Tag, p.Attributes)
	for _, child := range p.Children {
		if err := write(b, child); err != nil {
			return err
		}
	}
	closeTag(b, p.Tag)
	return nil
}

func openTag(b *strings.Builder, tag string, attrs map[string]string) {
	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteString(attributesToHTML(attrs))
	b.WriteByte('>')
}

func closeTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

// attributesToHTML renders attributes in key order, each preceded by a space.
func attributesToHTML(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, ` %s="%s"`, k, attrs[k])
	}
	return b.String()
}
