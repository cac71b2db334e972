package pipeline

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/net/html"

	"github.com/alnah/go-md2html/internal/htmlnode"
)

// render assembles and renders markdown with a.
func render(t *testing.T, a *Assembler, markdown string) (string, error) {
	t.Helper()

	root, err := a.Assemble(markdown)
	if err != nil {
		return "", err
	}
	return htmlnode.Render(root)
}

// assertHTML fails with a line diff when got differs from want.
func assertHTML(t *testing.T, want, got string) {
	t.Helper()

	if got == want {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.ReplaceAll(want, "><", ">\n<")),
		B:        difflib.SplitLines(strings.ReplaceAll(got, "><", ">\n<")),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	t.Errorf("HTML mismatch:\n%s", diff)
}

var voidTags = map[string]bool{"img": true, "br": true, "hr": true}

// assertBalanced checks that every opened element is closed in order.
func assertBalanced(t *testing.T, doc string) {
	t.Helper()

	z := html.NewTokenizer(strings.NewReader(doc))
	var open []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				t.Fatalf("tokenizing %q: %v", doc, z.Err())
			}
			if len(open) != 0 {
				t.Errorf("unclosed elements %v in %q", open, doc)
			}
			return
		case html.StartTagToken:
			name, _ := z.TagName()
			if !voidTags[string(name)] {
				open = append(open, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(open) == 0 || open[len(open)-1] != string(name) {
				t.Errorf("unexpected </%s> with open %v in %q", name, open, doc)
				return
			}
			open = open[:len(open)-1]
		}
	}
}
