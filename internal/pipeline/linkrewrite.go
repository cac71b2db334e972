package pipeline

import (
	"errors"
	"io"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteMarkdownLinks points relative links at sibling markdown pages to
// the generated HTML pages: href="guide.md#setup" becomes
// href="guide.html#setup".
//
// Only the rewritten <a> tags are re-serialized; every other byte of
// content passes through unchanged.
//
// Does NOT rewrite:
//   - absolute URLs, protocol-relative URLs and root-relative paths
//   - image sources
//   - anchors within the same page
func RewriteMarkdownLinks(content string) (string, error) {
	if !strings.Contains(content, ".md") {
		return content, nil
	}

	z := html.NewTokenizer(strings.NewReader(content))
	var b strings.Builder
	b.Grow(len(content))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return b.String(), nil
			}
			return "", z.Err()
		case html.StartTagToken:
			// Token lowercases the tag in place, so keep the raw form first.
			raw := string(z.Raw())
			tok := z.Token()
			if tok.DataAtom == atom.A && rewriteHref(&tok) {
				b.WriteString(tok.String())
				continue
			}
			b.WriteString(raw)
		default:
			b.Write(z.Raw())
		}
	}
}

// rewriteHref changes a relative .md href to .html and reports whether it
// did.
func rewriteHref(tok *html.Token) bool {
	for i, attr := range tok.Attr {
		if attr.Key != "href" {
			continue
		}
		u, err := url.Parse(attr.Val)
		if err != nil || !isRelativePage(u) {
			return false
		}
		u.Path = strings.TrimSuffix(u.Path, path.Ext(u.Path)) + ".html"
		tok.Attr[i].Val = u.String()
		return true
	}
	return false
}

func isRelativePage(u *url.URL) bool {
	if u.Scheme != "" || u.Host != "" || u.Path == "" {
		return false
	}
	if strings.HasPrefix(u.Path, "/") {
		return false
	}
	return strings.EqualFold(path.Ext(u.Path), ".md")
}
