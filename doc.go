// Package md2html converts markdown to HTML.
//
// # Quick Start
//
//	html, err := md2html.Render("# Hello\n\nWorld")
//	// <div><h1>Hello</h1><p>World</p></div>
//
//	title := md2html.ExtractTitle("# Hello\n\nWorld")
//	// Hello
//
// # Supported Markdown
//
// Blocks: headings (# to ######), fenced code with an optional language,
// block quotes ("> "), unordered ("* ", "- ") and ordered ("1. ") lists.
// Quotes and list items contain further blocks, nested by indentation.
// Everything else is a paragraph.
//
// Inline: **bold**, *italic*, `code`, [links](url) and ![images](url).
// Markers must pair up within a block: "a *b" fails with ErrSyntax rather
// than rendering a guess. Text is not HTML-escaped.
//
// # Converter
//
// Use a Converter to choose where warnings go, turn on heading anchors or
// syntax highlighting, and fill page templates:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithLogger(logger),
//	    md2html.WithHeadingIDs(true),
//	    md2html.WithHighlight("github"),
//	)
//
//	tmpl, err := conv.LoadTemplate("page")
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: content,
//	    Template: tmpl,
//	})
//	// result.Title, result.Content, result.Page
//
// Templates use {{ Title }} and {{ Content }} placeholders.
//
// # Errors
//
// Render fails as a whole, never with partial HTML:
//   - ErrSyntax: an unpaired inline marker
//   - ErrStructure: an empty document, list item or code block
//   - ErrNestingTooDeep: quotes and lists nested past WithMaxDepth
//
// Unterminated code fences and missing titles are logged as warnings.
package md2html
