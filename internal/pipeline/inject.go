package pipeline

import "strings"

// InjectStylesheet puts css into page as a <style> element: before </head>
// when there is one, else right after the <body> start tag, else at the
// front. An empty css leaves page unchanged.
func InjectStylesheet(page, css string) string {
	if css == "" {
		return page
	}

	style := "<style>" + escapeStyle(css) + "</style>"
	lower := strings.ToLower(page)

	if i := strings.Index(lower, "</head>"); i >= 0 {
		return page[:i] + style + page[i:]
	}
	if i := strings.Index(lower, "<body"); i >= 0 {
		if end := strings.IndexByte(page[i:], '>'); end >= 0 {
			at := i + end + 1
			return page[:at] + style + page[at:]
		}
	}
	return style + page
}

// escapeStyle keeps css from closing its <style> element early.
func escapeStyle(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
