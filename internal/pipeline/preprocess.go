package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

const byteOrderMark = "\uFEFF"

// Normalize prepares raw markdown for parsing: it drops a leading byte order
// mark, converts \r\n and \r to \n, and applies Unicode NFC so that composed
// and decomposed input render identically.
func Normalize(content string) string {
	content = strings.TrimPrefix(content, byteOrderMark)
	content = crlfOrCR.ReplaceAllString(content, "\n")
	return norm.NFC.String(content)
}
