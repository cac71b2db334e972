// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// ForConfigNotFound suggests --config and the user config location among
// searchedPaths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, config.AppDir) {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the styles that do exist.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForTemplate reminds of the placeholders a page template needs.
func ForTemplate() string {
	return format("templates live in <assets>/templates/<name>.html and use {{ Title }} and {{ Content }}")
}

// ForSyntax explains unpaired inline markers.
func ForSyntax() string {
	return formatHints([]string{
		"every *, ** and ` needs a closing partner in the same block",
		"put literal markers inside a fenced code block",
	})
}

// ForStructure lists the constructs that render to an empty element.
func ForStructure() string {
	return format("look for an empty file, an empty list item or an empty code block")
}

// ForNestingTooDeep suggests raising the render depth.
func ForNestingTooDeep() string {
	return format("flatten nested quotes and lists or raise render.maxDepth")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
