package main

import (
	"errors"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/site"
)

// Exit codes for md2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful build
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or assets
	ExitIO       = 3 // File not found, permission denied
	ExitMarkdown = 4 // Markdown that cannot be rendered
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Markdown errors (exit 4)
	if md2html.IsMarkdownError(err) {
		return ExitMarkdown
	}

	// Usage/config/asset errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2html.ErrStyleNotFound) ||
		errors.Is(err, md2html.ErrTemplateNotFound) ||
		errors.Is(err, md2html.ErrMissingPlaceholder) ||
		errors.Is(err, md2html.ErrInvalidAssetPath) ||
		errors.Is(err, md2html.ErrHighlightStyle) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, fileutil.ErrUnsafeDirectory) ||
		errors.Is(err, site.ErrInvalidOptions) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, site.ErrContentNotFound) ||
		errors.Is(err, site.ErrReadPage) ||
		errors.Is(err, site.ErrWritePage) {
		return ExitIO
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2html.ErrSyntax):
		return hints.ForSyntax()
	case errors.Is(err, md2html.ErrStructure):
		return hints.ForStructure()
	case errors.Is(err, md2html.ErrNestingTooDeep):
		return hints.ForNestingTooDeep()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(defaultConfigName))
	case errors.Is(err, md2html.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().Styles())
	case errors.Is(err, md2html.ErrTemplateNotFound), errors.Is(err, md2html.ErrMissingPlaceholder):
		return hints.ForTemplate()
	case errors.Is(err, site.ErrWritePage), errors.Is(err, fileutil.ErrUnsafeDirectory):
		return hints.ForOutputDirectory()
	}
	return ""
}
