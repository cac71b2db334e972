package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/htmlnode"
	"github.com/alnah/go-md2html/internal/inline"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for rendering. Errors returned by this package wrap them;
// test with errors.Is.
var (
	// ErrStructure indicates markdown that yields an element with nothing
	// in it: an empty document, an empty list item or an empty code block.
	ErrStructure = htmlnode.ErrStructure

	// ErrSyntax indicates an unpaired *, ** or ` marker.
	ErrSyntax = inline.ErrSyntax

	// ErrNestingTooDeep indicates quotes and lists nested past the
	// configured depth.
	ErrNestingTooDeep = pipeline.ErrNestingTooDeep
)

// Sentinel errors for templates and assets.
var (
	ErrMissingPlaceholder = errors.New("template missing placeholder")
	ErrStyleNotFound      = assets.ErrStyleNotFound
	ErrTemplateNotFound   = assets.ErrTemplateNotFound
	ErrInvalidAssetPath   = errors.New("invalid asset path")
	ErrHighlightStyle     = errors.New("unknown highlight style")
)
