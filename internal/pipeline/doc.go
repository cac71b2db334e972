// Package pipeline turns markdown into an HTML node tree.
//
// The stages run in order:
//   - preprocessing (line endings, Unicode normalization)
//   - block partitioning and inline tokenizing, via the block and inline packages
//   - assembly of the htmlnode tree, with optional heading ids and highlighting
//   - link rewriting and stylesheet inlining for pages written into a site
//
// Rendering the tree to a string is left to htmlnode.Render; template
// substitution lives in the root md2html package.
package pipeline
