// Package site builds a static site: it copies the static tree into the
// public directory and turns every markdown file of the content tree into
// an HTML page.
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// StylesheetName is the file written into the public directory unless the
// static tree provides one.
const StylesheetName = "style.css"

// MaxDefaultWorkers caps the worker count picked from runtime.NumCPU.
const MaxDefaultWorkers = 8

const filePermissions = 0o644 // rw-r--r--: pages are meant to be served

// Converter renders pages. *md2html.Converter implements it.
type Converter interface {
	Convert(ctx context.Context, input md2html.Input) (*md2html.Result, error)
	LoadTemplate(nameOrPath string) (string, error)
	Stylesheet() (string, error)
}

var _ Converter = (*md2html.Converter)(nil)

// Options configures Build.
type Options struct {
	Content  string // markdown tree
	Static   string // copied as is (optional)
	Public   string // output tree
	Template string // template name or path (empty = default page)
	Workers  int    // 0 = runtime.NumCPU, capped at MaxDefaultWorkers
	Clean    bool   // empty Public first
	// InlineStyle embeds the stylesheet in every page instead of writing
	// style.css.
	InlineStyle bool
	Logger      *slog.Logger
}

// Page is the outcome of one markdown file.
type Page struct {
	Source   string // path below Content
	Output   string // path below Public
	Title    string
	Bytes    int
	Written  bool // false when the existing file was identical
	Err      error
	Duration time.Duration
}

// Report summarizes a build.
type Report struct {
	Pages  []Page
	Static fileutil.CopyStats
	Style  bool // style.css was written
}

// Written counts pages whose file changed.
func (r *Report) Written() int {
	return r.count(func(p Page) bool { return p.Err == nil && p.Written })
}

// Unchanged counts pages that already matched the generated output.
func (r *Report) Unchanged() int {
	return r.count(func(p Page) bool { return p.Err == nil && !p.Written })
}

// Failed counts pages that could not be built.
func (r *Report) Failed() int {
	return r.count(func(p Page) bool { return p.Err != nil })
}

// PageBytes sums the size of every generated page.
func (r *Report) PageBytes() int64 {
	var n int64
	for _, p := range r.Pages {
		if p.Err == nil {
			n += int64(p.Bytes)
		}
	}
	return n
}

func (r *Report) count(match func(Page) bool) int {
	n := 0
	for _, p := range r.Pages {
		if match(p) {
			n++
		}
	}
	return n
}

type job struct {
	source string // path on disk
	rel    string // path below Content
	output string
}

// Build generates the site described by opts. Setup failures (options,
// directories, template) return a nil Report. Page failures do not stop
// the build: every page is attempted, and the returned error wraps
// ErrPagesFailed together with each page error.
func Build(ctx context.Context, conv Converter, opts Options) (*Report, error) {
	if opts.Content == "" || opts.Public == "" {
		return nil, fmt.Errorf("%w: content and public directories are required", ErrInvalidOptions)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	info, err := os.Stat(opts.Content)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrContentNotFound, opts.Content)
	case err != nil:
		return nil, fmt.Errorf("reading content directory: %w", err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrContentNotFound, opts.Content)
	}

	tmpl, err := conv.LoadTemplate(opts.Template)
	if err != nil {
		return nil, err
	}

	if opts.Clean {
		logger.Debug("cleaning public directory", "dir", opts.Public)
		if err := fileutil.ResetDir(opts.Public); err != nil {
			return nil, err
		}
	} else if err := os.MkdirAll(opts.Public, 0o750); err != nil {
		return nil, fmt.Errorf("creating public directory: %w", err)
	}

	report := &Report{}
	if opts.Static != "" {
		stats, err := fileutil.CopyTree(opts.Static, opts.Public)
		if err != nil {
			return nil, err
		}
		report.Static = stats
		logger.Info("copied static files", "dir", opts.Static, "files", stats.Files)
	}

	var inline string
	if opts.InlineStyle {
		if inline, err = conv.Stylesheet(); err != nil {
			return nil, err
		}
	} else if report.Style, err = writeStylesheet(conv, opts); err != nil {
		return nil, err
	}

	jobs, err := discoverPages(opts.Content, opts.Public, logger)
	if err != nil {
		return nil, err
	}

	b := &builder{conv: conv, tmpl: tmpl, css: inline, logger: logger}
	report.Pages = b.run(ctx, jobs, workerCount(opts.Workers, len(jobs)))

	var errs []error
	for _, p := range report.Pages {
		if p.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.Source, p.Err))
		}
	}
	if len(errs) > 0 {
		return report, fmt.Errorf("%w (%d of %d): %w", ErrPagesFailed, len(errs), len(report.Pages), errors.Join(errs...))
	}
	return report, nil
}

// writeStylesheet writes the converter's stylesheet unless the static tree
// already put one in place.
func writeStylesheet(conv Converter, opts Options) (bool, error) {
	path := filepath.Join(opts.Public, StylesheetName)
	if opts.Static != "" && fileutil.FileExists(filepath.Join(opts.Static, StylesheetName)) {
		return false, nil
	}
	css, err := conv.Stylesheet()
	if err != nil {
		return false, err
	}
	written, err := fileutil.WriteFileIfChanged(path, []byte(css), filePermissions)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	return written, nil
}

// discoverPages lists the markdown files below content in walk order.
// Other files are skipped with a warning; put assets in the static tree.
func discoverPages(content, public string, logger *slog.Logger) ([]job, error) {
	var jobs []job
	err := filepath.WalkDir(content, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(content, path)
		if err != nil {
			return err
		}
		if !fileutil.HasExtension(path, "md") {
			logger.Warn("skipping non-markdown file", "file", rel)
			return nil
		}
		outRel, err := fileutil.ChangeExtension(rel, "html")
		if err != nil {
			return err
		}
		jobs = append(jobs, job{source: path, rel: rel, output: filepath.Join(public, outRel)})
		return nil
	})
	return jobs, err
}

func workerCount(requested, pages int) int {
	n := requested
	if n <= 0 {
		n = min(runtime.NumCPU(), MaxDefaultWorkers)
	}
	return max(1, min(n, pages))
}

// builder holds what every page of a build shares.
type builder struct {
	conv   Converter
	tmpl   string
	css    string // inlined into each page when set
	logger *slog.Logger
}

// run converts jobs with n workers. Results keep the order of jobs.
func (b *builder) run(ctx context.Context, jobs []job, n int) []Page {
	if len(jobs) == 0 {
		return nil
	}

	pages := make([]Page, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < n; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if err := ctx.Err(); err != nil {
					pages[idx] = Page{Source: jobs[idx].rel, Output: jobs[idx].output, Err: err}
					continue
				}
				pages[idx] = b.page(ctx, jobs[idx])
				b.log(pages[idx])
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return pages
}

func (b *builder) page(ctx context.Context, j job) (page Page) {
	start := time.Now()
	page = Page{Source: j.rel, Output: j.output}
	defer func() { page.Duration = time.Since(start) }()

	content, err := os.ReadFile(j.source) // #nosec G304 -- discovered path
	if err != nil {
		page.Err = fmt.Errorf("%w: %v", ErrReadPage, err)
		return page
	}

	base := filepath.Base(j.rel)
	res, err := b.conv.Convert(ctx, md2html.Input{
		Markdown:     string(content),
		Template:     b.tmpl,
		DefaultTitle: strings.TrimSuffix(base, filepath.Ext(base)),
	})
	if err != nil {
		page.Err = err
		return page
	}
	page.Title = res.Title

	html, err := pipeline.RewriteMarkdownLinks(res.Page)
	if err != nil {
		page.Err = fmt.Errorf("rewriting links: %w", err)
		return page
	}

	html = pipeline.InjectStylesheet(html, b.css)
	page.Bytes = len(html)
	if page.Written, err = fileutil.WriteFileIfChanged(j.output, []byte(html), filePermissions); err != nil {
		page.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	return page
}

func (b *builder) log(p Page) {
	switch {
	case p.Err != nil:
		b.logger.Error("page failed", "source", p.Source, "error", p.Err)
	case p.Written:
		b.logger.Info("page written", "source", p.Source, "output", p.Output, "duration", p.Duration)
	default:
		b.logger.Debug("page unchanged", "source", p.Source)
	}
}
