// Package markup renders task descriptions into annotated HTML and counts
// the checklist items they contain.
package markup

import (
	"bytes"
	stdhtml "html"
	"log/slog"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/types"
)

// DefaultHighlightStyle is the chroma style named on highlighted blocks
const DefaultHighlightStyle = "github"

// hookPriority places the hooks ahead of goldmark's html renderer (1000)
const hookPriority = 100

// Result is the output of one render pass
type Result struct {
	HTML   string `json:"html"`
	Counts Counts `json:"counts"`
}

// Completion returns the checklist completion fraction of the pass
func (r Result) Completion() float64 {
	return r.Counts.Fraction()
}

// Renderer converts task descriptions. A Renderer is safe for concurrent
// use: every pass parses into its own document and counts into its own
// Counts value.
type Renderer struct {
	md        goldmark.Markdown
	hooks     *hookRenderer
	sanitizer *bluemonday.Policy
	ledger    *Ledger
	logger    *slog.Logger
	style     string
	unsafe    bool
}

// Option configures a Renderer
type Option func(*Renderer)

// WithSanitizer runs the converted HTML through a bluemonday UGC policy
func WithSanitizer(enabled bool) Option {
	return func(r *Renderer) {
		if enabled {
			r.sanitizer = newSanitizer()
		} else {
			r.sanitizer = nil
		}
	}
}

// WithHighlightStyle selects the chroma style for code blocks
func WithHighlightStyle(style string) Option {
	return func(r *Renderer) {
		if style != "" {
			r.style = style
		}
	}
}

// WithUnsafeHTML lets raw HTML and dangerous link schemes through the converter
func WithUnsafeHTML(unsafe bool) Option {
	return func(r *Renderer) {
		r.unsafe = unsafe
	}
}

// WithLedger records the counts of every pass in l
func WithLedger(l *Ledger) Option {
	return func(r *Renderer) {
		r.ledger = l
	}
}

// WithLogger sets the logger used for degraded renders
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// hookRenderer overrides list items and links on top of goldmark's html
// renderer. inner is the full renderer, used to render list item children.
type hookRenderer struct {
	inner  renderer.Renderer
	unsafe bool
}

// RegisterFuncs implements renderer.NodeRenderer
func (r *hookRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindListItem, r.renderListItem)
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
}

// NewRenderer creates a Renderer with typographic punctuation, GFM tables,
// strikethrough and autolinks, and chroma highlighting for fenced code.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		logger: slog.Default(),
		style:  DefaultHighlightStyle,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.hooks = &hookRenderer{unsafe: r.unsafe}

	rendererOpts := []renderer.Option{
		renderer.WithNodeRenderers(util.Prioritized(r.hooks, hookPriority)),
	}
	if r.unsafe {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	r.md = goldmark.New(
		goldmark.WithExtensions(
			extension.Typographer,
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
			highlighting.NewHighlighting(
				highlighting.WithStyle(r.style),
				highlighting.WithGuessLanguage(true),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	r.hooks.inner = r.md.Renderer()

	return r
}

// Render converts description to HTML for the given task.
//
// The pipeline is: markdown conversion (counting checklist items), issue
// reference linking with trackers, optional sanitising, curly-brace
// escaping. The result always ends with a space so it is never empty.
func (r *Renderer) Render(taskID types.TaskID, description string, trackers []*models.IssueTracker) Result {
	if r.ledger != nil {
		r.ledger.Begin(taskID)
	}

	body, counts := r.convert(taskID, description)

	body, err := LinkIssues(body, trackers)
	if err != nil {
		r.logger.Warn("skipped issue trackers", "task_id", taskID, "error", err)
	}

	if r.sanitizer != nil {
		body = r.sanitizer.Sanitize(body)
	}

	body = EscapeBraces(body)

	if r.ledger != nil {
		r.ledger.Record(taskID, counts)
	}

	return Result{HTML: body + " ", Counts: counts}
}

// Count runs the conversion only and returns the checklist counts
func (r *Renderer) Count(taskID types.TaskID, description string) Counts {
	if r.ledger != nil {
		r.ledger.Begin(taskID)
	}
	_, counts := r.convert(taskID, description)
	if r.ledger != nil {
		r.ledger.Record(taskID, counts)
	}
	return counts
}

func (r *Renderer) convert(taskID types.TaskID, description string) (string, Counts) {
	counts := &Counts{}
	source := []byte(description)

	doc := r.md.Parser().Parse(text.NewReader(source))
	doc.SetAttribute(stateAttr, &renderState{taskID: taskID, counts: counts})

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
		r.logger.Error("failed to convert description", "task_id", taskID, "error", err)
		return "<p>" + stdhtml.EscapeString(description) + "</p>\n", Counts{}
	}

	return buf.String(), *counts
}
