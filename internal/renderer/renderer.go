// Package renderer composes the reference browser's pages.
//
// Pages are templ components assembled at runtime. The index page shows the
// HTML and CSS tables with their group headers and a search box per tab; the
// detail page shows one entry with its highlighted example and a live preview.
// The same detail data is exposed as a Fragment for the JSON API, which the
// index page uses to open entries in a modal without leaving the table.
package renderer

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/gosimple/slug"

	"github.com/conneroisu/webref/internal/catalog"
	"github.com/conneroisu/webref/internal/highlight"
	"github.com/conneroisu/webref/internal/logging"
	"github.com/conneroisu/webref/internal/preview"
)

// Options controls page chrome and link layout.
type Options struct {
	Title string
	// LiveReload adds the /ws client script.
	LiveReload bool
	// Static emits relative .html links suitable for a file export.
	Static bool
	// BaseURL prefixes static links when set.
	BaseURL string
}

// PageRenderer renders catalog pages.
type PageRenderer struct {
	catalog     *catalog.Catalog
	previews    *preview.Renderer
	highlighter *highlight.Highlighter
	logger      logging.Logger
	opts        Options
	onPreview   func(scene string)
}

// NewPageRenderer creates a renderer over c.
func NewPageRenderer(c *catalog.Catalog, h *highlight.Highlighter, logger logging.Logger, opts Options) *PageRenderer {
	if opts.Title == "" {
		opts.Title = "Web Reference"
	}
	return &PageRenderer{
		catalog:     c,
		previews:    preview.New(),
		highlighter: h,
		logger:      logger.WithComponent("renderer"),
		opts:        opts,
	}
}

// OnPreview registers a hook called with the scene name of every property
// preview rendered.
func (r *PageRenderer) OnPreview(fn func(scene string)) {
	r.onPreview = fn
}

// Options returns the renderer's options.
func (r *PageRenderer) Options() Options {
	return r.opts
}

// Fragment is the detail payload for one entry.
type Fragment struct {
	Name            string        `json:"name"`
	Kind            catalog.Kind  `json:"kind"`
	Group           string        `json:"group,omitempty"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Explanation     string        `json:"explanation"`
	ExplanationHTML template.HTML `json:"explanation_html"`
	Code            string        `json:"code"`
	CodeHTML        template.HTML `json:"code_html"`
	Scene           string        `json:"scene,omitempty"`
	Declarations    string        `json:"declarations,omitempty"`
	PreviewHTML     string        `json:"preview_html"`
}

// Fragment builds the detail payload. Highlighting failures degrade to plain
// escaped code and are logged.
func (r *PageRenderer) Fragment(ctx context.Context, e *catalog.Entry) Fragment {
	explanation := catalog.Explain(e)
	f := Fragment{
		Name:        e.Name,
		Kind:        e.Kind,
		Group:       e.Group,
		Title:       e.Title(),
		Description: e.Description,
		Explanation: explanation,
		Code:        e.Example,
	}

	code, err := r.highlighter.Highlight(e.Kind, e.Example)
	if err != nil {
		r.logger.Warn(ctx, err, "Highlighting failed, using plain code", "entry", e.Name)
	}
	f.CodeHTML = code

	expl, err := r.highlighter.Markdown(explanation)
	if err != nil {
		r.logger.Warn(ctx, err, "Explanation rendering failed", "entry", e.Name)
	}
	f.ExplanationHTML = expl

	if e.Kind == catalog.KindProperty {
		p := r.previews.Preview(e.Name, e.Example)
		f.Scene = p.SceneName
		f.Declarations = p.Declarations
		f.PreviewHTML = p.Markup
		if r.onPreview != nil {
			r.onPreview(p.SceneName)
		}
	} else {
		f.PreviewHTML = preview.RenderTag(e.Example)
	}

	return f
}

// IndexState is what the index page shows.
type IndexState struct {
	Tab   catalog.Kind
	Query map[catalog.Kind]string
}

// Index writes the full index page.
func (r *PageRenderer) Index(ctx context.Context, w io.Writer, state IndexState) error {
	if state.Tab == "" {
		state.Tab = catalog.KindTag
	}
	return r.page(r.opts.Title, 0, r.indexBody(state)).Render(ctx, w)
}

// Detail writes the standalone detail page for an entry.
func (r *PageRenderer) Detail(ctx context.Context, w io.Writer, e *catalog.Entry) error {
	f := r.Fragment(ctx, e)
	return r.page(f.Title+" | "+r.opts.Title, 2, r.detailBody(f)).Render(ctx, w)
}

// EntryHref is the link to an entry's detail page from the index.
func (r *PageRenderer) EntryHref(e *catalog.Entry) string {
	if r.opts.Static {
		return r.staticPrefix(0) + "entry/" + string(e.Kind) + "/" + EntrySlug(e) + ".html"
	}
	return "/entry/" + string(e.Kind) + "/" + e.Name
}

// EntrySlug is the file name stem used for an entry in static exports.
func EntrySlug(e *catalog.Entry) string {
	s := slug.Make(e.Name)
	if s == "" {
		s = fmt.Sprintf("entry-%x", e.Name)
	}
	return s
}

// GroupAnchor is the element id of a group header row.
func GroupAnchor(kind catalog.Kind, group string) string {
	return string(kind) + "-" + slug.Make(group)
}

func (r *PageRenderer) staticPrefix(depth int) string {
	if r.opts.BaseURL != "" {
		return strings.TrimSuffix(r.opts.BaseURL, "/") + "/"
	}
	return strings.Repeat("../", depth)
}

func (r *PageRenderer) rootHref(depth int) string {
	if r.opts.Static {
		return r.staticPrefix(depth) + "index.html"
	}
	return "/"
}

func (r *PageRenderer) stylesheetHref(depth int) string {
	if r.opts.Static {
		return r.staticPrefix(depth) + "highlight.css"
	}
	return "/static/highlight.css"
}

func (r *PageRenderer) tabHref(kind catalog.Kind) string {
	if r.opts.Static {
		return "#" + string(kind) + "-content"
	}
	return "/?tab=" + string(kind)
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}

func esc(s string) string {
	return templ.EscapeString(s)
}
