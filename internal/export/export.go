// Package export writes the reference browser as a static site.
//
// The export is a self-contained directory: index.html with both tables and
// client-side search, one detail page per entry under entry/<kind>/, the
// highlight stylesheet, and an entries.json manifest. When the base URL is
// absolute a sitemap.xml is written too.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/conneroisu/webref/internal/catalog"
	"github.com/conneroisu/webref/internal/highlight"
	"github.com/conneroisu/webref/internal/logging"
	"github.com/conneroisu/webref/internal/renderer"
	"github.com/conneroisu/webref/internal/version"
)

// Options configures an export.
type Options struct {
	OutputDir string
	BaseURL   string
	Title     string
	// Workers bounds concurrent page writes. Zero means 8.
	Workers int
}

// Result summarises a finished export.
type Result struct {
	OutputDir string
	Files     []string
	Pages     int
	Duration  time.Duration
}

// Manifest is the shape of entries.json.
type Manifest struct {
	Title       string          `json:"title"`
	Version     string          `json:"version"`
	GeneratedAt time.Time       `json:"generated_at"`
	Entries     []ManifestEntry `json:"entries"`
}

// ManifestEntry is one exported detail page.
type ManifestEntry struct {
	Name  string       `json:"name"`
	Kind  catalog.Kind `json:"kind"`
	Group string       `json:"group,omitempty"`
	Title string       `json:"title"`
	Path  string       `json:"path"`
}

// Generator renders a catalog to disk.
type Generator struct {
	catalog     *catalog.Catalog
	highlighter *highlight.Highlighter
	renderer    *renderer.PageRenderer
	logger      logging.Logger
	opts        Options

	mutex sync.Mutex
	files []string
}

// New creates a generator.
func New(c *catalog.Catalog, h *highlight.Highlighter, logger logging.Logger, opts Options) *Generator {
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.Workers <= 0 {
		opts.Workers = 8
	}
	return &Generator{
		catalog:     c,
		highlighter: h,
		renderer: renderer.NewPageRenderer(c, h, logger, renderer.Options{
			Title:   opts.Title,
			Static:  true,
			BaseURL: opts.BaseURL,
		}),
		logger: logger.WithComponent("export"),
		opts:   opts,
	}
}

// Generate writes the site. Page failures are collected and reported
// together; files already written are left in place.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	start := time.Now()
	g.files = nil

	if err := os.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var errs error
	errs = multierr.Append(errs, g.writeIndex(ctx))
	errs = multierr.Append(errs, g.writeStylesheet())

	entries, err := g.writeEntries(ctx)
	errs = multierr.Append(errs, err)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	errs = multierr.Append(errs, g.writeManifest(entries))
	if isAbsoluteURL(g.opts.BaseURL) {
		errs = multierr.Append(errs, g.writeSitemap(entries))
	}

	sort.Strings(g.files)
	result := &Result{
		OutputDir: g.opts.OutputDir,
		Files:     g.files,
		Pages:     len(entries),
		Duration:  time.Since(start),
	}

	if errs != nil {
		g.logger.Error(ctx, errs, "Export finished with errors", "failed", len(multierr.Errors(errs)))
		return result, errs
	}
	g.logger.Info(ctx, "Export finished",
		"dir", g.opts.OutputDir,
		"files", len(result.Files),
		"duration_ms", result.Duration.Milliseconds())
	return result, nil
}

func (g *Generator) writeIndex(ctx context.Context) error {
	var buf bytes.Buffer
	state := renderer.IndexState{Tab: catalog.KindTag}
	if err := g.renderer.Index(ctx, &buf, state); err != nil {
		return fmt.Errorf("failed to render index page: %w", err)
	}
	return g.writeFile("index.html", buf.Bytes())
}

func (g *Generator) writeStylesheet() error {
	css, err := g.highlighter.CSS()
	if err != nil {
		return fmt.Errorf("failed to generate stylesheet: %w", err)
	}
	return g.writeFile("highlight.css", []byte(css))
}

// writeEntries renders every detail page with a bounded worker group. The
// returned manifest rows are in catalog order regardless of completion order.
func (g *Generator) writeEntries(ctx context.Context) ([]ManifestEntry, error) {
	var all []*catalog.Entry
	for _, kind := range catalog.Kinds() {
		for _, group := range g.catalog.Groups(kind) {
			all = append(all, group.Entries...)
		}
	}

	rows := make([]ManifestEntry, len(all))
	pageErrs := make([]error, len(all))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Workers)
	for i, e := range all {
		rel := filepath.ToSlash(filepath.Join("entry", string(e.Kind), renderer.EntrySlug(e)+".html"))
		rows[i] = ManifestEntry{Name: e.Name, Kind: e.Kind, Group: e.Group, Title: e.Title(), Path: rel}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := g.renderer.Detail(egCtx, &buf, e); err != nil {
				pageErrs[i] = fmt.Errorf("failed to render %s %s: %w", e.Kind, e.Name, err)
				return nil
			}
			pageErrs[i] = g.writeFile(rel, buf.Bytes())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return rows, multierr.Combine(pageErrs...)
}

func (g *Generator) writeManifest(entries []ManifestEntry) error {
	m := Manifest{
		Title:       g.renderer.Options().Title,
		Version:     version.GetShortVersion(),
		GeneratedAt: time.Now().UTC(),
		Entries:     entries,
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return g.writeFile("entries.json", append(data, '\n'))
}

func (g *Generator) writeSitemap(entries []ManifestEntry) error {
	base := html.EscapeString(strings.TrimSuffix(g.opts.BaseURL, "/"))
	lastmod := time.Now().UTC().Format("2006-01-02")

	var sitemap strings.Builder
	sitemap.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sitemap.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	writeURL := func(path string) {
		sitemap.WriteString("  <url>\n")
		fmt.Fprintf(&sitemap, "    <loc>%s/%s</loc>\n", base, path)
		fmt.Fprintf(&sitemap, "    <lastmod>%s</lastmod>\n", lastmod)
		sitemap.WriteString("  </url>\n")
	}
	writeURL("index.html")
	for _, e := range entries {
		writeURL(e.Path)
	}
	sitemap.WriteString("</urlset>\n")

	return g.writeFile("sitemap.xml", []byte(sitemap.String()))
}

// writeFile writes rel under the output directory, creating parents.
func (g *Generator) writeFile(rel string, data []byte) error {
	path := filepath.Join(g.opts.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}

	g.mutex.Lock()
	g.files = append(g.files, filepath.ToSlash(rel))
	g.mutex.Unlock()
	return nil
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
