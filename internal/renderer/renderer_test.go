package renderer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/webref/internal/catalog"
	"github.com/conneroisu/webref/internal/highlight"
	"github.com/conneroisu/webref/internal/logging"
)

func newRenderer(t *testing.T, opts Options) *PageRenderer {
	t.Helper()
	h, err := highlight.New(highlight.DefaultStyle)
	require.NoError(t, err)
	return NewPageRenderer(catalog.Default(), h, logging.Discard(), opts)
}

func parse(t *testing.T, buf *bytes.Buffer) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(buf)
	require.NoError(t, err)
	return doc
}

func renderIndex(t *testing.T, r *PageRenderer, state IndexState) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Index(context.Background(), &buf, state))
	return parse(t, &buf)
}

func TestIndexShowsGroupedTables(t *testing.T) {
	r := newRenderer(t, Options{})
	doc := renderIndex(t, r, IndexState{})

	assert.Equal(t, "Web Reference", doc.Find("title").Text())
	assert.Equal(t, "1", doc.Find("body").AttrOr("data-api", ""))

	tags := doc.Find("#htmlTableBody")
	assert.Equal(t, 11, tags.Find("tr.group-header").Length())
	assert.Equal(t, 112, tags.Find("tr.data-row").Length())

	props := doc.Find("#cssTableBody")
	assert.Equal(t, 9, props.Find("tr.group-header").Length())
	assert.Equal(t, 58, props.Find("tr.data-row").Length())

	first := tags.Find("tr.group-header").First()
	assert.Equal(t, "1. Root & Metadata", first.Text())
	assert.Equal(t, GroupAnchor(catalog.KindTag, "1. Root & Metadata"), first.AttrOr("id", ""))
	assert.Contains(t, first.Find("td").AttrOr("style", ""), "rgba(108,99,255,0.2)")
	assert.Contains(t, props.Find("tr.group-header td").First().AttrOr("style", ""), "rgba(41,101,241,0.2)")

	assert.True(t, doc.Find("#html-content").HasClass("active"))
	assert.False(t, doc.Find("#css-content").HasClass("active"))
	assert.Equal(t, 1, doc.Find("#entryModal #closeModal").Length())
	assert.Equal(t, 0, doc.Find("script").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), "/ws")
	}).Length())
}

func TestIndexRowMarkup(t *testing.T) {
	doc := renderIndex(t, newRenderer(t, Options{}), IndexState{})

	link := doc.Find(`#htmlTableBody a[data-tag="div"]`)
	require.Equal(t, 1, link.Length())
	assert.Equal(t, "<div>", link.Text())
	assert.Equal(t, "/entry/html/div", link.AttrOr("href", ""))
	assert.True(t, link.HasClass("tag"))

	cells := link.Closest("tr").Find("td")
	require.Equal(t, 3, cells.Length())
	assert.Equal(t, "Div", cells.Eq(1).Text())
	assert.Equal(t, "HTML5", cells.Eq(2).Text())

	prop := doc.Find(`#cssTableBody a[data-prop="color"]`)
	require.Equal(t, 1, prop.Length())
	assert.True(t, prop.HasClass("property"))
	assert.Equal(t, "css", prop.AttrOr("data-kind", ""))
}

func TestIndexSearchHidesGroupHeaders(t *testing.T) {
	r := newRenderer(t, Options{})
	doc := renderIndex(t, r, IndexState{
		Tab:   catalog.KindProperty,
		Query: map[catalog.Kind]string{catalog.KindTag: "heading"},
	})

	tags := doc.Find("#htmlTableBody")
	assert.Equal(t, 0, tags.Find("tr.group-header").Length())
	assert.Equal(t, 6, tags.Find("tr.data-row").Length())
	assert.Equal(t, "heading", doc.Find("#htmlSearch").AttrOr("value", ""))
	assert.Equal(t, "6 entries", doc.Find("#html-content p.count").Text())

	assert.True(t, doc.Find("#css-content").HasClass("active"))
	assert.Equal(t, 9, doc.Find("#cssTableBody tr.group-header").Length())
}

func TestIndexEmptySearch(t *testing.T) {
	doc := renderIndex(t, newRenderer(t, Options{}), IndexState{
		Query: map[catalog.Kind]string{catalog.KindTag: "<nothing>"},
	})

	assert.Equal(t, 0, doc.Find("#htmlTableBody tr").Length())
	assert.Contains(t, doc.Find("#html-content p.empty").Text(), `"<nothing>"`)
}

func TestDetailPage(t *testing.T) {
	r := newRenderer(t, Options{Title: "Ref", LiveReload: true})
	e, ok := catalog.Default().Get(catalog.KindProperty, "color")
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, r.Detail(context.Background(), &buf, e))
	doc := parse(t, &buf)

	assert.Equal(t, "Property: color | Ref", doc.Find("title").Text())
	assert.Equal(t, "Property: color", doc.Find("#modalTitle").Text())
	assert.Equal(t, "2. Typography", doc.Find("main.detail p.group").Text())
	assert.Contains(t, doc.Find("#tagExplanation").Text(), "Color")
	assert.Contains(t, doc.Find("#codeExample").Text(), "color: #ff6b6b;")
	assert.Equal(t, 1, doc.Find("#codeExample pre.chroma").Length())
	assert.Equal(t, "typography", doc.Find("#outputPreview").AttrOr("data-scene", ""))
	assert.Equal(t, "/", doc.Find("a.back").AttrOr("href", ""))
	assert.Equal(t, 1, doc.Find("script").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), "/ws")
	}).Length())
}

func TestStaticLinks(t *testing.T) {
	r := newRenderer(t, Options{Static: true})
	doc := renderIndex(t, r, IndexState{})

	assert.Equal(t, "0", doc.Find("body").AttrOr("data-api", ""))
	assert.Equal(t, "highlight.css", doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
	assert.Equal(t, "entry/html/div.html", doc.Find(`a[data-tag="div"]`).AttrOr("href", ""))
	assert.Equal(t, "#css-content", doc.Find(`a.tab[data-tab="css"]`).AttrOr("href", ""))

	e, _ := catalog.Default().Get(catalog.KindTag, "div")
	var buf bytes.Buffer
	require.NoError(t, r.Detail(context.Background(), &buf, e))
	detail := parse(t, &buf)
	assert.Equal(t, "../../index.html", detail.Find("a.back").AttrOr("href", ""))
	assert.Equal(t, "../../highlight.css", detail.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))

	based := newRenderer(t, Options{Static: true, BaseURL: "https://example.com/ref/"})
	assert.Equal(t, "https://example.com/ref/entry/html/div.html", based.EntryHref(e))
}

func TestFragment(t *testing.T) {
	r := newRenderer(t, Options{})
	var scenes []string
	r.OnPreview(func(scene string) { scenes = append(scenes, scene) })

	c := catalog.Default()
	color, _ := c.Get(catalog.KindProperty, "color")
	f := r.Fragment(context.Background(), color)

	assert.Equal(t, "color", f.Name)
	assert.Equal(t, catalog.KindProperty, f.Kind)
	assert.Equal(t, "Property: color", f.Title)
	assert.Equal(t, "Color", f.Explanation)
	assert.Contains(t, string(f.ExplanationHTML), "<p>Color</p>")
	assert.Equal(t, "typography", f.Scene)
	assert.Equal(t, "color: #ff6b6b;", f.Declarations)
	assert.Contains(t, f.PreviewHTML, "color: #ff6b6b;")
	assert.Equal(t, []string{"typography"}, scenes)

	div, _ := c.Get(catalog.KindTag, "div")
	tf := r.Fragment(context.Background(), div)
	assert.Equal(t, catalog.DefaultExplanation, tf.Explanation)
	assert.Empty(t, tf.Scene)
	assert.Contains(t, tf.PreviewHTML, "<div>Content</div>")
	assert.Len(t, scenes, 1)
}

func TestEntrySlug(t *testing.T) {
	assert.Equal(t, "grid-template-columns", EntrySlug(&catalog.Entry{Name: "grid-template-columns"}))
	assert.Equal(t, "css-6-grid", GroupAnchor(catalog.KindProperty, "6. Grid"))
}
