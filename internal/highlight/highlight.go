// Package highlight renders syntax-highlighted HTML for catalog examples and
// explanation text.
package highlight

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/conneroisu/webref/internal/catalog"
)

// DefaultStyle is used when no style is configured.
const DefaultStyle = "dracula"

// Highlighter turns example source into class-annotated HTML.
type Highlighter struct {
	style     *chroma.Style
	styleName string
	formatter *chromahtml.Formatter
	markdown  goldmark.Markdown

	cssOnce sync.Once
	css     string
	cssErr  error
}

// New returns a highlighter for the named chroma style.
func New(styleName string) (*Highlighter, error) {
	if styleName == "" {
		styleName = DefaultStyle
	}
	style, ok := styles.Registry[styleName]
	if !ok {
		return nil, fmt.Errorf("unknown highlight style %q", styleName)
	}

	formatOptions := []chromahtml.Option{
		chromahtml.WithClasses(true),
		chromahtml.TabWidth(2),
	}

	return &Highlighter{
		style:     style,
		styleName: styleName,
		formatter: chromahtml.New(formatOptions...),
		markdown: goldmark.New(
			goldmark.WithExtensions(
				highlighting.NewHighlighting(
					highlighting.WithStyle(styleName),
					highlighting.WithFormatOptions(formatOptions...),
				),
			),
		),
	}, nil
}

// StyleName returns the configured style.
func (h *Highlighter) StyleName() string {
	return h.styleName
}

// Highlight renders code with the lexer for kind: html for tags, css for
// properties.
func (h *Highlighter) Highlight(kind catalog.Kind, code string) (template.HTML, error) {
	iterator, err := tokenise(kind, code)
	if err != nil {
		return Plain(code), err
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return Plain(code), fmt.Errorf("formatting %s example: %w", kind, err)
	}

	return template.HTML(buf.String()), nil
}

// Terminal writes code with 256-colour ANSI escapes.
func (h *Highlighter) Terminal(w io.Writer, kind catalog.Kind, code string) error {
	iterator, err := tokenise(kind, code)
	if err != nil {
		return err
	}
	return formatters.TTY256.Format(w, h.style, iterator)
}

func tokenise(kind catalog.Kind, code string) (chroma.Iterator, error) {
	lexer := lexers.Get(lexerName(kind))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("tokenising %s example: %w", kind, err)
	}
	return iterator, nil
}

// Markdown renders an explanation written in Markdown. Fenced code blocks are
// highlighted with the same style as examples.
func (h *Highlighter) Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>"), fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// CSS returns the stylesheet for the highlighter's classes.
func (h *Highlighter) CSS() (string, error) {
	h.cssOnce.Do(func() {
		var buf bytes.Buffer
		h.cssErr = h.formatter.WriteCSS(&buf, h.style)
		h.css = buf.String()
	})
	return h.css, h.cssErr
}

// Plain is the fallback rendering: an escaped pre block.
func Plain(code string) template.HTML {
	return template.HTML(`<pre class="chroma"><code>` + template.HTMLEscapeString(code) + `</code></pre>`)
}

// Styles lists the registered style names, sorted.
func Styles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsStyle reports whether name is a registered style.
func IsStyle(name string) bool {
	_, ok := styles.Registry[strings.TrimSpace(name)]
	return ok
}

func lexerName(kind catalog.Kind) string {
	if kind == catalog.KindTag {
		return "html"
	}
	return "css"
}
