package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/webref/internal/catalog"
)

func TestNew(t *testing.T) {
	h, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle, h.StyleName())

	_, err = New("no-such-style")
	assert.Error(t, err)
}

func TestHighlight(t *testing.T) {
	h, err := New("monokai")
	require.NoError(t, err)

	t.Run("css", func(t *testing.T) {
		out, err := h.Highlight(catalog.KindProperty, "p { color: #ff6b6b; }")
		require.NoError(t, err)
		s := string(out)
		assert.Contains(t, s, `class="chroma"`)
		assert.Contains(t, s, "color")
		assert.NotContains(t, s, "style=")
	})

	t.Run("html is escaped", func(t *testing.T) {
		out, err := h.Highlight(catalog.KindTag, "<div>Content</div>")
		require.NoError(t, err)
		s := string(out)
		assert.Contains(t, s, "&lt;")
		assert.NotContains(t, s, "<div>Content")
	})
}

func TestCSS(t *testing.T) {
	h, err := New(DefaultStyle)
	require.NoError(t, err)

	css, err := h.CSS()
	require.NoError(t, err)
	assert.Contains(t, css, ".chroma")

	again, _ := h.CSS()
	assert.Equal(t, css, again)
}

func TestMarkdown(t *testing.T) {
	h, err := New(DefaultStyle)
	require.NoError(t, err)

	out, err := h.Markdown("Centers **both** axes.\n\n```css\ndiv { place-items: center; }\n```\n")
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "<strong>both</strong>")
	assert.Contains(t, s, "chroma")
}

func TestPlain(t *testing.T) {
	assert.Equal(t, `<pre class="chroma"><code>&lt;b&gt;</code></pre>`, string(Plain("<b>")))
}

func TestStyles(t *testing.T) {
	names := Styles()
	assert.Contains(t, names, "dracula")
	assert.True(t, IsStyle("dracula"))
	assert.True(t, IsStyle(" monokai "))
	assert.False(t, IsStyle("nope"))
	assert.True(t, strings.Compare(names[0], names[len(names)-1]) < 0)
}

func TestTerminal(t *testing.T) {
	h, err := New("")
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, h.Terminal(&buf, catalog.KindProperty, "p { color: red; }"))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "color")
}
