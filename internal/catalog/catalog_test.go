package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 112, c.Count(KindTag))
	assert.Equal(t, 58, c.Count(KindProperty))
	assert.Len(t, c.Groups(KindTag), 11)
	assert.Len(t, c.Groups(KindProperty), 9)

	div, ok := c.Get(KindTag, "div")
	require.True(t, ok)
	assert.Equal(t, "div", div.Name)
	assert.Equal(t, KindTag, div.Kind)
	assert.Equal(t, "4. Text Content", div.Group)
	assert.Equal(t, "<div>", div.Label())
	assert.Equal(t, "Tag: <div>", div.Title())
	assert.Equal(t, "HTML5", div.Standard())

	color, ok := c.Get(KindProperty, "color")
	require.True(t, ok)
	assert.Equal(t, "color", color.Label())
	assert.Equal(t, "Property: color", color.Title())
	assert.Equal(t, "CSS3", color.Standard())
	assert.Equal(t, "2. Typography", color.Group)

	_, ok = c.Get(KindTag, "blink")
	assert.False(t, ok)
	_, ok = c.Get(Kind("xml"), "div")
	assert.False(t, ok)
}

func TestGroupsSkipMembersWithoutData(t *testing.T) {
	c := Default()

	for _, g := range c.Groups(KindProperty) {
		for _, e := range g.Entries {
			assert.NotEmpty(t, e.Description, e.Name)
		}
		if g.Name == "6. Grid" {
			names := make([]string, 0, len(g.Entries))
			for _, e := range g.Entries {
				names = append(names, e.Name)
			}
			assert.Equal(t, []string{"grid-template-columns", "grid-template-rows", "place-items"}, names)
		}
	}
}

func TestGroupsPreserveOrder(t *testing.T) {
	groups := Default().Groups(KindTag)
	require.NotEmpty(t, groups)
	assert.Equal(t, "1. Root & Metadata", groups[0].Name)
	assert.Equal(t, "11. Components", groups[len(groups)-1].Name)

	first := groups[0].Entries
	require.Len(t, first, 7)
	assert.Equal(t, "html", first[0].Name)
	assert.Equal(t, "style", first[6].Name)
}

func TestSearch(t *testing.T) {
	c := Default()

	t.Run("empty term shows groups", func(t *testing.T) {
		r := c.Search(KindTag, "")
		assert.True(t, r.Grouped)
		assert.Len(t, r.Groups, 11)
		assert.Equal(t, 112, r.Len())
	})

	t.Run("whitespace term shows groups", func(t *testing.T) {
		r := c.Search(KindTag, "   ")
		assert.True(t, r.Grouped)
	})

	t.Run("case insensitive substring", func(t *testing.T) {
		r := c.Search(KindTag, "HEADING")
		assert.False(t, r.Grouped)
		assert.Empty(t, r.Groups)
		require.Len(t, r.Rows, 6)
		assert.Equal(t, "h1", r.Rows[0].Name)
		assert.Equal(t, "h6", r.Rows[5].Name)
	})

	t.Run("label text matches", func(t *testing.T) {
		r := c.Search(KindTag, "<div>")
		require.Len(t, r.Rows, 1)
		assert.Equal(t, "div", r.Rows[0].Name)
	})

	t.Run("standard column matches every row", func(t *testing.T) {
		assert.Equal(t, 112, c.Search(KindTag, "html5").Len())
		assert.Equal(t, 58, c.Search(KindProperty, "css3").Len())
		assert.Equal(t, 0, c.Search(KindProperty, "html5").Len())
	})

	t.Run("no match", func(t *testing.T) {
		r := c.Search(KindProperty, "zzzz-nothing")
		assert.False(t, r.Grouped)
		assert.Equal(t, 0, r.Len())
	})
}

func TestRowText(t *testing.T) {
	e := &Entry{Name: "div", Kind: KindTag, Description: "Div"}
	assert.Equal(t, "<div>\tDiv\tHTML5", RowText(e))

	p := &Entry{Name: "gap", Kind: KindProperty, Description: "Gap & gutter"}
	assert.Equal(t, "gap\tGap & gutter\tCSS3", RowText(p))
	assert.Contains(t, RowMarkup(p), "Gap &amp; gutter")
	assert.Contains(t, RowMarkup(p), `data-prop="gap"`)
}

func TestExplain(t *testing.T) {
	assert.Equal(t, DefaultExplanation, Explain(nil))
	assert.Equal(t, "Example usage.", Explain(&Entry{Name: "div"}))
	assert.Equal(t, "Centers things.", Explain(&Entry{Explanation: "Centers things."}))
	assert.Equal(t, "Example usage.", Explain(&Entry{Name: "div", Kind: KindTag, Description: "Div"}))
	assert.Equal(t, "Color", Explain(&Entry{Name: "color", Kind: KindProperty, Description: "Color"}))
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"html": KindTag, "TAGS": KindTag, "css": KindProperty, " property ": KindProperty} {
		got, ok := ParseKind(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseKind("js")
	assert.False(t, ok)
}

func TestSortEntries(t *testing.T) {
	entries := []*Entry{{Name: "h10"}, {Name: "h2"}, {Name: "a"}, {Name: "h1"}}
	SortEntries(entries)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"a", "h1", "h2", "h10"}, names)
}

func TestNamesNaturalOrder(t *testing.T) {
	names := Default().Names(KindTag)
	assert.Len(t, names, 112)

	idx := func(n string) int {
		for i, v := range names {
			if v == n {
				return i
			}
		}
		return -1
	}
	assert.Less(t, idx("h1"), idx("h2"))
	assert.Less(t, idx("h2"), idx("h6"))
}

func TestReplaceNotifiesWatchers(t *testing.T) {
	c := Default()
	ch := c.Watch()

	c.Replace(KindProperty, Dataset{
		Groups:  []Group{{Name: "Only", Members: []string{"gap"}}},
		Entries: map[string]Entry{"gap": {Description: "Gap", Example: "div { gap: 1px; }"}},
	})

	select {
	case ev := <-ch:
		assert.Equal(t, EventTypeReplaced, ev.Type)
		assert.Equal(t, KindProperty, ev.Kind)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}

	assert.Equal(t, 1, c.Count(KindProperty))
	assert.Equal(t, 112, c.Count(KindTag))

	c.UnWatch(ch)
	_, open := <-ch
	assert.False(t, open)
}

func TestMerge(t *testing.T) {
	c := Default()
	c.Merge(KindTag, Dataset{
		Groups: []Group{
			{Name: "4. Text Content", Members: []string{"div", "marquee"}},
			{Name: "12. Obsolete", Members: []string{"blink"}},
		},
		Entries: map[string]Entry{
			"div":     {Description: "Generic container", Example: "<div>x</div>", Explanation: "Block-level box."},
			"marquee": {Description: "Scrolling text", Example: "<marquee>hi</marquee>"},
			"blink":   {Description: "Blinking text", Example: "<blink>hi</blink>"},
		},
	})

	assert.Equal(t, 114, c.Count(KindTag))

	div, ok := c.Get(KindTag, "div")
	require.True(t, ok)
	assert.Equal(t, "Generic container", div.Description)
	assert.Equal(t, "Block-level box.", Explain(div))

	groups := c.Groups(KindTag)
	require.Len(t, groups, 12)
	assert.Equal(t, "12. Obsolete", groups[11].Name)

	text := groups[3]
	assert.Equal(t, "4. Text Content", text.Name)
	assert.Equal(t, "marquee", text.Entries[len(text.Entries)-1].Name)

	count := 0
	for _, e := range text.Entries {
		if e.Name == "div" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("merge", func(t *testing.T) {
		path := filepath.Join(dir, "merge.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
css:
  groups:
    - name: "10. Extras"
      members: [aspect-ratio]
  entries:
    aspect-ratio:
      description: Aspect ratio
      example: "div { aspect-ratio: 16 / 9; }"
      explanation: Locks the box proportions.
`), 0o644))

		c := Default()
		require.NoError(t, c.LoadFile(path, ""))
		assert.Equal(t, 59, c.Count(KindProperty))
		assert.Equal(t, 112, c.Count(KindTag))

		e, ok := c.Get(KindProperty, "aspect-ratio")
		require.True(t, ok)
		assert.Equal(t, "10. Extras", e.Group)
		assert.Equal(t, "Locks the box proportions.", Explain(e))
	})

	t.Run("replace", func(t *testing.T) {
		path := filepath.Join(dir, "replace.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
mode: replace
html:
  groups:
    - name: Basics
      members: [p, a]
  entries:
    p: {description: Paragraph, example: "<p>x</p>"}
    a: {description: Anchor, example: "<a href='#'>x</a>"}
`), 0o644))

		c := Default()
		require.NoError(t, c.LoadFile(path, ""))
		assert.Equal(t, 2, c.Count(KindTag))
		assert.Equal(t, 58, c.Count(KindProperty))
	})

	t.Run("mode override", func(t *testing.T) {
		path := filepath.Join(dir, "override.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
mode: replace
html:
  entries:
    p: {description: Paragraph, example: "<p>x</p>"}
`), 0o644))

		c := Default()
		require.NoError(t, c.LoadFile(path, ModeMerge))
		assert.Equal(t, 112, c.Count(KindTag))
	})

	t.Run("bad mode", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("mode: append\n"), 0o644))
		assert.Error(t, Default().LoadFile(path, ""))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yml")
		require.NoError(t, os.WriteFile(path, []byte("html: [unclosed\n"), 0o644))
		assert.Error(t, Default().LoadFile(path, ""))
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, Default().LoadFile(filepath.Join(dir, "nope.yml"), ""))
	})
}

func TestBuiltinDatasetIsACopy(t *testing.T) {
	ds := BuiltinDataset(KindTag)
	ds.Groups[0].Members[0] = "changed"
	delete(ds.Entries, "div")

	again := BuiltinDataset(KindTag)
	assert.Equal(t, "html", again.Groups[0].Members[0])
	assert.Contains(t, again.Entries, "div")
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	write := func(body string) {
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}

	c := Default()
	write(`
css:
  groups:
    - name: "10. Extras"
      members: [aspect-ratio]
  entries:
    aspect-ratio: {description: Aspect ratio, example: "div { aspect-ratio: 1; }"}
`)
	require.NoError(t, c.Reload(path, ""))
	assert.Equal(t, 59, c.Count(KindProperty))

	// Dropping the entry from the file drops it from the catalog.
	write(`
css:
  entries:
    color: {description: Text color, example: "p { color: red; }"}
`)
	require.NoError(t, c.Reload(path, ""))
	assert.Equal(t, 58, c.Count(KindProperty))
	color, ok := c.Get(KindProperty, "color")
	require.True(t, ok)
	assert.Equal(t, "Text color", color.Description)

	// A broken file keeps the previous state.
	write("css: [broken\n")
	assert.Error(t, c.Reload(path, ""))
	color, _ = c.Get(KindProperty, "color")
	assert.Equal(t, "Text color", color.Description)

	assert.Error(t, c.Reload(filepath.Join(dir, "missing.yml"), ""))
}
