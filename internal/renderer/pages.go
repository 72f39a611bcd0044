package renderer

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/conneroisu/webref/internal/catalog"
)

type tabInfo struct {
	kind        catalog.Kind
	label       string
	column      string
	placeholder string
	headerStyle string
}

var tabs = []tabInfo{
	{
		kind:        catalog.KindTag,
		label:       "HTML Tags",
		column:      "Tag",
		placeholder: "Search tags...",
		headerStyle: "background:rgba(108,99,255,0.2); font-weight:bold; text-align:center; color:white;",
	},
	{
		kind:        catalog.KindProperty,
		label:       "CSS Properties",
		column:      "Property",
		placeholder: "Search properties...",
		headerStyle: "background:rgba(41,101,241,0.2); font-weight:bold; text-align:center; color:white;",
	},
}

// page wraps body in the document shell. depth is how many directories deep
// the page sits in a static export.
func (r *PageRenderer) page(title string, depth int, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		api := "0"
		if !r.opts.Static {
			api = "1"
		}
		if err := write(w,
			"<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n",
			"<meta charset=\"UTF-8\">\n",
			"<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n",
			"<title>", esc(title), "</title>\n",
			"<link rel=\"stylesheet\" href=\"", esc(r.stylesheetHref(depth)), "\">\n",
			"<style>", pageCSS, "</style>\n",
			"</head>\n<body data-api=\"", api, "\">\n",
		); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		if err := write(w, "<script>", pageJS, "</script>\n"); err != nil {
			return err
		}
		if r.opts.LiveReload {
			if err := write(w, "<script>", liveReloadJS, "</script>\n"); err != nil {
				return err
			}
		}
		return write(w, "</body>\n</html>\n")
	})
}

func (r *PageRenderer) indexBody(state IndexState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			"<header class=\"site-header\"><h1>", esc(r.opts.Title), "</h1></header>\n",
			"<nav class=\"tabs\">\n",
		); err != nil {
			return err
		}
		for _, t := range tabs {
			class := "tab"
			if t.kind == state.Tab {
				class += " active"
			}
			if err := write(w,
				"<a class=\"", class, "\" data-tab=\"", string(t.kind), "\" href=\"", esc(r.tabHref(t.kind)), "\">",
				esc(t.label), "</a>\n",
			); err != nil {
				return err
			}
		}
		if err := write(w, "</nav>\n<main>\n"); err != nil {
			return err
		}

		for _, t := range tabs {
			if err := r.tabSection(t, state).Render(ctx, w); err != nil {
				return err
			}
		}

		return write(w, "</main>\n", modalMarkup)
	})
}

func (r *PageRenderer) tabSection(t tabInfo, state IndexState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		kind := string(t.kind)
		term := state.Query[t.kind]
		result := r.catalog.Search(t.kind, term)

		class := "tab-content"
		if t.kind == state.Tab {
			class += " active"
		}

		if err := write(w,
			"<section id=\"", kind, "-content\" class=\"", class, "\">\n",
			"<form class=\"search-form\" method=\"get\" action=\"", esc(r.rootHref(0)), "\">",
			"<input type=\"hidden\" name=\"tab\" value=\"", kind, "\">",
			"<input type=\"search\" class=\"search\" id=\"", kind, "Search\" name=\"q\" value=\"", esc(term),
			"\" placeholder=\"", esc(t.placeholder), "\" data-table=\"", kind, "TableBody\" autocomplete=\"off\">",
			"</form>\n",
			"<table class=\"ref-table\">\n<thead><tr><th>", esc(t.column), "</th><th>Description</th><th>Standard</th></tr></thead>\n",
			"<tbody id=\"", kind, "TableBody\">\n",
		); err != nil {
			return err
		}

		if result.Grouped {
			for _, g := range result.Groups {
				if err := write(w,
					"<tr class=\"group-header\" id=\"", esc(GroupAnchor(t.kind, g.Name)), "\">",
					"<td colspan=\"3\" style=\"", t.headerStyle, "\">", esc(g.Name), "</td></tr>\n",
				); err != nil {
					return err
				}
				if err := r.rows(w, g.Entries); err != nil {
					return err
				}
			}
		} else if err := r.rows(w, result.Rows); err != nil {
			return err
		}

		if err := write(w, "</tbody>\n</table>\n"); err != nil {
			return err
		}
		if result.Len() == 0 {
			if err := write(w, "<p class=\"empty\">No entries match &quot;", esc(term), "&quot;.</p>\n"); err != nil {
				return err
			}
		}
		return write(w, "<p class=\"count\">", strconv.Itoa(result.Len()), " entries</p>\n</section>\n")
	})
}

func (r *PageRenderer) rows(w io.Writer, entries []*catalog.Entry) error {
	for _, e := range entries {
		class, attr := "property", "data-prop"
		if e.Kind == catalog.KindTag {
			class, attr = "tag", "data-tag"
		}
		if err := write(w,
			"<tr class=\"data-row\"><td><a class=\"", class, "\" ", attr, "=\"", esc(e.Name),
			"\" data-kind=\"", string(e.Kind), "\" href=\"", esc(r.EntryHref(e)), "\">", esc(e.Label()), "</a></td>",
			"<td>", esc(e.Description), "</td><td>", e.Standard(), "</td></tr>\n",
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *PageRenderer) detailBody(f Fragment) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			"<header class=\"site-header\"><a class=\"back\" href=\"", esc(r.rootHref(2)), "\">&larr; ", esc(r.opts.Title), "</a></header>\n",
			"<main class=\"detail\" data-kind=\"", string(f.Kind), "\" data-name=\"", esc(f.Name), "\">\n",
			"<h1 id=\"modalTitle\">", esc(f.Title), "</h1>\n",
		); err != nil {
			return err
		}
		if f.Group != "" {
			if err := write(w, "<p class=\"group\">", esc(f.Group), "</p>\n"); err != nil {
				return err
			}
		}
		if err := write(w, "<div id=\"tagExplanation\" class=\"explanation\">"); err != nil {
			return err
		}
		if err := templ.Raw(string(f.ExplanationHTML)).Render(ctx, w); err != nil {
			return err
		}
		if err := write(w, "</div>\n<h2>Example</h2>\n<div id=\"codeExample\" class=\"code\">"); err != nil {
			return err
		}
		if err := templ.Raw(string(f.CodeHTML)).Render(ctx, w); err != nil {
			return err
		}
		if err := write(w, "</div>\n<h2>Preview</h2>\n<div id=\"outputPreview\" class=\"preview-box\""); err != nil {
			return err
		}
		if f.Scene != "" {
			if err := write(w, " data-scene=\"", esc(f.Scene), "\""); err != nil {
				return err
			}
		}
		if err := write(w, ">"); err != nil {
			return err
		}
		if err := templ.Raw(f.PreviewHTML).Render(ctx, w); err != nil {
			return err
		}
		return write(w, "</div>\n</main>\n")
	})
}
