package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/conneroisu/webref/internal/catalog"
	"github.com/conneroisu/webref/internal/errors"
	"github.com/conneroisu/webref/internal/logging"
	"github.com/conneroisu/webref/internal/renderer"
)

// maxPreviewCSS bounds the css parameter of /api/preview.
const maxPreviewCSS = 16 << 10

// EntryJSON is one table row in API responses.
type EntryJSON struct {
	Name        string       `json:"name"`
	Kind        catalog.Kind `json:"kind"`
	Label       string       `json:"label"`
	Group       string       `json:"group,omitempty"`
	Description string       `json:"description"`
	Standard    string       `json:"standard"`
	Href        string       `json:"href"`
}

// GroupJSON is a group header and its rows.
type GroupJSON struct {
	Name    string      `json:"name"`
	Anchor  string      `json:"anchor"`
	Entries []EntryJSON `json:"entries"`
}

// EntriesResponse is the body of /api/entries/{kind}.
type EntriesResponse struct {
	Kind    catalog.Kind `json:"kind"`
	Query   string       `json:"query,omitempty"`
	Grouped bool         `json:"grouped"`
	Count   int          `json:"count"`
	Groups  []GroupJSON  `json:"groups,omitempty"`
	Rows    []EntryJSON  `json:"rows,omitempty"`
}

func (s *PreviewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	state, err := indexState(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if term := state.Query[state.Tab]; term != "" {
		logging.FromContext(r.Context(), s.logger).Debug(r.Context(), "Index search",
			"tab", string(state.Tab), "term", logging.SanitizeForLog(term))
	}

	s.writeHTML(w, r, func(buf io.Writer) error {
		return s.renderer.Index(r.Context(), buf, state)
	})
}

func (s *PreviewServer) handleEntryPage(w http.ResponseWriter, r *http.Request) {
	entry, err := s.lookup(r.PathValue("kind"), r.PathValue("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeHTML(w, r, func(buf io.Writer) error {
		return s.renderer.Detail(r.Context(), buf, entry)
	})
}

func (s *PreviewServer) handleEntries(w http.ResponseWriter, r *http.Request) {
	kind, ok := catalog.ParseKind(r.PathValue("kind"))
	if !ok {
		s.writeError(w, r, errors.ErrUnknownKind(r.PathValue("kind")))
		return
	}

	term := r.URL.Query().Get("q")
	result := s.catalog.Search(kind, term)

	resp := EntriesResponse{
		Kind:    kind,
		Query:   term,
		Grouped: result.Grouped,
		Count:   result.Len(),
	}
	if result.Grouped {
		for _, g := range result.Groups {
			resp.Groups = append(resp.Groups, GroupJSON{
				Name:    g.Name,
				Anchor:  renderer.GroupAnchor(kind, g.Name),
				Entries: s.entriesJSON(g.Entries),
			})
		}
	} else {
		resp.Rows = s.entriesJSON(result.Rows)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *PreviewServer) handleEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.lookup(r.PathValue("kind"), r.PathValue("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.renderer.Fragment(r.Context(), entry))
}

// handlePreview classifies an arbitrary property and renders its scene. When
// css is omitted the bundled example for the property is used, if any.
func (s *PreviewServer) handlePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	property := q.Get("property")
	if property == "" {
		s.writeError(w, r, errors.ErrMissingParam("property"))
		return
	}

	css := q.Get("css")
	if len(css) > maxPreviewCSS {
		s.writeError(w, r, errors.NewValidationError(errors.ErrCodeInputTooLarge, "css parameter is too large").
			WithContext("limit", maxPreviewCSS))
		return
	}
	if css == "" {
		if e, ok := s.catalog.Get(catalog.KindProperty, property); ok {
			css = e.Example
		}
	}

	p := s.previews.Preview(property, css)
	s.metrics.PreviewRendered(p.SceneName)
	writeJSON(w, http.StatusOK, p)
}

func (s *PreviewServer) handleHighlightCSS(w http.ResponseWriter, r *http.Request) {
	css, err := s.highlighter.CSS()
	if err != nil {
		s.writeError(w, r, errors.NewInternalError(errors.ErrCodeInternalError, "stylesheet generation failed", err))
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = io.WriteString(w, css)
}

func (s *PreviewServer) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errors.NewNotFoundError(errors.ErrCodeRouteNotFound, "no such page: "+r.URL.Path))
}

// lookup resolves a kind and name from the URL, attaching "did you mean"
// suggestions when the name is unknown.
func (s *PreviewServer) lookup(kindParam, name string) (*catalog.Entry, error) {
	kind, ok := catalog.ParseKind(kindParam)
	if !ok {
		return nil, errors.ErrUnknownKind(kindParam)
	}

	entry, ok := s.catalog.Get(kind, name)
	if !ok {
		suggestions := errors.EntryNotFoundError(string(kind), name, &errors.SuggestionContext{
			Names:      s.catalog.Names(kind),
			ConfigPath: s.config.Catalog.File,
		})
		return nil, errors.NewEnhancedError("Entry not found", errors.ErrEntryNotFound(string(kind), name), suggestions)
	}
	return entry, nil
}

func (s *PreviewServer) entriesJSON(entries []*catalog.Entry) []EntryJSON {
	out := make([]EntryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryJSON{
			Name:        e.Name,
			Kind:        e.Kind,
			Label:       e.Label(),
			Group:       e.Group,
			Description: e.Description,
			Standard:    e.Standard(),
			Href:        s.renderer.EntryHref(e),
		})
	}
	return out
}

func indexState(r *http.Request) (renderer.IndexState, error) {
	q := r.URL.Query()
	state := renderer.IndexState{Tab: catalog.KindTag, Query: map[catalog.Kind]string{}}

	if tab := q.Get("tab"); tab != "" {
		kind, ok := catalog.ParseKind(tab)
		if !ok {
			return state, errors.ErrUnknownKind(tab)
		}
		state.Tab = kind
	}
	if term := q.Get("q"); term != "" {
		state.Query[state.Tab] = term
	}
	return state, nil
}

// writeHTML renders into a buffer first so a failed render becomes a clean
// error response rather than a truncated page.
func (s *PreviewServer) writeHTML(w http.ResponseWriter, r *http.Request, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.writeError(w, r, errors.NewInternalError(errors.ErrCodeInternalError, "page rendering failed", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *PreviewServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context(), s.logger)
	errors.NewErrorHandler(logger).Handle(r.Context(), err)
	errors.WriteJSON(w, err)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
