package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefErrorFormatting(t *testing.T) {
	err := NewIOError(ErrCodeCatalogLoad, "cannot read catalog", errors.New("permission denied")).
		WithFile("catalog.yml")

	assert.Equal(t, "[ERR_CATALOG_LOAD] catalog.yml cannot read catalog: permission denied", err.Error())
	assert.Equal(t, "permission denied", errors.Unwrap(err).Error())
}

func TestRefErrorIs(t *testing.T) {
	err := ErrEntryNotFound("css", "colr")
	wrapped := fmt.Errorf("lookup: %w", err)

	assert.True(t, errors.Is(wrapped, NewNotFoundError(ErrCodeEntryNotFound, "")))
	assert.False(t, errors.Is(wrapped, NewValidationError(ErrCodeEntryNotFound, "")))
	assert.True(t, IsNotFound(wrapped))
	assert.True(t, IsRecoverable(wrapped))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.Equal(t, "colr", err.Entry)
	assert.Equal(t, "css", err.Context["kind"])
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrUnknownKind("js").HTTPStatus())
	assert.Equal(t, http.StatusNotFound, ErrEntryNotFound("html", "blink").HTTPStatus())
	assert.Equal(t, http.StatusForbidden, ErrPathTraversal("../x").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, NewInternalError(ErrCodeInternalError, "x", nil).HTTPStatus())
}

func TestClosestNames(t *testing.T) {
	names := []string{"color", "background-color", "font-size", "gap", "cursor", "display"}

	got := ClosestNames("colr", names, 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "color", got[0])

	assert.Equal(t, []string{"background-color"}, ClosestNames("background", names, 3))
	assert.Empty(t, ClosestNames("zzzzzzzz", names, 3))
	assert.Empty(t, ClosestNames("", names, 3))
	assert.Len(t, ClosestNames("o", []string{"color", "font-size", "cursor", "display"}, 2), 2)
}

func TestEntryNotFoundSuggestions(t *testing.T) {
	suggestions := EntryNotFoundError("css", "colr", &SuggestionContext{
		Names:      []string{"color", "cursor"},
		ConfigPath: ".webref.yml",
	})

	titles := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		titles = append(titles, s.Title)
	}
	assert.Contains(t, titles, "Did you mean 'color'?")
	assert.Contains(t, titles, "Add it to your catalog file")

	assert.Len(t, EntryNotFoundError("css", "colr", nil), 2)
}

func TestEnhancedError(t *testing.T) {
	base := ErrEntryNotFound("html", "dvi")
	enhanced := NewEnhancedError("Entry not found", base, []ErrorSuggestion{
		{Title: "Did you mean 'div'?", Command: "webref show html div"},
	})

	msg := enhanced.Error()
	assert.Contains(t, msg, "Entry not found")
	assert.Contains(t, msg, "1. Did you mean 'div'?")
	assert.Contains(t, msg, "Run: webref show html div")
	assert.True(t, IsNotFound(enhanced))
	assert.Len(t, SuggestionsOf(fmt.Errorf("wrap: %w", enhanced)), 1)
	assert.Equal(t, "plain", FormatSuggestions("plain", nil))
}

func TestWriteJSON(t *testing.T) {
	t.Run("ref error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := NewEnhancedError("Entry not found", ErrEntryNotFound("css", "colr"),
			[]ErrorSuggestion{{Title: "Did you mean 'color'?"}})

		status := WriteJSON(rec, err)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, ErrCodeEntryNotFound, body.Code)
		assert.Equal(t, ErrorTypeNotFound, body.Type)
		require.Len(t, body.Suggestions, 1)
	})

	t.Run("plain error hides details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteJSON(rec, errors.New("secret stack detail"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")
	})
}

type recordingLogger struct {
	warns, errs int
}

func (r *recordingLogger) Error(context.Context, error, string, ...interface{}) { r.errs++ }
func (r *recordingLogger) Warn(context.Context, error, string, ...interface{})  { r.warns++ }

func TestErrorHandler(t *testing.T) {
	logger := &recordingLogger{}
	h := NewErrorHandler(logger)
	ctx := context.Background()

	h.Handle(ctx, nil)
	h.Handle(ctx, ErrEntryNotFound("css", "x"))
	h.Handle(ctx, ErrUnknownKind("js"))
	h.Handle(ctx, NewIOError(ErrCodeExportFailed, "write", nil))
	h.Handle(ctx, errors.New("plain"))

	assert.Equal(t, 2, logger.warns)
	assert.Equal(t, 2, logger.errs)
}
