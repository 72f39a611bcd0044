package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/webref/internal/logging"
)

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func newWatcher(t *testing.T, delay time.Duration) *FileWatcher {
	t.Helper()
	w, err := NewFileWatcher(delay, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	return w
}

func TestFileWatcherAddFilterAndHandler(t *testing.T) {
	w := newWatcher(t, 100*time.Millisecond)

	w.AddFilter(GlobFilter("**/*.yml"))
	w.AddFilter(NoHiddenFilter)
	assert.Len(t, w.filters, 2)

	assert.True(t, w.accepts("catalog/overlay.yml"))
	assert.False(t, w.accepts("catalog/.overlay.yml"))
	assert.False(t, w.accepts("catalog/overlay.json"))

	w.AddHandler(func(context.Context, []ChangeEvent) error { return nil })
	assert.Len(t, w.handlers, 1)
}

func TestValidatePath(t *testing.T) {
	_, err := validatePath("../etc")
	assert.Error(t, err)

	_, err = validatePath("a/../../b")
	assert.Error(t, err)

	_, err = validatePath("  ")
	assert.Error(t, err)

	clean, err := validatePath("./catalog//dir/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("catalog/dir"), clean)
}

func TestFileWatcherAddPath(t *testing.T) {
	w := newWatcher(t, 100*time.Millisecond)
	dir := t.TempDir()

	require.NoError(t, w.AddPath(dir))
	assert.Contains(t, w.WatchList(), filepath.Clean(dir))

	assert.Error(t, w.AddPath(filepath.Join(dir, "missing")))
}

func TestAddRecursive(t *testing.T) {
	w := newWatcher(t, 100*time.Millisecond)
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git", "objects"), 0o755))

	require.NoError(t, w.AddRecursive(root))

	list := w.WatchList()
	assert.Contains(t, list, filepath.Join(root, "a", "b"))
	assert.NotContains(t, list, filepath.Join(root, ".git"))
}

func TestFileWatcherReportsChanges(t *testing.T) {
	w := newWatcher(t, 50*time.Millisecond)
	dir := t.TempDir()
	target := filepath.Join(dir, "catalog.yml")
	require.NoError(t, os.WriteFile(target, []byte("mode: merge\n"), 0o644))

	require.NoError(t, w.AddFile(target))

	var mu sync.Mutex
	var got []ChangeEvent
	w.AddHandler(func(_ context.Context, events []ChangeEvent) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, events...)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("mode: replace\n"), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) > 0
	}, 3*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, e := range got {
		assert.Equal(t, "catalog.yml", filepath.Base(e.Path))
	}
}

func TestHandlerErrorsDoNotStopProcessing(t *testing.T) {
	w := newWatcher(t, 10*time.Millisecond)

	var mu sync.Mutex
	calls := 0
	w.AddHandler(func(context.Context, []ChangeEvent) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return errors.New("reload failed")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	w.debouncer.Add(ChangeEvent{Path: "a.yml"})
	require.Eventually(t, func() bool { mu.Lock(); defer mu.Unlock(); return calls == 1 }, 2*time.Second, 10*time.Millisecond)

	w.debouncer.Add(ChangeEvent{Path: "a.yml"})
	require.Eventually(t, func() bool { mu.Lock(); defer mu.Unlock(); return calls == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestDebouncer(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.start(ctx)

	d.Add(ChangeEvent{Path: "one.yml", Type: EventTypeCreated})
	d.Add(ChangeEvent{Path: "one.yml", Type: EventTypeModified})
	d.Add(ChangeEvent{Path: "two.yml", Type: EventTypeModified})

	select {
	case batch := <-d.Output():
		require.Len(t, batch, 2)
		assert.Equal(t, "one.yml", batch[0].Path)
		assert.Equal(t, EventTypeModified, batch[0].Type)
		assert.Equal(t, "two.yml", batch[1].Path)
	case <-time.After(2 * time.Second):
		t.Fatal("no batch emitted")
	}
}

func TestGlobFilter(t *testing.T) {
	filter := GlobFilter("**/*.yml", "**/*.yaml")

	testCases := []struct {
		path     string
		expected bool
	}{
		{"catalog.yml", true},
		{"config/catalog.yaml", true},
		{"/abs/path/to/catalog.yml", true},
		{"catalog.json", false},
		{"catalog.yml.bak", false},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.expected, filter(tc.path))
		})
	}

	assert.True(t, GlobFilter("data/*.yml")("data/tags.yml"))
	assert.False(t, GlobFilter("data/*.yml")("other/tags.yml"))
}

func TestValidatePatterns(t *testing.T) {
	assert.NoError(t, ValidatePatterns([]string{"**/*.yml", "*.yaml"}))
	assert.Error(t, ValidatePatterns([]string{"[unclosed"}))
}

func TestNoHiddenFilter(t *testing.T) {
	assert.True(t, NoHiddenFilter("catalog.yml"))
	assert.False(t, NoHiddenFilter(".catalog.yml.swp"))
	assert.False(t, NoHiddenFilter("catalog.yml~"))
	assert.False(t, NoHiddenFilter("dir/.hidden"))
}
