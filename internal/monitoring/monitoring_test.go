package monitoring

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/webref/internal/logging"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.PreviewRendered("flexbox")
	m.PreviewRendered("flexbox")
	m.PreviewRendered("grid-child")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.previewRenders.WithLabelValues("flexbox")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.previewRenders.WithLabelValues("grid-child")))

	m.RequestServed(http.MethodGet, 404, 5*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "404")))

	m.CatalogReloaded(nil)
	m.CatalogReloaded(errors.New("bad yaml"))
	m.CatalogReloaded(errors.New("bad yaml"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.catalogReloads.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.catalogReloads.WithLabelValues("error")))

	m.SetCatalogEntries("css", 58)
	assert.Equal(t, 58.0, testutil.ToFloat64(m.catalogEntries.WithLabelValues("css")))

	m.SetWebSocketClients(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.websocketClient))
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.PreviewRendered("typography")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `webref_preview_renders_total{scene="typography"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics()
		NewMetrics()
	})
}

func TestHealthMonitor(t *testing.T) {
	ctx := context.Background()

	t.Run("all healthy", func(t *testing.T) {
		hm := NewHealthMonitor(logging.Discard(), "v1")
		hm.Register("catalog", true, func(context.Context) HealthCheck {
			return Healthy("loaded", map[string]interface{}{"entries": 170})
		})

		resp := hm.Check(ctx)
		assert.Equal(t, HealthStatusHealthy, resp.Status)
		assert.Equal(t, "v1", resp.Version)
		require.Contains(t, resp.Checks, "catalog")
		assert.True(t, resp.Checks["catalog"].Critical)
	})

	t.Run("non-critical failure degrades", func(t *testing.T) {
		hm := NewHealthMonitor(logging.Discard(), "")
		hm.Register("catalog", true, func(context.Context) HealthCheck { return Healthy("", nil) })
		hm.Register("watcher", false, func(context.Context) HealthCheck { return Unhealthy("stopped") })

		assert.Equal(t, HealthStatusDegraded, hm.Check(ctx).Status)
		assert.Equal(t, []string{"catalog", "watcher"}, hm.Names())
	})

	t.Run("critical failure is unhealthy", func(t *testing.T) {
		hm := NewHealthMonitor(logging.Discard(), "")
		hm.Register("catalog", true, func(context.Context) HealthCheck { return Unhealthy("empty") })

		rec := httptest.NewRecorder()
		hm.HTTPHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, HealthStatusUnhealthy, body.Status)
	})
}
