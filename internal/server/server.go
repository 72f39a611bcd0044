// Package server serves the reference browser over HTTP.
//
// PreviewServer wires the catalog, page renderer, live-reload hub, catalog
// file watcher, health checks and prometheus metrics behind a single
// http.Handler. Start blocks until the listener closes; Shutdown stops every
// part and reports all failures together.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/conneroisu/webref/internal/catalog"
	"github.com/conneroisu/webref/internal/config"
	"github.com/conneroisu/webref/internal/errors"
	"github.com/conneroisu/webref/internal/highlight"
	"github.com/conneroisu/webref/internal/logging"
	"github.com/conneroisu/webref/internal/monitoring"
	"github.com/conneroisu/webref/internal/preview"
	"github.com/conneroisu/webref/internal/renderer"
	"github.com/conneroisu/webref/internal/version"
	"github.com/conneroisu/webref/internal/watcher"
	"github.com/conneroisu/webref/internal/websocket"
)

// PreviewServer serves the reference browser with live reload capability
type PreviewServer struct {
	config      *config.Config
	catalog     *catalog.Catalog
	highlighter *highlight.Highlighter
	renderer    *renderer.PageRenderer
	previews    *preview.Renderer
	hub         *websocket.Hub
	watcher     *watcher.FileWatcher
	metrics     *monitoring.Metrics
	health      *monitoring.HealthMonitor
	limiter     *RateLimiter
	logger      logging.Logger

	httpServer  *http.Server
	listener    net.Listener
	serverMutex sync.RWMutex // Protects httpServer and listener

	lastReload    atomic.Value // time.Time
	lastReloadErr atomic.Value // string
	shutdownOnce  sync.Once
	shutdownErr   error
	isShutdown    atomic.Bool
}

// New creates a preview server over cat.
func New(cfg *config.Config, cat *catalog.Catalog, logger logging.Logger) (*PreviewServer, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logger.WithComponent("server")

	h, err := highlight.New(cfg.Preview.HighlightStyle)
	if err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "highlighter setup failed").
			WithContext("style", cfg.Preview.HighlightStyle)
	}

	metrics := monitoring.NewMetrics()

	s := &PreviewServer{
		config:      cfg,
		catalog:     cat,
		highlighter: h,
		previews:    preview.New(),
		metrics:     metrics,
		logger:      logger,
	}

	s.renderer = renderer.NewPageRenderer(cat, h, logger, renderer.Options{
		Title:      cfg.Preview.Title,
		LiveReload: cfg.Development.HotReload,
	})
	s.renderer.OnPreview(metrics.PreviewRendered)

	origins := websocket.AllowedOrigins{Origins: cfg.Server.AllowedOrigins, Port: cfg.Server.Port}
	s.hub = websocket.NewHub(origins, logger, websocket.WithClientCountHook(metrics.SetWebSocketClients))

	if cfg.Server.RateLimit > 0 {
		s.limiter = NewRateLimiter(&RateLimitConfig{
			RequestsPerMinute: cfg.Server.RateLimit,
			BurstSize:         burstFor(cfg.Server.RateLimit),
			Enabled:           true,
		}, logger)
	}

	if cfg.Development.HotReload && cfg.Catalog.File != "" {
		fw, err := watcher.NewFileWatcher(cfg.Development.Debounce, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create file watcher: %w", err)
		}
		s.watcher = fw
	}

	s.health = monitoring.NewHealthMonitor(logger, version.GetShortVersion())
	s.registerHealthChecks()
	s.updateCatalogGauges()

	return s, nil
}

func burstFor(perMinute int) int {
	burst := perMinute / 10
	if burst < 10 {
		burst = 10
	}
	return burst
}

// Handler returns the server's routes wrapped in its middleware.
func (s *PreviewServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /entry/{kind}/{name}", s.handleEntryPage)
	mux.HandleFunc("GET /api/entries/{kind}", s.handleEntries)
	mux.HandleFunc("GET /api/entry/{kind}/{name}", s.handleEntry)
	mux.HandleFunc("GET /api/preview", s.handlePreview)
	mux.HandleFunc("GET /static/highlight.css", s.handleHighlightCSS)
	mux.Handle("GET /health", s.health.HTTPHandler())
	mux.Handle("GET /metrics", s.metrics.Handler())
	mux.Handle("/ws", s.hub)
	mux.HandleFunc("/", s.handleNotFound)

	return s.addMiddleware(mux)
}

// Start listens on the configured address and serves until Shutdown.
func (s *PreviewServer) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Server.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln. It is Start without the listen step.
func (s *PreviewServer) Serve(ctx context.Context, ln net.Listener) error {
	if s.isShutdown.Load() {
		_ = ln.Close()
		return errors.NewInternalError(errors.ErrCodeInternalError, "server is shut down", nil)
	}

	if err := s.setupFileWatcher(ctx); err != nil {
		s.logger.Warn(ctx, err, "Catalog hot reload disabled")
	}

	s.serverMutex.Lock()
	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	server := s.httpServer
	s.serverMutex.Unlock()

	url := "http://" + ln.Addr().String()
	s.logger.Info(ctx, "Server listening", "url", url, "entries_html", s.catalog.Count(catalog.KindTag), "entries_css", s.catalog.Count(catalog.KindProperty))

	if s.config.Server.Open {
		go s.openBrowser(ctx, url)
	}

	if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Addr returns the bound address once the server is serving.
func (s *PreviewServer) Addr() string {
	s.serverMutex.RLock()
	defer s.serverMutex.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *PreviewServer) setupFileWatcher(ctx context.Context) error {
	if s.watcher == nil {
		return nil
	}

	s.watcher.AddFilter(watcher.GlobFilter(s.config.Development.Watch...))
	s.watcher.AddFilter(watcher.NoHiddenFilter)
	s.watcher.AddHandler(s.handleFileChange)

	if err := s.watcher.AddFile(s.config.Catalog.File); err != nil {
		return err
	}
	return s.watcher.Start(ctx)
}

func (s *PreviewServer) handleFileChange(ctx context.Context, events []watcher.ChangeEvent) error {
	for _, event := range events {
		s.logger.Debug(ctx, "Catalog file changed", "path", event.Path, "type", event.Type.String())
	}
	return s.ReloadCatalog(ctx)
}

// ReloadCatalog rebuilds the catalog from the configured file and tells
// connected browsers to refresh. A failed reload keeps the previous catalog.
func (s *PreviewServer) ReloadCatalog(ctx context.Context) error {
	if s.config.Catalog.File == "" {
		return nil
	}

	perf := logging.StartOperation(s.logger, "catalog_reload")
	err := s.catalog.Reload(s.config.Catalog.File, s.config.Catalog.Mode)
	s.metrics.CatalogReloaded(err)
	if err != nil {
		refErr := errors.NewIOError(errors.ErrCodeCatalogLoad, "catalog reload failed", err).
			WithFile(s.config.Catalog.File)
		s.lastReloadErr.Store(refErr.Error())
		perf.EndWithError(ctx, refErr)
		return refErr
	}

	s.lastReload.Store(time.Now())
	s.lastReloadErr.Store("")
	s.updateCatalogGauges()
	perf.End(ctx, "file", s.config.Catalog.File)

	s.hub.Broadcast(websocket.UpdateMessage{
		Type:      websocket.MessageCatalogReload,
		Target:    s.config.Catalog.File,
		Timestamp: time.Now(),
	})
	return nil
}

func (s *PreviewServer) updateCatalogGauges() {
	for _, kind := range catalog.Kinds() {
		s.metrics.SetCatalogEntries(string(kind), s.catalog.Count(kind))
	}
}

func (s *PreviewServer) registerHealthChecks() {
	s.health.Register("catalog", true, func(ctx context.Context) monitoring.HealthCheck {
		tags, props := s.catalog.Count(catalog.KindTag), s.catalog.Count(catalog.KindProperty)
		if tags+props == 0 {
			return monitoring.Unhealthy("catalog is empty")
		}
		meta := map[string]interface{}{"html": tags, "css": props}
		if t, ok := s.lastReload.Load().(time.Time); ok {
			meta["last_reload"] = t
		}
		if msg, ok := s.lastReloadErr.Load().(string); ok && msg != "" {
			check := monitoring.Healthy("serving last good catalog", meta)
			check.Status = monitoring.HealthStatusDegraded
			check.Metadata["reload_error"] = msg
			return check
		}
		return monitoring.Healthy("catalog loaded", meta)
	})

	s.health.Register("websocket", false, func(ctx context.Context) monitoring.HealthCheck {
		if s.hub.IsShutdown() {
			return monitoring.Unhealthy("live reload hub stopped")
		}
		return monitoring.Healthy("live reload hub running", map[string]interface{}{
			"clients": s.hub.ClientCount(),
		})
	})
}

// Broadcast sends a message to every live-reload client.
func (s *PreviewServer) Broadcast(msg websocket.UpdateMessage) bool {
	return s.hub.Broadcast(msg)
}

// Metrics exposes the server's collectors.
func (s *PreviewServer) Metrics() *monitoring.Metrics {
	return s.metrics
}

func (s *PreviewServer) openBrowser(ctx context.Context, url string) {
	time.Sleep(100 * time.Millisecond) // Give server time to start

	var err error
	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start()
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}

	if err != nil {
		s.logger.Warn(ctx, err, "Failed to open browser", "url", url)
	}
}

// Shutdown gracefully shuts down the server and cleans up resources
func (s *PreviewServer) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		s.logger.Info(ctx, "Shutting down server")
		s.isShutdown.Store(true)

		var errs error
		if s.watcher != nil {
			errs = multierr.Append(errs, s.watcher.Stop())
		}
		if s.limiter != nil {
			s.limiter.Stop()
		}
		errs = multierr.Append(errs, s.hub.Shutdown(ctx))

		s.serverMutex.RLock()
		server := s.httpServer
		s.serverMutex.RUnlock()
		if server != nil {
			errs = multierr.Append(errs, server.Shutdown(ctx))
		}

		s.shutdownErr = errs
	})
	return s.shutdownErr
}

// IsShutdown reports whether Shutdown has been called.
func (s *PreviewServer) IsShutdown() bool {
	return s.isShutdown.Load()
}
