// Package internal contains the implementation packages for webref.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - catalog: HTML tag and CSS property tables, groups, search and overlays
//   - preview: Property classification and preview scene markup
//   - highlight: Example highlighting and markdown explanations
//   - renderer: Index and entry pages, shared assets
//   - server: HTTP routes, JSON API, middleware and rate limiting
//   - export: Static site generation
//   - watcher: Overlay file monitoring with debouncing
//   - websocket: Reload notifications for connected pages
//   - monitoring: Prometheus metrics and health checks
//   - config, errors, logging, version: Shared infrastructure
//
// # Data Flow
//
// The catalog is built once at startup from the built-in data plus an
// optional overlay file. The server and the exporter both render pages
// through the renderer, so a page served live and an exported page share
// markup. When the overlay changes on disk, the watcher triggers a catalog
// reload and the hub tells open pages to refresh.
package internal
