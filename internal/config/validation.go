package config

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/conneroisu/webref/internal/highlight"
	"github.com/conneroisu/webref/internal/watcher"
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// Err combines every validation error into one, or returns nil.
func (vr *ValidationResult) Err() error {
	var err error
	for i := range vr.Errors {
		err = multierr.Append(err, &vr.Errors[i])
	}
	return err
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	if len(vr.Errors) > 0 {
		builder.WriteString("❌ Validation Errors:\n")
		for _, err := range vr.Errors {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", err.Field, err.Message))
			for _, suggestion := range err.Suggestions {
				builder.WriteString(fmt.Sprintf("    💡 %s\n", suggestion))
			}
		}
		builder.WriteString("\n")
	}

	if len(vr.Warnings) > 0 {
		builder.WriteString("⚠️  Validation Warnings:\n")
		for _, warning := range vr.Warnings {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", warning.Field, warning.Message))
			for _, suggestion := range warning.Suggestions {
				builder.WriteString(fmt.Sprintf("    💡 %s\n", suggestion))
			}
		}
	}

	return builder.String()
}

func (vr *ValidationResult) addError(field string, value interface{}, message string, suggestions ...string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Value: value, Message: message, Suggestions: suggestions})
}

func (vr *ValidationResult) addWarning(field string, value interface{}, message string, suggestions ...string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Value: value, Message: message, Suggestions: suggestions})
}

// validateConfig returns every validation error combined.
func validateConfig(config *Config) error {
	return ValidateConfigWithDetails(config).Err()
}

// ValidateConfigWithDetails performs comprehensive validation with detailed feedback
func ValidateConfigWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	validateServerConfigDetails(&config.Server, result)
	validateCatalogConfigDetails(&config.Catalog, result)
	validatePreviewConfigDetails(&config.Preview, result)
	validateExportConfigDetails(&config.Export, result)
	validateDevelopmentConfigDetails(&config.Development, result)
	validateLogConfigDetails(&config.Log, result)

	result.Valid = !result.HasErrors()
	return result
}

var dangerousChars = []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}

func validateServerConfigDetails(config *ServerConfig, result *ValidationResult) {
	// Allow 0 for system-assigned ports in testing
	if config.Port < 0 || config.Port > 65535 {
		result.addError("server.port", config.Port,
			fmt.Sprintf("port %d is not in valid range 0-65535", config.Port),
			"Use a port between 1024-65535 for non-privileged access",
			"Port 0 allows system to assign an available port",
		)
	} else if config.Port > 0 && config.Port < 1024 {
		result.addWarning("server.port", config.Port,
			"port below 1024 requires elevated privileges",
			"Consider using a port above 1024 for development",
		)
	}

	if err := validateHostname(config.Host); err != nil {
		result.addError("server.host", config.Host, err.Error(),
			"Use 'localhost' for local development",
			"Use '0.0.0.0' to bind to all interfaces",
		)
	}

	switch config.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		result.addError("server.environment", config.Environment, "unknown environment",
			"Use 'development' for local development",
			"Use 'production' for deployments",
		)
	}

	for _, origin := range config.AllowedOrigins {
		if origin == "*" {
			if config.Environment == EnvProduction {
				result.addError("server.allowed_origins", origin,
					"wildcard origin is only allowed in development",
					"List the exact origins that may embed the reference",
				)
			}
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			result.addError("server.allowed_origins", origin,
				fmt.Sprintf("origin %q must be an http or https URL", origin),
				"Use a value like 'http://localhost:3000'",
			)
		}
	}

	if config.RateLimit < 0 {
		result.addError("server.rate_limit", config.RateLimit, "rate limit cannot be negative",
			"Use 0 to disable rate limiting",
		)
	}
}

func validateCatalogConfigDetails(config *CatalogConfig, result *ValidationResult) {
	if config.File != "" {
		if err := validatePath(config.File); err != nil {
			result.addError("catalog.file", config.File, err.Error(),
				"Use a relative path like 'catalog.yml'",
				"Avoid parent directory references (..)",
			)
		}
	}

	switch config.Mode {
	case "", CatalogModeMerge, CatalogModeReplace:
	default:
		result.addError("catalog.mode", config.Mode, fmt.Sprintf("unknown catalog mode %q", config.Mode),
			"Use 'merge' to add to the built-in entries",
			"Use 'replace' to substitute them",
		)
	}
}

func validatePreviewConfigDetails(config *PreviewConfig, result *ValidationResult) {
	if !highlight.IsStyle(config.HighlightStyle) {
		result.addError("preview.highlight_style", config.HighlightStyle,
			fmt.Sprintf("unknown highlight style %q", config.HighlightStyle),
			"Run 'webref styles' to list the available styles",
			"Common styles: dracula, monokai, github",
		)
	}
}

func validateExportConfigDetails(config *ExportConfig, result *ValidationResult) {
	if err := validatePath(config.OutputDir); err != nil {
		result.addError("export.output_dir", config.OutputDir, err.Error(),
			"Use a relative path like 'dist'",
		)
	}

	if config.BaseURL != "" && !strings.HasPrefix(config.BaseURL, "/") {
		u, err := url.Parse(config.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			result.addError("export.base_url", config.BaseURL,
				"base URL must be an absolute http(s) URL or start with '/'",
				"Use a value like 'https://example.com/reference/'",
			)
		}
	}
}

func validateDevelopmentConfigDetails(config *DevelopmentConfig, result *ValidationResult) {
	if err := watcher.ValidatePatterns(config.Watch); err != nil {
		result.addError("development.watch", config.Watch, err.Error(),
			"Use doublestar globs such as '**/*.yml'",
		)
	}

	if config.Debounce < 0 || config.Debounce > 10*time.Second {
		result.addError("development.debounce", config.Debounce,
			"debounce must be between 0 and 10s",
			"The default of 300ms suits most editors",
		)
	}

	if !config.HotReload {
		result.addWarning("development.hot_reload", config.HotReload,
			"hot reload disabled - catalog edits need a restart",
		)
	}
}

func validateLogConfigDetails(config *LogConfig, result *ValidationResult) {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		result.addError("log.level", config.Level, fmt.Sprintf("unknown log level %q", config.Level),
			"Use one of debug, info, warn, error",
		)
	}

	switch config.Format {
	case "text", "json":
	default:
		result.addError("log.format", config.Format, fmt.Sprintf("unknown log format %q", config.Format),
			"Use 'text' or 'json'",
		)
	}
}

// validateHostname rejects empty hosts and shell metacharacters.
func validateHostname(host string) error {
	if host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	for _, char := range dangerousChars {
		if strings.Contains(host, char) {
			return fmt.Errorf("host contains dangerous character: %s", char)
		}
	}
	if net.ParseIP(host) == nil && strings.ContainsAny(host, " /") {
		return fmt.Errorf("invalid hostname: %s", host)
	}
	return nil
}

// validatePath validates a file path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	// Reject path traversal attempts
	for _, part := range strings.Split(filepath.ToSlash(cleanPath), "/") {
		if part == ".." {
			return fmt.Errorf("path contains traversal: %s", path)
		}
	}

	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
