// Package config provides configuration management for webref using Viper
// for loading from files, environment variables, and command-line flags.
//
// The configuration system supports YAML files, environment variable overrides
// with the WEBREF_ prefix, defaults, and validation. It covers the HTTP server,
// the catalog overlay file, highlighting, static export, hot reload, and
// logging.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/conneroisu/webref/internal/highlight"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server" yaml:"server"`
	Catalog     CatalogConfig     `mapstructure:"catalog" yaml:"catalog"`
	Preview     PreviewConfig     `mapstructure:"preview" yaml:"preview"`
	Export      ExportConfig      `mapstructure:"export" yaml:"export"`
	Development DevelopmentConfig `mapstructure:"development" yaml:"development"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port" yaml:"port"`
	Host           string   `mapstructure:"host" yaml:"host"`
	Open           bool     `mapstructure:"open" yaml:"open"`
	NoOpen         bool     `mapstructure:"no-open" yaml:"no-open"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	Environment    string   `mapstructure:"environment" yaml:"environment"`
	// RateLimit is the per-client API request budget per minute. Zero disables it.
	RateLimit int `mapstructure:"rate_limit" yaml:"rate_limit"`
}

type CatalogConfig struct {
	File string `mapstructure:"file" yaml:"file"`
	// Mode overrides the overlay file's own mode when set.
	Mode string `mapstructure:"mode" yaml:"mode"`
}

type PreviewConfig struct {
	Title          string `mapstructure:"title" yaml:"title"`
	HighlightStyle string `mapstructure:"highlight_style" yaml:"highlight_style"`
}

type ExportConfig struct {
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	BaseURL   string `mapstructure:"base_url" yaml:"base_url"`
}

type DevelopmentConfig struct {
	HotReload bool          `mapstructure:"hot_reload" yaml:"hot_reload"`
	Watch     []string      `mapstructure:"watch" yaml:"watch"`
	Debounce  time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Defaults.
const (
	DefaultPort        = 8080
	DefaultHost        = "localhost"
	DefaultTitle       = "Web Reference"
	DefaultOutputDir   = "dist"
	DefaultDebounce    = 300 * time.Millisecond
	DefaultRateLimit   = 600
	EnvDevelopment     = "development"
	EnvProduction      = "production"
	CatalogModeMerge   = "merge"
	CatalogModeReplace = "replace"
)

// DefaultWatchPatterns are the globs that trigger a catalog reload.
var DefaultWatchPatterns = []string{"**/*.yml", "**/*.yaml"}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads, defaults and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config, v)

	// Override open if no-open was explicitly set via flag
	if v.IsSet("server.no-open") && v.GetBool("server.no-open") {
		config.Server.Open = false
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when no file, flag, or environment
// variable sets anything.
func Default() *Config {
	var config Config
	applyDefaults(&config, viper.New())
	return &config
}

func applyDefaults(config *Config, v *viper.Viper) {
	if !v.IsSet("server.port") {
		config.Server.Port = DefaultPort
	}
	if config.Server.Host == "" {
		config.Server.Host = DefaultHost
	}
	if !v.IsSet("server.open") {
		config.Server.Open = true
	}
	if config.Server.Environment == "" {
		config.Server.Environment = EnvDevelopment
	}
	if !v.IsSet("server.rate_limit") {
		config.Server.RateLimit = DefaultRateLimit
	}

	if config.Preview.Title == "" {
		config.Preview.Title = DefaultTitle
	}
	if config.Preview.HighlightStyle == "" {
		config.Preview.HighlightStyle = highlight.DefaultStyle
	}

	if config.Export.OutputDir == "" {
		config.Export.OutputDir = DefaultOutputDir
	}

	if !v.IsSet("development.hot_reload") {
		config.Development.HotReload = true
	}
	if len(config.Development.Watch) == 0 {
		config.Development.Watch = append([]string(nil), DefaultWatchPatterns...)
	}
	if !v.IsSet("development.debounce") {
		config.Development.Debounce = DefaultDebounce
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
}

// Addr is the listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction reports whether the server runs with production settings.
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == EnvProduction
}
